package api

import (
	"net/http"

	"github.com/RMahshie/vibronomogram/internal/api/handlers"
	"github.com/danielgtaylor/huma/v2"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(api huma.API, chartHandler *handlers.ChartHandler, nomogramHandler *handlers.NomogramHandler) {
	// Stateless nomogram routes
	huma.Register(api, huma.Operation{
		OperationID: "listProjections",
		Method:      http.MethodGet,
		Path:        "/api/projections",
		Summary:     "List projections",
		Description: "Returns the names of the registered chart projections",
		Tags:        []string{"Nomogram"},
	}, nomogramHandler.ListProjections)

	huma.Register(api, huma.Operation{
		OperationID: "computeIsoLines",
		Method:      http.MethodPost,
		Path:        "/api/isolines",
		Summary:     "Compute iso-lines",
		Description: "Returns the constant displacement and acceleration lines visible in a frequency/velocity view",
		Tags:        []string{"Nomogram"},
	}, nomogramHandler.ComputeIsoLines)

	huma.Register(api, huma.Operation{
		OperationID: "previewChart",
		Method:      http.MethodPost,
		Path:        "/api/charts/preview",
		Summary:     "Preview a chart",
		Description: "Renders a chart spec and returns the image without storing it",
		Tags:        []string{"Nomogram"},
	}, nomogramHandler.PreviewChart)

	// Chart routes
	huma.Register(api, huma.Operation{
		OperationID:   "createChart",
		Method:        http.MethodPost,
		Path:          "/api/charts",
		Summary:       "Create a chart",
		Description:   "Stores a chart spec and renders it in the background",
		Tags:          []string{"Charts"},
		DefaultStatus: http.StatusAccepted,
	}, chartHandler.CreateChart)

	huma.Register(api, huma.Operation{
		OperationID: "listCharts",
		Method:      http.MethodGet,
		Path:        "/api/charts",
		Summary:     "List charts",
		Description: "Returns the most recent charts, newest first",
		Tags:        []string{"Charts"},
	}, chartHandler.ListCharts)

	huma.Register(api, huma.Operation{
		OperationID: "getChartStatus",
		Method:      http.MethodGet,
		Path:        "/api/charts/{id}/status",
		Summary:     "Get chart status",
		Description: "Returns the current status and progress of a chart",
		Tags:        []string{"Charts"},
	}, chartHandler.GetChartStatus)

	huma.Register(api, huma.Operation{
		OperationID: "getChart",
		Method:      http.MethodGet,
		Path:        "/api/charts/{id}",
		Summary:     "Get a chart",
		Description: "Returns a chart record, with a download URL once rendering completed",
		Tags:        []string{"Charts"},
	}, chartHandler.GetChart)

	huma.Register(api, huma.Operation{
		OperationID:   "deleteChart",
		Method:        http.MethodDelete,
		Path:          "/api/charts/{id}",
		Summary:       "Delete a chart",
		Description:   "Deletes a chart record and its stored image",
		Tags:          []string{"Charts"},
		DefaultStatus: http.StatusNoContent,
	}, chartHandler.DeleteChart)
}
