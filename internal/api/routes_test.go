package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/RMahshie/vibronomogram/internal/api/handlers"
	"github.com/RMahshie/vibronomogram/internal/mocks"
	"github.com/RMahshie/vibronomogram/internal/rendering"
	"github.com/RMahshie/vibronomogram/internal/repository"
	"github.com/RMahshie/vibronomogram/pkg/models"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupAPI(t *testing.T) (humatest.TestAPI, *mocks.ChartRepository, *mocks.S3Service, *mocks.RenderingService) {
	t.Helper()
	_, api := humatest.New(t)

	mockRepo := new(mocks.ChartRepository)
	mockS3 := new(mocks.S3Service)
	mockRender := new(mocks.RenderingService)
	RegisterRoutes(api,
		handlers.NewChartHandler(mockRepo, mockS3, mockRender, rendering.DefaultSettings),
		handlers.NewNomogramHandler(rendering.DefaultSettings))
	return api, mockRepo, mockS3, mockRender
}

func chartBody() map[string]any {
	return map[string]any{
		"title":            "compressor skid",
		"format":           "svg",
		"frequency_limits": []float64{1, 1000},
		"series": []map[string]any{{
			"name":     "axial",
			"quantity": "displacement",
			"points": []map[string]any{
				{"frequency": 5, "value": 1e-4},
				{"frequency": 50, "value": 2e-5},
			},
		}},
	}
}

func TestRoutes_Projections(t *testing.T) {
	api, _, _, _ := setupAPI(t)

	resp := api.Get("/api/projections")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "frequency_space")
}

func TestRoutes_IsoLines(t *testing.T) {
	api, _, _, _ := setupAPI(t)

	resp := api.Post("/api/isolines", map[string]any{
		"frequency_limits": []float64{1, 1000},
		"velocity_limits":  []float64{1e-4, 1},
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var body models.IsoLinesResponseBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Displacement)
	assert.NotEmpty(t, body.Acceleration)

	// Schema validation rejects a single limit
	resp = api.Post("/api/isolines", map[string]any{
		"frequency_limits": []float64{1},
		"velocity_limits":  []float64{1e-4, 1},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestRoutes_Preview(t *testing.T) {
	api, _, _, _ := setupAPI(t)

	resp := api.Post("/api/charts/preview", chartBody())
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "image/svg+xml", resp.Header().Get("Content-Type"))
	assert.True(t, strings.Contains(resp.Body.String(), "<svg"))

	bad := chartBody()
	bad["format"] = "gif"
	resp = api.Post("/api/charts/preview", bad)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestRoutes_CreateChart(t *testing.T) {
	api, mockRepo, _, mockRender := setupAPI(t)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Chart")).Return(nil)
	mockRender.On("ProcessChart", mock.Anything, mock.Anything).Return(nil).Maybe()

	resp := api.Post("/api/charts", chartBody())
	require.Equal(t, http.StatusAccepted, resp.Code)

	var body models.CreateChartResponseBody
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, models.StatusPending, body.Status)
	mockRepo.AssertExpectations(t)
}

func TestRoutes_ChartLifecycle(t *testing.T) {
	api, mockRepo, mockS3, _ := setupAPI(t)
	id := uuid.New()
	key := "charts/" + id.String() + ".svg"

	mockRepo.On("GetByID", mock.Anything, id).Return(&models.Chart{
		ID: id.String(), Format: "svg", Status: models.StatusCompleted, Progress: 100, ObjectKey: &key,
	}, nil)
	mockS3.On("GenerateDownloadURL", mock.Anything, key).Return("https://example.com/"+key, nil)
	mockS3.On("DeleteFile", mock.Anything, key).Return(nil)
	mockRepo.On("Delete", mock.Anything, id).Return(nil)

	resp := api.Get("/api/charts/" + id.String() + "/status")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"progress":100`)

	resp = api.Get("/api/charts/" + id.String())
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "https://example.com/"+key)

	resp = api.Delete("/api/charts/" + id.String())
	assert.Equal(t, http.StatusNoContent, resp.Code)
}

func TestRoutes_ChartErrors(t *testing.T) {
	api, mockRepo, _, _ := setupAPI(t)
	missing := uuid.New()
	mockRepo.On("GetByID", mock.Anything, missing).Return(nil, repository.ErrNotFound)

	resp := api.Get("/api/charts/" + missing.String())
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = api.Get("/api/charts/not-a-uuid/status")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestRoutes_ListCharts(t *testing.T) {
	api, mockRepo, _, _ := setupAPI(t)
	mockRepo.On("List", mock.Anything, 5).Return([]*models.Chart{{ID: "x", Format: "png", Status: models.StatusPending}}, nil)

	resp := api.Get("/api/charts?limit=5")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"id":"x"`)

	resp = api.Get("/api/charts?limit=500")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}
