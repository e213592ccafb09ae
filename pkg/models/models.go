package models

import (
	"time"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Body struct {
		Status  string    `json:"status" example:"healthy" doc:"Service health status"`
		Version string    `json:"version" example:"1.0.0" doc:"API version"`
		Time    time.Time `json:"time" doc:"Current server time"`
	}
}

// ListProjectionsResponse lists the registered projections
type ListProjectionsResponse struct {
	Body struct {
		Projections []string `json:"projections" doc:"Registered projection names"`
	}
}

// IsoLinesRequest asks for the iso-lines visible in a frequency/velocity view
type IsoLinesRequest struct {
	Body IsoLinesRequestBody
}

// IsoLinesRequestBody is the body of an iso-lines request
type IsoLinesRequestBody struct {
	FrequencyLimits     []float64 `json:"frequency_limits" minItems:"2" maxItems:"2" doc:"[min, max] frequency in Hz"`
	VelocityLimits      []float64 `json:"velocity_limits" minItems:"2" maxItems:"2" doc:"[min, max] velocity in m/s"`
	UseGravityFormatter bool      `json:"use_gravity_formatter,omitempty" doc:"Label acceleration in g"`
	Minor               bool      `json:"minor,omitempty" doc:"Include minor iso-lines"`
}

// IsoLinesResponse carries the clipped iso-lines of both derived quantities
type IsoLinesResponse struct {
	Body IsoLinesResponseBody
}

// IsoLinesResponseBody is the body of the iso-lines response
type IsoLinesResponseBody struct {
	Displacement []IsoLine `json:"displacement" doc:"Constant displacement lines"`
	Acceleration []IsoLine `json:"acceleration" doc:"Constant acceleration lines"`
}

// IsoLine is one line of constant displacement or acceleration
type IsoLine struct {
	Value float64    `json:"value" doc:"Constant value in SI units"`
	Label string     `json:"label,omitempty" doc:"Formatted label (major lines only)"`
	Minor bool       `json:"minor,omitempty" doc:"Whether this is a minor line"`
	Start ChartPoint `json:"start" doc:"Lower-frequency end inside the view"`
	End   ChartPoint `json:"end" doc:"Higher-frequency end inside the view"`
}

// ChartPoint is a point on the frequency/velocity plane
type ChartPoint struct {
	Frequency float64 `json:"frequency" doc:"Frequency in Hz"`
	Velocity  float64 `json:"velocity" doc:"Velocity in m/s"`
}

// PreviewChartRequest renders a chart without storing it
type PreviewChartRequest struct {
	Body ChartSpec
}

// PreviewChartResponse carries the rendered image
type PreviewChartResponse struct {
	ContentType string `header:"Content-Type"`
	Body        []byte
}

// CreateChartRequest represents a request to create and render a chart
type CreateChartRequest struct {
	Body ChartSpec
}

// CreateChartResponse represents the response from creating a chart
type CreateChartResponse struct {
	Body CreateChartResponseBody
}

// CreateChartResponseBody is the body of the create chart response
type CreateChartResponseBody struct {
	ID     string `json:"id" doc:"Chart unique identifier"`
	Status string `json:"status" enum:"pending,rendering,completed,failed" doc:"Chart status"`
}

// GetChartStatusRequest represents a request to get chart status
type GetChartStatusRequest struct {
	ID string `path:"id" doc:"Chart ID"`
}

// GetChartStatusResponseBody is the body of the status response
type GetChartStatusResponseBody struct {
	ID       string `json:"id" doc:"Chart ID"`
	Status   string `json:"status" enum:"pending,rendering,completed,failed" doc:"Chart status"`
	Progress int    `json:"progress" minimum:"0" maximum:"100" doc:"Render progress percentage"`
	Message  string `json:"message,omitempty" doc:"Human-readable status message"`
}

// GetChartStatusResponse represents the current status of a chart
type GetChartStatusResponse struct {
	Body GetChartStatusResponseBody
}

// GetChartRequest represents a request to get a chart
type GetChartRequest struct {
	ID string `path:"id" doc:"Chart ID"`
}

// GetChartResponseBody is the body of the chart response
type GetChartResponseBody struct {
	ID          string     `json:"id" doc:"Chart ID"`
	Title       string     `json:"title,omitempty" doc:"Chart title"`
	Format      string     `json:"format" doc:"Image format"`
	Status      string     `json:"status" doc:"Chart status"`
	DownloadURL string     `json:"download_url,omitempty" doc:"Pre-signed URL of the rendered image"`
	ExpiresIn   int        `json:"expires_in,omitempty" doc:"URL expiration time in seconds"`
	Error       string     `json:"error,omitempty" doc:"Failure reason"`
	Spec        ChartSpec  `json:"spec" doc:"Specification the chart was rendered from"`
	CreatedAt   time.Time  `json:"created_at" doc:"Chart creation timestamp"`
	CompletedAt *time.Time `json:"completed_at,omitempty" doc:"Render completion timestamp"`
}

// GetChartResponse represents a chart record
type GetChartResponse struct {
	Body GetChartResponseBody
}

// ListChartsRequest represents a request to list recent charts
type ListChartsRequest struct {
	Limit int `query:"limit" default:"20" minimum:"1" maximum:"100" doc:"Maximum number of charts"`
}

// ChartSummary is a chart in a listing
type ChartSummary struct {
	ID        string    `json:"id" doc:"Chart ID"`
	Title     string    `json:"title,omitempty" doc:"Chart title"`
	Format    string    `json:"format" doc:"Image format"`
	Status    string    `json:"status" doc:"Chart status"`
	CreatedAt time.Time `json:"created_at" doc:"Chart creation timestamp"`
}

// ListChartsResponse lists recent charts, newest first
type ListChartsResponse struct {
	Body struct {
		Charts []ChartSummary `json:"charts" doc:"Charts, newest first"`
	}
}

// DeleteChartRequest represents a request to delete a chart
type DeleteChartRequest struct {
	ID string `path:"id" doc:"Chart ID"`
}
