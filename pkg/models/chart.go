package models

import (
	"time"
)

// Chart statuses
const (
	StatusPending   = "pending"
	StatusRendering = "rendering"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// ChartSpec describes a nomogram to render
type ChartSpec struct {
	Title               string    `json:"title,omitempty" maxLength:"200" doc:"Chart title"`
	Projection          string    `json:"projection,omitempty" doc:"Registered projection name (default frequency_space)"`
	Format              string    `json:"format,omitempty" enum:"png,svg,pdf" doc:"Image format"`
	WidthIn             float64   `json:"width_in,omitempty" minimum:"1" maximum:"40" doc:"Image width in inches"`
	HeightIn            float64   `json:"height_in,omitempty" minimum:"1" maximum:"40" doc:"Image height in inches"`
	FrequencyLimits     []float64 `json:"frequency_limits,omitempty" minItems:"2" maxItems:"2" doc:"[min, max] frequency in Hz"`
	VelocityLimits      []float64 `json:"velocity_limits,omitempty" minItems:"2" maxItems:"2" doc:"[min, max] velocity in m/s"`
	UseGravityFormatter bool      `json:"use_gravity_formatter,omitempty" doc:"Label acceleration in g"`
	Grid                *GridSpec `json:"grid,omitempty" doc:"Grid visibility"`
	Series              []Series  `json:"series,omitempty" maxItems:"32" doc:"Spectra to draw"`
	Zones               []Zone    `json:"zones,omitempty" maxItems:"16" doc:"Exclusion zones"`
}

// GridSpec selects the visible grid lines and how they are stroked
type GridSpec struct {
	Major      bool       `json:"major,omitempty" doc:"Show major grid lines"`
	Minor      bool       `json:"minor,omitempty" doc:"Show minor grid lines"`
	MajorStyle *LineStyle `json:"major_style,omitempty" doc:"Style of the major grid lines"`
	MinorStyle *LineStyle `json:"minor_style,omitempty" doc:"Style of the minor grid lines"`
}

// LineStyle overrides parts of a grid line style. Zero values keep the default.
type LineStyle struct {
	Color  string    `json:"color,omitempty" pattern:"^#[0-9a-fA-F]{6}$" doc:"Line colour as #rrggbb"`
	Width  float64   `json:"width,omitempty" minimum:"0" doc:"Line width in points"`
	Dashes []float64 `json:"dashes,omitempty" maxItems:"8" doc:"Dash pattern in points, empty for solid"`
	Alpha  float64   `json:"alpha,omitempty" minimum:"0" maximum:"1" doc:"Opacity between 0 and 1"`
}

// Series is one spectrum drawn on the chart
type Series struct {
	Name     string           `json:"name,omitempty" maxLength:"100" doc:"Legend entry"`
	Quantity string           `json:"quantity" enum:"velocity,displacement,acceleration" doc:"Quantity of the point values"`
	Color    string           `json:"color,omitempty" pattern:"^#[0-9a-fA-F]{6}$" doc:"Line colour as #rrggbb"`
	Points   []FrequencyPoint `json:"points" minItems:"1" maxItems:"10000" doc:"Spectrum points"`
}

// Zone shades the region where a quantity exceeds a limit
type Zone struct {
	Quantity string  `json:"quantity" enum:"velocity,displacement,acceleration" doc:"Limited quantity"`
	Above    float64 `json:"above" exclusiveMinimum:"0" doc:"Limit in SI units"`
	Color    string  `json:"color,omitempty" pattern:"^#[0-9a-fA-F]{6}$" doc:"Fill colour as #rrggbb"`
}

// Chart represents a stored chart (for internal use)
type Chart struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Format      string     `json:"format"`
	Status      string     `json:"status"`
	Progress    int        `json:"progress"`
	ObjectKey   *string    `json:"object_key,omitempty"`
	ErrorMsg    *string    `json:"error_message,omitempty"`
	Spec        ChartSpec  `json:"spec"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
