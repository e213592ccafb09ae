package handlers

import (
	"context"
	"errors"

	"github.com/RMahshie/vibronomogram/internal/rendering"
	"github.com/RMahshie/vibronomogram/pkg/models"
	"github.com/RMahshie/vibronomogram/pkg/nomogram"
	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog/log"
)

// NomogramHandler serves the stateless chart endpoints
type NomogramHandler struct {
	defaults rendering.Defaults
}

// NewNomogramHandler creates a new nomogram handler
func NewNomogramHandler(defaults rendering.Defaults) *NomogramHandler {
	return &NomogramHandler{defaults: defaults}
}

// ListProjections returns the registered projection names
func (h *NomogramHandler) ListProjections(ctx context.Context, _ *struct{}) (*models.ListProjectionsResponse, error) {
	resp := &models.ListProjectionsResponse{}
	resp.Body.Projections = nomogram.Names()
	return resp, nil
}

// ComputeIsoLines returns the clipped iso-lines of a view
func (h *NomogramHandler) ComputeIsoLines(ctx context.Context, req *models.IsoLinesRequest) (*models.IsoLinesResponse, error) {
	lines, err := rendering.IsoLines(req.Body)
	if err != nil {
		return nil, specError(err)
	}
	return &models.IsoLinesResponse{Body: *lines}, nil
}

// PreviewChart renders a chart and returns the image directly
func (h *NomogramHandler) PreviewChart(ctx context.Context, req *models.PreviewChartRequest) (*models.PreviewChartResponse, error) {
	img, err := rendering.Render(&req.Body, h.defaults)
	if err != nil {
		return nil, specError(err)
	}
	log.Debug().Str("format", img.Format).Int("bytes", len(img.Data)).Msg("Preview rendered")

	return &models.PreviewChartResponse{
		ContentType: img.ContentType,
		Body:        img.Data,
	}, nil
}

func specError(err error) error {
	if errors.Is(err, rendering.ErrInvalidSpec) {
		return huma.Error400BadRequest(err.Error(), err)
	}
	return huma.Error500InternalServerError("Failed to render chart", err)
}
