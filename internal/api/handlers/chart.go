package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RMahshie/vibronomogram/internal/rendering"
	"github.com/RMahshie/vibronomogram/internal/repository"
	"github.com/RMahshie/vibronomogram/internal/storage"
	"github.com/RMahshie/vibronomogram/pkg/models"
	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ChartHandler handles chart-related HTTP requests
type ChartHandler struct {
	repo         repository.ChartRepository
	s3Service    storage.S3Service
	renderingSvc rendering.RenderingService
	defaults     rendering.Defaults

	// spawn runs background renders
	spawn func(func())
}

// NewChartHandler creates a new chart handler
func NewChartHandler(repo repository.ChartRepository, s3Service storage.S3Service, renderingSvc rendering.RenderingService, defaults rendering.Defaults) *ChartHandler {
	return &ChartHandler{
		repo:         repo,
		s3Service:    s3Service,
		renderingSvc: renderingSvc,
		defaults:     defaults,
		spawn:        func(fn func()) { go fn() },
	}
}

// CreateChart stores a chart spec and starts rendering it in the background
func (h *ChartHandler) CreateChart(ctx context.Context, req *models.CreateChartRequest) (*models.CreateChartResponse, error) {
	spec := req.Body
	format := h.defaults.FormatOf(&spec)
	if _, err := rendering.ContentType(format); err != nil {
		return nil, huma.Error400BadRequest(err.Error(), err)
	}
	if _, err := rendering.Build(&spec); err != nil {
		return nil, huma.Error400BadRequest(err.Error(), err)
	}

	chartID := uuid.New()
	now := time.Now()
	chart := &models.Chart{
		ID:        chartID.String(),
		Title:     spec.Title,
		Format:    format,
		Status:    models.StatusPending,
		Progress:  0,
		Spec:      spec,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.repo.Create(ctx, chart); err != nil {
		return nil, huma.Error500InternalServerError("Failed to create chart", err)
	}
	log.Info().Str("chartID", chart.ID).Str("format", format).Int("series", len(spec.Series)).Msg("Chart created")

	h.spawn(func() {
		if err := h.renderingSvc.ProcessChart(context.Background(), chartID); err != nil {
			log.Error().Err(err).Str("chartID", chartID.String()).Msg("Chart rendering failed")
		}
	})

	return &models.CreateChartResponse{
		Body: models.CreateChartResponseBody{
			ID:     chart.ID,
			Status: chart.Status,
		},
	}, nil
}

// GetChartStatus returns the current status of a chart
func (h *ChartHandler) GetChartStatus(ctx context.Context, req *models.GetChartStatusRequest) (*models.GetChartStatusResponse, error) {
	chart, err := h.lookup(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	return &models.GetChartStatusResponse{
		Body: models.GetChartStatusResponseBody{
			ID:       chart.ID,
			Status:   chart.Status,
			Progress: chart.Progress,
			Message:  statusMessage(chart),
		},
	}, nil
}

// GetChart returns a chart record with a download URL once it is rendered
func (h *ChartHandler) GetChart(ctx context.Context, req *models.GetChartRequest) (*models.GetChartResponse, error) {
	chart, err := h.lookup(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	body := models.GetChartResponseBody{
		ID:          chart.ID,
		Title:       chart.Title,
		Format:      chart.Format,
		Status:      chart.Status,
		Spec:        chart.Spec,
		CreatedAt:   chart.CreatedAt,
		CompletedAt: chart.CompletedAt,
	}
	if chart.ErrorMsg != nil {
		body.Error = *chart.ErrorMsg
	}

	if chart.Status == models.StatusCompleted && chart.ObjectKey != nil {
		url, err := h.s3Service.GenerateDownloadURL(ctx, *chart.ObjectKey)
		if err != nil {
			return nil, huma.Error500InternalServerError("Failed to generate download URL", err)
		}
		body.DownloadURL = url
		body.ExpiresIn = int(h.s3Service.URLExpiry().Seconds())
	}

	return &models.GetChartResponse{Body: body}, nil
}

// ListCharts returns the most recent charts
func (h *ChartHandler) ListCharts(ctx context.Context, req *models.ListChartsRequest) (*models.ListChartsResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = 20
	}

	charts, err := h.repo.List(ctx, limit)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list charts", err)
	}

	resp := &models.ListChartsResponse{}
	resp.Body.Charts = make([]models.ChartSummary, 0, len(charts))
	for _, c := range charts {
		resp.Body.Charts = append(resp.Body.Charts, models.ChartSummary{
			ID:        c.ID,
			Title:     c.Title,
			Format:    c.Format,
			Status:    c.Status,
			CreatedAt: c.CreatedAt,
		})
	}
	return resp, nil
}

// DeleteChart removes a chart and its stored image
func (h *ChartHandler) DeleteChart(ctx context.Context, req *models.DeleteChartRequest) (*struct{}, error) {
	chart, err := h.lookup(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	chartID := uuid.MustParse(chart.ID)

	if chart.ObjectKey != nil {
		if err := h.s3Service.DeleteFile(ctx, *chart.ObjectKey); err != nil {
			return nil, huma.Error500InternalServerError("Failed to delete chart image", err)
		}
	}
	if err := h.repo.Delete(ctx, chartID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, huma.Error404NotFound("Chart not found", err)
		}
		return nil, huma.Error500InternalServerError("Failed to delete chart", err)
	}

	log.Info().Str("chartID", chart.ID).Msg("Chart deleted")
	return nil, nil
}

func (h *ChartHandler) lookup(ctx context.Context, rawID string) (*models.Chart, error) {
	chartID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid chart ID", err)
	}

	chart, err := h.repo.GetByID(ctx, chartID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, huma.Error404NotFound("Chart not found", err)
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to load chart", err)
	}
	return chart, nil
}

// statusMessage creates a human-readable status message
func statusMessage(chart *models.Chart) string {
	switch chart.Status {
	case models.StatusPending:
		return "Chart queued for rendering..."
	case models.StatusRendering:
		switch {
		case chart.Progress < rendering.ProgressLoaded:
			return "Loading chart spec..."
		case chart.Progress < rendering.ProgressRendered:
			return "Drawing nomogram..."
		default:
			return "Storing image..."
		}
	case models.StatusCompleted:
		return "Chart ready!"
	case models.StatusFailed:
		if chart.ErrorMsg != nil {
			return fmt.Sprintf("Chart rendering failed: %s", *chart.ErrorMsg)
		}
		return "Chart rendering failed."
	default:
		return "Unknown status"
	}
}
