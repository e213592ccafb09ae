package rendering

import (
	"context"
	"errors"
	"fmt"

	"github.com/RMahshie/vibronomogram/internal/repository"
	"github.com/RMahshie/vibronomogram/internal/storage"
	"github.com/RMahshie/vibronomogram/pkg/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Progress reported at each stage of a render
const (
	ProgressStarted  = 10
	ProgressLoaded   = 30
	ProgressRendered = 60
	ProgressUploaded = 85
	ProgressDone     = 100
)

type RenderingService interface {
	ProcessChart(ctx context.Context, chartID uuid.UUID) error
}

type renderingService struct {
	s3         storage.S3Service
	repository repository.ChartRepository
	defaults   Defaults
}

func NewRenderingService(s3Service storage.S3Service, repo repository.ChartRepository, defaults Defaults) RenderingService {
	return &renderingService{
		s3:         s3Service,
		repository: repo,
		defaults:   defaults,
	}
}

// ProcessChart renders a stored chart spec and uploads the image. Failures
// after the chart was loaded mark the chart as failed.
func (s *renderingService) ProcessChart(ctx context.Context, chartID uuid.UUID) error {
	logger := log.With().Str("chartID", chartID.String()).Logger()

	// Step 1: Update to rendering status
	if err := s.repository.UpdateStatus(ctx, chartID, models.StatusRendering, ProgressStarted); err != nil {
		return err
	}

	// Step 2: Load the spec
	chart, err := s.repository.GetByID(ctx, chartID)
	if err != nil {
		return err
	}
	if err := s.repository.UpdateStatus(ctx, chartID, models.StatusRendering, ProgressLoaded); err != nil {
		return err
	}

	// Step 3: Render
	img, err := Render(&chart.Spec, s.defaults)
	if err != nil {
		return s.fail(ctx, chartID, err)
	}
	logger.Debug().Int("bytes", len(img.Data)).Str("format", img.Format).Msg("chart rendered")
	if err := s.repository.UpdateStatus(ctx, chartID, models.StatusRendering, ProgressRendered); err != nil {
		return err
	}

	// Step 4: Upload
	key := ObjectKey(chart.ID, img.Format)
	if err := s.s3.UploadFile(ctx, key, img.ContentType, img.Data); err != nil {
		return s.fail(ctx, chartID, fmt.Errorf("failed to store chart: %w", err))
	}
	if err := s.repository.SetObjectKey(ctx, chartID, key); err != nil {
		return err
	}
	if err := s.repository.UpdateStatus(ctx, chartID, models.StatusRendering, ProgressUploaded); err != nil {
		return err
	}

	// Step 5: Mark complete
	if err := s.repository.UpdateStatus(ctx, chartID, models.StatusCompleted, ProgressDone); err != nil {
		return err
	}

	logger.Info().Str("object_key", key).Msg("chart completed")
	return nil
}

func (s *renderingService) fail(ctx context.Context, chartID uuid.UUID, cause error) error {
	msg := cause.Error()
	if !errors.Is(cause, ErrInvalidSpec) {
		msg = "Chart rendering failed"
	}
	if err := s.repository.UpdateError(ctx, chartID, msg); err != nil {
		log.Error().Err(err).Str("chartID", chartID.String()).Msg("Failed to record chart error")
	}
	return cause
}
