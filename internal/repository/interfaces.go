package repository

import (
	"context"
	"errors"

	"github.com/RMahshie/vibronomogram/pkg/models"
	"github.com/google/uuid"
)

// ErrNotFound is returned when no chart has the requested ID
var ErrNotFound = errors.New("chart not found")

// ChartRepository defines the interface for chart data operations
type ChartRepository interface {
	Create(ctx context.Context, chart *models.Chart) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Chart, error)
	List(ctx context.Context, limit int) ([]*models.Chart, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string, progress int) error
	UpdateError(ctx context.Context, id uuid.UUID, errorMsg string) error
	SetObjectKey(ctx context.Context, id uuid.UUID, key string) error
	Delete(ctx context.Context, id uuid.UUID) error
}
