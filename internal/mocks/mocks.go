// Package mocks holds testify mocks of the service interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/RMahshie/vibronomogram/pkg/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// ChartRepository implements repository.ChartRepository for testing
type ChartRepository struct {
	mock.Mock
}

func (m *ChartRepository) Create(ctx context.Context, chart *models.Chart) error {
	args := m.Called(ctx, chart)
	return args.Error(0)
}

func (m *ChartRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Chart, error) {
	args := m.Called(ctx, id)
	chart, _ := args.Get(0).(*models.Chart)
	return chart, args.Error(1)
}

func (m *ChartRepository) List(ctx context.Context, limit int) ([]*models.Chart, error) {
	args := m.Called(ctx, limit)
	charts, _ := args.Get(0).([]*models.Chart)
	return charts, args.Error(1)
}

func (m *ChartRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string, progress int) error {
	args := m.Called(ctx, id, status, progress)
	return args.Error(0)
}

func (m *ChartRepository) UpdateError(ctx context.Context, id uuid.UUID, errorMsg string) error {
	args := m.Called(ctx, id, errorMsg)
	return args.Error(0)
}

func (m *ChartRepository) SetObjectKey(ctx context.Context, id uuid.UUID, key string) error {
	args := m.Called(ctx, id, key)
	return args.Error(0)
}

func (m *ChartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// S3Service implements storage.S3Service for testing
type S3Service struct {
	mock.Mock
}

func (m *S3Service) UploadFile(ctx context.Context, key string, contentType string, data []byte) error {
	args := m.Called(ctx, key, contentType, data)
	return args.Error(0)
}

func (m *S3Service) GenerateDownloadURL(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *S3Service) DownloadFile(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func (m *S3Service) DeleteFile(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *S3Service) URLExpiry() time.Duration {
	return 24 * time.Hour
}

// RenderingService implements rendering.RenderingService for testing
type RenderingService struct {
	mock.Mock
}

func (m *RenderingService) ProcessChart(ctx context.Context, chartID uuid.UUID) error {
	args := m.Called(ctx, chartID)
	return args.Error(0)
}
