package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/RMahshie/vibronomogram/internal/mocks"
	"github.com/RMahshie/vibronomogram/internal/rendering"
	"github.com/RMahshie/vibronomogram/internal/repository"
	"github.com/RMahshie/vibronomogram/pkg/models"
	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestHandler() (*ChartHandler, *mocks.ChartRepository, *mocks.S3Service, *mocks.RenderingService) {
	mockRepo := new(mocks.ChartRepository)
	mockS3 := new(mocks.S3Service)
	mockRender := new(mocks.RenderingService)
	h := NewChartHandler(mockRepo, mockS3, mockRender, rendering.DefaultSettings)
	h.spawn = func(fn func()) { fn() }
	return h, mockRepo, mockS3, mockRender
}

func velocitySpec() models.ChartSpec {
	return models.ChartSpec{
		Title:           "pump bearing",
		FrequencyLimits: []float64{1, 1000},
		Series: []models.Series{{
			Name:     "overall",
			Quantity: "velocity",
			Points: []models.FrequencyPoint{
				{Frequency: 10, Value: 2e-3},
				{Frequency: 100, Value: 5e-3},
			},
		}},
	}
}

func statusCode(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	return se.GetStatus()
}

func TestCreateChart(t *testing.T) {
	tests := []struct {
		name      string
		spec      func() models.ChartSpec
		mockSetup func(*mocks.ChartRepository, *mocks.RenderingService)
		wantCode  int
		wantError bool
	}{
		{
			name: "valid spec",
			spec: velocitySpec,
			mockSetup: func(mockRepo *mocks.ChartRepository, mockRender *mocks.RenderingService) {
				mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *models.Chart) bool {
					return c.Status == models.StatusPending && c.Format == "png" && c.Title == "pump bearing"
				})).Return(nil)
				mockRender.On("ProcessChart", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(nil)
			},
		},
		{
			name: "render failure is only logged",
			spec: velocitySpec,
			mockSetup: func(mockRepo *mocks.ChartRepository, mockRender *mocks.RenderingService) {
				mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
				mockRender.On("ProcessChart", mock.Anything, mock.Anything).Return(errors.New("upload failed"))
			},
		},
		{
			name: "invalid limits",
			spec: func() models.ChartSpec {
				s := velocitySpec()
				s.FrequencyLimits = []float64{-1, 100}
				return s
			},
			wantCode:  http.StatusBadRequest,
			wantError: true,
		},
		{
			name: "unknown projection",
			spec: func() models.ChartSpec {
				s := velocitySpec()
				s.Projection = "polar"
				return s
			},
			wantCode:  http.StatusBadRequest,
			wantError: true,
		},
		{
			name: "database failure",
			spec: velocitySpec,
			mockSetup: func(mockRepo *mocks.ChartRepository, mockRender *mocks.RenderingService) {
				mockRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection reset"))
			},
			wantCode:  http.StatusInternalServerError,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mockRepo, _, mockRender := newTestHandler()
			if tt.mockSetup != nil {
				tt.mockSetup(mockRepo, mockRender)
			}

			resp, err := h.CreateChart(context.Background(), &models.CreateChartRequest{Body: tt.spec()})

			if tt.wantError {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, statusCode(t, err))
				mockRender.AssertNotCalled(t, "ProcessChart", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				_, err := uuid.Parse(resp.Body.ID)
				assert.NoError(t, err)
				assert.Equal(t, models.StatusPending, resp.Body.Status)
				mockRender.AssertCalled(t, "ProcessChart", mock.Anything, uuid.MustParse(resp.Body.ID))
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestGetChartStatus(t *testing.T) {
	id := uuid.New()
	failure := "velocity limits: non-positive value"

	tests := []struct {
		name        string
		id          string
		chart       *models.Chart
		repoErr     error
		wantCode    int
		wantMessage string
	}{
		{name: "pending", id: id.String(), chart: &models.Chart{ID: id.String(), Status: models.StatusPending}, wantMessage: "Chart queued for rendering..."},
		{name: "drawing", id: id.String(), chart: &models.Chart{ID: id.String(), Status: models.StatusRendering, Progress: rendering.ProgressLoaded}, wantMessage: "Drawing nomogram..."},
		{name: "storing", id: id.String(), chart: &models.Chart{ID: id.String(), Status: models.StatusRendering, Progress: rendering.ProgressUploaded}, wantMessage: "Storing image..."},
		{name: "completed", id: id.String(), chart: &models.Chart{ID: id.String(), Status: models.StatusCompleted, Progress: 100}, wantMessage: "Chart ready!"},
		{name: "failed", id: id.String(), chart: &models.Chart{ID: id.String(), Status: models.StatusFailed, ErrorMsg: &failure}, wantMessage: "Chart rendering failed: " + failure},
		{name: "invalid id", id: "not-a-uuid", wantCode: http.StatusBadRequest},
		{name: "not found", id: id.String(), repoErr: repository.ErrNotFound, wantCode: http.StatusNotFound},
		{name: "database failure", id: id.String(), repoErr: errors.New("timeout"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mockRepo, _, _ := newTestHandler()
			if tt.chart != nil || tt.repoErr != nil {
				mockRepo.On("GetByID", mock.Anything, id).Return(tt.chart, tt.repoErr)
			}

			resp, err := h.GetChartStatus(context.Background(), &models.GetChartStatusRequest{ID: tt.id})
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, statusCode(t, err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.chart.Status, resp.Body.Status)
			assert.Equal(t, tt.wantMessage, resp.Body.Message)
		})
	}
}

func TestGetChart(t *testing.T) {
	id := uuid.New()
	key := "charts/" + id.String() + ".png"
	done := time.Now()

	t.Run("completed chart has a download URL", func(t *testing.T) {
		h, mockRepo, mockS3, _ := newTestHandler()
		mockRepo.On("GetByID", mock.Anything, id).Return(&models.Chart{
			ID: id.String(), Format: "png", Status: models.StatusCompleted,
			ObjectKey: &key, Spec: velocitySpec(), CompletedAt: &done,
		}, nil)
		mockS3.On("GenerateDownloadURL", mock.Anything, key).Return("https://example.com/chart.png", nil)

		resp, err := h.GetChart(context.Background(), &models.GetChartRequest{ID: id.String()})
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/chart.png", resp.Body.DownloadURL)
		assert.Equal(t, 86400, resp.Body.ExpiresIn)
		assert.Equal(t, "pump bearing", resp.Body.Spec.Title)
		mockS3.AssertExpectations(t)
	})

	t.Run("pending chart has none", func(t *testing.T) {
		h, mockRepo, mockS3, _ := newTestHandler()
		mockRepo.On("GetByID", mock.Anything, id).Return(&models.Chart{
			ID: id.String(), Format: "svg", Status: models.StatusPending,
		}, nil)

		resp, err := h.GetChart(context.Background(), &models.GetChartRequest{ID: id.String()})
		require.NoError(t, err)
		assert.Empty(t, resp.Body.DownloadURL)
		mockS3.AssertNotCalled(t, "GenerateDownloadURL", mock.Anything, mock.Anything)
	})

	t.Run("presign failure", func(t *testing.T) {
		h, mockRepo, mockS3, _ := newTestHandler()
		mockRepo.On("GetByID", mock.Anything, id).Return(&models.Chart{
			ID: id.String(), Status: models.StatusCompleted, ObjectKey: &key,
		}, nil)
		mockS3.On("GenerateDownloadURL", mock.Anything, key).Return("", errors.New("no credentials"))

		_, err := h.GetChart(context.Background(), &models.GetChartRequest{ID: id.String()})
		assert.Equal(t, http.StatusInternalServerError, statusCode(t, err))
	})
}

func TestListCharts(t *testing.T) {
	h, mockRepo, _, _ := newTestHandler()
	now := time.Now()
	mockRepo.On("List", mock.Anything, 20).Return([]*models.Chart{
		{ID: "b", Title: "newer", Format: "png", Status: models.StatusCompleted, CreatedAt: now},
		{ID: "a", Title: "older", Format: "svg", Status: models.StatusFailed, CreatedAt: now.Add(-time.Hour)},
	}, nil)

	resp, err := h.ListCharts(context.Background(), &models.ListChartsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Body.Charts, 2)
	assert.Equal(t, "b", resp.Body.Charts[0].ID)
	assert.Equal(t, "older", resp.Body.Charts[1].Title)
}

func TestDeleteChart(t *testing.T) {
	id := uuid.New()
	key := "charts/" + id.String() + ".pdf"

	t.Run("removes image and record", func(t *testing.T) {
		h, mockRepo, mockS3, _ := newTestHandler()
		mockRepo.On("GetByID", mock.Anything, id).Return(&models.Chart{ID: id.String(), ObjectKey: &key}, nil)
		mockS3.On("DeleteFile", mock.Anything, key).Return(nil)
		mockRepo.On("Delete", mock.Anything, id).Return(nil)

		_, err := h.DeleteChart(context.Background(), &models.DeleteChartRequest{ID: id.String()})
		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
		mockS3.AssertExpectations(t)
	})

	t.Run("chart without image", func(t *testing.T) {
		h, mockRepo, mockS3, _ := newTestHandler()
		mockRepo.On("GetByID", mock.Anything, id).Return(&models.Chart{ID: id.String()}, nil)
		mockRepo.On("Delete", mock.Anything, id).Return(nil)

		_, err := h.DeleteChart(context.Background(), &models.DeleteChartRequest{ID: id.String()})
		require.NoError(t, err)
		mockS3.AssertNotCalled(t, "DeleteFile", mock.Anything, mock.Anything)
	})

	t.Run("storage failure keeps the record", func(t *testing.T) {
		h, mockRepo, mockS3, _ := newTestHandler()
		mockRepo.On("GetByID", mock.Anything, id).Return(&models.Chart{ID: id.String(), ObjectKey: &key}, nil)
		mockS3.On("DeleteFile", mock.Anything, key).Return(errors.New("access denied"))

		_, err := h.DeleteChart(context.Background(), &models.DeleteChartRequest{ID: id.String()})
		assert.Equal(t, http.StatusInternalServerError, statusCode(t, err))
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		h, mockRepo, _, _ := newTestHandler()
		mockRepo.On("GetByID", mock.Anything, id).Return(nil, repository.ErrNotFound)

		_, err := h.DeleteChart(context.Background(), &models.DeleteChartRequest{ID: id.String()})
		assert.Equal(t, http.StatusNotFound, statusCode(t, err))
	})
}
