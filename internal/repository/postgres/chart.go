package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/RMahshie/vibronomogram/internal/repository"
	"github.com/RMahshie/vibronomogram/pkg/models"
	"github.com/google/uuid"
)

const chartColumns = `id, title, format, status, progress, object_key, error_message, spec, created_at, updated_at, completed_at`

// PostgresChartRepository implements ChartRepository for PostgreSQL
type PostgresChartRepository struct {
	db *sql.DB
}

// NewPostgresChartRepository creates a new PostgreSQL chart repository
func NewPostgresChartRepository(db *sql.DB) repository.ChartRepository {
	return &PostgresChartRepository{db: db}
}

// Create inserts a new chart record
func (r *PostgresChartRepository) Create(ctx context.Context, chart *models.Chart) error {
	spec, err := json.Marshal(chart.Spec)
	if err != nil {
		return fmt.Errorf("failed to marshal chart spec: %w", err)
	}

	query := `
		INSERT INTO charts (id, title, format, status, progress, object_key, spec, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err = r.db.ExecContext(ctx, query,
		chart.ID,
		chart.Title,
		chart.Format,
		chart.Status,
		chart.Progress,
		chart.ObjectKey,
		string(spec),
		chart.CreatedAt,
		chart.UpdatedAt)

	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanChart(row scanner) (*models.Chart, error) {
	var chart models.Chart
	var objectKey, errorMsg sql.NullString
	var completedAt sql.NullTime
	var spec []byte

	err := row.Scan(
		&chart.ID,
		&chart.Title,
		&chart.Format,
		&chart.Status,
		&chart.Progress,
		&objectKey,
		&errorMsg,
		&spec,
		&chart.CreatedAt,
		&chart.UpdatedAt,
		&completedAt)
	if err != nil {
		return nil, err
	}

	if objectKey.Valid {
		chart.ObjectKey = &objectKey.String
	}
	if errorMsg.Valid {
		chart.ErrorMsg = &errorMsg.String
	}
	if completedAt.Valid {
		chart.CompletedAt = &completedAt.Time
	}
	if err := json.Unmarshal(spec, &chart.Spec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal chart spec: %w", err)
	}

	return &chart, nil
}

// GetByID retrieves a chart by ID
func (r *PostgresChartRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Chart, error) {
	query := `SELECT ` + chartColumns + ` FROM charts WHERE id = $1`

	chart, err := scanChart(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	return chart, err
}

// List retrieves the most recent charts, newest first
func (r *PostgresChartRepository) List(ctx context.Context, limit int) ([]*models.Chart, error) {
	query := `SELECT ` + chartColumns + ` FROM charts ORDER BY created_at DESC LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	charts := []*models.Chart{}
	for rows.Next() {
		chart, err := scanChart(rows)
		if err != nil {
			return nil, err
		}
		charts = append(charts, chart)
	}

	return charts, rows.Err()
}

// UpdateStatus updates the status and progress of a chart
func (r *PostgresChartRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string, progress int) error {
	query := `
		UPDATE charts
		SET status = $1, progress = $2, updated_at = NOW(),
		    completed_at = CASE WHEN $1 = 'completed' THEN NOW() ELSE completed_at END
		WHERE id = $3`

	return r.exec(ctx, query, status, progress, id)
}

// UpdateError marks a chart as failed with the given message
func (r *PostgresChartRepository) UpdateError(ctx context.Context, id uuid.UUID, errorMsg string) error {
	query := `
		UPDATE charts
		SET status = 'failed', error_message = $1, updated_at = NOW()
		WHERE id = $2`

	return r.exec(ctx, query, errorMsg, id)
}

// SetObjectKey records where the rendered image was stored
func (r *PostgresChartRepository) SetObjectKey(ctx context.Context, id uuid.UUID, key string) error {
	query := `UPDATE charts SET object_key = $1, updated_at = NOW() WHERE id = $2`

	return r.exec(ctx, query, key, id)
}

// Delete removes a chart record
func (r *PostgresChartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.exec(ctx, `DELETE FROM charts WHERE id = $1`, id)
}

func (r *PostgresChartRepository) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
