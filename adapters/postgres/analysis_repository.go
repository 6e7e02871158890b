// Package postgres persists completed analyses in a Postgres database.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"gorace/app"
	"gorace/domain/core"
)

const schema = `
CREATE TABLE IF NOT EXISTS analyses (
	id         TEXT PRIMARY KEY,
	payload    JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
)`

// analysisRepository implements app.AnalysisStore on Postgres.
type analysisRepository struct {
	db *sqlx.DB
}

// NewAnalysisRepository creates the repository and ensures the schema
// exists.
func NewAnalysisRepository(db *sqlx.DB) (app.AnalysisStore, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create analyses table: %w", err)
	}
	return &analysisRepository{db: db}, nil
}

// Save inserts a completed analysis.
func (r *analysisRepository) Save(ctx context.Context, a *app.Analysis) error {
	payload, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	query := `INSERT INTO analyses (id, payload, created_at) VALUES ($1, $2, $3)`
	if _, err := r.db.ExecContext(ctx, query, a.ID, payload, a.CreatedAt); err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}
	return nil
}

// Get retrieves an analysis by its id.
func (r *analysisRepository) Get(ctx context.Context, id string) (*app.Analysis, error) {
	var payload []byte
	query := `SELECT payload FROM analyses WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, core.NewDataNotFoundError("analysis", id)
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	var a app.Analysis
	if err := json.Unmarshal(payload, &a); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis: %w", err)
	}
	return &a, nil
}

// List returns all stored analyses, newest first.
func (r *analysisRepository) List(ctx context.Context) ([]*app.Analysis, error) {
	query := `SELECT payload FROM analyses ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var out []*app.Analysis
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		var a app.Analysis
		if err := json.Unmarshal(payload, &a); err != nil {
			return nil, fmt.Errorf("failed to unmarshal analysis: %w", err)
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}
