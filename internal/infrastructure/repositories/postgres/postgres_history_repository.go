package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver

	"github.com/rios0rios0/repograde/internal/domain/entities"
	"github.com/rios0rios0/repograde/internal/domain/repositories"
)

const schema = `
CREATE TABLE IF NOT EXISTS analyses (
  seq BIGSERIAL PRIMARY KEY,
  id UUID NOT NULL UNIQUE,
  repo_name TEXT NOT NULL,
  repo_url TEXT NOT NULL,
  score INTEGER NOT NULL,
  summary TEXT NOT NULL,
  roadmap JSONB NOT NULL DEFAULT '[]'::jsonb,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_analyses_created_at ON analyses (created_at DESC);
`

const schemaTimeout = 10 * time.Second

// PostgresHistoryRepository persists analyses in a PostgreSQL table. The
// connection and schema are established on first use and retried after a
// failure.
type PostgresHistoryRepository struct {
	db *sql.DB

	schemaMu    sync.Mutex
	schemaReady atomic.Bool
}

var _ repositories.HistoryRepository = (*PostgresHistoryRepository)(nil)

// NewPostgresHistoryRepository prepares a pool for dsn without connecting.
func NewPostgresHistoryRepository(dsn string) (*PostgresHistoryRepository, error) {
	db, err := sql.Open("pgx", strings.TrimSpace(dsn))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return NewPostgresHistoryRepositoryFromDB(db), nil
}

// NewPostgresHistoryRepositoryFromDB wraps an already opened handle.
func NewPostgresHistoryRepositoryFromDB(db *sql.DB) *PostgresHistoryRepository {
	return &PostgresHistoryRepository{db: db}
}

// ensureSchema creates the table once it succeeds. The caller's cancellation
// does not abort it, so a dropped request cannot leave the schema half-tried.
func (r *PostgresHistoryRepository) ensureSchema(ctx context.Context) error {
	if r.schemaReady.Load() {
		return nil
	}

	r.schemaMu.Lock()
	defer r.schemaMu.Unlock()
	if r.schemaReady.Load() {
		return nil
	}

	schemaCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), schemaTimeout)
	defer cancel()
	if _, err := r.db.ExecContext(schemaCtx, schema); err != nil {
		return err
	}
	r.schemaReady.Store(true)
	return nil
}

func (r *PostgresHistoryRepository) Insert(ctx context.Context, analysis entities.Analysis) error {
	if err := r.ensureSchema(ctx); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	roadmap := analysis.Roadmap
	if roadmap == nil {
		roadmap = []string{}
	}
	encoded, err := json.Marshal(roadmap)
	if err != nil {
		return fmt.Errorf("failed to encode roadmap: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
INSERT INTO analyses (id, repo_name, repo_url, score, summary, roadmap, created_at)
VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7)`,
		analysis.ID.String(), analysis.RepoName, analysis.RepoURL,
		analysis.Score, analysis.Summary, string(encoded), analysis.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert analysis %s: %w", analysis.ID, err)
	}
	return nil
}

func (r *PostgresHistoryRepository) ListRecent(ctx context.Context, limit int) ([]entities.Analysis, error) {
	if limit <= 0 {
		return []entities.Analysis{}, nil
	}
	if err := r.ensureSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT id, repo_name, repo_url, score, summary, roadmap, created_at
FROM analyses
ORDER BY created_at DESC, seq DESC
LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query analyses: %w", err)
	}
	defer rows.Close()

	out := make([]entities.Analysis, 0, limit)
	for rows.Next() {
		analysis, scanErr := scanAnalysis(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, analysis)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("failed to read analyses: %w", rowsErr)
	}
	return out, nil
}

// Close releases the underlying connection pool.
func (r *PostgresHistoryRepository) Close() error {
	return r.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (entities.Analysis, error) {
	var (
		analysis entities.Analysis
		roadmap  []byte
	)
	if err := row.Scan(
		&analysis.ID, &analysis.RepoName, &analysis.RepoURL,
		&analysis.Score, &analysis.Summary, &roadmap, &analysis.CreatedAt,
	); err != nil {
		return entities.Analysis{}, fmt.Errorf("failed to scan analysis: %w", err)
	}
	analysis.Roadmap = []string{}
	if len(roadmap) > 0 {
		if err := json.Unmarshal(roadmap, &analysis.Roadmap); err != nil {
			return entities.Analysis{}, fmt.Errorf("failed to decode roadmap of %s: %w", analysis.ID, err)
		}
	}
	analysis.CreatedAt = analysis.CreatedAt.UTC()
	return analysis, nil
}
