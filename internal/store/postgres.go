package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/sells-group/readiness-cli/internal/db"
	"github.com/sells-group/readiness-cli/internal/diagnostic"
)

// PostgresStore implements Store using pgx.
type PostgresStore struct {
	pool db.Pool
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}
	pgxCfg.MaxConns = 10
	pgxCfg.MinConns = 2
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS evaluations (
	id              TEXT PRIMARY KEY,
	input           JSONB NOT NULL,
	score           JSONB NOT NULL,
	recommendations JSONB NOT NULL,
	alignment_score INTEGER NOT NULL,
	readiness_label TEXT NOT NULL,
	outbound_ready  BOOLEAN NOT NULL,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_evaluations_label ON evaluations(readiness_label);
CREATE INDEX IF NOT EXISTS idx_evaluations_ready ON evaluations(outbound_ready);
CREATE INDEX IF NOT EXISTS idx_evaluations_created_at ON evaluations(created_at DESC);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

// SaveEvaluation persists one evaluation and returns the stored record.
func (s *PostgresStore) SaveEvaluation(ctx context.Context, eval *diagnostic.Evaluation) (*Record, error) {
	rec, cols, err := newRow(eval)
	if err != nil {
		return nil, err
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO evaluations (id, input, score, recommendations, alignment_score, readiness_label, outbound_ready, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		cols[0], cols[1], cols[2], cols[3], cols[4], cols[5], rec.Score.OutboundReady, cols[7],
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: insert evaluation")
	}

	return rec, nil
}

// SaveEvaluations bulk-inserts a batch of evaluations via COPY.
func (s *PostgresStore) SaveEvaluations(ctx context.Context, evals []*diagnostic.Evaluation) (int64, error) {
	if len(evals) == 0 {
		return 0, nil
	}

	rows := make([][]any, 0, len(evals))
	for _, eval := range evals {
		rec, cols, err := newRow(eval)
		if err != nil {
			return 0, err
		}
		rows = append(rows, []any{
			cols[0], cols[1], cols[2], cols[3], cols[4], cols[5],
			rec.Score.OutboundReady, cols[7],
		})
	}

	n, err := db.CopyFrom(ctx, s.pool, "evaluations", []string{
		"id", "input", "score", "recommendations",
		"alignment_score", "readiness_label", "outbound_ready", "created_at",
	}, rows)
	if err != nil {
		return 0, eris.Wrap(err, "postgres: bulk insert evaluations")
	}
	return n, nil
}

// GetEvaluation returns one evaluation by id, or nil when not found.
func (s *PostgresStore) GetEvaluation(ctx context.Context, id string) (*Record, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, input, score, recommendations, created_at FROM evaluations WHERE id = $1`, id)

	rec, err := scanRecord(row.Scan)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "postgres: get evaluation")
	}
	return rec, nil
}

// ListEvaluations returns evaluations matching the filter, newest first.
func (s *PostgresStore) ListEvaluations(ctx context.Context, filter Filter) ([]Record, error) {
	query := `SELECT id, input, score, recommendations, created_at FROM evaluations WHERE 1=1`
	var args []any

	if filter.Label != "" {
		args = append(args, string(filter.Label))
		query += fmt.Sprintf(` AND readiness_label = $%d`, len(args))
	}
	if filter.Ready != nil {
		args = append(args, *filter.Ready)
		query += fmt.Sprintf(` AND outbound_ready = $%d`, len(args))
	}
	query += ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(` OFFSET $%d`, len(args))
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list evaluations")
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, eris.Wrap(err, "postgres: scan evaluation")
		}
		records = append(records, *rec)
	}
	return records, eris.Wrap(rows.Err(), "postgres: iterate evaluations")
}
