package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/sells-group/readiness-cli/internal/diagnostic"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS evaluations (
	id              TEXT PRIMARY KEY,
	input           TEXT NOT NULL,
	score           TEXT NOT NULL,
	recommendations TEXT NOT NULL,
	alignment_score INTEGER NOT NULL,
	readiness_label TEXT NOT NULL,
	outbound_ready  INTEGER NOT NULL,
	created_at      DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_evaluations_label ON evaluations(readiness_label);
CREATE INDEX IF NOT EXISTS idx_evaluations_ready ON evaluations(outbound_ready);
CREATE INDEX IF NOT EXISTS idx_evaluations_created_at ON evaluations(created_at DESC);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveEvaluation persists one evaluation and returns the stored record.
func (s *SQLiteStore) SaveEvaluation(ctx context.Context, eval *diagnostic.Evaluation) (*Record, error) {
	rec, cols, err := newRow(eval)
	if err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO evaluations (id, input, score, recommendations, alignment_score, readiness_label, outbound_ready, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		cols...,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert evaluation")
	}

	return rec, nil
}

// SaveEvaluations persists a batch of evaluations in one transaction.
func (s *SQLiteStore) SaveEvaluations(ctx context.Context, evals []*diagnostic.Evaluation) (int64, error) {
	if len(evals) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, eris.Wrap(err, "sqlite: begin tx")
	}
	defer tx.Rollback() //nolint:errcheck

	var n int64
	for _, eval := range evals {
		_, cols, err := newRow(eval)
		if err != nil {
			return n, err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO evaluations (id, input, score, recommendations, alignment_score, readiness_label, outbound_ready, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			cols...,
		); err != nil {
			return n, eris.Wrap(err, "sqlite: insert evaluation")
		}
		n++
	}

	if err := tx.Commit(); err != nil {
		return n, eris.Wrap(err, "sqlite: commit")
	}
	return n, nil
}

// GetEvaluation returns one evaluation by id, or nil when not found.
func (s *SQLiteStore) GetEvaluation(ctx context.Context, id string) (*Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, input, score, recommendations, created_at FROM evaluations WHERE id = ?`, id)

	rec, err := scanRecord(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: get evaluation")
	}
	return rec, nil
}

// ListEvaluations returns evaluations matching the filter, newest first.
func (s *SQLiteStore) ListEvaluations(ctx context.Context, filter Filter) ([]Record, error) {
	query := `SELECT id, input, score, recommendations, created_at FROM evaluations WHERE 1=1`
	var args []any

	if filter.Label != "" {
		query += ` AND readiness_label = ?`
		args = append(args, string(filter.Label))
	}
	if filter.Ready != nil {
		query += ` AND outbound_ready = ?`
		args = append(args, boolToInt(*filter.Ready))
	}
	query += ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	} else if filter.Offset > 0 {
		// SQLite only accepts OFFSET after a LIMIT clause; -1 means no limit.
		query += ` LIMIT -1`
	}
	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list evaluations")
	}
	defer rows.Close() //nolint:errcheck

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, eris.Wrap(err, "sqlite: scan evaluation")
		}
		records = append(records, *rec)
	}
	return records, eris.Wrap(rows.Err(), "sqlite: iterate evaluations")
}

// newRow marshals an evaluation into the stored record and its column values.
func newRow(eval *diagnostic.Evaluation) (*Record, []any, error) {
	rec := &Record{
		ID:              uuid.New().String(),
		Input:           eval.Input,
		Score:           eval.Score,
		Recommendations: eval.Recommendations,
		CreatedAt:       time.Now().UTC(),
	}

	inputJSON, err := json.Marshal(rec.Input)
	if err != nil {
		return nil, nil, eris.Wrap(err, "store: marshal input")
	}
	scoreJSON, err := json.Marshal(rec.Score)
	if err != nil {
		return nil, nil, eris.Wrap(err, "store: marshal score")
	}
	recsJSON, err := json.Marshal(rec.Recommendations)
	if err != nil {
		return nil, nil, eris.Wrap(err, "store: marshal recommendations")
	}

	cols := []any{
		rec.ID, string(inputJSON), string(scoreJSON), string(recsJSON),
		rec.Score.AlignmentScore, string(rec.Score.ReadinessLabel),
		boolToInt(rec.Score.OutboundReady), rec.CreatedAt,
	}
	return rec, cols, nil
}

// scanRecord unmarshals one stored row via the given scan function.
func scanRecord(scan func(dest ...any) error) (*Record, error) {
	var rec Record
	var inputJSON, scoreJSON, recsJSON string

	if err := scan(&rec.ID, &inputJSON, &scoreJSON, &recsJSON, &rec.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(inputJSON), &rec.Input); err != nil {
		return nil, eris.Wrap(err, "store: unmarshal input")
	}
	if err := json.Unmarshal([]byte(scoreJSON), &rec.Score); err != nil {
		return nil, eris.Wrap(err, "store: unmarshal score")
	}
	if err := json.Unmarshal([]byte(recsJSON), &rec.Recommendations); err != nil {
		return nil, eris.Wrap(err, "store: unmarshal recommendations")
	}
	return &rec, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
