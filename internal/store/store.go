// Package store persists scored evaluations for later review and analytics.
// The scoring engine itself never touches this package; commands and the
// HTTP API call it after an evaluation completes.
package store

import (
	"context"
	"time"

	"github.com/sells-group/readiness-cli/internal/diagnostic"
	"github.com/sells-group/readiness-cli/internal/offer"
)

// Record is one persisted evaluation.
type Record struct {
	ID              string                          `json:"id"`
	Input           offer.DiagnosticInput           `json:"input"`
	Score           diagnostic.ScoreResult          `json:"score"`
	Recommendations []diagnostic.Recommendation     `json:"recommendations"`
	CreatedAt       time.Time                       `json:"created_at"`
}

// Filter specifies criteria for listing evaluations.
type Filter struct {
	Label  diagnostic.ReadinessLabel `json:"label,omitempty"`
	Ready  *bool                     `json:"ready,omitempty"`
	Limit  int                       `json:"limit,omitempty"`
	Offset int                       `json:"offset,omitempty"`
}

// Store defines the persistence interface for evaluations.
type Store interface {
	SaveEvaluation(ctx context.Context, eval *diagnostic.Evaluation) (*Record, error)
	SaveEvaluations(ctx context.Context, evals []*diagnostic.Evaluation) (int64, error)
	GetEvaluation(ctx context.Context, id string) (*Record, error)
	ListEvaluations(ctx context.Context, filter Filter) ([]Record, error)

	Migrate(ctx context.Context) error
	Close() error
}
