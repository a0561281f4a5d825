// Package diagnostic implements the offer readiness scoring engine: latent
// dimension subscores, hard/soft gate evaluation, composite aggregation and
// remediation recommendations. Every function is a pure computation over a
// validated offer.DiagnosticInput; the package holds no state across calls
// and is safe for concurrent use.
package diagnostic

import "github.com/sells-group/readiness-cli/internal/offer"

// Dimension is one independently-scored structural aspect of an offer.
type Dimension string

const (
	DimICPFit         Dimension = "icp_fit"
	DimPromise        Dimension = "promise_strength"
	DimPricing        Dimension = "pricing_viability"
	DimRisk           Dimension = "risk_alignment"
	DimFulfillment    Dimension = "fulfillment_feasibility"
	DimProof          Dimension = "proof_strength"
	DimPositioning    Dimension = "positioning_clarity"
	DimFounderReady   Dimension = "founder_readiness"
)

// MaxSubscore is the upper bound of every latent dimension subscore.
const MaxSubscore = 20

// bottleneckPriority is the fixed tie-break ordering for the primary
// bottleneck: when two dimensions share the lowest subscore, the one listed
// earlier wins. This is also the canonical iteration order for reports.
var bottleneckPriority = []Dimension{
	DimICPFit,
	DimPromise,
	DimPricing,
	DimRisk,
	DimFulfillment,
	DimProof,
	DimPositioning,
	DimFounderReady,
}

// Dimensions returns every latent dimension in canonical order.
func Dimensions() []Dimension {
	out := make([]Dimension, len(bottleneckPriority))
	copy(out, bottleneckPriority)
	return out
}

// LatentScores maps every latent dimension to its subscore in [0,20].
// Produced fresh per evaluation and never mutated afterwards.
type LatentScores map[Dimension]int

// GateResult holds the gates triggered by one evaluation. ScoreCap is the
// minimum cap across triggered soft gates, nil when no soft gate triggered.
type GateResult struct {
	HardGates []string `json:"triggered_hard_gates"`
	SoftGates []string `json:"triggered_soft_gates"`
	ScoreCap  *int     `json:"score_cap,omitempty"`
}

// ReadinessLabel is the three-tier qualitative bucket for a composite score.
type ReadinessLabel string

const (
	LabelStrong   ReadinessLabel = "strong"
	LabelModerate ReadinessLabel = "moderate"
	LabelWeak     ReadinessLabel = "weak"
)

// Severity qualifies a bottleneck or recommendation.
type Severity string

const (
	SeverityBlocking Severity = "blocking"
	SeverityModerate Severity = "moderate"
)

// Bottleneck identifies the single most limiting dimension.
type Bottleneck struct {
	Dimension   Dimension `json:"dimension"`
	Severity    Severity  `json:"severity"`
	Explanation string    `json:"explanation"`
}

// ScoreResult is the terminal output of one evaluation.
type ScoreResult struct {
	AlignmentScore    int            `json:"alignment_score"`
	ReadinessLabel    ReadinessLabel `json:"readiness_label"`
	LatentScores      LatentScores   `json:"latent_scores"`
	PrimaryBottleneck Bottleneck     `json:"primary_bottleneck"`
	OutboundReady     bool           `json:"outbound_ready"`
	HardGates         []string       `json:"triggered_hard_gates"`
	SoftGates         []string       `json:"triggered_soft_gates"`
	ScoreCap          *int           `json:"score_cap,omitempty"`
}

// RecommendationCategory is the closed set of remediation categories.
type RecommendationCategory string

const (
	CategoryICPShift          RecommendationCategory = "icp_shift"
	CategoryPromiseShift      RecommendationCategory = "promise_shift"
	CategoryFulfillmentShift  RecommendationCategory = "fulfillment_shift"
	CategoryPricingShift      RecommendationCategory = "pricing_shift"
	CategoryRiskShift         RecommendationCategory = "risk_shift"
	CategoryPositioningShift  RecommendationCategory = "positioning_shift"
	CategoryFounderPsychology RecommendationCategory = "founder_psychology_check"
)

// Recommendation is one remediation item.
type Recommendation struct {
	Category         RecommendationCategory `json:"category"`
	Severity         Severity               `json:"severity"`
	Headline         string                 `json:"headline"`
	PlainExplanation string                 `json:"plain_explanation"`
	ActionSteps      []string               `json:"action_steps"`
	DesiredState     string                 `json:"desired_state"`
}

// Evaluation bundles the composite score with its recommendations.
type Evaluation struct {
	Input           offer.DiagnosticInput `json:"input"`
	Score           ScoreResult           `json:"score"`
	Recommendations []Recommendation      `json:"recommendations"`
}

// Evaluate sequences the full engine: validate, score dimensions, evaluate
// gates, aggregate, generate recommendations. The only error it can return
// is an *offer.ValidationError from the completeness check.
func Evaluate(input offer.DiagnosticInput) (*Evaluation, error) {
	scores, err := ScoreDimensions(input)
	if err != nil {
		return nil, err
	}
	gates := EvaluateGates(input, scores)
	result := Aggregate(scores, gates)
	recs := GenerateRecommendations(input, scores, gates)
	return &Evaluation{Input: input, Score: result, Recommendations: recs}, nil
}
