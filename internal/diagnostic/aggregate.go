package diagnostic

// Composite score thresholds. Fixed constants, not configurable per call.
const (
	strongThreshold   = 80
	moderateThreshold = 60
)

// dimensionWeights is the documented weight table for the composite score.
// Each weight is the number of points the dimension contributes at a maximum
// subscore; the weights sum to 100, so maximum subscores on every dimension
// yield exactly 100.
var dimensionWeights = map[Dimension]int{
	DimICPFit:       15,
	DimPromise:      15,
	DimPricing:      15,
	DimRisk:         10,
	DimFulfillment:  12,
	DimProof:        13,
	DimPositioning:  12,
	DimFounderReady: 8,
}

// bottleneckExplanations is the per-dimension explanation text attached to
// the primary bottleneck.
var bottleneckExplanations = map[Dimension]string{
	DimICPFit:       "The target customer profile is the weakest part of this offer: the segment, size or maturity you are selling into limits how far outbound can go.",
	DimPromise:      "The promised outcome is the weakest part of this offer: it does not land as an urgent, high-value result for the chosen buyer.",
	DimPricing:      "The pricing structure is the weakest part of this offer: the model or tier undercuts the economics of an outbound motion.",
	DimRisk:         "The risk and guarantee posture is the weakest part of this offer: the balance between buyer risk and seller exposure is off.",
	DimFulfillment:  "Delivery is the weakest part of this offer: fulfillment complexity will throttle how fast closed deals turn into happy customers.",
	DimProof:        "Market proof is the weakest part of this offer: there is not enough evidence behind the promise to carry cold conversations.",
	DimPositioning:  "Positioning is the weakest part of this offer: the offer is not specific enough for a prospect to recognize themselves in it.",
	DimFounderReady: "Founder readiness is the weakest part of this offer: the combination of offer type, buyer stage and risk posture demands more conviction than the structure supports.",
}

// Aggregate combines subscores and gate results into the terminal
// ScoreResult. Total for any valid LatentScores/GateResult pair.
func Aggregate(scores LatentScores, gates GateResult) ScoreResult {
	raw := rawScore(scores)

	alignment := raw
	if gates.ScoreCap != nil && *gates.ScoreCap < alignment {
		alignment = *gates.ScoreCap
	}

	label := LabelWeak
	switch {
	case alignment >= strongThreshold:
		label = LabelStrong
	case alignment >= moderateThreshold:
		label = LabelModerate
	}

	ready := alignment >= moderateThreshold && len(gates.HardGates) == 0

	return ScoreResult{
		AlignmentScore:    alignment,
		ReadinessLabel:    label,
		LatentScores:      scores,
		PrimaryBottleneck: findBottleneck(scores, gates),
		OutboundReady:     ready,
		HardGates:         gates.HardGates,
		SoftGates:         gates.SoftGates,
		ScoreCap:          gates.ScoreCap,
	}
}

// rawScore normalizes the weighted subscores onto 0-100, rounding half up.
func rawScore(scores LatentScores) int {
	weighted := 0
	for dim, w := range dimensionWeights {
		weighted += scores[dim] * w
	}
	return (weighted + MaxSubscore/2) / MaxSubscore
}

// findBottleneck picks the dimension with the lowest subscore, breaking ties
// by the fixed priority ordering. Severity is blocking when the dimension is
// implicated by a triggered hard gate.
func findBottleneck(scores LatentScores, gates GateResult) Bottleneck {
	lowest := bottleneckPriority[0]
	for _, dim := range bottleneckPriority[1:] {
		if scores[dim] < scores[lowest] {
			lowest = dim
		}
	}

	severity := SeverityModerate
	if hardGateImplicates(gates, lowest) {
		severity = SeverityBlocking
	}

	return Bottleneck{
		Dimension:   lowest,
		Severity:    severity,
		Explanation: bottleneckExplanations[lowest],
	}
}
