package diagnostic

import "github.com/sells-group/readiness-cli/internal/offer"

// Gate identifiers.
const (
	GateUnsustainableEconomics = "unsustainable_economics"
	GatePerformanceNoProof     = "performance_without_proof"
	GateBudgetlessICP          = "budgetless_icp"
	GateDeliveryUnderfunded    = "delivery_underfunded"
	GateBroadPositioning       = "broad_positioning"
	GateThinProof              = "thin_proof"
	GateRefundExposure         = "refund_exposure"
	GateCommodityPromise       = "commodity_promise"
	GateUnderpricedRecurring   = "underpriced_recurring"
)

type gateKind int

const (
	hardGate gateKind = iota
	softGate
)

// gateDef is one declarative gate: an independent predicate over the frozen
// (input, scores) pair plus its payload. Hard gates block outbound
// readiness; soft gates cap the composite score (minimum cap wins).
// Dimensions lists the latent dimensions the gate implicates, used for
// bottleneck severity and recommendation ordering.
type gateDef struct {
	id         string
	kind       gateKind
	cap        int
	dimensions []Dimension
	when       func(in offer.DiagnosticInput, scores LatentScores) bool
}

// gateTable is the full rule set, hard gates first. Order is presentational
// only: every predicate is evaluated against the same frozen pair, so the
// triggered set does not depend on it.
var gateTable = []gateDef{
	{
		id:         GateUnsustainableEconomics,
		kind:       hardGate,
		dimensions: []Dimension{DimPricing, DimRisk},
		when: func(in offer.DiagnosticInput, _ LatentScores) bool {
			if in.Pricing.Structure != offer.PricingPerformanceOnly {
				return false
			}
			if in.Pricing.Performance.CompTier != offer.CompAggressive {
				return false
			}
			return in.RiskModel == offer.RiskFullRefund || in.RiskModel == offer.RiskPayAfterResults
		},
	},
	{
		id:         GatePerformanceNoProof,
		kind:       hardGate,
		dimensions: []Dimension{DimProof, DimRisk},
		when: func(in offer.DiagnosticInput, _ LatentScores) bool {
			atRisk := in.Pricing.Structure == offer.PricingPerformanceOnly ||
				in.RiskModel == offer.RiskPayAfterResults
			return atRisk && in.ProofLevel == offer.ProofNone
		},
	},
	{
		id:         GateBudgetlessICP,
		kind:       hardGate,
		dimensions: []Dimension{DimICPFit},
		when: func(in offer.DiagnosticInput, _ LatentScores) bool {
			return in.ICPSize == offer.SizeSoloOwner && in.ICPMaturity == offer.MaturityPreRevenue
		},
	},
	{
		id:         GateDeliveryUnderfunded,
		kind:       hardGate,
		dimensions: []Dimension{DimFulfillment, DimPricing},
		when: func(in offer.DiagnosticInput, _ LatentScores) bool {
			if in.FulfillmentComplexity != offer.FulfillmentCustomBuildout {
				return false
			}
			switch in.Pricing.Structure {
			case offer.PricingRecurring:
				return in.Pricing.Recurring.PriceTier == offer.RecurringUnder1K
			case offer.PricingOneTime:
				return in.Pricing.OneTime.PriceTier == offer.OneTimeUnder2K
			}
			return false
		},
	},
	{
		id:         GateBroadPositioning,
		kind:       softGate,
		cap:        65,
		dimensions: []Dimension{DimPositioning},
		when: func(in offer.DiagnosticInput, _ LatentScores) bool {
			return in.ICPSpecificity == offer.SpecificityBroad
		},
	},
	{
		id:         GateThinProof,
		kind:       softGate,
		cap:        70,
		dimensions: []Dimension{DimProof},
		when: func(in offer.DiagnosticInput, _ LatentScores) bool {
			return offer.ProofRank(in.ProofLevel) <= offer.ProofRank(offer.ProofAnecdotal)
		},
	},
	{
		id:         GateRefundExposure,
		kind:       softGate,
		cap:        75,
		dimensions: []Dimension{DimRisk},
		when: func(in offer.DiagnosticInput, _ LatentScores) bool {
			return in.RiskModel == offer.RiskFullRefund && in.Pricing.Structure == offer.PricingOneTime
		},
	},
	{
		id:         GateCommodityPromise,
		kind:       softGate,
		cap:        60,
		dimensions: []Dimension{DimPromise, DimPositioning},
		when: func(in offer.DiagnosticInput, _ LatentScores) bool {
			if in.PromiseBucket != offer.BucketOpsEfficiency {
				return false
			}
			return in.ICPSpecificity == offer.SpecificityBroad || in.ICPSpecificity == offer.SpecificityLoose
		},
	},
	{
		id:         GateUnderpricedRecurring,
		kind:       softGate,
		cap:        72,
		dimensions: []Dimension{DimPricing},
		when: func(in offer.DiagnosticInput, _ LatentScores) bool {
			return in.Pricing.Structure == offer.PricingRecurring &&
				in.Pricing.Recurring.PriceTier == offer.RecurringUnder1K
		},
	},
}

// EvaluateGates runs every gate predicate against the frozen (input, scores)
// pair and collects all triggered identifiers. The score cap is the minimum
// cap across triggered soft gates, nil when none triggered.
func EvaluateGates(input offer.DiagnosticInput, scores LatentScores) GateResult {
	var result GateResult
	for _, g := range gateTable {
		if !g.when(input, scores) {
			continue
		}
		switch g.kind {
		case hardGate:
			result.HardGates = append(result.HardGates, g.id)
		case softGate:
			result.SoftGates = append(result.SoftGates, g.id)
			if result.ScoreCap == nil || g.cap < *result.ScoreCap {
				c := g.cap
				result.ScoreCap = &c
			}
		}
	}
	return result
}

// gateByID returns the gate definition for an identifier.
func gateByID(id string) (gateDef, bool) {
	for _, g := range gateTable {
		if g.id == id {
			return g, true
		}
	}
	return gateDef{}, false
}

// hardGateImplicates reports whether any triggered hard gate implicates the
// given dimension.
func hardGateImplicates(result GateResult, dim Dimension) bool {
	for _, id := range result.HardGates {
		g, ok := gateByID(id)
		if !ok {
			continue
		}
		for _, d := range g.dimensions {
			if d == dim {
				return true
			}
		}
	}
	return false
}
