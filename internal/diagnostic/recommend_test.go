package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/readiness-cli/internal/offer"
)

func recommendationsFor(t *testing.T, in offer.DiagnosticInput) []Recommendation {
	t.Helper()
	scores := mustScore(t, in)
	return GenerateRecommendations(in, scores, EvaluateGates(in, scores))
}

func TestGenerateRecommendations_WellOptimizedOffer(t *testing.T) {
	assert.Empty(t, recommendationsFor(t, baselineInput()))
}

func TestGenerateRecommendations_HardGateLeads(t *testing.T) {
	in := baselineInput()
	in.ICPSpecificity = offer.SpecificitySurgical
	in.ProofLevel = offer.ProofCategoryLeader
	in.FulfillmentComplexity = offer.FulfillmentPlugAndPlay
	in.Pricing = offer.Pricing{
		Structure:   offer.PricingPerformanceOnly,
		Performance: &offer.PerformancePricing{Basis: offer.BasisPerOpportunity, CompTier: offer.CompAggressive},
	}
	in.RiskModel = offer.RiskFullRefund

	recs := recommendationsFor(t, in)
	require.Len(t, recs, 2)

	// The hard-gated pricing remediation outranks the weak-dimension one.
	assert.Equal(t, CategoryPricingShift, recs[0].Category)
	assert.Equal(t, SeverityBlocking, recs[0].Severity)
	assert.Equal(t, CategoryRiskShift, recs[1].Category)
	assert.Equal(t, SeverityModerate, recs[1].Severity)
}

func TestGenerateRecommendations_DedupeByCategory(t *testing.T) {
	// Thin proof (gate) and a weak proof subscore both map to the
	// positioning category; only one recommendation survives, and the
	// broad-positioning gate dedupes against the weak positioning dimension.
	in := baselineInput()
	in.ICPSpecificity = offer.SpecificityBroad
	in.ProofLevel = offer.ProofAnecdotal

	recs := recommendationsFor(t, in)
	require.Len(t, recs, 2)

	assert.Equal(t, CategoryPositioningShift, recs[0].Category)
	assert.Equal(t, "Turn wins into documented proof", recs[0].Headline)
	assert.Equal(t, CategoryPromiseShift, recs[1].Category)

	for _, r := range recs {
		assert.Equal(t, SeverityModerate, r.Severity)
	}
}

func TestGenerateRecommendations_WeakDimensionOnly(t *testing.T) {
	in := baselineInput()
	in.ProofLevel = offer.ProofThirdParty
	in.FulfillmentComplexity = offer.FulfillmentDedicatedTeam
	in.Pricing = offer.Pricing{
		Structure: offer.PricingOneTime,
		OneTime:   &offer.OneTimePricing{PriceTier: offer.OneTime10KTo25K},
	}

	recs := recommendationsFor(t, in)
	require.Len(t, recs, 1)
	assert.Equal(t, CategoryFulfillmentShift, recs[0].Category)
	assert.Equal(t, SeverityModerate, recs[0].Severity)
}

func TestGenerateRecommendations_PayloadComplete(t *testing.T) {
	in := baselineInput()
	in.ICPSpecificity = offer.SpecificityBroad
	in.ProofLevel = offer.ProofNone
	in.RiskModel = offer.RiskPayAfterResults

	for _, rec := range recommendationsFor(t, in) {
		assert.NotEmpty(t, rec.Category)
		assert.NotEmpty(t, rec.Severity)
		assert.NotEmpty(t, rec.Headline)
		assert.NotEmpty(t, rec.PlainExplanation)
		assert.NotEmpty(t, rec.ActionSteps)
		assert.NotEmpty(t, rec.DesiredState)
	}
}

func TestGenerateRecommendations_Deterministic(t *testing.T) {
	in := baselineInput()
	in.ICPSpecificity = offer.SpecificityBroad
	in.ProofLevel = offer.ProofNone
	in.RiskModel = offer.RiskPayAfterResults

	first := recommendationsFor(t, in)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, recommendationsFor(t, in))
	}
}

// Every gate and every dimension must have remediation text; a triggered gate
// with no template panics at generation time.
func TestRecommendationTemplates_Total(t *testing.T) {
	for _, g := range gateTable {
		tpl, ok := gateTemplates[g.id]
		require.True(t, ok, "gate %q has no template", g.id)
		_, inPriority := categoryPriority[tpl.category]
		assert.True(t, inPriority, "gate %q maps to unranked category %q", g.id, tpl.category)
	}

	for _, dim := range Dimensions() {
		tpl, ok := dimensionTemplates[dim]
		require.True(t, ok, "dimension %q has no template", dim)
		_, inPriority := categoryPriority[tpl.category]
		assert.True(t, inPriority, "dimension %q maps to unranked category %q", dim, tpl.category)
	}
}
