package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/readiness-cli/internal/offer"
)

// baselineInput is a complete, gate-free offer used across the engine tests.
func baselineInput() offer.DiagnosticInput {
	return offer.DiagnosticInput{
		OfferType:      offer.OfferDoneForYou,
		PromiseOutcome: offer.OutcomeMeetingsBooked,
		PromiseBucket:  offer.BucketLeadFlow,

		Industry:        offer.IndustryB2BSoftware,
		VerticalSegment: offer.VerticalSaaS,
		ScoringSegment:  offer.SegmentHighVelocity,
		ICPSize:         offer.SizeSMB,
		ICPMaturity:     offer.MaturityScaling,
		ICPSpecificity:  offer.SpecificityNamed,

		Pricing: offer.Pricing{
			Structure: offer.PricingRecurring,
			Recurring: &offer.RecurringPricing{PriceTier: offer.Recurring3KTo6K},
		},

		RiskModel:             offer.RiskConditional,
		FulfillmentComplexity: offer.FulfillmentLightOnboarding,
		ProofLevel:            offer.ProofCaseStudies,
	}
}

func TestScoreDimensions_Baseline(t *testing.T) {
	scores, err := ScoreDimensions(baselineInput())
	require.NoError(t, err)

	assert.Equal(t, LatentScores{
		DimICPFit:       19,
		DimPromise:      16,
		DimPricing:      17,
		DimRisk:         20,
		DimFulfillment:  17,
		DimProof:        12,
		DimPositioning:  16,
		DimFounderReady: 20,
	}, scores)
}

func TestScoreDimensions_IncompleteInput(t *testing.T) {
	in := baselineInput()
	in.ProofLevel = ""

	scores, err := ScoreDimensions(in)
	require.Error(t, err)
	assert.True(t, offer.IsValidation(err))
	assert.Nil(t, scores, "no partial scores on validation failure")
}

func TestScoreDimensions_RangeInvariant(t *testing.T) {
	// Sweep extreme inputs and confirm every subscore stays in [0,20].
	inputs := []offer.DiagnosticInput{baselineInput()}

	weakest := baselineInput()
	weakest.ICPSize = offer.SizeSoloOwner
	weakest.ICPMaturity = offer.MaturityPreRevenue
	weakest.ICPSpecificity = offer.SpecificityBroad
	weakest.ProofLevel = offer.ProofNone
	weakest.RiskModel = offer.RiskPayAfterResults
	weakest.FulfillmentComplexity = offer.FulfillmentCustomBuildout
	weakest.Pricing = offer.Pricing{
		Structure:   offer.PricingPerformanceOnly,
		Performance: &offer.PerformancePricing{Basis: offer.BasisPctCollectedCash, CompTier: offer.CompAggressive},
	}
	inputs = append(inputs, weakest)

	strongest := baselineInput()
	strongest.ICPMaturity = offer.MaturityScaling
	strongest.ICPSpecificity = offer.SpecificitySurgical
	strongest.ProofLevel = offer.ProofCategoryLeader
	strongest.FulfillmentComplexity = offer.FulfillmentPlugAndPlay
	strongest.Pricing = offer.Pricing{
		Structure: offer.PricingRecurring,
		Recurring: &offer.RecurringPricing{PriceTier: offer.Recurring6KTo12K},
	}
	inputs = append(inputs, strongest)

	for _, in := range inputs {
		scores, err := ScoreDimensions(in)
		require.NoError(t, err)
		require.Len(t, scores, len(Dimensions()))
		for dim, score := range scores {
			assert.GreaterOrEqual(t, score, 0, "dimension %s", dim)
			assert.LessOrEqual(t, score, MaxSubscore, "dimension %s", dim)
		}
	}
}

func TestScoreDimensions_Deterministic(t *testing.T) {
	first, err := ScoreDimensions(baselineInput())
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := ScoreDimensions(baselineInput())
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// Contribution tables must be total over the category tables: a value the
// catalog exposes but the scorer cannot map is a configuration defect.
func TestContributionTables_Total(t *testing.T) {
	for _, offerType := range offer.OfferTypes() {
		_, ok := offerTypeFounder[offerType]
		assert.True(t, ok, "offer type %q unmapped", offerType)

		for _, outcome := range offer.OutcomesFor(offerType) {
			bucket, ok := offer.BucketOf(outcome)
			require.True(t, ok)
			_, ok = bucketPromise[bucket]
			assert.True(t, ok, "bucket %q unmapped in promise table", bucket)
			_, ok = bucketPositioning[bucket]
			assert.True(t, ok, "bucket %q unmapped in positioning table", bucket)
		}
	}

	for _, industry := range offer.Industries() {
		for _, vertical := range offer.VerticalsFor(industry) {
			segment, ok := offer.SegmentOf(vertical)
			require.True(t, ok)
			_, ok = segmentICPFit[segment]
			assert.True(t, ok, "segment %q unmapped", segment)
		}
	}

	sizes := []offer.ICPSize{
		offer.SizeSoloOwner, offer.SizeMicro, offer.SizeSMB,
		offer.SizeMidmarket, offer.SizeEnterprise,
	}
	for _, s := range sizes {
		_, ok := sizeICPFit[s]
		assert.True(t, ok, "size %q unmapped in icp table", s)
		_, ok = sizeFulfillment[s]
		assert.True(t, ok, "size %q unmapped in fulfillment table", s)
	}

	maturities := []offer.ICPMaturity{
		offer.MaturityPreRevenue, offer.MaturityEarlyTraction,
		offer.MaturityScaling, offer.MaturityEstablished,
	}
	for _, m := range maturities {
		_, ok := maturityICPFit[m]
		assert.True(t, ok, "maturity %q unmapped in icp table", m)
		_, ok = maturityFounder[m]
		assert.True(t, ok, "maturity %q unmapped in founder table", m)
	}

	specificities := []offer.ICPSpecificity{
		offer.SpecificityBroad, offer.SpecificityLoose,
		offer.SpecificityNamed, offer.SpecificitySurgical,
	}
	for _, s := range specificities {
		_, ok := specificityPromise[s]
		assert.True(t, ok, "specificity %q unmapped in promise table", s)
		_, ok = specificityPositioning[s]
		assert.True(t, ok, "specificity %q unmapped in positioning table", s)
	}

	risks := []offer.RiskModel{
		offer.RiskNoGuarantee, offer.RiskConditional, offer.RiskPerformanceFloor,
		offer.RiskFullRefund, offer.RiskPayAfterResults,
	}
	for _, r := range risks {
		_, ok := riskAlignment[r]
		assert.True(t, ok, "risk %q unmapped in alignment table", r)
		_, ok = riskFounder[r]
		assert.True(t, ok, "risk %q unmapped in founder table", r)
	}

	proofs := []offer.ProofLevel{
		offer.ProofNone, offer.ProofAnecdotal, offer.ProofCaseStudies,
		offer.ProofThirdParty, offer.ProofCategoryLeader,
	}
	for _, p := range proofs {
		_, ok := proofStrength[p]
		assert.True(t, ok, "proof %q unmapped in strength table", p)
		_, ok = proofPromise[p]
		assert.True(t, ok, "proof %q unmapped in promise table", p)
	}

	complexities := []offer.FulfillmentComplexity{
		offer.FulfillmentPlugAndPlay, offer.FulfillmentLightOnboarding,
		offer.FulfillmentDedicatedTeam, offer.FulfillmentCustomBuildout,
	}
	for _, c := range complexities {
		_, ok := complexityFulfillment[c]
		assert.True(t, ok, "complexity %q unmapped", c)
	}

	structures := []offer.PricingStructure{
		offer.PricingRecurring, offer.PricingOneTime, offer.PricingUsageBased,
		offer.PricingHybrid, offer.PricingPerformanceOnly,
	}
	for _, s := range structures {
		_, ok := structureRisk[s]
		assert.True(t, ok, "structure %q unmapped in risk table", s)
	}
}

func TestScorePricing_AllVariants(t *testing.T) {
	tests := []struct {
		name    string
		pricing offer.Pricing
		want    int
	}{
		{
			"recurring mid tier",
			offer.Pricing{Structure: offer.PricingRecurring, Recurring: &offer.RecurringPricing{PriceTier: offer.Recurring6KTo12K}},
			20,
		},
		{
			"one-time top tier",
			offer.Pricing{Structure: offer.PricingOneTime, OneTime: &offer.OneTimePricing{PriceTier: offer.OneTime10KTo25K}},
			14,
		},
		{
			"usage meetings at volume",
			offer.Pricing{Structure: offer.PricingUsageBased, Usage: &offer.UsagePricing{OutputType: offer.OutputQualifiedMeeting, VolumeTier: offer.VolumeHundreds}},
			17,
		},
		{
			"hybrid market rate",
			offer.Pricing{Structure: offer.PricingHybrid, Hybrid: &offer.HybridPricing{RetainerTier: offer.RetainerOver3K, Basis: offer.BasisPctClosedRevenue, CompTier: offer.CompMarketRate}},
			20,
		},
		{
			"performance aggressive",
			offer.Pricing{Structure: offer.PricingPerformanceOnly, Performance: &offer.PerformancePricing{Basis: offer.BasisPerOpportunity, CompTier: offer.CompAggressive}},
			11,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scorePricing(tt.pricing))
		})
	}
}
