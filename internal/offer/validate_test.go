package offer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// completeInput returns a fully-populated, internally-consistent input.
func completeInput() DiagnosticInput {
	return DiagnosticInput{
		OfferType:      OfferDoneForYou,
		PromiseOutcome: OutcomeMeetingsBooked,
		PromiseBucket:  BucketLeadFlow,

		Industry:        IndustryB2BSoftware,
		VerticalSegment: VerticalSaaS,
		ScoringSegment:  SegmentHighVelocity,
		ICPSize:         SizeSMB,
		ICPMaturity:     MaturityScaling,
		ICPSpecificity:  SpecificityNamed,

		Pricing: Pricing{
			Structure: PricingRecurring,
			Recurring: &RecurringPricing{PriceTier: Recurring3KTo6K},
		},

		RiskModel:             RiskConditional,
		FulfillmentComplexity: FulfillmentLightOnboarding,
		ProofLevel:            ProofCaseStudies,
	}
}

func TestValidate_CompleteInput(t *testing.T) {
	require.NoError(t, completeInput().Validate())
}

func TestValidate_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DiagnosticInput)
		field  string
	}{
		{"missing offer type", func(in *DiagnosticInput) { in.OfferType = "" }, "offer_type"},
		{"unknown offer type", func(in *DiagnosticInput) { in.OfferType = "franchise" }, "offer_type"},
		{"missing outcome", func(in *DiagnosticInput) { in.PromiseOutcome = "" }, "promise_outcome"},
		{"missing industry", func(in *DiagnosticInput) { in.Industry = "" }, "icp_industry"},
		{"missing size", func(in *DiagnosticInput) { in.ICPSize = "" }, "icp_size"},
		{"missing maturity", func(in *DiagnosticInput) { in.ICPMaturity = "" }, "icp_maturity"},
		{"missing specificity", func(in *DiagnosticInput) { in.ICPSpecificity = "" }, "icp_specificity"},
		{"missing risk model", func(in *DiagnosticInput) { in.RiskModel = "" }, "risk_model"},
		{"missing fulfillment", func(in *DiagnosticInput) { in.FulfillmentComplexity = "" }, "fulfillment_complexity"},
		{"missing proof", func(in *DiagnosticInput) { in.ProofLevel = "" }, "proof_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := completeInput()
			tt.mutate(&in)

			err := in.Validate()
			require.Error(t, err)
			assert.True(t, IsValidation(err))

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestValidate_ScopedFields(t *testing.T) {
	t.Run("outcome outside offer type", func(t *testing.T) {
		in := completeInput()
		in.PromiseOutcome = OutcomeSDRPlaced // belongs to staffing
		assert.Error(t, in.Validate())
	})

	t.Run("vertical outside industry", func(t *testing.T) {
		in := completeInput()
		in.VerticalSegment = VerticalHVAC // belongs to home services
		assert.Error(t, in.Validate())
	})
}

func TestValidate_DerivedFields(t *testing.T) {
	t.Run("stale bucket", func(t *testing.T) {
		in := completeInput()
		in.PromiseBucket = BucketTalent

		var ve *ValidationError
		require.ErrorAs(t, in.Validate(), &ve)
		assert.Equal(t, "promise_bucket", ve.Field)
	})

	t.Run("stale segment", func(t *testing.T) {
		in := completeInput()
		in.ScoringSegment = SegmentRegulated

		var ve *ValidationError
		require.ErrorAs(t, in.Validate(), &ve)
		assert.Equal(t, "scoring_segment", ve.Field)
	})

	t.Run("unset derived fields rejected", func(t *testing.T) {
		in := completeInput()
		in.PromiseBucket = ""
		assert.Error(t, in.Validate())
	})
}

func TestValidate_PricingVariants(t *testing.T) {
	tests := []struct {
		name    string
		pricing Pricing
		ok      bool
	}{
		{
			"recurring valid",
			Pricing{Structure: PricingRecurring, Recurring: &RecurringPricing{PriceTier: Recurring1KTo3K}},
			true,
		},
		{
			"one-time valid",
			Pricing{Structure: PricingOneTime, OneTime: &OneTimePricing{PriceTier: OneTime10KTo25K}},
			true,
		},
		{
			"usage valid",
			Pricing{Structure: PricingUsageBased, Usage: &UsagePricing{OutputType: OutputQualifiedMeeting, VolumeTier: VolumeTens}},
			true,
		},
		{
			"hybrid valid",
			Pricing{Structure: PricingHybrid, Hybrid: &HybridPricing{RetainerTier: Retainer1KTo3K, Basis: BasisPerOpportunity, CompTier: CompMarketRate}},
			true,
		},
		{
			"performance valid",
			Pricing{Structure: PricingPerformanceOnly, Performance: &PerformancePricing{Basis: BasisPctClosedRevenue, CompTier: CompConservative}},
			true,
		},
		{
			"missing structure",
			Pricing{},
			false,
		},
		{
			"variant missing",
			Pricing{Structure: PricingRecurring},
			false,
		},
		{
			"wrong variant populated",
			Pricing{Structure: PricingRecurring, OneTime: &OneTimePricing{PriceTier: OneTime2KTo10K}},
			false,
		},
		{
			"extra variant populated",
			Pricing{
				Structure: PricingRecurring,
				Recurring: &RecurringPricing{PriceTier: Recurring1KTo3K},
				OneTime:   &OneTimePricing{PriceTier: OneTime2KTo10K},
			},
			false,
		},
		{
			"unknown tier",
			Pricing{Structure: PricingRecurring, Recurring: &RecurringPricing{PriceTier: "free"}},
			false,
		},
		{
			"hybrid missing comp tier",
			Pricing{Structure: PricingHybrid, Hybrid: &HybridPricing{RetainerTier: Retainer1KTo3K, Basis: BasisPerOpportunity}},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := completeInput()
			in.Pricing = tt.pricing

			err := in.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.True(t, IsValidation(err))
			}
		})
	}
}

func TestNormalized_FillsDerivedFields(t *testing.T) {
	in := completeInput()
	in.PromiseBucket = ""
	in.ScoringSegment = ""

	norm := in.Normalized()
	assert.Equal(t, BucketLeadFlow, norm.PromiseBucket)
	assert.Equal(t, SegmentHighVelocity, norm.ScoringSegment)
	require.NoError(t, norm.Validate())

	// Original is untouched.
	assert.Empty(t, in.PromiseBucket)
}

func TestNormalized_KeepsStaleValuesForValidate(t *testing.T) {
	in := completeInput()
	in.PromiseBucket = BucketTalent

	norm := in.Normalized()
	assert.Equal(t, BucketTalent, norm.PromiseBucket)
	assert.Error(t, norm.Validate())
}
