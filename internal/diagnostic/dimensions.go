package diagnostic

import (
	"fmt"

	"github.com/sells-group/readiness-cli/internal/offer"
)

// Contribution tables. Each latent dimension sums contributions from the
// input fields that inform it and clamps into [0,20]. A field may feed more
// than one dimension. Every table is total over its category's enumerated
// values; an unmapped value is a programming error (ConfigurationDefect),
// asserted by the totality tests, not tolerated at runtime.

var segmentICPFit = map[offer.ScoringSegment]int{
	offer.SegmentHighVelocity:       6,
	offer.SegmentRelationshipDriven: 4,
	offer.SegmentRegulated:          3,
	offer.SegmentLocalOwnerOperated: 5,
}

var sizeICPFit = map[offer.ICPSize]int{
	offer.SizeSoloOwner:  1,
	offer.SizeMicro:      3,
	offer.SizeSMB:        6,
	offer.SizeMidmarket:  7,
	offer.SizeEnterprise: 3,
}

var maturityICPFit = map[offer.ICPMaturity]int{
	offer.MaturityPreRevenue:    0,
	offer.MaturityEarlyTraction: 3,
	offer.MaturityScaling:       7,
	offer.MaturityEstablished:   5,
}

var bucketPromise = map[offer.PromiseBucket]int{
	offer.BucketLeadFlow:       9,
	offer.BucketRevenueGrowth:  8,
	offer.BucketTalent:         6,
	offer.BucketCostReduction:  5,
	offer.BucketOpsEfficiency:  4,
	offer.BucketRiskMitigation: 3,
}

var proofPromise = map[offer.ProofLevel]int{
	offer.ProofNone:           0,
	offer.ProofAnecdotal:      2,
	offer.ProofCaseStudies:    4,
	offer.ProofThirdParty:     6,
	offer.ProofCategoryLeader: 7,
}

var specificityPromise = map[offer.ICPSpecificity]int{
	offer.SpecificityBroad:    0,
	offer.SpecificityLoose:    1,
	offer.SpecificityNamed:    3,
	offer.SpecificitySurgical: 4,
}

var recurringPricing = map[offer.RecurringPriceTier]int{
	offer.RecurringUnder1K: 8,
	offer.Recurring1KTo3K:  12,
	offer.Recurring3KTo6K:  17,
	offer.Recurring6KTo12K: 20,
	offer.RecurringOver12K: 15,
}

var oneTimePricing = map[offer.OneTimePriceTier]int{
	offer.OneTimeUnder2K:  6,
	offer.OneTime2KTo10K:  11,
	offer.OneTime10KTo25K: 14,
	offer.OneTimeOver25K:  12,
}

var usageOutputPricing = map[offer.UsageOutputType]int{
	offer.OutputQualifiedMeeting: 11,
	offer.OutputContactedLead:    6,
	offer.OutputHirePlaced:       13,
	offer.OutputRevenueEvent:     8,
}

var usageVolumePricing = map[offer.UsageVolumeTier]int{
	offer.VolumeSingleDigits: 1,
	offer.VolumeTens:         4,
	offer.VolumeHundreds:     6,
	offer.VolumeThousands:    5,
}

var retainerPricing = map[offer.RetainerTier]int{
	offer.RetainerUnder1K: 5,
	offer.Retainer1KTo3K:  8,
	offer.RetainerOver3K:  10,
}

var hybridBasisPricing = map[offer.PerformanceBasis]int{
	offer.BasisPerMeetingHeld:   3,
	offer.BasisPerOpportunity:   4,
	offer.BasisPctClosedRevenue: 5,
	offer.BasisPctCollectedCash: 2,
}

var hybridCompPricing = map[offer.PerformanceCompTier]int{
	offer.CompConservative: 4,
	offer.CompMarketRate:   5,
	offer.CompAggressive:   2,
}

var perfBasisPricing = map[offer.PerformanceBasis]int{
	offer.BasisPerMeetingHeld:   9,
	offer.BasisPerOpportunity:   10,
	offer.BasisPctClosedRevenue: 8,
	offer.BasisPctCollectedCash: 5,
}

var perfCompPricing = map[offer.PerformanceCompTier]int{
	offer.CompConservative: 7,
	offer.CompMarketRate:   5,
	offer.CompAggressive:   1,
}

var riskAlignment = map[offer.RiskModel]int{
	offer.RiskNoGuarantee:      11,
	offer.RiskConditional:      16,
	offer.RiskPerformanceFloor: 14,
	offer.RiskFullRefund:       8,
	offer.RiskPayAfterResults:  5,
}

var structureRisk = map[offer.PricingStructure]int{
	offer.PricingRecurring:       4,
	offer.PricingOneTime:         2,
	offer.PricingUsageBased:      3,
	offer.PricingHybrid:          3,
	offer.PricingPerformanceOnly: 1,
}

var complexityFulfillment = map[offer.FulfillmentComplexity]int{
	offer.FulfillmentPlugAndPlay:     18,
	offer.FulfillmentLightOnboarding: 15,
	offer.FulfillmentDedicatedTeam:   9,
	offer.FulfillmentCustomBuildout:  4,
}

var sizeFulfillment = map[offer.ICPSize]int{
	offer.SizeSoloOwner:  0,
	offer.SizeMicro:      1,
	offer.SizeSMB:        2,
	offer.SizeMidmarket:  1,
	offer.SizeEnterprise: 0,
}

var proofStrength = map[offer.ProofLevel]int{
	offer.ProofNone:           0,
	offer.ProofAnecdotal:      5,
	offer.ProofCaseStudies:    12,
	offer.ProofThirdParty:     17,
	offer.ProofCategoryLeader: 20,
}

var specificityPositioning = map[offer.ICPSpecificity]int{
	offer.SpecificityBroad:    2,
	offer.SpecificityLoose:    6,
	offer.SpecificityNamed:    12,
	offer.SpecificitySurgical: 16,
}

var bucketPositioning = map[offer.PromiseBucket]int{
	offer.BucketLeadFlow:       4,
	offer.BucketRevenueGrowth:  3,
	offer.BucketCostReduction:  3,
	offer.BucketTalent:         3,
	offer.BucketOpsEfficiency:  1,
	offer.BucketRiskMitigation: 1,
}

var offerTypeFounder = map[offer.OfferType]int{
	offer.OfferDoneForYou:  6,
	offer.OfferProductized: 6,
	offer.OfferDoneWithYou: 5,
	offer.OfferStaffing:    5,
	offer.OfferSaaS:        4,
	offer.OfferCoaching:    4,
}

var maturityFounder = map[offer.ICPMaturity]int{
	offer.MaturityPreRevenue:    1,
	offer.MaturityEarlyTraction: 3,
	offer.MaturityScaling:       7,
	offer.MaturityEstablished:   6,
}

var riskFounder = map[offer.RiskModel]int{
	offer.RiskNoGuarantee:      3,
	offer.RiskConditional:      7,
	offer.RiskPerformanceFloor: 6,
	offer.RiskFullRefund:       4,
	offer.RiskPayAfterResults:  2,
}

// ScoreDimensions computes the latent subscores for a complete input. It
// validates the input first and performs no scoring on failure.
func ScoreDimensions(input offer.DiagnosticInput) (LatentScores, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	scores := LatentScores{
		DimICPFit: clampSubscore(
			segmentICPFit[input.ScoringSegment] +
				sizeICPFit[input.ICPSize] +
				maturityICPFit[input.ICPMaturity]),
		DimPromise: clampSubscore(
			bucketPromise[input.PromiseBucket] +
				proofPromise[input.ProofLevel] +
				specificityPromise[input.ICPSpecificity]),
		DimPricing: clampSubscore(scorePricing(input.Pricing)),
		DimRisk: clampSubscore(
			riskAlignment[input.RiskModel] +
				structureRisk[input.Pricing.Structure]),
		DimFulfillment: clampSubscore(
			complexityFulfillment[input.FulfillmentComplexity] +
				sizeFulfillment[input.ICPSize]),
		DimProof: clampSubscore(proofStrength[input.ProofLevel]),
		DimPositioning: clampSubscore(
			specificityPositioning[input.ICPSpecificity] +
				bucketPositioning[input.PromiseBucket]),
		DimFounderReady: clampSubscore(
			offerTypeFounder[input.OfferType] +
				maturityFounder[input.ICPMaturity] +
				riskFounder[input.RiskModel]),
	}

	return scores, nil
}

// scorePricing scores the pricing viability dimension from the tagged
// pricing variant. Validate has already guaranteed the matching variant is
// populated.
func scorePricing(p offer.Pricing) int {
	switch p.Structure {
	case offer.PricingRecurring:
		return recurringPricing[p.Recurring.PriceTier]
	case offer.PricingOneTime:
		return oneTimePricing[p.OneTime.PriceTier]
	case offer.PricingUsageBased:
		return usageOutputPricing[p.Usage.OutputType] + usageVolumePricing[p.Usage.VolumeTier]
	case offer.PricingHybrid:
		return retainerPricing[p.Hybrid.RetainerTier] +
			hybridBasisPricing[p.Hybrid.Basis] +
			hybridCompPricing[p.Hybrid.CompTier]
	case offer.PricingPerformanceOnly:
		return perfBasisPricing[p.Performance.Basis] + perfCompPricing[p.Performance.CompTier]
	}
	// Unreachable after Validate.
	panic(fmt.Sprintf("diagnostic: unmapped pricing structure %q", p.Structure))
}

func clampSubscore(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxSubscore {
		return MaxSubscore
	}
	return v
}
