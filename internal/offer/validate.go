package offer

import (
	"errors"
	"fmt"
)

// ValidationError reports an incomplete or inconsistent DiagnosticInput.
// It is the only error class the scoring engine produces.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid diagnostic input: %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

var validSizes = map[ICPSize]bool{
	SizeSoloOwner: true, SizeMicro: true, SizeSMB: true,
	SizeMidmarket: true, SizeEnterprise: true,
}

var validMaturities = map[ICPMaturity]bool{
	MaturityPreRevenue: true, MaturityEarlyTraction: true,
	MaturityScaling: true, MaturityEstablished: true,
}

var validSpecificities = map[ICPSpecificity]bool{
	SpecificityBroad: true, SpecificityLoose: true,
	SpecificityNamed: true, SpecificitySurgical: true,
}

var validRiskModels = map[RiskModel]bool{
	RiskNoGuarantee: true, RiskConditional: true, RiskPerformanceFloor: true,
	RiskFullRefund: true, RiskPayAfterResults: true,
}

var validFulfillment = map[FulfillmentComplexity]bool{
	FulfillmentPlugAndPlay: true, FulfillmentLightOnboarding: true,
	FulfillmentDedicatedTeam: true, FulfillmentCustomBuildout: true,
}

var validRecurringTiers = map[RecurringPriceTier]bool{
	RecurringUnder1K: true, Recurring1KTo3K: true, Recurring3KTo6K: true,
	Recurring6KTo12K: true, RecurringOver12K: true,
}

var validOneTimeTiers = map[OneTimePriceTier]bool{
	OneTimeUnder2K: true, OneTime2KTo10K: true,
	OneTime10KTo25K: true, OneTimeOver25K: true,
}

var validOutputTypes = map[UsageOutputType]bool{
	OutputQualifiedMeeting: true, OutputContactedLead: true,
	OutputHirePlaced: true, OutputRevenueEvent: true,
}

var validVolumeTiers = map[UsageVolumeTier]bool{
	VolumeSingleDigits: true, VolumeTens: true,
	VolumeHundreds: true, VolumeThousands: true,
}

var validRetainerTiers = map[RetainerTier]bool{
	RetainerUnder1K: true, Retainer1KTo3K: true, RetainerOver3K: true,
}

var validBases = map[PerformanceBasis]bool{
	BasisPerMeetingHeld: true, BasisPerOpportunity: true,
	BasisPctClosedRevenue: true, BasisPctCollectedCash: true,
}

var validCompTiers = map[PerformanceCompTier]bool{
	CompConservative: true, CompMarketRate: true, CompAggressive: true,
}

var validProofLevels = map[ProofLevel]bool{
	ProofNone: true, ProofAnecdotal: true, ProofCaseStudies: true,
	ProofThirdParty: true, ProofCategoryLeader: true,
}

// Validate is the completeness predicate: every independent field must be a
// known value, derived fields must be consistent with their sources, and
// exactly the pricing variant matching Structure must be populated. It
// returns a *ValidationError describing the first violation found, checking
// fields in declaration order so failures are deterministic.
func (in DiagnosticInput) Validate() error {
	outcomes, ok := offerOutcomes[in.OfferType]
	if !ok {
		return invalid("offer_type", "missing or unknown")
	}
	if !containsOutcome(outcomes, in.PromiseOutcome) {
		return invalid("promise_outcome", fmt.Sprintf("%q is not valid for offer type %q", in.PromiseOutcome, in.OfferType))
	}
	bucket, ok := outcomeBuckets[in.PromiseOutcome]
	if !ok {
		return invalid("promise_outcome", "missing or unknown")
	}
	if in.PromiseBucket == "" {
		return invalid("promise_bucket", "derived field not set; call Normalized first")
	}
	if in.PromiseBucket != bucket {
		return invalid("promise_bucket", fmt.Sprintf("inconsistent with promise outcome %q", in.PromiseOutcome))
	}

	verticals, ok := industryVerticals[in.Industry]
	if !ok {
		return invalid("icp_industry", "missing or unknown")
	}
	if !containsVertical(verticals, in.VerticalSegment) {
		return invalid("vertical_segment", fmt.Sprintf("%q is not valid for industry %q", in.VerticalSegment, in.Industry))
	}
	segment, ok := verticalSegments[in.VerticalSegment]
	if !ok {
		return invalid("vertical_segment", "missing or unknown")
	}
	if in.ScoringSegment == "" {
		return invalid("scoring_segment", "derived field not set; call Normalized first")
	}
	if in.ScoringSegment != segment {
		return invalid("scoring_segment", fmt.Sprintf("inconsistent with vertical segment %q", in.VerticalSegment))
	}

	if !validSizes[in.ICPSize] {
		return invalid("icp_size", "missing or unknown")
	}
	if !validMaturities[in.ICPMaturity] {
		return invalid("icp_maturity", "missing or unknown")
	}
	if !validSpecificities[in.ICPSpecificity] {
		return invalid("icp_specificity", "missing or unknown")
	}

	if err := in.Pricing.validate(); err != nil {
		return err
	}

	if !validRiskModels[in.RiskModel] {
		return invalid("risk_model", "missing or unknown")
	}
	if !validFulfillment[in.FulfillmentComplexity] {
		return invalid("fulfillment_complexity", "missing or unknown")
	}
	if !validProofLevels[in.ProofLevel] {
		return invalid("proof_level", "missing or unknown")
	}

	return nil
}

// validate checks the tagged pricing variant: the variant matching Structure
// must be populated with known tiers, and every other variant must be nil.
func (p Pricing) validate() error {
	set := 0
	for _, v := range []bool{
		p.Recurring != nil, p.OneTime != nil, p.Usage != nil,
		p.Hybrid != nil, p.Performance != nil,
	} {
		if v {
			set++
		}
	}

	switch p.Structure {
	case PricingRecurring:
		if p.Recurring == nil || set != 1 {
			return invalid("pricing", "recurring structure requires exactly the recurring sub-fields")
		}
		if !validRecurringTiers[p.Recurring.PriceTier] {
			return invalid("pricing.recurring.price_tier", "missing or unknown")
		}
	case PricingOneTime:
		if p.OneTime == nil || set != 1 {
			return invalid("pricing", "one-time structure requires exactly the one-time sub-fields")
		}
		if !validOneTimeTiers[p.OneTime.PriceTier] {
			return invalid("pricing.one_time.price_tier", "missing or unknown")
		}
	case PricingUsageBased:
		if p.Usage == nil || set != 1 {
			return invalid("pricing", "usage-based structure requires exactly the usage sub-fields")
		}
		if !validOutputTypes[p.Usage.OutputType] {
			return invalid("pricing.usage.output_type", "missing or unknown")
		}
		if !validVolumeTiers[p.Usage.VolumeTier] {
			return invalid("pricing.usage.volume_tier", "missing or unknown")
		}
	case PricingHybrid:
		if p.Hybrid == nil || set != 1 {
			return invalid("pricing", "hybrid structure requires exactly the hybrid sub-fields")
		}
		if !validRetainerTiers[p.Hybrid.RetainerTier] {
			return invalid("pricing.hybrid.retainer_tier", "missing or unknown")
		}
		if !validBases[p.Hybrid.Basis] {
			return invalid("pricing.hybrid.basis", "missing or unknown")
		}
		if !validCompTiers[p.Hybrid.CompTier] {
			return invalid("pricing.hybrid.comp_tier", "missing or unknown")
		}
	case PricingPerformanceOnly:
		if p.Performance == nil || set != 1 {
			return invalid("pricing", "performance-only structure requires exactly the performance sub-fields")
		}
		if !validBases[p.Performance.Basis] {
			return invalid("pricing.performance.basis", "missing or unknown")
		}
		if !validCompTiers[p.Performance.CompTier] {
			return invalid("pricing.performance.comp_tier", "missing or unknown")
		}
	default:
		return invalid("pricing.structure", "missing or unknown")
	}

	return nil
}

func containsOutcome(s []PromiseOutcome, v PromiseOutcome) bool {
	for _, o := range s {
		if o == v {
			return true
		}
	}
	return false
}

func containsVertical(s []VerticalSegment, v VerticalSegment) bool {
	for _, o := range s {
		if o == v {
			return true
		}
	}
	return false
}
