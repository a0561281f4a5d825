// Package offer defines the diagnostic input model for offer readiness
// scoring: the enumerated category types, the static lookup tables that
// relate them, and the completeness check that gates scoring.
package offer

// OfferType is the delivery model of the offer being diagnosed.
type OfferType string

const (
	OfferDoneForYou  OfferType = "done_for_you_service"
	OfferDoneWithYou OfferType = "done_with_you_program"
	OfferCoaching    OfferType = "coaching_program"
	OfferSaaS        OfferType = "saas_platform"
	OfferProductized OfferType = "productized_service"
	OfferStaffing    OfferType = "staffing_placement"
)

// PromiseOutcome is the concrete outcome the offer promises. Valid values
// are scoped to the selected OfferType (see OutcomesFor).
type PromiseOutcome string

const (
	OutcomeMeetingsBooked      PromiseOutcome = "qualified_meetings_booked"
	OutcomePipelineAdded       PromiseOutcome = "pipeline_revenue_added"
	OutcomeCollectionsRecovery PromiseOutcome = "collections_recovered"
	OutcomeContentEngine       PromiseOutcome = "content_engine_shipped"
	OutcomeOutboundInstalled   PromiseOutcome = "outbound_system_installed"
	OutcomeTeamRamped          PromiseOutcome = "sales_team_ramped"
	OutcomeFounderReplaced     PromiseOutcome = "founder_led_sales_replaced"
	OutcomeCloseRateLifted     PromiseOutcome = "close_rate_lifted"
	OutcomePricingConfidence   PromiseOutcome = "pricing_confidence_built"
	OutcomeDiscoveryMastery    PromiseOutcome = "discovery_call_mastery"
	OutcomeWorkflowAutomated   PromiseOutcome = "manual_workflow_automated"
	OutcomeDataAccuracy        PromiseOutcome = "crm_data_accuracy_improved"
	OutcomePipelineVisibility  PromiseOutcome = "pipeline_visibility_restored"
	OutcomeColdEmailInfra      PromiseOutcome = "cold_email_infrastructure"
	OutcomeListBuilding        PromiseOutcome = "target_list_building"
	OutcomeCRMCleanup          PromiseOutcome = "crm_cleanup"
	OutcomeSDRPlaced           PromiseOutcome = "sdr_placed"
	OutcomeCloserPlaced        PromiseOutcome = "closer_placed"
	OutcomeSalesLeaderPlaced   PromiseOutcome = "sales_leader_placed"
)

// PromiseBucket is the coarse grouping a PromiseOutcome rolls up into.
// Never entered directly; derived via BucketOf.
type PromiseBucket string

const (
	BucketLeadFlow       PromiseBucket = "lead_flow"
	BucketRevenueGrowth  PromiseBucket = "revenue_growth"
	BucketCostReduction  PromiseBucket = "cost_reduction"
	BucketOpsEfficiency  PromiseBucket = "operational_efficiency"
	BucketTalent         PromiseBucket = "talent"
	BucketRiskMitigation PromiseBucket = "risk_mitigation"
)

// Industry is the top-level ICP industry.
type Industry string

const (
	IndustryB2BSoftware   Industry = "b2b_software"
	IndustryProfServices  Industry = "professional_services"
	IndustryEcommerce     Industry = "ecommerce_retail"
	IndustryHealthcare    Industry = "healthcare"
	IndustryFinancial     Industry = "financial_services"
	IndustryHomeServices  Industry = "home_services"
	IndustryManufacturing Industry = "manufacturing_industrial"
)

// VerticalSegment narrows an Industry. Valid values are scoped to the
// selected Industry (see VerticalsFor).
type VerticalSegment string

const (
	VerticalSaaS           VerticalSegment = "vertical_saas"
	VerticalHorizontalSaaS VerticalSegment = "horizontal_saas"
	VerticalDevTools       VerticalSegment = "dev_tools"
	VerticalAccounting     VerticalSegment = "accounting_firms"
	VerticalLaw            VerticalSegment = "law_firms"
	VerticalAgencies       VerticalSegment = "marketing_agencies"
	VerticalMSP            VerticalSegment = "it_msp"
	VerticalDTC            VerticalSegment = "dtc_brands"
	VerticalAmazon         VerticalSegment = "amazon_sellers"
	VerticalRetailChains   VerticalSegment = "retail_chains"
	VerticalDental         VerticalSegment = "dental_practices"
	VerticalMedspa         VerticalSegment = "medspas"
	VerticalClinics        VerticalSegment = "specialty_clinics"
	VerticalWealthMgmt     VerticalSegment = "wealth_management"
	VerticalInsurance      VerticalSegment = "insurance_brokers"
	VerticalLenders        VerticalSegment = "lenders"
	VerticalHVAC           VerticalSegment = "hvac"
	VerticalRoofing        VerticalSegment = "roofing"
	VerticalSolar          VerticalSegment = "solar"
	VerticalContractMfg    VerticalSegment = "contract_manufacturers"
	VerticalDistributors   VerticalSegment = "industrial_distributors"
	VerticalLogistics      VerticalSegment = "logistics_providers"
)

// ScoringSegment is the coarse buyer-behavior grouping a VerticalSegment
// rolls up into. Derived via SegmentOf.
type ScoringSegment string

const (
	SegmentHighVelocity       ScoringSegment = "high_velocity"
	SegmentRelationshipDriven ScoringSegment = "relationship_driven"
	SegmentRegulated          ScoringSegment = "regulated"
	SegmentLocalOwnerOperated ScoringSegment = "local_owner_operated"
)

// ICPSize is the headcount band of the ideal customer.
type ICPSize string

const (
	SizeSoloOwner  ICPSize = "solo_owner"
	SizeMicro      ICPSize = "micro_2_10"
	SizeSMB        ICPSize = "smb_11_50"
	SizeMidmarket  ICPSize = "midmarket_51_500"
	SizeEnterprise ICPSize = "enterprise_500_plus"
)

// ICPMaturity is the growth stage of the ideal customer.
type ICPMaturity string

const (
	MaturityPreRevenue    ICPMaturity = "pre_revenue"
	MaturityEarlyTraction ICPMaturity = "early_traction"
	MaturityScaling       ICPMaturity = "scaling"
	MaturityEstablished   ICPMaturity = "established"
)

// ICPSpecificity is how narrowly the ideal customer is defined.
type ICPSpecificity string

const (
	SpecificityBroad    ICPSpecificity = "broad_horizontal"
	SpecificityLoose    ICPSpecificity = "loose_vertical"
	SpecificityNamed    ICPSpecificity = "named_vertical"
	SpecificitySurgical ICPSpecificity = "surgical_niche"
)

// PricingStructure is the pricing model; it selects which pricing variant
// must be populated on the input.
type PricingStructure string

const (
	PricingRecurring       PricingStructure = "recurring"
	PricingOneTime         PricingStructure = "one_time"
	PricingUsageBased      PricingStructure = "usage_based"
	PricingHybrid          PricingStructure = "hybrid"
	PricingPerformanceOnly PricingStructure = "performance_only"
)

// RecurringPriceTier is the monthly price band for recurring offers.
type RecurringPriceTier string

const (
	RecurringUnder1K RecurringPriceTier = "under_1k"
	Recurring1KTo3K  RecurringPriceTier = "1k_3k"
	Recurring3KTo6K  RecurringPriceTier = "3k_6k"
	Recurring6KTo12K RecurringPriceTier = "6k_12k"
	RecurringOver12K RecurringPriceTier = "over_12k"
)

// OneTimePriceTier is the price band for one-time offers.
type OneTimePriceTier string

const (
	OneTimeUnder2K  OneTimePriceTier = "under_2k"
	OneTime2KTo10K  OneTimePriceTier = "2k_10k"
	OneTime10KTo25K OneTimePriceTier = "10k_25k"
	OneTimeOver25K  OneTimePriceTier = "over_25k"
)

// UsageOutputType is the unit a usage-based offer bills on.
type UsageOutputType string

const (
	OutputQualifiedMeeting UsageOutputType = "qualified_meeting"
	OutputContactedLead    UsageOutputType = "contacted_lead"
	OutputHirePlaced       UsageOutputType = "hire_placed"
	OutputRevenueEvent     UsageOutputType = "revenue_event"
)

// UsageVolumeTier is the expected monthly output volume band.
type UsageVolumeTier string

const (
	VolumeSingleDigits UsageVolumeTier = "single_digits"
	VolumeTens         UsageVolumeTier = "tens"
	VolumeHundreds     UsageVolumeTier = "hundreds"
	VolumeThousands    UsageVolumeTier = "thousands"
)

// RetainerTier is the monthly retainer band for hybrid offers.
type RetainerTier string

const (
	RetainerUnder1K RetainerTier = "retainer_under_1k"
	Retainer1KTo3K  RetainerTier = "retainer_1k_3k"
	RetainerOver3K  RetainerTier = "retainer_over_3k"
)

// PerformanceBasis is what the performance component is measured against.
type PerformanceBasis string

const (
	BasisPerMeetingHeld    PerformanceBasis = "per_meeting_held"
	BasisPerOpportunity    PerformanceBasis = "per_opportunity_created"
	BasisPctClosedRevenue  PerformanceBasis = "percent_of_closed_revenue"
	BasisPctCollectedCash  PerformanceBasis = "percent_of_collected_revenue"
)

// PerformanceCompTier is how aggressively the performance component is priced.
type PerformanceCompTier string

const (
	CompConservative PerformanceCompTier = "conservative"
	CompMarketRate   PerformanceCompTier = "market_rate"
	CompAggressive   PerformanceCompTier = "aggressive"
)

// RiskModel is the guarantee / risk posture attached to the offer.
type RiskModel string

const (
	RiskNoGuarantee      RiskModel = "no_guarantee"
	RiskConditional      RiskModel = "conditional_guarantee"
	RiskPerformanceFloor RiskModel = "performance_floor"
	RiskFullRefund       RiskModel = "full_refund_guarantee"
	RiskPayAfterResults  RiskModel = "pay_after_results"
)

// FulfillmentComplexity is how heavy delivery is once a deal closes.
type FulfillmentComplexity string

const (
	FulfillmentPlugAndPlay     FulfillmentComplexity = "plug_and_play"
	FulfillmentLightOnboarding FulfillmentComplexity = "light_onboarding"
	FulfillmentDedicatedTeam   FulfillmentComplexity = "dedicated_team"
	FulfillmentCustomBuildout  FulfillmentComplexity = "custom_buildout"
)

// ProofLevel is the ordinal strength of market proof behind the offer.
type ProofLevel string

const (
	ProofNone           ProofLevel = "none"
	ProofAnecdotal      ProofLevel = "anecdotal"
	ProofCaseStudies    ProofLevel = "documented_case_studies"
	ProofThirdParty     ProofLevel = "third_party_verified"
	ProofCategoryLeader ProofLevel = "category_leader"
)

// RecurringPricing is the sub-field set for PricingRecurring.
type RecurringPricing struct {
	PriceTier RecurringPriceTier `json:"price_tier" yaml:"price_tier"`
}

// OneTimePricing is the sub-field set for PricingOneTime.
type OneTimePricing struct {
	PriceTier OneTimePriceTier `json:"price_tier" yaml:"price_tier"`
}

// UsagePricing is the sub-field set for PricingUsageBased.
type UsagePricing struct {
	OutputType UsageOutputType `json:"output_type" yaml:"output_type"`
	VolumeTier UsageVolumeTier `json:"volume_tier" yaml:"volume_tier"`
}

// HybridPricing is the sub-field set for PricingHybrid.
type HybridPricing struct {
	RetainerTier RetainerTier        `json:"retainer_tier" yaml:"retainer_tier"`
	Basis        PerformanceBasis    `json:"basis" yaml:"basis"`
	CompTier     PerformanceCompTier `json:"comp_tier" yaml:"comp_tier"`
}

// PerformancePricing is the sub-field set for PricingPerformanceOnly.
type PerformancePricing struct {
	Basis    PerformanceBasis    `json:"basis" yaml:"basis"`
	CompTier PerformanceCompTier `json:"comp_tier" yaml:"comp_tier"`
}

// Pricing is a tagged variant keyed by Structure. Exactly the variant
// matching Structure must be populated; the rest must be nil.
type Pricing struct {
	Structure   PricingStructure    `json:"structure" yaml:"structure"`
	Recurring   *RecurringPricing   `json:"recurring,omitempty" yaml:"recurring,omitempty"`
	OneTime     *OneTimePricing     `json:"one_time,omitempty" yaml:"one_time,omitempty"`
	Usage       *UsagePricing       `json:"usage,omitempty" yaml:"usage,omitempty"`
	Hybrid      *HybridPricing      `json:"hybrid,omitempty" yaml:"hybrid,omitempty"`
	Performance *PerformancePricing `json:"performance,omitempty" yaml:"performance,omitempty"`
}

// DiagnosticInput describes one offer for readiness scoring. It is built
// incrementally by a form and validated as a whole before any scoring.
type DiagnosticInput struct {
	OfferType      OfferType      `json:"offer_type" yaml:"offer_type"`
	PromiseOutcome PromiseOutcome `json:"promise_outcome" yaml:"promise_outcome"`
	PromiseBucket  PromiseBucket  `json:"promise_bucket" yaml:"promise_bucket"`

	Industry        Industry        `json:"icp_industry" yaml:"icp_industry"`
	VerticalSegment VerticalSegment `json:"vertical_segment" yaml:"vertical_segment"`
	ScoringSegment  ScoringSegment  `json:"scoring_segment" yaml:"scoring_segment"`
	ICPSize         ICPSize         `json:"icp_size" yaml:"icp_size"`
	ICPMaturity     ICPMaturity     `json:"icp_maturity" yaml:"icp_maturity"`
	ICPSpecificity  ICPSpecificity  `json:"icp_specificity" yaml:"icp_specificity"`

	Pricing Pricing `json:"pricing" yaml:"pricing"`

	RiskModel             RiskModel             `json:"risk_model" yaml:"risk_model"`
	FulfillmentComplexity FulfillmentComplexity `json:"fulfillment_complexity" yaml:"fulfillment_complexity"`
	ProofLevel            ProofLevel            `json:"proof_level" yaml:"proof_level"`
}

// Normalized returns a copy with the derived fields (PromiseBucket,
// ScoringSegment) filled from their source fields when empty. Fields that
// are already set are left untouched so Validate can still catch a stale
// derived value.
func (in DiagnosticInput) Normalized() DiagnosticInput {
	if in.PromiseBucket == "" {
		if b, ok := BucketOf(in.PromiseOutcome); ok {
			in.PromiseBucket = b
		}
	}
	if in.ScoringSegment == "" {
		if s, ok := SegmentOf(in.VerticalSegment); ok {
			in.ScoringSegment = s
		}
	}
	return in
}
