package offer

// Static category tables. These are read-only lookup data: labels for every
// enumerated value, the outcome and vertical scoping tables, and the two
// derivations (outcome -> bucket, vertical -> scoring segment).

// offerOutcomes scopes PromiseOutcome to OfferType.
var offerOutcomes = map[OfferType][]PromiseOutcome{
	OfferDoneForYou: {
		OutcomeMeetingsBooked,
		OutcomePipelineAdded,
		OutcomeCollectionsRecovery,
		OutcomeContentEngine,
	},
	OfferDoneWithYou: {
		OutcomeOutboundInstalled,
		OutcomeTeamRamped,
		OutcomeFounderReplaced,
	},
	OfferCoaching: {
		OutcomeCloseRateLifted,
		OutcomePricingConfidence,
		OutcomeDiscoveryMastery,
	},
	OfferSaaS: {
		OutcomeWorkflowAutomated,
		OutcomeDataAccuracy,
		OutcomePipelineVisibility,
	},
	OfferProductized: {
		OutcomeColdEmailInfra,
		OutcomeListBuilding,
		OutcomeCRMCleanup,
	},
	OfferStaffing: {
		OutcomeSDRPlaced,
		OutcomeCloserPlaced,
		OutcomeSalesLeaderPlaced,
	},
}

// outcomeBuckets derives the PromiseBucket for every PromiseOutcome.
var outcomeBuckets = map[PromiseOutcome]PromiseBucket{
	OutcomeMeetingsBooked:      BucketLeadFlow,
	OutcomePipelineAdded:       BucketRevenueGrowth,
	OutcomeCollectionsRecovery: BucketCostReduction,
	OutcomeContentEngine:       BucketOpsEfficiency,
	OutcomeOutboundInstalled:   BucketLeadFlow,
	OutcomeTeamRamped:          BucketTalent,
	OutcomeFounderReplaced:     BucketOpsEfficiency,
	OutcomeCloseRateLifted:     BucketRevenueGrowth,
	OutcomePricingConfidence:   BucketRevenueGrowth,
	OutcomeDiscoveryMastery:    BucketOpsEfficiency,
	OutcomeWorkflowAutomated:   BucketOpsEfficiency,
	OutcomeDataAccuracy:        BucketRiskMitigation,
	OutcomePipelineVisibility:  BucketOpsEfficiency,
	OutcomeColdEmailInfra:      BucketLeadFlow,
	OutcomeListBuilding:        BucketLeadFlow,
	OutcomeCRMCleanup:          BucketOpsEfficiency,
	OutcomeSDRPlaced:           BucketTalent,
	OutcomeCloserPlaced:        BucketTalent,
	OutcomeSalesLeaderPlaced:   BucketTalent,
}

// industryVerticals scopes VerticalSegment to Industry.
var industryVerticals = map[Industry][]VerticalSegment{
	IndustryB2BSoftware:   {VerticalSaaS, VerticalHorizontalSaaS, VerticalDevTools},
	IndustryProfServices:  {VerticalAccounting, VerticalLaw, VerticalAgencies, VerticalMSP},
	IndustryEcommerce:     {VerticalDTC, VerticalAmazon, VerticalRetailChains},
	IndustryHealthcare:    {VerticalDental, VerticalMedspa, VerticalClinics},
	IndustryFinancial:     {VerticalWealthMgmt, VerticalInsurance, VerticalLenders},
	IndustryHomeServices:  {VerticalHVAC, VerticalRoofing, VerticalSolar},
	IndustryManufacturing: {VerticalContractMfg, VerticalDistributors, VerticalLogistics},
}

// verticalSegments derives the ScoringSegment for every VerticalSegment.
var verticalSegments = map[VerticalSegment]ScoringSegment{
	VerticalSaaS:           SegmentHighVelocity,
	VerticalHorizontalSaaS: SegmentHighVelocity,
	VerticalDevTools:       SegmentHighVelocity,
	VerticalAccounting:     SegmentRegulated,
	VerticalLaw:            SegmentRegulated,
	VerticalAgencies:       SegmentRelationshipDriven,
	VerticalMSP:            SegmentRelationshipDriven,
	VerticalDTC:            SegmentHighVelocity,
	VerticalAmazon:         SegmentHighVelocity,
	VerticalRetailChains:   SegmentRelationshipDriven,
	VerticalDental:         SegmentRegulated,
	VerticalMedspa:         SegmentLocalOwnerOperated,
	VerticalClinics:        SegmentRegulated,
	VerticalWealthMgmt:     SegmentRegulated,
	VerticalInsurance:      SegmentRegulated,
	VerticalLenders:        SegmentRegulated,
	VerticalHVAC:           SegmentLocalOwnerOperated,
	VerticalRoofing:        SegmentLocalOwnerOperated,
	VerticalSolar:          SegmentLocalOwnerOperated,
	VerticalContractMfg:    SegmentRelationshipDriven,
	VerticalDistributors:   SegmentRelationshipDriven,
	VerticalLogistics:      SegmentRelationshipDriven,
}

// proofRanks orders ProofLevel from weakest to strongest.
var proofRanks = map[ProofLevel]int{
	ProofNone:           0,
	ProofAnecdotal:      1,
	ProofCaseStudies:    2,
	ProofThirdParty:     3,
	ProofCategoryLeader: 4,
}

// labels maps every enumerated value to its display label. Keyed by the raw
// string so one table covers all category types.
var labels = map[string]string{
	string(OfferDoneForYou):  "Done-for-you service",
	string(OfferDoneWithYou): "Done-with-you program",
	string(OfferCoaching):    "Coaching program",
	string(OfferSaaS):        "SaaS platform",
	string(OfferProductized): "Productized service",
	string(OfferStaffing):    "Staffing & placement",

	string(OutcomeMeetingsBooked):      "Qualified meetings booked",
	string(OutcomePipelineAdded):       "Pipeline revenue added",
	string(OutcomeCollectionsRecovery): "Collections recovered",
	string(OutcomeContentEngine):       "Content engine shipped",
	string(OutcomeOutboundInstalled):   "Outbound system installed",
	string(OutcomeTeamRamped):          "Sales team ramped",
	string(OutcomeFounderReplaced):     "Founder-led sales replaced",
	string(OutcomeCloseRateLifted):     "Close rate lifted",
	string(OutcomePricingConfidence):   "Pricing confidence built",
	string(OutcomeDiscoveryMastery):    "Discovery call mastery",
	string(OutcomeWorkflowAutomated):   "Manual workflow automated",
	string(OutcomeDataAccuracy):        "CRM data accuracy improved",
	string(OutcomePipelineVisibility):  "Pipeline visibility restored",
	string(OutcomeColdEmailInfra):      "Cold email infrastructure",
	string(OutcomeListBuilding):        "Target list building",
	string(OutcomeCRMCleanup):          "CRM cleanup",
	string(OutcomeSDRPlaced):           "SDR placed",
	string(OutcomeCloserPlaced):        "Closer placed",
	string(OutcomeSalesLeaderPlaced):   "Sales leader placed",

	string(BucketLeadFlow):       "Lead flow",
	string(BucketRevenueGrowth):  "Revenue growth",
	string(BucketCostReduction):  "Cost reduction",
	string(BucketOpsEfficiency):  "Operational efficiency",
	string(BucketTalent):         "Talent",
	string(BucketRiskMitigation): "Risk mitigation",

	string(IndustryB2BSoftware):   "B2B software",
	string(IndustryProfServices):  "Professional services",
	string(IndustryEcommerce):     "E-commerce & retail",
	string(IndustryHealthcare):    "Healthcare",
	string(IndustryFinancial):     "Financial services",
	string(IndustryHomeServices):  "Home services",
	string(IndustryManufacturing): "Manufacturing & industrial",

	string(VerticalSaaS):           "Vertical SaaS",
	string(VerticalHorizontalSaaS): "Horizontal SaaS",
	string(VerticalDevTools):       "Developer tools",
	string(VerticalAccounting):     "Accounting firms",
	string(VerticalLaw):            "Law firms",
	string(VerticalAgencies):       "Marketing agencies",
	string(VerticalMSP):            "IT & MSPs",
	string(VerticalDTC):            "DTC brands",
	string(VerticalAmazon):         "Amazon sellers",
	string(VerticalRetailChains):   "Retail chains",
	string(VerticalDental):         "Dental practices",
	string(VerticalMedspa):         "Medspas",
	string(VerticalClinics):        "Specialty clinics",
	string(VerticalWealthMgmt):     "Wealth management",
	string(VerticalInsurance):      "Insurance brokers",
	string(VerticalLenders):        "Lenders",
	string(VerticalHVAC):           "HVAC",
	string(VerticalRoofing):        "Roofing",
	string(VerticalSolar):          "Solar",
	string(VerticalContractMfg):    "Contract manufacturers",
	string(VerticalDistributors):   "Industrial distributors",
	string(VerticalLogistics):      "Logistics providers",

	string(SegmentHighVelocity):       "High velocity",
	string(SegmentRelationshipDriven): "Relationship driven",
	string(SegmentRegulated):          "Regulated",
	string(SegmentLocalOwnerOperated): "Local owner-operated",

	string(SizeSoloOwner):  "Solo owner",
	string(SizeMicro):      "2-10 employees",
	string(SizeSMB):        "11-50 employees",
	string(SizeMidmarket):  "51-500 employees",
	string(SizeEnterprise): "500+ employees",

	string(MaturityPreRevenue):    "Pre-revenue",
	string(MaturityEarlyTraction): "Early traction",
	string(MaturityScaling):       "Scaling",
	string(MaturityEstablished):   "Established",

	string(SpecificityBroad):    "Broad horizontal",
	string(SpecificityLoose):    "Loose vertical",
	string(SpecificityNamed):    "Named vertical",
	string(SpecificitySurgical): "Surgical niche",

	string(PricingRecurring):       "Recurring",
	string(PricingOneTime):         "One-time",
	string(PricingUsageBased):      "Usage-based",
	string(PricingHybrid):          "Hybrid",
	string(PricingPerformanceOnly): "Performance-only",

	string(RecurringUnder1K): "Under $1k/mo",
	string(Recurring1KTo3K):  "$1k-$3k/mo",
	string(Recurring3KTo6K):  "$3k-$6k/mo",
	string(Recurring6KTo12K): "$6k-$12k/mo",
	string(RecurringOver12K): "Over $12k/mo",

	string(OneTimeUnder2K):  "Under $2k",
	string(OneTime2KTo10K):  "$2k-$10k",
	string(OneTime10KTo25K): "$10k-$25k",
	string(OneTimeOver25K):  "Over $25k",

	string(OutputQualifiedMeeting): "Qualified meeting",
	string(OutputContactedLead):    "Contacted lead",
	string(OutputHirePlaced):       "Hire placed",
	string(OutputRevenueEvent):     "Revenue event",

	string(VolumeSingleDigits): "Single digits / mo",
	string(VolumeTens):         "Tens / mo",
	string(VolumeHundreds):     "Hundreds / mo",
	string(VolumeThousands):    "Thousands / mo",

	string(RetainerUnder1K): "Under $1k/mo retainer",
	string(Retainer1KTo3K):  "$1k-$3k/mo retainer",
	string(RetainerOver3K):  "Over $3k/mo retainer",

	string(BasisPerMeetingHeld):   "Per meeting held",
	string(BasisPerOpportunity):   "Per opportunity created",
	string(BasisPctClosedRevenue): "Percent of closed revenue",
	string(BasisPctCollectedCash): "Percent of collected revenue",

	string(CompConservative): "Conservative",
	string(CompMarketRate):   "Market rate",
	string(CompAggressive):   "Aggressive",

	string(RiskNoGuarantee):      "No guarantee",
	string(RiskConditional):      "Conditional guarantee",
	string(RiskPerformanceFloor): "Performance floor",
	string(RiskFullRefund):       "Full refund guarantee",
	string(RiskPayAfterResults):  "Pay after results",

	string(FulfillmentPlugAndPlay):     "Plug and play",
	string(FulfillmentLightOnboarding): "Light onboarding",
	string(FulfillmentDedicatedTeam):   "Dedicated team",
	string(FulfillmentCustomBuildout):  "Custom buildout",

	string(ProofNone):           "No proof yet",
	string(ProofAnecdotal):      "Anecdotal wins",
	string(ProofCaseStudies):    "Documented case studies",
	string(ProofThirdParty):     "Third-party verified",
	string(ProofCategoryLeader): "Category leader",
}

// OutcomesFor returns the promise outcomes valid for an offer type.
func OutcomesFor(t OfferType) []PromiseOutcome {
	return offerOutcomes[t]
}

// BucketOf derives the promise bucket for an outcome.
func BucketOf(o PromiseOutcome) (PromiseBucket, bool) {
	b, ok := outcomeBuckets[o]
	return b, ok
}

// VerticalsFor returns the vertical segments valid for an industry.
func VerticalsFor(i Industry) []VerticalSegment {
	return industryVerticals[i]
}

// SegmentOf derives the scoring segment for a vertical segment.
func SegmentOf(v VerticalSegment) (ScoringSegment, bool) {
	s, ok := verticalSegments[v]
	return s, ok
}

// ProofRank returns the ordinal rank of a proof level (0 = weakest).
func ProofRank(p ProofLevel) int {
	return proofRanks[p]
}

// Label returns the display label for any enumerated category value, or the
// raw value when no label is registered.
func Label[T ~string](v T) string {
	if l, ok := labels[string(v)]; ok {
		return l
	}
	return string(v)
}

// Industries returns every industry in catalog order.
func Industries() []Industry {
	return []Industry{
		IndustryB2BSoftware, IndustryProfServices, IndustryEcommerce,
		IndustryHealthcare, IndustryFinancial, IndustryHomeServices,
		IndustryManufacturing,
	}
}

// OfferTypes returns every offer type in catalog order.
func OfferTypes() []OfferType {
	return []OfferType{
		OfferDoneForYou, OfferDoneWithYou, OfferCoaching,
		OfferSaaS, OfferProductized, OfferStaffing,
	}
}
