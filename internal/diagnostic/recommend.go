package diagnostic

import (
	"fmt"
	"sort"

	"github.com/sells-group/readiness-cli/internal/offer"
)

// remediationThreshold is the subscore below which a dimension earns a
// recommendation even without a triggered gate.
const remediationThreshold = 12

// categoryPriority is the fixed tie-break ordering for recommendations that
// share severity and subscore.
var categoryPriority = map[RecommendationCategory]int{
	CategoryICPShift:          0,
	CategoryPromiseShift:      1,
	CategoryPricingShift:      2,
	CategoryRiskShift:         3,
	CategoryFulfillmentShift:  4,
	CategoryPositioningShift:  5,
	CategoryFounderPsychology: 6,
}

// recTemplate builds the text payload of one recommendation from the input
// it is remediating.
type recTemplate struct {
	category RecommendationCategory
	build    func(in offer.DiagnosticInput) (headline, explanation string, steps []string, desired string)
}

// gateTemplates keys remediation text by triggered gate identifier.
var gateTemplates = map[string]recTemplate{
	GateUnsustainableEconomics: {
		category: CategoryPricingShift,
		build: func(in offer.DiagnosticInput) (string, string, []string, string) {
			return "Rebuild the economics before selling on performance",
				"An aggressive performance-only comp plan stacked on a " + offer.Label(in.RiskModel) + " posture means you carry all delivery cost and all downside. One bad month erases a quarter of margin.",
				[]string{
					"Add a retainer component that covers your hard delivery costs.",
					"Move the performance comp tier from aggressive to market rate.",
					"Replace the open-ended guarantee with a conditional one tied to defined inputs.",
				},
				"A hybrid structure where fixed revenue covers cost of delivery and performance upside is pure margin."
		},
	},
	GatePerformanceNoProof: {
		category: CategoryRiskShift,
		build: func(in offer.DiagnosticInput) (string, string, []string, string) {
			return "Earn proof before taking on outcome risk",
				"You are asking prospects to believe in results you cannot yet evidence, while absorbing the risk yourself. Without proof, performance pricing reads as desperation, not confidence.",
				[]string{
					"Run three to five discounted engagements purely to produce documented case studies.",
					"Switch to a retainer or one-time structure until the case studies exist.",
					"Collect baseline and result metrics from day one of every engagement.",
				},
				"Documented case studies backing a risk posture you can actually afford."
		},
	},
	GateBudgetlessICP: {
		category: CategoryICPShift,
		build: func(in offer.DiagnosticInput) (string, string, []string, string) {
			return "Target buyers who can pay",
				"Pre-revenue solo owners have no budget line for " + offer.Label(in.OfferType) + " offers. Outbound into this profile burns list and sender reputation for deals that cannot close.",
				[]string{
					"Move the size floor to businesses with at least a small team.",
					"Require early traction or better as the minimum maturity stage.",
					"Re-cut the target list against the new floor before the next send.",
				},
				"An ICP with demonstrated revenue and a team, where the budget conversation is about priority, not existence."
		},
	},
	GateDeliveryUnderfunded: {
		category: CategoryFulfillmentShift,
		build: func(in offer.DiagnosticInput) (string, string, []string, string) {
			return "Price the buildout or shrink it",
				"Custom buildout delivery at an entry-level price tier means every closed deal loses money on fulfillment. Scaling outbound would scale the loss.",
				[]string{
					"Productize the first phase of the buildout into a fixed scope.",
					"Raise the price tier to cover the true delivery cost of a custom engagement.",
					"Defer fully custom work to an upsell after the productized phase lands.",
				},
				"Delivery scope and price tier that leave positive margin on every closed deal."
		},
	},
	GateBroadPositioning: {
		category: CategoryPositioningShift,
		build: func(in offer.DiagnosticInput) (string, string, []string, string) {
			return "Pick a lane prospects recognize",
				"A broad horizontal ICP forces generic messaging. In cold outbound, generic messaging is invisible; the reply rate ceiling stays low no matter how good the offer is.",
				[]string{
					"Choose one vertical inside " + offer.Label(in.Industry) + " and write copy only for it.",
					"Rebuild the list around that vertical's firmographics.",
					"Move to a named vertical or surgical niche before scaling send volume.",
				},
				"Messaging specific enough that a prospect thinks it was written about their business."
		},
	},
	GateThinProof: {
		category: CategoryPositioningShift,
		build: func(in offer.DiagnosticInput) (string, string, []string, string) {
			return "Turn wins into documented proof",
				"At the " + offer.Label(in.ProofLevel) + " level, cold prospects have no reason to believe the promise. Proof is the cheapest conversion lever you are not using.",
				[]string{
					"Write up existing wins as one-page case studies with real numbers.",
					"Ask current customers for attributable quotes or review-platform entries.",
					"Lead outbound copy with the strongest single result you can document.",
				},
				"At least documented case studies, cited in the first two sentences of every cold touch."
		},
	},
	GateRefundExposure: {
		category: CategoryRiskShift,
		build: func(in offer.DiagnosticInput) (string, string, []string, string) {
			return "Cap the refund exposure",
				"A full refund guarantee on a one-time price means a single unhappy buyer claws back the entire deal after you have paid for delivery.",
				[]string{
					"Convert the guarantee to a conditional one tied to buyer-side obligations.",
					"Offer a re-do or service credit instead of cash back.",
					"If a refund stays, stage the engagement so refunds only cover the unstarted portion.",
				},
				"A guarantee that reassures buyers without putting already-delivered work at risk."
		},
	},
	GateCommodityPromise: {
		category: CategoryPromiseShift,
		build: func(in offer.DiagnosticInput) (string, string, []string, string) {
			return "Sharpen an efficiency promise into an outcome",
				offer.Label(in.PromiseOutcome) + " reads as operational housekeeping to a cold prospect. Efficiency promises only sell when tied to a number the buyer already cares about.",
				[]string{
					"Restate the promise in terms of revenue, cost or risk the buyer tracks.",
					"Narrow the ICP until the efficiency gain maps to a known dollar figure.",
					"Collect a before/after metric from the next engagement to anchor the claim.",
				},
				"A promise a buyer can forward to their CFO without explanation."
		},
	},
	GateUnderpricedRecurring: {
		category: CategoryPricingShift,
		build: func(in offer.DiagnosticInput) (string, string, []string, string) {
			return "Raise the floor on recurring price",
				"Below $1k/mo, recurring revenue cannot fund a real outbound motion: customer acquisition cost eats a year of contract value before the account turns profitable.",
				[]string{
					"Bundle adjacent deliverables to justify the $1k-$3k tier.",
					"Grandfather existing accounts and quote new business at the higher tier.",
					"Track months-to-recover-CAC per account and prune tiers that never recover.",
				},
				"A recurring price tier where one closed deal pays back its acquisition cost inside a quarter."
		},
	},
}

// dimensionTemplates keys remediation text by weak latent dimension.
var dimensionTemplates = map[Dimension]recTemplate{
	DimICPFit: {
		category: CategoryICPShift,
		build: func(in offer.DiagnosticInput) (string, string, []string, string) {
			return "Re-aim the ideal customer profile",
				"The current combination of segment, size and maturity scores poorly for outbound: " + offer.Label(in.ScoringSegment) + " buyers at this size and stage are hard to reach or hard to close cold.",
				[]string{
					"Shift toward scaling-stage companies where the pain is budgeted.",
					"Favor sizes with an owner who can buy and a team that feels the pain.",
					"Validate the new profile against your last ten closed-won deals.",
				},
				"An ICP where segment, size and maturity all pull toward a fast cold-to-close path."
		},
	},
	DimPromise: {
		category: CategoryPromiseShift,
		build: func(in offer.DiagnosticInput) (string, string, []string, string) {
			return "Strengthen the promised outcome",
				"The promise behind " + offer.Label(in.PromiseOutcome) + " is not landing as urgent or high-value for this buyer. Weak promises force outbound to work on volume alone.",
				[]string{
					"Anchor the promise to lead flow or revenue rather than internal improvements.",
					"Quantify the outcome with the strongest evidence available.",
					"Test two promise framings against the same list and keep the winner.",
				},
				"A promise in the top bucket for this buyer, stated with a number."
		},
	},
	DimPricing: {
		category: CategoryPricingShift,
		build: func(in offer.DiagnosticInput) (string, string, []string, string) {
			return "Restructure pricing for outbound economics",
				"The current " + offer.Label(in.Pricing.Structure) + " setup scores low on viability: the expected revenue per closed deal does not support paid acquisition of cold leads.",
				[]string{
					"Model revenue per closed deal against realistic outbound cost per deal.",
					"Move toward mid-tier recurring or hybrid structures that compound.",
					"Remove pricing elements that shift all risk onto you.",
				},
				"A structure where each closed deal funds the outbound that produced it, with margin left over."
		},
	},
	DimRisk: {
		category: CategoryRiskShift,
		build: func(in offer.DiagnosticInput) (string, string, []string, string) {
			return "Rebalance the risk posture",
				"The " + offer.Label(in.RiskModel) + " posture combined with this pricing structure leaves the risk split misaligned: either buyers see too little assurance or you carry too much exposure.",
				[]string{
					"Adopt a conditional guarantee with explicit buyer-side obligations.",
					"Tie any floor or refund to metrics you control end to end.",
					"Price the cost of the guarantee into the tier instead of absorbing it.",
				},
				"A risk posture that closes deals without creating unbounded downside."
		},
	},
	DimFulfillment: {
		category: CategoryFulfillmentShift,
		build: func(in offer.DiagnosticInput) (string, string, []string, string) {
			return "Lighten delivery before scaling demand",
				offer.Label(in.FulfillmentComplexity) + " delivery will bottleneck the pipeline outbound creates: every new deal adds load faster than capacity grows.",
				[]string{
					"Template the first thirty days of delivery so onboarding is repeatable.",
					"Split the offer into a standardized core and an optional custom layer.",
					"Measure delivery hours per account and set a ceiling before ramping volume.",
				},
				"Delivery light enough that doubling closed deals does not require doubling headcount."
		},
	},
	DimProof: {
		category: CategoryPositioningShift,
		build: func(in offer.DiagnosticInput) (string, string, []string, string) {
			return "Build the proof inventory",
				"Proof at the " + offer.Label(in.ProofLevel) + " level cannot carry a cold conversation. Every other dimension works harder when evidence is missing.",
				[]string{
					"Document every active engagement's baseline and current numbers.",
					"Convert the two best results into public, named case studies.",
					"Pursue a third-party review or ranking in your category.",
				},
				"A proof inventory strong enough to open cold conversations on its own."
		},
	},
	DimPositioning: {
		category: CategoryPositioningShift,
		build: func(in offer.DiagnosticInput) (string, string, []string, string) {
			return "Narrow the positioning",
				"At " + offer.Label(in.ICPSpecificity) + " specificity the offer blends into every competitor's pitch. Cold buyers only respond to offers that sound built for them.",
				[]string{
					"Commit to one vertical segment for the next ninety days of outbound.",
					"Rewrite the one-line pitch to name the vertical and the outcome.",
					"Kill list entries that do not match the narrowed profile.",
				},
				"A named-vertical or surgical-niche position with copy that proves you know the niche."
		},
	},
	DimFounderReady: {
		category: CategoryFounderPsychology,
		build: func(in offer.DiagnosticInput) (string, string, []string, string) {
			return "Close the founder conviction gap",
				"The structure of this offer demands more founder conviction than it currently supports: selling " + offer.Label(in.OfferType) + " offers into this stage of buyer takes steady confidence in price and promise.",
				[]string{
					"Write down the exact result you would defend to a skeptical buyer.",
					"Rehearse the pricing conversation until the number comes out flat.",
					"Drop any element of the offer you would quietly discount under pressure.",
				},
				"An offer the founder can state, price and defend without flinching."
		},
	},
}

// candidate pairs a built recommendation with its ordering key.
type candidate struct {
	rec      Recommendation
	subscore int
}

// GenerateRecommendations converts triggered gates and weak dimensions into
// an ordered remediation list. One candidate per triggered gate (hard gates
// blocking, soft gates moderate) and one per dimension under the remediation
// threshold; deduplicated by category with the stronger-severity source
// winning. Ordering: severity descending, then subscore ascending, then the
// fixed category priority. An empty result means the offer is well
// optimized.
func GenerateRecommendations(input offer.DiagnosticInput, scores LatentScores, gates GateResult) []Recommendation {
	byCategory := map[RecommendationCategory]candidate{}

	consider := func(c candidate) {
		prev, ok := byCategory[c.rec.Category]
		if !ok {
			byCategory[c.rec.Category] = c
			return
		}
		if rankSeverity(c.rec.Severity) < rankSeverity(prev.rec.Severity) {
			byCategory[c.rec.Category] = c
			return
		}
		if rankSeverity(c.rec.Severity) == rankSeverity(prev.rec.Severity) && c.subscore < prev.subscore {
			byCategory[c.rec.Category] = c
		}
	}

	for _, id := range gates.HardGates {
		if c, ok := gateCandidate(id, SeverityBlocking, input, scores); ok {
			consider(c)
		}
	}
	for _, id := range gates.SoftGates {
		if c, ok := gateCandidate(id, SeverityModerate, input, scores); ok {
			consider(c)
		}
	}

	for _, dim := range bottleneckPriority {
		if scores[dim] >= remediationThreshold {
			continue
		}
		tpl := dimensionTemplates[dim]
		consider(buildCandidate(tpl, SeverityModerate, scores[dim], input))
	}

	out := make([]candidate, 0, len(byCategory))
	for _, c := range byCategory {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		si, sj := rankSeverity(out[i].rec.Severity), rankSeverity(out[j].rec.Severity)
		if si != sj {
			return si < sj
		}
		if out[i].subscore != out[j].subscore {
			return out[i].subscore < out[j].subscore
		}
		return categoryPriority[out[i].rec.Category] < categoryPriority[out[j].rec.Category]
	})

	recs := make([]Recommendation, 0, len(out))
	for _, c := range out {
		recs = append(recs, c.rec)
	}
	return recs
}

// gateCandidate builds the candidate for a triggered gate. The ordering
// subscore is the lowest implicated dimension's subscore.
func gateCandidate(id string, severity Severity, input offer.DiagnosticInput, scores LatentScores) (candidate, bool) {
	tpl, ok := gateTemplates[id]
	if !ok {
		// A gate without remediation text is a table defect.
		panic(fmt.Sprintf("diagnostic: no recommendation template for gate %q", id))
	}
	g, ok := gateByID(id)
	if !ok {
		return candidate{}, false
	}
	lowest := MaxSubscore
	for _, dim := range g.dimensions {
		if scores[dim] < lowest {
			lowest = scores[dim]
		}
	}
	return buildCandidate(tpl, severity, lowest, input), true
}

func buildCandidate(tpl recTemplate, severity Severity, subscore int, input offer.DiagnosticInput) candidate {
	headline, explanation, steps, desired := tpl.build(input)
	return candidate{
		rec: Recommendation{
			Category:         tpl.category,
			Severity:         severity,
			Headline:         headline,
			PlainExplanation: explanation,
			ActionSteps:      steps,
			DesiredState:     desired,
		},
		subscore: subscore,
	}
}

func rankSeverity(s Severity) int {
	if s == SeverityBlocking {
		return 0
	}
	return 1
}
