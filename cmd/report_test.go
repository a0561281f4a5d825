package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/readiness-cli/internal/diagnostic"
	"github.com/sells-group/readiness-cli/internal/offer"
)

func TestDimensionTitle(t *testing.T) {
	assert.Equal(t, "Icp Fit", dimensionTitle(diagnostic.DimICPFit))
	assert.Equal(t, "Proof Strength", dimensionTitle(diagnostic.DimProof))
}

func TestPrintReport_ReadyOffer(t *testing.T) {
	eval, err := diagnostic.Evaluate(validOffer().Normalized())
	require.NoError(t, err)

	var b strings.Builder
	printReport(&b, eval)
	out := b.String()

	assert.Contains(t, out, "Done-for-you service")
	assert.Contains(t, out, "Alignment score: 85 / 100 (Strong)")
	assert.Contains(t, out, "Outbound ready:  yes")
	assert.Contains(t, out, "* Proof Strength")
	assert.Contains(t, out, "No remediation needed")
	assert.NotContains(t, out, "Hard gates:")
}

func TestPrintReport_GatedOffer(t *testing.T) {
	in := validOffer().Normalized()
	in.Pricing = offer.Pricing{
		Structure:   offer.PricingPerformanceOnly,
		Performance: &offer.PerformancePricing{Basis: offer.BasisPerOpportunity, CompTier: offer.CompAggressive},
	}
	in.RiskModel = offer.RiskFullRefund

	eval, err := diagnostic.Evaluate(in)
	require.NoError(t, err)

	var b strings.Builder
	printReport(&b, eval)
	out := b.String()

	assert.Contains(t, out, "Outbound ready:  no")
	assert.Contains(t, out, "Hard gates:      unsustainable_economics")
	assert.Contains(t, out, "Recommendations:")
	assert.Contains(t, out, "1. [blocking]")
}
