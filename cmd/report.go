package main

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sells-group/readiness-cli/internal/diagnostic"
	"github.com/sells-group/readiness-cli/internal/offer"
)

var titleCaser = cases.Title(language.AmericanEnglish)

// dimensionTitle renders a dimension key as a display heading.
func dimensionTitle(d diagnostic.Dimension) string {
	return titleCaser.String(strings.ReplaceAll(string(d), "_", " "))
}

// printReport writes a human-readable readiness report.
func printReport(w io.Writer, eval *diagnostic.Evaluation) {
	score := eval.Score

	fmt.Fprintf(w, "Offer: %s / %s\n", offer.Label(eval.Input.OfferType), offer.Label(eval.Input.PromiseOutcome))
	fmt.Fprintf(w, "ICP:   %s / %s (%s, %s)\n",
		offer.Label(eval.Input.Industry), offer.Label(eval.Input.VerticalSegment),
		offer.Label(eval.Input.ICPSize), offer.Label(eval.Input.ICPMaturity))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Alignment score: %d / 100 (%s)\n", score.AlignmentScore, titleCaser.String(string(score.ReadinessLabel)))
	if score.ScoreCap != nil {
		fmt.Fprintf(w, "Score cap:       %d (soft gates: %s)\n", *score.ScoreCap, strings.Join(score.SoftGates, ", "))
	}
	if score.OutboundReady {
		fmt.Fprintln(w, "Outbound ready:  yes")
	} else {
		fmt.Fprintln(w, "Outbound ready:  no")
		if len(score.HardGates) > 0 {
			fmt.Fprintf(w, "Hard gates:      %s\n", strings.Join(score.HardGates, ", "))
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Dimension scores:")
	for _, dim := range diagnostic.Dimensions() {
		marker := " "
		if dim == score.PrimaryBottleneck.Dimension {
			marker = "*"
		}
		fmt.Fprintf(w, "  %s %-24s %2d / %d\n", marker, dimensionTitle(dim), score.LatentScores[dim], diagnostic.MaxSubscore)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Primary bottleneck (%s): %s\n", score.PrimaryBottleneck.Severity, dimensionTitle(score.PrimaryBottleneck.Dimension))
	fmt.Fprintf(w, "  %s\n", score.PrimaryBottleneck.Explanation)

	if len(eval.Recommendations) == 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "No remediation needed: the offer is well optimized.")
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Recommendations:")
	for i, rec := range eval.Recommendations {
		fmt.Fprintf(w, "%d. [%s] %s\n", i+1, rec.Severity, rec.Headline)
		fmt.Fprintf(w, "   %s\n", rec.PlainExplanation)
		for _, step := range rec.ActionSteps {
			fmt.Fprintf(w, "   - %s\n", step)
		}
		fmt.Fprintf(w, "   Desired state: %s\n", rec.DesiredState)
	}
}
