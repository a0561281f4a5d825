package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sells-group/readiness-cli/internal/offer"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the category tables",
	Long:  "Prints every enumerated category, its values and the derived groupings, in the form the scoring form presents them.",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()

		fmt.Fprintln(w, "Offer types and promise outcomes:")
		for _, t := range offer.OfferTypes() {
			fmt.Fprintf(w, "  %s (%s)\n", offer.Label(t), t)
			for _, o := range offer.OutcomesFor(t) {
				bucket, _ := offer.BucketOf(o)
				fmt.Fprintf(w, "    - %s (%s) -> %s\n", offer.Label(o), o, bucket)
			}
		}

		fmt.Fprintln(w)
		fmt.Fprintln(w, "Industries and vertical segments:")
		for _, i := range offer.Industries() {
			fmt.Fprintf(w, "  %s (%s)\n", offer.Label(i), i)
			for _, v := range offer.VerticalsFor(i) {
				segment, _ := offer.SegmentOf(v)
				fmt.Fprintf(w, "    - %s (%s) -> %s\n", offer.Label(v), v, segment)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
