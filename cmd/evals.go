package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/readiness-cli/internal/diagnostic"
	"github.com/sells-group/readiness-cli/internal/store"
)

var (
	evalsLabel string
	evalsReady string
	evalsLimit int
)

var evalsCmd = &cobra.Command{
	Use:   "evals",
	Short: "List stored evaluations",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := initStore(cmd.Context())
		if err != nil {
			return err
		}
		defer s.Close() //nolint:errcheck

		filter := store.Filter{
			Label: diagnostic.ReadinessLabel(evalsLabel),
			Limit: evalsLimit,
		}
		switch evalsReady {
		case "":
		case "true", "false":
			ready := evalsReady == "true"
			filter.Ready = &ready
		default:
			return eris.New("--ready must be true or false")
		}

		records, err := s.ListEvaluations(cmd.Context(), filter)
		if err != nil {
			return err
		}

		if len(records) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No evaluations found")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSCORE\tLABEL\tREADY\tBOTTLENECK\tCREATED")
		for _, rec := range records {
			fmt.Fprintf(w, "%s\t%d\t%s\t%t\t%s\t%s\n",
				rec.ID,
				rec.Score.AlignmentScore,
				rec.Score.ReadinessLabel,
				rec.Score.OutboundReady,
				rec.Score.PrimaryBottleneck.Dimension,
				rec.CreatedAt.Format("2006-01-02 15:04"),
			)
		}
		return w.Flush()
	},
}

func init() {
	evalsCmd.Flags().StringVar(&evalsLabel, "label", "", "filter by readiness label (strong, moderate, weak)")
	evalsCmd.Flags().StringVar(&evalsReady, "ready", "", "filter by outbound readiness (true or false)")
	evalsCmd.Flags().IntVar(&evalsLimit, "limit", 50, "max evaluations to list")
	rootCmd.AddCommand(evalsCmd)
}
