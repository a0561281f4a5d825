package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/readiness-cli/internal/diagnostic"
	"github.com/sells-group/readiness-cli/internal/offer"
)

var (
	scoreSave bool
	scoreJSON bool
)

var scoreCmd = &cobra.Command{
	Use:   "score <offer-file>",
	Short: "Score one offer from a YAML or JSON file",
	Long:  "Reads an offer description, derives the dependent fields, runs the full readiness evaluation and prints a report. Exits non-zero when the input is incomplete.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := loadOfferFile(args[0])
		if err != nil {
			return err
		}

		eval, err := diagnostic.Evaluate(input.Normalized())
		if err != nil {
			if offer.IsValidation(err) {
				return eris.Wrap(err, "offer is not complete enough to score")
			}
			return err
		}

		if scoreJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(eval); err != nil {
				return eris.Wrap(err, "score: encode result")
			}
		} else {
			printReport(cmd.OutOrStdout(), eval)
		}

		if scoreSave {
			s, err := initStore(cmd.Context())
			if err != nil {
				return err
			}
			defer s.Close() //nolint:errcheck

			rec, err := s.SaveEvaluation(cmd.Context(), eval)
			if err != nil {
				return err
			}
			zap.L().Info("evaluation saved",
				zap.String("id", rec.ID),
				zap.Int("alignment_score", rec.Score.AlignmentScore),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "\nSaved as %s\n", rec.ID)
		}

		return nil
	},
}

// loadOfferFile reads a DiagnosticInput from a YAML (or JSON, since YAML is
// a superset) file.
func loadOfferFile(path string) (offer.DiagnosticInput, error) {
	var input offer.DiagnosticInput

	data, err := os.ReadFile(path)
	if err != nil {
		return input, eris.Wrapf(err, "score: read offer file %s", path)
	}
	if err := yaml.Unmarshal(data, &input); err != nil {
		return input, eris.Wrapf(err, "score: parse offer file %s", path)
	}
	return input, nil
}

func init() {
	scoreCmd.Flags().BoolVar(&scoreSave, "save", false, "persist the evaluation to the store")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "print the full evaluation as JSON")
	rootCmd.AddCommand(scoreCmd)
}
