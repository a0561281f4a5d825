package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"

	"github.com/sells-group/readiness-cli/internal/offer"
	"github.com/sells-group/readiness-cli/internal/store"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored evaluations to an XLSX workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := initStore(cmd.Context())
		if err != nil {
			return err
		}
		defer s.Close() //nolint:errcheck

		records, err := s.ListEvaluations(cmd.Context(), store.Filter{})
		if err != nil {
			return err
		}
		if len(records) == 0 {
			return eris.New("export: no evaluations to export")
		}

		if err := writeWorkbook(exportOut, cfg.Export.SheetName, records); err != nil {
			return err
		}

		zap.L().Info("export complete", zap.Int("evaluations", len(records)), zap.String("path", exportOut))
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d evaluations to %s\n", len(records), exportOut)
		return nil
	},
}

// writeWorkbook renders evaluation records into a single-sheet workbook.
func writeWorkbook(path, sheetName string, records []store.Record) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet(sheetName)
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	header := sheet.AddRow()
	for _, h := range []string{
		"ID", "Created", "Offer Type", "Promise Outcome", "Industry", "Vertical",
		"Alignment Score", "Label", "Outbound Ready", "Bottleneck", "Hard Gates", "Soft Gates",
	} {
		header.AddCell().SetString(h)
	}

	for _, rec := range records {
		row := sheet.AddRow()
		row.AddCell().SetString(rec.ID)
		row.AddCell().SetString(rec.CreatedAt.Format("2006-01-02 15:04"))
		row.AddCell().SetString(offer.Label(rec.Input.OfferType))
		row.AddCell().SetString(offer.Label(rec.Input.PromiseOutcome))
		row.AddCell().SetString(offer.Label(rec.Input.Industry))
		row.AddCell().SetString(offer.Label(rec.Input.VerticalSegment))
		row.AddCell().SetInt(rec.Score.AlignmentScore)
		row.AddCell().SetString(string(rec.Score.ReadinessLabel))
		row.AddCell().SetBool(rec.Score.OutboundReady)
		row.AddCell().SetString(string(rec.Score.PrimaryBottleneck.Dimension))
		row.AddCell().SetString(joinGates(rec.Score.HardGates))
		row.AddCell().SetString(joinGates(rec.Score.SoftGates))
	}

	return eris.Wrapf(f.Save(path), "export: save %s", path)
}

func joinGates(gates []string) string {
	out := ""
	for i, g := range gates {
		if i > 0 {
			out += ", "
		}
		out += g
	}
	return out
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "evaluations.xlsx", "output file path")
	rootCmd.AddCommand(exportCmd)
}
