package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"
)

var exportFlags struct {
	out   string
	limit int
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded brief runs to an xlsx workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		e, err := initEnv(ctx, cfg)
		if err != nil {
			return err
		}
		defer e.Close()

		runs, err := e.Store.ListRuns(ctx, exportFlags.limit, 0)
		if err != nil {
			return err
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("brief_runs")
		if err != nil {
			return eris.Wrap(err, "export: add sheet")
		}

		header := sheet.AddRow()
		for _, col := range []string{"id", "hotel_id", "traveler_type", "season", "role", "evidence_score", "evidence_label", "escalated", "escalation_reason", "created_at"} {
			header.AddCell().Value = col
		}

		for _, run := range runs {
			row := sheet.AddRow()
			row.AddCell().Value = run.ID
			row.AddCell().Value = run.HotelID
			row.AddCell().Value = run.TravelerType
			row.AddCell().Value = run.Season
			row.AddCell().Value = run.Role
			row.AddCell().SetFloat(run.EvidenceScore)
			row.AddCell().Value = run.EvidenceLabel
			row.AddCell().SetBool(run.Escalated)
			row.AddCell().Value = run.EscalationReason
			row.AddCell().Value = run.CreatedAt.Format("2006-01-02 15:04:05")
		}

		if err := file.Save(exportFlags.out); err != nil {
			return eris.Wrapf(err, "export: save %s", exportFlags.out)
		}

		zap.L().Info("export complete",
			zap.String("path", exportFlags.out),
			zap.Int("runs", len(runs)),
		)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFlags.out, "out", "brief_runs.xlsx", "output workbook path")
	exportCmd.Flags().IntVar(&exportFlags.limit, "limit", 500, "max runs to export")
	rootCmd.AddCommand(exportCmd)
}
