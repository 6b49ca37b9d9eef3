package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var runsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded brief runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		e, err := initEnv(ctx, cfg)
		if err != nil {
			return err
		}
		defer e.Close()

		runs, err := e.Store.ListRuns(ctx, runsLimit, 0)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tHOTEL\tTRAVELER\tSEASON\tROLE\tSCORE\tLABEL\tESCALATED\tCREATED")
		for _, run := range runs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%.2f\t%s\t%t\t%s\n",
				run.ID, run.HotelID, run.TravelerType, run.Season, run.Role,
				run.EvidenceScore, run.EvidenceLabel, run.Escalated,
				run.CreatedAt.Format("2006-01-02 15:04"),
			)
		}
		return w.Flush()
	},
}

func init() {
	runsCmd.Flags().IntVar(&runsLimit, "limit", 50, "max runs to list")
	rootCmd.AddCommand(runsCmd)
}
