package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ujv-group/hotel-brief-cli/internal/model"
	"github.com/ujv-group/hotel-brief-cli/internal/store"
)

var briefFlags struct {
	hotelID      string
	travelerType string
	season       string
	role         string
	noRisks      bool
	noPromotions bool
	noPov        bool
	useLLM       bool
	noSave       bool
}

var briefCmd = &cobra.Command{
	Use:   "brief",
	Short: "Generate one hotel brief and print it as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		e, err := initEnv(ctx, cfg)
		if err != nil {
			return err
		}
		defer e.Close()

		raw := model.RawBriefRequest{
			HotelID:           briefFlags.hotelID,
			TravelerType:      briefFlags.travelerType,
			Season:            briefFlags.season,
			Role:              briefFlags.role,
			IncludeRisks:      !briefFlags.noRisks,
			IncludePromotions: !briefFlags.noPromotions,
			IncludeUJVPov:     !briefFlags.noPov,
			UseLLM:            briefFlags.useLLM,
		}

		resp, err := e.Engine.Generate(ctx, raw)
		if err != nil {
			return err
		}

		if !briefFlags.noSave {
			req, _ := model.ValidateRequest(raw)
			run, runErr := store.NewRun(req, resp)
			if runErr == nil {
				runErr = e.Store.SaveRun(ctx, run)
			}
			if runErr != nil {
				zap.L().Warn("brief: failed to record run", zap.Error(runErr))
			}
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(resp), "encode response")
	},
}

func init() {
	briefCmd.Flags().StringVar(&briefFlags.hotelID, "hotel", "", "hotel id (required)")
	briefCmd.Flags().StringVar(&briefFlags.travelerType, "traveler-type", "", "traveler type: honeymoon|family|wellness|celebration")
	briefCmd.Flags().StringVar(&briefFlags.season, "season", "", "season: spring|summer|late_september|winter")
	briefCmd.Flags().StringVar(&briefFlags.role, "role", "reservations", "role: reservations|sales|finance|marketing")
	briefCmd.Flags().BoolVar(&briefFlags.noRisks, "no-risks", false, "omit the risks section")
	briefCmd.Flags().BoolVar(&briefFlags.noPromotions, "no-promotions", false, "omit the promotions section")
	briefCmd.Flags().BoolVar(&briefFlags.noPov, "no-pov", false, "omit the UJV point-of-view section")
	briefCmd.Flags().BoolVar(&briefFlags.useLLM, "use-llm", false, "narrative-assisted mode (needs anthropic key)")
	briefCmd.Flags().BoolVar(&briefFlags.noSave, "no-save", false, "skip recording the run in the audit store")
	_ = briefCmd.MarkFlagRequired("hotel")
	rootCmd.AddCommand(briefCmd)
}
