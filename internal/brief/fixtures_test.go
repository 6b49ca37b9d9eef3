package brief

import (
	"time"

	"github.com/ujv-group/hotel-brief-cli/internal/model"
)

// fixtureNow is the reference clock for all brief tests.
var fixtureNow = time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

func day(year, month, dayOfMonth int) time.Time {
	return time.Date(year, time.Month(month), dayOfMonth, 0, 0, 0, 0, time.UTC)
}

func fixtureSources() map[string]model.Source {
	return map[string]model.Source{
		"sv_2025_03": {
			ID: "sv_2025_03", Type: model.SourceTypeSiteVisit,
			Title: "Amanzoe site visit report", Author: "M. Castellanos",
			Date: day(2025, 3, 12), Reliability: 0.95,
		},
		"fb_2025_05": {
			ID: "fb_2025_05", Type: model.SourceTypeFeedback,
			Title: "Post-trip feedback digest", Author: "Client care desk",
			Date: day(2025, 5, 30), Reliability: 0.85,
		},
		"bi_2025_q2": {
			ID: "bi_2025_q2", Type: model.SourceTypeBookingIntel,
			Title: "Greece booking intelligence, Q2 2025", Author: "Revenue analytics",
			Date: day(2025, 7, 8), Reliability: 0.9,
		},
		"ct_2024_11": {
			ID: "ct_2024_11", Type: model.SourceTypeContract,
			Title: "Amanzoe partner contract", Author: "Partnerships",
			Date: day(2024, 11, 4), Reliability: 0.98,
		},
		"pr_2025_06": {
			ID: "pr_2025_06", Type: model.SourceTypePromotion,
			Title: "Amanzoe 2025 summer promotion sheet", Author: "Partnerships",
			Date: day(2025, 6, 1), Reliability: 0.92,
		},
		"pov_2025": {
			ID: "pov_2025", Type: model.SourceTypeUJVPov,
			Title: "UJV point of view: Amanzoe", Author: "Destination team",
			Date: day(2025, 4, 22), Reliability: 0.88,
		},
	}
}

func fixtureLookup() SourceLookup {
	sources := fixtureSources()
	return func(id string) (model.Source, bool) {
		s, ok := sources[id]
		return s, ok
	}
}

func fixtureHotel() model.Hotel {
	return model.Hotel{
		ID:     "amanzoe_gr",
		Name:   "Amanzoe",
		Region: "Peloponnese, Greece",
		Positioning: model.PositioningBlock{
			Tags: []string{"secluded", "wellness", "romantic"},
			Strengths: []string{
				"Hilltop pavilions with private pools",
				"Destination spa with a four-season program",
			},
			SourceIDs: []string{"sv_2025_03"},
		},
		TravelerFit: model.TravelerFitBlock{
			Common: "Best suited to guests who value privacy over scene.",
			ByType: map[model.TravelerType]model.FitNote{
				model.TravelerHoneymoon: {
					Text:      "Book a pavilion on the upper ridge for the sunset terrace.",
					SourceIDs: []string{"sv_2025_03", "fb_2025_05"},
				},
			},
			SourceIDs: []string{"sv_2025_03"},
		},
		Seasonality: map[model.Season]model.SeasonNote{
			model.SeasonLateSeptember: {
				Text:      "Late September keeps the warmth while the property empties out.",
				SourceIDs: []string{"sv_2025_03"},
			},
		},
		Risks: []model.RiskEntry{
			{
				Text: "Athens transfer runs 2.5 hours by road.", Severity: "medium",
				Seasons:   []model.Season{model.SeasonSpring, model.SeasonSummer, model.SeasonLateSeptember, model.SeasonWinter},
				SourceIDs: []string{"sv_2025_03"},
			},
			{
				Text: "Beach club winds down after mid-September.", Severity: "low",
				Seasons:   []model.Season{model.SeasonLateSeptember},
				SourceIDs: []string{"fb_2025_05"},
			},
		},
		Promotions: []model.Promotion{
			{
				ID: "promo_4th_night", Name: "4th Night Free",
				Description: "Complimentary fourth night on stays of four nights or longer.",
				ValidFrom:   "2025-05-01", ValidTo: "2025-10-31",
				Eligibility: []string{"pavilion categories"},
				SourceIDs:   []string{"pr_2025_06"},
			},
			{
				ID: "promo_early_booking", Name: "Early Booking 15%",
				Description: "15% off for bookings made 90+ days out.",
				ValidFrom:   "2025-01-15", ValidTo: "2025-12-20",
				SourceIDs:   []string{"pr_2025_06"},
			},
		},
		Contract: model.ContractBlock{
			StackingRules: []model.StackingRule{
				{
					ID:                "stk_4th_eb",
					Text:              "4th Night Free and Early Booking 15% may not be combined.",
					AllowsCombination: false,
					AppliesTo:         []string{"promo_4th_night", "promo_early_booking"},
					SourceIDs:         []string{"ct_2024_11"},
				},
			},
		},
		BookingIntel: model.BookingIntelligence{
			AverageBookingValueUSD: 23500,
			ValueSummary:           "Bookings sit well above the regional average.",
			Patterns:               []string{"Median stay is 5 nights."},
			SourceIDs:              []string{"bi_2025_q2"},
		},
		Feedback: []model.FeedbackTheme{
			{Text: "Guests praise the arrival experience.", SourceIDs: []string{"fb_2025_05"}},
		},
		UJVPov: []model.TalkTrack{
			{Text: "Lead with the late-September value window.", SourceIDs: []string{"pov_2025"}},
		},
		Freshness: map[model.SourceType]int{
			model.SourceTypeSiteVisit:    365,
			model.SourceTypeFeedback:     270,
			model.SourceTypeBookingIntel: 180,
			model.SourceTypeContract:     540,
			model.SourceTypePromotion:    120,
			model.SourceTypeUJVPov:       365,
			model.SourceTypeChunk:        270,
		},
	}
}

func fixtureChunks() []model.Chunk {
	return []model.Chunk{
		{
			ID: "ch_stacking_tip", HotelID: "amanzoe_gr", Type: model.SourceTypeChunk,
			Title: "Promo stacking tip", Date: day(2025, 6, 18), Reliability: 0.4,
			Text: "Heard that the 4th night free offer can stack with the early booking rate.",
		},
		{
			ID: "ch_nightlife_buzz", HotelID: "amanzoe_gr", Type: model.SourceTypeChunk,
			Title: "Trip note: evening scene", Date: day(2025, 5, 10), Reliability: 0.35,
			Text: "A colleague described Amanzoe as nightlife-focused, with a late-night scene at the beach club.",
		},
		{
			ID: "ch_honeymoon_color", HotelID: "amanzoe_gr", Type: model.SourceTypeChunk,
			Title: "Advisor note: honeymoon stay", Date: day(2025, 5, 28), Reliability: 0.8,
			Text: "Honeymoon clients raved about the private pool pavilion and the sunset terrace dinner.",
		},
	}
}

func fixtureRequest() model.BriefRequest {
	return model.BriefRequest{
		HotelID:           "amanzoe_gr",
		TravelerType:      model.TravelerHoneymoon,
		Season:            model.SeasonLateSeptember,
		Role:              model.RoleSales,
		IncludeRisks:      true,
		IncludePromotions: true,
		IncludeUJVPov:     true,
	}
}
