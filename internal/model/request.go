package model

import "fmt"

// TravelerType is the traveler profile a brief is tailored to.
type TravelerType string

const (
	TravelerHoneymoon   TravelerType = "honeymoon"
	TravelerFamily      TravelerType = "family"
	TravelerWellness    TravelerType = "wellness"
	TravelerCelebration TravelerType = "celebration"
)

// Season is the travel window a brief is tailored to.
type Season string

const (
	SeasonSpring        Season = "spring"
	SeasonSummer        Season = "summer"
	SeasonLateSeptember Season = "late_september"
	SeasonWinter        Season = "winter"
)

// Role is the advisor role supplied by the caller. Finance is the only
// role that sees the literal booking-value figure.
type Role string

const (
	RoleReservations Role = "reservations"
	RoleSales        Role = "sales"
	RoleFinance      Role = "finance"
	RoleMarketing    Role = "marketing"
)

var validTravelerTypes = map[TravelerType]bool{
	TravelerHoneymoon:   true,
	TravelerFamily:      true,
	TravelerWellness:    true,
	TravelerCelebration: true,
}

var validSeasons = map[Season]bool{
	SeasonSpring:        true,
	SeasonSummer:        true,
	SeasonLateSeptember: true,
	SeasonWinter:        true,
}

var validRoles = map[Role]bool{
	RoleReservations: true,
	RoleSales:        true,
	RoleFinance:      true,
	RoleMarketing:    true,
}

// RawBriefRequest is the loose wire shape of a brief request. The three
// include flags and useLLM are decoded as `any` so that absent or
// non-boolean values fall back to the documented defaults instead of
// Go's zero value.
type RawBriefRequest struct {
	HotelID           string `json:"hotelId"`
	TravelerType      string `json:"travelerType"`
	Season            string `json:"season"`
	Role              string `json:"role"`
	IncludeRisks      any    `json:"includeRisks"`
	IncludePromotions any    `json:"includePromotions"`
	IncludeUJVPov     any    `json:"includeUjvPov"`
	UseLLM            any    `json:"useLLM"`
}

// BriefRequest is a validated, fully-populated brief request.
type BriefRequest struct {
	HotelID           string       `json:"hotelId"`
	TravelerType      TravelerType `json:"travelerType"`
	Season            Season       `json:"season"`
	Role              Role         `json:"role"`
	IncludeRisks      bool         `json:"includeRisks"`
	IncludePromotions bool         `json:"includePromotions"`
	IncludeUJVPov     bool         `json:"includeUjvPov"`
	UseLLM            bool         `json:"useLLM"`
}

// ValidateRequest turns a raw request into a typed one or returns a
// ValidationError. Runs before any data access.
func ValidateRequest(raw RawBriefRequest) (BriefRequest, error) {
	if raw.HotelID == "" {
		return BriefRequest{}, NewValidationError("hotelId is required")
	}

	tt := TravelerType(raw.TravelerType)
	if !validTravelerTypes[tt] {
		return BriefRequest{}, NewValidationError(fmt.Sprintf("invalid travelerType %q", raw.TravelerType))
	}

	season := Season(raw.Season)
	if !validSeasons[season] {
		return BriefRequest{}, NewValidationError(fmt.Sprintf("invalid season %q", raw.Season))
	}

	role := Role(raw.Role)
	if !validRoles[role] {
		return BriefRequest{}, NewValidationError(fmt.Sprintf("invalid role %q", raw.Role))
	}

	return BriefRequest{
		HotelID:           raw.HotelID,
		TravelerType:      tt,
		Season:            season,
		Role:              role,
		IncludeRisks:      boolOrDefault(raw.IncludeRisks, true),
		IncludePromotions: boolOrDefault(raw.IncludePromotions, true),
		IncludeUJVPov:     boolOrDefault(raw.IncludeUJVPov, true),
		UseLLM:            boolOrDefault(raw.UseLLM, false),
	}, nil
}

// boolOrDefault returns v if it decoded as a JSON boolean, else def.
func boolOrDefault(v any, def bool) bool {
	b, ok := v.(bool)
	if !ok {
		return def
	}
	return b
}
