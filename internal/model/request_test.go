package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	valid := RawBriefRequest{
		HotelID:      "amanzoe_gr",
		TravelerType: "honeymoon",
		Season:       "late_september",
		Role:         "sales",
	}

	t.Run("defaults applied when flags absent", func(t *testing.T) {
		t.Parallel()

		req, err := ValidateRequest(valid)
		require.NoError(t, err)

		assert.Equal(t, "amanzoe_gr", req.HotelID)
		assert.Equal(t, TravelerHoneymoon, req.TravelerType)
		assert.Equal(t, SeasonLateSeptember, req.Season)
		assert.Equal(t, RoleSales, req.Role)
		assert.True(t, req.IncludeRisks)
		assert.True(t, req.IncludePromotions)
		assert.True(t, req.IncludeUJVPov)
		assert.False(t, req.UseLLM)
	})

	t.Run("explicit flags respected", func(t *testing.T) {
		t.Parallel()

		raw := valid
		raw.IncludeRisks = false
		raw.IncludePromotions = false
		raw.UseLLM = true

		req, err := ValidateRequest(raw)
		require.NoError(t, err)

		assert.False(t, req.IncludeRisks)
		assert.False(t, req.IncludePromotions)
		assert.True(t, req.IncludeUJVPov)
		assert.True(t, req.UseLLM)
	})

	t.Run("non-boolean flag values fall back to defaults", func(t *testing.T) {
		t.Parallel()

		var raw RawBriefRequest
		body := `{"hotelId":"amanzoe_gr","travelerType":"family","season":"summer","role":"reservations","includeRisks":"yes","useLLM":1}`
		require.NoError(t, json.Unmarshal([]byte(body), &raw))

		req, err := ValidateRequest(raw)
		require.NoError(t, err)

		assert.True(t, req.IncludeRisks)
		assert.False(t, req.UseLLM)
	})

	t.Run("missing hotel id rejected first", func(t *testing.T) {
		t.Parallel()

		raw := valid
		raw.HotelID = ""
		raw.TravelerType = "bogus"

		_, err := ValidateRequest(raw)
		require.Error(t, err)
		assert.True(t, IsValidation(err))
		assert.Contains(t, err.Error(), "hotelId")
	})

	t.Run("invalid enums rejected", func(t *testing.T) {
		t.Parallel()

		cases := []struct {
			name   string
			mutate func(*RawBriefRequest)
			want   string
		}{
			{"traveler type", func(r *RawBriefRequest) { r.TravelerType = "backpacker" }, "travelerType"},
			{"season", func(r *RawBriefRequest) { r.Season = "monsoon" }, "season"},
			{"role", func(r *RawBriefRequest) { r.Role = "intern" }, "role"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				t.Parallel()

				raw := valid
				tc.mutate(&raw)

				_, err := ValidateRequest(raw)
				require.Error(t, err)
				assert.True(t, IsValidation(err))
				assert.Contains(t, err.Error(), tc.want)
			})
		}
	})
}
