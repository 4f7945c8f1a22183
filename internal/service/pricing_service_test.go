package service

import (
	"testing"

	"luxdrive/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteAudiR8Scenario(t *testing.T) {
	env := newTestEnv(t)

	breakdown, err := env.Pricing.Quote(entities.QuoteRequest{
		VehicleSlug: "audi-r8-v8",
		Tier:        "24h",
		ExtraKm:     50,
		TransportKm: 20,
	})
	require.NoError(t, err)

	assert.Equal(t, "Audi R8 V8", breakdown.VehicleName)
	assert.Equal(t, 470, breakdown.LocationPrice)
	assert.Equal(t, 250, breakdown.ExtraKmPrice)
	assert.Equal(t, 40, breakdown.TransportPrice)
	assert.Equal(t, 760, breakdown.Total)
}

func TestQuoteAdditivity(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		slug        string
		tier        string
		extraKm     float64
		transportKm float64
	}{
		{"audi-r8-v8", "24h", 0, 0},
		{"audi-r8-v8", "full-week", 120, 35},
		{"mclaren-570s", "short-weekend", 80, 0},
		{"bmw-m4-competition", "month", 500, 60},
		{"porsche-911-carrera", "long-weekend", 33, 12.5},
	}
	for _, tc := range cases {
		breakdown, err := env.Pricing.Quote(entities.QuoteRequest{
			VehicleSlug: tc.slug,
			Tier:        tc.tier,
			ExtraKm:     tc.extraKm,
			TransportKm: tc.transportKm,
		})
		require.NoError(t, err, "quote for %s/%s", tc.slug, tc.tier)
		assert.Equal(t, breakdown.LocationPrice+breakdown.ExtraKmPrice+breakdown.TransportPrice, breakdown.Total,
			"total must equal the sum of line items for %s/%s", tc.slug, tc.tier)
	}
}

func TestQuoteZeroKmLineItems(t *testing.T) {
	env := newTestEnv(t)

	breakdown, err := env.Pricing.Quote(entities.QuoteRequest{
		VehicleSlug: "audi-r8-v8",
		Tier:        "24h",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, breakdown.ExtraKmPrice)
	assert.Equal(t, 0, breakdown.TransportPrice)
	assert.Equal(t, breakdown.LocationPrice, breakdown.Total)
}

func TestQuoteDefaultExtraKmRate(t *testing.T) {
	env := newTestEnv(t)

	// The Porsche leaves its extra-km rate unset; the 0.5 CHF/km default
	// applies, with the line item rounded to whole CHF.
	breakdown, err := env.Pricing.Quote(entities.QuoteRequest{
		VehicleSlug: "porsche-911-carrera",
		Tier:        "24h",
		ExtraKm:     101,
	})
	require.NoError(t, err)
	assert.Equal(t, 51, breakdown.ExtraKmPrice) // round(101 * 0.5)
	assert.Equal(t, 450+51, breakdown.Total)
}

func TestQuoteUnknownVehicle(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.Pricing.Quote(entities.QuoteRequest{VehicleSlug: "lambo-huracan", Tier: "24h"})
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestQuoteTierNotOffered(t *testing.T) {
	env := newTestEnv(t)

	// The McLaren deliberately has no monthly tier.
	_, err := env.Pricing.Quote(entities.QuoteRequest{VehicleSlug: "mclaren-570s", Tier: "month"})
	assert.ErrorIs(t, err, ErrTierNotOffered)
}

func TestQuoteRejectsNegativeKilometres(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.Pricing.Quote(entities.QuoteRequest{VehicleSlug: "audi-r8-v8", Tier: "24h", ExtraKm: -1})
	assert.Error(t, err)
}
