package service

import (
	"testing"

	"luxdrive/internal/db"
	"luxdrive/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogStartsFromBaseFleet(t *testing.T) {
	env := newTestEnv(t)

	catalog := env.Catalog.Catalog()
	require.Len(t, catalog, 4)

	slugs := map[string]bool{}
	for _, v := range catalog {
		slugs[v.Slug] = true
		require.NotEmpty(t, v.Pricing, "vehicle %s must offer at least one tier", v.Slug)
		for tier := range v.Pricing {
			assert.True(t, utils.IsValidTier(tier), "vehicle %s offers unknown tier %q", v.Slug, tier)
		}
	}
	assert.True(t, slugs["audi-r8-v8"])
	assert.True(t, slugs["mclaren-570s"])
}

func TestCatalogAppliesOverrides(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.Catalog.SaveOverride(db.VehicleOverride{
		Slug:     "audi-r8-v8",
		Deposit:  8000,
		Location: "Lausanne",
	}))

	vehicle := env.Catalog.Vehicle("audi-r8-v8")
	require.NotNil(t, vehicle)
	assert.Equal(t, 8000, vehicle.Deposit)
	assert.Equal(t, "Lausanne", vehicle.Location)
	// Untouched fields keep their base values.
	assert.Equal(t, 470, vehicle.Pricing["24h"].Price)
}

func TestSaveOverrideValidates(t *testing.T) {
	env := newTestEnv(t)

	err := env.Catalog.SaveOverride(db.VehicleOverride{Slug: "no-such-car"})
	assert.ErrorIs(t, err, ErrVehicleNotFound)

	err = env.Catalog.SaveOverride(db.VehicleOverride{
		Slug:    "audi-r8-v8",
		Pricing: map[string]db.TierPrice{"fortnight": {Price: 100}},
	})
	assert.Error(t, err)
}

func TestReplaceAdminVehicles(t *testing.T) {
	env := newTestEnv(t)

	added := db.Vehicle{
		Brand: "Ferrari",
		Model: "488 GTB",
		Pricing: map[string]db.TierPrice{
			"24h": {Price: 990, IncludedKm: 200},
		},
	}
	require.NoError(t, env.Catalog.ReplaceAdminVehicles([]db.Vehicle{added}))

	vehicle := env.Catalog.Vehicle("ferrari-488-gtb")
	require.NotNil(t, vehicle)
	assert.Equal(t, "Ferrari", vehicle.Brand)
	assert.Len(t, env.Catalog.Catalog(), 5)

	// Replacing with an empty list removes operator additions; the base
	// fleet is untouched.
	require.NoError(t, env.Catalog.ReplaceAdminVehicles(nil))
	assert.Nil(t, env.Catalog.Vehicle("ferrari-488-gtb"))
	assert.Len(t, env.Catalog.Catalog(), 4)
}

func TestReplaceAdminVehiclesRejectsBaseSlugCollision(t *testing.T) {
	env := newTestEnv(t)

	clash := db.Vehicle{
		Brand:   "Audi",
		Model:   "R8 V8",
		Pricing: map[string]db.TierPrice{"24h": {Price: 1}},
	}
	assert.Error(t, env.Catalog.ReplaceAdminVehicles([]db.Vehicle{clash}))
}

func TestReplaceAdminVehiclesRejectsInvalidPricing(t *testing.T) {
	env := newTestEnv(t)

	noTiers := db.Vehicle{Brand: "Ferrari", Model: "488 GTB"}
	assert.Error(t, env.Catalog.ReplaceAdminVehicles([]db.Vehicle{noTiers}))

	badTier := db.Vehicle{
		Brand:   "Ferrari",
		Model:   "488 GTB",
		Pricing: map[string]db.TierPrice{"fortnight": {Price: 100}},
	}
	assert.Error(t, env.Catalog.ReplaceAdminVehicles([]db.Vehicle{badTier}))
}

func TestFindByName(t *testing.T) {
	env := newTestEnv(t)

	found := env.Catalog.FindByName("je cherche une mclaren pour le week-end")
	require.NotNil(t, found)
	assert.Equal(t, "mclaren-570s", found.Slug)

	assert.Nil(t, env.Catalog.FindByName("je cherche une citadine"))
}
