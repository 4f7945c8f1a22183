package repository

import (
	"luxdrive/internal/db"
	"luxdrive/internal/store"
)

// VehicleRepository persists the operator-curated vehicle list and the
// per-slug overrides applied on top of the base fleet.
type VehicleRepository struct {
	Store *store.Store
}

func NewVehicleRepository(s *store.Store) *VehicleRepository {
	return &VehicleRepository{Store: s}
}

// ListAdminVehicles returns the operator-added vehicles.
func (r *VehicleRepository) ListAdminVehicles() []db.Vehicle {
	var vehicles []db.Vehicle
	r.Store.Read(store.KeyAdminVehicles, &vehicles)
	return vehicles
}

// ReplaceAdminVehicles swaps the operator-added vehicle array wholesale. This
// backs the POST side of the catalogue-sync endpoint; there are no partial
// updates.
func (r *VehicleRepository) ReplaceAdminVehicles(vehicles []db.Vehicle) error {
	if vehicles == nil {
		vehicles = []db.Vehicle{}
	}
	return r.Store.Write(store.KeyAdminVehicles, vehicles)
}

// ListOverrides returns the operator edits to base-fleet entries.
func (r *VehicleRepository) ListOverrides() []db.VehicleOverride {
	var overrides []db.VehicleOverride
	r.Store.Read(store.KeyOverrides, &overrides)
	return overrides
}

// SaveOverride upserts the override for one base-fleet slug.
func (r *VehicleRepository) SaveOverride(o db.VehicleOverride) error {
	var overrides []db.VehicleOverride
	return r.Store.Update(store.KeyOverrides, &overrides, func() (interface{}, error) {
		for i := range overrides {
			if overrides[i].Slug == o.Slug {
				overrides[i] = o
				return overrides, nil
			}
		}
		return append(overrides, o), nil
	})
}
