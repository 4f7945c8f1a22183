package service

import (
	"fmt"
	"math"

	"luxdrive/internal/entities"
	"luxdrive/internal/utils"
)

const (
	// DefaultExtraKmPrice applies when a vehicle's table leaves the per-km
	// overage rate unset, in CHF per kilometre.
	DefaultExtraKmPrice = 0.5

	// TransportPricePerKm is the fleet-wide delivery rate in CHF per
	// kilometre. The engine never doubles the distance itself; callers pass
	// the depot-customer-depot total when they want the round trip.
	TransportPricePerKm = 2
)

// PricingService computes rental quotes from the current catalogue snapshot.
// Quotes are derived values and are never persisted.
type PricingService struct {
	Catalog *CatalogService
}

func NewPricingService(catalog *CatalogService) *PricingService {
	return &PricingService{Catalog: catalog}
}

// Quote builds the price breakdown for a vehicle and duration tier.
// ErrVehicleNotFound is an expected outcome: the caller falls back to
// "consult the vehicle page" messaging.
//
// Each line item is rounded to whole CHF on its own, so the total always
// equals the sum of the displayed rows.
func (s *PricingService) Quote(req entities.QuoteRequest) (*entities.PriceBreakdown, error) {
	if req.ExtraKm < 0 || req.TransportKm < 0 {
		return nil, fmt.Errorf("kilometre inputs must not be negative")
	}

	vehicle := s.Catalog.Vehicle(req.VehicleSlug)
	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}

	tier := utils.NormalizeTier(req.Tier)
	tierPrice, ok := vehicle.Pricing[tier]
	if !ok {
		return nil, ErrTierNotOffered
	}

	extraKmUnit := vehicle.ExtraKmPrice
	if extraKmUnit == 0 {
		extraKmUnit = DefaultExtraKmPrice
	}

	locationPrice := tierPrice.Price
	extraKmPrice := int(math.Round(req.ExtraKm * extraKmUnit))
	transportPrice := int(math.Round(req.TransportKm * TransportPricePerKm))

	return &entities.PriceBreakdown{
		VehicleName:    vehicle.Brand + " " + vehicle.Model,
		Tier:           tier,
		LocationPrice:  locationPrice,
		IncludedKm:     tierPrice.IncludedKm,
		ExtraKm:        req.ExtraKm,
		ExtraKmPrice:   extraKmPrice,
		TransportKm:    req.TransportKm,
		TransportPrice: transportPrice,
		Total:          locationPrice + extraKmPrice + transportPrice,
	}, nil
}
