package service

import (
	"fmt"
	"strings"

	"luxdrive/internal/db"
	"luxdrive/internal/repository"
	"luxdrive/internal/utils"
)

// CatalogService builds the public vehicle catalogue: the base fleet with
// operator overrides applied, plus operator-added vehicles, plus a projection
// of every accepted rental request. Projections are computed at read time, so
// operator edits to an accepted request show up on the very next read.
type CatalogService struct {
	VehicleRepo *repository.VehicleRepository
	RequestRepo *repository.RequestRepository
}

func NewCatalogService(vehicleRepo *repository.VehicleRepository, requestRepo *repository.RequestRepository) *CatalogService {
	return &CatalogService{VehicleRepo: vehicleRepo, RequestRepo: requestRepo}
}

// Catalog returns the merged vehicle list.
func (s *CatalogService) Catalog() []db.Vehicle {
	vehicles := repository.BaseFleet()

	overrides := s.VehicleRepo.ListOverrides()
	for i := range vehicles {
		for _, o := range overrides {
			if o.Slug == vehicles[i].Slug {
				applyOverride(&vehicles[i], o)
			}
		}
	}

	vehicles = append(vehicles, s.VehicleRepo.ListAdminVehicles()...)

	for _, req := range s.RequestRepo.ListRequests() {
		if req.Status == db.RequestStatusAccepted {
			vehicles = append(vehicles, ProjectRequest(req))
		}
	}
	return vehicles
}

// Vehicle resolves a slug against the merged catalogue, or nil.
func (s *CatalogService) Vehicle(slug string) *db.Vehicle {
	for _, v := range s.Catalog() {
		if v.Slug == slug {
			out := v
			return &out
		}
	}
	return nil
}

// FindByName matches a free-text fragment against brand and model names,
// case-insensitively. Used by the assistant to spot a vehicle mention.
func (s *CatalogService) FindByName(text string) *db.Vehicle {
	lowered := strings.ToLower(text)
	for _, v := range s.Catalog() {
		if strings.Contains(lowered, strings.ToLower(v.Brand)) ||
			strings.Contains(lowered, strings.ToLower(v.Model)) {
			out := v
			return &out
		}
	}
	return nil
}

// ReplaceAdminVehicles swaps the operator-curated array wholesale after
// validating slugs and the tier-subset invariant.
func (s *CatalogService) ReplaceAdminVehicles(vehicles []db.Vehicle) error {
	seen := map[string]bool{}
	for _, v := range repository.BaseFleet() {
		seen[v.Slug] = true
	}
	for i := range vehicles {
		if vehicles[i].Slug == "" {
			vehicles[i].Slug = utils.Slugify(vehicles[i].Brand, vehicles[i].Model)
		}
		if seen[vehicles[i].Slug] {
			return fmt.Errorf("duplicate vehicle slug %q", vehicles[i].Slug)
		}
		seen[vehicles[i].Slug] = true
		if err := ValidatePricing(vehicles[i].Pricing); err != nil {
			return fmt.Errorf("vehicle %q: %w", vehicles[i].Slug, err)
		}
	}
	return s.VehicleRepo.ReplaceAdminVehicles(vehicles)
}

// SaveOverride stores operator edits for a base-fleet entry.
func (s *CatalogService) SaveOverride(o db.VehicleOverride) error {
	found := false
	for _, v := range repository.BaseFleet() {
		if v.Slug == o.Slug {
			found = true
			break
		}
	}
	if !found {
		return ErrVehicleNotFound
	}
	if len(o.Pricing) > 0 {
		if err := ValidatePricing(o.Pricing); err != nil {
			return err
		}
	}
	return s.VehicleRepo.SaveOverride(o)
}

// ValidatePricing enforces the tier-subset invariant: at least one tier, and
// every tier key drawn from the global enumeration.
func ValidatePricing(pricing map[string]db.TierPrice) error {
	if len(pricing) == 0 {
		return fmt.Errorf("pricing table must offer at least one tier")
	}
	for tier := range pricing {
		if !utils.IsValidTier(tier) {
			return fmt.Errorf("unknown duration tier %q", tier)
		}
	}
	return nil
}

// ProjectRequest maps an accepted rental request to a vehicle-shaped catalogue
// entry. The request stays the single source of truth; nothing is copied into
// the vehicle collections.
func ProjectRequest(req db.RentalRequest) db.Vehicle {
	return db.Vehicle{
		Slug:         utils.Slugify(req.Brand, req.Model),
		Brand:        req.Brand,
		Model:        req.Model,
		Year:         req.Specs.Year,
		Power:        req.Specs.Power,
		Transmission: req.Specs.Transmission,
		Category:     req.Specs.Category,
		Pricing:      req.Pricing,
		Location:     req.Specs.Location,
		Images:       req.Photos,
	}
}

func applyOverride(v *db.Vehicle, o db.VehicleOverride) {
	if len(o.Pricing) > 0 {
		v.Pricing = o.Pricing
	}
	if o.ExtraKmPrice != 0 {
		v.ExtraKmPrice = o.ExtraKmPrice
	}
	if o.Deposit != 0 {
		v.Deposit = o.Deposit
	}
	if o.Location != "" {
		v.Location = o.Location
	}
	if o.CalendarURL != "" {
		v.CalendarURL = o.CalendarURL
	}
}
