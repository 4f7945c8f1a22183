package api

import (
	"luxdrive/internal/db"
	"luxdrive/internal/entities"
)

// Catalogue sync
type ReplaceVehiclesRequest struct {
	Vehicles []db.Vehicle `json:"vehicles"`
}

// Vehicle detail page payload: the entry plus its availability summary.
type VehicleDetailResponse struct {
	Vehicle      db.Vehicle                    `json:"vehicle"`
	Availability entities.AvailabilityResponse `json:"availability"`
}

// Request decisions and edits
type AcceptRequestBody struct {
	Pricing map[string]db.TierPrice `json:"pricing"`
}

type EditPricingBody struct {
	Pricing map[string]db.TierPrice `json:"pricing"`
}

type EditSpecsBody struct {
	Specs db.RequestSpecs `json:"specs"`
}

// Analytics
type VisitRequest struct {
	Page     string `json:"page"`
	Referrer string `json:"referrer,omitempty"`
}
