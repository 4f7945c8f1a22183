package entities

// QuoteRequest asks for a rental quote. Kilometre inputs accept fractions;
// the caller is responsible for doubling a one-way transport distance when the
// depot-customer-depot round trip is wanted.
type QuoteRequest struct {
	VehicleSlug string  `json:"vehicle_slug"`
	Tier        string  `json:"tier"`
	ExtraKm     float64 `json:"extra_km"`
	TransportKm float64 `json:"transport_km"`
}

// PriceBreakdown is a derived, non-persisted quote. Total always equals
// LocationPrice + ExtraKmPrice + TransportPrice in whole CHF; each line item
// is rounded on its own so the displayed rows add up exactly.
type PriceBreakdown struct {
	VehicleName    string  `json:"vehicle_name"`
	Tier           string  `json:"tier"`
	LocationPrice  int     `json:"location_price"`
	IncludedKm     int     `json:"included_km"`
	ExtraKm        float64 `json:"extra_km"`
	ExtraKmPrice   int     `json:"extra_km_price"`
	TransportKm    float64 `json:"transport_km"`
	TransportPrice int     `json:"transport_price"`
	Total          int     `json:"total"`
}
