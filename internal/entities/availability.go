package entities

// AvailabilityResponse summarises the ledger for one vehicle, or for the whole
// fleet when VehicleSlug is empty.
type AvailabilityResponse struct {
	VehicleSlug  string   `json:"vehicle_slug,omitempty"`
	BlockedDates []string `json:"blocked_dates"`
	BlockedUntil string   `json:"blocked_until,omitempty"`
	CalendarURL  string   `json:"calendar_url,omitempty"`
}

// IntervalRequest creates a reservation interval, dates in YYYY-MM-DD with the
// end date inclusive.
type IntervalRequest struct {
	VehicleSlug   string `json:"vehicle_slug"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerPhone string `json:"customer_phone,omitempty"`
}
