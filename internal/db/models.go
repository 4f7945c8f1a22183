package db

import "time"

// TierPrice is the pre-tabulated rate for one rental-duration tier. Tiers are
// not multiples of a daily rate; the operator sets each amount directly so
// weekend and weekly discounting stay under their control.
type TierPrice struct {
	Price      int `json:"price"`
	IncludedKm int `json:"included_km"`
}

// Vehicle is a catalogue entry. Identified by a slug derived from brand+model,
// unique within the active catalogue.
type Vehicle struct {
	Slug         string               `json:"slug"`
	Brand        string               `json:"brand"`
	Model        string               `json:"model"`
	Year         int                  `json:"year"`
	Power        string               `json:"power"`
	Transmission string               `json:"transmission"`
	Category     string               `json:"category"`
	Pricing      map[string]TierPrice `json:"pricing"`
	ExtraKmPrice float64              `json:"extra_km_price,omitempty"`
	Deposit      int                  `json:"deposit"`
	Location     string               `json:"location"`
	Images       []string             `json:"images,omitempty"`
	VideoURL     string               `json:"video_url,omitempty"`
	CalendarURL  string               `json:"calendar_url,omitempty"`
}

// VehicleOverride carries operator edits applied on top of a base-fleet entry.
// Only non-zero fields replace the base values.
type VehicleOverride struct {
	Slug         string               `json:"slug"`
	Pricing      map[string]TierPrice `json:"pricing,omitempty"`
	ExtraKmPrice float64              `json:"extra_km_price,omitempty"`
	Deposit      int                  `json:"deposit,omitempty"`
	Location     string               `json:"location,omitempty"`
	CalendarURL  string               `json:"calendar_url,omitempty"`
}

// ReservationInterval blocks a vehicle for a date range, end date inclusive.
// Intervals are never edited in place; replace means delete and re-add.
type ReservationInterval struct {
	ID            string    `json:"id"`
	VehicleSlug   string    `json:"vehicle_slug"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	CustomerName  string    `json:"customer_name,omitempty"`
	CustomerPhone string    `json:"customer_phone,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Rental request statuses. Both decisions are terminal.
const (
	RequestStatusPending  = "pending"
	RequestStatusAccepted = "accepted"
	RequestStatusRejected = "rejected"
)

// RequestSpecs are the operator-edited display fields for an accepted request.
type RequestSpecs struct {
	Year         int    `json:"year,omitempty"`
	Power        string `json:"power,omitempty"`
	Transmission string `json:"transmission,omitempty"`
	Category     string `json:"category,omitempty"`
	Location     string `json:"location,omitempty"`
}

// RentalRequest is a "rent out your own vehicle" submission. An accepted
// request is projected into the public catalogue at read time; it is never
// copied into the vehicle collection.
type RentalRequest struct {
	ID             string               `json:"id"`
	DepositorName  string               `json:"depositor_name"`
	DepositorEmail string               `json:"depositor_email"`
	DepositorPhone string               `json:"depositor_phone,omitempty"`
	Brand          string               `json:"brand"`
	Model          string               `json:"model"`
	Description    string               `json:"description,omitempty"`
	Photos         []string             `json:"photos,omitempty"`
	Status         string               `json:"status"`
	Pricing        map[string]TierPrice `json:"pricing,omitempty"`
	Specs          RequestSpecs         `json:"specs"`
	SubmittedAt    time.Time            `json:"submitted_at"`
	DecidedAt      *time.Time           `json:"decided_at,omitempty"`
}

// Lead is a contact submission from the public site.
type Lead struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Contact     string    `json:"contact"`
	VehicleSlug string    `json:"vehicle_slug,omitempty"`
	Message     string    `json:"message,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// VisitEvent is one row of the analytics visit log.
type VisitEvent struct {
	Page      string    `json:"page"`
	Referrer  string    `json:"referrer,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Admin is an operator account.
type Admin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// RefreshToken is an opaque, rotating session token stored server side and
// carried by the operator's HTTP-only cookie.
type RefreshToken struct {
	Token      string    `json:"token"`
	AdminEmail string    `json:"admin_email"`
	ExpiresAt  time.Time `json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`
}
