package service

import (
	"fmt"
	"sort"
	"time"

	"luxdrive/internal/db"
	"luxdrive/internal/entities"
	"luxdrive/internal/repository"
)

const dateLayout = "2006-01-02"

// AvailabilityService answers date-availability questions over the ledger of
// reservation intervals. Intervals whose end date is already in the past are
// ignored; rows with unparseable dates are skipped so a corrupt ledger reads
// as fully available.
type AvailabilityService struct {
	Repo *repository.ReservationRepository

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func NewAvailabilityService(repo *repository.ReservationRepository) *AvailabilityService {
	return &AvailabilityService{Repo: repo, Now: time.Now}
}

// BlockedDates materializes every blocked date for one vehicle, or across the
// whole fleet when slug is empty. The result is sorted and duplicate-free;
// overlapping intervals collapse harmlessly.
func (s *AvailabilityService) BlockedDates(slug string) []string {
	today := s.today()
	set := map[string]bool{}
	for _, interval := range s.Repo.ListIntervals() {
		if slug != "" && interval.VehicleSlug != slug {
			continue
		}
		start, end, ok := parseInterval(interval)
		if !ok || end.Before(today) {
			continue
		}
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			set[d.Format(dateLayout)] = true
		}
	}

	dates := make([]string, 0, len(set))
	for d := range set {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// BlockedUntil returns the latest end date among intervals covering today for
// the vehicle. When several current bookings overlap, the furthest end date
// wins. ok is false when today is free.
func (s *AvailabilityService) BlockedUntil(slug string) (time.Time, bool) {
	today := s.today()
	var until time.Time
	blocked := false
	for _, interval := range s.Repo.ListIntervals() {
		if interval.VehicleSlug != slug {
			continue
		}
		start, end, ok := parseInterval(interval)
		if !ok || start.After(today) || end.Before(today) {
			continue
		}
		if !blocked || end.After(until) {
			until = end
			blocked = true
		}
	}
	return until, blocked
}

// IsBlocked reports whether the vehicle is booked on the given date.
func (s *AvailabilityService) IsBlocked(slug, date string) bool {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return false
	}
	today := s.today()
	for _, interval := range s.Repo.ListIntervals() {
		if interval.VehicleSlug != slug {
			continue
		}
		start, end, ok := parseInterval(interval)
		if !ok || end.Before(today) {
			continue
		}
		if !day.Before(start) && !day.After(end) {
			return true
		}
	}
	return false
}

// Summary bundles the ledger view returned to the public availability
// endpoint and consumed by the assistant.
func (s *AvailabilityService) Summary(slug, calendarURL string) entities.AvailabilityResponse {
	resp := entities.AvailabilityResponse{
		VehicleSlug:  slug,
		BlockedDates: s.BlockedDates(slug),
		CalendarURL:  calendarURL,
	}
	if slug != "" {
		if until, blocked := s.BlockedUntil(slug); blocked {
			resp.BlockedUntil = until.Format(dateLayout)
		}
	}
	return resp
}

// AddInterval stores a new booked interval, end date inclusive. Overlap with
// existing intervals is allowed on purpose.
func (s *AvailabilityService) AddInterval(req entities.IntervalRequest) (db.ReservationInterval, error) {
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return db.ReservationInterval{}, fmt.Errorf("invalid start_date: %w", err)
	}
	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return db.ReservationInterval{}, fmt.Errorf("invalid end_date: %w", err)
	}
	if end.Before(start) {
		return db.ReservationInterval{}, fmt.Errorf("end_date must not be before start_date")
	}
	return s.Repo.AddInterval(db.ReservationInterval{
		VehicleSlug:   req.VehicleSlug,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
	})
}

// RemoveInterval deletes an interval; replacing one is delete plus re-add.
func (s *AvailabilityService) RemoveInterval(id string) error {
	return s.Repo.RemoveInterval(id)
}

func (s *AvailabilityService) today() time.Time {
	now := s.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func parseInterval(interval db.ReservationInterval) (start, end time.Time, ok bool) {
	start, err := time.Parse(dateLayout, interval.StartDate)
	if err != nil {
		return start, end, false
	}
	end, err = time.Parse(dateLayout, interval.EndDate)
	if err != nil || end.Before(start) {
		return start, end, false
	}
	return start, end, true
}
