package repository

import (
	"fmt"
	"time"

	"luxdrive/internal/db"
	"luxdrive/internal/store"

	"github.com/google/uuid"
)

// ReservationRepository persists the ledger of booked date intervals. Overlap
// between intervals for the same vehicle is permitted; availability queries
// collapse duplicates into a date set.
type ReservationRepository struct {
	Store *store.Store
}

func NewReservationRepository(s *store.Store) *ReservationRepository {
	return &ReservationRepository{Store: s}
}

// ListIntervals returns every stored interval. Malformed content reads back
// as an empty ledger.
func (r *ReservationRepository) ListIntervals() []db.ReservationInterval {
	var intervals []db.ReservationInterval
	r.Store.Read(store.KeyReservations, &intervals)
	return intervals
}

// AddInterval appends a new interval. Intervals are never edited in place;
// replacing one means removing it and adding a fresh record.
func (r *ReservationRepository) AddInterval(interval db.ReservationInterval) (db.ReservationInterval, error) {
	interval.ID = uuid.NewString()
	interval.CreatedAt = time.Now().UTC()

	var intervals []db.ReservationInterval
	err := r.Store.Update(store.KeyReservations, &intervals, func() (interface{}, error) {
		return append(intervals, interval), nil
	})
	return interval, err
}

// RemoveInterval deletes an interval by ID.
func (r *ReservationRepository) RemoveInterval(id string) error {
	var intervals []db.ReservationInterval
	found := false
	err := r.Store.Update(store.KeyReservations, &intervals, func() (interface{}, error) {
		out := intervals[:0]
		for _, it := range intervals {
			if it.ID == id {
				found = true
				continue
			}
			out = append(out, it)
		}
		return out, nil
	})
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("interval %s not found", id)
	}
	return nil
}
