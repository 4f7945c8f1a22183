package repository

import (
	"time"

	"luxdrive/internal/db"
	"luxdrive/internal/store"

	"github.com/google/uuid"
)

// LeadRepository persists the lead log and the analytics visit log.
type LeadRepository struct {
	Store *store.Store
}

func NewLeadRepository(s *store.Store) *LeadRepository {
	return &LeadRepository{Store: s}
}

func (r *LeadRepository) ListLeads() []db.Lead {
	var leads []db.Lead
	r.Store.Read(store.KeyLeads, &leads)
	return leads
}

func (r *LeadRepository) AppendLead(lead db.Lead) (db.Lead, error) {
	lead.ID = uuid.NewString()
	lead.CreatedAt = time.Now().UTC()

	var leads []db.Lead
	err := r.Store.Update(store.KeyLeads, &leads, func() (interface{}, error) {
		return append(leads, lead), nil
	})
	return lead, err
}

func (r *LeadRepository) AppendVisit(visit db.VisitEvent) error {
	visit.CreatedAt = time.Now().UTC()
	var visits []db.VisitEvent
	return r.Store.Update(store.KeyVisits, &visits, func() (interface{}, error) {
		return append(visits, visit), nil
	})
}

func (r *LeadRepository) ListVisits() []db.VisitEvent {
	var visits []db.VisitEvent
	r.Store.Read(store.KeyVisits, &visits)
	return visits
}

// TrimVisits keeps only the newest max visit rows. Returns how many rows were
// dropped.
func (r *LeadRepository) TrimVisits(max int) (int, error) {
	var visits []db.VisitEvent
	dropped := 0
	err := r.Store.Update(store.KeyVisits, &visits, func() (interface{}, error) {
		if len(visits) <= max {
			return visits, nil
		}
		dropped = len(visits) - max
		return visits[dropped:], nil
	})
	return dropped, err
}
