package service

import (
	"fmt"

	"luxdrive/internal/db"
	"luxdrive/internal/entities"
	"luxdrive/internal/repository"

	log "github.com/sirupsen/logrus"
)

// LeadService records contact-form leads and analytics page visits.
type LeadService struct {
	Repo     *repository.LeadRepository
	Notifier *NotifyService
}

func NewLeadService(repo *repository.LeadRepository, notifier *NotifyService) *LeadService {
	return &LeadService{Repo: repo, Notifier: notifier}
}

// SubmitLead stores the lead and pings the operator.
func (s *LeadService) SubmitLead(input entities.LeadInput) (*db.Lead, error) {
	if input.Name == "" || input.Contact == "" {
		return nil, fmt.Errorf("name and contact are required")
	}
	lead, err := s.Repo.AppendLead(db.Lead{
		Name:        input.Name,
		Contact:     input.Contact,
		VehicleSlug: input.VehicleSlug,
		Message:     input.Message,
	})
	if err != nil {
		return nil, err
	}
	if s.Notifier != nil {
		s.Notifier.NotifyNewLead(lead)
	}
	log.WithField("lead_id", lead.ID).Info("Lead recorded")
	return &lead, nil
}

// RecordVisit appends one row to the visit log. Visit tracking is best
// effort; errors are logged and swallowed.
func (s *LeadService) RecordVisit(page, referrer string) {
	if page == "" {
		return
	}
	if err := s.Repo.AppendVisit(db.VisitEvent{Page: page, Referrer: referrer}); err != nil {
		log.WithError(err).Warn("Could not record visit")
	}
}

// ListLeads returns the lead log for the back office.
func (s *LeadService) ListLeads() []db.Lead {
	return s.Repo.ListLeads()
}
