package service

import (
	"fmt"
	"strings"
	"time"

	"luxdrive/internal/db"
	"luxdrive/internal/entities"
	"luxdrive/internal/repository"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// submissionQuotaPerDay caps how many requests one email address may submit
// within the same calendar day. The 4th and later attempts are refused at
// submission time with no record created.
const submissionQuotaPerDay = 3

// RequestService drives the "rent out your own vehicle" workflow:
// pending -> accepted | rejected, both terminal. Accepted requests surface in
// the catalogue through a read-time projection, never a copy.
type RequestService struct {
	Repo     *repository.RequestRepository
	Notifier *NotifyService

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func NewRequestService(repo *repository.RequestRepository, notifier *NotifyService) *RequestService {
	return &RequestService{Repo: repo, Notifier: notifier, Now: time.Now}
}

// Submit stores a new pending request unless the submitter already hit the
// daily quota. Quota refusal creates no record and has no side effect.
func (s *RequestService) Submit(input entities.SubmitRequestInput) (*db.RentalRequest, error) {
	email := strings.ToLower(strings.TrimSpace(input.DepositorEmail))
	if email == "" || input.Brand == "" || input.Model == "" {
		return nil, fmt.Errorf("depositor_email, brand and model are required")
	}

	now := s.Now()
	if s.countSameDay(email, now) >= submissionQuotaPerDay {
		return nil, ErrQuotaExceeded
	}

	request := db.RentalRequest{
		ID:             uuid.NewString(),
		DepositorName:  input.DepositorName,
		DepositorEmail: email,
		DepositorPhone: input.DepositorPhone,
		Brand:          input.Brand,
		Model:          input.Model,
		Description:    input.Description,
		Photos:         input.Photos,
		Status:         db.RequestStatusPending,
		SubmittedAt:    now,
	}
	if err := s.Repo.AppendRequest(request); err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		s.Notifier.NotifyNewRequest(request)
	}
	log.WithFields(log.Fields{"request_id": request.ID, "email": email}).Info("Rental request submitted")
	return &request, nil
}

// List returns all requests, optionally filtered by status.
func (s *RequestService) List(status string) []db.RentalRequest {
	all := s.Repo.ListRequests()
	if status == "" {
		return all
	}
	out := make([]db.RentalRequest, 0, len(all))
	for _, req := range all {
		if req.Status == status {
			out = append(out, req)
		}
	}
	return out
}

// Accept moves a pending request to accepted and attaches the operator's
// pricing tiers. From the next catalogue read the request is visible as a
// vehicle-shaped projection.
func (s *RequestService) Accept(id string, pricing map[string]db.TierPrice) (*db.RentalRequest, error) {
	if err := ValidatePricing(pricing); err != nil {
		return nil, err
	}
	return s.decide(id, db.RequestStatusAccepted, pricing)
}

// Reject moves a pending request to rejected; it never becomes visible.
func (s *RequestService) Reject(id string) (*db.RentalRequest, error) {
	return s.decide(id, db.RequestStatusRejected, nil)
}

func (s *RequestService) decide(id, status string, pricing map[string]db.TierPrice) (*db.RentalRequest, error) {
	request := s.Repo.GetRequest(id)
	if request == nil {
		return nil, ErrRequestNotFound
	}
	if request.Status != db.RequestStatusPending {
		return nil, ErrRequestDecided
	}

	decidedAt := s.Now()
	request.Status = status
	request.DecidedAt = &decidedAt
	if pricing != nil {
		request.Pricing = pricing
	}

	if _, err := s.Repo.UpdateRequest(*request); err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"request_id": id, "status": status}).Info("Rental request decided")
	return request, nil
}

// EditPricing replaces the operator-assigned tiers of an accepted request in
// place, so the catalogue projection reflects the change on the next read.
func (s *RequestService) EditPricing(id string, pricing map[string]db.TierPrice) (*db.RentalRequest, error) {
	if err := ValidatePricing(pricing); err != nil {
		return nil, err
	}
	return s.edit(id, func(req *db.RentalRequest) {
		req.Pricing = pricing
	})
}

// EditDisplaySpecs replaces the operator-edited display fields in place.
func (s *RequestService) EditDisplaySpecs(id string, specs db.RequestSpecs) (*db.RentalRequest, error) {
	return s.edit(id, func(req *db.RentalRequest) {
		req.Specs = specs
	})
}

func (s *RequestService) edit(id string, apply func(*db.RentalRequest)) (*db.RentalRequest, error) {
	request := s.Repo.GetRequest(id)
	if request == nil {
		return nil, ErrRequestNotFound
	}
	if request.Status != db.RequestStatusAccepted {
		return nil, fmt.Errorf("request %s is not accepted", id)
	}
	apply(request)
	if _, err := s.Repo.UpdateRequest(*request); err != nil {
		return nil, err
	}
	return request, nil
}

// Delete removes a request at any status. An accepted request's catalogue
// projection disappears on the next read; the submitter is not notified.
func (s *RequestService) Delete(id string) error {
	found, err := s.Repo.DeleteRequest(id)
	if err != nil {
		return err
	}
	if !found {
		return ErrRequestNotFound
	}
	return nil
}

func (s *RequestService) countSameDay(email string, now time.Time) int {
	y, m, d := now.Date()
	count := 0
	for _, req := range s.Repo.ListRequests() {
		if req.DepositorEmail != email {
			continue
		}
		ry, rm, rd := req.SubmittedAt.In(now.Location()).Date()
		if ry == y && rm == m && rd == d {
			count++
		}
	}
	return count
}
