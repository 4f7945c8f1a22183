package service

import (
	"time"

	"luxdrive/internal/repository"

	log "github.com/sirupsen/logrus"
)

// JobService holds the scheduled maintenance tasks. Reservation intervals are
// deliberately left alone: their lifecycle belongs to the operator, and
// availability queries already ignore intervals in the past.
type JobService struct {
	AuthRepo     *repository.AdminAuthRepository
	LeadRepo     *repository.LeadRepository
	LogRetention int
}

func NewJobService(authRepo *repository.AdminAuthRepository, leadRepo *repository.LeadRepository, logRetention int) *JobService {
	return &JobService{AuthRepo: authRepo, LeadRepo: leadRepo, LogRetention: logRetention}
}

// PurgeExpiredTokens drops refresh tokens past their expiry.
func (s *JobService) PurgeExpiredTokens() {
	removed, err := s.AuthRepo.PurgeExpiredTokens(time.Now())
	if err != nil {
		log.WithError(err).Error("Cron job: failed to purge expired refresh tokens")
		return
	}
	if removed > 0 {
		log.WithField("removed", removed).Info("Cron job: purged expired refresh tokens")
	}
}

// TrimVisitLog caps the analytics visit log at the configured retention.
func (s *JobService) TrimVisitLog() {
	dropped, err := s.LeadRepo.TrimVisits(s.LogRetention)
	if err != nil {
		log.WithError(err).Error("Cron job: failed to trim visit log")
		return
	}
	if dropped > 0 {
		log.WithField("dropped", dropped).Info("Cron job: trimmed visit log")
	}
}
