package services

import (
	"context"
	"quotagate/internal/errors"
	"quotagate/internal/logger"
	"quotagate/internal/metrics"
	"quotagate/internal/models"
	"quotagate/internal/repository"
	"quotagate/internal/window"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Decision is the verdict for a single admission check. UsedCount includes
// the current request when it was admitted.
type Decision struct {
	Outcome   models.Outcome
	UsedCount int
	Quota     int
	Remaining int
}

type AdmissionService interface {
	Check(ctx context.Context, credentialKey, endpoint string, now time.Time) (*Decision, error)
}

type admissionService struct {
	credentialService CredentialService
	usageRepo         repository.UsageRepository

	// locks serializes count-then-append per credential. Two concurrent
	// checks for the same key must not both observe used == quota-1 and both
	// admit; checks for different keys never contend.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewAdmissionService(credentialService CredentialService, usageRepo repository.UsageRepository) AdmissionService {
	return &admissionService{
		credentialService: credentialService,
		usageRepo:         usageRepo,
		locks:             make(map[string]*sync.Mutex),
	}
}

func (s *admissionService) credentialLock(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	return lock
}

// Check validates the credential, counts admitted usage in the window
// containing now, applies the quota policy and records the outcome. Both
// admitted and denied attempts are written to the ledger; an unknown
// credential writes nothing, since there is no credential to account against.
//
// Storage failures fail closed: the caller gets a Denied decision together
// with ErrStorageUnavailable, never a silent admit without a durable record.
func (s *admissionService) Check(ctx context.Context, credentialKey, endpoint string, now time.Time) (*Decision, error) {
	timer := time.Now()
	metrics.ChecksTotal.WithLabelValues(endpoint).Inc()
	defer func() {
		metrics.CheckDuration.WithLabelValues(endpoint).Observe(time.Since(timer).Seconds())
	}()

	credential, err := s.credentialService.Lookup(ctx, credentialKey)
	if err != nil {
		if errors.Is(err, errors.ErrInvalidCredential) {
			return nil, err
		}
		metrics.ErrorsTotal.Inc()
		return s.failClosed(credential, err)
	}

	lock := s.credentialLock(credential.Key)
	lock.Lock()
	defer lock.Unlock()

	w := window.Current(now)
	used, err := s.usageRepo.CountAdmittedInWindow(ctx, credential.Key, w)
	if err != nil {
		metrics.ErrorsTotal.Inc()
		return s.failClosed(credential, err)
	}

	outcome := models.OutcomeAdmitted
	if used >= int64(credential.Quota) {
		outcome = models.OutcomeDenied
	}

	if _, err := s.usageRepo.Append(ctx, credential.Key, endpoint, outcome); err != nil {
		metrics.ErrorsTotal.Inc()
		return s.failClosed(credential, err)
	}

	decision := &Decision{
		Outcome: outcome,
		Quota:   credential.Quota,
	}
	if outcome == models.OutcomeAdmitted {
		metrics.AdmittedTotal.WithLabelValues(endpoint).Inc()
		decision.UsedCount = int(used) + 1
		decision.Remaining = credential.Quota - decision.UsedCount
	} else {
		metrics.DeniedTotal.WithLabelValues(endpoint).Inc()
		decision.UsedCount = int(used)
		decision.Remaining = 0
		logger.Logger.WithFields(logrus.Fields{
			"owner":    credential.OwnerEmail,
			"endpoint": endpoint,
			"used":     used,
			"quota":    credential.Quota,
		}).Info("Request denied: quota exhausted")
	}

	return decision, nil
}

// failClosed produces the Denied decision returned alongside
// ErrStorageUnavailable when the directory or ledger is unreachable.
func (s *admissionService) failClosed(credential *models.Credential, cause error) (*Decision, error) {
	decision := &Decision{Outcome: models.OutcomeDenied}
	if credential != nil {
		decision.Quota = credential.Quota
	}
	logger.Logger.WithFields(logrus.Fields{
		"error": cause,
	}).Error("Admission check failed, denying request")
	return decision, errors.Wrap(errors.ErrStorageUnavailable, cause.Error())
}
