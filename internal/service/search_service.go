package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/njprem/GuideMe_Site/internal/logging"
	"github.com/njprem/GuideMe_Site/internal/metrics"
	"github.com/njprem/GuideMe_Site/internal/repository/ports"
)

// SearchService hands out search forms bound to the configured backend and keeps
// at most one submission in flight per visitor.
type SearchService struct {
	backend     ports.SearchBackend
	listingPath string
	log         *logrus.Logger

	mu       sync.Mutex
	inflight map[uuid.UUID]struct{}
}

func NewSearchService(backend ports.SearchBackend, listingPath string, log *logrus.Logger) *SearchService {
	if listingPath == "" {
		listingPath = "/guides"
	}
	return &SearchService{
		backend:     backend,
		listingPath: listingPath,
		log:         log,
		inflight:    make(map[uuid.UUID]struct{}),
	}
}

func (s *SearchService) ListingPath() string {
	return s.listingPath
}

func (s *SearchService) NewForm(opts ...SearchFormOption) *SearchForm {
	return NewSearchForm(s.backend, s.listingPath, opts...)
}

func (s *SearchService) Submit(ctx context.Context, visitorID uuid.UUID, form *SearchForm) (SubmitResult, error) {
	entry := logging.For(ctx, s.log).WithField("visitor_id", visitorID.String())

	if !s.acquire(visitorID) {
		metrics.SearchSubmissionsTotal.WithLabelValues(metrics.OutcomeInProgress).Inc()
		entry.Warn("search rejected: another submission is in flight")
		return SubmitResult{}, ErrSearchInProgress
	}
	defer s.release(visitorID)

	start := time.Now()
	result, err := form.Submit(ctx)
	switch {
	case errors.Is(err, ErrSearchInvalid):
		metrics.SearchSubmissionsTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		entry.WithError(err).Debug("search rejected by validation")
		return result, err
	case errors.Is(err, ErrSearchInProgress):
		metrics.SearchSubmissionsTotal.WithLabelValues(metrics.OutcomeInProgress).Inc()
		return result, err
	case err != nil:
		metrics.SearchSubmissionsTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
		entry.WithError(err).Error("search backend failed")
		return result, err
	}

	metrics.SearchBackendDuration.Observe(time.Since(start).Seconds())
	outcome := metrics.OutcomeRedirected
	if result.Delivered {
		outcome = metrics.OutcomeDelivered
	}
	metrics.SearchSubmissionsTotal.WithLabelValues(outcome).Inc()
	entry.WithFields(logrus.Fields{
		"destination": result.Query.Destination,
		"country":     string(result.Query.Country),
		"outcome":     outcome,
	}).Info("search submitted")
	return result, nil
}

func (s *SearchService) acquire(visitorID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[visitorID]; busy {
		return false
	}
	s.inflight[visitorID] = struct{}{}
	return true
}

func (s *SearchService) release(visitorID uuid.UUID) {
	s.mu.Lock()
	delete(s.inflight, visitorID)
	s.mu.Unlock()
}
