package service

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/njprem/GuideMe_Site/internal/domain"
	"github.com/njprem/GuideMe_Site/internal/logging"
	"github.com/njprem/GuideMe_Site/internal/metrics"
	"github.com/njprem/GuideMe_Site/internal/repository/ports"
)

// LaunchSubscriptionService records visitors who want to hear when the guide catalog ships.
type LaunchSubscriptionService struct {
	subscriptions ports.SubscriptionRepository
	notifier      ports.LaunchNotifier
	log           *logrus.Logger
	now           func() time.Time
}

// NewLaunchSubscriptionService accepts a nil notifier; confirmation mail is then skipped.
func NewLaunchSubscriptionService(repo ports.SubscriptionRepository, notifier ports.LaunchNotifier, log *logrus.Logger) *LaunchSubscriptionService {
	return &LaunchSubscriptionService{
		subscriptions: repo,
		notifier:      notifier,
		log:           log,
		now:           time.Now,
	}
}

func (s *LaunchSubscriptionService) Subscribe(ctx context.Context, visitorID uuid.UUID, email string) (*domain.LaunchSubscription, error) {
	address, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}

	existing, err := s.subscriptions.FindByEmail(ctx, address)
	switch {
	case err == nil && existing != nil:
		return nil, ErrAlreadySubscribed
	case err != nil && !isNotFound(err):
		return nil, err
	}

	sub := &domain.LaunchSubscription{
		ID:        uuid.New(),
		Email:     address,
		VisitorID: visitorID,
		CreatedAt: s.now().UTC(),
	}
	if err := s.subscriptions.Create(ctx, sub); err != nil {
		return nil, err
	}
	metrics.LaunchSubscriptionsTotal.Inc()

	if s.notifier != nil {
		if err := s.notifier.SendLaunchSubscribed(ctx, address); err != nil {
			logging.For(ctx, s.log).WithError(err).Warn("launch confirmation mail not sent")
		}
	}
	return sub, nil
}

func normalizeEmail(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Address != trimmed {
		return "", ErrInvalidEmail
	}
	return strings.ToLower(addr.Address), nil
}
