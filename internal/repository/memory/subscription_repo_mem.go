package memory

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/njprem/GuideMe_Site/internal/domain"
	"github.com/njprem/GuideMe_Site/internal/repository/ports"
)

var ErrDuplicateEmail = errors.New("memory: duplicate email")

type SubscriptionRepository struct {
	mu      sync.Mutex
	byEmail map[string]domain.LaunchSubscription
}

func NewSubscriptionRepo() *SubscriptionRepository {
	return &SubscriptionRepository{byEmail: make(map[string]domain.LaunchSubscription)}
}

func (r *SubscriptionRepository) Create(_ context.Context, sub *domain.LaunchSubscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(strings.TrimSpace(sub.Email))
	if _, exists := r.byEmail[key]; exists {
		return ErrDuplicateEmail
	}
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now().UTC()
	}
	stored := *sub
	stored.Email = key
	r.byEmail[key] = stored
	return nil
}

func (r *SubscriptionRepository) FindByEmail(_ context.Context, email string) (*domain.LaunchSubscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub, ok := r.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &sub, nil
}

var _ ports.SubscriptionRepository = (*SubscriptionRepository)(nil)
