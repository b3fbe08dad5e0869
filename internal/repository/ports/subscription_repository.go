package ports

import (
	"context"

	"github.com/njprem/GuideMe_Site/internal/domain"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, sub *domain.LaunchSubscription) error
	FindByEmail(ctx context.Context, email string) (*domain.LaunchSubscription, error)
}
