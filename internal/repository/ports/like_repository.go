package ports

import (
	"context"

	"github.com/google/uuid"
)

type LikeRepository interface {
	Add(ctx context.Context, visitorID uuid.UUID, guideID int) error
	Remove(ctx context.Context, visitorID uuid.UUID, guideID int) error
	Contains(ctx context.Context, visitorID uuid.UUID, guideID int) (bool, error)
	ListByVisitor(ctx context.Context, visitorID uuid.UUID) ([]int, error)
}
