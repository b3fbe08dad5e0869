package sqlstore

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/njprem/GuideMe_Site/internal/domain"
	"github.com/njprem/GuideMe_Site/internal/repository/ports"
)

type SubscriptionRepository struct {
	db *sqlx.DB
}

func NewSubscriptionRepo(db *sqlx.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

type subscriptionRow struct {
	ID        string    `db:"id"`
	Email     string    `db:"email"`
	VisitorID string    `db:"visitor_id"`
	CreatedAt time.Time `db:"created_at"`
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *domain.LaunchSubscription) error {
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now().UTC()
	}
	query := r.db.Rebind(`
		INSERT INTO launch_subscription (id, email, visitor_id, created_at)
		VALUES (?, ?, ?, ?)
	`)
	_, err := r.db.ExecContext(ctx, query, sub.ID.String(), strings.ToLower(sub.Email), sub.VisitorID.String(), sub.CreatedAt)
	return err
}

func (r *SubscriptionRepository) FindByEmail(ctx context.Context, email string) (*domain.LaunchSubscription, error) {
	query := r.db.Rebind(`
		SELECT id, email, visitor_id, created_at
		FROM launch_subscription
		WHERE email = ?
	`)
	var row subscriptionRow
	if err := r.db.GetContext(ctx, &row, query, strings.ToLower(strings.TrimSpace(email))); err != nil {
		return nil, err
	}
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return nil, err
	}
	visitorID, err := uuid.Parse(row.VisitorID)
	if err != nil {
		return nil, err
	}
	return &domain.LaunchSubscription{
		ID:        id,
		Email:     row.Email,
		VisitorID: visitorID,
		CreatedAt: row.CreatedAt,
	}, nil
}

var _ ports.SubscriptionRepository = (*SubscriptionRepository)(nil)
