package sqlstore

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/njprem/GuideMe_Site/internal/repository/ports"
)

type LikeRepository struct {
	db *sqlx.DB
}

func NewLikeRepo(db *sqlx.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

func (r *LikeRepository) Add(ctx context.Context, visitorID uuid.UUID, guideID int) error {
	query := r.db.Rebind(`
		INSERT INTO guide_like (visitor_id, guide_id)
		VALUES (?, ?)
		ON CONFLICT (visitor_id, guide_id) DO NOTHING
	`)
	_, err := r.db.ExecContext(ctx, query, visitorID.String(), guideID)
	return err
}

func (r *LikeRepository) Remove(ctx context.Context, visitorID uuid.UUID, guideID int) error {
	query := r.db.Rebind(`
		DELETE FROM guide_like
		WHERE visitor_id = ? AND guide_id = ?
	`)
	result, err := r.db.ExecContext(ctx, query, visitorID.String(), guideID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *LikeRepository) Contains(ctx context.Context, visitorID uuid.UUID, guideID int) (bool, error) {
	query := r.db.Rebind(`
		SELECT COUNT(*)
		FROM guide_like
		WHERE visitor_id = ? AND guide_id = ?
	`)
	var count int64
	if err := r.db.GetContext(ctx, &count, query, visitorID.String(), guideID); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *LikeRepository) ListByVisitor(ctx context.Context, visitorID uuid.UUID) ([]int, error) {
	query := r.db.Rebind(`
		SELECT guide_id
		FROM guide_like
		WHERE visitor_id = ?
		ORDER BY guide_id
	`)
	ids := make([]int, 0)
	if err := r.db.SelectContext(ctx, &ids, query, visitorID.String()); err != nil {
		return nil, err
	}
	return ids, nil
}

var _ ports.LikeRepository = (*LikeRepository)(nil)
