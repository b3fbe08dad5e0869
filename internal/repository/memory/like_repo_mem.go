package memory

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"

	"github.com/njprem/GuideMe_Site/internal/domain"
	"github.com/njprem/GuideMe_Site/internal/repository/ports"
)

// LikeRepository keeps liked guide ids per visitor for the lifetime of the process.
type LikeRepository struct {
	mu    sync.RWMutex
	likes map[uuid.UUID]domain.LikedSet
}

func NewLikeRepo() *LikeRepository {
	return &LikeRepository{likes: make(map[uuid.UUID]domain.LikedSet)}
}

func (r *LikeRepository) Add(_ context.Context, visitorID uuid.UUID, guideID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	set := r.likes[visitorID]
	set.Add(guideID)
	r.likes[visitorID] = set
	return nil
}

func (r *LikeRepository) Remove(_ context.Context, visitorID uuid.UUID, guideID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	set := r.likes[visitorID]
	if !set.Remove(guideID) {
		return sql.ErrNoRows
	}
	if set.Len() == 0 {
		delete(r.likes, visitorID)
	}
	return nil
}

func (r *LikeRepository) Contains(_ context.Context, visitorID uuid.UUID, guideID int) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.likes[visitorID].Contains(guideID), nil
}

func (r *LikeRepository) ListByVisitor(_ context.Context, visitorID uuid.UUID) ([]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.likes[visitorID].IDs(), nil
}

var _ ports.LikeRepository = (*LikeRepository)(nil)
