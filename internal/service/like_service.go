package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/njprem/GuideMe_Site/internal/domain"
	"github.com/njprem/GuideMe_Site/internal/metrics"
	"github.com/njprem/GuideMe_Site/internal/repository/ports"
)

type GuideLookup interface {
	FindGuide(id int) (domain.Guide, bool)
}

// LikeService manages the visitor's set of liked featured guides.
type LikeService struct {
	likes  ports.LikeRepository
	guides GuideLookup
}

func NewLikeService(likeRepo ports.LikeRepository, guides GuideLookup) *LikeService {
	return &LikeService{likes: likeRepo, guides: guides}
}

func (s *LikeService) Add(ctx context.Context, visitorID uuid.UUID, guideID int) error {
	if _, ok := s.guides.FindGuide(guideID); !ok {
		return ErrGuideNotFound
	}
	if err := s.likes.Add(ctx, visitorID, guideID); err != nil {
		return err
	}
	metrics.LikesTotal.WithLabelValues("add").Inc()
	return nil
}

func (s *LikeService) Remove(ctx context.Context, visitorID uuid.UUID, guideID int) error {
	if err := s.likes.Remove(ctx, visitorID, guideID); err != nil {
		if isNotFound(err) {
			return ErrLikeNotFound
		}
		return err
	}
	metrics.LikesTotal.WithLabelValues("remove").Inc()
	return nil
}

func (s *LikeService) Contains(ctx context.Context, visitorID uuid.UUID, guideID int) (bool, error) {
	return s.likes.Contains(ctx, visitorID, guideID)
}

// Toggle flips membership and reports whether the guide is liked afterwards.
func (s *LikeService) Toggle(ctx context.Context, visitorID uuid.UUID, guideID int) (bool, error) {
	liked, err := s.Contains(ctx, visitorID, guideID)
	if err != nil {
		return false, err
	}
	if liked {
		if err := s.Remove(ctx, visitorID, guideID); err != nil {
			return true, err
		}
		return false, nil
	}
	if err := s.Add(ctx, visitorID, guideID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *LikeService) Liked(ctx context.Context, visitorID uuid.UUID) (domain.LikedSet, error) {
	ids, err := s.likes.ListByVisitor(ctx, visitorID)
	if err != nil {
		return nil, err
	}
	return domain.NewLikedSet(ids...), nil
}
