package service

import (
	"context"
	"time"

	"github.com/njprem/GuideMe_Site/internal/domain"
	"github.com/njprem/GuideMe_Site/internal/repository/ports"
)

const DefaultSearchDelay = 1500 * time.Millisecond

// DelayedBackend stands in for a real search request: it waits a fixed delay and
// always succeeds unless the caller's context ends first.
type DelayedBackend struct {
	delay time.Duration
}

func NewDelayedBackend(delay time.Duration) *DelayedBackend {
	if delay < 0 {
		delay = 0
	}
	return &DelayedBackend{delay: delay}
}

func (b *DelayedBackend) Search(ctx context.Context, _ domain.SearchQuery) error {
	if b.delay == 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(b.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

var _ ports.SearchBackend = (*DelayedBackend)(nil)
