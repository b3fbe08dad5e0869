package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Like records that a visitor hearted a featured guide.
type Like struct {
	VisitorID uuid.UUID `db:"visitor_id" json:"visitor_id"`
	GuideID   int       `db:"guide_id" json:"guide_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// LikedSet is the per-visitor set of guide ids. The zero value is empty and usable:
// reads work on a nil set and Add allocates on first use.
type LikedSet map[int]struct{}

func NewLikedSet(ids ...int) LikedSet {
	set := make(LikedSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (s *LikedSet) Add(id int) {
	if *s == nil {
		*s = make(LikedSet)
	}
	(*s)[id] = struct{}{}
}

// Remove deletes id and reports whether it was present.
func (s LikedSet) Remove(id int) bool {
	if _, ok := s[id]; !ok {
		return false
	}
	delete(s, id)
	return true
}

func (s LikedSet) Contains(id int) bool {
	_, ok := s[id]
	return ok
}

func (s LikedSet) Len() int {
	return len(s)
}

// IDs returns the liked guide ids in ascending order.
func (s LikedSet) IDs() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
