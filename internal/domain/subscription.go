package domain

import (
	"time"

	"github.com/google/uuid"
)

// LaunchSubscription is a request to be emailed once the guide catalog goes live.
type LaunchSubscription struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	VisitorID uuid.UUID `db:"visitor_id" json:"visitor_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
