package domain

import (
	"time"

	"github.com/google/uuid"
)

// ShareLink grants public read-only access to a saved report. Params holds
// the serialized report criteria; the public endpoint replays them against
// fresh data on every request.
type ShareLink struct {
	Token     uuid.UUID `json:"token"`
	Client    string    `json:"client"`
	Params    []byte    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the link is past its expiry at the given time.
func (l ShareLink) Expired(now time.Time) bool {
	return now.After(l.ExpiresAt)
}
