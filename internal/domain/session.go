package domain

import (
	"time"

	"github.com/artstay/ArtStay-RetreatService/pkg/types"
)

// Session is one in-progress booking: the room being booked, its rate
// plans, the guest's selection and the rate data loaded for the current
// (room, quantity, rate-plan instance) key.
//
// A session lives in memory only, for the duration of one booking flow.
// It is created when the guest opens the booking calendar and disappears
// on explicit abandonment or TTL expiry.
type Session struct {
	ID        string
	Room      Room
	RatePlans []RatePlan
	Selection Selection

	// Rate data for the current key. RateGeneration increases on every
	// key change; a load result tagged with an older generation is stale
	// and must not overwrite these fields (last-key-wins).
	Prices         PriceTable
	Blocks         BlockList
	RateGeneration uint64

	CreatedAt    time.Time
	LastActiveAt time.Time
}

// Availability builds the bookability view over the session's currently
// loaded rate data, anchored at the given day
func (s *Session) Availability(today types.Date) Availability {
	return Availability{
		Today:  today,
		Prices: s.Prices,
		Blocks: s.Blocks,
	}
}

// ExpiresAt returns the moment the session becomes eligible for cleanup
func (s *Session) ExpiresAt(ttl time.Duration) time.Time {
	return s.LastActiveAt.Add(ttl)
}

// IsExpired reports whether the session has outlived its TTL
func (s *Session) IsExpired(now time.Time, ttl time.Duration) bool {
	return now.After(s.ExpiresAt(ttl))
}
