package domain

import "sort"

// RatePlan represents a named pricing policy for a room.
// Each plan exposes one or more occupancy-specific instances; the instance
// identifier (rrpId) is what the pricing service keys nightly rates on.
type RatePlan struct {
	ID          string
	RoomID      string
	Name        string
	Occupancies []RatePlanOccupancy
}

// RatePlanOccupancy pairs a supported total-occupancy count with the
// identifier of the rate-plan instance configured for it
type RatePlanOccupancy struct {
	Occupancy          int
	RatePlanInstanceID string
}

// MatchRatePlan selects the best-fit rate-plan instance for the requested
// occupancy across all plans of a room.
//
// Selection order:
//  1. exact occupancy match
//  2. smallest occupancy >= requested (first entry after a stable sort wins ties)
//  3. largest available occupancy (requested exceeds everything on offer)
//
// Returns false if total occupancy is zero or no plan exposes any occupancy entry.
func MatchRatePlan(adults, children int, plans []RatePlan) (string, bool) {
	totalOccupancy := adults + children
	if totalOccupancy == 0 {
		return "", false
	}

	entries := make([]RatePlanOccupancy, 0)
	for _, plan := range plans {
		entries = append(entries, plan.Occupancies...)
	}
	if len(entries) == 0 {
		return "", false
	}

	// Stable sort keeps source order among equal occupancy values,
	// which makes the >= tie-break deterministic.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Occupancy < entries[j].Occupancy
	})

	for _, entry := range entries {
		if entry.Occupancy == totalOccupancy {
			return entry.RatePlanInstanceID, true
		}
	}

	for _, entry := range entries {
		if entry.Occupancy >= totalOccupancy {
			return entry.RatePlanInstanceID, true
		}
	}

	// Requested occupancy exceeds every plan: fall back to the largest one.
	return entries[len(entries)-1].RatePlanInstanceID, true
}
