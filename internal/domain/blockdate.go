package domain

import "github.com/artstay/ArtStay-RetreatService/pkg/types"

// BlockedDateRange is a contiguous date interval [StartDate, EndDate]
// (inclusive on both ends) during which a room cannot be booked at the
// requested quantity. Ranges depend on remaining inventory, so the list
// must be refetched whenever the requested quantity changes.
type BlockedDateRange struct {
	StartDate types.Date
	EndDate   types.Date
}

// Contains returns true if the date falls within the range, bounds inclusive
func (r *BlockedDateRange) Contains(d types.Date) bool {
	return !d.IsBefore(r.StartDate) && !d.IsAfter(r.EndDate)
}

// BlockList is the set of blocked ranges loaded for one (room, quantity) pair
type BlockList []BlockedDateRange

// IsBlocked returns true if the date falls within any blocked range
func (l BlockList) IsBlocked(d types.Date) bool {
	for i := range l {
		if l[i].Contains(d) {
			return true
		}
	}
	return false
}
