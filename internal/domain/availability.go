package domain

import (
	"github.com/shopspring/decimal"

	"github.com/artstay/ArtStay-RetreatService/pkg/types"
)

// Availability combines the price table and block list loaded for the
// current (room, quantity, rate-plan instance) key, anchored at "today".
// It answers all per-night bookability questions for the selection engine.
type Availability struct {
	Today  types.Date
	Prices PriceTable
	Blocks BlockList
}

// NightIsBookable returns true if a night can be part of a stay:
// not blocked and priced above zero. Blocking and pricing checks use
// inclusive bounds on both interval ends.
func (a *Availability) NightIsBookable(d types.Date) bool {
	return !a.Blocks.IsBlocked(d) && a.Prices.PriceOn(d).IsPositive()
}

// IsSelectable returns true if a calendar day may be clicked as a
// check-in or check-out candidate. A day is selectable unless it is in
// the past, blocked, or has no rate. No other condition disables a day.
func (a *Availability) IsSelectable(d types.Date) bool {
	if d.IsBefore(a.Today) {
		return false
	}
	return a.NightIsBookable(d)
}

// SpanIsBookable reports whether every night in [start, end) is bookable.
// The check-out date itself is not a night of the stay and is not checked.
func (a *Availability) SpanIsBookable(start, end types.Date) (bool, error) {
	night := start
	for night.IsBefore(end) {
		if !a.NightIsBookable(night) {
			return false, nil
		}
		next, err := night.AddDays(1)
		if err != nil {
			return false, err
		}
		night = next
	}
	return true, nil
}

// SpanTotal sums the nightly prices over [start, end) and returns the
// total together with the number of nights
func (a *Availability) SpanTotal(start, end types.Date) (decimal.Decimal, int, error) {
	total := decimal.Zero
	nights := 0

	night := start
	for night.IsBefore(end) {
		total = total.Add(a.Prices.PriceOn(night))
		nights++

		next, err := night.AddDays(1)
		if err != nil {
			return decimal.Zero, 0, err
		}
		night = next
	}

	return total, nights, nil
}
