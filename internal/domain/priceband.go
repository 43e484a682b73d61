package domain

import (
	"github.com/shopspring/decimal"

	"github.com/artstay/ArtStay-RetreatService/pkg/types"
)

// NightlyPriceBand is a contiguous date interval [StartDate, EndDate]
// (inclusive on both ends) with a fixed per-night price.
// Bands are sourced per rate-plan instance from the external pricing service.
type NightlyPriceBand struct {
	StartDate types.Date
	EndDate   types.Date
	Price     decimal.Decimal
	PlanCode  *string
}

// Covers returns true if the date falls within the band, bounds inclusive
func (b *NightlyPriceBand) Covers(d types.Date) bool {
	return !d.IsBefore(b.StartDate) && !d.IsAfter(b.EndDate)
}

// PriceTable is the ordered set of price bands loaded for one rate-plan
// instance. Band order is the source array order; it is significant.
type PriceTable []NightlyPriceBand

// PriceOn resolves the per-night price for a single calendar date.
//
// The first band covering the date wins, in source order. Correctly sourced
// bands never overlap, but the table tolerates overlap and stays
// deterministic rather than enforcing the invariant client-side.
//
// A date covered by no band resolves to zero. Zero is a valid sentinel
// meaning "no rate / unavailable", checked by callers; it is not an error.
func (t PriceTable) PriceOn(d types.Date) decimal.Decimal {
	for i := range t {
		if t[i].Covers(d) {
			return t[i].Price
		}
	}
	return decimal.Zero
}
