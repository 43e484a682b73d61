package domain

import (
	"github.com/shopspring/decimal"

	"github.com/artstay/ArtStay-RetreatService/pkg/types"
)

// SelectionStage is the state of the two-click date-range selector
type SelectionStage string

const (
	StageEmpty         SelectionStage = "empty"
	StageStartSelected SelectionStage = "start_selected"
	StageRangeSelected SelectionStage = "range_selected"
)

// Selection is the ephemeral state of one booking session: chosen dates,
// guest counters and the derived rate-plan instance and totals.
//
// Invariants:
//   - EndDate is strictly after StartDate whenever both are set
//   - every night in [StartDate, EndDate) was bookable at selection time
//   - Adults >= MinAdults, Children >= MinChildren,
//     MinQuantity <= Quantity <= room quantity
//
// All mutations go through the named transition methods below; fields are
// never assigned directly by callers.
type Selection struct {
	StartDate          *types.Date
	EndDate            *types.Date
	Adults             int
	Children           int
	Quantity           int
	RatePlanInstanceID *string
	TotalPrice         decimal.Decimal
	Duration           int // nights
}

// NewSelection returns a selection in the Empty stage with default counters
func NewSelection() Selection {
	return Selection{
		Adults:     DefaultAdults,
		Children:   DefaultChildren,
		Quantity:   DefaultQuantity,
		TotalPrice: decimal.Zero,
	}
}

// Stage derives the current selector stage from the chosen dates
func (s *Selection) Stage() SelectionStage {
	switch {
	case s.StartDate == nil:
		return StageEmpty
	case s.EndDate == nil:
		return StageStartSelected
	default:
		return StageRangeSelected
	}
}

// TotalGuests returns the combined adult and child count
func (s *Selection) TotalGuests() int {
	return s.Adults + s.Children
}

// IsComplete returns true when the selection can be submitted:
// both dates chosen and a rate-plan instance resolved
func (s *Selection) IsComplete() bool {
	return s.StartDate != nil && s.EndDate != nil && s.RatePlanInstanceID != nil
}

// SelectDate applies one calendar-day click to the selector.
//
// Transition rules:
//   - Empty: the day becomes the check-in date.
//   - StartSelected: a day before the current start re-anchors the start;
//     the start day itself deselects everything; a later day closes the
//     range if every night in between is bookable and the stay meets the
//     minimum-stay constraint, otherwise the day re-anchors the start.
//   - RangeSelected: clicking either boundary clears the range; any other
//     day starts a fresh selection from that day.
//
// An invalid range attempt never produces an error - it silently falls
// back to re-anchoring the start date. That mirrors the calendar UX where
// the failed check-out click simply becomes the new check-in.
//
// Callers must reject clicks on non-selectable days before calling.
func (s *Selection) SelectDate(d types.Date, avail *Availability, minStayNights int) error {
	switch s.Stage() {
	case StageEmpty:
		s.StartDate = &d
		return nil

	case StageStartSelected:
		start := *s.StartDate
		switch {
		case d.IsBefore(start):
			s.StartDate = &d
			return nil
		case d.Equal(start):
			s.ClearDates()
			return nil
		default:
			return s.tryCloseRange(start, d, avail, minStayNights)
		}

	default: // StageRangeSelected
		if d.Equal(*s.StartDate) || d.Equal(*s.EndDate) {
			s.ClearDates()
			return nil
		}
		s.resetDerived()
		s.EndDate = nil
		s.StartDate = &d
		return nil
	}
}

// tryCloseRange validates the span [start, end) and either closes the
// range or re-anchors the start at end
func (s *Selection) tryCloseRange(start, end types.Date, avail *Availability, minStayNights int) error {
	bookable, err := avail.SpanIsBookable(start, end)
	if err != nil {
		return err
	}

	nights, err := start.DaysUntil(end)
	if err != nil {
		return err
	}

	if !bookable || nights < minStayNights {
		s.StartDate = &end
		s.EndDate = nil
		s.resetDerived()
		return nil
	}

	s.EndDate = &end
	return s.RecomputeTotals(avail)
}

// RecomputeTotals recalculates duration and total price from the current
// range. Must be called on every transition into RangeSelected and
// whenever Quantity changes while a range is selected.
func (s *Selection) RecomputeTotals(avail *Availability) error {
	if s.Stage() != StageRangeSelected {
		s.resetDerived()
		return nil
	}

	total, nights, err := avail.SpanTotal(*s.StartDate, *s.EndDate)
	if err != nil {
		return err
	}

	s.Duration = nights
	s.TotalPrice = total.Mul(decimal.NewFromInt(int64(s.Quantity)))
	return nil
}

// Revalidate re-checks a selected range against freshly loaded
// availability. A range with a night that became blocked or unpriced is
// dropped entirely; a still-valid range gets its totals recomputed.
func (s *Selection) Revalidate(avail *Availability) error {
	if s.Stage() != StageRangeSelected {
		return nil
	}

	bookable, err := avail.SpanIsBookable(*s.StartDate, *s.EndDate)
	if err != nil {
		return err
	}
	if !bookable {
		s.ClearDates()
		return nil
	}

	return s.RecomputeTotals(avail)
}

// ClearDates resets the date selection to Empty. Counters are kept.
// Invoking it from any stage is idempotent.
func (s *Selection) ClearDates() {
	s.StartDate = nil
	s.EndDate = nil
	s.resetDerived()
}

// Reset returns the whole selection to its initial state:
// no dates, default counters, no resolved rate plan
func (s *Selection) Reset() {
	s.ClearDates()
	s.Adults = DefaultAdults
	s.Children = DefaultChildren
	s.Quantity = DefaultQuantity
	s.RatePlanInstanceID = nil
}

func (s *Selection) resetDerived() {
	s.Duration = 0
	s.TotalPrice = decimal.Zero
}

// InSelectedRange reports whether a day lies strictly between the chosen
// check-in and check-out. This is the purely visual "in range" highlight:
// unlike the blocking and pricing checks it excludes both boundaries.
func (s *Selection) InSelectedRange(d types.Date) bool {
	if s.Stage() != StageRangeSelected {
		return false
	}
	return d.IsAfter(*s.StartDate) && d.IsBefore(*s.EndDate)
}

// IncrementAdults adds one adult if room capacity at the current quantity
// allows it. Returns false on a silently rejected increment.
func (s *Selection) IncrementAdults(room *Room) bool {
	if s.TotalGuests()+1 > room.MaxGuests(s.Quantity) {
		return false
	}
	s.Adults++
	return true
}

// DecrementAdults removes one adult, never going below the minimum
func (s *Selection) DecrementAdults() bool {
	if s.Adults <= MinAdults {
		return false
	}
	s.Adults--
	return true
}

// IncrementChildren adds one child if room capacity at the current
// quantity allows it
func (s *Selection) IncrementChildren(room *Room) bool {
	if s.TotalGuests()+1 > room.MaxGuests(s.Quantity) {
		return false
	}
	s.Children++
	return true
}

// DecrementChildren removes one child, never going below zero
func (s *Selection) DecrementChildren() bool {
	if s.Children <= MinChildren {
		return false
	}
	s.Children--
	return true
}

// IncrementQuantity adds one room unit, capped at the room's available
// quantity
func (s *Selection) IncrementQuantity(room *Room) bool {
	if s.Quantity+1 > room.Quantity {
		return false
	}
	s.Quantity++
	return true
}

// DecrementQuantity removes one room unit. The decrement is rejected
// outright if the current guests would no longer fit into the reduced
// capacity.
func (s *Selection) DecrementQuantity(room *Room) bool {
	if s.Quantity <= MinQuantity {
		return false
	}
	if room.MaxGuests(s.Quantity-1) < s.TotalGuests() {
		return false
	}
	s.Quantity--
	return true
}
