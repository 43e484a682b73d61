package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artstay/ArtStay-RetreatService/internal/domain"
	"github.com/artstay/ArtStay-RetreatService/pkg/types"
)

func selectDate(t *testing.T, s *domain.Selection, avail *domain.Availability, day string, minStay int) {
	t.Helper()
	require.NoError(t, s.SelectDate(types.Date(day), avail, minStay))
}

func TestSelection_FirstClickBecomesCheckIn(t *testing.T) {
	// GIVEN: An empty selection
	// WHEN: Clicking July 10
	// THEN: July 10 becomes the check-in date, stage is StartSelected

	avail := julyAvail("2026-07-01", 100)
	sel := domain.NewSelection()

	selectDate(t, &sel, &avail, "2026-07-10", 1)

	assert.Equal(t, domain.StageStartSelected, sel.Stage())
	assert.Equal(t, types.Date("2026-07-10"), *sel.StartDate)
	assert.Nil(t, sel.EndDate)
}

func TestSelection_EarlierClickReanchorsStart(t *testing.T) {
	avail := julyAvail("2026-07-01", 100)
	sel := domain.NewSelection()

	selectDate(t, &sel, &avail, "2026-07-10", 1)
	selectDate(t, &sel, &avail, "2026-07-05", 1)

	assert.Equal(t, domain.StageStartSelected, sel.Stage())
	assert.Equal(t, types.Date("2026-07-05"), *sel.StartDate)
}

func TestSelection_SameDayClickDeselects(t *testing.T) {
	avail := julyAvail("2026-07-01", 100)
	sel := domain.NewSelection()

	selectDate(t, &sel, &avail, "2026-07-10", 1)
	selectDate(t, &sel, &avail, "2026-07-10", 1)

	assert.Equal(t, domain.StageEmpty, sel.Stage())
	assert.Nil(t, sel.StartDate)
}

func TestSelection_SecondClickClosesRange(t *testing.T) {
	// GIVEN: Check-in on July 10, nightly price 100, two rooms selected
	// WHEN: Clicking July 13 as check-out
	// THEN: Range closes with 3 nights at 100 each, doubled by quantity

	avail := julyAvail("2026-07-01", 100)
	sel := domain.NewSelection()
	sel.Quantity = 2

	selectDate(t, &sel, &avail, "2026-07-10", 1)
	selectDate(t, &sel, &avail, "2026-07-13", 1)

	assert.Equal(t, domain.StageRangeSelected, sel.Stage())
	assert.Equal(t, types.Date("2026-07-10"), *sel.StartDate)
	assert.Equal(t, types.Date("2026-07-13"), *sel.EndDate)
	assert.Equal(t, 3, sel.Duration)
	assert.True(t, sel.TotalPrice.Equal(decimal.NewFromInt(600)))
}

func TestSelection_BlockedNightInsideRangeReanchors(t *testing.T) {
	// GIVEN: Check-in on July 10, July 12 is blocked
	// WHEN: Clicking July 14 as check-out
	// THEN: The range does not close - July 14 silently becomes the new check-in

	avail := julyAvail("2026-07-01", 100, blocked("2026-07-12", "2026-07-12"))
	sel := domain.NewSelection()

	selectDate(t, &sel, &avail, "2026-07-10", 1)
	selectDate(t, &sel, &avail, "2026-07-14", 1)

	assert.Equal(t, domain.StageStartSelected, sel.Stage())
	assert.Equal(t, types.Date("2026-07-14"), *sel.StartDate)
	assert.Nil(t, sel.EndDate)
	assert.True(t, sel.TotalPrice.IsZero())
}

func TestSelection_MinimumStayReanchors(t *testing.T) {
	// GIVEN: A room requiring at least 3 nights, check-in on July 10
	// WHEN: Clicking July 12 (a 2-night stay)
	// THEN: The click re-anchors the check-in instead of closing the range

	avail := julyAvail("2026-07-01", 100)
	sel := domain.NewSelection()

	selectDate(t, &sel, &avail, "2026-07-10", 3)
	selectDate(t, &sel, &avail, "2026-07-12", 3)

	assert.Equal(t, domain.StageStartSelected, sel.Stage())
	assert.Equal(t, types.Date("2026-07-12"), *sel.StartDate)

	// A 3-night stay from the new anchor closes normally
	selectDate(t, &sel, &avail, "2026-07-15", 3)
	assert.Equal(t, domain.StageRangeSelected, sel.Stage())
	assert.Equal(t, 3, sel.Duration)
}

func TestSelection_BoundaryClickClearsRange(t *testing.T) {
	avail := julyAvail("2026-07-01", 100)

	for _, boundary := range []string{"2026-07-10", "2026-07-13"} {
		sel := domain.NewSelection()
		selectDate(t, &sel, &avail, "2026-07-10", 1)
		selectDate(t, &sel, &avail, "2026-07-13", 1)
		require.Equal(t, domain.StageRangeSelected, sel.Stage())

		selectDate(t, &sel, &avail, boundary, 1)

		assert.Equal(t, domain.StageEmpty, sel.Stage())
		assert.Nil(t, sel.StartDate)
		assert.Nil(t, sel.EndDate)
		assert.True(t, sel.TotalPrice.IsZero())
	}
}

func TestSelection_MidRangeClickStartsFreshSelection(t *testing.T) {
	// GIVEN: A selected range July 10-13
	// WHEN: Clicking July 20, a day outside the boundaries
	// THEN: July 20 starts a fresh selection

	avail := julyAvail("2026-07-01", 100)
	sel := domain.NewSelection()

	selectDate(t, &sel, &avail, "2026-07-10", 1)
	selectDate(t, &sel, &avail, "2026-07-13", 1)
	selectDate(t, &sel, &avail, "2026-07-20", 1)

	assert.Equal(t, domain.StageStartSelected, sel.Stage())
	assert.Equal(t, types.Date("2026-07-20"), *sel.StartDate)
	assert.Nil(t, sel.EndDate)
	assert.Equal(t, 0, sel.Duration)
}

func TestSelection_InSelectedRange_ExcludesBoundaries(t *testing.T) {
	// The visual highlight excludes check-in and check-out, unlike the
	// inclusive blocking and pricing checks

	avail := julyAvail("2026-07-01", 100)
	sel := domain.NewSelection()

	selectDate(t, &sel, &avail, "2026-07-10", 1)
	selectDate(t, &sel, &avail, "2026-07-13", 1)

	assert.False(t, sel.InSelectedRange("2026-07-10"))
	assert.False(t, sel.InSelectedRange("2026-07-13"))
	assert.True(t, sel.InSelectedRange("2026-07-11"))
	assert.True(t, sel.InSelectedRange("2026-07-12"))
	assert.False(t, sel.InSelectedRange("2026-07-14"))
}

func TestSelection_Revalidate_DropsNewlyBlockedRange(t *testing.T) {
	// GIVEN: A selected range July 10-13
	// WHEN: Fresh availability arrives with July 11 blocked
	// THEN: The whole range is dropped

	avail := julyAvail("2026-07-01", 100)
	sel := domain.NewSelection()
	selectDate(t, &sel, &avail, "2026-07-10", 1)
	selectDate(t, &sel, &avail, "2026-07-13", 1)

	fresh := julyAvail("2026-07-01", 100, blocked("2026-07-11", "2026-07-11"))
	require.NoError(t, sel.Revalidate(&fresh))

	assert.Equal(t, domain.StageEmpty, sel.Stage())
	assert.True(t, sel.TotalPrice.IsZero())
}

func TestSelection_Revalidate_RecomputesValidRange(t *testing.T) {
	// GIVEN: A selected range July 10-13 at 100 per night
	// WHEN: Fresh availability arrives with a 150 nightly rate
	// THEN: The range survives and the total reflects the new rate

	avail := julyAvail("2026-07-01", 100)
	sel := domain.NewSelection()
	selectDate(t, &sel, &avail, "2026-07-10", 1)
	selectDate(t, &sel, &avail, "2026-07-13", 1)

	fresh := julyAvail("2026-07-01", 150)
	require.NoError(t, sel.Revalidate(&fresh))

	assert.Equal(t, domain.StageRangeSelected, sel.Stage())
	assert.True(t, sel.TotalPrice.Equal(decimal.NewFromInt(450)))
}

func TestSelection_ClearDates_KeepsCounters(t *testing.T) {
	avail := julyAvail("2026-07-01", 100)
	sel := domain.NewSelection()
	sel.Adults = 3
	sel.Children = 2
	selectDate(t, &sel, &avail, "2026-07-10", 1)

	sel.ClearDates()
	// Idempotent from any stage
	sel.ClearDates()

	assert.Equal(t, domain.StageEmpty, sel.Stage())
	assert.Equal(t, 3, sel.Adults)
	assert.Equal(t, 2, sel.Children)
}

func TestSelection_Reset_RestoresDefaults(t *testing.T) {
	avail := julyAvail("2026-07-01", 100)
	sel := domain.NewSelection()
	sel.Adults = 3
	sel.Children = 2
	sel.Quantity = 2
	rrpID := "rrp-4"
	sel.RatePlanInstanceID = &rrpID
	selectDate(t, &sel, &avail, "2026-07-10", 1)

	sel.Reset()

	assert.Equal(t, domain.StageEmpty, sel.Stage())
	assert.Equal(t, domain.DefaultAdults, sel.Adults)
	assert.Equal(t, domain.DefaultChildren, sel.Children)
	assert.Equal(t, domain.DefaultQuantity, sel.Quantity)
	assert.Nil(t, sel.RatePlanInstanceID)
}

func TestSelection_CounterBounds(t *testing.T) {
	// Room: capacity 2 per unit, 3 units available
	room := domain.Room{ID: "room-1", Capacity: 2, Quantity: 3, IsActive: true}

	t.Run("adults capped by capacity at current quantity", func(t *testing.T) {
		sel := domain.NewSelection() // 1 adult, quantity 1

		assert.True(t, sel.IncrementAdults(&room))  // 2 guests of 2
		assert.False(t, sel.IncrementAdults(&room)) // silently rejected
		assert.Equal(t, 2, sel.Adults)
	})

	t.Run("adults never below minimum", func(t *testing.T) {
		sel := domain.NewSelection()

		assert.False(t, sel.DecrementAdults())
		assert.Equal(t, domain.MinAdults, sel.Adults)
	})

	t.Run("children share capacity with adults", func(t *testing.T) {
		sel := domain.NewSelection() // 1 adult of 2 capacity

		assert.True(t, sel.IncrementChildren(&room))
		assert.False(t, sel.IncrementChildren(&room))
		assert.Equal(t, 1, sel.Children)

		assert.True(t, sel.DecrementChildren())
		assert.False(t, sel.DecrementChildren())
		assert.Equal(t, 0, sel.Children)
	})

	t.Run("quantity capped by room inventory", func(t *testing.T) {
		sel := domain.NewSelection()

		assert.True(t, sel.IncrementQuantity(&room))
		assert.True(t, sel.IncrementQuantity(&room))
		assert.False(t, sel.IncrementQuantity(&room))
		assert.Equal(t, 3, sel.Quantity)
	})

	t.Run("quantity decrement rejected when guests no longer fit", func(t *testing.T) {
		sel := domain.NewSelection()
		sel.Quantity = 2
		sel.Adults = 2
		sel.Children = 1 // 3 guests need 2 units of capacity 2

		assert.False(t, sel.DecrementQuantity(&room))
		assert.Equal(t, 2, sel.Quantity)

		sel.Children = 0
		assert.True(t, sel.DecrementQuantity(&room))
		assert.Equal(t, 1, sel.Quantity)
	})

	t.Run("quantity never below minimum", func(t *testing.T) {
		sel := domain.NewSelection()

		assert.False(t, sel.DecrementQuantity(&room))
		assert.Equal(t, domain.MinQuantity, sel.Quantity)
	})
}

func TestSelection_IsComplete(t *testing.T) {
	avail := julyAvail("2026-07-01", 100)
	sel := domain.NewSelection()
	assert.False(t, sel.IsComplete())

	selectDate(t, &sel, &avail, "2026-07-10", 1)
	selectDate(t, &sel, &avail, "2026-07-13", 1)
	assert.False(t, sel.IsComplete()) // no rate-plan instance yet

	rrpID := "rrp-2"
	sel.RatePlanInstanceID = &rrpID
	assert.True(t, sel.IsComplete())
}
