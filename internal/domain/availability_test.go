package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artstay/ArtStay-RetreatService/internal/domain"
	"github.com/artstay/ArtStay-RetreatService/pkg/types"
)

// julyAvail returns availability with one price band covering the whole of
// July 2026 at the given nightly price
func julyAvail(today string, nightly int64, blocks ...domain.BlockedDateRange) domain.Availability {
	return domain.Availability{
		Today:  types.Date(today),
		Prices: domain.PriceTable{band("2026-07-01", "2026-07-31", nightly)},
		Blocks: domain.BlockList(blocks),
	}
}

func TestAvailability_NightIsBookable(t *testing.T) {
	avail := julyAvail("2026-07-01", 100, blocked("2026-07-15", "2026-07-16"))

	assert.True(t, avail.NightIsBookable("2026-07-10"))

	// Blocked night
	assert.False(t, avail.NightIsBookable("2026-07-15"))

	// No rate outside the band: zero price means unavailable
	assert.False(t, avail.NightIsBookable("2026-08-01"))
}

func TestAvailability_IsSelectable_PastDates(t *testing.T) {
	// GIVEN: Today is July 10 and every night is priced
	// WHEN: Checking days around today
	// THEN: Past days are not selectable, today and the future are

	avail := julyAvail("2026-07-10", 100)

	assert.False(t, avail.IsSelectable("2026-07-09"))
	assert.True(t, avail.IsSelectable("2026-07-10"))
	assert.True(t, avail.IsSelectable("2026-07-11"))
}

func TestAvailability_SpanIsBookable_CheckoutNightNotCounted(t *testing.T) {
	// GIVEN: July 15 is blocked
	// WHEN: Checking a stay that checks out on July 15
	// THEN: The span is bookable - the check-out date is not a night of the stay

	avail := julyAvail("2026-07-01", 100, blocked("2026-07-15", "2026-07-15"))

	ok, err := avail.SpanIsBookable("2026-07-12", "2026-07-15")
	require.NoError(t, err)
	assert.True(t, ok)

	// A stay across the blocked night is not bookable
	ok, err = avail.SpanIsBookable("2026-07-14", "2026-07-16")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAvailability_SpanTotal(t *testing.T) {
	avail := julyAvail("2026-07-01", 100)

	total, nights, err := avail.SpanTotal("2026-07-10", "2026-07-13")
	require.NoError(t, err)
	assert.Equal(t, 3, nights)
	assert.True(t, total.Equal(decimal.NewFromInt(300)))
}

func TestAvailability_SpanTotal_MixedBands(t *testing.T) {
	// Two bands with different nightly prices inside one stay

	avail := domain.Availability{
		Today: "2026-07-01",
		Prices: domain.PriceTable{
			band("2026-07-01", "2026-07-10", 100),
			band("2026-07-11", "2026-07-31", 150),
		},
	}

	total, nights, err := avail.SpanTotal("2026-07-09", "2026-07-13")
	require.NoError(t, err)
	assert.Equal(t, 4, nights)
	// Nights: 9th and 10th at 100, 11th and 12th at 150
	assert.True(t, total.Equal(decimal.NewFromInt(500)))
}
