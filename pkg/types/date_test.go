package types_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artstay/ArtStay-RetreatService/pkg/types"
)

func TestNewDateFromString(t *testing.T) {
	d, err := types.NewDateFromString("2026-07-14")
	require.NoError(t, err)
	assert.Equal(t, "2026-07-14", d.String())

	for _, invalid := range []string{"", "14-07-2026", "2026-13-01", "2026-07-32", "not a date"} {
		_, err := types.NewDateFromString(invalid)
		assert.Error(t, err, "expected error for %q", invalid)
	}
}

func TestDate_Comparisons(t *testing.T) {
	earlier := types.Date("2026-07-10")
	later := types.Date("2026-07-11")

	assert.True(t, earlier.IsBefore(later))
	assert.False(t, later.IsBefore(earlier))
	assert.True(t, later.IsAfter(earlier))
	assert.True(t, earlier.Equal("2026-07-10"))
	assert.False(t, earlier.Equal(later))
}

func TestDate_AddDays(t *testing.T) {
	d := types.Date("2026-07-30")

	next, err := d.AddDays(1)
	require.NoError(t, err)
	assert.Equal(t, types.Date("2026-07-31"), next)

	// Month rollover
	next, err = d.AddDays(2)
	require.NoError(t, err)
	assert.Equal(t, types.Date("2026-08-01"), next)

	prev, err := d.AddDays(-30)
	require.NoError(t, err)
	assert.Equal(t, types.Date("2026-06-30"), prev)

	_, err = types.Date("garbage").AddDays(1)
	assert.Error(t, err)
}

func TestDate_DaysUntil(t *testing.T) {
	d := types.Date("2026-07-10")

	n, err := d.DaysUntil("2026-07-13")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = d.DaysUntil("2026-07-08")
	require.NoError(t, err)
	assert.Equal(t, -2, n)

	n, err = d.DaysUntil("2026-07-10")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestDate_NewDateDropsTimeOfDay(t *testing.T) {
	moment := time.Date(2026, time.July, 14, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, types.Date("2026-07-14"), types.NewDate(moment))
}

func TestDate_JSONRoundTrip(t *testing.T) {
	payload, err := json.Marshal(types.Date("2026-07-14"))
	require.NoError(t, err)
	assert.Equal(t, `"2026-07-14"`, string(payload))

	var d types.Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-07-14"`), &d))
	assert.Equal(t, types.Date("2026-07-14"), d)

	// Invalid payloads are rejected at decode time
	assert.Error(t, json.Unmarshal([]byte(`"14-07-2026"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`42`), &d))
}
