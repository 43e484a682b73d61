package ratedata_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artstay/ArtStay-RetreatService/internal/integrations/propertyservice"
	"github.com/artstay/ArtStay-RetreatService/internal/service/ratedata"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubClient struct {
	bands     []propertyservice.PriceBand
	bandsErr  error
	bandCalls int

	ranges     []propertyservice.BlockedRange
	rangesErr  error
	rangeCalls int

	lastRoomID   string
	lastQuantity int
}

func (c *stubClient) GetPriceBands(_ context.Context, _ string) ([]propertyservice.PriceBand, error) {
	c.bandCalls++
	return c.bands, c.bandsErr
}

func (c *stubClient) GetBlockedRanges(_ context.Context, roomID string, quantity int) ([]propertyservice.BlockedRange, error) {
	c.rangeCalls++
	c.lastRoomID = roomID
	c.lastQuantity = quantity
	return c.ranges, c.rangesErr
}

func TestLoader_LoadsPricesAndBlocks(t *testing.T) {
	client := &stubClient{
		bands: []propertyservice.PriceBand{
			{StartDate: "2030-07-01", EndDate: "2030-07-15", Price: decimal.NewFromInt(100)},
			{StartDate: "2030-07-16", EndDate: "2030-07-31", Price: decimal.NewFromInt(150)},
		},
		ranges: []propertyservice.BlockedRange{
			{StartDate: "2030-07-20", EndDate: "2030-07-21"},
		},
	}
	loader := ratedata.NewLoader(client, nopLogger{})

	result, err := loader.Load(context.Background(), ratedata.Key{
		RoomID: "room-1", Quantity: 2, RatePlanInstanceID: "rrp-2",
	})
	require.NoError(t, err)

	// Порядок интервалов источника сохраняется
	require.Len(t, result.Prices, 2)
	assert.True(t, result.Prices[0].Price.Equal(decimal.NewFromInt(100)))
	assert.True(t, result.Prices[1].Price.Equal(decimal.NewFromInt(150)))
	require.Len(t, result.Blocks, 1)

	assert.Equal(t, "room-1", client.lastRoomID)
	assert.Equal(t, 2, client.lastQuantity)
}

func TestLoader_SkipsPricesWithoutRatePlan(t *testing.T) {
	// GIVEN: No rate-plan instance resolved for the requested occupancy
	// WHEN: Loading rate data
	// THEN: Prices are not fetched and the table stays empty

	client := &stubClient{}
	loader := ratedata.NewLoader(client, nopLogger{})

	result, err := loader.Load(context.Background(), ratedata.Key{RoomID: "room-1", Quantity: 1})
	require.NoError(t, err)

	assert.Equal(t, 0, client.bandCalls)
	assert.Equal(t, 1, client.rangeCalls)
	assert.Empty(t, result.Prices)
}

func TestLoader_UpstreamFailures(t *testing.T) {
	t.Run("price bands fail", func(t *testing.T) {
		client := &stubClient{bandsErr: errors.New("boom")}
		loader := ratedata.NewLoader(client, nopLogger{})

		_, err := loader.Load(context.Background(), ratedata.Key{
			RoomID: "room-1", Quantity: 1, RatePlanInstanceID: "rrp-1",
		})
		assert.ErrorIs(t, err, ratedata.ErrUpstream)
	})

	t.Run("blocked ranges fail", func(t *testing.T) {
		client := &stubClient{rangesErr: errors.New("boom")}
		loader := ratedata.NewLoader(client, nopLogger{})

		_, err := loader.Load(context.Background(), ratedata.Key{
			RoomID: "room-1", Quantity: 1, RatePlanInstanceID: "rrp-1",
		})
		assert.ErrorIs(t, err, ratedata.ErrUpstream)
	})
}
