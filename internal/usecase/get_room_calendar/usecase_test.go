package get_room_calendar_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artstay/ArtStay-RetreatService/internal/domain"
	"github.com/artstay/ArtStay-RetreatService/internal/integrations/propertyservice"
	"github.com/artstay/ArtStay-RetreatService/internal/service/ratedata"
	getRoomCalendar "github.com/artstay/ArtStay-RetreatService/internal/usecase/get_room_calendar"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubClient struct {
	room     *propertyservice.Room
	roomErr  error
	plans    []propertyservice.RatePlan
	plansErr error
}

func (c *stubClient) GetRoom(_ context.Context, _ string) (*propertyservice.Room, error) {
	return c.room, c.roomErr
}

func (c *stubClient) GetRatePlans(_ context.Context, _ string) ([]propertyservice.RatePlan, error) {
	return c.plans, c.plansErr
}

type stubLoader struct {
	result *ratedata.Result
	err    error
	keys   []ratedata.Key
}

func (l *stubLoader) Load(_ context.Context, key ratedata.Key) (*ratedata.Result, error) {
	l.keys = append(l.keys, key)
	return l.result, l.err
}

func testRoom() *propertyservice.Room {
	return &propertyservice.Room{ID: "room-1", Name: "Saffron Suite", Capacity: 2, Quantity: 3, IsActive: true}
}

func testPlans() []propertyservice.RatePlan {
	return []propertyservice.RatePlan{{
		ID:     "plan-1",
		RoomID: "room-1",
		Occupancies: []propertyservice.RatePlanOccupancy{
			{Occupancy: 2, RRPID: "rrp-2"},
			{Occupancy: 4, RRPID: "rrp-4"},
		},
	}}
}

// julyResult: июль 2030 по 100 за ночь, 15-16 заблокированы
func julyResult() *ratedata.Result {
	return &ratedata.Result{
		Prices: domain.PriceTable{{
			StartDate: "2030-07-01",
			EndDate:   "2030-07-31",
			Price:     decimal.NewFromInt(100),
		}},
		Blocks: domain.BlockList{{StartDate: "2030-07-15", EndDate: "2030-07-16"}},
	}
}

func calendarRequest() *getRoomCalendar.Request {
	return &getRoomCalendar.Request{
		RoomID:   "room-1",
		Year:     2030,
		Month:    7,
		Adults:   2,
		Children: 0,
		Quantity: 1,
	}
}

func TestGetRoomCalendar_BuildsMonthGrid(t *testing.T) {
	// GIVEN: July 2030 priced at 100 nightly with July 15-16 blocked
	// WHEN: Requesting the July grid for 2 adults
	// THEN: 31 days come back with prices, block flags and selectability

	client := &stubClient{room: testRoom(), plans: testPlans()}
	loader := &stubLoader{result: julyResult()}
	uc := getRoomCalendar.NewUseCase(client, loader, nopLogger{})

	resp, err := uc.Execute(context.Background(), calendarRequest())
	require.NoError(t, err)

	assert.Equal(t, "room-1", resp.RoomID)
	require.NotNil(t, resp.RatePlanInstanceID)
	assert.Equal(t, "rrp-2", *resp.RatePlanInstanceID)
	require.Len(t, resp.Days, 31)

	byDate := make(map[string]getRoomCalendar.Day, len(resp.Days))
	for _, day := range resp.Days {
		byDate[day.Date.String()] = day
	}

	open := byDate["2030-07-10"]
	assert.True(t, open.Price.Equal(decimal.NewFromInt(100)))
	assert.False(t, open.Blocked)
	assert.True(t, open.Selectable)

	closed := byDate["2030-07-15"]
	assert.True(t, closed.Blocked)
	assert.False(t, closed.Selectable)

	// Ключ загрузки отражает счетчики запроса
	require.Len(t, loader.keys, 1)
	assert.Equal(t, ratedata.Key{RoomID: "room-1", Quantity: 1, RatePlanInstanceID: "rrp-2"}, loader.keys[0])
}

func TestGetRoomCalendar_OccupancyDrivesRatePlan(t *testing.T) {
	client := &stubClient{room: testRoom(), plans: testPlans()}
	loader := &stubLoader{result: julyResult()}
	uc := getRoomCalendar.NewUseCase(client, loader, nopLogger{})

	req := calendarRequest()
	req.Adults = 3
	req.Children = 1

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, resp.RatePlanInstanceID)
	assert.Equal(t, "rrp-4", *resp.RatePlanInstanceID)
}

func TestGetRoomCalendar_NoRatePlanMeansUnpricedGrid(t *testing.T) {
	// Без подобранного тарифа цены не загружаются - все дни некликабельны

	client := &stubClient{room: testRoom(), plans: nil}
	loader := &stubLoader{result: &ratedata.Result{}}
	uc := getRoomCalendar.NewUseCase(client, loader, nopLogger{})

	resp, err := uc.Execute(context.Background(), calendarRequest())
	require.NoError(t, err)

	assert.Nil(t, resp.RatePlanInstanceID)
	for _, day := range resp.Days {
		assert.True(t, day.Price.IsZero())
		assert.False(t, day.Selectable)
	}
}

func TestGetRoomCalendar_Errors(t *testing.T) {
	t.Run("room not found", func(t *testing.T) {
		client := &stubClient{roomErr: propertyservice.ErrRoomNotFound}
		uc := getRoomCalendar.NewUseCase(client, &stubLoader{}, nopLogger{})

		_, err := uc.Execute(context.Background(), calendarRequest())
		assert.ErrorIs(t, err, getRoomCalendar.ErrRoomNotFound)
	})

	t.Run("inactive room", func(t *testing.T) {
		room := testRoom()
		room.IsActive = false
		uc := getRoomCalendar.NewUseCase(&stubClient{room: room}, &stubLoader{}, nopLogger{})

		_, err := uc.Execute(context.Background(), calendarRequest())
		assert.ErrorIs(t, err, getRoomCalendar.ErrRoomNotBookable)
	})

	t.Run("rate data unavailable", func(t *testing.T) {
		client := &stubClient{room: testRoom(), plans: testPlans()}
		loader := &stubLoader{err: ratedata.ErrUpstream}
		uc := getRoomCalendar.NewUseCase(client, loader, nopLogger{})

		_, err := uc.Execute(context.Background(), calendarRequest())
		assert.ErrorIs(t, err, getRoomCalendar.ErrRateDataUnavailable)
	})

	t.Run("invalid input", func(t *testing.T) {
		uc := getRoomCalendar.NewUseCase(&stubClient{}, &stubLoader{}, nopLogger{})

		for _, req := range []*getRoomCalendar.Request{
			{RoomID: "", Year: 2030, Month: 7, Adults: 2, Quantity: 1},
			{RoomID: "room-1", Year: 2030, Month: 13, Adults: 2, Quantity: 1},
			{RoomID: "room-1", Year: 1999, Month: 7, Adults: 2, Quantity: 1},
			{RoomID: "room-1", Year: 2030, Month: 7, Adults: 0, Quantity: 1},
			{RoomID: "room-1", Year: 2030, Month: 7, Adults: 2, Quantity: 0},
		} {
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, getRoomCalendar.ErrInvalidInput)
		}
	})
}
