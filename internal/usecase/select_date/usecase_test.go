package select_date_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artstay/ArtStay-RetreatService/internal/domain"
	sessionstore "github.com/artstay/ArtStay-RetreatService/internal/infra/storage/sessions"
	selectDate "github.com/artstay/ArtStay-RetreatService/internal/usecase/select_date"
	"github.com/artstay/ArtStay-RetreatService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Даты фиксируются в далеком будущем: use case сверяется с реальными часами

func seedSession(t *testing.T, blocks ...domain.BlockedDateRange) (*selectDate.UseCase, *sessionstore.Store, string) {
	t.Helper()

	store := sessionstore.NewStore(45 * time.Minute)
	rrpID := "rrp-2"
	session := &domain.Session{
		ID: "session-1",
		Room: domain.Room{
			ID: "room-1", Capacity: 2, Quantity: 3, MinimumStay: 1, IsActive: true,
		},
		Selection: domain.NewSelection(),
		Prices: domain.PriceTable{{
			StartDate: "2030-07-01",
			EndDate:   "2030-07-31",
			Price:     decimal.NewFromInt(100),
		}},
		Blocks:         domain.BlockList(blocks),
		RateGeneration: 1,
	}
	session.Selection.RatePlanInstanceID = &rrpID
	require.NoError(t, store.Put(context.Background(), session))

	return selectDate.NewUseCase(store, nopLogger{}), store, session.ID
}

func execute(t *testing.T, uc *selectDate.UseCase, sessionID, day string) *selectDate.Response {
	t.Helper()
	resp, err := uc.Execute(context.Background(), &selectDate.Request{
		SessionID: sessionID,
		Date:      types.Date(day),
	})
	require.NoError(t, err)
	return resp
}

func TestSelectDate_TwoClicksCloseRange(t *testing.T) {
	// GIVEN: A session with every July 2030 night priced at 100
	// WHEN: Clicking July 10 then July 13
	// THEN: The range closes with 3 nights for a 300 total

	uc, _, sessionID := seedSession(t)

	resp := execute(t, uc, sessionID, "2030-07-10")
	assert.Equal(t, string(domain.StageStartSelected), resp.Stage)

	resp = execute(t, uc, sessionID, "2030-07-13")
	assert.Equal(t, string(domain.StageRangeSelected), resp.Stage)
	assert.Equal(t, 3, resp.Duration)
	assert.True(t, resp.TotalPrice.Equal(decimal.NewFromInt(300)))
}

func TestSelectDate_BlockedDayRejected(t *testing.T) {
	uc, _, sessionID := seedSession(t, domain.BlockedDateRange{
		StartDate: "2030-07-15", EndDate: "2030-07-16",
	})

	_, err := uc.Execute(context.Background(), &selectDate.Request{
		SessionID: sessionID,
		Date:      "2030-07-15",
	})
	assert.ErrorIs(t, err, selectDate.ErrDateNotSelectable)
}

func TestSelectDate_UnpricedDayRejected(t *testing.T) {
	// August has no price band, so its days are not selectable

	uc, _, sessionID := seedSession(t)

	_, err := uc.Execute(context.Background(), &selectDate.Request{
		SessionID: sessionID,
		Date:      "2030-08-01",
	})
	assert.ErrorIs(t, err, selectDate.ErrDateNotSelectable)
}

func TestSelectDate_PastDayRejected(t *testing.T) {
	uc, _, sessionID := seedSession(t)

	_, err := uc.Execute(context.Background(), &selectDate.Request{
		SessionID: sessionID,
		Date:      "2020-07-10",
	})
	assert.ErrorIs(t, err, selectDate.ErrDateNotSelectable)
}

func TestSelectDate_CheckoutOverBlockedNightReanchors(t *testing.T) {
	// GIVEN: July 12 is blocked and check-in is July 10
	// WHEN: Clicking July 14 as check-out
	// THEN: No error - July 14 silently becomes the new check-in

	uc, _, sessionID := seedSession(t, domain.BlockedDateRange{
		StartDate: "2030-07-12", EndDate: "2030-07-12",
	})

	execute(t, uc, sessionID, "2030-07-10")
	resp := execute(t, uc, sessionID, "2030-07-14")

	assert.Equal(t, string(domain.StageStartSelected), resp.Stage)
	require.NotNil(t, resp.StartDate)
	assert.Equal(t, types.Date("2030-07-14"), *resp.StartDate)
	assert.Nil(t, resp.EndDate)
}

func TestSelectDate_MinimumStayEnforced(t *testing.T) {
	uc, store, sessionID := seedSession(t)
	_, err := store.Update(context.Background(), sessionID, func(session *domain.Session) error {
		session.Room.MinimumStay = 3
		return nil
	})
	require.NoError(t, err)

	execute(t, uc, sessionID, "2030-07-10")
	resp := execute(t, uc, sessionID, "2030-07-12")

	// Двухдневный диапазон короче минимума - клик переякорил заезд
	assert.Equal(t, string(domain.StageStartSelected), resp.Stage)
	assert.Equal(t, types.Date("2030-07-12"), *resp.StartDate)
}

func TestSelectDate_SessionNotFound(t *testing.T) {
	uc, _, _ := seedSession(t)

	_, err := uc.Execute(context.Background(), &selectDate.Request{
		SessionID: "missing",
		Date:      "2030-07-10",
	})
	assert.ErrorIs(t, err, selectDate.ErrSessionNotFound)
}

func TestSelectDate_Validation(t *testing.T) {
	uc, _, sessionID := seedSession(t)

	_, err := uc.Execute(context.Background(), &selectDate.Request{SessionID: "", Date: "2030-07-10"})
	assert.ErrorIs(t, err, selectDate.ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &selectDate.Request{SessionID: sessionID})
	assert.ErrorIs(t, err, selectDate.ErrInvalidInput)
}
