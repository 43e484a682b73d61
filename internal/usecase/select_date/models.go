package select_date

import (
	"github.com/shopspring/decimal"

	"github.com/artstay/ArtStay-RetreatService/internal/domain"
	"github.com/artstay/ArtStay-RetreatService/pkg/types"
)

// Request модель запроса на выбор даты в календаре
type Request struct {
	SessionID string     // ID сессии бронирования
	Date      types.Date // Дата, по которой кликнул гость
}

// Response состояние выбора после перехода
type Response struct {
	SessionID          string
	Stage              string
	StartDate          *types.Date
	EndDate            *types.Date
	Adults             int
	Children           int
	Quantity           int
	RatePlanInstanceID *string
	Duration           int             // ночей
	TotalPrice         decimal.Decimal // сумма за все ночи * количество номеров
}

// fromDomainSession собирает ответ из состояния сессии
func fromDomainSession(session *domain.Session) *Response {
	sel := session.Selection
	return &Response{
		SessionID:          session.ID,
		Stage:              string(sel.Stage()),
		StartDate:          sel.StartDate,
		EndDate:            sel.EndDate,
		Adults:             sel.Adults,
		Children:           sel.Children,
		Quantity:           sel.Quantity,
		RatePlanInstanceID: sel.RatePlanInstanceID,
		Duration:           sel.Duration,
		TotalPrice:         sel.TotalPrice,
	}
}
