package get_room_calendar

import (
	"github.com/shopspring/decimal"

	getRoomCalendar "github.com/artstay/ArtStay-RetreatService/internal/usecase/get_room_calendar"
	"github.com/artstay/ArtStay-RetreatService/pkg/types"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	RoomID             string        `json:"roomId"`
	Year               int           `json:"year"`
	Month              int           `json:"month"`
	RatePlanInstanceID *string       `json:"rrpId,omitempty"`
	Days               []DayResponse `json:"days"`
}

// DayResponse один день календарной сетки
type DayResponse struct {
	Date       types.Date      `json:"date"`
	Price      decimal.Decimal `json:"price"`
	Blocked    bool            `json:"blocked"`
	Selectable bool            `json:"selectable"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getRoomCalendar.Response) *CalendarResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, day := range resp.Days {
		days = append(days, DayResponse{
			Date:       day.Date,
			Price:      day.Price,
			Blocked:    day.Blocked,
			Selectable: day.Selectable,
		})
	}

	return &CalendarResponse{
		RoomID:             resp.RoomID,
		Year:               resp.Year,
		Month:              resp.Month,
		RatePlanInstanceID: resp.RatePlanInstanceID,
		Days:               days,
	}
}
