package create_reservation

import (
	"github.com/shopspring/decimal"

	"github.com/artstay/ArtStay-RetreatService/internal/domain"
	"github.com/artstay/ArtStay-RetreatService/internal/integrations/propertyservice"
	"github.com/artstay/ArtStay-RetreatService/pkg/types"
)

// Request модель запроса на оформление бронирования
// Контактные данные гостя плюс ID сессии с завершенным выбором
type Request struct {
	SessionID string

	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Country        string
	City           string
	Address        string
	Zip            string
	DateOfBirth    types.Date
	ArrivalTime    *string // "HH:MM", опционально
	AdditionalInfo *string
}

// Response итог отправленного бронирования
type Response struct {
	RoomID             string
	StartDate          types.Date
	EndDate            types.Date
	Adults             int
	Children           int
	Quantity           int
	RatePlanInstanceID string
	TotalAmount        decimal.Decimal
	Duration           int // ночей
}

// toReservationRequest собирает плоский payload для PropertyService
// из контактных данных и завершенного выбора сессии
func toReservationRequest(req *Request, session *domain.Session) *propertyservice.ReservationRequest {
	sel := session.Selection
	return &propertyservice.ReservationRequest{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		Country:        req.Country,
		City:           req.City,
		Address:        req.Address,
		Zip:            req.Zip,
		DateOfBirth:    req.DateOfBirth,
		ArrivalTime:    req.ArrivalTime,
		AdditionalInfo: req.AdditionalInfo,

		StartDate:          *sel.StartDate,
		EndDate:            *sel.EndDate,
		Adults:             sel.Adults,
		Children:           sel.Children,
		Quantity:           sel.Quantity,
		RatePlanInstanceID: *sel.RatePlanInstanceID,
		TotalAmount:        sel.TotalPrice,
		Duration:           sel.Duration,
		RoomID:             session.Room.ID,
	}
}

// fromReservationRequest собирает ответ usecase из отправленного payload
func fromReservationRequest(reservation *propertyservice.ReservationRequest) *Response {
	return &Response{
		RoomID:             reservation.RoomID,
		StartDate:          reservation.StartDate,
		EndDate:            reservation.EndDate,
		Adults:             reservation.Adults,
		Children:           reservation.Children,
		Quantity:           reservation.Quantity,
		RatePlanInstanceID: reservation.RatePlanInstanceID,
		TotalAmount:        reservation.TotalAmount,
		Duration:           reservation.Duration,
	}
}
