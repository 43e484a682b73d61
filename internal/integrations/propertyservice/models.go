package propertyservice

import (
	"github.com/shopspring/decimal"

	"github.com/artstay/ArtStay-RetreatService/pkg/types"
)

// Room модель номера из PropertyService
type Room struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Code        string          `json:"code"`
	Capacity    int             `json:"capacity"`
	Quantity    int             `json:"quantity"`
	BasePrice   decimal.Decimal `json:"basePrice"`
	MinimumStay int             `json:"minimumStay"`
	Features    []string        `json:"features"`
	IsActive    bool            `json:"isActive"`
}

// RatePlan модель тарифного плана номера
type RatePlan struct {
	ID          string              `json:"id"`
	RoomID      string              `json:"roomId"`
	Name        string              `json:"name"`
	Occupancies []RatePlanOccupancy `json:"occupancies"`
}

// RatePlanOccupancy пара (вместимость, идентификатор экземпляра тарифа)
type RatePlanOccupancy struct {
	Occupancy int    `json:"occupancy"`
	RRPID     string `json:"rrpId"`
}

// PriceBand ценовой интервал [startDate, endDate] с фиксированной ценой за ночь
type PriceBand struct {
	StartDate types.Date      `json:"startDate"`
	EndDate   types.Date      `json:"endDate"`
	Price     decimal.Decimal `json:"price"`
	PlanCode  *string         `json:"planCode,omitempty"`
}

// BlockedRange интервал дат, закрытый для бронирования
type BlockedRange struct {
	StartDate types.Date `json:"startDate"`
	EndDate   types.Date `json:"endDate"`
}

// BlockedRangesRequest запрос заблокированных интервалов
// Интервалы зависят от запрошенного количества номеров
type BlockedRangesRequest struct {
	RoomID   string `json:"roomId"`
	Quantity int    `json:"quantity"`
}

// ReservationRequest запрос на создание бронирования
type ReservationRequest struct {
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	Country        string     `json:"country"`
	City           string     `json:"city"`
	Address        string     `json:"address"`
	Zip            string     `json:"zip"`
	DateOfBirth    types.Date `json:"dateOfBirth"`
	ArrivalTime    *string    `json:"arrivalTime,omitempty"`
	AdditionalInfo *string    `json:"additionalInfo,omitempty"`

	StartDate          types.Date      `json:"startDate"`
	EndDate            types.Date      `json:"endDate"`
	Adults             int             `json:"adults"`
	Children           int             `json:"children"`
	Quantity           int             `json:"quantity"`
	RatePlanInstanceID string          `json:"rrpId"`
	TotalAmount        decimal.Decimal `json:"totalAmount"`
	Duration           int             `json:"duration"`
	RoomID             string          `json:"roomId"`
}

// ErrorResponse модель ошибки от PropertyService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
