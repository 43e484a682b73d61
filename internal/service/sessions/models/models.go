package models

import (
	"github.com/shopspring/decimal"

	"github.com/artstay/ArtStay-RetreatService/internal/domain"
	"github.com/artstay/ArtStay-RetreatService/internal/integrations/propertyservice"
	"github.com/artstay/ArtStay-RetreatService/pkg/types"
)

// Counter имя счетчика сессии
type Counter string

const (
	CounterAdults   Counter = "adults"
	CounterChildren Counter = "children"
	CounterQuantity Counter = "quantity"
)

// Operation операция над счетчиком
type Operation string

const (
	OperationIncrement Operation = "increment"
	OperationDecrement Operation = "decrement"
)

// CreateSessionRequest запрос на создание сессии бронирования
// Счетчики опциональны - по умолчанию 1 взрослый, без детей, один номер
type CreateSessionRequest struct {
	RoomID   string `json:"roomId"`
	Adults   *int   `json:"adults,omitempty"`
	Children *int   `json:"children,omitempty"`
	Quantity *int   `json:"quantity,omitempty"`
}

// AdjustCounterRequest запрос на изменение счетчика сессии
type AdjustCounterRequest struct {
	SessionID string    `json:"-"`
	Counter   Counter   `json:"counter"`
	Operation Operation `json:"operation"`
}

// AdjustCounterResponse результат изменения счетчика
// Applied = false означает молчаливый отказ: граница счетчика достигнута,
// состояние сессии не изменилось
type AdjustCounterResponse struct {
	Applied bool             `json:"applied"`
	Session *SessionResponse `json:"session"`
}

// RoomSummary данные номера в ответе сессии
type RoomSummary struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Code        string          `json:"code"`
	Capacity    int             `json:"capacity"`
	Quantity    int             `json:"quantity"`
	BasePrice   decimal.Decimal `json:"basePrice"`
	MinimumStay int             `json:"minimumStay"`
	Features    []string        `json:"features"`
}

// SessionResponse модель сессии бронирования для вызывающего слоя
type SessionResponse struct {
	ID                 string          `json:"id"`
	Room               RoomSummary     `json:"room"`
	Stage              string          `json:"stage"`
	StartDate          *types.Date     `json:"startDate,omitempty"`
	EndDate            *types.Date     `json:"endDate,omitempty"`
	Adults             int             `json:"adults"`
	Children           int             `json:"children"`
	Quantity           int             `json:"quantity"`
	RatePlanInstanceID *string         `json:"rrpId,omitempty"`
	Duration           int             `json:"duration"`
	TotalPrice         decimal.Decimal `json:"totalPrice"`
}

// FromDomainSession конвертирует доменную сессию в ответ сервиса
func FromDomainSession(s *domain.Session) *SessionResponse {
	sel := s.Selection
	return &SessionResponse{
		ID: s.ID,
		Room: RoomSummary{
			ID:          s.Room.ID,
			Name:        s.Room.Name,
			Code:        s.Room.Code,
			Capacity:    s.Room.Capacity,
			Quantity:    s.Room.Quantity,
			BasePrice:   s.Room.BasePrice,
			MinimumStay: s.Room.MinimumStay,
			Features:    s.Room.Features,
		},
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

// ToDomainRoom конвертирует модель номера PropertyService в доменную
func ToDomainRoom(r *propertyservice.Room) domain.Room {
	return domain.Room{
		ID:          r.ID,
		Name:        r.Name,
		Code:        r.Code,
		Capacity:    r.Capacity,
		Quantity:    r.Quantity,
		BasePrice:   r.BasePrice,
		MinimumStay: r.MinimumStay,
		Features:    r.Features,
		IsActive:    r.IsActive,
	}
}

// ToDomainRatePlans конвертирует тарифные планы PropertyService в доменные
func ToDomainRatePlans(plans []propertyservice.RatePlan) []domain.RatePlan {
	result := make([]domain.RatePlan, 0, len(plans))
	for _, plan := range plans {
		occupancies := make([]domain.RatePlanOccupancy, 0, len(plan.Occupancies))
		for _, occ := range plan.Occupancies {
			occupancies = append(occupancies, domain.RatePlanOccupancy{
				Occupancy:          occ.Occupancy,
				RatePlanInstanceID: occ.RRPID,
			})
		}
		result = append(result, domain.RatePlan{
			ID:          plan.ID,
			RoomID:      plan.RoomID,
			Name:        plan.Name,
			Occupancies: occupancies,
		})
	}
	return result
}
