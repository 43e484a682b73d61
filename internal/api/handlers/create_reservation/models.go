package create_reservation

import (
	"github.com/shopspring/decimal"

	createReservation "github.com/artstay/ArtStay-RetreatService/internal/usecase/create_reservation"
	"github.com/artstay/ArtStay-RetreatService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Country        string  `json:"country"`
	City           string  `json:"city"`
	Address        string  `json:"address"`
	Zip            string  `json:"zip"`
	DateOfBirth    string  `json:"dateOfBirth"` // "1990-05-21"
	ArrivalTime    *string `json:"arrivalTime,omitempty"`
	AdditionalInfo *string `json:"additionalInfo,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	RoomID             string          `json:"roomId"`
	StartDate          types.Date      `json:"startDate"`
	EndDate            types.Date      `json:"endDate"`
	Adults             int             `json:"adults"`
	Children           int             `json:"children"`
	Quantity           int             `json:"quantity"`
	RatePlanInstanceID string          `json:"rrpId"`
	TotalAmount        decimal.Decimal `json:"totalAmount"`
	Duration           int             `json:"duration"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(sessionID string) (*createReservation.Request, error) {
	dateOfBirth, err := types.NewDateFromString(r.DateOfBirth)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		SessionID:      sessionID,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Phone:          r.Phone,
		Country:        r.Country,
		City:           r.City,
		Address:        r.Address,
		Zip:            r.Zip,
		DateOfBirth:    dateOfBirth,
		ArrivalTime:    r.ArrivalTime,
		AdditionalInfo: r.AdditionalInfo,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		RoomID:             resp.RoomID,
		StartDate:          resp.StartDate,
		EndDate:            resp.EndDate,
		Adults:             resp.Adults,
		Children:           resp.Children,
		Quantity:           resp.Quantity,
		RatePlanInstanceID: resp.RatePlanInstanceID,
		TotalAmount:        resp.TotalAmount,
		Duration:           resp.Duration,
	}
}
