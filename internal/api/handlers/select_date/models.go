package select_date

import (
	"github.com/shopspring/decimal"

	selectDate "github.com/artstay/ArtStay-RetreatService/internal/usecase/select_date"
	"github.com/artstay/ArtStay-RetreatService/pkg/types"
)

// SelectDateRequest HTTP request model
type SelectDateRequest struct {
	Date string `json:"date"` // "2026-07-14"
}

// SelectionResponse HTTP response model
type SelectionResponse struct {
	SessionID          string          `json:"sessionId"`
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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SelectDateRequest) ToUseCaseRequest(sessionID string) (*selectDate.Request, error) {
	date, err := types.NewDateFromString(r.Date)
	if err != nil {
		return nil, err
	}

	return &selectDate.Request{
		SessionID: sessionID,
		Date:      date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *selectDate.Response) *SelectionResponse {
	return &SelectionResponse{
		SessionID:          resp.SessionID,
		Stage:              resp.Stage,
		StartDate:          resp.StartDate,
		EndDate:            resp.EndDate,
		Adults:             resp.Adults,
		Children:           resp.Children,
		Quantity:           resp.Quantity,
		RatePlanInstanceID: resp.RatePlanInstanceID,
		Duration:           resp.Duration,
		TotalPrice:         resp.TotalPrice,
	}
}
