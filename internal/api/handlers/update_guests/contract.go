package update_guests

import (
	"context"

	"github.com/artstay/ArtStay-RetreatService/internal/service/sessions/models"
)

type SessionService interface {
	AdjustCounter(ctx context.Context, req *models.AdjustCounterRequest) (*models.AdjustCounterResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
