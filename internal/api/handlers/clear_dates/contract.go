package clear_dates

import (
	"context"

	"github.com/artstay/ArtStay-RetreatService/internal/service/sessions/models"
)

type SessionService interface {
	ClearDates(ctx context.Context, id string) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
