package get_room_calendar

import (
	"context"
	"time"

	"github.com/artstay/ArtStay-RetreatService/internal/integrations/propertyservice"
	"github.com/artstay/ArtStay-RetreatService/internal/service/ratedata"
)

// PropertyServiceClient интерфейс клиента PropertyService
type PropertyServiceClient interface {
	GetRoom(ctx context.Context, roomID string) (*propertyservice.Room, error)
	GetRatePlans(ctx context.Context, roomID string) ([]propertyservice.RatePlan, error)
}

// RateDataLoader интерфейс загрузчика тарифных данных
type RateDataLoader interface {
	Load(ctx context.Context, key ratedata.Key) (*ratedata.Result, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
