package ratedata

import (
	"context"

	"github.com/artstay/ArtStay-RetreatService/internal/integrations/propertyservice"
)

// PropertyServiceClient интерфейс клиента PropertyService
type PropertyServiceClient interface {
	GetPriceBands(ctx context.Context, ratePlanInstanceID string) ([]propertyservice.PriceBand, error)
	GetBlockedRanges(ctx context.Context, roomID string, quantity int) ([]propertyservice.BlockedRange, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
