package get_room_calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/artstay/ArtStay-RetreatService/internal/domain"
	propertyClient "github.com/artstay/ArtStay-RetreatService/internal/integrations/propertyservice"
	"github.com/artstay/ArtStay-RetreatService/internal/service/ratedata"
	"github.com/artstay/ArtStay-RetreatService/pkg/types"
)

// UseCase use case получения календарной сетки номера на месяц
//
// Сетка не привязана к сессии: подбор тарифа и загрузка данных выполняются
// по переданным счетчикам. Листание месяцев на клиенте меняет только окно
// отображения и не трогает состояние выбора
type UseCase struct {
	client       PropertyServiceClient
	loader       RateDataLoader
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client PropertyServiceClient, loader RateDataLoader, logger Logger) *UseCase {
	return &UseCase{
		client:       client,
		loader:       loader,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetRoomCalendar: room=%s, year=%d, month=%d, adults=%d, children=%d, quantity=%d",
		req.RoomID, req.Year, req.Month, req.Adults, req.Children, req.Quantity)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetRoomCalendar: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущую дату
	today := types.NewDate(uc.timeProvider.Now())

	// 3. Получаем номер
	room, err := uc.client.GetRoom(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, propertyClient.ErrRoomNotFound) {
			uc.logger.Warn("GetRoomCalendar: room id=%s not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("GetRoomCalendar: failed to get room id=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	if !room.IsActive || room.Quantity <= 0 {
		uc.logger.Warn("GetRoomCalendar: room id=%s is not bookable", req.RoomID)
		return nil, ErrRoomNotBookable
	}

	// 4. Получаем тарифные планы номера
	plans, err := uc.client.GetRatePlans(ctx, req.RoomID)
	if err != nil {
		uc.logger.Error("GetRoomCalendar: failed to get rate plans for room id=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get rate plans: %v", ErrInternal, err)
	}

	// 5. Подбираем экземпляр тарифа под количество гостей
	// Подбор должен завершиться до загрузки цен: запрос цен ключуется
	// идентификатором подобранного тарифа
	var rrpID *string
	key := ratedata.Key{RoomID: req.RoomID, Quantity: req.Quantity}
	if matched, ok := domain.MatchRatePlan(req.Adults, req.Children, toDomainRatePlans(plans)); ok {
		rrpID = &matched
		key.RatePlanInstanceID = matched
	}

	// 6. Загружаем ценовые интервалы и заблокированные даты
	result, err := uc.loader.Load(ctx, key)
	if err != nil {
		uc.logger.Error("GetRoomCalendar: rate data load failed for room id=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: %v", ErrRateDataUnavailable, err)
	}

	// 7. Строим сетку месяца
	avail := domain.Availability{
		Today:  today,
		Prices: result.Prices,
		Blocks: result.Blocks,
	}
	days := generateMonthGrid(req.Year, time.Month(req.Month), &avail)

	uc.logger.Info("GetRoomCalendar: generated %d days for room=%s, %d-%02d, rrp_id=%v",
		len(days), req.RoomID, req.Year, req.Month, rrpID)

	return &Response{
		RoomID:             req.RoomID,
		Year:               req.Year,
		Month:              req.Month,
		RatePlanInstanceID: rrpID,
		Days:               days,
	}, nil
}

// toDomainRatePlans конвертирует тарифные планы PropertyService в доменные
func toDomainRatePlans(plans []propertyClient.RatePlan) []domain.RatePlan {
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
