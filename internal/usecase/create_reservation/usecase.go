package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/artstay/ArtStay-RetreatService/internal/domain"
	sessionstore "github.com/artstay/ArtStay-RetreatService/internal/infra/storage/sessions"
	propertyClient "github.com/artstay/ArtStay-RetreatService/internal/integrations/propertyservice"
)

// UseCase use case оформления бронирования
//
// Собирает из завершенного выбора сессии и контактных данных гостя
// итоговый payload и отправляет его в PropertyService. Запрос выполняется
// ровно один раз - автоматический повтор создания бронирования рискует
// задвоить бронь при сетевой ошибке
type UseCase struct {
	store        SessionStore
	client       PropertyServiceClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store SessionStore, client PropertyServiceClient, logger Logger) *UseCase {
	return &UseCase{
		store:        store,
		client:       client,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case оформления бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: session=%s", req.SessionID)

	// 1. Валидация контактных данных
	if err := validateRequest(req, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем сессию
	session, err := uc.store.Get(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, sessionstore.ErrSessionNotFound) {
			uc.logger.Warn("CreateReservation: session id=%s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("CreateReservation: store error for session id=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
	}

	// 3. Охранное условие: без дат, тарифа или номера отправка не выполняется
	if session.Room.ID == "" || !session.Selection.IsComplete() {
		uc.logger.Warn("CreateReservation: selection incomplete for session id=%s (stage=%s, rrp_id=%v)",
			req.SessionID, session.Selection.Stage(), session.Selection.RatePlanInstanceID)
		return nil, ErrSelectionIncomplete
	}

	// 4. Собираем payload бронирования
	reservation := toReservationRequest(req, session)

	// 5. Отправляем в PropertyService
	if err := uc.client.CreateReservation(ctx, reservation); err != nil {
		var rejected *propertyClient.ReservationRejectedError
		if errors.As(err, &rejected) {
			// Backend отклонил бронирование (например, номер успели забрать)
			// Состояние выбора сохраняется - гость может повторить вручную
			uc.logger.Warn("CreateReservation: rejected for session id=%s: %s", req.SessionID, rejected.Message)
			return nil, &RejectionError{Message: rejected.Message}
		}
		uc.logger.Error("CreateReservation: submission failed for session id=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to submit reservation: %v", ErrInternal, err)
	}

	// 6. Успех: возвращаем выбор сессии в начальное состояние
	if _, err := uc.store.Update(ctx, req.SessionID, func(session *domain.Session) error {
		session.Selection.Reset()

		// Тариф подбирается заново под счетчики по умолчанию; рост поколения
		// отбрасывает ответы загрузок, запущенных до отправки
		if rrpID, ok := domain.MatchRatePlan(
			session.Selection.Adults, session.Selection.Children, session.RatePlans,
		); ok {
			session.Selection.RatePlanInstanceID = &rrpID
		}
		session.RateGeneration++
		return nil
	}); err != nil && !errors.Is(err, sessionstore.ErrSessionNotFound) {
		// Бронирование уже создано - ошибку сброса только логируем
		uc.logger.Error("CreateReservation: failed to reset session id=%s after submit: %v", req.SessionID, err)
	}

	uc.logger.Info("CreateReservation: reservation submitted for session id=%s, room_id=%s, %s..%s, total=%s",
		req.SessionID, reservation.RoomID, reservation.StartDate, reservation.EndDate, reservation.TotalAmount)
	return fromReservationRequest(reservation), nil
}
