package select_date

import (
	"context"
	"errors"
	"fmt"

	"github.com/artstay/ArtStay-RetreatService/internal/domain"
	sessionstore "github.com/artstay/ArtStay-RetreatService/internal/infra/storage/sessions"
	"github.com/artstay/ArtStay-RetreatService/pkg/types"
)

// UseCase use case выбора даты в календаре бронирования
//
// Реализует двухкликовый выбор диапазона заезд/выезд: первый клик
// фиксирует дату заезда, второй - дату выезда, если каждая ночь между
// ними бронируема. Невалидная попытка закрыть диапазон не является
// ошибкой - клик молча становится новой датой заезда
type UseCase struct {
	store        SessionStore
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store SessionStore, logger Logger) *UseCase {
	return &UseCase{
		store:        store,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет переход селектора дат по клику на день календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SelectDate: session=%s, date=%s", req.SessionID, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SelectDate: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущую дату
	today := types.NewDate(uc.timeProvider.Now())

	// 3. Применяем переход под блокировкой хранилища
	updated, err := uc.store.Update(ctx, req.SessionID, func(session *domain.Session) error {
		avail := session.Availability(today)

		// Прошедшие, заблокированные и бестарифные даты некликабельны
		if !avail.IsSelectable(req.Date) {
			return ErrDateNotSelectable
		}

		return session.Selection.SelectDate(req.Date, &avail, session.Room.MinStayNights())
	})
	if err != nil {
		switch {
		case errors.Is(err, sessionstore.ErrSessionNotFound):
			uc.logger.Warn("SelectDate: session id=%s not found", req.SessionID)
			return nil, ErrSessionNotFound
		case errors.Is(err, ErrDateNotSelectable):
			uc.logger.Warn("SelectDate: date %s not selectable in session id=%s", req.Date, req.SessionID)
			return nil, err
		default:
			uc.logger.Error("SelectDate: failed for session id=%s: %v", req.SessionID, err)
			return nil, fmt.Errorf("%w: failed to apply date selection: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("SelectDate: session=%s, stage=%s, duration=%d, total=%s",
		req.SessionID, updated.Selection.Stage(), updated.Selection.Duration, updated.Selection.TotalPrice)
	return fromDomainSession(updated), nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
