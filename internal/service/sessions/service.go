package sessions

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/artstay/ArtStay-RetreatService/internal/domain"
	sessionstore "github.com/artstay/ArtStay-RetreatService/internal/infra/storage/sessions"
	propertyClient "github.com/artstay/ArtStay-RetreatService/internal/integrations/propertyservice"
	"github.com/artstay/ArtStay-RetreatService/internal/service/ratedata"
	"github.com/artstay/ArtStay-RetreatService/internal/service/sessions/models"
	"github.com/artstay/ArtStay-RetreatService/pkg/types"
)

// Service сервис жизненного цикла сессий бронирования
//
// Владеет цепочкой реактивных перерасчетов: изменение счетчиков гостей
// синхронно пересчитывает тариф, затем перезагружает тарифные данные по
// новому ключу и перепроверяет выбранный диапазон дат
type Service struct {
	store        SessionStore
	client       PropertyServiceClient
	loader       RateDataLoader
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса сессий
func NewService(
	store SessionStore,
	client PropertyServiceClient,
	loader RateDataLoader,
	logger Logger,
) *Service {
	return &Service{
		store:        store,
		client:       client,
		loader:       loader,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create открывает новую сессию бронирования для номера
func (s *Service) Create(ctx context.Context, req *models.CreateSessionRequest) (*models.SessionResponse, error) {
	s.logger.Info("CreateSession: room_id=%s", req.RoomID)

	// 1. Валидация входных данных
	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("CreateSession: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем номер
	room, err := s.client.GetRoom(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, propertyClient.ErrRoomNotFound) {
			s.logger.Warn("CreateSession: room id=%s not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("CreateSession: failed to get room id=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	domainRoom := models.ToDomainRoom(room)
	if !domainRoom.IsBookable() {
		s.logger.Warn("CreateSession: room id=%s is not bookable", req.RoomID)
		return nil, ErrRoomNotBookable
	}

	// 3. Получаем тарифные планы номера
	plans, err := s.client.GetRatePlans(ctx, req.RoomID)
	if err != nil {
		s.logger.Error("CreateSession: failed to get rate plans for room id=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get rate plans: %v", ErrInternal, err)
	}

	// 4. Собираем сессию с начальным состоянием выбора
	selection := domain.NewSelection()
	if req.Adults != nil {
		selection.Adults = *req.Adults
	}
	if req.Children != nil {
		selection.Children = *req.Children
	}
	if req.Quantity != nil {
		selection.Quantity = *req.Quantity
	}
	if err := validateSelectionBounds(&selection, &domainRoom); err != nil {
		s.logger.Warn("CreateSession: selection bounds check failed for room id=%s: %v", req.RoomID, err)
		return nil, err
	}

	session := &domain.Session{
		ID:             uuid.NewString(),
		Room:           domainRoom,
		RatePlans:      models.ToDomainRatePlans(plans),
		Selection:      selection,
		RateGeneration: 1,
	}

	// 5. Подбираем экземпляр тарифа под заявленное количество гостей
	s.resolveRatePlan(session)

	// 6. Загружаем тарифные данные для начального ключа
	result, err := s.loader.Load(ctx, s.rateKey(session))
	if err != nil {
		// Календарь остается пустым - даты не выбираются, пока данные не загружены
		s.logger.Error("CreateSession: initial rate data load failed for room id=%s: %v", req.RoomID, err)
	} else {
		session.Prices = result.Prices
		session.Blocks = result.Blocks
	}

	// 7. Сохраняем сессию
	if err := s.store.Put(ctx, session); err != nil {
		s.logger.Error("CreateSession: failed to store session: %v", err)
		return nil, fmt.Errorf("%w: failed to store session: %v", ErrInternal, err)
	}

	s.logger.Info("CreateSession: session id=%s created for room id=%s, rrp_id=%v",
		session.ID, req.RoomID, session.Selection.RatePlanInstanceID)
	return models.FromDomainSession(session), nil
}

// Get возвращает текущее состояние сессии
func (s *Service) Get(ctx context.Context, id string) (*models.SessionResponse, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sessionstore.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: Get - store error: %v", ErrInternal, err)
	}
	return models.FromDomainSession(session), nil
}

// Delete удаляет сессию (гость покинул процесс бронирования)
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, sessionstore.ErrSessionNotFound) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("%w: Delete - store error: %v", ErrInternal, err)
	}
	s.logger.Info("DeleteSession: session id=%s removed", id)
	return nil
}

// ClearDates сбрасывает выбор дат сессии в пустое состояние
// Операция идемпотентна
func (s *Service) ClearDates(ctx context.Context, id string) (*models.SessionResponse, error) {
	updated, err := s.store.Update(ctx, id, func(session *domain.Session) error {
		session.Selection.ClearDates()
		return nil
	})
	if err != nil {
		if errors.Is(err, sessionstore.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: ClearDates - store error: %v", ErrInternal, err)
	}

	s.logger.Info("ClearDates: session id=%s reset to empty selection", id)
	return models.FromDomainSession(updated), nil
}

// AdjustCounter изменяет один из счетчиков сессии (adults/children/quantity)
//
// Выход за границы счетчика - молчаливый отказ (Applied = false), не ошибка.
// Примененное изменение запускает цепочку пересчета:
//  1. синхронный подбор экземпляра тарифа под новое количество гостей
//  2. перезагрузка ценовых интервалов и заблокированных дат по новому ключу
//  3. перепроверка выбранного диапазона и перерасчет итоговой цены
//
// Если за время загрузки ключ сессии успел измениться еще раз, устаревший
// ответ отбрасывается - побеждают данные последнего ключа
func (s *Service) AdjustCounter(ctx context.Context, req *models.AdjustCounterRequest) (*models.AdjustCounterResponse, error) {
	// 1. Валидация входных данных
	if err := validateAdjustRequest(req); err != nil {
		s.logger.Warn("AdjustCounter: validation failed: %v", err)
		return nil, err
	}

	var (
		applied bool
		gen     uint64
		key     ratedata.Key
	)

	// 2. Применяем операцию над счетчиком под блокировкой хранилища
	updated, err := s.store.Update(ctx, req.SessionID, func(session *domain.Session) error {
		ok, opErr := applyCounter(&session.Selection, &session.Room, req.Counter, req.Operation)
		if opErr != nil {
			return opErr
		}
		applied = ok
		if !ok {
			return nil
		}

		// Подбор тарифа выполняется синхронно при каждом изменении счетчиков
		s.resolveRatePlan(session)

		session.RateGeneration++
		gen = session.RateGeneration
		key = s.rateKey(session)
		return nil
	})
	if err != nil {
		if errors.Is(err, sessionstore.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		if errors.Is(err, ErrInvalidInput) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: AdjustCounter - store error: %v", ErrInternal, err)
	}

	if !applied {
		s.logger.Info("AdjustCounter: session id=%s, %s %s rejected at bound",
			req.SessionID, req.Operation, req.Counter)
		return &models.AdjustCounterResponse{Applied: false, Session: models.FromDomainSession(updated)}, nil
	}

	// 3. Загружаем тарифные данные по новому ключу (вне блокировки)
	result, loadErr := s.loader.Load(ctx, key)
	if loadErr != nil {
		s.logger.Error("AdjustCounter: rate data load failed for session id=%s: %v", req.SessionID, loadErr)
	}

	// 4. Записываем результат, если ключ сессии не изменился за время загрузки
	final, err := s.store.Update(ctx, req.SessionID, func(session *domain.Session) error {
		if session.RateGeneration != gen {
			s.logger.Info("AdjustCounter: stale rate data discarded for session id=%s (generation %d != %d)",
				req.SessionID, gen, session.RateGeneration)
			return nil
		}

		if loadErr != nil {
			// Без свежих данных календарь пуст: ни одна дата не бронируема
			session.Prices = nil
			session.Blocks = nil
		} else {
			session.Prices = result.Prices
			session.Blocks = result.Blocks
		}

		avail := session.Availability(types.NewDate(s.timeProvider.Now()))
		return session.Selection.Revalidate(&avail)
	})
	if err != nil {
		if errors.Is(err, sessionstore.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: AdjustCounter - revalidation error: %v", ErrInternal, err)
	}

	s.logger.Info("AdjustCounter: session id=%s, %s %s applied, adults=%d, children=%d, quantity=%d",
		req.SessionID, req.Operation, req.Counter,
		final.Selection.Adults, final.Selection.Children, final.Selection.Quantity)
	return &models.AdjustCounterResponse{Applied: true, Session: models.FromDomainSession(final)}, nil
}

// resolveRatePlan подбирает экземпляр тарифа под текущее количество гостей
func (s *Service) resolveRatePlan(session *domain.Session) {
	rrpID, ok := domain.MatchRatePlan(session.Selection.Adults, session.Selection.Children, session.RatePlans)
	if !ok {
		session.Selection.RatePlanInstanceID = nil
		return
	}
	session.Selection.RatePlanInstanceID = &rrpID
}

// rateKey возвращает текущий ключ тарифных данных сессии
func (s *Service) rateKey(session *domain.Session) ratedata.Key {
	key := ratedata.Key{
		RoomID:   session.Room.ID,
		Quantity: session.Selection.Quantity,
	}
	if session.Selection.RatePlanInstanceID != nil {
		key.RatePlanInstanceID = *session.Selection.RatePlanInstanceID
	}
	return key
}

// applyCounter применяет операцию к счетчику выбора
// Возвращает false, если операция отклонена граничным условием
func applyCounter(sel *domain.Selection, room *domain.Room, counter models.Counter, op models.Operation) (bool, error) {
	increment := op == models.OperationIncrement

	switch counter {
	case models.CounterAdults:
		if increment {
			return sel.IncrementAdults(room), nil
		}
		return sel.DecrementAdults(), nil

	case models.CounterChildren:
		if increment {
			return sel.IncrementChildren(room), nil
		}
		return sel.DecrementChildren(), nil

	case models.CounterQuantity:
		if increment {
			return sel.IncrementQuantity(room), nil
		}
		return sel.DecrementQuantity(room), nil

	default:
		return false, fmt.Errorf("%w: unknown counter %q", ErrInvalidInput, counter)
	}
}

// validateCreateRequest валидирует запрос на создание сессии
func validateCreateRequest(req *models.CreateSessionRequest) error {
	if req.RoomID == "" {
		return fmt.Errorf("%w: roomID is required", ErrInvalidInput)
	}
	if req.Adults != nil && *req.Adults < domain.MinAdults {
		return fmt.Errorf("%w: adults must be at least %d", ErrInvalidInput, domain.MinAdults)
	}
	if req.Children != nil && *req.Children < domain.MinChildren {
		return fmt.Errorf("%w: children must be at least %d", ErrInvalidInput, domain.MinChildren)
	}
	if req.Quantity != nil && *req.Quantity < domain.MinQuantity {
		return fmt.Errorf("%w: quantity must be at least %d", ErrInvalidInput, domain.MinQuantity)
	}
	return nil
}

// validateSelectionBounds проверяет начальные счетчики против границ номера
func validateSelectionBounds(sel *domain.Selection, room *domain.Room) error {
	if sel.Quantity > room.Quantity {
		return fmt.Errorf("%w: quantity %d exceeds available units %d", ErrInvalidInput, sel.Quantity, room.Quantity)
	}
	if sel.TotalGuests() > room.MaxGuests(sel.Quantity) {
		return fmt.Errorf("%w: %d guests exceed capacity of %d", ErrInvalidInput, sel.TotalGuests(), room.MaxGuests(sel.Quantity))
	}
	return nil
}

// validateAdjustRequest валидирует запрос на изменение счетчика
func validateAdjustRequest(req *models.AdjustCounterRequest) error {
	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}
	switch req.Counter {
	case models.CounterAdults, models.CounterChildren, models.CounterQuantity:
	default:
		return fmt.Errorf("%w: unknown counter %q", ErrInvalidInput, req.Counter)
	}
	switch req.Operation {
	case models.OperationIncrement, models.OperationDecrement:
	default:
		return fmt.Errorf("%w: unknown operation %q", ErrInvalidInput, req.Operation)
	}
	return nil
}
