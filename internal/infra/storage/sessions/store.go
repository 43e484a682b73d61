package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/artstay/ArtStay-RetreatService/internal/domain"
)

// Observer получает актуальное количество активных сессий
// Используется для gauge-метрики
type Observer interface {
	SetActiveSessions(n int)
}

// Store in-memory хранилище сессий бронирования
//
// Сессии живут только в памяти процесса: состояние бронирования по
// контракту ограничено одной пользовательской сессией, персистентность
// не требуется. Все мутации сессии выполняются через Update под общим
// мьютексом - это гарантирует политику единственного писателя.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
	ttl      time.Duration
	now      func() time.Time
	observer Observer
}

// NewStore создает новое хранилище сессий с заданным TTL
func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*domain.Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// SetObserver устанавливает наблюдателя количества сессий
func (s *Store) SetObserver(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observer = o
	o.SetActiveSessions(len(s.sessions))
}

// Put сохраняет новую сессию
func (s *Store) Put(_ context.Context, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[session.ID]; ok {
		return ErrSessionExists
	}

	now := s.now()
	session.CreatedAt = now
	session.LastActiveAt = now
	s.sessions[session.ID] = session

	s.notifyLocked()
	return nil
}

// Get возвращает копию сессии и продлевает её время жизни
// Истекшая сессия считается отсутствующей
func (s *Store) Get(_ context.Context, id string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.liveSessionLocked(id)
	if err != nil {
		return nil, err
	}

	session.LastActiveAt = s.now()
	copied := *session
	return &copied, nil
}

// Update выполняет мутацию сессии под блокировкой хранилища и возвращает
// копию результата. Отката нет: при ошибке fn обязана оставить сессию
// нетронутой.
func (s *Store) Update(_ context.Context, id string, fn func(session *domain.Session) error) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.liveSessionLocked(id)
	if err != nil {
		return nil, err
	}

	if err := fn(session); err != nil {
		return nil, err
	}

	session.LastActiveAt = s.now()
	copied := *session
	return &copied, nil
}

// Delete удаляет сессию
func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}

	delete(s.sessions, id)
	s.notifyLocked()
	return nil
}

// Len возвращает количество хранимых сессий (включая еще не собранные истекшие)
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// RunCleanup запускает цикл сборки истекших сессий
// Блокирует до закрытия stopCh; запускается в отдельной горутине
func (s *Store) RunCleanup(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.removeExpired()
		case <-stopCh:
			return
		}
	}
}

// removeExpired удаляет истекшие сессии и возвращает их количество
func (s *Store) removeExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, session := range s.sessions {
		if session.IsExpired(now, s.ttl) {
			delete(s.sessions, id)
			removed++
		}
	}

	if removed > 0 {
		s.notifyLocked()
	}
	return removed
}

// liveSessionLocked возвращает живую сессию или ErrSessionNotFound
// Вызывается только под s.mu
func (s *Store) liveSessionLocked(id string) (*domain.Session, error) {
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	// Истекшую, но еще не собранную сессию не отдаем
	if session.IsExpired(s.now(), s.ttl) {
		delete(s.sessions, id)
		s.notifyLocked()
		return nil, ErrSessionNotFound
	}

	return session, nil
}

// notifyLocked сообщает наблюдателю актуальное количество сессий
// Вызывается только под s.mu
func (s *Store) notifyLocked() {
	if s.observer != nil {
		s.observer.SetActiveSessions(len(s.sessions))
	}
}
