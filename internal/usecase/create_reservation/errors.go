package create_reservation

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("booking session not found")

	// ErrSelectionIncomplete возвращается, когда в сессии не выбраны даты
	// или не подобран тариф. Отправка не выполняется - гостя возвращают
	// к шагу выбора номера и дат
	ErrSelectionIncomplete = errors.New("selection is incomplete")

	// ErrInvalidInput возвращается при некорректных контактных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	// Состояние выбора при этом сохраняется - гость может повторить отправку
	ErrInternal = errors.New("usecase: internal error")
)

// RejectionError возвращается, когда PropertyService отклонил бронирование
// Message показывается гостю дословно; состояние выбора сохраняется,
// автоматический повтор не выполняется
type RejectionError struct {
	Message string
}

// Error реализует интерфейс error
func (e *RejectionError) Error() string {
	return "reservation rejected: " + e.Message
}
