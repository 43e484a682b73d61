package propertyservice

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("room not found")

	// ErrRatePlanNotFound возвращается, когда экземпляр тарифа не найден
	ErrRatePlanNotFound = errors.New("rate plan instance not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("propertyservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("propertyservice client: invalid response")
)

// ReservationRejectedError возвращается, когда PropertyService отклонил
// создание бронирования (например, гонка за последний номер).
// Message содержит текст ошибки backend'а и показывается гостю дословно.
type ReservationRejectedError struct {
	Message string
}

// Error реализует интерфейс error
func (e *ReservationRejectedError) Error() string {
	return "propertyservice client: reservation rejected: " + e.Message
}
