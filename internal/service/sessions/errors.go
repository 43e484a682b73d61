package sessions

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден в PropertyService
	ErrRoomNotFound = errors.New("room not found")

	// ErrRoomNotBookable возвращается, когда номер неактивен или без инвентаря
	ErrRoomNotBookable = errors.New("room is not available for booking")

	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("booking session not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("sessions service: internal error")
)
