package get_room_calendar

import "errors"

var (
	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("room not found")

	// ErrRoomNotBookable возвращается, когда номер неактивен или без инвентаря
	ErrRoomNotBookable = errors.New("room is not available for booking")

	// ErrRateDataUnavailable возвращается, когда тарифные данные не загрузились
	// Календарь без данных не отдается - пустая сетка безопаснее угадывания
	ErrRateDataUnavailable = errors.New("rate data is unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
