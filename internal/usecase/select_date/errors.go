package select_date

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("booking session not found")

	// ErrDateNotSelectable возвращается при клике по недоступной дате:
	// прошедшей, заблокированной или без тарифа
	ErrDateNotSelectable = errors.New("date is not selectable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
