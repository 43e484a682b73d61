package sessions

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("sessions.store: session not found")

	// ErrSessionExists возвращается при попытке сохранить сессию с занятым ID
	ErrSessionExists = errors.New("sessions.store: session already exists")
)
