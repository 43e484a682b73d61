package create_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/artstay/ArtStay-RetreatService/internal/api/handlers"
	createReservation "github.com/artstay/ArtStay-RetreatService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgInvalidDateOfBirth  = "invalid date of birth, expected YYYY-MM-DD"
	msgInvalidInput        = "invalid guest details"
	msgSessionNotFound     = "booking session not found or expired"
	msgSelectionIncomplete = "dates and rate plan must be selected before booking"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/reservation
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/reservation - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты рождения)
	useCaseReq, err := req.ToUseCaseRequest(sessionID)
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/reservation - Failed to parse date of birth: session_id=%s, error=%v",
			sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidDateOfBirth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var rejected *createReservation.RejectionError

		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /sessions/{id}/reservation - Invalid input: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createReservation.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/reservation - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, createReservation.ErrSelectionIncomplete):
			h.logger.Warn("POST /sessions/{id}/reservation - Selection incomplete: session_id=%s", sessionID)
			handlers.RespondUnprocessable(w, msgSelectionIncomplete)

		case errors.As(err, &rejected):
			// Текст отказа backend-а отдается гостю дословно
			h.logger.Warn("POST /sessions/{id}/reservation - Rejected: session_id=%s, reason=%s",
				sessionID, rejected.Message)
			handlers.RespondConflict(w, rejected.Message)

		default:
			h.logger.Error("POST /sessions/{id}/reservation - Failed to create reservation: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/reservation - Reservation submitted: session_id=%s, room_id=%s, %s..%s",
		sessionID, result.RoomID, result.StartDate, result.EndDate)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
