package select_date

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/artstay/ArtStay-RetreatService/internal/api/handlers"
	selectDate "github.com/artstay/ArtStay-RetreatService/internal/usecase/select_date"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgInvalidInput       = "invalid date selection"
	msgDateNotSelectable  = "selected date is not available"
	msgSessionNotFound    = "booking session not found or expired"
)

type Handler struct {
	useCase SelectDateUseCase
	logger  Logger
}

func NewHandler(useCase SelectDateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/select-date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/select-date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest(sessionID)
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/select-date - Failed to parse date: session_id=%s, error=%v", sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, selectDate.ErrInvalidInput):
			h.logger.Warn("POST /sessions/{id}/select-date - Invalid input: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, selectDate.ErrDateNotSelectable):
			h.logger.Warn("POST /sessions/{id}/select-date - Date not selectable: session_id=%s, date=%s",
				sessionID, req.Date)
			handlers.RespondBadRequest(w, msgDateNotSelectable)

		case errors.Is(err, selectDate.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/select-date - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		default:
			h.logger.Error("POST /sessions/{id}/select-date - Failed to select date: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/select-date - Date selected: session_id=%s, date=%s, stage=%s",
		sessionID, req.Date, result.Stage)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
