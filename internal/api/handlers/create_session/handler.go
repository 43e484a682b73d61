package create_session

import (
	"errors"
	"net/http"

	"github.com/artstay/ArtStay-RetreatService/internal/api/handlers"
	"github.com/artstay/ArtStay-RetreatService/internal/service/sessions"
	"github.com/artstay/ArtStay-RetreatService/internal/service/sessions/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidInput       = "invalid session parameters"
	msgRoomNotFound       = "room not found"
	msgRoomNotBookable    = "room is not available for booking"
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем сервис сессий
	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrInvalidInput):
			h.logger.Warn("POST /sessions - Invalid input: room_id=%s, error=%v", req.RoomID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, sessions.ErrRoomNotFound):
			h.logger.Warn("POST /sessions - Room not found: room_id=%s", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, sessions.ErrRoomNotBookable):
			h.logger.Warn("POST /sessions - Room not bookable: room_id=%s", req.RoomID)
			handlers.RespondUnprocessable(w, msgRoomNotBookable)

		default:
			h.logger.Error("POST /sessions - Failed to create session: room_id=%s, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions - Session created: session_id=%s, room_id=%s", result.ID, req.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
