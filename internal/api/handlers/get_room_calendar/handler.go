package get_room_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/artstay/ArtStay-RetreatService/internal/api/handlers"
	"github.com/artstay/ArtStay-RetreatService/internal/domain"
	getRoomCalendar "github.com/artstay/ArtStay-RetreatService/internal/usecase/get_room_calendar"
)

const (
	msgInvalidQuery        = "invalid query parameters"
	msgInvalidInput        = "invalid calendar request"
	msgRoomNotFound        = "room not found"
	msgRoomNotBookable     = "room is not available for booking"
	msgRateDataUnavailable = "calendar data is temporarily unavailable"
)

type Handler struct {
	useCase GetRoomCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetRoomCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/calendar?year=2026&month=7&adults=2&children=0&quantity=1
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]
	query := r.URL.Query()

	year, err := parseIntQuery(query.Get("year"), 0)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/calendar - Invalid year: room_id=%s, value=%s", roomID, query.Get("year"))
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	month, err := parseIntQuery(query.Get("month"), 0)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/calendar - Invalid month: room_id=%s, value=%s", roomID, query.Get("month"))
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	adults, err := parseIntQuery(query.Get("adults"), domain.DefaultAdults)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/calendar - Invalid adults: room_id=%s, value=%s", roomID, query.Get("adults"))
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	children, err := parseIntQuery(query.Get("children"), domain.DefaultChildren)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/calendar - Invalid children: room_id=%s, value=%s", roomID, query.Get("children"))
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	quantity, err := parseIntQuery(query.Get("quantity"), domain.DefaultQuantity)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/calendar - Invalid quantity: room_id=%s, value=%s", roomID, query.Get("quantity"))
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	useCaseReq := &getRoomCalendar.Request{
		RoomID:   roomID,
		Year:     year,
		Month:    month,
		Adults:   adults,
		Children: children,
		Quantity: quantity,
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getRoomCalendar.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/calendar - Invalid input: room_id=%s, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getRoomCalendar.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/calendar - Room not found: room_id=%s", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, getRoomCalendar.ErrRoomNotBookable):
			h.logger.Warn("GET /rooms/{id}/calendar - Room not bookable: room_id=%s", roomID)
			handlers.RespondUnprocessable(w, msgRoomNotBookable)

		case errors.Is(err, getRoomCalendar.ErrRateDataUnavailable):
			h.logger.Error("GET /rooms/{id}/calendar - Rate data unavailable: room_id=%s", roomID)
			handlers.RespondServiceUnavailable(w, msgRateDataUnavailable)

		default:
			h.logger.Error("GET /rooms/{id}/calendar - Failed to build calendar: room_id=%s, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// parseIntQuery парсит целочисленный query-параметр с значением по умолчанию
func parseIntQuery(raw string, defaultValue int) (int, error) {
	if raw == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(raw)
}
