package get_room_calendar

import (
	"fmt"
	"time"

	"github.com/artstay/ArtStay-RetreatService/internal/domain"
)

// Границы года защищают от бессмысленных запросов сетки
const (
	minCalendarYear = 2000
	maxCalendarYear = 2100
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomID == "" {
		return fmt.Errorf("%w: roomID is required", ErrInvalidInput)
	}

	if req.Year < minCalendarYear || req.Year > maxCalendarYear {
		return fmt.Errorf("%w: year must be between %d and %d", ErrInvalidInput, minCalendarYear, maxCalendarYear)
	}

	if req.Month < int(time.January) || req.Month > int(time.December) {
		return fmt.Errorf("%w: month must be between 1 and 12", ErrInvalidInput)
	}

	if req.Adults < domain.MinAdults {
		return fmt.Errorf("%w: adults must be at least %d", ErrInvalidInput, domain.MinAdults)
	}

	if req.Children < domain.MinChildren {
		return fmt.Errorf("%w: children must be at least %d", ErrInvalidInput, domain.MinChildren)
	}

	if req.Quantity < domain.MinQuantity {
		return fmt.Errorf("%w: quantity must be at least %d", ErrInvalidInput, domain.MinQuantity)
	}

	return nil
}
