package get_room_calendar

import (
	"context"

	getRoomCalendar "github.com/artstay/ArtStay-RetreatService/internal/usecase/get_room_calendar"
)

type GetRoomCalendarUseCase interface {
	Execute(ctx context.Context, req *getRoomCalendar.Request) (*getRoomCalendar.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
