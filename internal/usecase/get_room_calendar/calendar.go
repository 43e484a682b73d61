package get_room_calendar

import (
	"time"

	"github.com/artstay/ArtStay-RetreatService/internal/domain"
	"github.com/artstay/ArtStay-RetreatService/pkg/types"
)

// generateMonthGrid строит календарную сетку на месяц
// Каждый день получает цену за ночь, флаг блокировки и флаг кликабельности
// День некликабелен только в трех случаях: прошедшая дата, блокировка
// или отсутствие тарифа - других причин нет
func generateMonthGrid(year int, month time.Month, avail *domain.Availability) []Day {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	days := make([]Day, 0, 31)
	for cursor := first; cursor.Month() == month; cursor = cursor.AddDate(0, 0, 1) {
		date := types.NewDate(cursor)
		days = append(days, Day{
			Date:       date,
			Price:      avail.Prices.PriceOn(date),
			Blocked:    avail.Blocks.IsBlocked(date),
			Selectable: avail.IsSelectable(date),
		})
	}

	return days
}
