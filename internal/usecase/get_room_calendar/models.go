package get_room_calendar

import (
	"github.com/shopspring/decimal"

	"github.com/artstay/ArtStay-RetreatService/pkg/types"
)

// Request модель запроса календаря номера на месяц
type Request struct {
	RoomID   string
	Year     int
	Month    int // 1-12
	Adults   int // влияет на подбор тарифа
	Children int
	Quantity int // влияет на заблокированные даты
}

// Response календарная сетка месяца
type Response struct {
	RoomID             string
	Year               int
	Month              int
	RatePlanInstanceID *string // подобранный экземпляр тарифа, nil если не подобран
	Days               []Day
}

// Day один день календарной сетки
type Day struct {
	Date       types.Date
	Price      decimal.Decimal // 0 = нет тарифа на эту ночь
	Blocked    bool
	Selectable bool // false для прошедших, заблокированных и бестарифных дат
}
