package domain

import "github.com/shopspring/decimal"

// Room represents a bookable retreat unit.
// Rooms are owned and mutated by the external property-management system;
// this service treats them as immutable reference data.
type Room struct {
	ID          string
	Name        string
	Code        string
	Capacity    int // guest capacity per room unit
	Quantity    int // total units available
	BasePrice   decimal.Decimal
	MinimumStay int // minimum stay in nights, 0 or 1 = no constraint
	Features    []string
	IsActive    bool
}

// MaxGuests returns the total guest capacity for the given number of room units
func (r *Room) MaxGuests(quantity int) int {
	return r.Capacity * quantity
}

// IsBookable returns true if the room can currently be offered for booking
func (r *Room) IsBookable() bool {
	return r.IsActive && r.Quantity > 0
}

// MinStayNights returns the effective minimum-stay constraint in nights
func (r *Room) MinStayNights() int {
	if r.MinimumStay < 1 {
		return 1
	}
	return r.MinimumStay
}
