package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout формат календарной даты (YYYY-MM-DD)
const DateLayout = "2006-01-02"

// Date календарная дата без времени суток в формате "YYYY-MM-DD"
// Сравнение дат выполняется лексикографически, что корректно для ISO-формата
type Date string

// NewDate создает Date из time.Time (время суток отбрасывается)
func NewDate(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

// NewDateFromString создает Date из строки с валидацией формата
func NewDateFromString(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date string format: %v", err)
	}
	return NewDate(t), nil
}

// String возвращает строковое представление даты
func (d Date) String() string {
	return string(d)
}

// Time конвертирует Date в time.Time (полночь UTC)
func (d Date) Time() (time.Time, error) {
	t, err := time.Parse(DateLayout, string(d))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date value %q: %v", string(d), err)
	}
	return t, nil
}

// IsZero проверяет, что дата не задана
func (d Date) IsZero() bool {
	return d == ""
}

// IsBefore проверяет, что дата строго раньше other
func (d Date) IsBefore(other Date) bool {
	return string(d) < string(other)
}

// IsAfter проверяет, что дата строго позже other
func (d Date) IsAfter(other Date) bool {
	return string(d) > string(other)
}

// Equal проверяет равенство дат
func (d Date) Equal(other Date) bool {
	return string(d) == string(other)
}

// AddDays возвращает дату, смещенную на n дней (n может быть отрицательным)
func (d Date) AddDays(n int) (Date, error) {
	t, err := d.Time()
	if err != nil {
		return "", err
	}
	return NewDate(t.AddDate(0, 0, n)), nil
}

// DaysUntil возвращает количество дней от d до other
// Результат отрицательный, если other раньше d
func (d Date) DaysUntil(other Date) (int, error) {
	from, err := d.Time()
	if err != nil {
		return 0, err
	}
	to, err := other.Time()
	if err != nil {
		return 0, err
	}
	return int(to.Sub(from).Hours() / 24), nil
}

// MarshalJSON сериализует дату в JSON строку
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(d))
}

// UnmarshalJSON десериализует дату из JSON строки с валидацией
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := NewDateFromString(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
