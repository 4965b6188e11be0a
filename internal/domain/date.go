package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout - формат даты регистрации в JSON (календарная дата без времени)
const DateLayout = "2006-01-02"

// Date - календарная дата без компоненты времени. В Postgres хранится
// как DATE, в JSON сериализуется строкой формата YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate создает дату, отбрасывая время и часовой пояс
func NewDate(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected format %s", s, DateLayout)
	}
	d.Time = t
	return nil
}

// Scan реализует sql.Scanner для чтения колонки DATE
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewDate(v)
		return nil
	case string:
		t, err := time.ParseInLocation(DateLayout, v, time.UTC)
		if err != nil {
			return fmt.Errorf("scan date %q: %w", v, err)
		}
		d.Time = t
		return nil
	case []byte:
		return d.Scan(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

// Value реализует driver.Valuer для записи колонки DATE
func (d Date) Value() (driver.Value, error) {
	return d.Format(DateLayout), nil
}

// InFuture проверяет выход даты за "сегодня" по UTC-часам сервера.
// Дата регистрации не может быть в будущем.
func (d Date) InFuture(now time.Time) bool {
	today := NewDate(now.UTC())
	return d.Time.After(today.Time)
}
