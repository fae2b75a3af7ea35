package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Weekday день недели, порядок констант = канонический порядок дней
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayRU = [...]string{
	"Понедельник",
	"Вторник",
	"Среда",
	"Четверг",
	"Пятница",
	"Суббота",
	"Воскресенье",
}

// В json всегда английское имя, чтобы формат не зависел от локали
var weekdayEN = [...]string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

// String русское название дня
func (d Weekday) String() string {
	if !d.Valid() {
		return "?"
	}
	return weekdayRU[d]
}

func (d Weekday) MarshalJSON() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("weekday %d out of range", int(d))
	}
	return json.Marshal(weekdayEN[d])
}

func (d *Weekday) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	day, err := ParseWeekday(s)
	if err != nil {
		return err
	}
	*d = day
	return nil
}

// ParseWeekday распознаёт русское или английское название дня, регистр не важен
func ParseWeekday(s string) (Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i := range weekdayEN {
		if name == weekdayEN[i] || name == strings.ToLower(weekdayRU[i]) {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("%q is not a weekday", s)
}
