package model

// WeekSchedule расписание одной группы на неделю
type WeekSchedule struct {
	GroupName string        `json:"group"` //Название группы, может быть пустым
	Days      []DaySchedule `json:"days"`  //Дни в порядке добавления, не больше одного на день недели
}

// NewWeekSchedule пустое расписание для группы
func NewWeekSchedule(group string) *WeekSchedule {
	return &WeekSchedule{GroupName: group}
}

// AddDay добавляет день в конец, повторный день недели заменяется на месте
func (w *WeekSchedule) AddDay(day DaySchedule) {
	for i := range w.Days {
		if w.Days[i].Day == day.Day {
			w.Days[i] = day
			return
		}
	}
	w.Days = append(w.Days, day)
}

// DayFor день недели из расписания, если он там есть
func (w *WeekSchedule) DayFor(day Weekday) (DaySchedule, bool) {
	for i := range w.Days {
		if w.Days[i].Day == day {
			return w.Days[i], true
		}
	}
	return DaySchedule{}, false
}

func (w *WeekSchedule) Kind() string {
	return "schedule"
}
