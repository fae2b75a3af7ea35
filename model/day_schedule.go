package model

// DaySchedule модель одного учебного дня
type DaySchedule struct {
	Day     Weekday  `json:"day"`     //День недели
	Lessons []Lesson `json:"lessons"` //Все занятия в этот день, в порядке проведения
}
