package model

// Document результат парсинга исходного документа:
// либо *WeekSchedule, либо *Changes
type Document interface {
	Kind() string
}
