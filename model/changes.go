package model

// Changes модель изменений в расписании на один день.
// Absolute == true значит список полностью заменяет занятия дня,
// иначе это частичная замена (слияние делает тот, кто применяет).
type Changes struct {
	Day      Weekday  `json:"day"`      //К какому дню относятся изменения
	Absolute bool     `json:"absolute"` //Полная замена дня или частичная
	Lessons  []Lesson `json:"lessons"`  //Занятия в порядке применения
}

// NewChanges пустые частичные изменения
func NewChanges() *Changes {
	return &Changes{Lessons: []Lesson{}}
}

// NewChangesWith частичные изменения с готовым списком занятий
func NewChangesWith(lessons []Lesson) *Changes {
	return &Changes{Lessons: lessons}
}

// Add добавляет занятие в конец списка
func (c *Changes) Add(lesson Lesson) {
	c.Lessons = append(c.Lessons, lesson)
}

func (c *Changes) Kind() string {
	return "changes"
}
