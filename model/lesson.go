package model

// Lesson модель одного занятия в недельной сетке
type Lesson struct {
	Title     string `json:"title"`      //Название предмета (иногда с метадатой).
	StartTime string `json:"start_time"` //Время начала пары, ЧЧ:ММ
	EndTime   string `json:"end_time"`   //Время конца пары, ЧЧ:ММ
	Lecturer  string `json:"lecturer"`   //Преподаватель
	Campus    string `json:"campus"`     //Корпус с аудиторией/место
}
