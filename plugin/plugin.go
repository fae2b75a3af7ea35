package plugin

import "github.com/notaneet/rasp51cli/model"

// Plugin парсер исходных документов одного учебного учреждения
type Plugin interface {
	GetInstitution() string
	ParseSchedule(path string) (*model.WeekSchedule, error)
	ParseChanges(path string) (*model.Changes, error)
}
