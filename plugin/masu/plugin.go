package masu

import (
	"fmt"

	"github.com/tealeg/xlsx/v3"

	"github.com/notaneet/rasp51cli/config"
	"github.com/notaneet/rasp51cli/model"
)

// _MASUMurmanskPlugin разбирает недельные сетки и листы изменений,
// которые выгружает отдел расписания (xlsx)
type _MASUMurmanskPlugin struct {
	config config.ParserConfig
}

func GetPlugin(cfg config.ParserConfig) *_MASUMurmanskPlugin {
	return &_MASUMurmanskPlugin{config: cfg}
}

func (p *_MASUMurmanskPlugin) GetInstitution() string {
	return "МАГУ"
}

func (p *_MASUMurmanskPlugin) ParseSchedule(path string) (*model.WeekSchedule, error) {
	wb, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p.parseScheduleWB(wb)
}

// ParseScheduleBinary то же, что ParseSchedule, но из байтов
func (p *_MASUMurmanskPlugin) ParseScheduleBinary(b []byte) (*model.WeekSchedule, error) {
	wb, err := xlsx.OpenBinary(b)
	if err != nil {
		return nil, err
	}
	return p.parseScheduleWB(wb)
}

func (p *_MASUMurmanskPlugin) ParseChanges(path string) (*model.Changes, error) {
	wb, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p.parseChangesWB(wb)
}

// ParseChangesBinary то же, что ParseChanges, но из байтов
func (p *_MASUMurmanskPlugin) ParseChangesBinary(b []byte) (*model.Changes, error) {
	wb, err := xlsx.OpenBinary(b)
	if err != nil {
		return nil, err
	}
	return p.parseChangesWB(wb)
}
