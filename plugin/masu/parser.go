package masu

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tealeg/xlsx/v3"

	"github.com/notaneet/rasp51cli/model"
	"github.com/notaneet/rasp51cli/utils"
)

// Выгрузки отдела расписания идут колонками:
// день недели | время | предмет | преподаватель | аудитория.
// Первая строка - шапка.
const startRow = 1

const (
	dayColumn = iota
	timeColumn
	titleColumn
	lecturerColumn
	campusColumn
)

// Если что-то не указано
const emptyField = "Не указан"

// Спарсить книгу с недельной сеткой: лист = группа, берётся первый
// лист, чей заголовок проходит через GroupMatcher
func (p *_MASUMurmanskPlugin) parseScheduleWB(wb *xlsx.File) (*model.WeekSchedule, error) {
	for _, sh := range wb.Sheets {
		group := cleanName(sh.Name)
		if group == "" || !p.config.GroupMatcher.Match(group) {
			continue
		}
		return p.parseSheet(sh, group)
	}
	return nil, fmt.Errorf("no sheet matches the requested group")
}

// Спарсить лист одной группы
func (p *_MASUMurmanskPlugin) parseSheet(sh *xlsx.Sheet, group string) (*model.WeekSchedule, error) {
	week := model.NewWeekSchedule(group)
	var current *model.DaySchedule

	for row := startRow; row < sh.MaxRow; row++ {
		// Непустая первая колонка открывает новый день
		if name := cellString(sh, row, dayColumn); name != "" {
			day, err := model.ParseWeekday(name)
			if err != nil {
				// мусор в колонке дня, не наша строка
				continue
			}
			if current != nil {
				week.AddDay(*current)
			}
			current = &model.DaySchedule{Day: day}
		}

		if current == nil {
			continue
		}

		lesson, ok := p.parseLessonRow(sh, row)
		if ok {
			current.Lessons = append(current.Lessons, lesson)
		}
	}

	if current != nil {
		week.AddDay(*current)
	}
	return week, nil
}

// Спарсить книгу изменений: первый лист, в шапке день и режим замены
func (p *_MASUMurmanskPlugin) parseChangesWB(wb *xlsx.File) (*model.Changes, error) {
	if len(wb.Sheets) == 0 {
		return nil, fmt.Errorf("changes workbook has no sheets")
	}
	sh := wb.Sheets[0]

	day, err := model.ParseWeekday(cellString(sh, 0, dayColumn))
	if err != nil {
		return nil, fmt.Errorf("changes header: %w", err)
	}

	changes := model.NewChanges()
	changes.Day = day
	changes.Absolute = isAbsoluteMark(cellString(sh, 0, timeColumn))

	for row := startRow; row < sh.MaxRow; row++ {
		if lesson, ok := p.parseLessonRow(sh, row); ok {
			changes.Add(lesson)
		}
	}
	return changes, nil
}

// Спарсить строку занятия; строки без времени пары молча пропускаются
func (p *_MASUMurmanskPlugin) parseLessonRow(sh *xlsx.Sheet, row int) (model.Lesson, bool) {
	start, end, err := utils.ParseClockRange(cellString(sh, row, timeColumn))
	if err != nil {
		return model.Lesson{}, false
	}

	title := utils.RemoveSpaces(cellString(sh, row, titleColumn))
	if title == "" {
		return model.Lesson{}, false
	}

	lecturer := lecturerName(cellString(sh, row, lecturerColumn))
	campus := cellString(sh, row, campusColumn)
	if campus == "" {
		campus = emptyField
	}

	if !p.config.LessonMatcher.Match(title) ||
		!p.config.LecturerMatcher.Match(lecturer) ||
		!p.config.CampusMatcher.Match(campus) {
		return model.Lesson{}, false
	}

	return model.Lesson{
		Title:     title,
		StartTime: start,
		EndTime:   end,
		Lecturer:  lecturer,
		Campus:    campus,
	}, true
}

func cellString(sh *xlsx.Sheet, row, col int) string {
	cell, err := sh.Cell(row, col)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(cell.String())
}

// Пометка полной замены дня в шапке листа изменений
var absoluteMarkRE = regexp.MustCompile("(?i)^(полная|замена дня|absolute)$")

func isAbsoluteMark(s string) bool {
	return absoluteMarkRE.MatchString(strings.TrimSpace(s))
}

// Очистка имени группы в заголовке листа
// Колледж: <курс>-<направление>[-<после какого класса>][+<совмещение>]
// Вышка: <курс><направление>[-<профиль>][[-](<заочно/очно/кабинет>)]
var cleanRE = regexp.MustCompile("(?i)([0-9]-?[-а-яё0-9]+(\\+Д)? *(\\([0-9дз+]+\\))?)")

func cleanName(sheet string) string {
	return strings.TrimSpace(cleanRE.FindString(sheet))
}

// Имя преподавателя в общем формате (В.Н. Морозов)
var lecturerNameCommonRE = regexp.MustCompile("(?i)([а-яё]\\.[а-яё])\\.? *([а-яё]+)")

// Имя преподавателя в полном формате (Морозов Владислав Николаевич)
var lecturerNameFullRE = regexp.MustCompile("([А-Яё][а-яё]+) +([А-ЯЁ])[а-яё]+ +([А-ЯЁ])[а-яё]+")

// Имя преподавателя в формате Морозов В.Н
var lecturerNameInsaneRE = regexp.MustCompile("(?i)([а-яё]+) ([а-яё]\\.[а-яё])")

// Получить имя преподавателя в нужном формате по name
func lecturerName(name string) string {
	ret := name

	var k []string

	if k = lecturerNameCommonRE.FindStringSubmatch(name); len(k) != 0 {
		ret = k[1] + "." + k[2]
	} else if k = lecturerNameFullRE.FindStringSubmatch(name); len(k) != 0 {
		ret = strings.TrimSpace(k[2]) + "." + strings.TrimSpace(k[3]) + "." + strings.TrimSpace(k[1])
	} else if k = lecturerNameInsaneRE.FindStringSubmatch(name); len(k) != 0 {
		ret = strings.TrimSpace(k[2]) + "." + strings.TrimSpace(k[1])
	}

	if len(k) == 0 {
		return emptyField
	}

	ret = strings.Replace(ret, "/", "", -1)
	ret = strings.TrimSpace(ret)
	ret = strings.Replace(ret, " ", "", -1)
	ret = strings.TrimRight(ret, ".")

	return ret
}
