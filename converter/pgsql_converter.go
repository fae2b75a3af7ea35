package converter

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/notaneet/rasp51cli/model"
)

type PGSQLConverter struct{}

const ResetDaysSequence = "ALTER SEQUENCE schedule_days_id_seq RESTART;"
const ResetChangesSequence = "ALTER SEQUENCE changes_id_seq RESTART;"
const DropLessons = "DELETE FROM lessons;"
const DropDays = "DELETE FROM schedule_days;"
const DropChangeLessons = "DELETE FROM change_lessons;"
const DropChanges = "DELETE FROM changes;"
const InsertDayQuery = "INSERT INTO schedule_days (\"group\", day) VALUES ($1, $2) RETURNING id"
const InsertLessonQuery = "INSERT INTO lessons (day_id, title, start_time, end_time, lecturer, campus) VALUES ($1, $2, $3, $4, $5, $6)"
const InsertChangesQuery = "INSERT INTO changes (day, absolute) VALUES ($1, $2) RETURNING id"
const InsertChangeLessonQuery = "INSERT INTO change_lessons (change_id, title, start_time, end_time, lecturer, campus) VALUES ($1, $2, $3, $4, $5, $6)"

func (p PGSQLConverter) Write(doc model.Document, out string) error {
	if out == "" {
		return fmt.Errorf("credentials can not be empty")
	}

	conn, err := sqlx.Connect("postgres", out)
	if err != nil {
		return err
	}
	defer conn.Close()

	switch d := doc.(type) {
	case *model.WeekSchedule:
		return p.writeSchedule(conn, d)
	case *model.Changes:
		return p.writeChanges(conn, d)
	default:
		return fmt.Errorf("unknown document kind %q", doc.Kind())
	}
}

func (p PGSQLConverter) writeSchedule(conn *sqlx.DB, week *model.WeekSchedule) error {
	conn.MustExec(ResetDaysSequence)
	conn.MustExec(DropLessons)
	conn.MustExec(DropDays)

	insertDay, err := conn.Preparex(InsertDayQuery)
	if err != nil {
		return err
	}

	insertLesson, err := conn.Preparex(InsertLessonQuery)
	if err != nil {
		return err
	}

	for _, day := range week.Days {
		var dayId uint
		scan := insertDay.QueryRowx(week.GroupName, int(day.Day))
		if err = scan.Scan(&dayId); err != nil {
			continue
		}

		for _, lesson := range day.Lessons {
			insertLesson.MustExec(dayId, lesson.Title, lesson.StartTime, lesson.EndTime, lesson.Lecturer, lesson.Campus)
		}
	}

	return nil
}

func (p PGSQLConverter) writeChanges(conn *sqlx.DB, changes *model.Changes) error {
	conn.MustExec(ResetChangesSequence)
	conn.MustExec(DropChangeLessons)
	conn.MustExec(DropChanges)

	insertChanges, err := conn.Preparex(InsertChangesQuery)
	if err != nil {
		return err
	}

	insertLesson, err := conn.Preparex(InsertChangeLessonQuery)
	if err != nil {
		return err
	}

	var changeId uint
	scan := insertChanges.QueryRowx(int(changes.Day), changes.Absolute)
	if err = scan.Scan(&changeId); err != nil {
		return err
	}

	for _, lesson := range changes.Lessons {
		insertLesson.MustExec(changeId, lesson.Title, lesson.StartTime, lesson.EndTime, lesson.Lecturer, lesson.Campus)
	}

	return nil
}
