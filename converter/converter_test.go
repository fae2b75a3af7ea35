package converter

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notaneet/rasp51cli/model"
)

func testWeek() *model.WeekSchedule {
	w := model.NewWeekSchedule("1БПМИ-ПТ")
	w.AddDay(model.DaySchedule{
		Day: model.Monday,
		Lessons: []model.Lesson{
			{Title: "Философия (лк)", StartTime: "08:30", EndTime: "10:05", Lecturer: "В.Н.Морозов", Campus: "305"},
		},
	})
	return w
}

func TestConverterFactory(t *testing.T) {
	assert.Equal(t, JSONConverter{}, Converter("json"))
	assert.Equal(t, JSONConverter{Pretty: true}, Converter("pjson"))
	assert.Equal(t, PGSQLConverter{}, Converter("pgsql"))
	assert.Equal(t, DummyConverter{}, Converter("что-то другое"))
}

func TestJSONConverterRoundTrip(t *testing.T) {
	out := filepath.Join(t.TempDir(), "week.json")

	require.NoError(t, JSONConverter{Pretty: true}.Write(testWeek(), out))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)

	var back model.WeekSchedule
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, *testWeek(), back)
}

func TestJSONConverterWritesChanges(t *testing.T) {
	out := filepath.Join(t.TempDir(), "changes.json")
	changes := model.NewChangesWith([]model.Lesson{{Title: "Замена: физика"}})
	changes.Day = model.Tuesday
	changes.Absolute = true

	require.NoError(t, JSONConverter{}.Write(changes, out))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)

	var back model.Changes
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, *changes, back)
}

func TestJSONConverterEmptyOut(t *testing.T) {
	assert.Error(t, JSONConverter{}.Write(testWeek(), ""))
}

func TestPGSQLConverterEmptyCredentials(t *testing.T) {
	assert.Error(t, PGSQLConverter{}.Write(testWeek(), ""))
}

func TestDummyConverter(t *testing.T) {
	assert.NoError(t, DummyConverter{}.Write(testWeek(), ""))
}
