package session

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notaneet/rasp51cli/config"
)

// fakeController записывает вызовы вместо реальной работы
type fakeController struct {
	calls []string
}

func (f *fakeController) ParseSchedule(args []string) { f.record("ParseSchedule", args) }
func (f *fakeController) ParseChanges(args []string)  { f.record("ParseChanges", args) }
func (f *fakeController) ShowHelp()                   { f.record("ShowHelp", nil) }
func (f *fakeController) Parse(args []string)         { f.record("Parse", args) }
func (f *fakeController) WriteLastResult()            { f.record("WriteLastResult", nil) }
func (f *fakeController) ShowLastResult()             { f.record("ShowLastResult", nil) }
func (f *fakeController) Exit()                       { f.record("Exit", nil) }

func (f *fakeController) record(name string, args []string) {
	if len(args) == 0 {
		f.calls = append(f.calls, name)
		return
	}
	f.calls = append(f.calls, name+" "+strings.Join(args, " "))
}

func testMessages() config.Messages {
	return config.DefaultLocales().MessagesFor("ru")
}

func newTestRegistry(ctrl Controller) *Registry {
	return NewRegistry(testMessages(), ctrl)
}

func runSession(t *testing.T, input string) (*fakeController, string) {
	t.Helper()
	ctrl := &fakeController{}
	var out bytes.Buffer
	loop := NewLoop(strings.NewReader(input), &out, newTestRegistry(ctrl), testMessages()).
		WithClock(func() time.Time {
			return time.Date(2025, 9, 1, 12, 0, 0, 0, time.Local)
		})
	loop.Run()
	return ctrl, out.String()
}

func TestRegistryLookupAnyCase(t *testing.T) {
	r := newTestRegistry(&fakeController{})

	for _, keyword := range r.Keywords() {
		mixed := strings.ToUpper(keyword[:1]) + keyword[1:]
		for _, variant := range []string{keyword, strings.ToUpper(keyword), mixed} {
			entry, ok := r.Lookup(variant)
			require.True(t, ok, variant)
			assert.Equal(t, keyword, entry.Command.Name, variant)
			assert.NotEmpty(t, entry.Description, variant)
		}
	}

	_, ok := r.Lookup("reboot")
	assert.False(t, ok)
}

func TestRegistryKeywordOrder(t *testing.T) {
	r := newTestRegistry(&fakeController{})

	assert.Equal(t,
		[]string{KeywordSchedule, KeywordChanges, KeywordHelp, KeywordParse, KeywordWrite, KeywordShow, KeywordExit},
		r.Keywords())
	// реестр и канонический порядок не расходятся
	assert.Equal(t, KeywordOrder(), r.Keywords())
}

func TestParseLine(t *testing.T) {
	r := newTestRegistry(&fakeController{})

	info := r.ParseLine("SCHEDULE path/to/file.xlsx  second")
	require.True(t, info.Known())
	assert.Equal(t, KeywordSchedule, info.Command.Name)
	assert.Equal(t, []string{"path/to/file.xlsx", "second"}, info.Args)

	info = r.ParseLine("reboot now")
	assert.False(t, info.Known())
	assert.Equal(t, []string{"now"}, info.Args)

	info = r.ParseLine("   ")
	assert.False(t, info.Known())
	assert.Empty(t, info.Args)
}

func TestCommandBindIsImmutable(t *testing.T) {
	var got [][]string
	cmd := NewCommand("probe", func(args []string) { got = append(got, args) })

	first := cmd.Bind([]string{"a"})
	second := cmd.Bind([]string{"b", "c"})
	first.Execute()
	second.Execute()
	first.Execute()

	assert.Equal(t, [][]string{{"a"}, {"b", "c"}, {"a"}}, got)
}

func TestCommandExecuteWithoutBindArgs(t *testing.T) {
	var got []string
	cmd := NewCommand("probe", func(args []string) { got = args })

	cmd.Bind(nil).Execute()

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestEmptyFirstLineEndsSession(t *testing.T) {
	ctrl, out := runSession(t, "\n")

	assert.Empty(t, ctrl.calls)
	assert.Contains(t, out, testMessages().GreetingAfternoon)
}

func TestWhitespaceOnlyLineEndsSession(t *testing.T) {
	ctrl, _ := runSession(t, "help\ny\n   \t \nhelp\ny\n")

	assert.Equal(t, []string{"ShowHelp"}, ctrl.calls)
}

func TestEOFEndsSession(t *testing.T) {
	ctrl, _ := runSession(t, "help\ny")

	assert.Equal(t, []string{"ShowHelp"}, ctrl.calls)
}

func TestHelpScenario(t *testing.T) {
	ctrl, out := runSession(t, "Help\ny\n\n")

	assert.Equal(t, []string{"ShowHelp"}, ctrl.calls)
	msgs := testMessages()
	assert.Contains(t, out, msgs.Descriptions[KeywordHelp])
	assert.Contains(t, out, fmt.Sprintf(msgs.ExecutionStart, KeywordHelp))
	assert.Contains(t, out, fmt.Sprintf(msgs.ExecutionDone, KeywordHelp))
}

func TestScheduleScenarioPassesArgs(t *testing.T) {
	ctrl, _ := runSession(t, "schedule path/to/file.xlsx\nY\n\n")

	assert.Equal(t, []string{"ParseSchedule path/to/file.xlsx"}, ctrl.calls)
}

func TestUnsupportedCommandKeepsSessionAlive(t *testing.T) {
	ctrl, out := runSession(t, "reboot\nhelp\ny\n\n")

	assert.Equal(t, []string{"ShowHelp"}, ctrl.calls)
	assert.Contains(t, out, fmt.Sprintf(testMessages().Unsupported, "reboot"))
}

func TestOnlyLiteralYConfirms(t *testing.T) {
	for _, answer := range []string{"n", "yes", "да", "", "y y", " y ", "\ty", "y "} {
		ctrl, _ := runSession(t, "help\n"+answer+"\n\n")
		assert.Empty(t, ctrl.calls, "ответ %q не должен подтверждать", answer)
	}

	ctrl, _ := runSession(t, "help\nY\n\n")
	assert.Equal(t, []string{"ShowHelp"}, ctrl.calls)
}

func TestEOFDuringConfirmationDeclines(t *testing.T) {
	ctrl, _ := runSession(t, "help\n")

	assert.Empty(t, ctrl.calls)
}

func TestExitCommandGoesToController(t *testing.T) {
	// сам цикл от exit не завершается, завершение делает контроллер
	ctrl, _ := runSession(t, "exit\ny\nhelp\ny\n\n")

	assert.Equal(t, []string{"Exit", "ShowHelp"}, ctrl.calls)
}

func TestGreetingBands(t *testing.T) {
	msgs := testMessages()
	cases := []struct {
		hour int
		want string
	}{
		{0, msgs.GreetingNight},
		{6, msgs.GreetingNight},
		{7, msgs.GreetingMorning},
		{9, msgs.GreetingMorning},
		{10, msgs.GreetingAfternoon},
		{16, msgs.GreetingAfternoon},
		{17, msgs.GreetingEvening},
		{22, msgs.GreetingEvening},
		{23, msgs.GreetingLateNight},
	}

	for _, tc := range cases {
		var out bytes.Buffer
		loop := NewLoop(strings.NewReader(""), &out, newTestRegistry(&fakeController{}), msgs).
			WithClock(func() time.Time {
				return time.Date(2025, 9, 1, tc.hour, 30, 0, 0, time.Local)
			})
		loop.Run()
		assert.Contains(t, out.String(), tc.want, "час %d", tc.hour)
	}
}
