package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/notaneet/rasp51cli/config"
)

var (
	greetingStyle = lipgloss.NewStyle().Bold(true)
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	markerStyle   = lipgloss.NewStyle().Faint(true)
)

// Loop интерактивная сессия: приветствие, чтение строк, разбор,
// подтверждение и запуск команд. Завершается только пустой строкой
// или концом ввода.
type Loop struct {
	in       *bufio.Scanner
	out      io.Writer
	registry *Registry
	msgs     config.Messages
	now      func() time.Time
}

func NewLoop(in io.Reader, out io.Writer, registry *Registry, msgs config.Messages) *Loop {
	return &Loop{
		in:       bufio.NewScanner(in),
		out:      out,
		registry: registry,
		msgs:     msgs,
		now:      time.Now,
	}
}

// WithClock подменяет источник времени (для приветствия)
func (l *Loop) WithClock(now func() time.Time) *Loop {
	l.now = now
	return l
}

func (l *Loop) Run() {
	l.println(greetingStyle.Render(l.greeting(l.now().Hour())))

	for {
		l.print(l.msgs.Prompt)
		line, ok := l.readLine()
		if !ok || strings.TrimSpace(line) == "" {
			return
		}

		info := l.registry.ParseLine(line)
		if !info.Known() {
			keyword := strings.Fields(line)[0]
			l.println(noticeStyle.Render(fmt.Sprintf(l.msgs.Unsupported, keyword)))
			continue
		}

		if !l.confirm(info.Description) {
			continue
		}

		l.println(markerStyle.Render(fmt.Sprintf(l.msgs.ExecutionStart, info.Command.Name)))
		info.Command.Bind(info.Args).Execute()
		l.println(markerStyle.Render(fmt.Sprintf(l.msgs.ExecutionDone, info.Command.Name)))
	}
}

// greeting приветствие по часу суток; ровно в 23 своя реплика
func (l *Loop) greeting(hour int) string {
	switch {
	case hour == 23:
		return l.msgs.GreetingLateNight
	case hour <= 6:
		return l.msgs.GreetingNight
	case hour <= 9:
		return l.msgs.GreetingMorning
	case hour <= 16:
		return l.msgs.GreetingAfternoon
	default:
		return l.msgs.GreetingEvening
	}
}

// confirm подтверждением считается только строка "y" целиком (в любом
// регистре), всё остальное (включая конец ввода и пробелы вокруг) - отказ
func (l *Loop) confirm(description string) bool {
	l.print(fmt.Sprintf(l.msgs.ConfirmPrompt, description))
	answer, ok := l.readLine()
	return ok && strings.EqualFold(answer, "y")
}

func (l *Loop) readLine() (string, bool) {
	if !l.in.Scan() {
		return "", false
	}
	return l.in.Text(), true
}

func (l *Loop) print(s string) {
	fmt.Fprint(l.out, s)
}

func (l *Loop) println(s string) {
	fmt.Fprintln(l.out, s)
}
