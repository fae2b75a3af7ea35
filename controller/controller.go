package controller

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/notaneet/rasp51cli/config"
	"github.com/notaneet/rasp51cli/converter"
	"github.com/notaneet/rasp51cli/model"
	"github.com/notaneet/rasp51cli/plugin"
	"github.com/notaneet/rasp51cli/session"
)

// Console исполнитель команд сессии: парсит документы через плагин
// учреждения, держит последний результат и пишет его через конвертер.
// Ошибки наружу не отдаёт, только печатает.
type Console struct {
	out  io.Writer
	msgs config.Messages
	opts Options

	last model.Document
	week *model.WeekSchedule //последнее разобранное расписание, для сверки изменений
}

type Options struct {
	Plugin    plugin.Plugin
	Converter string //имя конвертера для write
	Output    string //куда write пишет результат
	Terminate func() //вызывается командой exit
}

func New(out io.Writer, msgs config.Messages, opts Options) *Console {
	return &Console{out: out, msgs: msgs, opts: opts}
}

// Контролируем, что Console остаётся исполнителем всех команд сессии
var _ session.Controller = (*Console)(nil)

func (c *Console) ParseSchedule(args []string) {
	path, ok := c.pathArg(args)
	if !ok {
		return
	}

	week, err := c.opts.Plugin.ParseSchedule(path)
	if err != nil {
		c.printf(c.msgs.ParseFail, err)
		return
	}

	c.last = week
	c.week = week
	c.printf(c.msgs.ParseOK, fmt.Sprintf("%s, %s", week.GroupName, path))
}

func (c *Console) ParseChanges(args []string) {
	path, ok := c.pathArg(args)
	if !ok {
		return
	}

	changes, err := c.opts.Plugin.ParseChanges(path)
	if err != nil {
		c.printf(c.msgs.ParseFail, err)
		return
	}

	c.last = changes
	c.printf(c.msgs.ParseOK, fmt.Sprintf("%s, %s", changes.Day, path))

	// если расписание уже загружено, подскажем, что именно затронуто
	if c.week != nil {
		if day, ok := c.week.DayFor(changes.Day); ok {
			c.printf(c.msgs.ChangesNote, changes.Day, len(day.Lessons))
		}
	}
}

func (c *Console) ShowHelp() {
	c.println(c.msgs.HelpHeader)
	for _, keyword := range session.KeywordOrder() {
		c.println(fmt.Sprintf("  %-8s - %s", keyword, c.msgs.Descriptions[keyword]))
	}
}

// Parse общий запуск парсинга: parse <schedule|changes> <файл>
func (c *Console) Parse(args []string) {
	if len(args) < 2 {
		c.println(c.msgs.ParseUsage)
		return
	}

	switch strings.ToLower(args[0]) {
	case "schedule", "расписание":
		c.ParseSchedule(args[1:])
	case "changes", "изменения":
		c.ParseChanges(args[1:])
	default:
		c.println(c.msgs.ParseUsage)
	}
}

func (c *Console) WriteLastResult() {
	if c.last == nil {
		c.println(c.msgs.NothingToShow)
		return
	}

	if err := converter.Converter(c.opts.Converter).Write(c.last, c.opts.Output); err != nil {
		c.printf(c.msgs.WriteFail, err)
		return
	}
	c.printf(c.msgs.WriteOK, c.opts.Output)
}

func (c *Console) ShowLastResult() {
	if c.last == nil {
		c.println(c.msgs.NothingToShow)
		return
	}

	pretty, err := json.MarshalIndent(c.last, "", "  ")
	if err != nil {
		c.printf(c.msgs.WriteFail, err)
		return
	}
	c.println(string(pretty))
}

func (c *Console) Exit() {
	c.println(c.msgs.Farewell)
	if c.opts.Terminate != nil {
		c.opts.Terminate()
	}
}

// LastResult последний разобранный документ, nil если ещё ничего нет
func (c *Console) LastResult() model.Document {
	return c.last
}

func (c *Console) pathArg(args []string) (string, bool) {
	if len(args) == 0 {
		c.println(c.msgs.PathRequired)
		return "", false
	}
	return args[0], true
}

func (c *Console) printf(format string, a ...any) {
	fmt.Fprintf(c.out, format+"\n", a...)
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}
