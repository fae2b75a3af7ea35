package session

import (
	"strings"

	"github.com/notaneet/rasp51cli/config"
)

// Ключевые слова команд
const (
	KeywordSchedule = "schedule"
	KeywordChanges  = "changes"
	KeywordHelp     = "help"
	KeywordParse    = "parse"
	KeywordWrite    = "write"
	KeywordShow     = "show"
	KeywordExit     = "exit"
)

// Controller исполнитель команд; ядро сессии не заглядывает внутрь,
// только дергает способности по именам
type Controller interface {
	ParseSchedule(args []string)
	ParseChanges(args []string)
	ShowHelp()
	Parse(args []string)
	WriteLastResult()
	ShowLastResult()
	Exit()
}

// Entry описание плюс команда для одного ключевого слова
type Entry struct {
	Description string
	Command     Command
}

// Registry неизменяемое после постройки отображение
// ключевое слово -> Entry; ключи нормализуются и при вставке,
// и при поиске
type Registry struct {
	entries map[string]Entry
	order   []string
}

// Канонический порядок команд, в нём же они регистрируются
var keywordOrder = []string{
	KeywordSchedule,
	KeywordChanges,
	KeywordHelp,
	KeywordParse,
	KeywordWrite,
	KeywordShow,
	KeywordExit,
}

// KeywordOrder ключевые слова в каноническом порядке (для справки и т.п.)
func KeywordOrder() []string {
	return append([]string(nil), keywordOrder...)
}

// NewRegistry реестр всех команд сессии с описаниями из локали
func NewRegistry(msgs config.Messages, ctrl Controller) *Registry {
	actions := map[string]Action{
		KeywordSchedule: ctrl.ParseSchedule,
		KeywordChanges:  ctrl.ParseChanges,
		KeywordHelp:     func([]string) { ctrl.ShowHelp() },
		KeywordParse:    ctrl.Parse,
		KeywordWrite:    func([]string) { ctrl.WriteLastResult() },
		KeywordShow:     func([]string) { ctrl.ShowLastResult() },
		KeywordExit:     func([]string) { ctrl.Exit() },
	}

	r := &Registry{entries: map[string]Entry{}}
	for _, keyword := range keywordOrder {
		r.add(keyword, msgs, NewCommand(keyword, actions[keyword]))
	}
	return r
}

func (r *Registry) add(keyword string, msgs config.Messages, cmd Command) {
	key := strings.ToLower(keyword)
	if _, ok := r.entries[key]; ok {
		// повторная регистрация - ошибка программиста, не рантайма
		panic("duplicate command keyword: " + key)
	}
	r.entries[key] = Entry{Description: msgs.Descriptions[key], Command: cmd}
	r.order = append(r.order, key)
}

// Lookup поиск по ключевому слову в любом регистре
func (r *Registry) Lookup(keyword string) (Entry, bool) {
	entry, ok := r.entries[strings.ToLower(keyword)]
	return entry, ok
}

// Keywords ключевые слова в порядке регистрации
func (r *Registry) Keywords() []string {
	return append([]string(nil), r.order...)
}
