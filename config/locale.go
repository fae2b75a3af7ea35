package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Messages все тексты сессии для одной локали
type Messages struct {
	GreetingNight     string `yaml:"greeting_night"`
	GreetingMorning   string `yaml:"greeting_morning"`
	GreetingAfternoon string `yaml:"greeting_afternoon"`
	GreetingEvening   string `yaml:"greeting_evening"`
	GreetingLateNight string `yaml:"greeting_late_night"` //Ровно 23 часа
	Prompt            string `yaml:"prompt"`
	ConfirmPrompt     string `yaml:"confirm_prompt"` //%s - описание команды
	Unsupported       string `yaml:"unsupported"`    //%s - введённое слово
	ExecutionStart    string `yaml:"execution_start"` //%s - имя команды
	ExecutionDone     string `yaml:"execution_done"`  //%s - имя команды
	Farewell          string `yaml:"farewell"`
	HelpHeader        string `yaml:"help_header"`
	ParseOK           string `yaml:"parse_ok"`     //%s - что именно распарсили
	ParseFail         string `yaml:"parse_fail"`   //%s - причина
	ParseUsage        string `yaml:"parse_usage"`
	PathRequired      string `yaml:"path_required"`
	NothingToShow     string `yaml:"nothing_to_show"`
	ChangesNote       string `yaml:"changes_note"` //%s - день, %d - занятий в загруженном расписании
	WriteOK           string `yaml:"write_ok"` //%s - куда записали
	WriteFail         string `yaml:"write_fail"` //%s - причина

	//Описания команд по ключевым словам
	Descriptions map[string]string `yaml:"descriptions"`
}

// Locales тексты по тегу локали
type Locales map[string]Messages

// DefaultLocale локаль по умолчанию
const DefaultLocale = "ru"

// DefaultLocales встроенные тексты
func DefaultLocales() Locales {
	return Locales{
		"ru": {
			GreetingNight:     "Доброй ночи! Не спится?",
			GreetingMorning:   "Доброе утро!",
			GreetingAfternoon: "Добрый день!",
			GreetingEvening:   "Добрый вечер!",
			GreetingLateNight: "Почти полночь, а расписание само себя не посмотрит.",
			Prompt:            "> ",
			ConfirmPrompt:     "%s. Выполнить? [y/n]: ",
			Unsupported:       "Команда %q не поддерживается, введите help для списка команд.",
			ExecutionStart:    "--- %s: начало ---",
			ExecutionDone:     "--- %s: готово ---",
			Farewell:          "До встречи!",
			HelpHeader:        "Доступные команды:",
			ParseOK:           "Разобрано: %s",
			ParseFail:         "Ошибка при парсинге, %s",
			ParseUsage:        "Использование: parse <schedule|changes> <файл>",
			PathRequired:      "Нужно указать путь к файлу.",
			NothingToShow:     "Пока ничего не разобрано.",
			ChangesNote:       "Изменения на %s: сейчас в расписании %d занятий.",
			WriteOK:           "Записано в %s",
			WriteFail:         "Ошибка в сохранении, %s",
			Descriptions: map[string]string{
				"schedule": "разобрать документ с расписанием группы на неделю",
				"changes":  "разобрать документ с изменениями в расписании",
				"help":     "показать список команд",
				"parse":    "общий запуск парсинга: parse <schedule|changes> <файл>",
				"write":    "сохранить последний результат",
				"show":     "показать последний результат",
				"exit":     "завершить сессию",
			},
		},
		"en": {
			GreetingNight:     "Good night! Can't sleep?",
			GreetingMorning:   "Good morning!",
			GreetingAfternoon: "Good afternoon!",
			GreetingEvening:   "Good evening!",
			GreetingLateNight: "Almost midnight, and the schedule won't read itself.",
			Prompt:            "> ",
			ConfirmPrompt:     "%s. Run it? [y/n]: ",
			Unsupported:       "Command %q is not supported, type help for the list.",
			ExecutionStart:    "--- %s: start ---",
			ExecutionDone:     "--- %s: done ---",
			Farewell:          "See you!",
			HelpHeader:        "Available commands:",
			ParseOK:           "Parsed: %s",
			ParseFail:         "Parsing failed, %s",
			ParseUsage:        "Usage: parse <schedule|changes> <file>",
			PathRequired:      "A file path is required.",
			NothingToShow:     "Nothing has been parsed yet.",
			ChangesNote:       "Changes for %s: the loaded schedule has %d lessons that day.",
			WriteOK:           "Written to %s",
			WriteFail:         "Writing failed, %s",
			Descriptions: map[string]string{
				"schedule": "parse a weekly group schedule document",
				"changes":  "parse a schedule changes document",
				"help":     "show the command list",
				"parse":    "generic parsing entry: parse <schedule|changes> <file>",
				"write":    "persist the last produced result",
				"show":     "print the last produced result",
				"exit":     "terminate the session",
			},
		},
	}
}

// MessagesFor тексты локали, при незнакомом теге берётся локаль по умолчанию
func (l Locales) MessagesFor(tag string) Messages {
	if m, ok := l[tag]; ok {
		return m
	}
	return l[DefaultLocale]
}

// LoadLocales встроенные тексты плюс переопределения из yaml файла.
// Локаль из файла заменяет встроенную целиком, недостающие описания
// команд дополняются из встроенной.
func LoadLocales(path string) (Locales, error) {
	locales := DefaultLocales()
	if path == "" {
		return locales, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("locale file: %w", err)
	}

	var override Locales
	if err := yaml.Unmarshal(raw, &override); err != nil {
		return nil, fmt.Errorf("locale file %s: %w", path, err)
	}

	for tag, msgs := range override {
		base, ok := locales[tag]
		if !ok {
			base = locales[DefaultLocale]
		}
		if msgs.Descriptions == nil {
			msgs.Descriptions = map[string]string{}
		}
		for keyword, desc := range base.Descriptions {
			if _, ok := msgs.Descriptions[keyword]; !ok {
				msgs.Descriptions[keyword] = desc
			}
		}
		locales[tag] = msgs
	}

	return locales, nil
}
