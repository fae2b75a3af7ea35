package session

// Action работа команды над списком аргументов
type Action func(args []string)

// Command именованное действие; имя показывается в маркерах выполнения,
// ключ диспетчеризации живёт в реестре
type Command struct {
	Name   string
	action Action
}

func NewCommand(name string, action Action) Command {
	return Command{Name: name, action: action}
}

// Bind фиксирует аргументы и возвращает готовую к запуску команду.
// Сам Command при этом не меняется, его можно привязывать заново.
func (c Command) Bind(args []string) BoundCommand {
	if args == nil {
		args = []string{}
	}
	return BoundCommand{command: c, args: args}
}

// BoundCommand команда с уже привязанными аргументами
type BoundCommand struct {
	command Command
	args    []string
}

// Execute запускает действие с привязанными аргументами
func (b BoundCommand) Execute() {
	if b.command.action == nil {
		return
	}
	b.command.action(b.args)
}
