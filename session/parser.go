package session

import "strings"

// CommandInfo результат разбора одной строки ввода.
// Command == nil значит команда не найдена.
type CommandInfo struct {
	Args        []string
	Description string
	Command     *Command
}

// Known нашлась ли команда
func (i CommandInfo) Known() bool {
	return i.Command != nil
}

// ParseLine разбивает строку по пробелам: первое слово - ключ команды
// (регистр не важен), остальное - аргументы как есть. Корректность
// аргументов здесь не проверяется, это дело самой команды.
func (r *Registry) ParseLine(raw string) CommandInfo {
	tokens := strings.Fields(raw)
	if len(tokens) == 0 {
		return CommandInfo{Args: []string{}}
	}

	info := CommandInfo{Args: tokens[1:]}
	if entry, ok := r.Lookup(tokens[0]); ok {
		cmd := entry.Command
		info.Command = &cmd
		info.Description = entry.Description
	}
	return info
}
