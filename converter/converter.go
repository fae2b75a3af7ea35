package converter

import "github.com/notaneet/rasp51cli/model"

// IConverter запись результата парсинга (расписание или изменения)
type IConverter interface {
	Write(doc model.Document, out string) error
}
