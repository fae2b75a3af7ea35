package converter

import "github.com/notaneet/rasp51cli/model"

// DummyConverter никуда ничего не пишет
type DummyConverter struct{}

func (DummyConverter) Write(model.Document, string) error {
	return nil
}
