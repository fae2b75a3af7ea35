package converter

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/notaneet/rasp51cli/model"
)

type JSONConverter struct {
	Pretty bool
}

func (j JSONConverter) Write(doc model.Document, out string) error {
	if out == "" {
		return fmt.Errorf("-out can not be empty")
	}

	var ret []byte
	var err error
	if j.Pretty {
		ret, err = json.MarshalIndent(doc, "", "  ")
	} else {
		ret, err = json.Marshal(doc)
	}
	if err != nil {
		return err
	}

	return os.WriteFile(out, ret, 0644)
}
