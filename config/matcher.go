package config

import (
	"regexp"
	"strings"

	"github.com/notaneet/rasp51cli/utils"
)

// Matcher список требуемых значений: точное совпадение, либо ~регулярка.
// Пустой список совпадает со всем.
type Matcher struct {
	MatchRaw utils.StringEnum
}

func (m *Matcher) Match(text string) bool {
	if len(m.MatchRaw) == 0 {
		return true
	}

	for _, s := range m.MatchRaw {
		if s == text {
			return true
		} else if strings.HasPrefix(s, "~") && regexp.MustCompile(s[1:]).MatchString(text) {
			return true
		}
	}

	return false
}
