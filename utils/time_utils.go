package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var clockRE = regexp.MustCompile(`^(\d{1,2})[.:](\d{2})$`)

// ParseClock нормализует время пары ("8.30", "08:30") к виду ЧЧ:ММ
func ParseClock(s string) (string, error) {
	m := clockRE.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "", fmt.Errorf("%q is not a clock value", s)
	}
	h, min := MustAtoi(m[1]), MustAtoi(m[2])
	if h > 23 || min > 59 {
		return "", fmt.Errorf("%q is not a clock value", s)
	}
	return fmt.Sprintf("%02d:%02d", h, min), nil
}

// ParseClockRange разбирает интервал пары вида "8.30-10.05"
func ParseClockRange(s string) (start, end string, err error) {
	spl := strings.SplitN(s, "-", 2)
	if len(spl) != 2 {
		return "", "", fmt.Errorf("%q is not a clock range", s)
	}
	if start, err = ParseClock(spl[0]); err != nil {
		return "", "", err
	}
	if end, err = ParseClock(spl[1]); err != nil {
		return "", "", err
	}
	return start, end, nil
}
