package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveSpaces(t *testing.T) {
	assert.Equal(t, "a b c", RemoveSpaces("a   b \t c"))
}

func TestMustAtoi(t *testing.T) {
	assert.Equal(t, 42, MustAtoi("42"))
	assert.Equal(t, 0, MustAtoi("сорок два"))
}

func TestParseClock(t *testing.T) {
	for in, want := range map[string]string{
		"8.30":   "08:30",
		"08:30":  "08:30",
		" 14.05": "14:05",
		"23:59":  "23:59",
	} {
		got, err := ParseClock(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "утром", "25:00", "10:61", "10"} {
		_, err := ParseClock(in)
		assert.Error(t, err, in)
	}
}

func TestParseClockRange(t *testing.T) {
	start, end, err := ParseClockRange("8.30-10.05")
	require.NoError(t, err)
	assert.Equal(t, "08:30", start)
	assert.Equal(t, "10:05", end)

	_, _, err = ParseClockRange("8.30")
	assert.Error(t, err)
}

func TestStringEnum(t *testing.T) {
	var e StringEnum
	require.NoError(t, e.Set("a"))
	require.NoError(t, e.Set("b"))
	assert.Equal(t, StringEnum{"a", "b"}, e)
	assert.Equal(t, "string", e.Type())
}
