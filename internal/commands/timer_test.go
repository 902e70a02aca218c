package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimerArgs(t *testing.T) {
	minutes, desc, err := parseTimerArgs([]string{"10", "Descansar", "un", "rato"})
	require.NoError(t, err)
	assert.Equal(t, 10, minutes)
	assert.Equal(t, "Descansar un rato", desc)

	minutes, desc, err = parseTimerArgs([]string{"3"})
	require.NoError(t, err)
	assert.Equal(t, 3, minutes)
	assert.Equal(t, defaultTimerDescription, desc)
}

func TestParseTimerArgs_Invalid(t *testing.T) {
	for _, args := range [][]string{nil, {"abc"}, {"0"}, {"-5"}, {"10081"}} {
		_, _, err := parseTimerArgs(args)
		assert.ErrorIs(t, err, errTimerMinutes, "%v", args)
	}
}
