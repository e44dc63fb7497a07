package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInterval(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"45", 45},
		{"0:45", 45},
		{"1:30", 90},
		{"10:00", 600},
		{"0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			seconds, err := parseInterval(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, seconds)
		})
	}
}

func TestParseInterval_Invalid(t *testing.T) {
	invalid := []string{"", "abc", "1:60", "1:-5", "-10", "-1:30", "1:xx"}

	for _, input := range invalid {
		t.Run(input, func(t *testing.T) {
			_, err := parseInterval(input)
			assert.Error(t, err)
		})
	}
}

func TestValidateSets(t *testing.T) {
	assert.NoError(t, validateSets("8"))
	assert.NoError(t, validateSets("1"))
	assert.NoError(t, validateSets("99"))
	assert.Error(t, validateSets("0"))
	assert.Error(t, validateSets("100"))
	assert.Error(t, validateSets("eight"))
}

func TestValidateVolume(t *testing.T) {
	assert.NoError(t, validateVolume("0"))
	assert.NoError(t, validateVolume("100"))
	assert.Error(t, validateVolume("101"))
	assert.Error(t, validateVolume("-1"))
	assert.Error(t, validateVolume("loud"))
}
