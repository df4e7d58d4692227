package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestSimilar(t *testing.T) {
	candidates := []string{"none", "watch", "line", "word", "output", "stdout", "stderr"}

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "typo suggests correct",
			input:    "wrod",
			expected: []string{"word"},
		},
		{
			name:     "closest first",
			input:    "ine",
			expected: []string{"line", "none"},
		},
		{
			name:     "missing letter",
			input:    "stdrr",
			expected: []string{"stderr"},
		},
		{
			name:     "missing char",
			input:    "watc",
			expected: []string{"watch"},
		},
		{
			name:     "no close match returns nil",
			input:    "xyzzy",
			expected: nil,
		},
		{
			name:     "empty input returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "case insensitive",
			input:    "LINE",
			expected: []string{"line", "none"},
		},
		{
			name:     "exact match returns it",
			input:    "output",
			expected: []string{"output"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SuggestSimilar(tt.input, candidates, 3)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSuggestSimilar_EmptyCandidates(t *testing.T) {
	result := SuggestSimilar("word", nil, 3)
	assert.Nil(t, result)

	result = SuggestSimilar("word", []string{}, 3)
	assert.Nil(t, result)
}
