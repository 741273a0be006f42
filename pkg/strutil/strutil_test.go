package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSpaces(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"빈 문자열", "", ""},
		{"공백만", "   \t\n ", ""},
		{"앞뒤 공백", "  hello  ", "hello"},
		{"연속 공백", "hello    world", "hello world"},
		{"개행과 탭", "\n\tBreaking\n   News\t", "Breaking News"},
		{"한글", "  안녕   하세요 ", "안녕 하세요"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, NormalizeSpaces(tt.input))
		})
	}
}

func TestIsBlank(t *testing.T) {
	t.Parallel()

	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank(" \r\n\t"))
	assert.False(t, IsBlank(" x "))
}

func TestMaskSensitiveData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"abc", "***"},
		{"abcd", "abcd***"},
		{"abcdefghijkl", "abcd***"},
		{"abcdefghijklmnop", "abcd***mnop"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, MaskSensitiveData(tt.input), "input: %q", tt.input)
	}
}
