package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmail(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{input: "asha@example.com", expected: true},
		{input: "ravi.k+chit@mail.example.in", expected: true},
		{input: "", expected: false},
		{input: "asha", expected: false},
		{input: "asha@localhost", expected: false},
		{input: "Asha <asha@example.com>", expected: false},
		{input: "@example.com", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsEmail(tt.input))
		})
	}
}

func TestIsName(t *testing.T) {
	assert.True(t, IsName("Asha"))
	assert.False(t, IsName("   "))
	assert.False(t, IsName(strings.Repeat("a", maxNameLength+1)))
}
