package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Hello World", "hello-world"},
		{"My Portfolio Project!", "my-portfolio-project"},
		{"Special@#Characters!", "specialcharacters"},
		{"Multiple   Spaces", "multiple-spaces"},
		{"---Dashes---", "dashes"},
		{"already-a-slug", "already-a-slug"},
		{"MiXeD CaSe", "mixed-case"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, GenerateSlug(tt.input), "input: %q", tt.input)
	}
}
