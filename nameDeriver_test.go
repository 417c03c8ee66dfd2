package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"my-file.name", "myFileName"},
		{"index", "index"},
		{"snake_case_name", "snakeCaseName"},
		{"already-Camel", "alreadyCamel"},
		{"with.ext.js", "withExtJs"},
		{"trailing-", "trailing-"},
		{"a-1", "a1"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToCamelCase(tt.input))
		})
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"MyFile-x", "_my_file_x"},
		{"myFile", "my_file"},
		{"file.name", "file_name"},
		{"lower", "lower"},
		{"ABC", "_a_b_c"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToSnakeCase(tt.input))
		})
	}
}

func TestNameTransformFor(t *testing.T) {
	assert.Equal(t, "myFile", nameTransformFor(false)("my-file"))
	assert.Equal(t, "my_file", nameTransformFor(true)("my-file"))
}
