package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhitespace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  hello   world  ", "hello world"},
		{"line one\nline two\r\nline three", "line one line two line three"},
		{"tabs\tand\t\tspaces", "tabs and spaces"},
		{"", ""},
		{"single", "single"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Whitespace(tt.in), "input: %q", tt.in)
	}
}

func TestAddress(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"123 Main St,Springfield,IL", "123 Main St, Springfield, IL"},
		{"123  Main   St ,  Springfield", "123 Main St, Springfield"},
		{"123 Main St.,Springfield", "123 Main St., Springfield"},
		{"456 Oak Ave, Apt 350, 000 City", "456 Oak Ave, Apt 350,000 City"},
		{"789 Pine Rd.", "789 Pine Rd"},
		{"1 Plaza\nLevel 2, Sydney", "1 Plaza Level 2, Sydney"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Address(tt.in), "input: %q", tt.in)
	}
}

func TestNotes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"3 / 4 acre lot", "3/4 acre lot"},
		{"washer / dryer  included", "washer/dryer included"},
		{"open\nfloor plan", "open floor plan"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Notes(tt.in), "input: %q", tt.in)
	}
}

func TestIdempotence(t *testing.T) {
	inputs := []string{
		"123 Main St.,Springfield , IL  62704",
		"456 Oak Ave, Apt 350, 000 City",
		"789 Pine Rd.",
	}
	for _, in := range inputs {
		once := Address(in)
		assert.Equal(t, once, Address(once), "input: %q", in)
	}

	notes := "washer / dryer\nincluded"
	once := Notes(notes)
	assert.Equal(t, once, Notes(once))
}
