package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToString(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "x", "x"},
		{"bytes", []byte("y"), "y"},
		{"bool", true, "true"},
		{"float without exponent", 1234567.0, "1234567"},
		{"float with fraction", 1.25, "1.25"},
		{"int", 42, "42"},
		{"nil", nil, "<nil>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToString(tt.in))
		})
	}
}
