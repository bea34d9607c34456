package builder_test

import (
	"testing"

	"github.com/brindlewood/antcolony/builder"
)

// TestDefaultIDFn verifies decimal conversion, including multi-digit indices.
func TestDefaultIDFn(t *testing.T) {
	tests := []struct {
		input int
		want  string
	}{
		{0, "0"},
		{9, "9"},
		{123, "123"},
	}
	for _, tc := range tests {
		if got := builder.DefaultIDFn(tc.input); got != tc.want {
			t.Errorf("DefaultIDFn(%d): expected %q, got %q", tc.input, tc.want, got)
		}
	}
}
