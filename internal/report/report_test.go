package report

import (
	"bytes"
	"errors"
	"slices"
	"testing"

	"codeberg.org/snonux/modelcheck/internal/testutil"
)

func TestPrint(t *testing.T) {
	tests := []struct {
		name     string
		names    []string
		err      error
		expected []string
	}{
		{
			name:     "matching models",
			names:    []string{"models/A"},
			expected: []string{"Available Models:", "- models/A"},
		},
		{
			name:     "several models keep order",
			names:    []string{"models/b", "models/a"},
			expected: []string{"Available Models:", "- models/b", "- models/a"},
		},
		{
			name:     "no models",
			names:    []string{},
			expected: []string{"Available Models:"},
		},
		{
			name:     "failure",
			names:    []string{"models/A"},
			err:      errors.New("HTTP Error 403 Forbidden"),
			expected: []string{"Error: HTTP Error 403 Forbidden"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Print(&buf, slices.Values(tt.names), tt.err); err != nil {
				t.Fatalf("Print failed: %v", err)
			}
			testutil.AssertLines(t, buf.String(), tt.expected...)
		})
	}
}

func TestPrint_NilSequence(t *testing.T) {
	var buf bytes.Buffer
	if err := Print(&buf, nil, nil); err != nil {
		t.Fatalf("Print failed: %v", err)
	}
	testutil.AssertLines(t, buf.String(), Header)
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestPrint_WriteError(t *testing.T) {
	if err := Print(failingWriter{}, slices.Values([]string{"models/A"}), nil); err == nil {
		t.Error("Expected write error to be returned")
	}
	if err := Print(failingWriter{}, nil, errors.New("boom")); err == nil {
		t.Error("Expected write error to be returned for error line")
	}
}
