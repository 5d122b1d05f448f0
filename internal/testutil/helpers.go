package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CreateTestFile creates a test file with content
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// Lines splits output into lines without the trailing empty element
func Lines(output string) []string {
	output = strings.TrimSuffix(output, "\n")
	if output == "" {
		return nil
	}
	return strings.Split(output, "\n")
}

// AssertLines checks that output consists of exactly the expected lines
func AssertLines(t *testing.T, output string, expected ...string) {
	t.Helper()

	actual := Lines(output)
	if len(actual) != len(expected) {
		t.Fatalf("Expected %d lines, got %d\nExpected: %q\nActual: %q", len(expected), len(actual), expected, actual)
	}
	for i := range expected {
		if actual[i] != expected[i] {
			t.Errorf("Line %d mismatch\nExpected: %q\nActual: %q", i, expected[i], actual[i])
		}
	}
}

// AssertSingleErrorLine checks that output is one "Error: " line
func AssertSingleErrorLine(t *testing.T, output string) {
	t.Helper()

	lines := Lines(output)
	if len(lines) != 1 {
		t.Fatalf("Expected exactly one line, got %d: %q", len(lines), lines)
	}
	if !strings.HasPrefix(lines[0], "Error: ") {
		t.Errorf("Expected line to start with 'Error: ', got %q", lines[0])
	}
}
