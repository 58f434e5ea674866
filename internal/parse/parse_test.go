package parse

import (
	"errors"
	"strings"
	"testing"
)

func TestNumbers(t *testing.T) {
	values, warnings := Numbers("4, abc, 7")

	if len(values) != 2 || values[0] != 4.0 || values[1] != 7.0 {
		t.Errorf("expected [4 7], got %v", values)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warnings))
	}
	if !strings.Contains(warnings[0], "abc") {
		t.Errorf("warning should name the bad token, got %q", warnings[0])
	}
}

func TestNumbers_OrderPreserved(t *testing.T) {
	values, warnings := Numbers("7, 3.464, -1, 0.5")

	expected := []float64{7, 3.464, -1, 0.5}
	if len(values) != len(expected) {
		t.Fatalf("expected %d values, got %d", len(expected), len(values))
	}
	for i := range expected {
		if values[i] != expected[i] {
			t.Errorf("value %d: expected %v, got %v", i, expected[i], values[i])
		}
	}
	if len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}
}

func TestNumbers_EmptyTokensDropped(t *testing.T) {
	values, warnings := Numbers(" , 4, , 5 ,")

	if len(values) != 2 {
		t.Errorf("expected 2 values, got %v", values)
	}
	if len(warnings) != 0 {
		t.Errorf("empty tokens should not warn, got %v", warnings)
	}
}

func TestNumbers_OneWarningPerBadToken(t *testing.T) {
	values, warnings := Numbers("x, y, 2")

	if len(values) != 1 || values[0] != 2 {
		t.Errorf("expected [2], got %v", values)
	}
	if len(warnings) != 2 {
		t.Errorf("expected 2 warnings, got %v", warnings)
	}
}

func TestRequire(t *testing.T) {
	if _, _, err := Require("4, 5"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	_, warnings, err := Require("nope")
	if !errors.Is(err, ErrNoValues) {
		t.Errorf("expected ErrNoValues, got %v", err)
	}
	if len(warnings) != 1 {
		t.Errorf("warnings should survive the fatal case, got %v", warnings)
	}

	if _, _, err := Require(""); !errors.Is(err, ErrNoValues) {
		t.Errorf("expected ErrNoValues for empty input, got %v", err)
	}
}
