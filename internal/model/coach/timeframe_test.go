package coach

import (
	"errors"
	"testing"
)

func TestNewSelectionRejectsBadDurations(t *testing.T) {
	for _, raw := range []string{"", "0", "-3", "abc", "1.5"} {
		if _, err := NewSelection(UnitWeek, raw); !errors.Is(err, ErrInvalidDuration) {
			t.Fatalf("duration %q: expected ErrInvalidDuration, got %v", raw, err)
		}
	}
}

func TestNewSelectionAllIgnoresDuration(t *testing.T) {
	sel, err := NewSelection(UnitAll, "garbage")
	if err != nil {
		t.Fatalf("all-time selection should never validate duration: %v", err)
	}
	if sel.Duration != 0 {
		t.Fatalf("expected normalized zero duration, got %d", sel.Duration)
	}
}

func TestSelectionQueryOmitsDurationForAll(t *testing.T) {
	q := Selection{Unit: UnitAll, Duration: 42}.Query()
	if q.Get("timeframe_unit") != "all" {
		t.Fatalf("unexpected unit param: %q", q.Get("timeframe_unit"))
	}
	if q.Has("duration") {
		t.Fatal("duration must never be sent for the all-time unit")
	}
}

func TestSelectionQueryIncludesDuration(t *testing.T) {
	q := Selection{Unit: UnitWeek, Duration: 3}.Query()
	if got := q.Get("duration"); got != "3" {
		t.Fatalf("expected duration=3, got %q", got)
	}
}

func TestDefaultSelection(t *testing.T) {
	sel := DefaultSelection()
	if sel.Unit != UnitMonth || sel.Duration != 1 {
		t.Fatalf("unexpected default selection: %+v", sel)
	}
}

func TestFieldState(t *testing.T) {
	if f := FieldState(UnitAll); f.Visible {
		t.Fatal("duration field must be hidden for all-time")
	}
	if f := FieldState(UnitWeek); !f.Visible || f.Label != "Week(s)" {
		t.Fatalf("unexpected week field state: %+v", f)
	}
	if f := FieldState(UnitMonth); !f.Visible || f.Label != "Month(s)" {
		t.Fatalf("unexpected month field state: %+v", f)
	}
}

func TestParseUnit(t *testing.T) {
	if _, err := ParseUnit("fortnight"); !errors.Is(err, ErrInvalidUnit) {
		t.Fatalf("expected ErrInvalidUnit, got %v", err)
	}
	u, err := ParseUnit(" month ")
	if err != nil || u != UnitMonth {
		t.Fatalf("expected month, got %q err=%v", u, err)
	}
}

func TestSeriesValidate(t *testing.T) {
	ok := Series{Labels: []string{"2025-01-01"}, Data: []float64{120}}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid series rejected: %v", err)
	}
	bad := Series{Labels: []string{"2025-01-01"}, Data: nil}
	if err := bad.Validate(); err == nil {
		t.Fatal("expected mismatch error")
	}
}
