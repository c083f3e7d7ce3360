package coach

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Unit is the aggregation granularity for the volume chart window.
type Unit string

const (
	UnitWeek  Unit = "week"
	UnitMonth Unit = "month"
	UnitAll   Unit = "all"
)

var (
	ErrInvalidUnit     = errors.New("invalid timeframe unit")
	ErrInvalidDuration = errors.New("duration must be a positive whole number")
)

// ParseUnit validates a raw unit string.
func ParseUnit(raw string) (Unit, error) {
	switch Unit(strings.TrimSpace(raw)) {
	case UnitWeek:
		return UnitWeek, nil
	case UnitMonth:
		return UnitMonth, nil
	case UnitAll:
		return UnitAll, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidUnit, raw)
	}
}

// Selection is a validated timeframe choice. Duration is meaningless when
// Unit is UnitAll and is normalized to zero there.
type Selection struct {
	Unit     Unit
	Duration int
}

// NewSelection parses user input into a Selection. The duration field is
// ignored entirely for the all-time unit; otherwise it must parse as a
// positive integer.
func NewSelection(unit Unit, rawDuration string) (Selection, error) {
	if unit == UnitAll {
		return Selection{Unit: UnitAll}, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(rawDuration))
	if err != nil || n <= 0 {
		return Selection{}, ErrInvalidDuration
	}
	return Selection{Unit: unit, Duration: n}, nil
}

// DefaultSelection matches the window the chart renders on first paint.
func DefaultSelection() Selection {
	return Selection{Unit: UnitMonth, Duration: 1}
}

// Query encodes the selection as volume-endpoint query parameters. The
// duration parameter is never emitted for the all-time unit.
func (s Selection) Query() url.Values {
	q := url.Values{}
	q.Set("timeframe_unit", string(s.Unit))
	if s.Unit != UnitAll {
		q.Set("duration", strconv.Itoa(s.Duration))
	}
	return q
}

// DurationField describes how the duration input should be presented for a
// given unit.
type DurationField struct {
	Visible bool
	Label   string
}

// FieldState projects a unit onto the duration control: hidden for all-time,
// relabeled per unit otherwise. Pure UI state, no side effects.
func FieldState(u Unit) DurationField {
	switch u {
	case UnitWeek:
		return DurationField{Visible: true, Label: "Week(s)"}
	case UnitMonth:
		return DurationField{Visible: true, Label: "Month(s)"}
	default:
		return DurationField{}
	}
}
