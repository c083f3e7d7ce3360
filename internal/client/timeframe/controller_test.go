package timeframe

import (
	"context"
	"errors"
	"testing"

	"github.com/ironcoach/ironcoach/internal/client/chart"
	"github.com/ironcoach/ironcoach/internal/model/coach"
)

type countingSource struct {
	calls int
	last  coach.Selection
}

func (c *countingSource) VolumeSeries(_ context.Context, sel coach.Selection) (coach.Series, error) {
	c.calls++
	c.last = sel
	return coach.Series{}, nil
}

type nopRenderer struct{}

func (nopRenderer) Create(coach.Series) (chart.Handle, error) { return struct{}{}, nil }
func (nopRenderer) Update(chart.Handle, coach.Series) error   { return nil }

type nopPanel struct{}

func (nopPanel) SetVisible(bool) {}

func setup() (*Controller, *countingSource) {
	src := &countingSource{}
	p := chart.NewPresenter(src, nopRenderer{}, nopPanel{})
	return NewController(p), src
}

func TestApplyRejectsInvalidDurationWithoutRequest(t *testing.T) {
	c, src := setup()

	for _, raw := range []string{"", "0", "-1", "three"} {
		if err := c.Apply(context.Background(), coach.UnitWeek, raw); !errors.Is(err, coach.ErrInvalidDuration) {
			t.Fatalf("duration %q: expected ErrInvalidDuration, got %v", raw, err)
		}
	}
	if src.calls != 0 {
		t.Fatalf("no network request expected for invalid input, got %d", src.calls)
	}
	if got := c.Selection(); got != coach.DefaultSelection() {
		t.Fatalf("selection must be untouched on validation failure: %+v", got)
	}
}

func TestApplyAllIgnoresDurationField(t *testing.T) {
	c, src := setup()

	if err := c.Apply(context.Background(), coach.UnitAll, "junk"); err != nil {
		t.Fatalf("Apply err: %v", err)
	}
	if src.calls != 1 || src.last.Unit != coach.UnitAll {
		t.Fatalf("expected one all-time render, got calls=%d last=%+v", src.calls, src.last)
	}
}

func TestApplyStoresSelectionAndRenders(t *testing.T) {
	c, src := setup()

	if err := c.Apply(context.Background(), coach.UnitWeek, "6"); err != nil {
		t.Fatalf("Apply err: %v", err)
	}
	want := coach.Selection{Unit: coach.UnitWeek, Duration: 6}
	if c.Selection() != want {
		t.Fatalf("selection not stored: %+v", c.Selection())
	}
	if src.last != want {
		t.Fatalf("render used wrong selection: %+v", src.last)
	}
}

func TestApplyDefaultRendersInitialWindow(t *testing.T) {
	c, src := setup()

	if err := c.ApplyDefault(context.Background()); err != nil {
		t.Fatalf("ApplyDefault err: %v", err)
	}
	if src.last != coach.DefaultSelection() {
		t.Fatalf("expected default window, got %+v", src.last)
	}
}
