package timeframe

import (
	"context"
	"sync"

	"github.com/ironcoach/ironcoach/internal/client/chart"
	"github.com/ironcoach/ironcoach/internal/model/coach"
)

// Controller owns the selected aggregation window and drives chart
// refreshes. Validation failures surface as errors for the adapter to alert
// on; no request is issued for them.
type Controller struct {
	presenter *chart.Presenter

	mu      sync.Mutex
	current coach.Selection
}

// NewController starts at the default window (one month), matching the
// chart's first paint.
func NewController(presenter *chart.Presenter) *Controller {
	return &Controller{
		presenter: presenter,
		current:   coach.DefaultSelection(),
	}
}

// Selection returns the currently applied window.
func (c *Controller) Selection() coach.Selection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// FieldState projects a unit onto the duration control without touching the
// applied selection or the network.
func (c *Controller) FieldState(unit coach.Unit) coach.DurationField {
	return coach.FieldState(unit)
}

// Apply validates the raw input and, on success, stores the selection and
// triggers a chart render. coach.ErrInvalidDuration means the input was
// rejected before any request was made.
func (c *Controller) Apply(ctx context.Context, unit coach.Unit, rawDuration string) error {
	sel, err := coach.NewSelection(unit, rawDuration)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.current = sel
	c.mu.Unlock()

	return c.presenter.Render(ctx, sel)
}

// ApplyDefault renders the initial window on startup.
func (c *Controller) ApplyDefault(ctx context.Context) error {
	return c.presenter.Render(ctx, c.Selection())
}
