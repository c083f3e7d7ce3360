package chart

import (
	"context"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ironcoach/ironcoach/internal/model/coach"
	"github.com/ironcoach/ironcoach/pkg/logger"
)

// Handle identifies one live chart instance owned by a Renderer.
type Handle interface{}

// Renderer is the charting capability: draw a line series once, then mutate
// it in place on subsequent windows.
type Renderer interface {
	Create(series coach.Series) (Handle, error)
	Update(handle Handle, series coach.Series) error
}

// Panel controls visibility of the chart region.
type Panel interface {
	SetVisible(visible bool)
}

// SeriesSource fetches the volume payload for a timeframe window.
type SeriesSource interface {
	VolumeSeries(ctx context.Context, sel coach.Selection) (coach.Series, error)
}

// Presenter owns the single chart instance for the page. The first
// successful render creates it; every later render swaps labels and data on
// the same handle. Any fetch or render failure hides the panel and is
// terminal for that call.
type Presenter struct {
	source   SeriesSource
	renderer Renderer
	panel    Panel
	log      *logrus.Entry

	mu     sync.Mutex
	handle Handle
	gen    uint64
}

// NewPresenter wires a presenter to its collaborators.
func NewPresenter(source SeriesSource, renderer Renderer, panel Panel) *Presenter {
	return &Presenter{
		source:   source,
		renderer: renderer,
		panel:    panel,
		log:      logger.With("component", "chart"),
	}
}

// Render fetches the series for the selection and draws it. Overlapping
// calls are ordered by a generation counter: a response that arrives after a
// newer render started is discarded instead of overwriting fresher data.
func (p *Presenter) Render(ctx context.Context, sel coach.Selection) error {
	p.mu.Lock()
	p.gen++
	gen := p.gen
	p.mu.Unlock()

	series, err := p.source.VolumeSeries(ctx, sel)

	p.mu.Lock()
	defer p.mu.Unlock()

	if gen != p.gen {
		p.log.WithField("generation", gen).Debug("discarding superseded chart response")
		return nil
	}

	if err != nil {
		p.log.WithError(err).Warn("volume fetch failed, hiding chart")
		p.panel.SetVisible(false)
		return err
	}

	if p.handle == nil {
		handle, err := p.renderer.Create(series)
		if err != nil {
			p.panel.SetVisible(false)
			return fmt.Errorf("create chart: %w", err)
		}
		p.handle = handle
	} else {
		if err := p.renderer.Update(p.handle, series); err != nil {
			p.panel.SetVisible(false)
			return fmt.Errorf("update chart: %w", err)
		}
	}

	p.panel.SetVisible(true)
	return nil
}
