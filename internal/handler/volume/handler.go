package volume

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ironcoach/ironcoach/internal/model/coach"
	"github.com/ironcoach/ironcoach/internal/model/health"
	"github.com/ironcoach/ironcoach/pkg/logger"
	"github.com/ironcoach/ironcoach/pkg/utils"
)

// Source serves windowed daily strength volume.
type Source interface {
	DailyVolume(ctx context.Context, since *time.Time) ([]health.DailyVolume, error)
}

// Handler serves the chart data endpoint.
type Handler struct {
	source Source
}

// New creates the volume handler.
func New(source Source) *Handler {
	return &Handler{source: source}
}

// RegisterRoutes mounts the chart data route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/api/strength_volume_data", h.handleVolume)
}

func (h *Handler) handleVolume(w http.ResponseWriter, r *http.Request) {
	rawUnit := r.URL.Query().Get("timeframe_unit")
	if rawUnit == "" {
		// The original endpoint predates timeframes and returned the full
		// history; keep that for clients that omit the parameter.
		rawUnit = string(coach.UnitAll)
	}

	unit, err := coach.ParseUnit(rawUnit)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	sel := coach.Selection{Unit: coach.UnitAll}
	if unit != coach.UnitAll {
		sel, err = coach.NewSelection(unit, r.URL.Query().Get("duration"))
		if errors.Is(err, coach.ErrInvalidDuration) {
			utils.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	points, err := h.source.DailyVolume(r.Context(), windowStart(sel, time.Now().UTC()))
	if err != nil {
		logger.With("component", "volume").WithError(err).Error("volume query failed")
		utils.RespondError(w, http.StatusInternalServerError, "failed to load volume data")
		return
	}

	series := coach.Series{
		Labels: make([]string, 0, len(points)),
		Data:   make([]float64, 0, len(points)),
	}
	for _, p := range points {
		series.Labels = append(series.Labels, p.Date.Format("2006-01-02"))
		series.Data = append(series.Data, p.Volume)
	}

	utils.RespondJSON(w, http.StatusOK, series)
}

// windowStart converts a selection into the inclusive lower bound of the
// window; nil means all-time.
func windowStart(sel coach.Selection, now time.Time) *time.Time {
	switch sel.Unit {
	case coach.UnitWeek:
		start := now.AddDate(0, 0, -7*sel.Duration)
		return &start
	case coach.UnitMonth:
		start := now.AddDate(0, -sel.Duration, 0)
		return &start
	default:
		return nil
	}
}
