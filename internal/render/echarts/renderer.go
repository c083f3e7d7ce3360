// Package echarts adapts go-echarts as the chart capability behind the
// presenter: draw a single line series, then redraw it in place when the
// timeframe window changes.
package echarts

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/ironcoach/ironcoach/internal/client/chart"
	"github.com/ironcoach/ironcoach/internal/model/coach"
)

// SeriesName labels the single dataset on the volume chart.
const SeriesName = "Total Daily Strength Volume (lbs)"

// Renderer writes the chart as a standalone HTML page. It implements
// chart.Renderer; the presenter guarantees at most one live instance.
type Renderer struct {
	outputPath string
}

// New builds a renderer that writes the chart page to outputPath.
func New(outputPath string) *Renderer {
	return &Renderer{outputPath: outputPath}
}

// instance is the live chart handle. Axis and legend configuration are set
// once at creation; updates only swap labels and values.
type instance struct {
	line *charts.Line
}

// Create draws a fresh line chart: filled area, y-axis pinned to zero,
// legend on top, grid padding reserved for axis labels.
func (r *Renderer) Create(series coach.Series) (chart.Handle, error) {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Strength Training Volume",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
			Top:  "top",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "category",
			AxisLabel: &opts.AxisLabel{
				Rotate: 45,
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Min:  0,
		}),
		charts.WithGridOpts(opts.Grid{
			Left:   "10%",
			Right:  "5%",
			Bottom: "15%",
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "100%",
			Height: "450px",
		}),
	)

	inst := &instance{line: line}
	if err := r.draw(inst, series); err != nil {
		return nil, err
	}
	return inst, nil
}

// Update swaps the labels and values on an existing chart and re-renders
// the page. Axes and legend are left untouched.
func (r *Renderer) Update(handle chart.Handle, series coach.Series) error {
	inst, ok := handle.(*instance)
	if !ok {
		return fmt.Errorf("unexpected chart handle %T", handle)
	}
	return r.draw(inst, series)
}

func (r *Renderer) draw(inst *instance, series coach.Series) error {
	data := make([]opts.LineData, len(series.Data))
	for i, v := range series.Data {
		data[i] = opts.LineData{Value: v}
	}

	// MultiSeries reset keeps the instance identity while replacing the
	// dataset, the redraw equivalent of a label/data swap.
	inst.line.MultiSeries = nil
	inst.line.SetXAxis(series.Labels)
	// Render copies SetXAxis data into the axis only on the first draw, so
	// redraws must write the labels into the axis directly.
	inst.line.XAxisList[0].Data = series.Labels
	inst.line.AddSeries(SeriesName, data,
		charts.WithLineChartOpts(opts.LineChart{
			Smooth: opts.Bool(true),
		}),
		charts.WithAreaStyleOpts(opts.AreaStyle{
			Opacity: 0.3,
		}),
	)

	var buf bytes.Buffer
	if err := inst.line.Render(&buf); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	if err := os.WriteFile(r.outputPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write chart page: %w", err)
	}
	return nil
}
