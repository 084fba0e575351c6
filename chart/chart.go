// Copyright 2026 The ttffstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart draws the figures that accompany the analysis:
// histograms, box plots and normal Q-Q plots, one panel per group,
// side by side in a single figure.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrNoData is returned for a panel without values.
var ErrNoData = errors.New("no data to plot")

// Bins is the number of histogram bins.
const Bins = 10

// DPI is the resolution of PNG output.
const DPI = 100

// A Panel is the data of one plot of a figure.
type Panel struct {
	// Title is drawn above the panel and XLabel below it.
	Title  string
	XLabel string

	// Values are the numeric data. If Labels is set the panel is
	// categorical and Values is ignored.
	Values []float64
	Labels []string

	Color color.Color
}

// A Figure is a row of plots with a common title and axis labels.
type Figure struct {
	Title  string
	XLabel string
	YLabel string

	Width, Height vg.Length

	Plots []*plot.Plot
}

// Histograms returns a figure with a histogram of each panel. Panels
// with Labels get a bar chart of label counts.
func Histograms(title string, panels []Panel) (*Figure, error) {
	f := &Figure{Title: title, Width: 8 * vg.Inch, Height: 5 * vg.Inch}
	for _, p := range panels {
		var pl *plot.Plot
		var err error
		if p.Labels != nil {
			pl, err = counts(p)
		} else {
			pl, err = histogram(p)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.name(), err)
		}
		f.Plots = append(f.Plots, pl)
	}
	return f, nil
}

// BoxPlots returns a figure with a horizontal box plot of each panel.
func BoxPlots(title string, panels []Panel) (*Figure, error) {
	f := &Figure{Title: title, Width: 8 * vg.Inch, Height: 2 * vg.Inch}
	for _, p := range panels {
		if len(p.Values) == 0 {
			return nil, fmt.Errorf("%s: %w", p.name(), ErrNoData)
		}
		pl := newPlot(p)
		b, err := plotter.NewBoxPlot(vg.Points(30), 0, plotter.Values(p.Values))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.name(), err)
		}
		b.Horizontal = true
		b.FillColor = p.Color
		pl.Add(b)
		pl.HideY()
		f.Plots = append(f.Plots, pl)
	}
	return f, nil
}

// QQPlots returns a figure with a normal Q-Q plot of each panel: the
// sorted values against the theoretical quantiles, with their least
// squares line and its confidence band.
func QQPlots(title string, panels []Panel) (*Figure, error) {
	f := &Figure{
		Title:  title,
		XLabel: "Dane teoretyczne",
		YLabel: "Dane doświadczalne",
		Width:  8 * vg.Inch,
		Height: 3 * vg.Inch,
	}
	for _, p := range panels {
		if len(p.Values) < 2 {
			return nil, fmt.Errorf("%s: %w", p.name(), ErrNoData)
		}
		theo, sample := Quantiles(p.Values)
		pts := make(plotter.XYs, len(theo))
		for i := range theo {
			pts[i] = plotter.XY{X: theo[i], Y: sample[i]}
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.name(), err)
		}
		sc.GlyphStyle = draw.GlyphStyle{Color: p.Color, Radius: vg.Points(3), Shape: draw.CircleGlyph{}}

		a, b := Fit(theo, sample)
		line := plotter.NewFunction(func(x float64) float64 { return a + b*x })
		line.XMin, line.XMax = theo[0], theo[len(theo)-1]
		line.Color = p.Color
		line.Width = vg.Points(1.5)

		pl := newPlot(p)
		pl.Add(plotter.NewGrid())
		if lo, hi := Band(theo, sample, a, b, Confidence); lo != nil {
			band, err := bandPolygon(theo, lo, hi, translucent(p.Color))
			if err != nil {
				return nil, fmt.Errorf("%s: %w", p.name(), err)
			}
			pl.Add(band)
		}
		pl.Add(sc, line)
		f.Plots = append(f.Plots, pl)
	}
	return f, nil
}

// bandPolygon outlines the area between lo and hi over xs.
func bandPolygon(xs, lo, hi []float64, c color.Color) (*plotter.Polygon, error) {
	pts := make(plotter.XYs, 0, 2*len(xs))
	for i := range xs {
		pts = append(pts, plotter.XY{X: xs[i], Y: hi[i]})
	}
	for i := len(xs) - 1; i >= 0; i-- {
		pts = append(pts, plotter.XY{X: xs[i], Y: lo[i]})
	}
	poly, err := plotter.NewPolygon(pts)
	if err != nil {
		return nil, err
	}
	poly.Color = c
	poly.LineStyle.Color = c
	poly.LineStyle.Width = 0
	return poly, nil
}

// translucent returns c at a quarter of its opacity.
func translucent(c color.Color) color.Color {
	if c == nil {
		c = color.Gray{Y: 0x80}
	}
	r, g, b, a := c.RGBA()
	return color.RGBA64{R: uint16(r / 4), G: uint16(g / 4), B: uint16(b / 4), A: uint16(a / 4)}
}

func (p Panel) name() string {
	if p.Title != "" {
		return p.Title
	}
	return p.XLabel
}

func newPlot(p Panel) *plot.Plot {
	pl := plot.New()
	pl.Title.Text = p.Title
	pl.X.Label.Text = p.XLabel
	return pl
}

func histogram(p Panel) (*plot.Plot, error) {
	if len(p.Values) == 0 {
		return nil, ErrNoData
	}
	h, err := plotter.NewHist(plotter.Values(p.Values), Bins)
	if err != nil {
		return nil, err
	}
	h.FillColor = p.Color
	pl := newPlot(p)
	pl.Add(h)
	pl.Y.Min = 0
	pl.Y.Tick.Marker = plot.TickerFunc(integerTicks)
	return pl, nil
}

// counts draws a bar for each distinct label.
func counts(p Panel) (*plot.Plot, error) {
	n := make(map[string]int)
	for _, l := range p.Labels {
		if l != "" {
			n[l]++
		}
	}
	if len(n) == 0 {
		return nil, ErrNoData
	}
	names := make([]string, 0, len(n))
	for l := range n {
		names = append(names, l)
	}
	sort.Strings(names)
	vs := make(plotter.Values, len(names))
	for i, l := range names {
		vs[i] = float64(n[l])
	}
	bars, err := plotter.NewBarChart(vs, vg.Points(20))
	if err != nil {
		return nil, err
	}
	bars.Color = p.Color
	pl := newPlot(p)
	pl.Add(bars)
	pl.NominalX(names...)
	pl.Y.Min = 0
	pl.Y.Tick.Marker = plot.TickerFunc(integerTicks)
	return pl, nil
}

// integerTicks marks only whole numbers, since the y axis of a
// histogram counts occurrences.
func integerTicks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for _, t := range (plot.DefaultTicks{}).Ticks(min, max) {
		if t.Label != "" && t.Value == math.Trunc(t.Value) {
			ticks = append(ticks, plot.Tick{Value: t.Value, Label: strconv.FormatFloat(t.Value, 'f', -1, 64)})
		}
	}
	if len(ticks) >= 2 {
		return ticks
	}
	ticks = ticks[:0]
	for v := math.Ceil(min); v <= max; v++ {
		ticks = append(ticks, plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'f', -1, 64)})
	}
	return ticks
}

func textStyle(size vg.Length) text.Style {
	return text.Style{
		Color:   color.Black,
		Font:    font.From(plot.DefaultFont, size),
		XAlign:  draw.XCenter,
		YAlign:  draw.YTop,
		Handler: plot.DefaultTextHandler,
	}
}

// Draw draws the figure on c.
func (f *Figure) Draw(c draw.Canvas) {
	const pad = vg.Length(4)
	if f.Title != "" {
		sty := textStyle(14)
		c.FillText(sty, vg.Point{X: c.Center().X, Y: c.Max.Y - pad}, f.Title)
		c = draw.Crop(c, 0, 0, 0, -(sty.Height(f.Title) + 2*pad))
	}
	if f.XLabel != "" {
		sty := textStyle(12)
		sty.YAlign = draw.YBottom
		c.FillText(sty, vg.Point{X: c.Center().X, Y: c.Min.Y + pad}, f.XLabel)
		c = draw.Crop(c, 0, 0, sty.Height(f.XLabel)+2*pad, 0)
	}
	if f.YLabel != "" {
		sty := textStyle(12)
		sty.YAlign = draw.YBottom
		sty.Rotation = math.Pi / 2
		h := sty.Height(f.YLabel)
		c.FillText(sty, vg.Point{X: c.Min.X + pad + h - sty.FontExtents().Descent, Y: c.Center().Y}, f.YLabel)
		c = draw.Crop(c, h+2*pad, 0, 0, 0)
	}
	if len(f.Plots) == 0 {
		return
	}
	tiles := draw.Tiles{Rows: 1, Cols: len(f.Plots), PadX: vg.Millimeter * 4, PadRight: pad}
	cs := plot.Align([][]*plot.Plot{f.Plots}, tiles, c)
	for i, pl := range f.Plots {
		pl.Draw(cs[0][i])
	}
}

// Save writes the figure to name.png and name.eps in dir, creating dir
// if needed, and returns the paths written.
func (f *Figure) Save(dir, name string) ([]string, error) {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return nil, err
	}
	png := vgimg.PngCanvas{Canvas: vgimg.NewWith(
		vgimg.UseWH(f.Width, f.Height),
		vgimg.UseDPI(DPI),
		vgimg.UseBackgroundColor(color.White),
	)}
	f.Draw(draw.New(png))
	eps := vgeps.NewTitle(f.Width, f.Height, f.Title)
	f.Draw(draw.New(eps))

	var paths []string
	for _, out := range []struct {
		ext string
		w   io.WriterTo
	}{{".png", png}, {".eps", eps}} {
		path := filepath.Join(dir, name+out.ext)
		if err := writeFile(path, out.w); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFile(path string, w io.WriterTo) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := w.WriteTo(file); err != nil {
		file.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return file.Close()
}

// ParseColor parses a "#rrggbb" color.
func ParseColor(s string) (color.Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || len(hex) != 6 {
		return nil, fmt.Errorf("bad color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("bad color %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
