package server

import (
	"fmt"
	"math"
	"strings"

	"github.com/amishk599/skillmap/internal/model"
)

var chartColors = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

const (
	barChartWidth  = 640
	barRowHeight   = 28
	barLabelWidth  = 150
	barCountMargin = 40
	pieSize        = 320
)

// Bar is one row of the horizontal skill bar chart.
type Bar struct {
	Skill  string
	Count  int
	Y      int
	Width  int
	TextY  int
	CountX int
}

// BarChart is the geometry for an SVG horizontal bar chart.
type BarChart struct {
	Width      int
	Height     int
	LabelWidth int
	BarHeight  int
	Bars       []Bar
}

// NewBarChart lays out one bar per skill, the longest bar for the top count.
func NewBarChart(skills []model.SkillFrequency) BarChart {
	chart := BarChart{
		Width:      barChartWidth,
		Height:     len(skills) * barRowHeight,
		LabelWidth: barLabelWidth,
		BarHeight:  barRowHeight - 8,
	}

	maxCount := 0
	for _, sf := range skills {
		maxCount = max(maxCount, sf.Count)
	}
	if maxCount == 0 {
		return chart
	}

	span := barChartWidth - barLabelWidth - barCountMargin
	for i, sf := range skills {
		w := sf.Count * span / maxCount
		y := i * barRowHeight
		chart.Bars = append(chart.Bars, Bar{
			Skill:  sf.Skill,
			Count:  sf.Count,
			Y:      y + 4,
			Width:  w,
			TextY:  y + barRowHeight/2 + 5,
			CountX: barLabelWidth + w + 6,
		})
	}
	return chart
}

// Slice is one wedge of the pie chart.
type Slice struct {
	Skill   string
	Percent float64
	Label   string // "42.9%"
	Color   string
	Path    string // SVG path data; empty when Full
	Full    bool   // the only slice, drawn as a circle
	LabelX  float64
	LabelY  float64
}

// PieChart is the geometry for an SVG pie chart with percentage labels.
type PieChart struct {
	Size   int
	Radius float64
	Center float64
	Slices []Slice
}

// NewPieChart splits a circle by each skill's share of total mentions.
// Slices start at twelve o'clock and run clockwise in rank order.
func NewPieChart(skills []model.SkillFrequency) PieChart {
	r := float64(pieSize)/2 - 10
	c := float64(pieSize) / 2
	chart := PieChart{Size: pieSize, Radius: r, Center: c}

	total := 0
	for _, sf := range skills {
		total += sf.Count
	}
	if total == 0 {
		return chart
	}

	angle := -math.Pi / 2
	for i, sf := range skills {
		frac := float64(sf.Count) / float64(total)
		sweep := frac * 2 * math.Pi
		mid := angle + sweep/2

		s := Slice{
			Skill:   sf.Skill,
			Percent: frac * 100,
			Label:   fmt.Sprintf("%.1f%%", frac*100),
			Color:   chartColors[i%len(chartColors)],
			LabelX:  round2(c + 0.65*r*math.Cos(mid)),
			LabelY:  round2(c + 0.65*r*math.Sin(mid)),
		}
		if frac >= 1 {
			s.Full = true
			s.LabelX, s.LabelY = c, c
		} else {
			s.Path = arcPath(c, r, angle, angle+sweep)
		}
		chart.Slices = append(chart.Slices, s)
		angle += sweep
	}
	return chart
}

func arcPath(c, r, from, to float64) string {
	large := 0
	if to-from > math.Pi {
		large = 1
	}
	var b strings.Builder
	fmt.Fprintf(&b, "M %.2f %.2f ", c, c)
	fmt.Fprintf(&b, "L %.2f %.2f ", c+r*math.Cos(from), c+r*math.Sin(from))
	fmt.Fprintf(&b, "A %.2f %.2f 0 %d 1 %.2f %.2f Z", r, r, large, c+r*math.Cos(to), c+r*math.Sin(to))
	return b.String()
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
