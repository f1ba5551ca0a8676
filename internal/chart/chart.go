// Package chart renders dashboard data as terminal bar charts.
package chart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const barWidth = 40

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	labelStyle = lipgloss.NewStyle().Width(16)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

// Row is one labelled value in a bar chart.
type Row struct {
	Label string
	Value float64
}

// Render draws rows as a horizontal bar chart, scaled to the largest
// value. An empty row set renders the title with a "no data" note.
func Render(title string, rows []Row) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	if len(rows) == 0 {
		b.WriteString(faintStyle.Render("  no data"))
		b.WriteString("\n")
		return b.String()
	}

	max := rows[0].Value
	for _, r := range rows[1:] {
		if r.Value > max {
			max = r.Value
		}
	}

	for _, r := range rows {
		width := 0
		if max > 0 {
			width = int(r.Value / max * barWidth)
		}
		if width == 0 && r.Value > 0 {
			width = 1
		}
		bar := barStyle.Render(strings.Repeat("█", width))
		b.WriteString(fmt.Sprintf("%s %s %.0f\n",
			labelStyle.Render(r.Label), bar, r.Value))
	}
	return b.String()
}

// Gauge draws a single value against a target, for the calories-consumed
// versus maintenance view.
func Gauge(label string, value, target float64) string {
	width := barWidth
	filled := 0
	if target > 0 {
		filled = int(value / target * float64(width))
	}
	if filled > width {
		filled = width
	}
	bar := barStyle.Render(strings.Repeat("█", filled)) +
		faintStyle.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %s %.0f / %.0f\n", labelStyle.Render(label), bar, value, target)
}
