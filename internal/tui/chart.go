package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"stratdeck/internal/catalog"
)

// renderCategoryBars draws the category histogram as horizontal bars, one row
// per category. Input order is preserved, so the deterministic ordering from
// CountsPerCategory carries straight through to the screen.
func renderCategoryBars(tallies []catalog.Tally, categories []string, width int) string {
	if len(tallies) == 0 {
		return dimStyle.Render("No category data to display.")
	}
	if width < 24 {
		width = 24
	}

	colorFor := make(map[string]lipgloss.Color, len(categories))
	for i, c := range categories {
		colorFor[c] = categoryColor(i)
	}

	maxCount, total := 0, 0
	nameW := 0
	for _, tl := range tallies {
		if tl.Count > maxCount {
			maxCount = tl.Count
		}
		total += tl.Count
		if w := ansi.StringWidth(tl.Category); w > nameW {
			nameW = w
		}
	}
	if maxCount <= 0 {
		maxCount = 1
	}
	if nameW > 32 {
		nameW = 32
	}

	countW := len(fmt.Sprintf("%d", maxCount))
	pctW := 4
	barW := width - nameW - countW - pctW - 4
	if barW < 4 {
		barW = 4
	}

	var lines []string
	for _, tl := range tallies {
		color := colorFor[tl.Category]
		if color == "" {
			color = colorOverlay1
		}
		filled := int(math.Round(float64(barW) * float64(tl.Count) / float64(maxCount)))
		if filled < 1 && tl.Count > 0 {
			filled = 1
		}
		if filled > barW {
			filled = barW
		}
		pct := 0.0
		if total > 0 {
			pct = float64(tl.Count) / float64(total) * 100
		}

		name := padRight(truncate(tl.Category, nameW), nameW)
		bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
			lipgloss.NewStyle().Foreground(colorSurface2).Render(strings.Repeat("░", barW-filled))
		line := lipgloss.NewStyle().Foreground(color).Render(name) + " " + bar + " " +
			metricValueStyle.Render(fmt.Sprintf("%*d", countW, tl.Count)) + " " +
			dimStyle.Render(fmt.Sprintf("%3.0f%%", pct))
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// connectionBar is one column of the most-connected chart.
type connectionBar struct {
	Name  string
	Count int
}

// renderConnectionsChart draws a vertical bar chart of relation degree for
// the most-connected frameworks. Columns are labelled with name initials;
// the caller renders a legend mapping initials back to full names.
func renderConnectionsChart(bars []connectionBar, width, height int) string {
	if len(bars) == 0 {
		return dimStyle.Render("No relationship data to display.")
	}
	if height < 5 {
		height = 5
	}
	data := make([]barchart.BarData, 0, len(bars))
	for i, b := range bars {
		data = append(data, barchart.BarData{
			Label: abbreviate(b.Name),
			Values: []barchart.BarValue{{
				Name:  b.Name,
				Value: float64(b.Count),
				Style: lipgloss.NewStyle().Foreground(categoryColor(i)),
			}},
		})
	}
	bc := barchart.New(width, height)
	bc.PushAll(data)
	bc.Draw()
	return bc.View()
}

// abbreviate reduces a framework name to word initials ("Porter's Five
// Forces" -> "PFF") for use as a chart column label.
func abbreviate(name string) string {
	var b strings.Builder
	initials := 0
	for _, word := range strings.Fields(name) {
		r := []rune(word)[0]
		if r == '(' && len(word) > 1 {
			r = []rune(word)[1]
		}
		b.WriteRune(r)
		initials++
		if initials == 4 {
			break
		}
	}
	return strings.ToUpper(b.String())
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	if width <= 1 {
		return "…"
	}
	return ansi.Truncate(s, width-1, "") + "…"
}

func padRight(s string, width int) string {
	gap := width - ansi.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
