package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"stratdeck/internal/catalog"
)

// explorerPage browses the catalog one category at a time. The chip row
// cycles All plus each category in category-set order; the list below it
// keeps dataset order within the filter.
type explorerPage struct {
	chip   int // 0 = All, otherwise 1-based index into Categories()
	cursor int
}

func newExplorerPage() *explorerPage {
	return &explorerPage{}
}

func (e *explorerPage) ID() PageID { return PageExplorer }

func (e *explorerPage) Update(a *App, msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Left):
		if e.chip > 0 {
			e.chip--
			e.cursor = 0
		}
	case key.Matches(msg, a.keys.Right):
		if e.chip < catalog.CategoryCount(a.dataset) {
			e.chip++
			e.cursor = 0
		}
	case key.Matches(msg, a.keys.Up):
		if e.cursor > 0 {
			e.cursor--
		}
	case key.Matches(msg, a.keys.Down):
		if e.cursor < len(e.filtered(a))-1 {
			e.cursor++
		}
	}
	return nil
}

func (e *explorerPage) Hints() []key.Binding {
	km := defaultKeyMap()
	return []key.Binding{km.Left, km.Right, km.Up, km.Down}
}

// filtered returns the records under the active chip, in dataset order.
func (e *explorerPage) filtered(a *App) []catalog.Record {
	if e.chip == 0 {
		return a.dataset.Records()
	}
	cats := a.dataset.Categories()
	if e.chip-1 >= len(cats) {
		return nil
	}
	label := cats[e.chip-1]
	var out []catalog.Record
	for _, r := range a.dataset.Records() {
		if r.Category == label {
			out = append(out, r)
		}
	}
	return out
}

func (e *explorerPage) View(a *App, width int) (string, error) {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Framework Explorer"))
	b.WriteString("\n")
	b.WriteString(e.renderChips(a, width))
	b.WriteString("\n\n")

	records := e.filtered(a)
	if len(records) == 0 {
		b.WriteString(dimStyle.Render("No frameworks in this category."))
		return b.String(), nil
	}
	if e.cursor >= len(records) {
		e.cursor = len(records) - 1
	}

	catIndex := categoryIndex(a.dataset)
	start, end := visibleWindow(len(records), e.cursor, a.cfg.UI.RowsPerPage)
	if start > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  ↑ %d more", start)))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		r := records[i]
		marker := "  "
		name := r.Name
		if i == e.cursor {
			marker = cursorStyle.Render("> ")
			name = tableHeadStyle.Render(name)
		}
		tag := ""
		if e.chip == 0 {
			color := categoryColor(catIndex[r.Category])
			tag = " " + chipStyle.Foreground(color).Render(r.Category)
		}
		b.WriteString(marker + name + tag)
		b.WriteString("\n")
	}
	if end < len(records) {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  ↓ %d more", len(records)-end)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(tableHeadStyle.Render(records[e.cursor].Name))
	b.WriteString("\n")
	b.WriteString(renderRecordDetail(records[e.cursor], width, "  "))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d framework(s) shown", len(records))))

	return b.String(), nil
}

func (e *explorerPage) renderChips(a *App, width int) string {
	labels := append([]string{"All"}, a.dataset.Categories()...)
	chips := make([]string, 0, len(labels))
	for i, label := range labels {
		if i == e.chip {
			chips = append(chips, chipActiveStyle.Render(label))
		} else {
			chips = append(chips, chipStyle.Render(label))
		}
	}

	// Flow chips onto as many lines as the width needs.
	var lines []string
	line := ""
	for _, c := range chips {
		candidate := c
		if line != "" {
			candidate = line + " " + c
		}
		if ansi.StringWidth(candidate) > width && line != "" {
			lines = append(lines, line)
			line = c
			continue
		}
		line = candidate
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
