package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const maxCompare = 3

// comparePage picks up to three frameworks from the catalog and lays their
// attributes out in side-by-side columns.
type comparePage struct {
	cursor   int
	selected map[string]bool // keyed by framework name
	order    []string        // selection order, for column layout
}

func newComparePage() *comparePage {
	return &comparePage{selected: make(map[string]bool, maxCompare)}
}

func (c *comparePage) ID() PageID { return PageCompare }

func (c *comparePage) Update(a *App, msg tea.KeyMsg) tea.Cmd {
	records := a.dataset.Records()
	switch {
	case key.Matches(msg, a.keys.Up):
		if c.cursor > 0 {
			c.cursor--
		}
	case key.Matches(msg, a.keys.Down):
		if c.cursor < len(records)-1 {
			c.cursor++
		}
	case key.Matches(msg, a.keys.Select):
		if c.cursor < len(records) {
			c.toggle(a, records[c.cursor].Name)
		}
	case key.Matches(msg, a.keys.Back):
		c.selected = make(map[string]bool, maxCompare)
		c.order = nil
	}
	return nil
}

func (c *comparePage) toggle(a *App, name string) {
	if c.selected[name] {
		delete(c.selected, name)
		for i, n := range c.order {
			if n == name {
				c.order = append(c.order[:i], c.order[i+1:]...)
				break
			}
		}
		return
	}
	if len(c.order) >= maxCompare {
		a.SetStatus(fmt.Sprintf("Select at most %d frameworks to compare.", maxCompare))
		return
	}
	c.selected[name] = true
	c.order = append(c.order, name)
}

func (c *comparePage) Hints() []key.Binding {
	km := defaultKeyMap()
	return []key.Binding{km.Up, km.Down, km.Select, km.Back}
}

func (c *comparePage) View(a *App, width int) (string, error) {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Comparative Analysis"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Select up to %d frameworks (enter toggles, esc clears).", maxCompare)))
	b.WriteString("\n\n")

	records := a.dataset.Records()
	if c.cursor >= len(records) && len(records) > 0 {
		c.cursor = len(records) - 1
	}
	start, end := visibleWindow(len(records), c.cursor, a.cfg.UI.RowsPerPage)
	if start > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  ↑ %d more", start)))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		r := records[i]
		marker := "  "
		if i == c.cursor {
			marker = cursorStyle.Render("> ")
		}
		box := "[ ]"
		if c.selected[r.Name] {
			box = statusStyle.Render("[x]")
		}
		name := r.Name
		if i == c.cursor {
			name = tableHeadStyle.Render(name)
		}
		b.WriteString(marker + box + " " + name)
		b.WriteString("\n")
	}
	if end < len(records) {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  ↓ %d more", len(records)-end)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(c.order) < 2 {
		b.WriteString(noticeStyle.Render("Select at least two frameworks to compare."))
		return b.String(), nil
	}
	b.WriteString(c.renderColumns(a, width))
	return b.String(), nil
}

func (c *comparePage) renderColumns(a *App, width int) string {
	colW := width/len(c.order) - 2
	if colW < 18 {
		colW = 18
	}
	colStyle := lipgloss.NewStyle().Width(colW).PaddingRight(2)

	cols := make([]string, 0, len(c.order))
	for _, name := range c.order {
		r, ok := a.dataset.ByName(name)
		if !ok {
			continue
		}
		var cb strings.Builder
		cb.WriteString(tableHeadStyle.Render(truncate(r.Name, colW)))
		cb.WriteString("\n")
		cb.WriteString(dimStyle.Render(truncate(r.Category, colW)))
		cb.WriteString("\n\n")
		cb.WriteString(metricLabelStyle.Render("Core function"))
		cb.WriteString("\n")
		cb.WriteString(r.CoreFunction)
		cb.WriteString("\n\n")
		cb.WriteString(metricLabelStyle.Render("Typical uses"))
		cb.WriteString("\n")
		cb.WriteString(r.TypicalUses)
		if len(r.Related) > 0 {
			cb.WriteString("\n\n")
			cb.WriteString(metricLabelStyle.Render("Related"))
			cb.WriteString("\n")
			cb.WriteString(strings.Join(r.Related, "\n"))
		}
		cols = append(cols, colStyle.Render(cb.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}
