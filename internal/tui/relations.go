package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"stratdeck/internal/catalog"
)

const maxChartBars = 8

// relationsPage shows how frameworks reference one another: a per-framework
// neighbour list plus a degree chart of the most-connected frameworks.
type relationsPage struct {
	cursor int
}

func newRelationsPage() *relationsPage {
	return &relationsPage{}
}

func (p *relationsPage) ID() PageID { return PageRelations }

func (p *relationsPage) Update(a *App, msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(msg, a.keys.Down):
		if p.cursor < a.dataset.Len()-1 {
			p.cursor++
		}
	}
	return nil
}

func (p *relationsPage) Hints() []key.Binding {
	km := defaultKeyMap()
	return []key.Binding{km.Up, km.Down}
}

func (p *relationsPage) View(a *App, width int) (string, error) {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Framework Relationships"))
	b.WriteString("\n\n")

	records := a.dataset.Records()
	if len(records) == 0 {
		b.WriteString(dimStyle.Render("No frameworks loaded."))
		return b.String(), nil
	}
	if p.cursor >= len(records) {
		p.cursor = len(records) - 1
	}

	start, end := visibleWindow(len(records), p.cursor, a.cfg.UI.RowsPerPage)
	if start > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  ↑ %d more", start)))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		r := records[i]
		marker := "  "
		name := r.Name
		if i == p.cursor {
			marker = cursorStyle.Render("> ")
			name = tableHeadStyle.Render(name)
		}
		b.WriteString(marker + name)
		b.WriteString("\n")
	}
	if end < len(records) {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  ↓ %d more", len(records)-end)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	cur := records[p.cursor]
	b.WriteString(tableHeadStyle.Render(cur.Name))
	b.WriteString("\n")
	b.WriteString(p.renderNeighbours(a, cur, width))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Most Connected"))
	b.WriteString("\n")
	bars := topConnected(a.dataset, maxChartBars)
	b.WriteString(renderConnectionsChart(bars, min(width, 6*len(bars)+4), 8))
	b.WriteString("\n")
	b.WriteString(renderChartLegend(bars))

	return b.String(), nil
}

// renderNeighbours lists both directions of the relation: frameworks the
// selection names, and frameworks that name it back.
func (p *relationsPage) renderNeighbours(a *App, cur catalog.Record, width int) string {
	var b strings.Builder
	b.WriteString(metricLabelStyle.Render("  Relates to: "))
	if len(cur.Related) == 0 {
		b.WriteString(dimStyle.Render("none recorded"))
	} else {
		b.WriteString(strings.Join(cur.Related, ", "))
	}

	var inbound []string
	for _, r := range a.dataset.Records() {
		if r.Name == cur.Name {
			continue
		}
		for _, rel := range r.Related {
			if rel == cur.Name {
				inbound = append(inbound, r.Name)
				break
			}
		}
	}
	if len(inbound) > 0 {
		b.WriteString("\n")
		b.WriteString(metricLabelStyle.Render("  Named by:   "))
		b.WriteString(dimStyle.Render(strings.Join(inbound, ", ")))
	}
	return b.String()
}

// topConnected ranks frameworks by relation degree, counting the union of
// outbound and inbound references. Ties keep dataset order.
func topConnected(d catalog.Dataset, limit int) []connectionBar {
	degree := make(map[string]map[string]bool, d.Len())
	link := func(a, b string) {
		if degree[a] == nil {
			degree[a] = make(map[string]bool)
		}
		degree[a][b] = true
	}
	for _, r := range d.Records() {
		for _, rel := range r.Related {
			// A name with no record would inflate real degrees.
			if _, ok := d.ByName(rel); !ok {
				continue
			}
			link(r.Name, rel)
			link(rel, r.Name)
		}
	}

	bars := make([]connectionBar, 0, d.Len())
	for _, r := range d.Records() {
		if n := len(degree[r.Name]); n > 0 {
			bars = append(bars, connectionBar{Name: r.Name, Count: n})
		}
	}
	sort.SliceStable(bars, func(i, j int) bool { return bars[i].Count > bars[j].Count })
	if len(bars) > limit {
		bars = bars[:limit]
	}
	return bars
}

func renderChartLegend(bars []connectionBar) string {
	parts := make([]string, 0, len(bars))
	for _, b := range bars {
		parts = append(parts, footerKeyStyle.Render(abbreviate(b.Name))+dimStyle.Render(" "+b.Name))
	}
	return strings.Join(parts, dimStyle.Render("  ·  "))
}
