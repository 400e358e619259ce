package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// industryPage maps business sectors to the frameworks most often applied
// in them. Selecting an industry shows its note and recommended frameworks.
type industryPage struct {
	cursor int
}

func newIndustryPage() *industryPage {
	return &industryPage{}
}

func (p *industryPage) ID() PageID { return PageIndustry }

func (p *industryPage) Update(a *App, msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, a.keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(msg, a.keys.Down):
		if p.cursor < len(a.industries)-1 {
			p.cursor++
		}
	}
	return nil
}

func (p *industryPage) Hints() []key.Binding {
	km := defaultKeyMap()
	return []key.Binding{km.Up, km.Down}
}

func (p *industryPage) View(a *App, width int) (string, error) {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Industry Recommendations"))
	b.WriteString("\n\n")

	if len(a.industries) == 0 {
		b.WriteString(dimStyle.Render("No industry data available."))
		return b.String(), nil
	}
	if p.cursor >= len(a.industries) {
		p.cursor = len(a.industries) - 1
	}

	for i, ind := range a.industries {
		marker := "  "
		name := ind.Name
		if i == p.cursor {
			marker = cursorStyle.Render("> ")
			name = tableHeadStyle.Render(name)
		}
		b.WriteString(marker + name)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	ind := a.industries[p.cursor]
	b.WriteString(tableHeadStyle.Render(ind.Name))
	b.WriteString("\n")
	if ind.Note != "" {
		wrap := strings.TrimSpace(ind.Note)
		b.WriteString(subtitleStyle.Width(max(20, width-2)).Render(wrap))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(metricLabelStyle.Render("Recommended frameworks"))
	b.WriteString("\n")
	if len(ind.Recommended) == 0 {
		b.WriteString(dimStyle.Render("  None recorded for this industry."))
		return b.String(), nil
	}
	catIndex := categoryIndex(a.dataset)
	for _, r := range ind.Recommended {
		color := categoryColor(catIndex[r.Category])
		b.WriteString("  • " + r.Name + " " + chipStyle.Foreground(color).Render(r.Category))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("    " + truncate(r.CoreFunction, width-6)))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n"), nil
}
