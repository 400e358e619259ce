package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"stratdeck/internal/catalog"
)

const (
	maxSearchResults = 8
	maxSuggestions   = 3
)

// homePage is the landing dashboard: headline metrics, the category
// histogram, full-text search, and the featured framework expanders.
type homePage struct {
	input    textinput.Model
	cursor   int
	expanded map[int]bool
}

func newHomePage(a *App) *homePage {
	ti := textinput.New()
	ti.Placeholder = "Search frameworks by name, function, or use case"
	ti.Prompt = "/ "
	ti.CharLimit = 64
	ti.Width = 44
	ti.PromptStyle = lipgloss.NewStyle().Foreground(colorAccent)
	ti.Cursor.Style = cursorStyle
	return &homePage{
		input:    ti,
		expanded: make(map[int]bool, len(a.featured)),
	}
}

func (h *homePage) ID() PageID { return PageHome }

// CapturingInput reports whether the search box owns the keyboard.
func (h *homePage) CapturingInput() bool { return h.input.Focused() }

func (h *homePage) Update(a *App, msg tea.KeyMsg) tea.Cmd {
	if h.input.Focused() {
		switch {
		case key.Matches(msg, a.keys.Back):
			h.input.Blur()
			h.input.SetValue("")
			return nil
		case key.Matches(msg, a.keys.Select) && msg.String() == "enter":
			h.input.Blur()
			return nil
		}
		var cmd tea.Cmd
		h.input, cmd = h.input.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, a.keys.Search):
		return h.input.Focus()
	case key.Matches(msg, a.keys.Back):
		h.input.SetValue("")
	case key.Matches(msg, a.keys.Up):
		if h.cursor > 0 {
			h.cursor--
		}
	case key.Matches(msg, a.keys.Down):
		if h.cursor < len(a.featured)-1 {
			h.cursor++
		}
	case key.Matches(msg, a.keys.Select):
		h.expanded[h.cursor] = !h.expanded[h.cursor]
	}
	return nil
}

func (h *homePage) Hints() []key.Binding {
	km := defaultKeyMap()
	if h.input.Focused() {
		return []key.Binding{km.Back}
	}
	return []key.Binding{km.Search, km.Up, km.Down, km.Select}
}

func (h *homePage) View(a *App, width int) (string, error) {
	var b strings.Builder

	b.WriteString(h.renderMetrics(a, width))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Frameworks by Category"))
	b.WriteString("\n")
	b.WriteString(renderCategoryBars(catalog.CountsPerCategory(a.dataset), a.dataset.Categories(), width))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Search"))
	b.WriteString("\n")
	b.WriteString(h.input.View())
	b.WriteString("\n")
	if query := strings.TrimSpace(h.input.Value()); query != "" {
		b.WriteString(h.renderResults(a, query, width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(h.renderFeatured(a, width))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Getting Started"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(strings.Join([]string{
		"1. Browse frameworks by category in the Framework Explorer",
		"2. Compare frameworks side by side in Comparative Analysis",
		"3. Find frameworks for your sector in Industry Recommendations",
		"4. Explore how frameworks connect in Framework Relationships",
	}, "\n")))

	return b.String(), nil
}

func (h *homePage) renderMetrics(a *App, width int) string {
	strategic := catalog.CountByCategory(a.dataset, "Strategic Planning Frameworks")
	boxes := []string{
		renderMetric("Total Frameworks", catalog.TotalCount(a.dataset)),
		renderMetric("Categories", catalog.CategoryCount(a.dataset)),
		renderMetric("Strategic Frameworks", strategic),
		renderMetric("Industries Covered", len(a.industries)),
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
	if lipgloss.Width(row) <= width {
		return row
	}
	top := lipgloss.JoinHorizontal(lipgloss.Top, boxes[0], boxes[1])
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, boxes[2], boxes[3])
	return top + "\n" + bottom
}

func renderMetric(label string, value int) string {
	inner := metricValueStyle.Render(fmt.Sprintf("%d", value)) + "\n" + metricLabelStyle.Render(label)
	return metricBoxStyle.Render(inner)
}

func (h *homePage) renderResults(a *App, query string, width int) string {
	results := catalog.Search(a.dataset, query)
	if len(results) == 0 {
		out := noticeStyle.Render("No frameworks found matching your search.")
		if suggestions := catalog.SuggestNames(a.dataset, query, maxSuggestions); len(suggestions) > 0 {
			out += "\n" + dimStyle.Render("Did you mean: "+strings.Join(suggestions, ", ")+"?")
		}
		return out
	}

	var b strings.Builder
	b.WriteString(statusStyle.Render(fmt.Sprintf("%d matching framework(s)", len(results))))
	b.WriteString("\n")
	shown := results
	if len(shown) > maxSearchResults {
		shown = shown[:maxSearchResults]
	}
	catIndex := categoryIndex(a.dataset)
	for _, r := range shown {
		color := categoryColor(catIndex[r.Category])
		line := "  " + r.Name + " " +
			lipgloss.NewStyle().Foreground(color).Render("["+r.Category+"]") + "\n" +
			dimStyle.Render("    "+truncate(r.CoreFunction, width-6))
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(results) > maxSearchResults {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  …and %d more", len(results)-maxSearchResults)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (h *homePage) renderFeatured(a *App, width int) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Featured Frameworks"))
	b.WriteString("\n")
	if len(a.featured) == 0 {
		b.WriteString(dimStyle.Render("No featured frameworks configured."))
		return b.String()
	}
	catIndex := categoryIndex(a.dataset)
	for i, r := range a.featured {
		marker := "  "
		if i == h.cursor && !h.input.Focused() {
			marker = cursorStyle.Render("> ")
		}
		arrow := "▸"
		if h.expanded[i] {
			arrow = "▾"
		}
		tag := chipStyle.Foreground(categoryColor(catIndex[r.Category])).Render(r.Category)
		b.WriteString(marker + arrow + " " + tableHeadStyle.Render(r.Name) + " " + tag)
		b.WriteString("\n")
		if h.expanded[i] {
			b.WriteString(renderRecordDetail(r, width, "    "))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderRecordDetail prints the full card for one framework, indented by
// prefix. Shared by the featured expanders and the explorer detail panel.
func renderRecordDetail(r catalog.Record, width int, prefix string) string {
	wrap := lipgloss.NewStyle().Width(max(20, width-len(prefix)-2))
	var b strings.Builder
	b.WriteString(prefix + metricLabelStyle.Render("Core function: ") + wrap.Render(r.CoreFunction))
	b.WriteString("\n")
	b.WriteString(prefix + metricLabelStyle.Render("Typical uses:  ") + wrap.Render(r.TypicalUses))
	if len(r.Related) > 0 {
		b.WriteString("\n")
		b.WriteString(prefix + metricLabelStyle.Render("Related:       ") + dimStyle.Render(strings.Join(r.Related, ", ")))
	}
	return b.String()
}

// categoryIndex maps each category label to its position in category-set
// order, for stable color assignment everywhere categories are shown.
func categoryIndex(d catalog.Dataset) map[string]int {
	idx := make(map[string]int, len(d.Categories()))
	for i, c := range d.Categories() {
		idx[c] = i
	}
	return idx
}
