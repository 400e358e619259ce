package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"stratdeck/internal/catalog"
	"stratdeck/internal/config"
)

const appName = "Stratdeck"

// Industry is one entry of the industry recommendations page, with the
// recommended framework names already resolved against the catalog.
type Industry struct {
	Name        string
	Note        string
	Recommended []catalog.Record
}

// App is the top-level Bubble Tea model. It owns the dataset snapshot, the
// sidebar selection, and the page registry; per-page state lives inside the
// page handlers.
type App struct {
	dataset    catalog.Dataset
	industries []Industry
	featured   []catalog.Record
	cfg        config.Config
	log        zerolog.Logger

	active    PageID
	pages     map[PageID]Page
	factories map[PageID]func(a *App) Page

	keys   keyMap
	width  int
	height int

	status    string
	statusErr bool
	quitting  bool
}

// New builds the app over a loaded dataset snapshot. The snapshot is
// read-only for the lifetime of the program; nothing here mutates it.
func New(dataset catalog.Dataset, industries []Industry, cfg config.Config, log zerolog.Logger) *App {
	a := &App{
		dataset:    dataset,
		industries: industries,
		featured:   catalog.SelectFeatured(dataset, cfg.UI.Featured),
		cfg:        cfg,
		log:        log,
		active:     PageHome,
		pages:      make(map[PageID]Page, pageCount),
		factories:  pageFactories(),
		keys:       defaultKeyMap(),
	}
	return a
}

func (a *App) Init() tea.Cmd {
	return nil
}

// Dataset exposes the snapshot to page handlers.
func (a *App) Dataset() catalog.Dataset { return a.dataset }

// SetStatus replaces the status line with an informational message.
func (a *App) SetStatus(msg string) {
	a.status = msg
	a.statusErr = false
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(m)
	}
	return a, nil
}

// textCapturer is implemented by pages that sometimes own the keyboard
// outright (e.g. while a search box is focused). While capturing, every key
// except ctrl+c goes to the page.
type textCapturer interface {
	CapturingInput() bool
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(m, a.keys.ForceQuit) {
		a.quitting = true
		return a, tea.Quit
	}
	if p := a.page(a.active); p != nil {
		if tc, ok := p.(textCapturer); ok && tc.CapturingInput() {
			return a, p.Update(a, m)
		}
	}

	switch {
	case key.Matches(m, a.keys.Quit):
		a.quitting = true
		return a, tea.Quit
	case key.Matches(m, a.keys.NextPage):
		a.selectPage((a.active + 1) % pageCount)
	case key.Matches(m, a.keys.PrevPage):
		a.selectPage((a.active - 1 + pageCount) % pageCount)
	default:
		if id, ok := pageForDigit(m.String()); ok {
			a.selectPage(id)
			return a, nil
		}
		if p := a.page(a.active); p != nil {
			return a, p.Update(a, m)
		}
	}
	return a, nil
}

// selectPage switches the sidebar selection. Pages are constructed lazily on
// first visit; a previously failed page simply re-renders on return.
func (a *App) selectPage(id PageID) {
	if id < 0 || id >= pageCount || id == a.active {
		return
	}
	a.active = id
	a.status = ""
	a.statusErr = false
	a.log.Debug().Str("page", id.Title()).Msg("navigate")
}

// visibleWindow returns the half-open row range to draw so the cursor stays
// inside a viewport of rows lines. Short lists are returned whole.
func visibleWindow(length, cursor, rows int) (start, end int) {
	if rows <= 0 || length <= rows {
		return 0, length
	}
	start = cursor - rows/2
	if start < 0 {
		start = 0
	}
	if start+rows > length {
		start = length - rows
	}
	return start, start + rows
}

func pageForDigit(s string) (PageID, bool) {
	if len(s) != 1 || s[0] < '1' || s[0] > '5' {
		return 0, false
	}
	return PageID(s[0] - '1'), true
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}
	width := a.width
	if width == 0 {
		width = 100
	}

	sidebar := a.renderSidebar()
	sidebarWidth := lipgloss.Width(sidebar)
	contentWidth := width - sidebarWidth - 3
	if contentWidth < 40 {
		contentWidth = 40
	}

	body := a.viewPage(a.active, contentWidth)
	content := contentBoxStyle.Width(contentWidth).Render(body)

	main := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", content)
	header := a.renderHeader(width)
	statusLine := a.renderStatus()
	footer := a.renderFooter(width)

	out := header + "\n" + main + "\n" + statusLine
	if footer != "" {
		out += "\n" + footer
	}
	return out
}

func (a *App) renderHeader(width int) string {
	title := titleStyle.Render(appName)
	sub := subtitleStyle.Render("Business framework catalog & analysis")
	line := title + "  " + sub
	if lipgloss.Width(line) > width && width > 0 {
		return title
	}
	return line
}

func (a *App) renderSidebar() string {
	items := make([]string, 0, pageCount)
	items = append(items, sectionStyle.Render("Navigation"))
	for id := PageID(0); id < pageCount; id++ {
		label := id.Title()
		if id == a.active {
			items = append(items, navActiveStyle.Render(label))
		} else {
			items = append(items, navItemStyle.Render(label))
		}
	}
	return navBoxStyle.Render(strings.Join(items, "\n"))
}

func (a *App) renderStatus() string {
	if a.status == "" {
		return ""
	}
	if a.statusErr {
		return errorStyle.Render(a.status)
	}
	return statusStyle.Render(a.status)
}

func (a *App) renderFooter(width int) string {
	bindings := []key.Binding{a.keys.NextPage, a.keys.Jump}
	if p := a.page(a.active); p != nil {
		bindings = append(bindings, p.Hints()...)
	}
	bindings = append(bindings, a.keys.Quit)

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, footerKeyStyle.Render(h.Key)+footerStyle.Render(" "+h.Desc))
	}
	line := strings.Join(parts, footerStyle.Render("  ·  "))
	if width > 0 && lipgloss.Width(line) > width {
		return footerStyle.Render("press ? keys shown per page · q quit")
	}
	return line
}
