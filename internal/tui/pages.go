package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
)

// PageID identifies one navigation destination. The set is fixed; the sidebar
// is a single-select over exactly these five pages.
type PageID int

const (
	PageHome PageID = iota
	PageExplorer
	PageCompare
	PageIndustry
	PageRelations
	pageCount
)

var pageTitles = [pageCount]string{
	"Home",
	"Framework Explorer",
	"Comparative Analysis",
	"Industry Recommendations",
	"Framework Relationships",
}

// Title returns the sidebar label for the page.
func (id PageID) Title() string {
	if id < 0 || id >= pageCount {
		return "Unknown"
	}
	return pageTitles[id]
}

// Page is one render handler. A page receives keys only while it is the
// active selection, and renders from the app's read-only dataset snapshot.
// View errors do not crash the app: the router catches them and shows an
// error panel in place.
type Page interface {
	ID() PageID
	Update(a *App, msg tea.KeyMsg) tea.Cmd
	View(a *App, width int) (string, error)
	Hints() []key.Binding
}

// pageFactories construct pages on first visit. Lookup over an enumerated set
// keeps the page table explicit and exhaustively testable; lazy construction
// means only visited pages ever get built.
func pageFactories() map[PageID]func(a *App) Page {
	return map[PageID]func(a *App) Page{
		PageHome:      func(a *App) Page { return newHomePage(a) },
		PageExplorer:  func(a *App) Page { return newExplorerPage() },
		PageCompare:   func(a *App) Page { return newComparePage() },
		PageIndustry:  func(a *App) Page { return newIndustryPage() },
		PageRelations: func(a *App) Page { return newRelationsPage() },
	}
}

// page returns the handler for id, constructing and caching it on first use.
func (a *App) page(id PageID) Page {
	if p, ok := a.pages[id]; ok {
		return p
	}
	factory, ok := a.factories[id]
	if !ok {
		return nil
	}
	p := factory(a)
	a.pages[id] = p
	return p
}

// viewPage renders the handler for id with fault containment: an error return
// or a panic inside the handler becomes a visible error panel naming the page,
// and never takes down navigation to other pages.
func (a *App) viewPage(id PageID, width int) (out string) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error().Str("page", id.Title()).Interface("panic", r).Msg("page render panicked")
			out = renderPageError(id, fmt.Errorf("panic: %v", r), width)
		}
	}()

	p := a.page(id)
	if p == nil {
		return renderPageError(id, fmt.Errorf("no handler registered"), width)
	}
	body, err := p.View(a, width)
	if err != nil {
		a.log.Error().Str("page", id.Title()).Err(err).Msg("page render failed")
		return renderPageError(id, err, width)
	}
	return body
}

func renderPageError(id PageID, err error, width int) string {
	msg := fmt.Sprintf("Error loading page '%s': %v", id.Title(), err)
	help := dimStyle.Render("The other pages are unaffected. Navigate away and back to retry.")
	box := errorBoxStyle.Width(max(20, width-2)).Render(msg)
	return box + "\n" + help
}
