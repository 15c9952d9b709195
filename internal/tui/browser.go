package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"

	"github.com/rshade/pagenav/internal/catalog"
	"github.com/rshade/pagenav/internal/nav"
)

// BrowserState represents the current state of the catalog browser.
type BrowserState int

const (
	// BrowserStateBrowsing is the default page navigation state.
	BrowserStateBrowsing BrowserState = iota
	// BrowserStateSearching indicates the search box has focus.
	BrowserStateSearching
	// BrowserStateQuitting indicates the application is exiting.
	BrowserStateQuitting
	// BrowserStateError indicates a listing could not be computed.
	BrowserStateError
)

// Column widths of product rows.
const (
	browserColWidthName  = 40
	browserColWidthPrice = 10
	browserColWidthBid   = 8
)

//nolint:gochecknoglobals // Shared lipgloss styles.
var (
	browserTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	browserHeaderStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	browserMutedStyle    = lipgloss.NewStyle().Faint(true)
	browserErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	browserStatusPadding = lipgloss.NewStyle().MarginTop(1)
)

// BrowserModel is the Bubble Tea model for paging through a product catalog.
type BrowserModel struct {
	state   BrowserState
	catalog *catalog.Catalog
	query   catalog.Query
	listing catalog.Listing
	err     error

	search textinput.Model
	help   help.Model
	keys   browserKeyMap
	styles nav.Styles
	lang   language.Tag

	width  int
	height int
}

// NewBrowserModel creates a browser over c starting at q. The page is kept
// within the listing's valid range.
func NewBrowserModel(c *catalog.Catalog, q catalog.Query, lang language.Tag) *BrowserModel {
	ti := textinput.New()
	ti.Placeholder = "search name or description"
	ti.Prompt = "/ "
	ti.CharLimit = 100
	ti.SetValue(q.Search)

	m := &BrowserModel{
		state:   BrowserStateBrowsing,
		catalog: c,
		query:   q,
		search:  ti,
		help:    help.New(),
		keys:    defaultBrowserKeyMap(),
		styles:  nav.DefaultStyles(lipgloss.DefaultRenderer()),
		lang:    lang,
	}
	m.goTo(q.Page)
	return m
}

// Init implements tea.Model.
func (m *BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.state == BrowserStateSearching {
			return m.handleSearchKey(msg)
		}
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m *BrowserModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	r := m.listing.Result

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.state = BrowserStateQuitting
		return m, tea.Quit

	case m.state == BrowserStateError:
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		if r.HasPrevious() {
			m.goTo(*r.PreviousPage)
		}

	case key.Matches(msg, m.keys.Next):
		if r.HasNext() {
			m.goTo(*r.NextPage)
		}

	case key.Matches(msg, m.keys.First):
		m.goTo(1)

	case key.Matches(msg, m.keys.Last):
		m.goTo(r.LastPage())

	case key.Matches(msg, m.keys.Sort):
		m.query.Sort = m.query.Sort.Next()
		m.goTo(1)

	case key.Matches(msg, m.keys.Search):
		m.state = BrowserStateSearching
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

//nolint:exhaustive // Only enter and esc leave the search box.
func (m *BrowserModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.query.Search = strings.TrimSpace(m.search.Value())
		m.search.Blur()
		m.state = BrowserStateBrowsing
		m.goTo(1)
		return m, nil

	case tea.KeyEsc:
		m.search.SetValue(m.query.Search)
		m.search.Blur()
		m.state = BrowserStateBrowsing
		return m, nil

	case tea.KeyCtrlC:
		m.state = BrowserStateQuitting
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// goTo lists page, pulling it back to the last page when the listing has
// fewer pages than requested.
func (m *BrowserModel) goTo(page int) {
	m.query.Page = max(page, 1)
	listing, err := m.catalog.List(m.query)
	if err != nil {
		m.err = err
		m.state = BrowserStateError
		return
	}
	if listing.Result.OutOfRange() {
		m.query.Page = listing.Result.LastPage()
		if listing, err = m.catalog.List(m.query); err != nil {
			m.err = err
			m.state = BrowserStateError
			return
		}
	}
	m.listing = listing
}

// View renders the current view.
func (m *BrowserModel) View() string {
	switch m.state {
	case BrowserStateQuitting:
		return ""
	case BrowserStateError:
		return browserErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\nPress q to quit."
	case BrowserStateBrowsing, BrowserStateSearching:
	}

	var b strings.Builder

	title := fmt.Sprintf("Catalog  sort: %s", m.query.Sort.Label())
	if m.query.Search != "" {
		title += fmt.Sprintf("  search: %q", m.query.Search)
	}
	b.WriteString(browserTitleStyle.Render(title))
	b.WriteString("\n\n")

	if m.state == BrowserStateSearching {
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	}

	b.WriteString(browserHeaderStyle.Render(fmt.Sprintf("%-*s  %*s  %*s",
		browserColWidthName, "NAME",
		browserColWidthPrice, "OPEN",
		browserColWidthBid, "BID")))
	b.WriteString("\n")

	if len(m.listing.Items) == 0 {
		b.WriteString(browserMutedStyle.Render("No products found."))
		b.WriteString("\n")
	}
	for _, p := range m.listing.Items {
		b.WriteString(renderProduct(p))
		b.WriteString("\n")
	}

	status := nav.Styled(m.listing.Result, m.styles)
	if status != "" {
		status += "\n"
	}
	status += browserMutedStyle.Render(nav.Summary(m.listing.Result, m.lang))
	b.WriteString(browserStatusPadding.Render(status))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func renderProduct(p catalog.Product) string {
	name := p.Name
	if len([]rune(name)) > browserColWidthName {
		name = string([]rune(name)[:browserColWidthName-3]) + "..."
	}
	return fmt.Sprintf("%-*s  %*.2f  %*.2f",
		browserColWidthName, name,
		browserColWidthPrice, p.OpenPrice,
		browserColWidthBid, p.PricePerBid)
}

// State returns the browser's state.
func (m *BrowserModel) State() BrowserState {
	return m.state
}

// Query returns the query behind the displayed page.
func (m *BrowserModel) Query() catalog.Query {
	return m.query
}

// Listing returns the displayed page.
func (m *BrowserModel) Listing() catalog.Listing {
	return m.listing
}
