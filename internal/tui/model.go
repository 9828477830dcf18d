package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sourcehub/internal/catalog"
	"sourcehub/internal/query"
	"sourcehub/internal/source"
)

type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeFilter
	modeHelp
)

const (
	defaultWidth  = 100
	defaultHeight = 30
)

// Model is the interactive browser over a catalog session.
type Model struct {
	session *catalog.Session
	view    []source.Source
	cursor  int
	mode    mode

	search textinput.Model
	picker picker

	showDetail bool
	showStats  bool
	notice     string

	width  int
	height int
}

// New returns a browser positioned at the top of the session's current view.
func New(session *catalog.Session) *Model {
	ti := textinput.New()
	ti.Placeholder = "Search title, author, description, tags..."
	ti.Prompt = searchPromptStyle.Render("/ ")
	ti.CharLimit = 200
	ti.SetValue(session.Filters().Search)

	m := &Model{session: session, search: ti}
	m.refresh()
	return m
}

// Run starts the browser on the given terminal streams and blocks until the
// user quits or ctx ends.
func Run(ctx context.Context, session *catalog.Session, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(New(session),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// Session exposes the browsed session.
func (m *Model) Session() *catalog.Session { return m.session }

// Visible returns the sources currently listed.
func (m *Model) Visible() []source.Source { return slices.Clone(m.view) }

// Selected returns the source under the cursor.
func (m *Model) Selected() (source.Source, bool) {
	if m.cursor < 0 || m.cursor >= len(m.view) {
		return source.Source{}, false
	}
	return m.view[m.cursor], true
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) refresh() {
	m.view = m.session.View()
	if m.cursor >= len(m.view) {
		m.cursor = max(0, len(m.view)-1)
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		m.notice = ""
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case modeSearch:
		return m.handleSearchKey(msg)
	case modeFilter:
		return m.handleFilterKey(msg)
	case modeHelp:
		switch msg.String() {
		case "?", "esc", "q":
			m.mode = modeNormal
		}
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "j", "down":
		if m.cursor < len(m.view)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = max(0, len(m.view)-1)
	case "enter":
		m.showDetail = !m.showDetail
		m.showStats = false
	case "i":
		m.showStats = !m.showStats
		m.showDetail = false
	case "/":
		m.mode = modeSearch
		m.search.SetValue(m.session.Filters().Search)
		m.search.CursorEnd()
		return m, m.search.Focus()
	case "c":
		m.openPicker(pickCategory)
	case "t":
		m.openPicker(pickTag)
	case "s":
		m.openPicker(pickSection)
	case "o":
		m.cycleSort()
	case "x":
		m.session.ClearFilters()
		m.search.SetValue("")
		m.cursor = 0
		m.refresh()
	case "m":
		m.switchMode()
	case "?":
		m.mode = modeHelp
	}
	return m, nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.search.SetValue("")
		m.search.Blur()
		m.mode = modeNormal
		m.applySearch()
		return m, nil
	case "enter":
		m.search.Blur()
		m.mode = modeNormal
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.session.Filters().Search {
		m.applySearch()
	}
	return m, cmd
}

func (m *Model) applySearch() {
	m.session.SetSearch(m.search.Value())
	m.cursor = 0
	m.refresh()
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "esc", "q":
		m.mode = modeNormal
		return m, nil
	case "left", "h":
		m.picker.move(-1)
		return m, nil
	case "right", "l":
		m.picker.move(1)
		return m, nil
	case " ", "enter":
		m.togglePicked(m.picker.cursor)
		return m, nil
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.togglePicked(int(key[0] - '1'))
		return m, nil
	case "c", "t", "s":
		kind := map[string]pickerKind{"c": pickCategory, "t": pickTag, "s": pickSection}[key]
		if kind == m.picker.kind {
			m.mode = modeNormal
		} else {
			m.openPicker(kind)
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) openPicker(kind pickerKind) {
	m.picker = newPicker(kind, m.session)
	m.mode = modeFilter
}

func (m *Model) togglePicked(idx int) {
	if m.picker.toggle(m.session, idx) {
		m.picker.cursor = idx
		m.cursor = 0
		m.refresh()
	}
}

func (m *Model) cycleSort() {
	options := query.SortOptions()
	i := slices.Index(options, m.session.Sort())
	m.session.SetSort(options[(i+1)%len(options)])
	m.cursor = 0
	m.refresh()
}

// switchMode flips between the official and draft collections. The session
// drops every filter on a real mode change, so the search box is emptied too.
func (m *Model) switchMode() {
	next := catalog.ModeDraft
	if m.session.Mode() == catalog.ModeDraft {
		next = catalog.ModeOfficial
	}
	m.session.SetMode(next)
	m.search.SetValue("")
	m.cursor = 0
	m.showDetail = false
	m.refresh()
	m.notice = fmt.Sprintf("Viewing %s sources; filters cleared", next)
}

func (m *Model) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

func (m *Model) View() string {
	width, height := m.size()

	if m.mode == modeHelp {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, renderHelp())
	}

	header := m.renderHeader(width)

	var filterLine string
	switch m.mode {
	case modeSearch:
		filterLine = m.search.View()
	case modeFilter:
		filterLine = m.picker.render(m.session.Filters(), width)
	default:
		filterLine = lipgloss.NewStyle().PaddingLeft(1).Render(
			countStyle.Render(describeFilters(m.session.Filters(), m.session.Sort())))
	}

	contentHeight := max(height-6, 3)
	listWidth := width
	side := ""
	if sel, ok := m.Selected(); ok && m.showDetail {
		listWidth = width * 2 / 5
		side = renderDetail(sel, width-listWidth-6)
	} else if m.showStats {
		listWidth = width / 2
		side = renderStats(m.session.Stats())
	}

	list := renderList(m.view, m.cursor, contentHeight, listWidth-4, m.session.Mode(), len(m.session.Active()))
	content := listPaneStyle.Width(listWidth - 2).Height(contentHeight).Render(list)
	if side != "" {
		pane := detailPaneStyle.Width(width - listWidth - 3).Height(contentHeight).Render(side)
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, " ", pane)
	}

	status := m.renderStatus(width)
	return lipgloss.JoinVertical(lipgloss.Left, header, filterLine, content, status)
}

func (m *Model) renderHeader(width int) string {
	badge := officialBadgeStyle.Render("official")
	if m.session.Mode() == catalog.ModeDraft {
		badge = draftBadgeStyle.Render("draft")
	}
	left := headerStyle.Render("SourceHub") + " " + badge
	right := countStyle.Render(fmt.Sprintf("Showing %d of %d %s sources ",
		len(m.view), len(m.session.Active()), m.session.Mode()))
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

func (m *Model) renderStatus(width int) string {
	if m.notice != "" {
		return statusBarStyle.Width(width).Render(noticeStyle.Render(m.notice))
	}
	var hints string
	switch m.mode {
	case modeSearch:
		hints = "type to filter  enter keep  esc clear"
	case modeFilter:
		hints = "←/→ move  space toggle  1-9 toggle  esc done"
	default:
		hints = "/ search  c t s filters  o sort  x clear  m mode  enter detail  i stats  ? help  q quit"
	}
	return statusBarStyle.Width(width).Render(hints)
}

func renderHelp() string {
	title := lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Render("SourceHub browser")
	dim := countStyle

	help := title + "\n\n" +
		dim.Render("Navigation") + "\n" +
		"  j/k, ↑/↓      Move through sources\n" +
		"  g/G           First or last source\n" +
		"  enter         Show or hide the selected source\n" +
		"  i             Show or hide collection stats\n\n" +
		dim.Render("Filtering") + "\n" +
		"  /             Search (updates as you type)\n" +
		"  c, t, s       Category, tag, or section filters\n" +
		"  o             Cycle sort order\n" +
		"  x             Clear every filter\n\n" +
		dim.Render("Collections") + "\n" +
		"  m             Switch official/draft (clears filters)\n\n" +
		dim.Render("General") + "\n" +
		"  ?             Toggle this help\n" +
		"  q, ctrl+c     Quit"

	return detailPaneStyle.Padding(1, 2).Render(help)
}
