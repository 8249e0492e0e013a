// Package tui is the interactive menu screen: a search box, one chip per
// category and the sectioned list, with a transient status line.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/littlelemon/internal/menu"
	"github.com/idilsaglam/littlelemon/internal/model"
	"github.com/idilsaglam/littlelemon/internal/source"
	"github.com/idilsaglam/littlelemon/internal/status"
)

// Loader runs one resolution pass.
type Loader func(ctx context.Context) (source.Result, error)

type focus int

const (
	focusList focus = iota
	focusSearch
	focusChips
	focusCount
)

// chrome is the number of rows around the list viewport.
const chrome = 9

type loadedMsg struct {
	res source.Result
	err error
}

type clearStatusMsg struct{ seq uint64 }

// Model is the bubbletea model for the menu screen.
type Model struct {
	load  Loader
	board *status.Board
	keys  keyMap
	help  help.Model

	search   textinput.Model
	list     viewport.Model
	spinner  spinner.Model
	loading  bool
	failure  string
	width    int
	height   int
	focus    focus
	chip     int
	lastSeen string // last query the list was built for

	items      []model.MenuItem
	categories []string
	selection  model.Selection
	sections   []model.Section
	source     model.Source
}

func New(load Loader, board *status.Board) Model {
	ti := textinput.New()
	ti.Prompt = "⌕ "
	ti.Placeholder = "Search menu items..."
	ti.CharLimit = 80

	return Model{
		load:    load,
		board:   board,
		keys:    defaultKeys(),
		help:    help.New(),
		search:  ti,
		list:    viewport.New(80, 16),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		loading: true,
		width:   80,
		height:  24,
	}
}

// Run starts the program on the alternate screen and blocks until quit.
func Run(load Loader, board *status.Board) error {
	_, err := tea.NewProgram(New(load, board), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd())
}

func (m Model) loadCmd() tea.Cmd {
	load := m.load
	return func() tea.Msg {
		res, err := load(context.Background())
		return loadedMsg{res: res, err: err}
	}
}

// Sections returns what the list currently shows.
func (m Model) Sections() []model.Section { return m.sections }

// Source returns the tier that satisfied the last load.
func (m Model) Source() model.Source { return m.source }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loadedMsg:
		m.loading = false
		if msg.err != nil {
			m.failure = msg.err.Error()
			return m, m.post("Failed to load menu data. Please try again later.")
		}
		m.failure = ""
		m.items = msg.res.Items
		m.source = msg.res.Source
		m.categories = menu.Categories(m.items)
		m.selection = menu.NewSelection(m.categories)
		m.chip = 0
		m.refresh()
		return m, m.post(source.Summary(msg.res))

	case clearStatusMsg:
		m.board.Clear(msg.seq)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.focus == focusSearch {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.search.Blur()
		m.focus = focusList
		return m, nil
	case key.Matches(msg, m.keys.Focus):
		m.search.Blur()
		m.focus = m.nextFocus(msg.String() == "shift+tab")
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.lastSeen {
		m.refresh()
	}
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Search):
		m.focus = focusSearch
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Focus):
		m.focus = m.nextFocus(msg.String() == "shift+tab")
		if m.focus == focusSearch {
			return m, m.search.Focus()
		}
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.loadCmd())

	case key.Matches(msg, m.keys.SelectAll):
		m.selection = menu.NewSelection(m.categories)
		m.refresh()
		return m, nil
	}

	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		m.toggle(int(s[0] - '1'))
		return m, nil
	}

	if m.focus == focusChips {
		switch {
		case key.Matches(msg, m.keys.Left):
			if m.chip > 0 {
				m.chip--
			}
			return m, nil
		case key.Matches(msg, m.keys.Right):
			if m.chip < len(m.categories)-1 {
				m.chip++
			}
			return m, nil
		case key.Matches(msg, m.keys.Toggle):
			m.toggle(m.chip)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) nextFocus(back bool) focus {
	if back {
		return (m.focus + focusCount - 1) % focusCount
	}
	return (m.focus + 1) % focusCount
}

func (m *Model) toggle(i int) {
	if i < 0 || i >= len(m.categories) {
		return
	}
	m.chip = i
	m.selection = menu.Toggle(m.selection, m.categories[i])
	m.refresh()
}

// post shows msg on the status board and schedules its removal.
func (m Model) post(msg string) tea.Cmd {
	if msg == "" {
		return nil
	}
	seq := m.board.Post(msg)
	return tea.Tick(m.board.TTL(), func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

func (m *Model) resize() {
	m.list.Width = max(m.width-4, 20)
	m.list.Height = max(m.height-chrome, 3)
	m.search.Width = max(m.width-10, 10)
}

// refresh re-filters the full item list and rebuilds the sections.
func (m *Model) refresh() {
	m.lastSeen = m.search.Value()
	m.sections = menu.View(m.items, m.lastSeen, m.selection)
	m.list.SetContent(renderSections(m.sections, m.list.Width))
	m.list.GotoTop()
}

func (m Model) View() string {
	var b strings.Builder

	header := titleStyle.Render("Little Lemon")
	if m.source != model.SourceUnknown {
		header += "  " + badgeStyle.Render(m.source.String())
	}
	b.WriteString(header + "\n\n")

	if m.loading && m.items == nil {
		b.WriteString(m.spinner.View() + " Loading menu...\n")
		return panelString(b.String())
	}
	if m.failure != "" && m.items == nil {
		b.WriteString(errorStyle.Render(m.failure) + "\n")
	}

	b.WriteString(m.marker(focusSearch) + m.search.View() + "\n")
	b.WriteString(m.marker(focusChips) + labelStyle.Render("CATEGORIES") + "\n")
	b.WriteString("  " + m.renderChips() + "\n")
	b.WriteString(m.marker(focusList) + mutedStyle.Render(fmt.Sprintf("%d items", menu.Count(m.sections))) + "\n")
	b.WriteString(m.list.View() + "\n")

	line := m.board.Current()
	if m.loading {
		line = m.spinner.View() + " Reloading..."
	}
	b.WriteString(statusStyle.Render(line) + "\n")
	b.WriteString(m.help.View(m.keys))
	return panelString(b.String())
}

func (m Model) marker(f focus) string {
	if m.focus == f {
		return focusMarker.Render("▎")
	}
	return " "
}

func (m Model) renderChips() string {
	chips := make([]string, 0, len(m.categories))
	for i, c := range m.categories {
		label := fmt.Sprintf("%d %s", i+1, c)
		style := chipOff
		if m.selection[c] {
			style = chipOn
		}
		if m.focus == focusChips && i == m.chip {
			style = style.Inherit(chipCursor)
		}
		chips = append(chips, style.Render(label))
	}
	return strings.Join(chips, " ")
}

// renderSections lays out one header per section and one row per item,
// title left and price right, within width cells.
func renderSections(sections []model.Section, width int) string {
	if width <= 0 {
		width = 76
	}
	if len(sections) == 0 {
		return mutedStyle.Render("No items match your search.")
	}
	var rows []string
	for _, s := range sections {
		rows = append(rows, sectionStyle.Width(width).Render(s.Title))
		for _, it := range s.Items {
			price := "$" + it.Price
			room := width - lipgloss.Width(price) - 3
			title := ansi.Truncate(it.Title, max(room, 4), "…")
			gap := max(width-lipgloss.Width(title)-lipgloss.Width(price)-2, 1)
			rows = append(rows, " "+title+strings.Repeat(" ", gap)+priceStyle.Render(price))
		}
	}
	return strings.Join(rows, "\n")
}
