package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/NickImpact/Impactor-sub004/pkg/display"
	"github.com/NickImpact/Impactor-sub004/pkg/pagination"
)

const cellWidth = 12

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	cellStyle     = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("250"))
	focusStyle    = cellStyle.Foreground(lipgloss.Color("255"))
	navStyle      = cellStyle.Foreground(lipgloss.Color("214")).Bold(true)
	disabledStyle = cellStyle.Foreground(lipgloss.Color("238"))
	cursorStyle   = cellStyle.Reverse(true)
)

// Model previews a sectioned pagination on a Grid and drives it from the keyboard.
type Model struct {
	view  *pagination.SectionedPagination
	grid  *Grid
	sched *Scheduler
	keys  keyMap

	viewport viewport.Model
	filter   textinput.Model
	pages    paginator.Model

	logs        []string
	logMutex    sync.Mutex
	logged      chan struct{}
	MaxLogLines int

	cursor    int
	focus     int
	filtering bool
	ready     bool
	width     int
	height    int
}

// New creates a model rendering grid. Show must be called before the program starts.
func New(grid *Grid, sched *Scheduler) *Model {
	ti := textinput.New()
	ti.Placeholder = "filter labels..."
	ti.Blur()
	ti.CharLimit = 64
	ti.Width = 30

	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = 1
	p.ActiveDot = inputStyle.Render("•")
	p.InactiveDot = helpStyle.Render("◦")

	return &Model{
		grid:        grid,
		sched:       sched,
		keys:        defaultKeyMap(),
		filter:      ti,
		pages:       p,
		logged:      make(chan struct{}, 1),
		MaxLogLines: 200,
	}
}

// Show sets the pagination driven by the model.
func (m *Model) Show(view *pagination.SectionedPagination) {
	m.view = view
	m.focus = 0
	m.syncPages()
}

// Init initializes the TUI
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.sched.listen(), m.waitLog())
}

// Update handles TUI updates
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filtering {
			return m, m.updateFilter(msg)
		}
		if quit := m.handleKey(msg); quit {
			return m, tea.Quit
		}
		m.syncPages()
		return m, nil

	case tea.WindowSizeMsg:
		height := max(msg.Height-m.grid.Dimension().Rows-6, 3)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(m.renderLogs())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.width = msg.Width
		m.height = msg.Height
		m.filter.Width = msg.Width - 4

	case runMsg:
		msg()
		m.syncPages()
		return m, m.sched.listen()

	case logMsg:
		m.refreshLogs()
		return m, m.waitLog()

	case LogMsg:
		m.AddLog(string(msg))
		m.refreshLogs()
		return m, nil
	}

	if m.ready {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// handleKey applies a key outside filter mode and reports whether to quit.
func (m *Model) handleKey(msg tea.KeyMsg) bool {
	dims := m.grid.Dimension()
	col, row := pagination.Coordinates(m.cursor, max(dims.Columns, 1))

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.view != nil {
			if err := m.view.Close(); err != nil && !errors.Is(err, pagination.ErrClosed) {
				m.AddLog(fmt.Sprintf("Error closing view: %v", err))
			}
		}
		return true
	case key.Matches(msg, m.keys.Up):
		row = max(row-1, 0)
	case key.Matches(msg, m.keys.Down):
		row = min(row+1, dims.Rows-1)
	case key.Matches(msg, m.keys.Left):
		col = max(col-1, 0)
	case key.Matches(msg, m.keys.Right):
		col = min(col+1, dims.Columns-1)
	case key.Matches(msg, m.keys.Click):
		m.click(pagination.ClickLeft)
	case key.Matches(msg, m.keys.Alt):
		m.click(pagination.ClickRight)
	case key.Matches(msg, m.keys.NextPage):
		m.turn(1)
	case key.Matches(msg, m.keys.PrevPage):
		m.turn(-1)
	case key.Matches(msg, m.keys.Section):
		if m.view != nil && m.view.Sections() > 0 {
			m.focus = (m.focus + 1) % m.view.Sections()
		}
	case key.Matches(msg, m.keys.Filter):
		if m.focused() != nil {
			m.filtering = true
			m.filter.Focus()
		}
	}
	m.cursor = pagination.SlotAt(max(col, 0), max(row, 0), max(dims.Columns, 1))
	return false
}

func (m *Model) updateFilter(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.filter.SetValue("")
		m.applyFilter()
	case msg.Type == tea.KeyEnter:
		m.applyFilter()
	default:
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		return cmd
	}
	m.filtering = false
	m.filter.Blur()
	m.syncPages()
	return nil
}

// applyFilter sets the label filter of the focused section; an empty query clears it.
func (m *Model) applyFilter() {
	s := m.focused()
	if s == nil {
		return
	}
	var f pagination.Filter
	if q := strings.TrimSpace(m.filter.Value()); q != "" {
		f = display.LabelContains(q)
	}
	if err := s.Ruleset().Filter(f); err != nil {
		m.AddLog(fmt.Sprintf("Error filtering section %d: %v", s.Index(), err))
	}
}

func (m *Model) click(t pagination.ClickType) {
	if m.view == nil {
		return
	}
	for i := range m.view.Sections() {
		if s, err := m.view.At(i); err == nil && s.Within(m.cursor) {
			m.focus = i
			break
		}
	}
	cancelled, err := m.view.Click(m.cursor, t)
	if err != nil {
		m.AddLog(fmt.Sprintf("Error clicking slot %d: %v", m.cursor, err))
		return
	}
	if !cancelled {
		m.AddLog(fmt.Sprintf("slot %d accepted the click", m.cursor))
	}
}

func (m *Model) turn(delta int) {
	s := m.focused()
	if s == nil {
		return
	}
	if err := s.Page(s.CurrentPage() + delta); err != nil {
		m.AddLog(fmt.Sprintf("Error turning page: %v", err))
	}
}

func (m *Model) focused() *pagination.Section {
	if m.view == nil {
		return nil
	}
	s, err := m.view.At(m.focus)
	if err != nil {
		return nil
	}
	return s
}

func (m *Model) syncPages() {
	s := m.focused()
	if s == nil {
		m.pages.TotalPages = 1
		m.pages.Page = 0
		return
	}
	m.pages.TotalPages = s.MaxPages()
	m.pages.Page = s.CurrentPage() - 1
}

// View renders the TUI
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	title := m.grid.Title()
	if s := m.focused(); s != nil {
		title = fmt.Sprintf("%s - section %d, page %d/%d", title, s.Index()+1, s.CurrentPage(), s.MaxPages())
	}

	var status string
	if m.filtering {
		status = inputStyle.Render("/ " + m.filter.View())
	} else {
		status = m.pages.View()
	}

	return fmt.Sprintf(
		"%s\n%s\n%s\n%s\n%s",
		titleStyle.Render(title),
		m.renderGrid(),
		status,
		m.viewport.View(),
		helpStyle.Render(m.helpText()),
	)
}

func (m *Model) helpText() string {
	parts := make([]string, 0, len(m.keys.help()))
	for _, b := range m.keys.help() {
		h := b.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

func (m *Model) renderGrid() string {
	dims := m.grid.Dimension()
	rows := make([]string, 0, dims.Rows)
	for r := range dims.Rows {
		cells := make([]string, 0, dims.Columns)
		for c := range dims.Columns {
			cells = append(cells, m.renderCell(pagination.SlotAt(c, r, dims.Columns)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) renderCell(slot int) string {
	icon := m.grid.Cell(slot)
	label := cellLabel(icon, cellWidth)

	style := cellStyle
	nav, isNav := navOf(icon)
	switch {
	case slot == m.cursor:
		style = cursorStyle
	case isNav && nav.Disabled:
		style = disabledStyle
	case isNav:
		style = navStyle
	case m.focused() != nil && m.focused().Within(slot):
		style = focusStyle
	}
	return style.Render(label)
}

func navOf(icon *pagination.Icon) (Nav, bool) {
	if icon == nil {
		return Nav{}, false
	}
	nav, ok := icon.Display().(Nav)
	return nav, ok
}

// cellLabel fits the icon label into exactly width terminal columns.
func cellLabel(icon *pagination.Icon, width int) string {
	label := ""
	if icon != nil {
		label = icon.Label()
	}
	return runewidth.FillRight(runewidth.Truncate(label, width, "…"), width)
}

// AddLog adds a log message to the TUI
func (m *Model) AddLog(msg string) {
	m.logMutex.Lock()
	m.logs = append(m.logs, msg)

	// trim logs
	if m.MaxLogLines > 0 && len(m.logs) > m.MaxLogLines {
		m.logs = m.logs[len(m.logs)-m.MaxLogLines:]
	}
	m.logMutex.Unlock()

	select {
	case m.logged <- struct{}{}:
	default:
	}
}

func (m *Model) renderLogs() string {
	m.logMutex.Lock()
	defer m.logMutex.Unlock()
	return strings.Join(m.logs, "\n")
}

func (m *Model) refreshLogs() {
	if !m.ready {
		return
	}
	// do not scroll if not at bottom, to prevent flickering
	wasAtBottom := m.viewport.AtBottom()
	m.viewport.SetContent(m.renderLogs())
	if wasAtBottom {
		m.viewport.GotoBottom()
	}
}

func (m *Model) waitLog() tea.Cmd {
	return func() tea.Msg {
		<-m.logged
		return logMsg{}
	}
}

// logMsg signals that AddLog ran since the last refresh.
type logMsg struct{}

// LogMsg is a message type for logging
type LogMsg string

// Writer is an io.Writer that appends output to the TUI log.
type Writer struct {
	model *Model
}

// Writer returns an io.Writer for loggers. Writes never block on the program.
func (m *Model) Writer() *Writer {
	return &Writer{model: m}
}

// Write implements io.Writer
func (w *Writer) Write(p []byte) (n int, err error) {
	msg := strings.TrimSuffix(string(p), "\n")
	if msg != "" {
		w.model.AddLog(msg)
	}
	return len(p), nil
}

// Start creates a new TUI program for m.
func Start(m *Model) *tea.Program {
	return tea.NewProgram(m, tea.WithAltScreen())
}

var _ io.Writer = (*Writer)(nil)
