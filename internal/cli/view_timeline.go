package cli

import (
	"context"
	"strings"

	"github.com/Sricharanredd/jira-team-1/internal/app"
	"github.com/Sricharanredd/jira-team-1/internal/cli/formatter"
	"github.com/Sricharanredd/jira-team-1/internal/timeline"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// viewChrome is the number of lines around the rows: title, blank, two
// header lines, separator, notice and help.
const viewChrome = 7

type timelineKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Toggle  key.Binding
	Zoom    key.Binding
	Refresh key.Binding
	Reload  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultTimelineKeys() timelineKeyMap {
	return timelineKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "earlier")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "later")),
		Toggle:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "toggle group")),
		Zoom:    key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "zoom")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Reload:  key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "full reload")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k timelineKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Zoom, k.Refresh, k.Reload, k.Help, k.Quit}
}

func (k timelineKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Toggle, k.Zoom, k.Refresh, k.Reload},
		{k.Help, k.Quit},
	}
}

// timelineLoadedMsg carries a fresh render, or the error that prevented it.
type timelineLoadedMsg struct {
	resp   *app.RenderResponse
	err    error
	notice string
}

// fileChangedMsg signals that the watched issue file changed on disk.
type fileChangedMsg struct{}

// rowKey identifies a row across renders.
type rowKey struct {
	kind timeline.RowKind
	id   string
}

// timelineModel is the interactive Gantt view. The persisted view state is
// the source of truth; every change goes through the view-state use case and
// is followed by a re-render.
type timelineModel struct {
	app     *App
	keys    timelineKeyMap
	help    help.Model
	changes <-chan struct{}

	layout *timeline.Layout
	source string

	cursor     int
	selected   *rowKey
	rowOffset  int
	gridOffset int
	recenter   bool

	width, height int
	loading       bool
	err           error
	notice        string
}

func newTimelineModel(a *App, changes <-chan struct{}) *timelineModel {
	return &timelineModel{
		app:      a,
		keys:     defaultTimelineKeys(),
		help:     help.New(),
		changes:  changes,
		loading:  true,
		recenter: true,
	}
}

func (m *timelineModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.render(loadCached, "")}
	if m.changes != nil {
		cmds = append(cmds, waitForChange(m.changes))
	}
	return tea.Batch(cmds...)
}

// loadMode says how much of the cached issues and view state a render drops.
type loadMode int

const (
	loadCached  loadMode = iota
	loadRefresh          // refetch issues, keep view state
	loadFull             // refetch issues, expand every group
)

func (m *timelineModel) render(mode loadMode, notice string) tea.Cmd {
	a := m.app
	req := a.terminalRequest(mode == loadFull)
	req.Refresh = mode == loadRefresh
	return func() tea.Msg {
		resp, err := a.timelineUseCase().Render(context.Background(), req)
		return timelineLoadedMsg{resp: resp, err: err, notice: notice}
	}
}

// mutate applies a view-state change and re-renders on success.
func (m *timelineModel) mutate(notice string, fn func(ctx context.Context, uc app.ViewStateUseCase, scope string) error) tea.Cmd {
	a := m.app
	req := a.terminalRequest(false)
	return func() tea.Msg {
		ctx := context.Background()
		if err := fn(ctx, a.viewStateUseCase(), a.scope()); err != nil {
			return timelineLoadedMsg{err: err}
		}
		resp, err := a.timelineUseCase().Render(ctx, req)
		return timelineLoadedMsg{resp: resp, err: err, notice: notice}
	}
}

func waitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return fileChangedMsg{}
	}
}

func (m *timelineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.recenter = true
		m.clampScroll()
		return m, nil

	case timelineLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.notice = msg.notice
		m.apply(msg.resp)
		return m, nil

	case fileChangedMsg:
		m.loading = true
		cmd := m.render(loadRefresh, "Issue file changed")
		if m.changes != nil {
			cmd = tea.Batch(cmd, waitForChange(m.changes))
		}
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *timelineModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.layout == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Left):
		m.gridOffset -= 7 * m.layout.DayWidth
		m.clampScroll()
	case key.Matches(msg, m.keys.Right):
		m.gridOffset += 7 * m.layout.DayWidth
		m.clampScroll()
	case key.Matches(msg, m.keys.Toggle):
		row, ok := m.selectedRow()
		if !ok {
			return m, nil
		}
		groupID := row.GroupID
		m.selected = &rowKey{kind: timeline.RowGroupHeader, id: groupID}
		m.loading = true
		return m, m.mutate("", func(ctx context.Context, uc app.ViewStateUseCase, scope string) error {
			_, err := uc.Toggle(ctx, scope, groupID)
			return err
		})
	case key.Matches(msg, m.keys.Zoom):
		next := m.layout.Zoom.Next()
		m.loading = true
		m.recenter = true
		return m, m.mutate("Zoom: "+string(next), func(ctx context.Context, uc app.ViewStateUseCase, scope string) error {
			_, err := uc.SetZoom(ctx, scope, next)
			return err
		})
	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, m.render(loadRefresh, "Refreshed")
	case key.Matches(msg, m.keys.Reload):
		m.loading = true
		m.recenter = true
		return m, m.render(loadFull, "Reloaded; all groups expanded")
	}
	return m, nil
}

// apply installs a new render, keeping the cursor on the same row when it
// still exists.
func (m *timelineModel) apply(resp *app.RenderResponse) {
	if m.selected == nil && m.layout != nil && m.cursor < len(m.layout.Rows) {
		row := m.layout.Rows[m.cursor]
		m.selected = &rowKey{kind: row.Kind, id: row.ID}
	}
	m.layout = resp.Layout
	m.source = resp.Source

	if m.selected != nil {
		if idx := m.layout.RowIndex(m.selected.kind, m.selected.id); idx >= 0 {
			m.cursor = idx
		}
		m.selected = nil
	}
	if m.recenter {
		m.gridOffset = formatter.GridWindow(m.layout, m.gridWidth())
		m.recenter = false
	}
	m.clampScroll()
}

func (m *timelineModel) moveCursor(delta int) {
	m.cursor += delta
	m.clampScroll()
}

func (m *timelineModel) clampScroll() {
	if m.layout == nil {
		return
	}
	rows := len(m.layout.Rows)
	m.cursor = max(0, min(m.cursor, rows-1))

	if limit := m.rowLimit(); limit > 0 {
		if m.cursor < m.rowOffset {
			m.rowOffset = m.cursor
		}
		if m.cursor >= m.rowOffset+limit {
			m.rowOffset = m.cursor - limit + 1
		}
		m.rowOffset = max(0, min(m.rowOffset, rows-limit))
	} else {
		m.rowOffset = 0
	}

	if w := m.gridWidth(); w > 0 {
		m.gridOffset = max(0, min(m.gridOffset, m.layout.TotalWidth-w))
	} else {
		m.gridOffset = 0
	}
}

// gridWidth is the number of grid cells that fit next to the sidebar, or 0
// before the terminal size is known.
func (m *timelineModel) gridWidth() int {
	if m.width == 0 {
		return 0
	}
	return max(10, m.width-formatter.SidebarWidth(m.app.titleWidth()))
}

func (m *timelineModel) rowLimit() int {
	if m.height == 0 {
		return 0
	}
	return max(1, m.height-viewChrome)
}

func (m *timelineModel) View() string {
	var b strings.Builder

	title := formatter.StyleHeader.Render("TIMELINE")
	meta := []string{m.app.scope()}
	if m.layout != nil {
		meta = append(meta, string(m.layout.Zoom))
	}
	if m.source != "" {
		meta = append(meta, m.source)
	}
	b.WriteString(title + "  " + formatter.Dim(strings.Join(meta, " · ")))
	if m.loading {
		b.WriteString(formatter.Dim("  loading…"))
	}
	b.WriteString("\n\n")

	switch {
	case m.err != nil && m.layout == nil:
		b.WriteString(formatter.StyleRed.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	case m.layout != nil:
		opts := formatter.GanttOptions{
			TitleWidth: m.app.titleWidth(),
			GridOffset: m.gridOffset,
			GridWidth:  m.gridWidth(),
			RowOffset:  m.rowOffset,
			RowLimit:   m.rowLimit(),
			Cursor:     m.cursor,
		}
		b.WriteString(formatter.FormatGantt(m.layout, opts))
		if m.err != nil {
			b.WriteString(formatter.StyleRed.Render("Error: " + m.err.Error()))
		} else if m.notice != "" {
			b.WriteString(formatter.Dim(m.notice))
		} else if row, ok := m.selectedRow(); ok {
			b.WriteString(formatter.Dim(formatter.RowDetail(row, m.app.now())))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// selectedRow returns the row under the cursor, if any.
func (m *timelineModel) selectedRow() (timeline.Row, bool) {
	if m.layout == nil || m.cursor >= len(m.layout.Rows) {
		return timeline.Row{}, false
	}
	return m.layout.Rows[m.cursor], true
}
