package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/theslyprofessor/zellij-pane-tracker/internal/events"
	"github.com/theslyprofessor/zellij-pane-tracker/internal/model"
)

type loadedMsg struct {
	status Status
	err    error
	// periodic loads schedule the next refresh; manual ones do not, so
	// there is only ever one tick chain.
	periodic bool
}

type tickMsg struct{}

type reloadMsg struct{}

type captureSentMsg struct {
	err error
}

// Watch runs the interactive status view.
type Watch struct {
	SnapshotPath    string
	InfoPath        string
	RefreshInterval time.Duration // 0 disables auto-refresh
	ThemeName       string
	// SocketPath is where the daemon listens; "c" sends it a capture request.
	SocketPath string
}

type watchModel struct {
	snapshotPath    string
	infoPath        string
	refreshInterval time.Duration
	styles          styles
	table           table.Model
	requestCapture  func() error

	status   Status
	err      error
	message  string
	loadedAt time.Time
	width    int
	height   int
}

func (w *Watch) Run() error {
	p := tea.NewProgram(w.newModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (w *Watch) newModel() *watchModel {
	snapshotPath := w.SnapshotPath
	if snapshotPath == "" {
		snapshotPath = model.SnapshotPath
	}
	infoPath := w.InfoPath
	if infoPath == "" {
		infoPath = model.InfoPath
	}
	st := newStyles(ThemeByName(w.ThemeName))

	tbl := table.New(
		table.WithColumns([]table.Column{
			{Title: "PANE", Width: 14},
			{Title: "NAME", Width: 32},
			{Title: "COMMAND", Width: 40},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	ts := table.DefaultStyles()
	ts.Header = st.header
	ts.Cell = st.cell
	ts.Selected = st.selected
	tbl.SetStyles(ts)

	socketPath := w.SocketPath
	if socketPath == "" {
		socketPath = events.DefaultSocketPath()
	}

	return &watchModel{
		snapshotPath:    snapshotPath,
		infoPath:        infoPath,
		refreshInterval: w.RefreshInterval,
		styles:          st,
		table:           tbl,
		requestCapture: func() error {
			return events.Send(socketPath, events.CaptureRequest())
		},
	}
}

func (m *watchModel) Init() tea.Cmd {
	return m.load(true)
}

func (m *watchModel) load(periodic bool) tea.Cmd {
	snapshotPath, infoPath := m.snapshotPath, m.infoPath
	return func() tea.Msg {
		st, err := Load(snapshotPath, infoPath)
		return loadedMsg{status: st, err: err, periodic: periodic}
	}
}

// scheduleTick returns nil when auto-refresh is disabled.
func (m *watchModel) scheduleTick() tea.Cmd {
	if m.refreshInterval <= 0 {
		return nil
	}
	return tea.Tick(m.refreshInterval, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

func (m *watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			return m, m.load(false)
		case "c":
			m.message = "requesting capture..."
			return m, m.capture()
		}

	case captureSentMsg:
		if msg.err != nil {
			m.message = "capture failed: " + msg.err.Error()
			return m, nil
		}
		m.message = "capture requested"
		// The daemon writes the metadata asynchronously; pick it up shortly.
		return m, tea.Tick(500*time.Millisecond, func(time.Time) tea.Msg { return reloadMsg{} })

	case reloadMsg:
		return m, m.load(false)

	case tickMsg:
		return m, m.load(true)

	case loadedMsg:
		m.apply(msg)
		if !msg.periodic {
			return m, nil
		}
		return m, m.scheduleTick()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *watchModel) capture() tea.Cmd {
	send := m.requestCapture
	return func() tea.Msg {
		return captureSentMsg{err: send()}
	}
}

func (m *watchModel) apply(msg loadedMsg) {
	m.loadedAt = time.Now()
	m.err = msg.err
	if msg.err != nil {
		return
	}
	m.status = msg.status

	rows := make([]table.Row, 0, len(msg.status.Rows))
	for _, r := range msg.status.Rows {
		rows = append(rows, table.Row{r.PaneID, r.Name, r.Command})
	}
	m.table.SetRows(rows)
	if len(rows) == 0 {
		m.table.SetCursor(0)
	} else if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(len(rows) - 1)
	}
}

func (m *watchModel) resize() {
	if m.width <= 0 {
		return
	}
	cols := m.table.Columns()
	if len(cols) == 3 {
		rest := m.width - cols[0].Width - 8
		if rest < 30 {
			rest = 30
		}
		cols[1].Width = rest * 2 / 5
		cols[2].Width = rest - cols[1].Width
		m.table.SetColumns(cols)
	}

	h := m.height - 12
	if h < 5 {
		h = 5
	}
	m.table.SetHeight(h)
}

func (m *watchModel) View() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.title.Render("Pane Tracker"))
	b.WriteString("\n")
	b.WriteString(s.rule.Render(strings.Repeat("═", 23)))
	b.WriteString("\n")
	b.WriteString(s.count.Render(fmt.Sprintf("Tracking %d panes", len(m.status.Rows))))
	if m.status.Timestamp > 0 {
		ts := time.Unix(int64(m.status.Timestamp), 0).Format("15:04:05")
		b.WriteString(s.dim.Render("  updated " + ts))
	}
	b.WriteString("\n\n")

	b.WriteString("Exports:\n")
	b.WriteString(s.dim.Render("  Names:    " + m.snapshotPath))
	b.WriteString("\n")
	b.WriteString(s.dim.Render("  Content:  /tmp/zj-pane-*.txt"))
	b.WriteString("\n")
	info := "  Metadata: " + m.infoPath
	if m.status.HasCaptureInfo {
		info += fmt.Sprintf(" (%d panes)", m.status.CapturedPanes)
	} else {
		info += " (no capture yet)"
	}
	b.WriteString(s.dim.Render(info))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(s.err.Render("error: " + m.err.Error()))
		b.WriteString("\n\n")
	}
	if m.message != "" {
		b.WriteString(s.dim.Render(m.message))
		b.WriteString("\n\n")
	}

	if len(m.status.Rows) == 0 {
		b.WriteString(s.dim.Render("No panes tracked yet"))
		b.WriteString("\n")
	} else {
		b.WriteString(m.table.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.hintKey.Render("c") + s.hintDesc.Render(" capture all panes  "))
	b.WriteString(s.hintKey.Render("r") + s.hintDesc.Render(" refresh  "))
	b.WriteString(s.hintKey.Render("q") + s.hintDesc.Render(" quit  "))
	b.WriteString(s.hintKey.Render("↑/↓") + s.hintDesc.Render(" move"))
	return b.String()
}
