package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-pilot-logbook/internal/service"
	"github.com/MKhiriev/go-pilot-logbook/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	logsPageSize  = 20
	remarksWidth  = 32
	statusTimeout = 2 * time.Second
)

// logsListModel is the paged, searchable list of flights and simulator
// sessions.
type logsListModel struct {
	ctx       context.Context
	logs      service.ClientLogService
	clipboard func(string) error

	query   models.LogsQuery
	page    models.LogsPage
	idx     int
	loading bool
	spinner spinner.Model

	search    textinput.Model
	searching bool

	status         string
	errMsg         string
	sessionExpired bool
}

func newLogsListModel(ctx context.Context, logs service.ClientLogService, clipboard func(string) error) logsListModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	search := textinput.New()
	search.Placeholder = "registration, airport, remarks..."
	search.CharLimit = 100
	search.Width = 40

	return logsListModel{
		ctx:       ctx,
		logs:      logs,
		clipboard: clipboard,
		query: models.LogsQuery{
			Page:     models.DefaultLogsPage,
			PageSize: logsPageSize,
			SortBy:   models.LogsSortDateDesc,
		},
		loading: true,
		spinner: s,
		search:  search,
	}
}

func (m logsListModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoad(m.query))
}

// capturesKeys reports whether plain keys belong to the search input.
func (m logsListModel) capturesKeys() bool {
	return m.searching
}

func (m logsListModel) current() (models.Log, bool) {
	if len(m.page.Logs) == 0 || m.idx < 0 || m.idx >= len(m.page.Logs) {
		return models.Log{}, false
	}
	return m.page.Logs[m.idx], true
}

func (m logsListModel) Update(msg tea.Msg) (logsListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case logsLoadedMsg:
		// a newer query is in flight
		if msg.query != m.query {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			m.sessionExpired = isSessionError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.page = msg.page
		if m.idx >= len(m.page.Logs) {
			m.idx = len(m.page.Logs) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
		return m, nil
	case routeCopiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", msg.err)
			return m, nil
		}
		m.status = "Copied " + msg.route
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m logsListModel) updateKeys(msg tea.KeyMsg) (logsListModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.page.Logs)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.prevPage):
		if m.query.Page > 1 {
			q := m.query
			q.Page--
			m.idx = 0
			return m.load(q)
		}
	case key.Matches(msg, keys.nextPage):
		if m.page.HasMore {
			q := m.query
			q.Page++
			m.idx = 0
			return m.load(q)
		}
	case key.Matches(msg, keys.search):
		m.searching = true
		m.search.SetValue(m.query.SearchQuery)
		m.search.CursorEnd()
		return m, m.search.Focus()
	case key.Matches(msg, keys.sort):
		q := m.query
		q.Page = 1
		q.SortBy = toggleLogsSort(q.SortBy)
		m.idx = 0
		return m.load(q)
	case key.Matches(msg, keys.reload):
		return m.load(m.query)
	case key.Matches(msg, keys.copy):
		item, ok := m.current()
		if !ok {
			return m, nil
		}
		route, ok := logRoute(item)
		if !ok {
			m.status = "Simulator sessions have no route"
			return m, cmdClearStatus()
		}
		return m, cmdCopyRoute(m.clipboard, route)
	}

	return m, nil
}

func (m logsListModel) updateSearch(msg tea.KeyMsg) (logsListModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter):
		m.searching = false
		m.search.Blur()
		q := m.query
		q.SearchQuery = strings.TrimSpace(m.search.Value())
		q.Page = 1
		m.idx = 0
		return m.load(q)
	case key.Matches(msg, keys.esc):
		m.searching = false
		m.search.Blur()
		m.search.SetValue(m.query.SearchQuery)
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m logsListModel) load(q models.LogsQuery) (logsListModel, tea.Cmd) {
	m.query = q
	m.loading = true
	m.errMsg = ""
	return m, tea.Batch(m.spinner.Tick, m.cmdLoad(q))
}

func (m logsListModel) cmdLoad(q models.LogsQuery) tea.Cmd {
	ctx := m.ctx
	logs := m.logs

	return func() tea.Msg {
		page, err := logs.FetchLogs(ctx, q)
		return logsLoadedMsg{query: q, page: page, err: err}
	}
}

func (m logsListModel) View() string {
	var b strings.Builder

	header := fmt.Sprintf("Page %d │ %d total │ %s", m.query.Page, m.page.TotalCount, sortLabel(m.query.SortBy))
	if m.loading {
		header += "  " + m.spinner.View()
	}
	b.WriteString(header)
	b.WriteString("\n")

	if m.searching {
		b.WriteString("Search: ")
		b.WriteString(m.search.View())
	} else {
		b.WriteString("Search: ")
		b.WriteString(valueOrDash(&m.query.SearchQuery))
	}
	b.WriteString("\n\n")

	switch {
	case m.loading && len(m.page.Logs) == 0:
		b.WriteString("Loading...\n")
	case len(m.page.Logs) == 0:
		b.WriteString("No logs\n")
	default:
		b.WriteString(fmt.Sprintf("  %-10s │ %-3s │ %-9s │ %6s │ %s\n", "Date", "", "Route", "Time", "Remarks"))
		b.WriteString("  " + strings.Repeat("─", 10+3+9+6+remarksWidth+12) + "\n")
		for i, item := range m.page.Logs {
			row := renderLogRow(item)
			if i == m.idx {
				b.WriteString(selectedStyle.Render("> " + row))
			} else {
				b.WriteString("  " + row)
			}
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	hotKeys := "↑/↓: select │ ←/→: page │ /: search │ s: sort │ c: copy route │ r: reload"
	if m.searching {
		hotKeys = "enter: search │ esc: cancel"
	}
	return renderPage("LOGBOOK", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func renderLogRow(l models.Log) string {
	base := l.Base()
	kind := "SIM"
	route := "-"
	minutes := 0

	switch {
	case l.Flight != nil:
		kind = "FLT"
		route, _ = logRoute(l)
		minutes = l.Flight.TotalBlockMinutes
	case l.Simulator != nil:
		minutes = l.Simulator.SessionMinutes
	}

	remarks := fitText(strings.ReplaceAll(valueOrDash(base.Remarks), "\n", " "), remarksWidth)
	return fmt.Sprintf("%-10s │ %-3s │ %-9s │ %6s │ %s", base.Date.String(), kind, route, formatMinutes(minutes), remarks)
}

// logRoute returns the departure and destination of a flight as "DEP-DEST".
func logRoute(l models.Log) (string, bool) {
	if l.Type != models.LogTypeFlight || l.Flight == nil {
		return "", false
	}
	return l.Flight.DepartureAirportCode + "-" + l.Flight.DestinationAirportCode, true
}

func toggleLogsSort(s models.LogsSortBy) models.LogsSortBy {
	if s == models.LogsSortDateAsc {
		return models.LogsSortDateDesc
	}
	return models.LogsSortDateAsc
}

func sortLabel(s models.LogsSortBy) string {
	if s == models.LogsSortDateAsc {
		return "oldest first"
	}
	return "newest first"
}

func cmdCopyRoute(write func(string) error, route string) tea.Cmd {
	return func() tea.Msg {
		if err := write(route); err != nil {
			return routeCopiedMsg{route: route, err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return routeCopiedMsg{route: route}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
