package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/faizmokh/remind/internal/reminder"
)

// Model owns Bubble Tea state for the day-by-day agenda.
type Model struct {
	ctx    context.Context
	reader *reminder.Reader
	help   help.Model

	currentDate time.Time
	entries     []reminder.Entry
	selected    int

	loading    bool
	statusLine string
	errorLine  string
}

type dayLoadedMsg struct {
	date    time.Time
	entries []reminder.Entry
	err     error
}

// NewModel seeds a Bubble Tea model reading from reader.
func NewModel(ctx context.Context, reader *reminder.Reader) Model {
	return Model{
		ctx:         ctx,
		reader:      reader,
		help:        help.New(),
		currentDate: today(),
		loading:     true,
		statusLine:  "Loading today's reminders...",
	}
}

// Init loads the initial day.
func (m Model) Init() tea.Cmd {
	return m.loadDayCmd(m.currentDate)
}

// Update wires state transitions from key presses and load results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case dayLoadedMsg:
		return m.handleDayLoaded(msg)
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Down):
		if m.selected < len(m.entries)-1 {
			m.selected++
			m.statusLine = fmt.Sprintf("Selected reminder %d of %d", m.selected+1, len(m.entries))
		}
	case key.Matches(msg, keys.Up):
		if m.selected > 0 {
			m.selected--
			m.statusLine = fmt.Sprintf("Selected reminder %d of %d", m.selected+1, len(m.entries))
		}
	case key.Matches(msg, keys.Prev):
		return m.gotoDate(m.currentDate.AddDate(0, 0, -1))
	case key.Matches(msg, keys.Next):
		return m.gotoDate(m.currentDate.AddDate(0, 0, 1))
	case key.Matches(msg, keys.Today):
		return m.gotoDate(today())
	case key.Matches(msg, keys.Reload):
		return m.gotoDate(m.currentDate)
	}
	return m, nil
}

func (m Model) handleDayLoaded(msg dayLoadedMsg) (tea.Model, tea.Cmd) {
	if !sameDay(msg.date, m.currentDate) {
		// A newer navigation superseded this load.
		return m, nil
	}

	m.loading = false
	if msg.err != nil {
		m.entries = nil
		m.selected = 0
		m.errorLine = msg.err.Error()
		m.statusLine = ""
		return m, nil
	}

	m.entries = msg.entries
	m.errorLine = ""
	if m.selected >= len(m.entries) {
		m.selected = max(len(m.entries)-1, 0)
	}
	m.statusLine = fmt.Sprintf("%d reminder%s", len(m.entries), plural(len(m.entries)))
	return m, nil
}

func (m Model) gotoDate(date time.Time) (tea.Model, tea.Cmd) {
	if !sameDay(date, m.currentDate) {
		m.selected = 0
	}
	m.currentDate = date
	m.loading = true
	m.errorLine = ""
	m.statusLine = "Loading..."
	return m, m.loadDayCmd(date)
}

func (m Model) loadDayCmd(date time.Time) tea.Cmd {
	reader := m.reader
	ctx := m.ctx
	return func() tea.Msg {
		entries, err := reader.On(ctx, date)
		return dayLoadedMsg{date: date, entries: entries, err: err}
	}
}

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(styleHeader.Render(m.currentDate.Format("Monday, 02 January 2006")))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.entries) == 0 && m.errorLine == "":
		b.WriteString(styleStatus.Render("(no reminders)"))
		b.WriteByte('\n')
	default:
		for i, entry := range m.entries {
			b.WriteString(renderEntry(entry, i == m.selected))
			b.WriteByte('\n')
		}
	}

	b.WriteByte('\n')
	if m.errorLine != "" {
		b.WriteString(styleError.Render("! " + m.errorLine))
	} else {
		b.WriteString(styleStatus.Render(m.statusLine))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(keys))
	b.WriteByte('\n')

	return b.String()
}

func renderEntry(entry reminder.Entry, selected bool) string {
	cursor := "  "
	style := styleNormal
	if selected {
		cursor = "> "
		style = styleSelected
	}

	line := cursor + entry.Time.String() + " " + entry.Msg
	return style.Render(line) + " " + styleDuration.Render("("+reminder.FormatDuration(entry.Duration)+")")
}

func today() time.Time {
	now := time.Now().In(time.Local)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
