package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"

	"github.com/vovakirdan/target-practice/internal/highscore"
	"github.com/vovakirdan/target-practice/internal/storage"
)

// Scoreboard layout constants
const (
	tableMinWidth = 40  // Below this the date column is dropped
	maxScores     = 100 // Max sessions to load per view
)

// ScoreboardView selects which sessions the table lists.
type ScoreboardView int

const (
	ViewTop ScoreboardView = iota
	ViewRecent
)

// String returns the tab title.
func (v ScoreboardView) String() string {
	if v == ViewRecent {
		return "Recent"
	}
	return "Top"
}

// ScoreboardData is everything the scoreboard shows.
type ScoreboardData struct {
	Record highscore.Record // Flat-file best
	Stats  *storage.GameStats
	Top    []storage.SessionEntry
	Recent []storage.SessionEntry
}

// RecordReader reads the persisted best score.
type RecordReader interface {
	Load() (highscore.Record, error)
}

// LoadScoreboard gathers the scoreboard for gameID. Either source may be nil.
// A malformed record is shown as no record and reported in the error.
func LoadScoreboard(store *storage.Store, records RecordReader, gameID string) (ScoreboardData, error) {
	var data ScoreboardData
	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if records != nil {
		rec, err := records.Load()
		keep(err)
		data.Record = rec
	}

	if store != nil {
		var err error
		data.Stats, err = store.GetGameStats(gameID)
		keep(err)
		data.Top, err = store.TopScores(gameID, maxScores)
		keep(err)
		data.Recent, err = store.RecentScores(gameID, maxScores)
		keep(err)
	}

	return data, firstErr
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextView key.Binding
	PrevView key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextView, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextView, k.PrevView, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextView: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "top/recent"),
		),
		PrevView: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "top/recent"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	data     ScoreboardData
	view     ScoreboardView
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(data ScoreboardData, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		data:   data,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table with columns fitted to the width.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Where", Width: 8},
		{Title: "Date", Width: 18},
	}

	tableWidth := m.width - 6 // Border and padding
	if tableWidth < tableMinWidth {
		columns = columns[:3]
	}

	height := m.height - 10 // Header, stats, tabs and help
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// entries returns the sessions for the current view.
func (m ScoreboardModel) entries() []storage.SessionEntry {
	if m.view == ViewRecent {
		return m.data.Recent
	}
	return m.data.Top
}

// updateTableRows fills the table from the current view.
func (m *ScoreboardModel) updateTableRows() {
	withDate := len(m.table.Columns()) > 3

	entries := m.entries()
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		row := table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", e.Score),
			e.Platform,
		}
		if withDate {
			row = append(row, e.PlayedAt.Local().Format("Jan 02 15:04"))
		}
		rows[i] = row
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextView), key.Matches(msg, m.keys.PrevView):
			// Two views, so next and previous are the same toggle
			m.view = 1 - m.view
			m.updateTableRows()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("TARGET PRACTICE - SCORES", m.width)))
	b.WriteString("\n\n")

	infoStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	b.WriteString(infoStyle.Render(recordLine(m.data.Record)))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(statsLine(m.data.Stats)))
	b.WriteString("\n\n")

	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)
	tabs := make([]string, 0, 2)
	for _, v := range []ScoreboardView{ViewTop, ViewRecent} {
		if v == m.view {
			tabs = append(tabs, activeTabStyle.Render(v.String()))
		} else {
			tabs = append(tabs, tabStyle.Render(v.String()))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
	b.WriteString("\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.entries()) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		return emptyStyle.Render("No sessions recorded yet.\nPlay a game to set a high score!")
	}

	return m.table.View()
}

// IsQuitting returns true if user wants to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the interactive scoreboard screen.
func RunScoreboard(data ScoreboardData, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(data, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// PlainScoreboard renders the scoreboard as plain text for pipes and logs.
func PlainScoreboard(data ScoreboardData, limit int) string {
	var b strings.Builder
	b.WriteString(recordLine(data.Record))
	b.WriteString("\n")
	b.WriteString(statsLine(data.Stats))
	b.WriteString("\n")

	if len(data.Top) == 0 {
		b.WriteString("\nNo sessions recorded yet.\n")
		return b.String()
	}

	rows := make([][]string, 0, len(data.Top))
	for i, e := range data.Top {
		if limit > 0 && i >= limit {
			break
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", e.Score),
			e.Platform,
			e.PlayedAt.Local().Format("2006-01-02 15:04"),
		})
	}

	b.WriteString("\n")
	b.WriteString(plainTable(rows).Render())
	b.WriteString("\n")
	return b.String()
}

// plainTable lays out rows without colors or outer borders; only the
// header is underlined.
func plainTable(rows [][]string) *ltable.Table {
	cell := lipgloss.NewStyle().PaddingRight(2)
	return ltable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(true).
		StyleFunc(func(row, col int) lipgloss.Style { return cell }).
		Headers("RANK", "SCORE", "WHERE", "DATE").
		Rows(rows...)
}

func recordLine(r highscore.Record) string {
	if r.AchievedAt == "" {
		return fmt.Sprintf("High score: %d", r.Score)
	}
	return fmt.Sprintf("High score: %d (%s)", r.Score, r.AchievedAt)
}

func statsLine(s *storage.GameStats) string {
	if s == nil || s.GamesCount == 0 {
		return "Sessions: 0"
	}
	return fmt.Sprintf("Sessions: %d | Best: %d | Average: %.1f | Last played: %s",
		s.GamesCount, s.HighScore, s.AvgScore, s.LastPlayed.Local().Format("2006-01-02 15:04"))
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	padding := (width - textWidth) / 2
	return strings.Repeat(" ", padding) + text
}
