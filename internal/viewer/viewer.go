package viewer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"CVDScenarios/internal/model"
	"CVDScenarios/internal/notifier"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#0077cc")).
			Padding(0, 1)
	tableStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333333")).
			Padding(0, 1)
	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999")).
			Padding(0, 1)
	entryRowStyle = lipgloss.NewStyle().Background(lipgloss.Color("#222222"))
)

// Model pages through the scenarios one card at a time.
type Model struct {
	scenarios []model.Scenario
	clock     notifier.Clock
	index     int
	showCVD   bool
	width     int
	height    int
}

// New creates a viewer positioned on the first scenario.
func New(scenarios []model.Scenario, clock notifier.Clock) Model {
	return Model{scenarios: scenarios, clock: clock, width: 100, height: 40}
}

// Run starts the interactive viewer on the alternate screen.
func Run(scenarios []model.Scenario, clock notifier.Clock) error {
	if len(scenarios) == 0 {
		return fmt.Errorf("viewer: no scenarios")
	}
	if _, err := tea.NewProgram(New(scenarios, clock), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}
	return nil
}

// Notifier shows the scenarios in the interactive viewer.
type Notifier struct {
	Clock notifier.Clock
}

// Notify blocks until the user quits the viewer.
func (n Notifier) Notify(scenarios []model.Scenario) error {
	return Run(scenarios, n.Clock)
}

// Index is the position of the scenario on screen.
func (m Model) Index() int { return m.index }

// ShowingCVD reports whether the candle table lists the CVD chart.
func (m Model) ShowingCVD() bool { return m.showCVD }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", "n":
			if m.index < len(m.scenarios)-1 {
				m.index++
			}
		case "left", "h", "p":
			if m.index > 0 {
				m.index--
			}
		case "c":
			m.showCVD = !m.showCVD
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m Model) View() string {
	if len(m.scenarios) == 0 {
		return "no scenarios\n"
	}
	s := m.scenarios[m.index]

	header := headerStyle.Render(fmt.Sprintf("Scenario %d/%d  ·  CVD %s", m.index+1, len(m.scenarios), strings.ToUpper(string(s.CVDDirection))))
	card, err := notifier.FormatCard(s, m.clock)
	if err != nil {
		card = fmt.Sprintf("render error: %v", err)
	}

	series, seq := "Price", s.PriceData
	if m.showCVD {
		series, seq = "CVD", s.CVDData
	}
	table := tableStyle.Render(candleTable(series, seq, s.TradeSetup.EntryTime))
	footer := footerStyle.Render("Keys: ←/→ scenario, c price/CVD candles, q quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, card, table, footer)
}

func candleTable(series string, seq model.Sequence, entry int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s candles\n", series)
	fmt.Fprintf(&b, "%4s %9s %9s %9s %9s  %s\n", "t", "open", "high", "low", "close", "marker")
	for _, c := range seq {
		marker := string(c.StructureLabel)
		if c.Pattern != model.PatternNone {
			if marker != "" {
				marker += " "
			}
			marker += string(c.Pattern)
		}
		line := fmt.Sprintf("%4d %9.2f %9.2f %9.2f %9.2f  %s", c.Time, c.Open, c.High, c.Low, c.Close, marker)
		if c.Time == entry {
			line = entryRowStyle.Render(line + "  ◀ entry")
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
