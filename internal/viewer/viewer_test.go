package viewer

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CVDScenarios/internal/model"
	"CVDScenarios/internal/notifier"
	"CVDScenarios/internal/strategy"
)

func newModel(t *testing.T) Model {
	t.Helper()
	scenarios, err := strategy.Assemble(strategy.Catalog())
	require.NoError(t, err)
	return New(scenarios, notifier.Clock{
		Epoch: time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC),
		Bar:   5 * time.Minute,
	})
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestUpdate_Paging(t *testing.T) {
	m := newModel(t)
	assert.Equal(t, 0, m.Index())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, m.Index())

	for i := 0; i < 12; i++ {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}
	assert.Equal(t, 8, m.Index())

	m, _ = press(t, m, runes("h"))
	assert.Equal(t, 7, m.Index())
}

func TestUpdate_ToggleAndQuit(t *testing.T) {
	m := newModel(t)
	assert.False(t, m.ShowingCVD())

	m, _ = press(t, m, runes("c"))
	assert.True(t, m.ShowingCVD())
	assert.Contains(t, m.View(), "CVD candles")

	m, _ = press(t, m, runes("c"))
	assert.Contains(t, m.View(), "Price candles")

	_, cmd := press(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView_ShowsCurrentScenario(t *testing.T) {
	m := newModel(t)
	view := m.View()
	assert.Contains(t, view, "Scenario 1/9")
	assert.Contains(t, view, "Price UP + CVD UP")
	assert.Contains(t, view, "◀ entry")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Contains(t, m.View(), "Price DOWN + CVD UP")

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Equal(t, 80, next.(Model).width)
}

func TestView_Empty(t *testing.T) {
	m := New(nil, notifier.Clock{})
	assert.Equal(t, "no scenarios\n", m.View())
	assert.Error(t, Run([]model.Scenario{}, notifier.Clock{}))
}

func TestNotifier_NoScenarios(t *testing.T) {
	var n notifier.Notifier = Notifier{}
	assert.ErrorContains(t, n.Notify(nil), "no scenarios")
}
