package styles

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func press(m ConfirmModel, keys ...tea.KeyMsg) (ConfirmModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(ConfirmModel)
	}
	return m, cmd
}

func TestConfirm_DefaultsToNo(t *testing.T) {
	m, cmd := press(NewConfirm(NewTheme(), "Reset?"), tea.KeyMsg{Type: tea.KeyEnter})

	assert.NotNil(t, cmd)
	assert.True(t, m.Done())
	assert.False(t, m.Result())
	assert.Empty(t, m.View())
}

func TestConfirm_AcceptYes(t *testing.T) {
	m := NewConfirm(NewTheme(), "Reset?")
	assert.Contains(t, m.View(), "Reset?")

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.Result())
}

func TestConfirm_CancelDiscardsSelection(t *testing.T) {
	m, _ := press(NewConfirm(NewTheme(), "Reset?"),
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyEsc},
	)

	assert.True(t, m.Done())
	assert.False(t, m.Result())
}
