package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type confirmKeys struct {
	Yes, No, Toggle, Accept, Cancel key.Binding
}

func (k confirmKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Yes, k.No, k.Accept, k.Cancel}
}

func (k confirmKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Toggle}}
}

var defaultConfirmKeys = confirmKeys{
	Yes:    key.NewBinding(key.WithKeys("y", "right", "l"), key.WithHelp("y", "yes")),
	No:     key.NewBinding(key.WithKeys("n", "left", "h"), key.WithHelp("n", "no")),
	Toggle: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "toggle")),
	Accept: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
	Cancel: key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc", "cancel")),
}

// ConfirmModel asks a yes/no question before a destructive command.
// The selection starts on "No" and the program quits on enter or esc.
type ConfirmModel struct {
	Message string
	Yes     bool

	answered bool
	theme    *Theme
	help     help.Model
}

// NewConfirm creates a dialog for message.
func NewConfirm(theme *Theme, message string) ConfirmModel {
	h := help.New()
	h.ShortSeparator = " · "
	h.Styles.ShortKey = theme.HelpKey
	h.Styles.ShortDesc = theme.HelpDesc
	return ConfirmModel{Message: message, theme: theme, help: h}
}

func (m ConfirmModel) Init() tea.Cmd { return nil }

func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok || m.answered {
		return m, nil
	}
	keys := defaultConfirmKeys
	switch {
	case key.Matches(k, keys.Yes):
		m.Yes = true
	case key.Matches(k, keys.No):
		m.Yes = false
	case key.Matches(k, keys.Toggle):
		m.Yes = !m.Yes
	case key.Matches(k, keys.Accept):
		m.answered = true
		return m, tea.Quit
	case key.Matches(k, keys.Cancel):
		m.Yes, m.answered = false, true
		return m, tea.Quit
	}
	return m, nil
}

func (m ConfirmModel) View() string {
	if m.answered {
		return ""
	}
	choice := func(label string, focused bool) string {
		if focused {
			return m.theme.ButtonFocused.Render(label)
		}
		return m.theme.Button.Render(label)
	}
	return m.theme.Box.Render(lipgloss.JoinVertical(lipgloss.Center,
		m.theme.Title.Render(m.Message),
		"",
		choice("No", !m.Yes)+"  "+choice("Yes", m.Yes),
		"",
		m.help.View(defaultConfirmKeys),
	))
}

// Done reports whether the dialog was answered or canceled.
func (m ConfirmModel) Done() bool { return m.answered }

// Result is true only when "Yes" was accepted.
func (m ConfirmModel) Result() bool { return m.answered && m.Yes }
