package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type promptModel struct {
	title    string
	input    textinput.Model
	done     bool
	canceled bool
}

func newPrompt(title, placeholder, initial string) promptModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 300
	ti.SetValue(initial)
	ti.Focus()
	return promptModel{title: title, input: ti}
}

func (m promptModel) Init() tea.Cmd { return textinput.Blink }

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.canceled = true
			return m, tea.Quit
		case "enter":
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.done || m.canceled {
		return ""
	}
	return titleStyle.Render(m.title) + "\n" +
		m.input.View() + "\n\n" +
		helpStyle.Render("enter confirm   esc cancel")
}

// PromptText collects one line of input, pre-filled with initial. An empty
// string means the user canceled or submitted nothing.
func PromptText(title, placeholder, initial string) (string, error) {
	p := tea.NewProgram(newPrompt(title, placeholder, initial))
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("prompt: %w", err)
	}
	m := final.(promptModel)
	if m.canceled {
		return "", nil
	}
	return strings.TrimSpace(m.input.Value()), nil
}
