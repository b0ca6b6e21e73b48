// Package tui contains the interactive prompts: a multi-select worktree
// picker and a one-line text prompt, both bubbletea programs.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"thicket/internal/model"
)

// — styles ——————————————————————————————————————————————————————————————————

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	dimStyle    = lipgloss.NewStyle().Faint(true)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	checkStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)

	helpStyle = lipgloss.NewStyle().Faint(true)
)

// — picker ——————————————————————————————————————————————————————————————————

type pickerModel struct {
	title     string
	worktrees []model.Worktree
	selected  map[int]bool
	cursor    int
	done      bool
	canceled  bool
}

func newPicker(title string, wts []model.Worktree) pickerModel {
	return pickerModel{
		title:     title,
		worktrees: wts,
		selected:  make(map[int]bool),
	}
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.canceled = true
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.worktrees)-1 {
				m.cursor++
			}
		case " ":
			m.selected[m.cursor] = !m.selected[m.cursor]
		case "a":
			all := true
			for i := range m.worktrees {
				if !m.selected[i] {
					all = false
					break
				}
			}
			for i := range m.worktrees {
				m.selected[i] = !all
			}
		case "enter":
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m pickerModel) View() string {
	if m.done || m.canceled {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title) + "\n\n")

	for i, wt := range m.worktrees {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("❯ ")
		}
		check := dimStyle.Render("○")
		if m.selected[i] {
			check = checkStyle.Render("●")
		}
		line := fmt.Sprintf("%s%s %s", cursor, check, wt.Branch)
		if wt.Commit != "" {
			line += " " + dimStyle.Render(wt.Commit)
		}
		line += " " + dimStyle.Render(wt.Path)
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("space select   a all   enter confirm   esc cancel"))
	return b.String()
}

// PickWorktrees runs an interactive multi-select and returns the chosen
// worktrees in their original order. A nil slice means the user canceled
// or selected nothing.
func PickWorktrees(title string, wts []model.Worktree) ([]model.Worktree, error) {
	if len(wts) == 0 {
		return nil, nil
	}

	p := tea.NewProgram(newPicker(title, wts))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("picker: %w", err)
	}

	m := final.(pickerModel)
	if m.canceled {
		return nil, nil
	}
	var out []model.Worktree
	for i, wt := range wts {
		if m.selected[i] {
			out = append(out, wt)
		}
	}
	return out, nil
}
