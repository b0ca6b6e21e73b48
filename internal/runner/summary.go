package runner

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"thicket/internal/model"
)

var (
	headStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	dimStyle  = lipgloss.NewStyle().Faint(true)
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	urlStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// RenderSummary writes the post-run report: one block per worktree in
// selection order, then the deduplicated URL list across all worktrees.
func RenderSummary(w io.Writer, s model.RunSummary) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, headStyle.Render("Run summary"))

	for _, e := range s.Entries {
		glyph := okStyle.Render("✓")
		if e.Outcome.State == model.Failed {
			glyph = errStyle.Render("✗")
		}
		line := fmt.Sprintf("%s %s  %s", glyph, e.Worktree.Branch, dimStyle.Render(e.Worktree.Path))
		if e.Outcome.State == model.Failed && e.Outcome.Reason != "" {
			line += "  " + errStyle.Render(e.Outcome.Reason)
		}
		fmt.Fprintln(w, line)

		for _, u := range e.URLs {
			fmt.Fprintln(w, "    "+urlStyle.Render(u))
			if s.Route != "" {
				fmt.Fprintln(w, "    "+urlStyle.Render(u+s.Route))
			}
		}
	}

	if len(s.AllURLs) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, headStyle.Render("URLs"))
		for _, u := range s.AllURLs {
			if s.Route != "" {
				fmt.Fprintf(w, "  %s  %s\n", urlStyle.Render(u), dimStyle.Render(u+s.Route))
			} else {
				fmt.Fprintln(w, "  "+urlStyle.Render(u))
			}
		}
	}

	if n := s.Failures(); n > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, errStyle.Render(fmt.Sprintf("%d of %d worktrees failed", n, len(s.Entries))))
	}
}
