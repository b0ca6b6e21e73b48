package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"thicket/internal/git"
)

var (
	branchStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List worktrees",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	wts, err := git.ListWorktrees()
	if err != nil {
		return err
	}
	if len(wts) == 0 {
		fmt.Println(dimStyle.Render("no worktrees found"))
		return nil
	}

	width := 0
	for _, wt := range wts {
		if len(wt.Branch) > width {
			width = len(wt.Branch)
		}
	}
	for _, wt := range wts {
		commit := wt.Commit
		if commit == "" {
			commit = "-------"
		}
		// Pad before styling: ANSI codes would skew %-*s widths.
		pad := strings.Repeat(" ", width-len(wt.Branch))
		fmt.Printf("%s%s  %s  %s\n",
			branchStyle.Render(wt.Branch), pad,
			dimStyle.Render(commit),
			wt.Path)
	}
	return nil
}
