package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"thicket/internal/git"
	"thicket/internal/tui"
)

var removeCmd = &cobra.Command{
	Use:     "remove",
	Aliases: []string{"rm"},
	Short:   "Remove selected worktrees",
	Long: `Remove runs git worktree remove for each worktree you select and
deletes its branch when fully merged. The main worktree is never offered.
Worktrees with uncommitted changes are flagged before you confirm.`,
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	wts, err := git.ListWorktrees()
	if err != nil {
		return err
	}
	if len(wts) == 0 {
		fmt.Println(dimStyle.Render("no worktrees found"))
		return nil
	}

	// The porcelain listing puts the main worktree first; it stays.
	mainRoot := wts[0].Path
	removable := wts[1:]
	if len(removable) == 0 {
		fmt.Println(dimStyle.Render("only the main worktree exists"))
		return nil
	}

	selected, err := tui.PickWorktrees("Remove which worktrees?", removable)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		fmt.Println(dimStyle.Render("nothing selected"))
		return nil
	}

	for _, wt := range selected {
		line := "  " + wt.Branch + "  " + dimStyle.Render(wt.Path)
		if git.IsDirty(wt.Path) {
			line += "  " + warnStyle.Render("uncommitted changes")
		}
		fmt.Println(line)
	}
	fmt.Printf("Remove %d worktree(s)? [y/N]: ", len(selected))

	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return fmt.Errorf("read confirmation: %w", err)
	}
	if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
		fmt.Println(dimStyle.Render("aborted"))
		return nil
	}

	failed := 0
	for _, wt := range selected {
		if err := git.RemoveWorktree(mainRoot, wt.Path, wt.Branch); err != nil {
			failed++
			fmt.Printf("%s %s  %s\n", errStyle.Render("✗"), wt.Branch, errStyle.Render(err.Error()))
			continue
		}
		fmt.Printf("%s %s removed\n", okStyle.Render("✓"), wt.Branch)
	}
	if failed > 0 {
		return fmt.Errorf("%d worktree(s) could not be removed", failed)
	}
	return nil
}
