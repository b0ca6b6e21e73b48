package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"thicket/internal/copyfs"
	"thicket/internal/git"
	"thicket/internal/model"
	"thicket/internal/tui"
)

var copyCmd = &cobra.Command{
	Use:   "copy [file...]",
	Short: "Copy files from this worktree into selected worktrees",
	Long: `Copy takes untracked files like .env that git worktree add leaves
behind and copies them from the current worktree into the worktrees you
select. Paths are relative to the worktree root.`,
	RunE: runCopy,
}

func init() {
	rootCmd.AddCommand(copyCmd)
}

func runCopy(cmd *cobra.Command, args []string) error {
	cfg, cfgPath := loadConfig()

	srcRoot, err := git.RepoRoot()
	if err != nil {
		return err
	}
	wts, err := git.ListWorktrees()
	if err != nil {
		return err
	}

	// Never offer the source worktree as a destination.
	var others []model.Worktree
	for _, wt := range wts {
		if wt.Path != srcRoot {
			others = append(others, wt)
		}
	}
	if len(others) == 0 {
		fmt.Println(dimStyle.Render("no other worktrees to copy into"))
		return nil
	}

	files := args
	if len(files) == 0 {
		files = cfg.CopyFiles
	}
	if len(files) == 0 {
		answer, err := tui.PromptText("Files to copy (space-separated)", "e.g. .env .env.local", "")
		if err != nil {
			return err
		}
		files = strings.Fields(answer)
	}
	if len(files) == 0 {
		fmt.Println(dimStyle.Render("no files given"))
		return nil
	}

	selected, err := tui.PickWorktrees("Copy into which worktrees?", others)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		fmt.Println(dimStyle.Render("nothing selected"))
		return nil
	}

	dests := make([]string, len(selected))
	for i, wt := range selected {
		dests[i] = wt.Path
	}

	failed := 0
	for _, s := range copyfs.CopyInto(srcRoot, files, dests) {
		if s.Err != nil {
			failed++
			fmt.Printf("%s %s → %s  %s\n", errStyle.Render("✗"), s.File, s.Dest, warnStyle.Render(s.Err.Error()))
			continue
		}
		fmt.Printf("%s %s → %s\n", okStyle.Render("✓"), s.File, s.Dest)
	}

	cfg.CopyFiles = files
	saveConfig(cfgPath, cfg)

	if failed > 0 {
		fmt.Println(warnStyle.Render(fmt.Sprintf("%d copies failed", failed)))
	}
	return nil
}
