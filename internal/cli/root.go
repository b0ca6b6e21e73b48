// Package cli wires the cobra commands. It resolves all interactive and
// flag input before handing fully-built requests to the runner.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "thicket",
	Short: "Run commands across git worktrees",
	Long: `Thicket is a convenience layer over git worktree: list your worktrees,
run a shell command in several of them at once, copy untracked files into
them, and remove the ones you are done with.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}
