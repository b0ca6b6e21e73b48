package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"thicket/internal/config"
	"thicket/internal/git"
	"thicket/internal/model"
	"thicket/internal/runner"
	"thicket/internal/tui"
)

var (
	runRoute   string
	runVerbose bool
	runAll     bool
)

var runCmd = &cobra.Command{
	Use:   "run [command...]",
	Short: "Run a shell command in selected worktrees concurrently",
	Long: `Run launches one shell command in every selected worktree at the same
time, tags each worktree's output with its branch name, surfaces important
lines (URLs, errors, server status), and prints a summary once every
command has finished. A failure in one worktree never interrupts the rest.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runRoute, "route", "", "path appended to discovered URLs")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "print every output line, not just important ones")
	runCmd.Flags().BoolVar(&runAll, "all", false, "run in every worktree without prompting")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, cfgPath := loadConfig()

	wts, err := git.ListWorktrees()
	if err != nil {
		return err
	}
	if len(wts) == 0 {
		fmt.Println(dimStyle.Render("no worktrees found"))
		return nil
	}

	selected := wts
	if !runAll {
		selected, err = tui.PickWorktrees("Run in which worktrees?", wts)
		if err != nil {
			return err
		}
	}
	if len(selected) == 0 {
		fmt.Println(dimStyle.Render("nothing selected"))
		return nil
	}

	command := strings.Join(args, " ")
	if strings.TrimSpace(command) == "" {
		command, err = tui.PromptText("Command", "e.g. npm run dev", cfg.LastCommand)
		if err != nil {
			return err
		}
	}
	if strings.TrimSpace(command) == "" {
		fmt.Println(dimStyle.Render("no command given"))
		return nil
	}

	route := runRoute
	if route == "" {
		route = cfg.DefaultRoute
	}
	verbose := runVerbose || cfg.Verbose

	req, err := model.NewRunRequest(selected, command, route, verbose)
	if err != nil {
		return err
	}

	cfg.LastCommand = command
	saveConfig(cfgPath, cfg)

	summary := runner.NewCoordinator(os.Stdout).Execute(cmd.Context(), req)
	runner.RenderSummary(os.Stdout, summary)

	if summary.Failures() == len(summary.Entries) && len(summary.Entries) > 0 {
		return fmt.Errorf("command failed in every worktree")
	}
	return nil
}

// loadConfig reads the preference file, falling back to defaults when it is
// missing or unreadable. Preferences are a convenience, never a blocker.
func loadConfig() (config.Config, string) {
	path, err := config.DefaultPath()
	if err != nil {
		return config.Config{}, ""
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		return config.Config{}, path
	}
	return cfg, path
}

func saveConfig(path string, cfg config.Config) {
	if path == "" {
		return
	}
	if err := config.Save(path, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
}
