// Package git shells out to the git CLI for worktree enumeration and
// removal. Calling the CLI rather than reimplementing porcelain keeps the
// tool compatible with user configuration (aliases, credential helpers).
package git

import (
	"fmt"
	"os/exec"
	"strings"

	"thicket/internal/model"
)

const shortIDLen = 7

// RepoRoot returns the absolute path of the current working tree's root.
// Inside a linked worktree this is that worktree's root, not the main one.
func RepoRoot() (string, error) {
	out, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", fmt.Errorf("git rev-parse: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// ListWorktrees runs git worktree list --porcelain and returns the parsed
// worktrees. The main worktree is always first.
func ListWorktrees() ([]model.Worktree, error) {
	out, err := exec.Command("git", "worktree", "list", "--porcelain").Output()
	if err != nil {
		return nil, fmt.Errorf("git worktree list: %w", err)
	}
	return parseWorktrees(string(out)), nil
}

func parseWorktrees(raw string) []model.Worktree {
	var wts []model.Worktree
	for _, block := range strings.Split(strings.TrimSpace(raw), "\n\n") {
		if wt := parseBlock(strings.TrimSpace(block)); wt != nil {
			wts = append(wts, *wt)
		}
	}
	return wts
}

func parseBlock(block string) *model.Worktree {
	var path, branch, commit string
	detached := false

	for _, line := range strings.Split(block, "\n") {
		switch {
		case strings.HasPrefix(line, "worktree "):
			path = strings.TrimPrefix(line, "worktree ")
		case strings.HasPrefix(line, "HEAD "):
			commit = strings.TrimPrefix(line, "HEAD ")
			if len(commit) > shortIDLen {
				commit = commit[:shortIDLen]
			}
		case strings.HasPrefix(line, "branch "):
			branch = strings.TrimPrefix(line, "branch refs/heads/")
		case line == "detached":
			detached = true
		}
	}

	if path == "" {
		return nil
	}
	if detached || branch == "" {
		branch = "detached"
	}

	return &model.Worktree{Path: path, Branch: branch, Commit: commit}
}

// RemoveWorktree removes the worktree at path and attempts to delete its
// branch. repoRoot is the working directory for the git commands.
func RemoveWorktree(repoRoot, path, branch string) error {
	cmd := exec.Command("git", "worktree", "remove", path)
	cmd.Dir = repoRoot
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s", strings.TrimSpace(string(out)))
	}
	// Best-effort branch deletion — ignore errors (e.g. branch not fully merged).
	if branch != "" && branch != "detached" {
		exec.Command("git", "-C", repoRoot, "branch", "-d", branch).Run()
	}
	return nil
}

// BranchToSlug normalises a branch name into a filesystem-safe slug.
func BranchToSlug(branch string) string {
	if branch == "" {
		return "unknown"
	}
	s := strings.ToLower(branch)
	s = strings.ReplaceAll(s, "/", "-")
	return s
}
