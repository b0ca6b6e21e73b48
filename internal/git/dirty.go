package git

import (
	gogit "github.com/go-git/go-git/v5"
)

// IsDirty reports whether the worktree at path has uncommitted changes.
// Worktrees that cannot be opened or read count as clean so the removal
// flow stays usable when a checkout is broken.
func IsDirty(path string) bool {
	repo, err := gogit.PlainOpen(path)
	if err != nil {
		return false
	}
	wt, err := repo.Worktree()
	if err != nil {
		return false
	}
	status, err := wt.Status()
	if err != nil {
		return false
	}
	return !status.IsClean()
}
