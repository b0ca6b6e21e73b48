// Package copyfs copies files from the current worktree into other
// worktrees — typically untracked files like .env that git worktree add
// does not carry over.
package copyfs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Status reports one file/destination pairing. Err is nil on success.
type Status struct {
	File string // path relative to the source worktree
	Dest string // destination worktree path
	Err  error
}

// CopyInto copies each file (a path relative to srcRoot) into the same
// relative location inside every destination worktree, sequentially.
// Missing sources and per-file errors are recorded, never fatal.
func CopyInto(srcRoot string, files []string, dests []string) []Status {
	var statuses []Status
	for _, dest := range dests {
		for _, file := range files {
			err := copyFile(filepath.Join(srcRoot, file), filepath.Join(dest, file))
			statuses = append(statuses, Status{File: file, Dest: dest, Err: err})
		}
	}
	return statuses
}

// copyFile copies one regular file, creating parent directories and
// preserving the source mode.
func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("source: %w", err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("source %s is not a regular file", src)
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy: %w", err)
	}
	return out.Close()
}
