// Package runner spawns one shell command per selected worktree, tags and
// filters each process's output as it arrives, and aggregates every
// outcome into a final summary.
package runner

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"runtime"

	"thicket/internal/model"
)

// readBufferSize is the chunk size for draining the merged output pipe.
const readBufferSize = 4096

// Run executes command through the system shell with dir as the working
// directory, delivering merged stdout/stderr chunks to onChunk in arrival
// order. Every failure mode is returned as a settled Outcome; Run never
// panics on a bad command or missing directory.
//
// The command goes through the shell so pipes, &&, and quoting behave the
// way they do in a terminal.
func Run(ctx context.Context, dir, command string, onChunk func(string)) model.Outcome {
	cmd := shellCommand(ctx, command)
	cmd.Dir = dir

	pr, pw, err := os.Pipe()
	if err != nil {
		return model.SpawnFailure(err)
	}
	cmd.Stdout = pw
	cmd.Stderr = pw

	if err := cmd.Start(); err != nil {
		pw.Close()
		pr.Close()
		return model.SpawnFailure(err)
	}
	// Close the parent's write end so the read loop sees EOF when the
	// child's copies are gone.
	pw.Close()

	buf := make([]byte, readBufferSize)
	for {
		n, err := pr.Read(buf)
		if n > 0 && onChunk != nil {
			onChunk(string(buf[:n]))
		}
		if err != nil {
			break
		}
	}
	pr.Close()

	switch err := cmd.Wait(); {
	case err == nil:
		return model.Success()
	default:
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			return model.ExitFailure(ee.ExitCode())
		}
		return model.SpawnFailure(err)
	}
}

func shellCommand(ctx context.Context, command string) *exec.Cmd {
	if runtime.GOOS == "windows" {
		return exec.CommandContext(ctx, "cmd.exe", "/C", command)
	}
	return exec.CommandContext(ctx, "/bin/sh", "-c", command)
}
