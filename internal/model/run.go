package model

import (
	"fmt"
	"strings"
)

// Worktree describes one working copy enumerated from the repository.
type Worktree struct {
	Path   string // absolute path; identity
	Branch string // short branch name, "detached" when headless
	Commit string // 7-char short id, empty when unknown
}

// OutcomeState tracks a worktree command's lifecycle. A result starts
// Pending and settles exactly once.
type OutcomeState int

const (
	Pending OutcomeState = iota
	Succeeded
	Failed
)

// Outcome is the settled state of one worktree's command.
type Outcome struct {
	State    OutcomeState
	ExitCode int    // set when the child exited non-zero
	Reason   string // failure description, empty on success
}

// Success returns a Succeeded outcome.
func Success() Outcome {
	return Outcome{State: Succeeded}
}

// ExitFailure returns a Failed outcome for a non-zero child exit.
func ExitFailure(code int) Outcome {
	return Outcome{State: Failed, ExitCode: code, Reason: fmt.Sprintf("exit status %d", code)}
}

// SpawnFailure returns a Failed outcome for a process that never started.
func SpawnFailure(err error) Outcome {
	return Outcome{State: Failed, Reason: err.Error()}
}

// RunRequest is a fully-resolved request to run one shell command across a
// selection of worktrees. Construct via NewRunRequest.
type RunRequest struct {
	Worktrees []Worktree
	Command   string
	Route     string // optional path suffix for discovered URLs
	Verbose   bool
}

// NewRunRequest validates the request fields. The command must be non-blank.
func NewRunRequest(worktrees []Worktree, command, route string, verbose bool) (RunRequest, error) {
	if strings.TrimSpace(command) == "" {
		return RunRequest{}, fmt.Errorf("command cannot be empty")
	}
	return RunRequest{
		Worktrees: worktrees,
		Command:   command,
		Route:     route,
		Verbose:   verbose,
	}, nil
}

// RunResult accumulates one worktree's output while its command runs. It is
// owned exclusively by that worktree's runner/multiplexer pairing and frozen
// once the outcome settles.
type RunResult struct {
	Worktree Worktree
	URLs     []string // deduplicated, first-seen order
	Chunks   []string // raw output in arrival order
	Outcome  Outcome

	seen map[string]struct{}
}

func NewRunResult(wt Worktree) *RunResult {
	return &RunResult{Worktree: wt, seen: make(map[string]struct{})}
}

// AddChunk appends one raw output chunk.
func (r *RunResult) AddChunk(chunk string) {
	r.Chunks = append(r.Chunks, chunk)
}

// AddURL records url unless its dedup key was already seen. Reports whether
// the URL was added.
func (r *RunResult) AddURL(key, url string) bool {
	if r.seen == nil {
		r.seen = make(map[string]struct{})
	}
	if _, ok := r.seen[key]; ok {
		return false
	}
	r.seen[key] = struct{}{}
	r.URLs = append(r.URLs, url)
	return true
}

// Settle records the final outcome. Only the first settlement takes effect;
// an outcome is never reversed.
func (r *RunResult) Settle(o Outcome) {
	if r.Outcome.State != Pending {
		return
	}
	r.Outcome = o
}

// SummaryEntry is one worktree's row in the final report.
type SummaryEntry struct {
	Worktree Worktree
	Outcome  Outcome
	URLs     []string
}

// RunSummary is the read-only view built after every runner has settled.
// Entries follow the original selection order; AllURLs is the union of the
// per-worktree URL lists, deduplicated in first-seen order.
type RunSummary struct {
	Entries []SummaryEntry
	AllURLs []string
	Route   string // normalized route, empty when none was supplied
}

// Failures counts the entries that settled as Failed.
func (s RunSummary) Failures() int {
	n := 0
	for _, e := range s.Entries {
		if e.Outcome.State == Failed {
			n++
		}
	}
	return n
}
