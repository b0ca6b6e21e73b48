package runner

import (
	"context"
	"io"
	"sync"

	"thicket/internal/classify"
	"thicket/internal/model"
)

// Coordinator fans one shell command out across the selected worktrees and
// waits for every runner to settle before summarizing. One worktree's
// failure never cancels or delays the others.
type Coordinator struct {
	printer *Printer
}

func NewCoordinator(out io.Writer) *Coordinator {
	return &Coordinator{printer: NewPrinter(out)}
}

// Execute launches every worktree's command concurrently and blocks until
// all of them have settled. An empty selection returns an empty summary
// without launching anything.
func (c *Coordinator) Execute(ctx context.Context, req model.RunRequest) model.RunSummary {
	route := NormalizeRoute(req.Route)
	if len(req.Worktrees) == 0 {
		return model.RunSummary{Route: route}
	}

	results := make([]*model.RunResult, len(req.Worktrees))
	var wg sync.WaitGroup
	for i, wt := range req.Worktrees {
		res := model.NewRunResult(wt)
		results[i] = res
		mux := NewMux(res, i, route, req.Verbose, c.printer)

		wg.Add(1)
		go func(dir string) {
			defer wg.Done()
			res.Settle(Run(ctx, dir, req.Command, mux.Consume))
		}(wt.Path)
	}
	wg.Wait()

	return buildSummary(results, route)
}

// buildSummary assembles the report in selection order. The global URL list
// is the union of the per-worktree lists, deduplicated in first-seen order.
func buildSummary(results []*model.RunResult, route string) model.RunSummary {
	s := model.RunSummary{Route: route}
	seen := make(map[string]struct{})
	for _, r := range results {
		s.Entries = append(s.Entries, model.SummaryEntry{
			Worktree: r.Worktree,
			Outcome:  r.Outcome,
			URLs:     append([]string(nil), r.URLs...),
		})
		for _, u := range r.URLs {
			k := classify.Key(u)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			s.AllURLs = append(s.AllURLs, u)
		}
	}
	return s
}
