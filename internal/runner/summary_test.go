package runner

import (
	"bytes"
	"strings"
	"testing"

	"thicket/internal/model"
)

func TestRenderSummary(t *testing.T) {
	s := model.RunSummary{
		Entries: []model.SummaryEntry{
			{
				Worktree: model.Worktree{Path: "/w/main", Branch: "main"},
				Outcome:  model.Success(),
				URLs:     []string{"http://localhost:3000"},
			},
			{
				Worktree: model.Worktree{Path: "/w/feat", Branch: "feat"},
				Outcome:  model.ExitFailure(1),
			},
		},
		AllURLs: []string{"http://localhost:3000"},
		Route:   "/pitchdeck/1",
	}

	var buf bytes.Buffer
	RenderSummary(&buf, s)
	out := buf.String()

	for _, want := range []string{
		"main",
		"/w/main",
		"http://localhost:3000",
		"http://localhost:3000/pitchdeck/1",
		"feat",
		"exit status 1",
		"1 of 2 worktrees failed",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
