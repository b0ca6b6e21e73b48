package git

import (
	"reflect"
	"testing"

	"thicket/internal/model"
)

const porcelainFixture = `worktree /repo
HEAD 1a2b3c4d5e6f7a8b9c0d1e2f3a4b5c6d7e8f9a0b
branch refs/heads/main

worktree /repo/.worktrees/feature-x
HEAD aabbccddeeff00112233445566778899aabbccdd
branch refs/heads/feature/x

worktree /repo/.worktrees/spike
HEAD ffeeddccbbaa99887766554433221100ffeeddcc
detached
`

func TestParseWorktrees(t *testing.T) {
	got := parseWorktrees(porcelainFixture)
	want := []model.Worktree{
		{Path: "/repo", Branch: "main", Commit: "1a2b3c4"},
		{Path: "/repo/.worktrees/feature-x", Branch: "feature/x", Commit: "aabbccd"},
		{Path: "/repo/.worktrees/spike", Branch: "detached", Commit: "ffeeddc"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseWorktrees:\n got %+v\nwant %+v", got, want)
	}
}

func TestParseWorktreesSkipsBlockWithoutPath(t *testing.T) {
	got := parseWorktrees("branch refs/heads/orphan\n")
	if len(got) != 0 {
		t.Errorf("got %+v, want no worktrees", got)
	}
}

func TestParseWorktreesEmptyInput(t *testing.T) {
	if got := parseWorktrees(""); len(got) != 0 {
		t.Errorf("got %+v, want no worktrees", got)
	}
}

func TestBranchToSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"feature/x", "feature-x"},
		{"Main", "main"},
		{"", "unknown"},
	}
	for _, tt := range tests {
		if got := BranchToSlug(tt.in); got != tt.want {
			t.Errorf("BranchToSlug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
