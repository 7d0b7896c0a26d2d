package git

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseCommits(t *testing.T) {
	sep := "\x1f"
	tests := []struct {
		name   string
		output string
		want   []Commit
	}{
		{
			name:   "empty output",
			output: "",
			want:   nil,
		},
		{
			name: "two commits",
			output: "abc1234" + sep + strings.Repeat("a", 40) + sep + "feat: add thing" + sep + "Ann <ann@example.com>" + sep + "2026-01-02T03:04:05Z\n" +
				"def5678" + sep + strings.Repeat("d", 40) + sep + "fix | pipe in summary" + sep + "Bob <bob@example.com>" + sep + "2026-01-01T00:00:00Z\n",
			want: []Commit{
				{ShortID: "abc1234", FullID: strings.Repeat("a", 40), Summary: "feat: add thing", Author: "Ann <ann@example.com>", Date: "2026-01-02T03:04:05Z"},
				{ShortID: "def5678", FullID: strings.Repeat("d", 40), Summary: "fix | pipe in summary", Author: "Bob <bob@example.com>", Date: "2026-01-01T00:00:00Z"},
			},
		},
		{
			name:   "malformed line skipped",
			output: "not-a-commit-line\n",
			want:   nil,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := parseCommits(tc.output)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("parseCommits=%+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestCommitDiffTextHeader(t *testing.T) {
	full := strings.Repeat("c", 40)
	patch := "diff --git a/x.py b/x.py\n+++ b/x.py\n@@ -1 +1 @@\n-old\n+new\n"

	c := &CLIClient{root: "/repo"}
	c.run = func(args ...string) (string, error) {
		switch args[0] {
		case "log":
			return full + "\x1fAnn\x1f2026-01-02T03:04:05Z\x1fsubject line\n\nbody text\n", nil
		case "diff-tree":
			return patch, nil
		}
		t.Fatalf("unexpected git command %v", args)
		return "", nil
	}

	got, err := c.CommitDiffText(full)
	if err != nil {
		t.Fatalf("CommitDiffText: %v", err)
	}

	want := "commit " + full + "\n" +
		"Author: Ann\n" +
		"Date:   2026-01-02T03:04:05Z\n" +
		"\n" +
		"subject line\n\nbody text\n" +
		"\n" +
		patch
	if got != want {
		t.Fatalf("diff text:\n%q\nwant:\n%q", got, want)
	}
}

func TestRecentCommitsPassesLimit(t *testing.T) {
	c := &CLIClient{root: "/repo"}
	var gotArgs []string
	c.run = func(args ...string) (string, error) {
		gotArgs = args
		return "", nil
	}

	if _, err := c.RecentCommits(7); err != nil {
		t.Fatalf("RecentCommits: %v", err)
	}
	joined := strings.Join(gotArgs, " ")
	if !strings.Contains(joined, "-n 7") {
		t.Fatalf("limit not passed to git log: %v", gotArgs)
	}
	if !strings.Contains(joined, "--topo-order") {
		t.Fatalf("missing --topo-order: %v", gotArgs)
	}
}
