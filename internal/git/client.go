package git

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// logFormat separates fields with the ASCII unit separator so commit
// summaries containing any printable character parse cleanly.
const logFormat = "%h%x1f%H%x1f%s%x1f%an <%ae>%x1f%cI"

// CLIClient implements Client by shelling out to the git CLI
type CLIClient struct {
	root string
	run  func(args ...string) (string, error)
}

// Discover walks up from start to find the enclosing repository. An
// empty start means the current directory.
func Discover(start string) (*CLIClient, error) {
	if start == "" {
		start = "."
	}
	out, err := exec.Command("git", "-C", start, "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return nil, fmt.Errorf("no git repository at %s", start)
	}

	c := &CLIClient{root: strings.TrimSpace(string(out))}
	c.run = c.execGit
	return c, nil
}

// Root returns the repository's working tree root
func (c *CLIClient) Root() string {
	return c.root
}

// GitDir returns the path watched for history changes
func (c *CLIClient) GitDir() string {
	return filepath.Join(c.root, ".git")
}

func (c *CLIClient) execGit(args ...string) (string, error) {
	cmd := exec.Command("git", append([]string{"-C", c.root}, args...)...)
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s: %w", args[0], err)
	}
	return string(out), nil
}

// RecentCommits walks history from HEAD, newest first
func (c *CLIClient) RecentCommits(limit int) ([]Commit, error) {
	out, err := c.run("log", "--topo-order", "-n", strconv.Itoa(limit), "--format="+logFormat)
	if err != nil {
		return nil, err
	}
	return parseCommits(out), nil
}

func parseCommits(output string) []Commit {
	var commits []Commit
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		if line == "" {
			continue
		}
		parts := strings.Split(line, "\x1f")
		if len(parts) < 5 {
			continue
		}
		commits = append(commits, Commit{
			ShortID: parts[0],
			FullID:  parts[1],
			Summary: parts[2],
			Author:  parts[3],
			Date:    parts[4],
		})
	}
	return commits
}

// ResolveID resolves a short or symbolic ref to a full commit id
func (c *CLIClient) ResolveID(ref string) (string, error) {
	out, err := c.run("rev-parse", "--verify", ref+"^{commit}")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// CommitDiffText builds the pager/diff content for one commit: a
// synthesized header and message followed by the patch against the
// first parent (or the empty tree for a root commit).
func (c *CLIClient) CommitDiffText(id string) (string, error) {
	meta, err := c.run("log", "-1", "--format=%H%x1f%an%x1f%cI%x1f%B", id)
	if err != nil {
		return "", err
	}
	parts := strings.SplitN(meta, "\x1f", 4)
	if len(parts) < 4 {
		return "", fmt.Errorf("unexpected git log output for %s", id)
	}

	// First-parent diff; a root commit has no parent, so fall back to
	// diffing against the empty tree.
	patch, err := c.run("diff-tree", "--no-commit-id", "-p", parts[0]+"^", parts[0])
	if err != nil {
		patch, err = c.run("diff-tree", "--no-commit-id", "-p", "--root", parts[0])
		if err != nil {
			return "", err
		}
	}

	return buildDiffText(parts[0], parts[1], parts[2], parts[3], patch), nil
}

func buildDiffText(fullID, author, date, message, patch string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "commit %s\n", fullID)
	fmt.Fprintf(&b, "Author: %s\n", author)
	fmt.Fprintf(&b, "Date:   %s\n\n", date)
	b.WriteString(strings.TrimRight(message, "\n"))
	b.WriteString("\n\n")
	b.WriteString(patch)
	return b.String()
}
