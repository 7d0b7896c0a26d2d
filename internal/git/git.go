package git

// Commit describes one commit in history order
type Commit struct {
	ShortID string
	FullID  string
	Summary string
	Author  string // "Name <email>"
	Date    string // committer time, RFC 3339
}

// Client defines the repository operations the UI depends on
type Client interface {
	// RecentCommits walks history from HEAD, newest first, up to limit
	RecentCommits(limit int) ([]Commit, error)

	// ResolveID resolves a short or symbolic ref to a full commit id
	ResolveID(ref string) (string, error)

	// CommitDiffText returns the commit rendered as a unified diff with
	// a commit/Author/Date header and the message above the patch body
	CommitDiffText(id string) (string, error)
}
