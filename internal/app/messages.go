package app

// RepoChangedMsg is sent when the watched .git directory changes
type RepoChangedMsg struct{}
