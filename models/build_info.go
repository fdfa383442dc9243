package models

// BuildInfo is stamped into the binaries with -ldflags at release time.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// ShortCommit returns the abbreviated commit hash shown in the client.
func (b BuildInfo) ShortCommit() string {
	if len(b.Commit) > 7 {
		return b.Commit[:7]
	}
	return b.Commit
}
