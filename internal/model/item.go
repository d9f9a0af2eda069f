// Package model defines the read-only record types projected from the
// GitHub API. Records are constructed fresh per invocation and never
// persisted or mutated.
package model

// ItemKind identifies what a user-supplied item token resolved to.
type ItemKind string

const (
	KindPullRequest ItemKind = "pr"
	KindIssue       ItemKind = "issue"
	KindCommit      ItemKind = "commit"
)

// ShortSHALen is the number of leading SHA characters used in filenames.
const ShortSHALen = 7

// Classification ties an item token to the kind it resolved to. Token is
// always the token exactly as the user gave it; exactly one of Number or
// SHA is meaningful, depending on Kind. For issues, the record fetched
// during classification is carried along so the formatter does not need a
// second lookup.
type Classification struct {
	Kind   ItemKind
	Token  string
	Number int
	SHA    string
	Issue  *Issue
}

// FileID returns the identifier used in output filenames: the token
// exactly as given for PRs and issues, the first seven SHA characters for
// commits. A token like "042" keeps its leading zero.
func (c Classification) FileID() string {
	if c.Kind == KindCommit {
		if len(c.SHA) > ShortSHALen {
			return c.SHA[:ShortSHALen]
		}
		return c.SHA
	}
	return c.Token
}
