package model

import "time"

// Repo identifies the repository all lookups are scoped to.
type Repo struct {
	Owner    string
	Name     string
	FullName string
}

// Comment is a general issue or PR conversation comment.
type Comment struct {
	Author    string
	CreatedAt time.Time
	Body      string
}

// ReviewComment is an inline code review comment anchored to a file line.
type ReviewComment struct {
	Author    string
	CreatedAt time.Time
	Body      string
	Path      string
	Line      int
	DiffHunk  string
}

// Review is a formal PR review (approve, request changes, comment).
type Review struct {
	Author      string
	SubmittedAt time.Time
	State       string // APPROVED, CHANGES_REQUESTED, COMMENTED
	Body        string
}

// FileChange describes one changed file in a PR or commit. Patch is empty
// and HasPatch false for binary files or files the API declines to diff.
type FileChange struct {
	Filename  string
	Status    string // added, modified, removed, renamed
	Additions int
	Deletions int
	Patch     string
	HasPatch  bool
}

// TotalChanges is the combined added and deleted line count that drives
// the diff size policy.
func (f FileChange) TotalChanges() int {
	return f.Additions + f.Deletions
}

// Issue is a fetched issue record, including its conversation.
// IsPullRequest reflects the API's pull-request marker: issue numbers and
// PR numbers share one sequence, and the marker is the only way to tell
// them apart from an issue lookup.
type Issue struct {
	Number        int
	Title         string
	Author        string
	State         string
	CreatedAt     time.Time
	ClosedAt      *time.Time
	ClosedBy      string
	Labels        []string
	Assignees     []string
	Milestone     string
	Body          string
	IsPullRequest bool
	Comments      []Comment
}

// PullRequest is a fully hydrated PR record: details plus the three
// conversation collections and the changed files.
type PullRequest struct {
	Number       int
	Title        string
	Author       string
	State        string
	CreatedAt    time.Time
	ClosedAt     *time.Time
	Merged       bool
	MergedAt     *time.Time
	MergedBy     string
	ChangedFiles int
	Additions    int
	Deletions    int
	Body         string

	Comments       []Comment
	ReviewComments []ReviewComment
	Reviews        []Review
	Files          []FileChange
}

// Commit is a fetched commit record with its changed files.
// AuthorLogin and CommitterLogin are empty when the commit is not linked
// to a GitHub account.
type Commit struct {
	SHA            string
	AuthorLogin    string
	AuthorName     string
	CommitterLogin string
	CommitterName  string
	AuthoredAt     time.Time
	Message        string
	Files          []FileChange
}
