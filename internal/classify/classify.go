// Package classify decides whether a user-supplied item token denotes a
// pull request, an issue, or a commit.
package classify

import (
	"context"
	"strconv"

	"github.com/spiffcs/ghdump/internal/model"
)

// IssueFetcher is the slice of the GitHub client the classifier needs.
type IssueFetcher interface {
	GetIssue(ctx context.Context, repo model.Repo, number int) (*model.Issue, error)
}

// Classify resolves an item token. Tokens that parse as integers are
// looked up as issue/PR numbers; the record's pull-request marker decides
// between the two. Everything else is taken to be a commit SHA, with no
// existence check until the commit is actually fetched.
//
// Numeric interpretation deliberately wins over SHA interpretation, so a
// short all-digit hex SHA can never be classified as a commit.
func Classify(ctx context.Context, fetcher IssueFetcher, repo model.Repo, token string) (model.Classification, error) {
	number, err := strconv.Atoi(token)
	if err != nil {
		return model.Classification{Kind: model.KindCommit, Token: token, SHA: token}, nil
	}

	issue, err := fetcher.GetIssue(ctx, repo, number)
	if err != nil {
		return model.Classification{}, err
	}

	if issue.IsPullRequest {
		return model.Classification{Kind: model.KindPullRequest, Token: token, Number: number}, nil
	}
	return model.Classification{Kind: model.KindIssue, Token: token, Number: number, Issue: issue}, nil
}
