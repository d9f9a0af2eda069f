package ghclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-github/v57/github"
	"github.com/spiffcs/ghdump/internal/log"
	"github.com/spiffcs/ghdump/internal/model"
)

const perPage = 100

// GetRepository resolves an owner/name string into a repository record.
func (c *Client) GetRepository(ctx context.Context, fullName string) (model.Repo, error) {
	owner, name, ok := strings.Cut(fullName, "/")
	if !ok || owner == "" || name == "" {
		return model.Repo{}, fmt.Errorf("invalid repository name %q: expected owner/name", fullName)
	}

	repo, _, err := c.client.Repositories.Get(ctx, owner, name)
	if err != nil {
		return model.Repo{}, fmt.Errorf("failed to get repository %s: %w", fullName, err)
	}

	return model.Repo{
		Owner:    repo.GetOwner().GetLogin(),
		Name:     repo.GetName(),
		FullName: repo.GetFullName(),
	}, nil
}

// GetIssue fetches one issue with its comments. The returned record's
// IsPullRequest flag is set when the underlying issue carries the API's
// pull-request marker; the classifier branches on it.
func (c *Client) GetIssue(ctx context.Context, repo model.Repo, number int) (*model.Issue, error) {
	issue, _, err := c.client.Issues.Get(ctx, repo.Owner, repo.Name, number)
	if err != nil {
		return nil, fmt.Errorf("failed to get issue #%d: %w", number, err)
	}

	out := &model.Issue{
		Number:        issue.GetNumber(),
		Title:         issue.GetTitle(),
		Author:        issue.GetUser().GetLogin(),
		State:         issue.GetState(),
		CreatedAt:     issue.GetCreatedAt().Time,
		ClosedBy:      issue.GetClosedBy().GetLogin(),
		Milestone:     issue.GetMilestone().GetTitle(),
		Body:          issue.GetBody(),
		IsPullRequest: issue.PullRequestLinks != nil,
	}

	if issue.ClosedAt != nil {
		closedAt := issue.GetClosedAt().Time
		out.ClosedAt = &closedAt
	}
	for _, label := range issue.Labels {
		out.Labels = append(out.Labels, label.GetName())
	}
	for _, assignee := range issue.Assignees {
		out.Assignees = append(out.Assignees, assignee.GetLogin())
	}

	out.Comments, err = c.listIssueComments(ctx, repo, number)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// GetPullRequest fetches one PR with its full conversation (general
// comments, inline review comments, reviews) and changed files.
func (c *Client) GetPullRequest(ctx context.Context, repo model.Repo, number int) (*model.PullRequest, error) {
	pr, _, err := c.client.PullRequests.Get(ctx, repo.Owner, repo.Name, number)
	if err != nil {
		return nil, fmt.Errorf("failed to get PR #%d: %w", number, err)
	}

	out := &model.PullRequest{
		Number:       pr.GetNumber(),
		Title:        pr.GetTitle(),
		Author:       pr.GetUser().GetLogin(),
		State:        pr.GetState(),
		CreatedAt:    pr.GetCreatedAt().Time,
		Merged:       pr.GetMerged(),
		MergedBy:     pr.GetMergedBy().GetLogin(),
		ChangedFiles: pr.GetChangedFiles(),
		Additions:    pr.GetAdditions(),
		Deletions:    pr.GetDeletions(),
		Body:         pr.GetBody(),
	}

	if pr.ClosedAt != nil {
		closedAt := pr.GetClosedAt().Time
		out.ClosedAt = &closedAt
	}
	if pr.MergedAt != nil {
		mergedAt := pr.GetMergedAt().Time
		out.MergedAt = &mergedAt
	}

	if out.Comments, err = c.listIssueComments(ctx, repo, number); err != nil {
		return nil, err
	}
	if out.ReviewComments, err = c.listReviewComments(ctx, repo, number); err != nil {
		return nil, err
	}
	if out.Reviews, err = c.listReviews(ctx, repo, number); err != nil {
		return nil, err
	}
	if out.Files, err = c.listPullRequestFiles(ctx, repo, number); err != nil {
		return nil, err
	}

	return out, nil
}

// GetCommit fetches one commit with its changed files. Additional file
// pages are appended so large commits render completely.
func (c *Client) GetCommit(ctx context.Context, repo model.Repo, sha string) (*model.Commit, error) {
	opts := &github.ListOptions{PerPage: perPage}

	var out *model.Commit
	for {
		commit, resp, err := c.client.Repositories.GetCommit(ctx, repo.Owner, repo.Name, sha, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to get commit %s: %w", sha, err)
		}
		if out == nil {
			out = &model.Commit{
				SHA:            commit.GetSHA(),
				AuthorLogin:    commit.GetAuthor().GetLogin(),
				AuthorName:     commit.GetCommit().GetAuthor().GetName(),
				CommitterLogin: commit.GetCommitter().GetLogin(),
				CommitterName:  commit.GetCommit().GetCommitter().GetName(),
				AuthoredAt:     commit.GetCommit().GetAuthor().GetDate().Time,
				Message:        commit.GetCommit().GetMessage(),
			}
		}
		for _, f := range commit.Files {
			out.Files = append(out.Files, convertFile(f))
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
		log.Debug("fetching commit file page", "sha", sha, "page", opts.Page)
	}

	return out, nil
}

func (c *Client) listIssueComments(ctx context.Context, repo model.Repo, number int) ([]model.Comment, error) {
	var out []model.Comment
	opts := &github.IssueListCommentsOptions{
		ListOptions: github.ListOptions{PerPage: perPage},
	}
	for {
		comments, resp, err := c.client.Issues.ListComments(ctx, repo.Owner, repo.Name, number, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list comments for #%d: %w", number, err)
		}
		for _, comment := range comments {
			out = append(out, model.Comment{
				Author:    comment.GetUser().GetLogin(),
				CreatedAt: comment.GetCreatedAt().Time,
				Body:      comment.GetBody(),
			})
		}
		if resp.NextPage == 0 {
			return out, nil
		}
		opts.Page = resp.NextPage
	}
}

func (c *Client) listReviewComments(ctx context.Context, repo model.Repo, number int) ([]model.ReviewComment, error) {
	var out []model.ReviewComment
	opts := &github.PullRequestListCommentsOptions{
		ListOptions: github.ListOptions{PerPage: perPage},
	}
	for {
		comments, resp, err := c.client.PullRequests.ListComments(ctx, repo.Owner, repo.Name, number, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list review comments for #%d: %w", number, err)
		}
		for _, comment := range comments {
			out = append(out, model.ReviewComment{
				Author:    comment.GetUser().GetLogin(),
				CreatedAt: comment.GetCreatedAt().Time,
				Body:      comment.GetBody(),
				Path:      comment.GetPath(),
				Line:      comment.GetLine(),
				DiffHunk:  comment.GetDiffHunk(),
			})
		}
		if resp.NextPage == 0 {
			return out, nil
		}
		opts.Page = resp.NextPage
	}
}

func (c *Client) listReviews(ctx context.Context, repo model.Repo, number int) ([]model.Review, error) {
	var out []model.Review
	opts := &github.ListOptions{PerPage: perPage}
	for {
		reviews, resp, err := c.client.PullRequests.ListReviews(ctx, repo.Owner, repo.Name, number, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list reviews for #%d: %w", number, err)
		}
		for _, review := range reviews {
			out = append(out, model.Review{
				Author:      review.GetUser().GetLogin(),
				SubmittedAt: review.GetSubmittedAt().Time,
				State:       review.GetState(),
				Body:        review.GetBody(),
			})
		}
		if resp.NextPage == 0 {
			return out, nil
		}
		opts.Page = resp.NextPage
	}
}

func (c *Client) listPullRequestFiles(ctx context.Context, repo model.Repo, number int) ([]model.FileChange, error) {
	var out []model.FileChange
	opts := &github.ListOptions{PerPage: perPage}
	for {
		files, resp, err := c.client.PullRequests.ListFiles(ctx, repo.Owner, repo.Name, number, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list files for #%d: %w", number, err)
		}
		for _, f := range files {
			out = append(out, convertFile(f))
		}
		if resp.NextPage == 0 {
			return out, nil
		}
		opts.Page = resp.NextPage
	}
}

func convertFile(f *github.CommitFile) model.FileChange {
	return model.FileChange{
		Filename:  f.GetFilename(),
		Status:    f.GetStatus(),
		Additions: f.GetAdditions(),
		Deletions: f.GetDeletions(),
		Patch:     f.GetPatch(),
		HasPatch:  f.Patch != nil && f.GetPatch() != "",
	}
}
