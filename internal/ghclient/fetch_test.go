package ghclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/spiffcs/ghdump/internal/model"
)

var testRepo = model.Repo{Owner: "acme", Name: "widgets", FullName: "acme/widgets"}

// newTestClient returns a client pointed at a local server serving the
// given handlers, keyed by "METHOD /path".
func newTestClient(t *testing.T, handlers map[string]string) *Client {
	t.Helper()
	mux := http.NewServeMux()
	for pattern, body := range handlers {
		body := body
		// Method-qualified ServeMux patterns need Go 1.22+; split the
		// method out and check it by hand so this runs on Go 1.21.
		method, path, ok := strings.Cut(pattern, " ")
		if !ok {
			t.Fatalf("handler pattern %q must be %q", pattern, "METHOD /path")
		}
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != method {
				http.NotFound(w, r)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, body)
		})
	}
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	client, err := NewClient("", WithBaseURL(server.URL+"/"))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return client
}

func TestWithBaseURLInvalid(t *testing.T) {
	if _, err := NewClient("", WithBaseURL("://not-a-url")); err == nil {
		t.Error("a base URL that fails to parse must be rejected")
	}
}

func TestGetRepository(t *testing.T) {
	client := newTestClient(t, map[string]string{
		"GET /repos/acme/widgets": `{"name":"widgets","full_name":"acme/widgets","owner":{"login":"acme"}}`,
	})

	repo, err := client.GetRepository(context.Background(), "acme/widgets")
	if err != nil {
		t.Fatalf("GetRepository() error = %v", err)
	}
	if repo.Owner != "acme" || repo.Name != "widgets" || repo.FullName != "acme/widgets" {
		t.Errorf("unexpected repo: %+v", repo)
	}
}

func TestGetRepositoryInvalidName(t *testing.T) {
	client, err := NewClient("")
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	for _, name := range []string{"widgets", "/widgets", "acme/", ""} {
		if _, err := client.GetRepository(context.Background(), name); err == nil {
			t.Errorf("GetRepository(%q) expected error", name)
		}
	}
}

func TestGetRepositoryNotFound(t *testing.T) {
	client := newTestClient(t, map[string]string{})

	_, err := client.GetRepository(context.Background(), "acme/missing")
	if err == nil {
		t.Fatal("expected error for missing repository")
	}
	if !IsNotFound(err) {
		t.Errorf("expected a not-found error, got %v", err)
	}
}

func TestGetIssue(t *testing.T) {
	client := newTestClient(t, map[string]string{
		"GET /repos/acme/widgets/issues/42": `{
			"number": 42,
			"title": "Fix crash",
			"user": {"login": "octocat"},
			"state": "closed",
			"created_at": "2024-03-10T09:00:00Z",
			"closed_at": "2024-03-12T11:00:00Z",
			"closed_by": {"login": "hubot"},
			"labels": [{"name": "bug"}, {"name": "p1"}],
			"assignees": [{"login": "hubot"}],
			"milestone": {"title": "v1.0"},
			"body": "It crashes on resize"
		}`,
		"GET /repos/acme/widgets/issues/42/comments": `[
			{"user": {"login": "hubot"}, "created_at": "2024-03-11T10:00:00Z", "body": "On it"}
		]`,
	})

	issue, err := client.GetIssue(context.Background(), testRepo, 42)
	if err != nil {
		t.Fatalf("GetIssue() error = %v", err)
	}

	if issue.Number != 42 || issue.Title != "Fix crash" || issue.Author != "octocat" {
		t.Errorf("unexpected issue: %+v", issue)
	}
	if issue.IsPullRequest {
		t.Error("plain issue must not carry the pull-request marker")
	}
	if issue.ClosedAt == nil || issue.ClosedBy != "hubot" {
		t.Errorf("closed metadata not converted: %+v", issue)
	}
	if len(issue.Labels) != 2 || issue.Labels[0] != "bug" {
		t.Errorf("labels not converted: %v", issue.Labels)
	}
	if issue.Milestone != "v1.0" {
		t.Errorf("Milestone = %q, want %q", issue.Milestone, "v1.0")
	}
	if len(issue.Comments) != 1 || issue.Comments[0].Author != "hubot" || issue.Comments[0].Body != "On it" {
		t.Errorf("comments not converted: %+v", issue.Comments)
	}
}

func TestGetIssuePullRequestMarker(t *testing.T) {
	client := newTestClient(t, map[string]string{
		"GET /repos/acme/widgets/issues/7": `{
			"number": 7,
			"title": "Add retries",
			"pull_request": {"url": "https://api.github.com/repos/acme/widgets/pulls/7"}
		}`,
		"GET /repos/acme/widgets/issues/7/comments": `[]`,
	})

	issue, err := client.GetIssue(context.Background(), testRepo, 7)
	if err != nil {
		t.Fatalf("GetIssue() error = %v", err)
	}
	if !issue.IsPullRequest {
		t.Error("issue with a pull_request link must carry the marker")
	}
}

func TestGetIssueNotFound(t *testing.T) {
	client := newTestClient(t, map[string]string{})

	_, err := client.GetIssue(context.Background(), testRepo, 999)
	if err == nil {
		t.Fatal("expected error for missing issue")
	}
	if !IsNotFound(err) {
		t.Errorf("expected a not-found error, got %v", err)
	}
}

func TestGetPullRequest(t *testing.T) {
	client := newTestClient(t, map[string]string{
		"GET /repos/acme/widgets/pulls/7": `{
			"number": 7,
			"title": "Add retries",
			"user": {"login": "hubot"},
			"state": "closed",
			"created_at": "2024-03-10T09:00:00Z",
			"closed_at": "2024-03-15T09:00:00Z",
			"merged": true,
			"merged_at": "2024-03-15T09:00:00Z",
			"merged_by": {"login": "octocat"},
			"changed_files": 1,
			"additions": 10,
			"deletions": 3,
			"body": "Retries with backoff"
		}`,
		"GET /repos/acme/widgets/issues/7/comments": `[
			{"user": {"login": "octocat"}, "created_at": "2024-03-11T10:00:00Z", "body": "Looks promising"}
		]`,
		"GET /repos/acme/widgets/pulls/7/comments": `[
			{"user": {"login": "octocat"}, "created_at": "2024-03-11T11:00:00Z", "body": "Off by one?",
			 "path": "retry.go", "line": 12, "diff_hunk": "@@ -10,3 +10,4 @@"}
		]`,
		"GET /repos/acme/widgets/pulls/7/reviews": `[
			{"user": {"login": "octocat"}, "submitted_at": "2024-03-12T10:00:00Z", "state": "APPROVED", "body": "LGTM"}
		]`,
		"GET /repos/acme/widgets/pulls/7/files": `[
			{"filename": "retry.go", "status": "modified", "additions": 10, "deletions": 3, "patch": "@@ -10,3 +10,4 @@"}
		]`,
	})

	pr, err := client.GetPullRequest(context.Background(), testRepo, 7)
	if err != nil {
		t.Fatalf("GetPullRequest() error = %v", err)
	}

	if pr.Number != 7 || pr.Title != "Add retries" || pr.Author != "hubot" {
		t.Errorf("unexpected PR: %+v", pr)
	}
	if !pr.Merged || pr.MergedAt == nil || pr.MergedBy != "octocat" {
		t.Errorf("merge metadata not converted: %+v", pr)
	}
	if len(pr.Comments) != 1 || pr.Comments[0].Body != "Looks promising" {
		t.Errorf("comments not converted: %+v", pr.Comments)
	}
	if len(pr.ReviewComments) != 1 || pr.ReviewComments[0].Path != "retry.go" || pr.ReviewComments[0].Line != 12 {
		t.Errorf("review comments not converted: %+v", pr.ReviewComments)
	}
	if len(pr.Reviews) != 1 || pr.Reviews[0].State != "APPROVED" {
		t.Errorf("reviews not converted: %+v", pr.Reviews)
	}
	if len(pr.Files) != 1 || !pr.Files[0].HasPatch || pr.Files[0].TotalChanges() != 13 {
		t.Errorf("files not converted: %+v", pr.Files)
	}
}

func TestGetCommit(t *testing.T) {
	client := newTestClient(t, map[string]string{
		"GET /repos/acme/widgets/commits/deadbee": `{
			"sha": "deadbeefcafe0123456789abcdef0123456789ab",
			"author": {"login": "octocat"},
			"committer": {"login": "hubot"},
			"commit": {
				"author": {"name": "Mona Lisa Octocat", "date": "2024-07-04T16:20:00Z"},
				"committer": {"name": "Hubot"},
				"message": "Fix resize crash"
			},
			"files": [
				{"filename": "window.go", "status": "modified", "additions": 5, "deletions": 2, "patch": "@@ -10,2 +10,5 @@"},
				{"filename": "window_test.go", "status": "added", "additions": 20, "deletions": 0}
			]
		}`,
	})

	commit, err := client.GetCommit(context.Background(), testRepo, "deadbee")
	if err != nil {
		t.Fatalf("GetCommit() error = %v", err)
	}

	if commit.SHA != "deadbeefcafe0123456789abcdef0123456789ab" {
		t.Errorf("SHA = %q", commit.SHA)
	}
	if commit.AuthorLogin != "octocat" || commit.AuthorName != "Mona Lisa Octocat" {
		t.Errorf("author not converted: %+v", commit)
	}
	if commit.CommitterLogin != "hubot" || commit.CommitterName != "Hubot" {
		t.Errorf("committer not converted: %+v", commit)
	}
	if commit.Message != "Fix resize crash" {
		t.Errorf("Message = %q", commit.Message)
	}
	if len(commit.Files) != 2 {
		t.Fatalf("got %d files, want 2", len(commit.Files))
	}
	if !commit.Files[0].HasPatch {
		t.Error("file with a patch must have HasPatch set")
	}
	if commit.Files[1].HasPatch {
		t.Error("file without a patch must not have HasPatch set")
	}
}

func TestGetCommitNotFound(t *testing.T) {
	client := newTestClient(t, map[string]string{})

	_, err := client.GetCommit(context.Background(), testRepo, "0000000")
	if err == nil {
		t.Fatal("expected error for missing commit")
	}
	if !IsNotFound(err) {
		t.Errorf("expected a not-found error, got %v", err)
	}
}

func TestGetAuthenticatedUser(t *testing.T) {
	client := newTestClient(t, map[string]string{
		"GET /user": `{"login": "octocat"}`,
	})

	login, err := client.GetAuthenticatedUser(context.Background())
	if err != nil {
		t.Fatalf("GetAuthenticatedUser() error = %v", err)
	}
	if login != "octocat" {
		t.Errorf("login = %q, want %q", login, "octocat")
	}
}
