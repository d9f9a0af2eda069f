package format

import (
	"strings"
	"testing"

	"github.com/spiffcs/ghdump/internal/model"
)

func TestIssueScenario(t *testing.T) {
	// Issue #42 with a body, no comments, no optional metadata.
	issue := &model.Issue{
		Number:    42,
		Title:     "Widget crashes on resize",
		Author:    "octocat",
		State:     "open",
		CreatedAt: testTime(t, "2024-05-01T08:00:00Z"),
		Body:      "Fix crash",
	}

	doc := Issue(testRepo, issue)

	for _, want := range []string{
		"### GitHub Issue Analysis ###",
		"Repository: acme/widgets",
		"Issue Number: #42",
		"Title: Widget crashes on resize",
		"Author: octocat",
		"State: open",
		"### Issue Description ###",
		"Fix crash",
		"### Conversation History ###",
		"[No comments]",
		"### End of Issue Analysis ###",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestIssueOptionalMetadataOmittedWhenAbsent(t *testing.T) {
	issue := &model.Issue{
		Number:    7,
		CreatedAt: testTime(t, "2024-05-01T08:00:00Z"),
	}

	doc := Issue(testRepo, issue)

	for _, absent := range []string{"Labels:", "Assignees:", "Milestone:", "Closed At:"} {
		if strings.Contains(doc, absent) {
			t.Errorf("document must omit %q when the field is absent", absent)
		}
	}
}

func TestIssueFullMetadata(t *testing.T) {
	closed := testTime(t, "2024-06-01T08:00:00Z")
	issue := &model.Issue{
		Number:    8,
		Title:     "Flaky test",
		Author:    "alice",
		State:     "closed",
		CreatedAt: testTime(t, "2024-05-01T08:00:00Z"),
		ClosedAt:  &closed,
		ClosedBy:  "bob",
		Labels:    []string{"bug", "ci"},
		Assignees: []string{"carol", "dave"},
		Milestone: "v2.0",
		Body:      "Fails once a week.",
		Comments: []model.Comment{
			{Author: "carol", CreatedAt: closed, Body: "Reproduced."},
		},
	}

	doc := Issue(testRepo, issue)

	for _, want := range []string{
		"Closed At: 2024-06-01 08:00:00 by bob",
		"Labels: bug, ci",
		"Assignees: carol, dave",
		"Milestone: v2.0",
		"* Comment by carol at 2024-06-01 08:00:00:",
		"Reproduced.",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestIssueClosedByUnknown(t *testing.T) {
	closed := testTime(t, "2024-06-01T08:00:00Z")
	issue := &model.Issue{
		Number:    9,
		CreatedAt: testTime(t, "2024-05-01T08:00:00Z"),
		ClosedAt:  &closed,
	}

	doc := Issue(testRepo, issue)

	if !strings.Contains(doc, "Closed At: 2024-06-01 08:00:00 by unknown") {
		t.Error("missing closer falls back to \"unknown\"")
	}
}

func TestIssueEmptyBodyPlaceholder(t *testing.T) {
	issue := &model.Issue{Number: 10, CreatedAt: testTime(t, "2024-05-01T08:00:00Z")}

	doc := Issue(testRepo, issue)

	if !strings.Contains(doc, "[No description provided]") {
		t.Error("empty body must render the description placeholder")
	}
}
