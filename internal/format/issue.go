package format

import (
	"fmt"
	"strings"

	"github.com/spiffcs/ghdump/internal/model"
)

// Issue renders an already-fetched issue record into a single document.
// Metadata lines (closed info, labels, assignees, milestone) are omitted
// entirely when absent rather than rendered empty.
func Issue(repo model.Repo, issue *model.Issue) string {
	var lines []string

	lines = append(lines, "### GitHub Issue Analysis ###")
	lines = append(lines, "Repository: "+repo.FullName)
	lines = append(lines, fmt.Sprintf("Issue Number: #%d", issue.Number))
	lines = append(lines, "Title: "+issue.Title)
	lines = append(lines, "Author: "+issue.Author)
	lines = append(lines, "State: "+issue.State)
	lines = append(lines, "Created At: "+formatTime(issue.CreatedAt))
	if issue.ClosedAt != nil {
		closedBy := issue.ClosedBy
		if closedBy == "" {
			closedBy = "unknown"
		}
		lines = append(lines, fmt.Sprintf("Closed At: %s by %s", formatTime(*issue.ClosedAt), closedBy))
	}

	if len(issue.Labels) > 0 {
		lines = append(lines, "Labels: "+strings.Join(issue.Labels, ", "))
	}
	if len(issue.Assignees) > 0 {
		lines = append(lines, "Assignees: "+strings.Join(issue.Assignees, ", "))
	}
	if issue.Milestone != "" {
		lines = append(lines, "Milestone: "+issue.Milestone)
	}

	lines = append(lines, sectionBreak)

	lines = append(lines, "### Issue Description ###")
	if issue.Body != "" {
		lines = append(lines, issue.Body)
	} else {
		lines = append(lines, "[No description provided]")
	}
	lines = append(lines, sectionBreak)

	lines = append(lines, "### Conversation History ###\n")
	if len(issue.Comments) > 0 {
		for _, comment := range issue.Comments {
			lines = append(lines, fmt.Sprintf("\n* Comment by %s at %s:", comment.Author, formatTime(comment.CreatedAt)))
			lines = append(lines, "    ```\n    "+comment.Body+"\n    ```")
		}
	} else {
		lines = append(lines, "[No comments]")
	}
	lines = append(lines, sectionBreak)

	lines = append(lines, "\n### End of Issue Analysis ###")

	return strings.Join(lines, "\n")
}
