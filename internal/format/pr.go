package format

import (
	"fmt"
	"strings"

	"github.com/spiffcs/ghdump/internal/model"
)

// PullRequest renders a fetched PR into a single document: header,
// description, the three conversation subsections, then file changes.
func PullRequest(repo model.Repo, pr *model.PullRequest, policy DiffPolicy) string {
	var lines []string

	lines = append(lines, "### GitHub Pull Request Analysis ###")
	lines = append(lines, "Repository: "+repo.FullName)
	lines = append(lines, fmt.Sprintf("PR Number: #%d", pr.Number))
	lines = append(lines, "Title: "+pr.Title)
	lines = append(lines, "Author: "+pr.Author)
	lines = append(lines, "State: "+pr.State)
	lines = append(lines, "Created At: "+formatTime(pr.CreatedAt))
	if pr.Merged {
		mergedBy := pr.MergedBy
		if mergedBy == "" {
			mergedBy = "unknown"
		}
		mergedAt := ""
		if pr.MergedAt != nil {
			mergedAt = formatTime(*pr.MergedAt)
		}
		lines = append(lines, fmt.Sprintf("Merged At: %s by %s", mergedAt, mergedBy))
	} else if pr.ClosedAt != nil {
		lines = append(lines, "Closed At: "+formatTime(*pr.ClosedAt))
	}
	lines = append(lines, fmt.Sprintf("Changed Files: %d", pr.ChangedFiles))
	lines = append(lines, fmt.Sprintf("Additions: %d", pr.Additions))
	lines = append(lines, fmt.Sprintf("Deletions: %d", pr.Deletions))
	lines = append(lines, sectionBreak)

	lines = append(lines, "### PR Description ###")
	if pr.Body != "" {
		lines = append(lines, pr.Body)
	} else {
		lines = append(lines, "[No description provided]")
	}
	lines = append(lines, sectionBreak)

	lines = append(lines, "### Conversation History ###\n")

	lines = append(lines, "--- General Comments ---")
	if len(pr.Comments) > 0 {
		for _, comment := range pr.Comments {
			lines = append(lines, fmt.Sprintf("\n* Comment by %s at %s:", comment.Author, formatTime(comment.CreatedAt)))
			lines = append(lines, "    ```\n    "+comment.Body+"\n    ```")
		}
	} else {
		lines = append(lines, "[No general comments]")
	}
	lines = append(lines, "\n")

	lines = append(lines, "--- Review Comments (Inline) ---")
	if len(pr.ReviewComments) > 0 {
		for _, comment := range pr.ReviewComments {
			lines = append(lines, fmt.Sprintf("\n* Comment by %s at %s on %s (line ~%d):",
				comment.Author, formatTime(comment.CreatedAt), comment.Path, comment.Line))
			lines = append(lines, "    Relevant Code Diff:\n    ```diff\n"+comment.DiffHunk+"\n    ```")
			lines = append(lines, "    Comment:\n    ```\n    "+comment.Body+"\n    ```")
		}
	} else {
		lines = append(lines, "[No inline review comments]")
	}
	lines = append(lines, "\n")

	lines = append(lines, "--- Reviews (Approve/Request Changes/Comment) ---")
	if len(pr.Reviews) > 0 {
		for _, review := range pr.Reviews {
			if !shouldRenderReview(review) {
				continue
			}
			lines = append(lines, fmt.Sprintf("\n* Review by %s at %s", review.Author, formatTime(review.SubmittedAt)))
			lines = append(lines, "    State: "+review.State)
			if review.Body != "" {
				lines = append(lines, "    Comment:\n    ```\n    "+review.Body+"\n    ```")
			} else {
				lines = append(lines, "    [No general review comment]")
			}
		}
	} else {
		lines = append(lines, "[No formal reviews submitted]")
	}
	lines = append(lines, sectionBreak)

	lines = append(lines, fmt.Sprintf("### File Changes (Ignoring files with >%d lines changed) ###\n", policy.MaxDiffLines))
	lines = appendFileChanges(lines, pr.Files, policy, "[No files changed in this PR]")

	lines = append(lines, "\n### End of PR Analysis ###")

	return strings.Join(lines, "\n")
}

// shouldRenderReview suppresses reviews that are pure containers for
// inline comments: no summary body and a plain COMMENTED state. Their
// inline comments are already rendered in the previous subsection.
func shouldRenderReview(review model.Review) bool {
	return review.Body != "" || review.State != "COMMENTED"
}
