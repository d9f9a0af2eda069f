package format

import (
	"fmt"
	"strings"

	"github.com/spiffcs/ghdump/internal/model"
)

// Commit renders a fetched commit into a single document: header, commit
// message, then file changes under the same rendering contract as the PR
// formatter.
func Commit(repo model.Repo, commit *model.Commit, policy DiffPolicy) string {
	var lines []string

	lines = append(lines, "### GitHub Commit Analysis ###")
	lines = append(lines, "Repository: "+repo.FullName)
	lines = append(lines, "SHA: "+commit.SHA)
	if commit.AuthorLogin != "" {
		lines = append(lines, fmt.Sprintf("Author: %s (%s)", commit.AuthorLogin, commit.AuthorName))
	}
	if commit.CommitterLogin != "" {
		lines = append(lines, fmt.Sprintf("Committer: %s (%s)", commit.CommitterLogin, commit.CommitterName))
	}
	lines = append(lines, "Date: "+formatTime(commit.AuthoredAt))
	lines = append(lines, sectionBreak)

	lines = append(lines, "### Commit Message ###")
	if commit.Message != "" {
		lines = append(lines, commit.Message)
	} else {
		lines = append(lines, "[No commit message]")
	}
	lines = append(lines, sectionBreak)

	lines = append(lines, fmt.Sprintf("### File Changes (Ignoring files with >%d lines changed) ###\n", policy.MaxDiffLines))
	lines = appendFileChanges(lines, commit.Files, policy, "[No files changed in this commit]")

	lines = append(lines, "\n### End of Commit Analysis ###")

	return strings.Join(lines, "\n")
}
