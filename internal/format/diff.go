// Package format renders fetched records into the plain-text documents
// written to the output directory. Section markers are load-bearing:
// downstream consumers parse them, so their exact bytes must not change.
package format

import (
	"fmt"
	"time"

	"github.com/spiffcs/ghdump/internal/model"
)

// DefaultMaxDiffLines caps the combined added and deleted line count for a
// file's patch to be embedded in the document. Files above the limit get a
// placeholder instead, keeping documents within a model's context budget.
const DefaultMaxDiffLines = 500

// DiffPolicy decides whether a changed file's patch text is embedded or
// replaced with a placeholder.
type DiffPolicy struct {
	MaxDiffLines int
}

// NewDiffPolicy returns a policy with the given limit, falling back to
// DefaultMaxDiffLines when the limit is zero or negative.
func NewDiffPolicy(maxLines int) DiffPolicy {
	if maxLines <= 0 {
		maxLines = DefaultMaxDiffLines
	}
	return DiffPolicy{MaxDiffLines: maxLines}
}

// Render returns the diff portion of one changed file's block. A file
// whose change count strictly exceeds the limit is skipped; a file at the
// limit embeds its patch. The same rule applies to PRs and commits.
func (p DiffPolicy) Render(f model.FileChange) string {
	total := f.TotalChanges()
	if total > p.MaxDiffLines {
		return fmt.Sprintf("[Diff skipped: Exceeds line limit (%d > %d lines)]", total, p.MaxDiffLines)
	}
	if !f.HasPatch {
		return "[No diff available or applicable]"
	}
	return "```diff\n" + f.Patch + "\n```"
}

// appendFileChanges renders the numbered per-file blocks shared by the PR
// and commit formatters.
func appendFileChanges(lines []string, files []model.FileChange, policy DiffPolicy, emptyPlaceholder string) []string {
	if len(files) == 0 {
		return append(lines, emptyPlaceholder)
	}
	total := len(files)
	for i, f := range files {
		lines = append(lines, fmt.Sprintf("--- File %d/%d: %s ---", i+1, total, f.Filename))
		lines = append(lines, "Status: "+f.Status)
		lines = append(lines, fmt.Sprintf("Changes: +%d / -%d", f.Additions, f.Deletions))
		lines = append(lines, policy.Render(f))
		lines = append(lines, "\n")
	}
	return lines
}

// formatTime renders timestamps in UTC so documents are byte-identical
// regardless of the machine's local zone.
func formatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04:05")
}

// sectionBreak is the separator between major document sections.
const sectionBreak = "\n---\n"
