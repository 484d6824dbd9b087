// Package models contains the domain types shared across the analysis
// pipeline: raw commits, chunks, effort ratings, token accounting, and
// the per-team fairness report.
package models

import "time"

// FileChange is a single file's contribution to a commit diff.
type FileChange struct {
	Path         string `json:"path"`
	AddedLines   int    `json:"added_lines"`
	DeletedLines int    `json:"deleted_lines"`
	DiffText     string `json:"-"`
}

// Commit is a raw commit as emitted by the loader. Immutable once emitted;
// the chunker produces new synthetic commits when bundling instead of
// mutating these.
type Commit struct {
	SHA         string       `json:"sha"`
	AuthorID    *int64       `json:"author_id,omitempty"`
	AuthorEmail string       `json:"author_email"`
	Message     string       `json:"message"`
	Timestamp   time.Time    `json:"timestamp"`
	Files       []FileChange `json:"files"`

	// Classification hints from the loader, consumed by the pre-filter.
	IsMerge        bool `json:"is_merge"`
	IsRenameOnly   bool `json:"is_rename_only"`
	IsFormatOnly   bool `json:"is_format_only"`
	IsMassReformat bool `json:"is_mass_reformat"`
}

// LinesAdded sums added lines over all file changes.
func (c *Commit) LinesAdded() int {
	total := 0
	for _, f := range c.Files {
		total += f.AddedLines
	}
	return total
}

// LinesDeleted sums deleted lines over all file changes.
func (c *Commit) LinesDeleted() int {
	total := 0
	for _, f := range c.Files {
		total += f.DeletedLines
	}
	return total
}

// TotalLinesChanged is the commit's total churn (added + deleted).
func (c *Commit) TotalLinesChanged() int {
	return c.LinesAdded() + c.LinesDeleted()
}
