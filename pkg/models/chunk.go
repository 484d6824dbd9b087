package models

import (
	"fmt"
	"time"
)

// Chunk is the unit of commit content sent to the effort rater: either a
// bundled group of small same-author commits or a slice of a large commit.
// Identity is (SHA, ChunkIndex, TotalChunks).
type Chunk struct {
	SHA         string       `json:"sha"`
	ChunkIndex  int          `json:"chunk_index"`
	TotalChunks int          `json:"total_chunks"`
	AuthorID    *int64       `json:"author_id,omitempty"`
	AuthorEmail string       `json:"author_email"`
	Message     string       `json:"message"`
	Timestamp   time.Time    `json:"timestamp"`
	Files       []FileChange `json:"files"`
	DiffText    string       `json:"-"`

	LinesAdded   int  `json:"lines_added"`
	LinesDeleted int  `json:"lines_deleted"`
	IsBundled    bool `json:"is_bundled"`

	// SHAs of the original commits merged into this chunk. Empty unless
	// IsBundled is true.
	BundledSHAs []string `json:"bundled_shas,omitempty"`

	// Loader classification hints, carried through for the pre-filter.
	IsMerge        bool `json:"is_merge"`
	IsRenameOnly   bool `json:"is_rename_only"`
	IsFormatOnly   bool `json:"is_format_only"`
	IsMassReformat bool `json:"is_mass_reformat"`
}

// ID returns the chunk's stable identity string.
func (c *Chunk) ID() string {
	return fmt.Sprintf("%s:%d/%d", c.SHA, c.ChunkIndex, c.TotalChunks)
}

// TotalLinesChanged is the chunk's total churn (added + deleted).
func (c *Chunk) TotalLinesChanged() int {
	return c.LinesAdded + c.LinesDeleted
}

// FilePaths returns the ordered list of file paths touched by the chunk.
func (c *Chunk) FilePaths() []string {
	paths := make([]string, len(c.Files))
	for i, f := range c.Files {
		paths[i] = f.Path
	}
	return paths
}

// AnalyzedChunk is a chunk joined with its effort rating, the
// external-contributor tag, and the token usage of the rating call.
type AnalyzedChunk struct {
	Chunk                 Chunk        `json:"chunk"`
	Rating                EffortRating `json:"rating"`
	IsExternalContributor bool         `json:"is_external_contributor"`
	Usage                 TokenUsage   `json:"usage"`
}
