// Package chunker turns a chronological commit list into rating-sized
// chunks: small same-author commits are bundled into one synthetic unit,
// large commits are split along file boundaries.
package chunker

import (
	"strings"
	"time"

	"github.com/fairlens/fairlens/pkg/models"
)

// TruncationSentinel is appended when a diff is cut for the rater.
const TruncationSentinel = "… (truncated)"

// Config holds the chunking thresholds.
type Config struct {
	// MaxChunkLines is the split threshold for large commits.
	MaxChunkLines int
	// BundleMaxLines is the "small commit" threshold for bundling.
	BundleMaxLines int
	// BundleWindow bounds how far a bundle may extend past its first
	// commit; commits beyond it start a new bundle.
	BundleWindow time.Duration
}

// DefaultConfig returns the standard thresholds: 500-line chunks,
// 30-line small commits, 60-minute bundling window.
func DefaultConfig() Config {
	return Config{
		MaxChunkLines:  500,
		BundleMaxLines: 30,
		BundleWindow:   60 * time.Minute,
	}
}

// Chunker bundles and splits commits. Stateless across calls.
type Chunker struct {
	cfg Config
}

// New creates a Chunker with the given thresholds; zero fields fall back
// to the defaults.
func New(cfg Config) *Chunker {
	def := DefaultConfig()
	if cfg.MaxChunkLines <= 0 {
		cfg.MaxChunkLines = def.MaxChunkLines
	}
	if cfg.BundleMaxLines <= 0 {
		cfg.BundleMaxLines = def.BundleMaxLines
	}
	if cfg.BundleWindow <= 0 {
		cfg.BundleWindow = def.BundleWindow
	}
	return &Chunker{cfg: cfg}
}

// Process runs both passes: bundling of small commits, then splitting of
// large ones. The input must be ordered oldest first.
func (c *Chunker) Process(commits []models.Commit) []models.Chunk {
	var chunks []models.Chunk
	for _, b := range c.bundlePass(commits) {
		chunks = append(chunks, c.split(b)...)
	}
	return chunks
}

// bundle accumulates consecutive small commits by one author.
type bundle struct {
	commits []models.Commit
}

func (b *bundle) last() models.Commit { return b.commits[len(b.commits)-1] }

// bundlePass merges runs of small commits (≤ BundleMaxLines changed) by
// the same author into single synthetic commits. The window is anchored
// at the bundle's first commit, so a steady drip of small commits still
// closes out after BundleWindow. Non-small commits flush the current
// bundle and pass through standalone. Singleton bundles are flushed
// unchanged.
func (c *Chunker) bundlePass(commits []models.Commit) []bundled {
	var out []bundled
	var cur *bundle

	flush := func() {
		if cur == nil {
			return
		}
		if len(cur.commits) == 1 {
			out = append(out, bundled{commit: cur.commits[0]})
		} else {
			out = append(out, bundled{commit: mergeBundle(cur.commits), isBundle: true, shas: shasOf(cur.commits)})
		}
		cur = nil
	}

	for _, commit := range commits {
		if commit.TotalLinesChanged() > c.cfg.BundleMaxLines {
			flush()
			out = append(out, bundled{commit: commit})
			continue
		}
		if cur != nil && sameAuthor(cur.last(), commit) &&
			!commit.Timestamp.After(cur.commits[0].Timestamp.Add(c.cfg.BundleWindow)) {
			cur.commits = append(cur.commits, commit)
			continue
		}
		flush()
		cur = &bundle{commits: []models.Commit{commit}}
	}
	flush()
	return out
}

// bundled is a commit that may represent a merged bundle.
type bundled struct {
	commit   models.Commit
	isBundle bool
	shas     []string
}

// split emits the chunks of one (possibly bundled) commit. Bundled units
// are never split, so the bundled-chunks-have-totalChunks=1 invariant
// holds even for unusually large bundles.
func (c *Chunker) split(b bundled) []models.Chunk {
	commit := b.commit
	if b.isBundle || commit.TotalLinesChanged() <= c.cfg.MaxChunkLines {
		return []models.Chunk{c.newChunk(b, 0, 1, commit.Files)}
	}

	var groups [][]models.FileChange
	var current []models.FileChange
	size := 0
	for _, f := range commit.Files {
		fileSize := f.AddedLines + f.DeletedLines
		if len(current) > 0 && size+fileSize > c.cfg.MaxChunkLines {
			groups = append(groups, current)
			current = nil
			size = 0
		}
		current = append(current, f)
		size += fileSize
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}

	chunks := make([]models.Chunk, len(groups))
	for i, files := range groups {
		chunks[i] = c.newChunk(b, i, len(groups), files)
	}
	return chunks
}

func (c *Chunker) newChunk(b bundled, index, total int, files []models.FileChange) models.Chunk {
	commit := b.commit
	added, deleted := 0, 0
	var diff strings.Builder
	for _, f := range files {
		added += f.AddedLines
		deleted += f.DeletedLines
		diff.WriteString(f.DiffText)
	}
	return models.Chunk{
		SHA:          commit.SHA,
		ChunkIndex:   index,
		TotalChunks:  total,
		AuthorID:     commit.AuthorID,
		AuthorEmail:  commit.AuthorEmail,
		Message:      commit.Message,
		Timestamp:    commit.Timestamp,
		Files:        files,
		DiffText:     diff.String(),
		LinesAdded:     added,
		LinesDeleted:   deleted,
		IsBundled:      b.isBundle,
		BundledSHAs:    b.shas,
		IsMerge:        commit.IsMerge,
		IsRenameOnly:   commit.IsRenameOnly,
		IsFormatOnly:   commit.IsFormatOnly,
		IsMassReformat: commit.IsMassReformat,
	}
}

// mergeBundle collapses a run of commits into one synthetic commit:
// concatenated messages, earliest timestamp, file changes merged by path.
func mergeBundle(commits []models.Commit) models.Commit {
	first := commits[0]
	merged := models.Commit{
		SHA:         first.SHA,
		AuthorID:    first.AuthorID,
		AuthorEmail: first.AuthorEmail,
		Timestamp:   first.Timestamp,
	}

	var messages []string
	index := make(map[string]int)
	for _, commit := range commits {
		messages = append(messages, commit.Message)
		for _, f := range commit.Files {
			if i, ok := index[f.Path]; ok {
				merged.Files[i].AddedLines += f.AddedLines
				merged.Files[i].DeletedLines += f.DeletedLines
				merged.Files[i].DiffText += f.DiffText
				continue
			}
			index[f.Path] = len(merged.Files)
			merged.Files = append(merged.Files, f)
		}
	}
	merged.Message = strings.Join(messages, "\n")
	return merged
}

func shasOf(commits []models.Commit) []string {
	shas := make([]string, len(commits))
	for i, c := range commits {
		shas[i] = c.SHA
	}
	return shas
}

// sameAuthor compares commit authors: by ID when both are resolved, by
// email when neither is.
func sameAuthor(a, b models.Commit) bool {
	if a.AuthorID != nil && b.AuthorID != nil {
		return *a.AuthorID == *b.AuthorID
	}
	if a.AuthorID == nil && b.AuthorID == nil {
		return a.AuthorEmail == b.AuthorEmail
	}
	return false
}

// TruncateDiff cuts a diff to at most max characters, appending the
// truncation sentinel when content was dropped.
func TruncateDiff(diff string, max int) string {
	if max <= 0 || len(diff) <= max {
		return diff
	}
	return diff[:max] + TruncationSentinel
}
