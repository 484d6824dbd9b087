package chunker

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/fairlens/fairlens/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

func authorID(id int64) *int64 { return &id }

func smallCommit(sha string, author int64, at time.Time, lines int) models.Commit {
	return models.Commit{
		SHA:         sha,
		AuthorID:    authorID(author),
		AuthorEmail: fmt.Sprintf("author%d@example.com", author),
		Message:     "tweak " + sha,
		Timestamp:   at,
		Files: []models.FileChange{
			{Path: "src/main.go", AddedLines: lines, DeletedLines: 0, DiffText: "+" + sha + "\n"},
		},
	}
}

func TestProcess_BundlesSmallSameAuthorCommits(t *testing.T) {
	c := New(DefaultConfig())

	commits := []models.Commit{
		smallCommit("aaa", 1, baseTime, 10),
		smallCommit("bbb", 1, baseTime.Add(15*time.Minute), 10),
		smallCommit("ccc", 1, baseTime.Add(45*time.Minute), 10),
		smallCommit("ddd", 1, baseTime.Add(90*time.Minute), 10),
	}

	chunks := c.Process(commits)
	require.Len(t, chunks, 2)

	first := chunks[0]
	assert.True(t, first.IsBundled)
	assert.Equal(t, 1, first.TotalChunks)
	assert.Equal(t, 30, first.TotalLinesChanged())
	assert.Equal(t, []string{"aaa", "bbb", "ccc"}, first.BundledSHAs)
	assert.Equal(t, baseTime, first.Timestamp)

	second := chunks[1]
	assert.False(t, second.IsBundled)
	assert.Equal(t, "ddd", second.SHA)
	assert.Equal(t, 10, second.TotalLinesChanged())
}

func TestProcess_BundleWindowAnchoredAtFirstCommit(t *testing.T) {
	c := New(DefaultConfig())

	// Each commit lands within 60 minutes of its predecessor, but the
	// window runs from the bundle's first commit, so the chain must not
	// grow without bound.
	commits := []models.Commit{
		smallCommit("aaa", 1, baseTime, 5),
		smallCommit("bbb", 1, baseTime.Add(45*time.Minute), 5),
		smallCommit("ccc", 1, baseTime.Add(90*time.Minute), 5),
	}

	chunks := c.Process(commits)
	require.Len(t, chunks, 2)

	assert.True(t, chunks[0].IsBundled)
	assert.Equal(t, []string{"aaa", "bbb"}, chunks[0].BundledSHAs)

	assert.False(t, chunks[1].IsBundled)
	assert.Equal(t, "ccc", chunks[1].SHA)
}

func TestProcess_BundleRespectsAuthorBoundary(t *testing.T) {
	c := New(DefaultConfig())

	commits := []models.Commit{
		smallCommit("aaa", 1, baseTime, 5),
		smallCommit("bbb", 2, baseTime.Add(5*time.Minute), 5),
		smallCommit("ccc", 1, baseTime.Add(10*time.Minute), 5),
	}

	chunks := c.Process(commits)
	require.Len(t, chunks, 3)
	for _, chunk := range chunks {
		assert.False(t, chunk.IsBundled, "author changes must break bundles")
	}
}

func TestProcess_NonSmallCommitFlushesAndStandsAlone(t *testing.T) {
	c := New(DefaultConfig())

	big := models.Commit{
		SHA:         "big",
		AuthorID:    authorID(1),
		AuthorEmail: "author1@example.com",
		Message:     "implement parser",
		Timestamp:   baseTime.Add(10 * time.Minute),
		Files:       []models.FileChange{{Path: "parser.go", AddedLines: 120, DeletedLines: 4}},
	}
	commits := []models.Commit{
		smallCommit("aaa", 1, baseTime, 5),
		big,
		smallCommit("bbb", 1, baseTime.Add(20*time.Minute), 5),
	}

	chunks := c.Process(commits)
	require.Len(t, chunks, 3)
	assert.Equal(t, "aaa", chunks[0].SHA)
	assert.Equal(t, "big", chunks[1].SHA)
	assert.Equal(t, "bbb", chunks[2].SHA)
}

func TestProcess_SplitsLargeCommitAlongFiles(t *testing.T) {
	c := New(DefaultConfig())

	files := make([]models.FileChange, 4)
	for i := range files {
		files[i] = models.FileChange{
			Path:       fmt.Sprintf("pkg/part%d.go", i),
			AddedLines: 300,
		}
	}
	commit := models.Commit{
		SHA:         "deadbeef",
		AuthorID:    authorID(1),
		AuthorEmail: "author1@example.com",
		Message:     "big feature",
		Timestamp:   baseTime,
		Files:       files,
	}

	chunks := c.Process([]models.Commit{commit})
	require.GreaterOrEqual(t, len(chunks), 2)

	totalAdded := 0
	for i, chunk := range chunks {
		assert.Equal(t, "deadbeef", chunk.SHA)
		assert.Equal(t, len(chunks), chunk.TotalChunks)
		assert.Equal(t, i, chunk.ChunkIndex)
		assert.False(t, chunk.IsBundled)
		totalAdded += chunk.LinesAdded
	}
	assert.Equal(t, 1200, totalAdded)
}

func TestProcess_OversizeSingleFileStaysWhole(t *testing.T) {
	c := New(DefaultConfig())

	commit := models.Commit{
		SHA:       "huge",
		AuthorID:  authorID(1),
		Timestamp: baseTime,
		Files: []models.FileChange{
			{Path: "generated.go", AddedLines: 900},
			{Path: "small.go", AddedLines: 10},
		},
	}

	chunks := c.Process([]models.Commit{commit})
	require.Len(t, chunks, 2)
	assert.Equal(t, 900, chunks[0].LinesAdded)
	assert.Equal(t, 10, chunks[1].LinesAdded)
}

func TestProcess_PreservesLineTotals(t *testing.T) {
	c := New(DefaultConfig())

	commit := models.Commit{
		SHA:       "sums",
		AuthorID:  authorID(7),
		Timestamp: baseTime,
		Files: []models.FileChange{
			{Path: "a.go", AddedLines: 250, DeletedLines: 40},
			{Path: "b.go", AddedLines: 310, DeletedLines: 12},
			{Path: "c.go", AddedLines: 75, DeletedLines: 133},
		},
	}

	chunks := c.Process([]models.Commit{commit})
	added, deleted := 0, 0
	for _, chunk := range chunks {
		assert.Equal(t, chunk.LinesAdded+chunk.LinesDeleted, chunk.TotalLinesChanged())
		added += chunk.LinesAdded
		deleted += chunk.LinesDeleted
	}
	assert.Equal(t, commit.LinesAdded(), added)
	assert.Equal(t, commit.LinesDeleted(), deleted)
}

func TestProcess_ZeroFileCommit(t *testing.T) {
	c := New(DefaultConfig())

	chunks := c.Process([]models.Commit{{SHA: "empty", AuthorID: authorID(1), Timestamp: baseTime}})
	require.Len(t, chunks, 1)
	assert.Zero(t, chunks[0].LinesAdded)
	assert.Zero(t, chunks[0].LinesDeleted)
	assert.Equal(t, 1, chunks[0].TotalChunks)
}

func TestProcess_BundleMergesFileChangesByPath(t *testing.T) {
	c := New(DefaultConfig())

	a := smallCommit("aaa", 1, baseTime, 10)
	b := smallCommit("bbb", 1, baseTime.Add(5*time.Minute), 8)

	chunks := c.Process([]models.Commit{a, b})
	require.Len(t, chunks, 1)
	require.Len(t, chunks[0].Files, 1)
	assert.Equal(t, 18, chunks[0].Files[0].AddedLines)
	assert.Contains(t, chunks[0].Message, "tweak aaa")
	assert.Contains(t, chunks[0].Message, "tweak bbb")
}

func TestTruncateDiff(t *testing.T) {
	t.Run("short diff untouched", func(t *testing.T) {
		assert.Equal(t, "short", TruncateDiff("short", 10000))
	})

	t.Run("long diff truncated with sentinel", func(t *testing.T) {
		long := strings.Repeat("x", 12000)
		got := TruncateDiff(long, 10000)
		assert.Len(t, got, 10000+len(TruncationSentinel))
		assert.True(t, strings.HasSuffix(got, TruncationSentinel))
	})
}
