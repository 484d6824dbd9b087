package prefilter

import (
	"testing"
	"time"

	"github.com/fairlens/fairlens/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chunk(message string, added, deleted int, paths ...string) models.Chunk {
	if len(paths) == 0 {
		paths = []string{"src/app.go"}
	}
	files := make([]models.FileChange, len(paths))
	for i, p := range paths {
		files[i] = models.FileChange{Path: p, AddedLines: added / len(paths), DeletedLines: deleted / len(paths)}
	}
	return models.Chunk{
		SHA:          message,
		TotalChunks:  1,
		Message:      message,
		Timestamp:    time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC),
		Files:        files,
		LinesAdded:   added,
		LinesDeleted: deleted,
	}
}

func classifyOne(t *testing.T, c models.Chunk) (Reason, bool) {
	t.Helper()
	res := MustNew().Apply([]models.Chunk{c})
	if len(res.Filtered) == 1 {
		return res.Filtered[0].Reason, true
	}
	require.Len(t, res.Analyze, 1)
	return "", false
}

func TestClassify_ReasonsInOrder(t *testing.T) {
	tests := []struct {
		name   string
		chunk  models.Chunk
		reason Reason
	}{
		{"empty", chunk("add feature", 0, 0), ReasonEmpty},
		{"merge by message", chunk("Merge branch 'develop' into main", 10, 2), ReasonMergeCommit},
		{"merge by flag", func() models.Chunk { c := chunk("weekly sync", 10, 2); c.IsMerge = true; return c }(), ReasonMergeCommit},
		{"revert prefix", chunk("Revert \"add feature\"", 30, 30), ReasonRevertCommit},
		{"revert body", chunk("undo bad change\n\nThis reverts commit abc123.", 30, 30), ReasonRevertCommit},
		{"lockfile only", chunk("update deps", 200, 180, "package-lock.json", "yarn.lock"), ReasonGeneratedFilesOnly},
		{"dist only", chunk("release build", 500, 0, "dist/bundle.js"), ReasonGeneratedFilesOnly},
		{"rename small", chunk("rename utils to helpers", 3, 2), ReasonRenameOnly},
		{"format token", chunk("apply prettier", 40, 40), ReasonFormatOnly},
		{"trivial wip", chunk("wip", 5, 5), ReasonTrivialMessage},
		{"trivial bot", chunk("chore(deps): bump lodash [bot]", 12, 12), ReasonTrivialMessage},
		{"small short message", chunk("fix lint", 3, 2), ReasonSmallTrivial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason, dropped := classifyOne(t, tt.chunk)
			require.True(t, dropped, "expected chunk to be filtered")
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestClassify_PassesRealWork(t *testing.T) {
	for _, c := range []models.Chunk{
		chunk("implement websocket reconnect logic", 100, 20),
		chunk("fix race condition in scheduler", 50, 10),
		// Rename message but too much churn for RENAME_ONLY.
		chunk("rename and rework storage layer", 200, 150),
	} {
		_, dropped := classifyOne(t, c)
		assert.False(t, dropped, "chunk %q should pass", c.Message)
	}
}

func TestClassify_MassReformat(t *testing.T) {
	paths := make([]string, 12)
	for i := range paths {
		paths[i] = "src/file" + string(rune('a'+i)) + ".go"
	}
	c := chunk("reformat with gofmt style", 12, 12, paths...)

	reason, dropped := classifyOne(t, c)
	require.True(t, dropped)
	// FORMAT_ONLY wins over MASS_REFORMAT because it is checked first and
	// the message carries a format token.
	assert.Equal(t, ReasonFormatOnly, reason)

	flagged := chunk("touch every file", 12, 12, paths...)
	flagged.IsMassReformat = true
	reason, dropped = classifyOne(t, flagged)
	require.True(t, dropped)
	assert.Equal(t, ReasonMassReformat, reason)
}

func TestApply_BatchSummary(t *testing.T) {
	chunks := []models.Chunk{
		chunk("Merge branch 'feature/x'", 10, 0),
		chunk("implement grading export", 100, 20),
		chunk("placeholder", 0, 0),
		chunk("fix lint", 3, 2),
		chunk("fix race condition in export", 50, 10),
		chunk("wip", 5, 5),
		chunk("Revert \"implement grading export\"", 30, 30),
	}

	res := MustNew().Apply(chunks)

	require.Len(t, res.Analyze, 2)
	assert.Equal(t, "implement grading export", res.Analyze[0].Message)
	assert.Equal(t, "fix race condition in export", res.Analyze[1].Message)

	assert.Equal(t, 7, res.Summary.TotalChunks)
	assert.Equal(t, 2, res.Summary.Analyzed)
	assert.Equal(t, 5, res.Summary.Filtered)
	assert.Equal(t, 1, res.Summary.CountsByReason[string(ReasonMergeCommit)])
	assert.Equal(t, 1, res.Summary.CountsByReason[string(ReasonEmpty)])
	assert.Equal(t, 1, res.Summary.CountsByReason[string(ReasonRevertCommit)])
	trivial := res.Summary.CountsByReason[string(ReasonTrivialMessage)] +
		res.Summary.CountsByReason[string(ReasonSmallTrivial)]
	assert.Equal(t, 2, trivial)
}

func TestNew_CustomPatterns(t *testing.T) {
	f, err := New([]string{"*.generated.ts"}, []string{`^tmp$`})
	require.NoError(t, err)

	res := f.Apply([]models.Chunk{
		chunk("regen api client", 400, 380, "api/client.generated.ts"),
		chunk("tmp", 40, 2),
		// Default lockfile pattern replaced, so this passes now.
		chunk("bump deps by hand", 20, 20, "yarn.lock"),
	})
	require.Len(t, res.Analyze, 1)
	assert.Equal(t, "bump deps by hand", res.Analyze[0].Message)
}

func TestNew_InvalidPattern(t *testing.T) {
	_, err := New(nil, []string{`([`})
	assert.Error(t, err)
}
