package fairness

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fairlens/fairlens/pkg/chunker"
	"github.com/fairlens/fairlens/pkg/cqi"
	"github.com/fairlens/fairlens/pkg/models"
	"github.com/fairlens/fairlens/pkg/prefilter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	projectStart = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	projectEnd   = time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC) // 5 weeks
)

type fakeRepos struct{ path string }

func (f *fakeRepos) Sync(context.Context, string, string) (string, error) { return f.path, nil }

type failingRepos struct{}

func (failingRepos) Sync(context.Context, string, string) (string, error) {
	return "", errors.New("clone failed: authentication required")
}

// fixedRater returns a canned rating per commit message prefix so the
// scenarios are deterministic without an LLM.
type fixedRater struct {
	ratings map[string]models.EffortRating
	byline  models.EffortRating
}

func (f *fixedRater) Enabled() bool { return true }

func (f *fixedRater) RateAll(_ context.Context, chunks []models.Chunk) ([]models.AnalyzedChunk, models.TokenTotals) {
	rated := make([]models.AnalyzedChunk, len(chunks))
	totals := models.TokenTotals{}
	for i, c := range chunks {
		rating, ok := f.ratings[c.Message]
		if !ok {
			rating = f.byline
		}
		usage := models.TokenUsage{Model: "fake", PromptTokens: 100, CompletionTokens: 20, TotalTokens: 120, UsageAvailable: true}
		rated[i] = models.AnalyzedChunk{Chunk: c, Rating: rating, Usage: usage}
		totals = totals.Add(usage)
	}
	return rated, totals
}

func strongRating() models.EffortRating {
	return models.EffortRating{EffortScore: 8, Complexity: 8, Novelty: 8, Label: models.LabelFeature, Confidence: 0.9}
}

func team(members ...models.Member) models.Team {
	return models.Team{ID: 42, Name: "Team Rocket", RepositoryURI: "https://vcs.example/team-rocket.git", Members: members}
}

func member(id int64, email string) models.Member {
	return models.Member{ID: id, Name: email, Email: email}
}

func commitBy(id int64, email, message string, ts time.Time, lines int, paths ...string) models.Commit {
	if len(paths) == 0 {
		paths = []string{"src/app.go", "src/core.go"}
	}
	files := make([]models.FileChange, len(paths))
	for i, p := range paths {
		files[i] = models.FileChange{Path: p, AddedLines: lines / len(paths), DiffText: "+code\n"}
	}
	return models.Commit{
		SHA:         message + ts.Format(time.RFC3339),
		AuthorID:    &id,
		AuthorEmail: email,
		Message:     message,
		Timestamp:   ts,
		Files:       files,
	}
}

func newService(t *testing.T, commits []models.Commit, rate ChunkRater) *Service {
	t.Helper()
	return New(Deps{
		Repos: &fakeRepos{path: t.TempDir()},
		Loader: func(context.Context, string, map[string]int64) ([]models.Commit, error) {
			return commits, nil
		},
		Chunker:    chunker.New(chunker.DefaultConfig()),
		Filter:     prefilter.MustNew(),
		Rater:      rate,
		Calculator: cqi.New(models.ComponentWeights{}, true),
	})
}

func analyze(t *testing.T, svc *Service, members []models.Member) *models.FairnessReport {
	t.Helper()
	report, err := svc.Analyze(context.Background(), Request{
		Team:         team(members...),
		ProjectStart: projectStart,
		ProjectEnd:   projectEnd,
	})
	require.NoError(t, err)
	require.NotNil(t, report.CQIResult)
	return report
}

func TestAnalyze_PerfectBalance(t *testing.T) {
	// Two members, four substantial commits each, spread every six days,
	// always touching the same shared files.
	var commits []models.Commit
	for i := 0; i < 4; i++ {
		ts := projectStart.AddDate(0, 0, i*6+1)
		commits = append(commits,
			commitBy(1, "ada@uni.example", "feature a", ts, 80),
			commitBy(2, "grace@uni.example", "feature b", ts.Add(2*time.Hour), 80),
		)
	}

	svc := newService(t, commits, &fixedRater{byline: strongRating()})
	report := analyze(t, svc, []models.Member{member(1, "ada@uni.example"), member(2, "grace@uni.example")})

	assert.GreaterOrEqual(t, report.CQIResult.CQI, 80.0)
	assert.Empty(t, report.CQIResult.Penalties)
	assert.Empty(t, report.Flags)
	assert.False(t, report.RequiresManualReview)
	assert.InDelta(t, 0.5, report.EffortShareByAuthor[1], 0.01)
	assert.InDelta(t, 100, report.BalanceScore, 1e-9)
}

func TestAnalyze_SoloContributor(t *testing.T) {
	var commits []models.Commit
	for i := 0; i < 10; i++ {
		ts := projectStart.AddDate(0, 0, i*3+1)
		commits = append(commits, commitBy(1, "ada@uni.example", "feature work", ts, 120))
	}
	commits = append(commits, commitBy(2, "grace@uni.example", "tiny contribution", projectStart.AddDate(0, 0, 20), 48))

	rate := &fixedRater{
		byline: models.EffortRating{EffortScore: 9, Complexity: 8, Novelty: 8, Label: models.LabelFeature, Confidence: 0.9},
		ratings: map[string]models.EffortRating{
			"tiny contribution": {EffortScore: 2, Complexity: 1, Novelty: 1, Label: models.LabelTrivial, Confidence: 0.9},
		},
	}
	svc := newService(t, commits, rate)
	report := analyze(t, svc, []models.Member{member(1, "ada@uni.example"), member(2, "grace@uni.example")})

	assert.Greater(t, report.EffortShareByAuthor[1], 0.85)
	require.NotEmpty(t, report.CQIResult.Penalties)
	assert.Equal(t, models.PenaltySoloDevelopment, report.CQIResult.Penalties[0].Kind)
	assert.Zero(t, report.CQIResult.CQI)
	assert.Contains(t, report.Flags, models.FlagUnevenDistribution)
	assert.True(t, report.RequiresManualReview)
}

func TestAnalyze_LateDump(t *testing.T) {
	var commits []models.Commit
	// Four small early commits by A.
	for i := 0; i < 4; i++ {
		commits = append(commits, commitBy(1, "ada@uni.example", "early work", projectStart.AddDate(0, 0, i*7+1), 30))
	}
	// Four large commits by A in the final 12 hours.
	for i := 0; i < 4; i++ {
		ts := projectEnd.Add(-time.Duration(12-i*2) * time.Hour)
		commits = append(commits, commitBy(1, "ada@uni.example", "final push", ts, 400))
	}
	commits = append(commits, commitBy(2, "grace@uni.example", "deadline touch-up", projectEnd.Add(-time.Hour), 20))

	rate := &fixedRater{
		byline: strongRating(),
		ratings: map[string]models.EffortRating{
			"early work":        {EffortScore: 3, Complexity: 3, Novelty: 3, Label: models.LabelFeature, Confidence: 0.9},
			"deadline touch-up": {EffortScore: 2, Complexity: 2, Novelty: 2, Label: models.LabelFeature, Confidence: 0.9},
		},
	}
	svc := newService(t, commits, rate)
	report := analyze(t, svc, []models.Member{member(1, "ada@uni.example"), member(2, "grace@uni.example")})

	var kinds []models.PenaltyKind
	for _, p := range report.CQIResult.Penalties {
		kinds = append(kinds, p.Kind)
	}
	assert.Contains(t, kinds, models.PenaltyLateWork)
	assert.Contains(t, report.Flags, models.FlagUnevenDistribution)
	assert.Contains(t, report.Flags, models.FlagLateWorkConcentration)
}

func TestAnalyze_ExternalContributorTagged(t *testing.T) {
	commits := []models.Commit{
		commitBy(1, "ada@uni.example", "feature work", projectStart.AddDate(0, 0, 3), 100),
		commitBy(2, "grace@uni.example", "more feature work", projectStart.AddDate(0, 0, 4), 100),
	}
	// Tutor commit: no platform author ID, unknown email.
	tutor := commitBy(9, "tutor@staff.example", "fix student build", projectStart.AddDate(0, 0, 5), 60)
	tutor.AuthorID = nil
	commits = append(commits, tutor)

	svc := newService(t, commits, &fixedRater{byline: strongRating()})
	report := analyze(t, svc, []models.Member{member(1, "ada@uni.example"), member(2, "grace@uni.example")})

	external := 0
	for _, ac := range report.AnalyzedChunks {
		if ac.IsExternalContributor {
			external++
			assert.Equal(t, "tutor@staff.example", ac.Chunk.AuthorEmail)
		}
	}
	assert.Equal(t, 1, external)
	_, inAggregates := report.EffortByAuthor[9]
	assert.False(t, inAggregates)
}

func TestAnalyze_MemberEmailCaseFolded(t *testing.T) {
	c := commitBy(1, "ADA@Uni.Example", "feature work", projectStart.AddDate(0, 0, 3), 100)
	c.AuthorID = nil
	commits := []models.Commit{
		c,
		commitBy(2, "grace@uni.example", "more work", projectStart.AddDate(0, 0, 4), 100),
	}

	svc := newService(t, commits, &fixedRater{byline: strongRating()})
	report := analyze(t, svc, []models.Member{member(1, "ada@uni.example"), member(2, "grace@uni.example")})

	for _, ac := range report.AnalyzedChunks {
		assert.False(t, ac.IsExternalContributor, "case-variant member email must not be external")
	}
}

func TestAnalyze_StagesAndMetadata(t *testing.T) {
	commits := []models.Commit{
		commitBy(1, "ada@uni.example", "feature work", projectStart.AddDate(0, 0, 3), 100),
		commitBy(2, "grace@uni.example", "more work", projectStart.AddDate(0, 0, 4), 100),
	}
	svc := newService(t, commits, &fixedRater{byline: strongRating()})

	var stages []models.AnalysisStage
	report, err := svc.Analyze(context.Background(), Request{
		Team:         team(member(1, "ada@uni.example"), member(2, "grace@uni.example")),
		ProjectStart: projectStart,
		ProjectEnd:   projectEnd,
		OnStage:      func(st models.AnalysisStage) { stages = append(stages, st) },
	})
	require.NoError(t, err)

	assert.Equal(t, []models.AnalysisStage{
		models.StageDownloading,
		models.StageGitAnalyzing,
		models.StageAIAnalyzing,
		models.StageDone,
	}, stages)

	meta := report.Metadata
	assert.Equal(t, 2, meta.CommitCount)
	assert.Equal(t, 2, meta.RatedChunks)
	assert.Equal(t, 2, meta.TokenTotals.LLMCalls)
	assert.Equal(t, 240, meta.TokenTotals.TotalTokens)
	assert.False(t, meta.RaterDisabled)
}

func TestAnalyze_SyncFailure(t *testing.T) {
	svc := New(Deps{
		Repos:      failingRepos{},
		Loader:     func(context.Context, string, map[string]int64) ([]models.Commit, error) { return nil, nil },
		Chunker:    chunker.New(chunker.DefaultConfig()),
		Filter:     prefilter.MustNew(),
		Rater:      &fixedRater{},
		Calculator: cqi.New(models.ComponentWeights{}, true),
	})

	_, err := svc.Analyze(context.Background(), Request{Team: team(member(1, "a@uni.example"))})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "syncing repository")
}

func TestErrorReport(t *testing.T) {
	report := ErrorReport(team(member(1, "a@uni.example")), errors.New("repository unreachable"))
	assert.True(t, report.RequiresManualReview)
	assert.Equal(t, []models.Flag{models.FlagAnalysisError}, report.Flags)
	require.NotNil(t, report.CQIResult)
	assert.Zero(t, report.CQIResult.CQI)
	assert.Equal(t, "repository unreachable", report.CQIResult.Reason)
}
