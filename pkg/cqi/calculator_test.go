package cqi

import (
	"testing"
	"time"

	"github.com/fairlens/fairlens/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	projectStart = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	projectEnd   = time.Date(2026, 4, 26, 0, 0, 0, 0, time.UTC) // 8 weeks
)

func ratedChunk(authorID int64, ts time.Time, lines int, rating models.EffortRating, paths ...string) models.AnalyzedChunk {
	if len(paths) == 0 {
		paths = []string{"src/core.go"}
	}
	files := make([]models.FileChange, len(paths))
	for i, p := range paths {
		files[i] = models.FileChange{Path: p, AddedLines: lines / len(paths)}
	}
	return models.AnalyzedChunk{
		Chunk: models.Chunk{
			SHA:         ts.Format(time.RFC3339Nano),
			AuthorID:    &authorID,
			Timestamp:   ts,
			Files:       files,
			LinesAdded:  lines,
			TotalChunks: 1,
		},
		Rating: rating,
	}
}

func solidRating() models.EffortRating {
	return models.EffortRating{EffortScore: 6, Complexity: 6, Novelty: 5, Label: models.LabelFeature, Confidence: 0.9}
}

// balancedChunks spreads identical work across authors and weeks.
func balancedChunks(authors []int64) []models.AnalyzedChunk {
	var chunks []models.AnalyzedChunk
	for week := 0; week < 8; week++ {
		ts := projectStart.AddDate(0, 0, week*7+2)
		for _, id := range authors {
			chunks = append(chunks, ratedChunk(id, ts, 80, solidRating(), "src/core.go", "src/api.go"))
		}
	}
	return chunks
}

func TestCalculate_PerfectBalance(t *testing.T) {
	calc := New(models.ComponentWeights{}, true)

	res := calc.Calculate(Input{
		Chunks:       balancedChunks([]int64{1, 2, 3}),
		TeamSize:     3,
		ProjectStart: projectStart,
		ProjectEnd:   projectEnd,
	})

	assert.Empty(t, res.Reason)
	assert.Empty(t, res.Penalties)
	assert.InDelta(t, 100, res.Components.EffortBalance, 1e-9)
	assert.InDelta(t, 100, res.Components.LocBalance, 1e-9)
	assert.InDelta(t, 100, res.Components.OwnershipSpread, 1e-9)
	assert.GreaterOrEqual(t, res.CQI, 80.0)
}

func TestCalculate_SoloDominance(t *testing.T) {
	calc := New(models.ComponentWeights{}, true)

	// Author 1 does ~95% of the work; author 2 makes one token commit.
	chunks := balancedChunks([]int64{1})
	chunks = append(chunks, ratedChunk(2, projectStart.AddDate(0, 0, 10), 5,
		models.EffortRating{EffortScore: 2, Complexity: 2, Novelty: 1, Label: models.LabelFeature, Confidence: 0.8}))

	res := calc.Calculate(Input{
		Chunks:       chunks,
		TeamSize:     2,
		ProjectStart: projectStart,
		ProjectEnd:   projectEnd,
	})

	require.Len(t, res.Penalties, 1)
	assert.Equal(t, models.PenaltySoloDevelopment, res.Penalties[0].Kind)
	assert.Zero(t, res.Penalties[0].Multiplier)
	assert.Zero(t, res.CQI)
	// The base score and components are still reported for the UI.
	assert.Greater(t, res.BaseScore, 0.0)
}

func TestCalculate_LateWorkPenalty(t *testing.T) {
	calc := New(models.ComponentWeights{}, true)

	// All work lands in the last three days of an eight-week project.
	lastDays := projectEnd.AddDate(0, 0, -3)
	var chunks []models.AnalyzedChunk
	for i := 0; i < 6; i++ {
		id := int64(1 + i%2)
		chunks = append(chunks, ratedChunk(id, lastDays.Add(time.Duration(i)*4*time.Hour), 120, solidRating()))
	}

	res := calc.Calculate(Input{
		Chunks:       chunks,
		TeamSize:     2,
		ProjectStart: projectStart,
		ProjectEnd:   projectEnd,
	})

	var kinds []models.PenaltyKind
	for _, p := range res.Penalties {
		kinds = append(kinds, p.Kind)
	}
	assert.Contains(t, kinds, models.PenaltyLateWork)
	assert.InDelta(t, 0.8, res.PenaltyMultiplier, 1e-9)
	assert.InDelta(t, res.BaseScore*0.8, res.CQI, 1e-9)
}

func TestCalculate_PenaltiesReportedButNotAppliedWhenDisabled(t *testing.T) {
	calc := New(models.ComponentWeights{}, false)

	chunks := balancedChunks([]int64{1})
	chunks = append(chunks, ratedChunk(2, projectStart.AddDate(0, 0, 10), 5, solidRating()))

	res := calc.Calculate(Input{
		Chunks:       chunks,
		TeamSize:     2,
		ProjectStart: projectStart,
		ProjectEnd:   projectEnd,
	})

	require.NotEmpty(t, res.Penalties)
	assert.InDelta(t, 1.0, res.PenaltyMultiplier, 1e-9)
	assert.InDelta(t, res.BaseScore, res.CQI, 1e-9)
}

func TestCalculate_EarlyReturns(t *testing.T) {
	calc := New(models.ComponentWeights{}, true)

	t.Run("team of one", func(t *testing.T) {
		res := calc.Calculate(Input{Chunks: balancedChunks([]int64{1}), TeamSize: 1})
		assert.Zero(t, res.CQI)
		assert.Equal(t, ReasonSingleContributor, res.Reason)
	})

	t.Run("no chunks", func(t *testing.T) {
		res := calc.Calculate(Input{TeamSize: 3})
		assert.Zero(t, res.CQI)
		assert.Equal(t, ReasonNoProductiveWork, res.Reason)
	})

	t.Run("missed paired sessions", func(t *testing.T) {
		res := calc.Calculate(Input{
			Chunks:     balancedChunks([]int64{1, 2}),
			TeamSize:   2,
			Attendance: &Attendance{SessionsAttended: 1, SessionsTotal: 3},
		})
		assert.Zero(t, res.CQI)
		assert.Equal(t, ReasonNoPairProgramming, res.Reason)
	})

	t.Run("single active author", func(t *testing.T) {
		res := calc.Calculate(Input{
			Chunks:       balancedChunks([]int64{1}),
			TeamSize:     3,
			ProjectStart: projectStart,
			ProjectEnd:   projectEnd,
		})
		assert.Zero(t, res.CQI)
		assert.Equal(t, ReasonSingleContributor, res.Reason)
	})
}

func TestCalculate_ExternalContributorsExcluded(t *testing.T) {
	calc := New(models.ComponentWeights{}, true)

	chunks := balancedChunks([]int64{1, 2})
	external := ratedChunk(99, projectStart.AddDate(0, 0, 5), 5000, solidRating())
	external.IsExternalContributor = true
	chunks = append(chunks, external)

	res := calc.Calculate(Input{
		Chunks:       chunks,
		TeamSize:     2,
		ProjectStart: projectStart,
		ProjectEnd:   projectEnd,
	})

	// The giant external chunk must not skew the balance components.
	assert.InDelta(t, 100, res.Components.EffortBalance, 1e-9)
	assert.InDelta(t, 100, res.Components.LocBalance, 1e-9)
	assert.Empty(t, res.Penalties)
}

func TestCalculate_PairComponentRenormalizesWeights(t *testing.T) {
	calc := New(models.ComponentWeights{}, true)
	in := Input{
		Chunks:       balancedChunks([]int64{1, 2}),
		TeamSize:     2,
		ProjectStart: projectStart,
		ProjectEnd:   projectEnd,
	}

	without := calc.Calculate(in)

	perfect := 100.0
	in.Pair = &PairResult{Status: PairFound, Score: &perfect, Covered: 3, Total: 3}
	with := calc.Calculate(in)

	require.NotNil(t, with.Components.PairProgramming)
	assert.InDelta(t, 100, *with.Components.PairProgramming, 1e-9)
	// Base stays within [0,100] and a perfect pair score cannot lower it
	// below the four-component base by more than the re-normalization.
	assert.LessOrEqual(t, with.BaseScore, 100.0)
	assert.GreaterOrEqual(t, with.BaseScore, without.BaseScore*0.9)

	zero := 0.0
	in.Pair = &PairResult{Status: PairFound, Score: &zero}
	lowered := calc.Calculate(in)
	assert.Less(t, lowered.BaseScore, without.BaseScore)
}

func TestCalculate_HighTrivialAndLowConfidence(t *testing.T) {
	calc := New(models.ComponentWeights{}, true)

	trivial := models.EffortRating{EffortScore: 1, Complexity: 1, Novelty: 1, Label: models.LabelTrivial, Confidence: 0.3}
	var chunks []models.AnalyzedChunk
	for week := 0; week < 8; week++ {
		ts := projectStart.AddDate(0, 0, week*7+1)
		chunks = append(chunks,
			ratedChunk(1, ts, 20, trivial),
			ratedChunk(2, ts, 20, trivial),
		)
	}

	res := calc.Calculate(Input{
		Chunks:       chunks,
		TeamSize:     2,
		ProjectStart: projectStart,
		ProjectEnd:   projectEnd,
	})

	var kinds []models.PenaltyKind
	for _, p := range res.Penalties {
		kinds = append(kinds, p.Kind)
	}
	assert.Contains(t, kinds, models.PenaltyHighTrivial)
	assert.Contains(t, kinds, models.PenaltyLowConfidence)
	assert.InDelta(t, 0.85*0.9, res.PenaltyMultiplier, 1e-9)
}

func TestCalculateFallback(t *testing.T) {
	calc := New(models.ComponentWeights{}, true)

	id1, id2 := int64(1), int64(2)
	chunks := []models.Chunk{
		{AuthorID: &id1, LinesAdded: 100, Timestamp: projectStart},
		{AuthorID: &id2, LinesAdded: 100, Timestamp: projectStart},
	}

	res := calc.CalculateFallback(chunks, 2, nil)
	assert.InDelta(t, 100, res.Components.LocBalance, 1e-9)
	assert.InDelta(t, 100, res.CQI, 1e-9)
	assert.Zero(t, res.Components.EffortBalance)

	solo := calc.CalculateFallback(chunks[:1], 2, nil)
	assert.Zero(t, solo.CQI)
	assert.Equal(t, ReasonSingleContributor, solo.Reason)
}

func TestOwnershipSpread(t *testing.T) {
	id1, id2 := int64(1), int64(2)
	mk := func(id *int64, path string) models.Chunk {
		return models.Chunk{AuthorID: id, Files: []models.FileChange{{Path: path, AddedLines: 10}}}
	}

	t.Run("no significant files is neutral", func(t *testing.T) {
		chunks := []models.Chunk{mk(&id1, "a.go"), mk(&id2, "b.go")}
		assert.InDelta(t, 75, ownershipSpreadChunks(chunks, 2), 1e-9)
	})

	t.Run("shared significant file", func(t *testing.T) {
		chunks := []models.Chunk{
			mk(&id1, "core.go"), mk(&id1, "core.go"), mk(&id2, "core.go"),
		}
		assert.InDelta(t, 100, ownershipSpreadChunks(chunks, 2), 1e-9)
	})

	t.Run("siloed significant file", func(t *testing.T) {
		chunks := []models.Chunk{
			mk(&id1, "core.go"), mk(&id1, "core.go"), mk(&id1, "core.go"),
		}
		assert.InDelta(t, 50, ownershipSpreadChunks(chunks, 2), 1e-9)
	})

	t.Run("effective team size capped at four", func(t *testing.T) {
		var chunks []models.Chunk
		for i := int64(1); i <= 4; i++ {
			id := i
			chunks = append(chunks, mk(&id, "core.go"))
		}
		// Four distinct authors on one significant file scores full marks
		// even for a six-person team.
		assert.InDelta(t, 100, ownershipSpreadChunks(chunks, 6), 1e-9)
	})
}

func TestTemporalSpread(t *testing.T) {
	t.Run("even weekly effort scores high", func(t *testing.T) {
		score := temporalSpread(balancedChunks([]int64{1}), projectStart, projectEnd)
		assert.Greater(t, score, 90.0)
	})

	t.Run("single burst scores low", func(t *testing.T) {
		var chunks []models.AnalyzedChunk
		for i := 0; i < 8; i++ {
			chunks = append(chunks, ratedChunk(1, projectStart.AddDate(0, 0, 2), 80, solidRating()))
		}
		score := temporalSpread(chunks, projectStart, projectEnd)
		assert.Less(t, score, 10.0)
	})

	t.Run("degenerate period is neutral", func(t *testing.T) {
		assert.InDelta(t, 50, temporalSpread(nil, projectEnd, projectStart), 1e-9)
	})
}

func TestEffortShares(t *testing.T) {
	shares := EffortShares(map[int64]float64{1: 30, 2: 10})
	assert.InDelta(t, 0.75, shares[1], 1e-9)
	assert.InDelta(t, 0.25, shares[2], 1e-9)
	assert.Empty(t, EffortShares(map[int64]float64{1: 0}))
}
