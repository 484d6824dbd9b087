package cqi

import (
	"fmt"
	"math"
	"time"

	"github.com/fairlens/fairlens/pkg/models"
	"gonum.org/v1/gonum/stat"
)

// Early-return reasons carried on zero-scored results.
const (
	ReasonSingleContributor = "single-contributor"
	ReasonNoProductiveWork  = "no-productive-work"
	ReasonNoPairProgramming = "no-pair-programming"
)

// Default component weights. The four primary weights sum to 1.0 on
// their own; when the pair-programming component participates, the five
// weights are re-normalized by their sum.
func DefaultWeights() models.ComponentWeights {
	return models.ComponentWeights{
		Effort:          0.40,
		Loc:             0.25,
		Temporal:        0.20,
		Ownership:       0.15,
		PairProgramming: 0.10,
	}
}

// Attendance is the paired-session attendance summary used for the
// attendance policy override.
type Attendance struct {
	SessionsAttended int
	SessionsTotal    int
}

// Input bundles everything the calculator needs for one team.
type Input struct {
	Chunks        []models.AnalyzedChunk
	TeamSize      int
	ProjectStart  time.Time
	ProjectEnd    time.Time
	FilterSummary *models.FilterSummary
	TeamName      string

	// Pair is the pair-programming result; nil means not computed.
	Pair *PairResult

	// Attendance is non-nil when the team was found in the attendance
	// sheets; fewer than two attended paired sessions zero the CQI.
	Attendance *Attendance
}

// Calculator computes CQI results. Safe for concurrent use.
type Calculator struct {
	weights          models.ComponentWeights
	penaltiesEnabled bool
}

// New creates a Calculator. Zero weights fall back to the defaults.
func New(weights models.ComponentWeights, penaltiesEnabled bool) *Calculator {
	if weights == (models.ComponentWeights{}) {
		weights = DefaultWeights()
	}
	return &Calculator{weights: weights, penaltiesEnabled: penaltiesEnabled}
}

// Calculate aggregates per-author effort and LoC, computes the component
// scores, applies penalties, and returns the final CQI.
func (c *Calculator) Calculate(in Input) models.CQIResult {
	res := models.CQIResult{
		Weights:           c.weights,
		PenaltyMultiplier: 1.0,
		FilterSummary:     in.FilterSummary,
	}

	if in.TeamSize <= 1 {
		res.Reason = ReasonSingleContributor
		return res
	}
	if len(in.Chunks) == 0 {
		res.Reason = ReasonNoProductiveWork
		return res
	}
	if in.Attendance != nil && in.Attendance.SessionsAttended < 2 {
		res.Reason = ReasonNoPairProgramming
		return res
	}

	agg := aggregate(in.Chunks)
	if len(agg.effortByAuthor) <= 1 {
		res.Reason = ReasonSingleContributor
		return res
	}

	res.Components.EffortBalance = 100 * (1 - Gini(valuesOf(agg.effortByAuthor)))
	res.Components.LocBalance = 100 * (1 - Gini(valuesOf(agg.locByAuthor)))
	res.Components.TemporalSpread = temporalSpread(in.Chunks, in.ProjectStart, in.ProjectEnd)
	res.Components.OwnershipSpread = ownershipSpread(in.Chunks, in.TeamSize)

	if in.Pair != nil && in.Pair.Status == PairFound && in.Pair.Score != nil {
		score := *in.Pair.Score
		res.Components.PairProgramming = &score
	}

	res.BaseScore = c.baseScore(res.Components)
	res.Penalties = c.evaluatePenalties(in, agg)

	multiplier := 1.0
	for _, p := range res.Penalties {
		multiplier *= p.Multiplier
	}
	if c.penaltiesEnabled {
		res.PenaltyMultiplier = multiplier
	}
	res.CQI = clamp(res.BaseScore*res.PenaltyMultiplier, 0, 100)
	return res
}

// CalculateFallback scores a team from git signals alone when the LLM is
// unavailable: the CQI collapses to the LoC balance component.
func (c *Calculator) CalculateFallback(chunks []models.Chunk, teamSize int, summary *models.FilterSummary) models.CQIResult {
	res := models.CQIResult{
		Weights:           c.weights,
		PenaltyMultiplier: 1.0,
		FilterSummary:     summary,
	}
	if teamSize <= 1 {
		res.Reason = ReasonSingleContributor
		return res
	}
	if len(chunks) == 0 {
		res.Reason = ReasonNoProductiveWork
		return res
	}

	loc := make(map[int64]float64)
	for _, chunk := range chunks {
		if chunk.AuthorID == nil {
			continue
		}
		loc[*chunk.AuthorID] += float64(chunk.TotalLinesChanged())
	}
	if len(loc) <= 1 {
		res.Reason = ReasonSingleContributor
		return res
	}

	res.Components.LocBalance = 100 * (1 - Gini(valuesOf(loc)))
	res.BaseScore = res.Components.LocBalance
	res.CQI = clamp(res.BaseScore, 0, 100)
	return res
}

// CalculateGitOnly computes the quantitative components from raw chunks
// (no effort weighting) so partial results can be shown while the LLM
// pass is still running. Effort balance stays 0.
func (c *Calculator) CalculateGitOnly(chunks []models.Chunk, teamSize int, start, end time.Time, pair *PairResult) models.ComponentScores {
	var components models.ComponentScores

	loc := make(map[int64]float64)
	analyzed := make([]models.AnalyzedChunk, len(chunks))
	for i, chunk := range chunks {
		if chunk.AuthorID != nil {
			loc[*chunk.AuthorID] += float64(chunk.TotalLinesChanged())
		}
		// Line churn stands in for effort in the temporal profile.
		analyzed[i] = models.AnalyzedChunk{Chunk: chunk}
	}

	if len(loc) > 0 {
		components.LocBalance = 100 * (1 - Gini(valuesOf(loc)))
	}
	components.TemporalSpread = temporalSpreadBy(analyzed, start, end, func(a models.AnalyzedChunk) float64 {
		return float64(a.Chunk.TotalLinesChanged())
	})
	components.OwnershipSpread = ownershipSpreadChunks(chunks, teamSize)

	if pair != nil && pair.Status == PairFound && pair.Score != nil {
		score := *pair.Score
		components.PairProgramming = &score
	}
	return components
}

// baseScore combines the weighted components. With pair programming
// present, all five weights are re-normalized by their sum so the base
// stays within [0,100]; without it the four primary weights apply as-is.
func (c *Calculator) baseScore(comp models.ComponentScores) float64 {
	w := c.weights
	score := w.Effort*comp.EffortBalance +
		w.Loc*comp.LocBalance +
		w.Temporal*comp.TemporalSpread +
		w.Ownership*comp.OwnershipSpread
	if comp.PairProgramming == nil {
		return score
	}
	score += w.PairProgramming * *comp.PairProgramming
	total := w.Effort + w.Loc + w.Temporal + w.Ownership + w.PairProgramming
	if total <= 0 {
		return 0
	}
	return score / total
}

// authorAggregates holds the per-author sums the components and
// penalties work from. External-contributor chunks are excluded: they
// belong to no registered team member.
type authorAggregates struct {
	effortByAuthor map[int64]float64
	locByAuthor    map[int64]float64
	totalEffort    float64
	trivialCount   int
	lowConfidence  int
	ratedCount     int
}

func aggregate(chunks []models.AnalyzedChunk) authorAggregates {
	agg := authorAggregates{
		effortByAuthor: make(map[int64]float64),
		locByAuthor:    make(map[int64]float64),
	}
	for _, ac := range chunks {
		if ac.IsExternalContributor || ac.Chunk.AuthorID == nil {
			continue
		}
		id := *ac.Chunk.AuthorID
		effort := ac.Rating.WeightedEffort()
		agg.effortByAuthor[id] += effort
		agg.locByAuthor[id] += float64(ac.Chunk.TotalLinesChanged())
		agg.totalEffort += effort
		agg.ratedCount++
		if ac.Rating.Label == models.LabelTrivial {
			agg.trivialCount++
		}
		if ac.Rating.Confidence < 0.6 {
			agg.lowConfidence++
		}
	}
	return agg
}

// EffortShares converts per-author effort sums into shares of the total.
func EffortShares(effortByAuthor map[int64]float64) map[int64]float64 {
	total := 0.0
	for _, v := range effortByAuthor {
		total += v
	}
	shares := make(map[int64]float64, len(effortByAuthor))
	if total == 0 {
		return shares
	}
	for id, v := range effortByAuthor {
		shares[id] = v / total
	}
	return shares
}

// temporalSpread scores how evenly weighted effort is spread over weekly
// buckets of the project period via the coefficient of variation.
func temporalSpread(chunks []models.AnalyzedChunk, start, end time.Time) float64 {
	return temporalSpreadBy(chunks, start, end, func(a models.AnalyzedChunk) float64 {
		return a.Rating.WeightedEffort()
	})
}

func temporalSpreadBy(chunks []models.AnalyzedChunk, start, end time.Time, weight func(models.AnalyzedChunk) float64) float64 {
	const neutral = 50

	if len(chunks) == 0 || !end.After(start) {
		return neutral
	}
	days := end.Sub(start).Hours() / 24
	weeks := int(math.Ceil(days / 7))
	if weeks < 1 {
		weeks = 1
	}

	buckets := make([]float64, weeks)
	for _, ac := range chunks {
		if ac.IsExternalContributor {
			continue
		}
		idx := int(ac.Chunk.Timestamp.Sub(start).Hours() / 24 / 7)
		if idx < 0 {
			idx = 0
		}
		if idx >= weeks {
			idx = weeks - 1
		}
		buckets[idx] += weight(ac)
	}

	mean := stat.Mean(buckets, nil)
	if mean == 0 || math.IsNaN(mean) {
		return neutral
	}
	cv := stat.PopStdDev(buckets, nil) / mean
	return 100 * (1 - math.Min(cv/2, 1))
}

// ownershipSpread scores how many authors touched the significant files
// (three or more commits). Team size is capped at four for the purposes
// of shared ownership.
func ownershipSpread(chunks []models.AnalyzedChunk, teamSize int) float64 {
	raw := make([]models.Chunk, 0, len(chunks))
	for _, ac := range chunks {
		if ac.IsExternalContributor {
			continue
		}
		raw = append(raw, ac.Chunk)
	}
	return ownershipSpreadChunks(raw, teamSize)
}

func ownershipSpreadChunks(chunks []models.Chunk, teamSize int) float64 {
	const noSignificantFiles = 75

	fileAuthors := make(map[string]map[int64]bool)
	fileCommits := make(map[string]int)
	for _, chunk := range chunks {
		if chunk.AuthorID == nil {
			continue
		}
		for _, f := range chunk.Files {
			fileCommits[f.Path]++
			if fileAuthors[f.Path] == nil {
				fileAuthors[f.Path] = make(map[int64]bool)
			}
			fileAuthors[f.Path][*chunk.AuthorID] = true
		}
	}

	effective := teamSize
	if effective > 4 {
		effective = 4
	}
	if effective < 1 {
		effective = 1
	}

	significant := 0
	sum := 0
	for path, count := range fileCommits {
		if count < 3 {
			continue
		}
		significant++
		authors := len(fileAuthors[path])
		if authors > effective {
			authors = effective
		}
		sum += authors
	}
	if significant == 0 {
		return noSignificantFiles
	}
	return 100 * float64(sum) / float64(significant*effective)
}

// evaluatePenalties runs every penalty rule; all that apply fire.
func (c *Calculator) evaluatePenalties(in Input, agg authorAggregates) []models.Penalty {
	var penalties []models.Penalty

	shares := EffortShares(agg.effortByAuthor)
	maxShare := 0.0
	var maxAuthor int64
	for id, share := range shares {
		if share > maxShare {
			maxShare = share
			maxAuthor = id
		}
	}

	switch {
	case maxShare > 0.85:
		penalties = append(penalties, models.Penalty{
			Kind:       models.PenaltySoloDevelopment,
			Multiplier: 0.0,
			Reason:     fmt.Sprintf("author %d holds %.0f%% of the effort", maxAuthor, 100*maxShare),
		})
	case maxShare > 0.70:
		penalties = append(penalties, models.Penalty{
			Kind:       models.PenaltySevereImbalance,
			Multiplier: 0.7,
			Reason:     fmt.Sprintf("author %d holds %.0f%% of the effort", maxAuthor, 100*maxShare),
		})
	}

	if agg.ratedCount > 0 {
		if ratio := float64(agg.trivialCount) / float64(agg.ratedCount); ratio > 0.50 {
			penalties = append(penalties, models.Penalty{
				Kind:       models.PenaltyHighTrivial,
				Multiplier: 0.85,
				Reason:     fmt.Sprintf("%.0f%% of chunks rated trivial", 100*ratio),
			})
		}
		if ratio := float64(agg.lowConfidence) / float64(agg.ratedCount); ratio > 0.40 {
			penalties = append(penalties, models.Penalty{
				Kind:       models.PenaltyLowConfidence,
				Multiplier: 0.9,
				Reason:     fmt.Sprintf("%.0f%% of ratings below 0.6 confidence", 100*ratio),
			})
		}
	}

	if lateRatio := lateWorkRatio(in.Chunks, in.ProjectStart, in.ProjectEnd); lateRatio > 0.50 {
		penalties = append(penalties, models.Penalty{
			Kind:       models.PenaltyLateWork,
			Multiplier: 0.8,
			Reason:     fmt.Sprintf("%.0f%% of the effort landed in the final fifth of the project", 100*lateRatio),
		})
	}

	return penalties
}

// lateWorkRatio is the share of weighted effort in the final 20% of the
// project period.
func lateWorkRatio(chunks []models.AnalyzedChunk, start, end time.Time) float64 {
	if !end.After(start) {
		return 0
	}
	cutoff := start.Add(time.Duration(0.8 * float64(end.Sub(start))))

	total, late := 0.0, 0.0
	for _, ac := range chunks {
		if ac.IsExternalContributor {
			continue
		}
		effort := ac.Rating.WeightedEffort()
		total += effort
		if ac.Chunk.Timestamp.After(cutoff) {
			late += effort
		}
	}
	if total == 0 {
		return 0
	}
	return late / total
}

func valuesOf(m map[int64]float64) []float64 {
	values := make([]float64, 0, len(m))
	for _, v := range m {
		values = append(values, v)
	}
	return values
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
