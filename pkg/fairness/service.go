// Package fairness runs the per-team analysis pipeline: load commits,
// chunk, pre-filter, rate, and score, producing a FairnessReport.
package fairness

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/fairlens/fairlens/pkg/chunker"
	"github.com/fairlens/fairlens/pkg/cqi"
	"github.com/fairlens/fairlens/pkg/gitload"
	"github.com/fairlens/fairlens/pkg/models"
	"github.com/fairlens/fairlens/pkg/prefilter"
)

// RepoProvider syncs a team repository into the local cache and returns
// its path. Satisfied by gitload.Cache.
type RepoProvider interface {
	Sync(ctx context.Context, slug, uri string) (string, error)
}

// ChunkRater rates chunk sets. Satisfied by rater.Rater.
type ChunkRater interface {
	Enabled() bool
	RateAll(ctx context.Context, chunks []models.Chunk) ([]models.AnalyzedChunk, models.TokenTotals)
}

// CommitLoader reads a repository's commits. gitload.Load in production.
type CommitLoader func(ctx context.Context, path string, authorsBySHA map[string]int64) ([]models.Commit, error)

// Deps are the pipeline collaborators.
type Deps struct {
	Repos      RepoProvider
	Loader     CommitLoader
	Chunker    *chunker.Chunker
	Filter     *prefilter.Filter
	Rater      ChunkRater
	Calculator *cqi.Calculator
}

// Service analyzes one team at a time; a Service instance is safe for
// concurrent use across teams.
type Service struct {
	repos  RepoProvider
	load   CommitLoader
	chunks *chunker.Chunker
	filter *prefilter.Filter
	rater  ChunkRater
	calc   *cqi.Calculator
}

// New wires the pipeline. A nil Loader defaults to gitload.Load.
func New(d Deps) *Service {
	load := d.Loader
	if load == nil {
		load = gitload.Load
	}
	return &Service{
		repos:  d.Repos,
		load:   load,
		chunks: d.Chunker,
		filter: d.Filter,
		rater:  d.Rater,
		calc:   d.Calculator,
	}
}

// Request is one team's analysis input.
type Request struct {
	Team         models.Team
	AuthorsBySHA map[string]int64
	ProjectStart time.Time
	ProjectEnd   time.Time

	// PairedSessions are the session dates with both students recorded
	// present; empty means no attendance record exists for the team and
	// the pair component stays unavailable.
	PairedSessions []time.Time

	// Attendance is non-nil when the team appears in the uploaded
	// attendance sheets.
	Attendance *cqi.Attendance

	// OnStage, when set, observes stage progression.
	OnStage func(models.AnalysisStage)
}

// Analyze runs the full pipeline for one team.
func (s *Service) Analyze(ctx context.Context, req Request) (*models.FairnessReport, error) {
	started := time.Now()
	stage := func(st models.AnalysisStage) {
		if req.OnStage != nil {
			req.OnStage(st)
		}
	}

	stage(models.StageDownloading)
	path, err := s.repos.Sync(ctx, teamSlug(req.Team), req.Team.RepositoryURI)
	if err != nil {
		return nil, fmt.Errorf("syncing repository for team %q: %w", req.Team.Name, err)
	}

	stage(models.StageGitAnalyzing)
	commits, err := s.load(ctx, path, req.AuthorsBySHA)
	if err != nil {
		return nil, fmt.Errorf("loading commits for team %q: %w", req.Team.Name, err)
	}
	allChunks := s.chunks.Process(commits)
	filtered := s.filter.Apply(allChunks)

	// An unset window falls back to the commit span; the deadline, when
	// known, is a better end bound than the last commit.
	start, end := projectWindow(req.ProjectStart, req.ProjectEnd, commits)

	stage(models.StageAIAnalyzing)
	rated, totals := s.rater.RateAll(ctx, filtered.Analyze)
	tagExternal(rated, req.Team.Members)

	pair := cqi.PairProgramming(req.Team, req.PairedSessions, allChunks)
	result := s.calc.Calculate(cqi.Input{
		Chunks:        rated,
		TeamSize:      len(req.Team.Members),
		ProjectStart:  start,
		ProjectEnd:    end,
		FilterSummary: &filtered.Summary,
		TeamName:      req.Team.Name,
		Pair:          &pair,
		Attendance:    req.Attendance,
	})

	report := buildReport(req.Team, rated, result, totals)
	report.Metadata = models.AnalysisMetadata{
		AnalyzedAt:    started,
		Duration:      time.Since(started),
		CommitCount:   len(commits),
		ChunkCount:    len(allChunks),
		RatedChunks:   len(rated),
		ErrorRatings:  countErrorRatings(rated),
		TokenTotals:   totals,
		RaterDisabled: !s.rater.Enabled(),
	}

	stage(models.StageDone)
	slog.Info("Team analysis complete",
		"team", req.Team.Name,
		"cqi", report.CQIResult.CQI,
		"commits", len(commits),
		"rated_chunks", len(rated),
		"duration", report.Metadata.Duration)
	return report, nil
}

// ErrorReport builds the zero-scored report used when a team's pipeline
// fails; the run continues with the other teams.
func ErrorReport(team models.Team, cause error) *models.FairnessReport {
	return &models.FairnessReport{
		TeamID:               team.ID,
		TeamName:             team.Name,
		Flags:                []models.Flag{models.FlagAnalysisError},
		RequiresManualReview: true,
		CQIResult: &models.CQIResult{
			PenaltyMultiplier: 1.0,
			Reason:            cause.Error(),
		},
	}
}

func buildReport(team models.Team, rated []models.AnalyzedChunk, result models.CQIResult, totals models.TokenTotals) *models.FairnessReport {
	effort := make(map[int64]float64)
	locByAuthor := make(map[int64]int)
	countByAuthor := make(map[int64]int)
	emailByAuthor := make(map[int64]string)
	for _, ac := range rated {
		if ac.IsExternalContributor || ac.Chunk.AuthorID == nil {
			continue
		}
		id := *ac.Chunk.AuthorID
		effort[id] += ac.Rating.WeightedEffort()
		locByAuthor[id] += ac.Chunk.TotalLinesChanged()
		countByAuthor[id]++
		emailByAuthor[id] = ac.Chunk.AuthorEmail
	}
	shares := cqi.EffortShares(effort)

	details := make([]models.AuthorDetail, 0, len(effort))
	for id := range effort {
		details = append(details, models.AuthorDetail{
			AuthorID:     id,
			Email:        emailByAuthor[id],
			ChunkCount:   countByAuthor[id],
			LinesChanged: locByAuthor[id],
			TotalEffort:  effort[id],
			EffortShare:  shares[id],
		})
	}
	sort.Slice(details, func(i, j int) bool { return details[i].TotalEffort > details[j].TotalEffort })

	flags := deriveFlags(result, shares, len(effort), len(rated))
	return &models.FairnessReport{
		TeamID:               team.ID,
		TeamName:             team.Name,
		BalanceScore:         result.Components.EffortBalance,
		EffortByAuthor:       effort,
		EffortShareByAuthor:  shares,
		Flags:                flags,
		RequiresManualReview: len(flags) > 0,
		AuthorDetails:        details,
		AnalyzedChunks:       rated,
		CQIResult:            &result,
	}
}

// deriveFlags maps scoring outcomes onto review flags. Dominance above
// 70% is flagged as uneven even when the solo penalty also fired.
func deriveFlags(result models.CQIResult, shares map[int64]float64, distinctAuthors, ratedChunks int) []models.Flag {
	var flags []models.Flag

	if ratedChunks > 0 && distinctAuthors <= 1 {
		flags = append(flags, models.FlagSoloContributor)
	}
	for _, share := range shares {
		if share > 0.70 {
			flags = append(flags, models.FlagUnevenDistribution)
			break
		}
	}
	for _, p := range result.Penalties {
		switch p.Kind {
		case models.PenaltyHighTrivial:
			flags = append(flags, models.FlagHighTrivialRatio)
		case models.PenaltyLowConfidence:
			flags = append(flags, models.FlagLowConfidenceRatings)
		case models.PenaltyLateWork:
			flags = append(flags, models.FlagLateWorkConcentration)
		}
	}
	return flags
}

// tagExternal marks chunks whose author is not a registered team member.
// Emails are compared trimmed and case-folded.
func tagExternal(rated []models.AnalyzedChunk, members []models.Member) {
	emails := make(map[string]bool, len(members))
	ids := make(map[int64]bool, len(members))
	for _, m := range members {
		emails[normalizeEmail(m.Email)] = true
		ids[m.ID] = true
	}
	for i := range rated {
		c := rated[i].Chunk
		if c.AuthorID != nil && ids[*c.AuthorID] {
			continue
		}
		if emails[normalizeEmail(c.AuthorEmail)] {
			continue
		}
		rated[i].IsExternalContributor = true
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func projectWindow(start, end time.Time, commits []models.Commit) (time.Time, time.Time) {
	if (start.IsZero() || end.IsZero()) && len(commits) > 0 {
		if start.IsZero() {
			start = commits[0].Timestamp
		}
		if end.IsZero() {
			end = commits[len(commits)-1].Timestamp
		}
	}
	return start, end
}

func countErrorRatings(rated []models.AnalyzedChunk) int {
	n := 0
	for _, ac := range rated {
		if ac.Rating.IsError {
			n++
		}
	}
	return n
}

func teamSlug(team models.Team) string {
	slug := cqi.NormalizeTeamName(team.Name)
	slug = strings.ReplaceAll(slug, " ", "-")
	if slug == "" {
		slug = fmt.Sprintf("team-%d", team.ID)
	}
	return slug
}
