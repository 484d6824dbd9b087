package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fairlens/fairlens/ent"
	"github.com/fairlens/fairlens/ent/analyzedchunk"
	"github.com/fairlens/fairlens/ent/teamparticipation"
	"github.com/fairlens/fairlens/pkg/models"
)

// TeamService persists per-team analysis outcomes.
type TeamService struct {
	client *ent.Client
}

// NewTeamService creates a new TeamService.
func NewTeamService(client *ent.Client) *TeamService {
	return &TeamService{client: client}
}

// RegisterTeams upserts the participation rows for an exercise without
// touching analysis results, so resume logic can see the full team set.
func (s *TeamService) RegisterTeams(ctx context.Context, exerciseID int64, teams []models.Team) error {
	for _, team := range teams {
		existing, err := s.client.TeamParticipation.Query().
			Where(
				teamparticipation.ExerciseIDEQ(exerciseID),
				teamparticipation.TeamIDEQ(team.ID),
			).
			Only(ctx)
		switch {
		case ent.IsNotFound(err):
			_, err = s.client.TeamParticipation.Create().
				SetExerciseID(exerciseID).
				SetTeamID(team.ID).
				SetTeamName(team.Name).
				SetRepositoryURI(team.RepositoryURI).
				SetMembers(team.Members).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("creating participation for team %d: %w", team.ID, err)
			}
		case err != nil:
			return fmt.Errorf("querying participation for team %d: %w", team.ID, err)
		default:
			_, err = existing.Update().
				SetTeamName(team.Name).
				SetRepositoryURI(team.RepositoryURI).
				SetMembers(team.Members).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("updating participation for team %d: %w", team.ID, err)
			}
		}
	}
	return nil
}

// SaveReport persists one team's finished report. The participation row
// and its chunks are replaced in a single transaction; only the latest
// successful run per team is kept.
func (s *TeamService) SaveReport(ctx context.Context, exerciseID int64, team models.Team, report *models.FairnessReport) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("beginning report transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	part, err := tx.TeamParticipation.Query().
		Where(
			teamparticipation.ExerciseIDEQ(exerciseID),
			teamparticipation.TeamIDEQ(team.ID),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		part, err = tx.TeamParticipation.Create().
			SetExerciseID(exerciseID).
			SetTeamID(team.ID).
			SetTeamName(team.Name).
			SetRepositoryURI(team.RepositoryURI).
			SetMembers(team.Members).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("loading participation for team %d: %w", team.ID, err)
	}

	flags := make([]string, len(report.Flags))
	for i, f := range report.Flags {
		flags[i] = string(f)
	}

	update := part.Update().
		SetTeamName(team.Name).
		SetMembers(team.Members).
		SetIsSuspicious(report.RequiresManualReview).
		SetBalanceScore(report.BalanceScore).
		SetFlags(flags).
		SetTokenTotals(&report.Metadata.TokenTotals).
		SetAnalyzedAt(time.Now())
	if report.CQIResult != nil {
		update.
			SetCqi(report.CQIResult.CQI).
			SetComponents(&report.CQIResult.Components).
			SetPenalties(report.CQIResult.Penalties)
	}
	part, err = update.Save(ctx)
	if err != nil {
		return fmt.Errorf("updating participation for team %d: %w", team.ID, err)
	}

	// Replace the previous run's chunks.
	_, err = tx.AnalyzedChunk.Delete().
		Where(analyzedchunk.HasParticipationWith(teamparticipation.IDEQ(part.ID))).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("deleting previous chunks for team %d: %w", team.ID, err)
	}

	builders := make([]*ent.AnalyzedChunkCreate, len(report.AnalyzedChunks))
	for i, ac := range report.AnalyzedChunks {
		create := tx.AnalyzedChunk.Create().
			SetParticipation(part).
			SetSha(ac.Chunk.SHA).
			SetChunkIndex(ac.Chunk.ChunkIndex).
			SetTotalChunks(ac.Chunk.TotalChunks).
			SetNillableAuthorID(ac.Chunk.AuthorID).
			SetAuthorEmail(ac.Chunk.AuthorEmail).
			SetMessage(ac.Chunk.Message).
			SetCommittedAt(ac.Chunk.Timestamp).
			SetLinesAdded(ac.Chunk.LinesAdded).
			SetLinesDeleted(ac.Chunk.LinesDeleted).
			SetIsBundled(ac.Chunk.IsBundled).
			SetBundledShas(ac.Chunk.BundledSHAs).
			SetEffortScore(ac.Rating.EffortScore).
			SetComplexity(ac.Rating.Complexity).
			SetNovelty(ac.Rating.Novelty).
			SetLabel(string(ac.Rating.Label)).
			SetConfidence(ac.Rating.Confidence).
			SetReasoning(ac.Rating.Reasoning).
			SetIsError(ac.Rating.IsError).
			SetIsExternalContributor(ac.IsExternalContributor).
			SetModel(ac.Usage.Model).
			SetPromptTokens(ac.Usage.PromptTokens).
			SetCompletionTokens(ac.Usage.CompletionTokens).
			SetTotalTokens(ac.Usage.TotalTokens).
			SetUsageAvailable(ac.Usage.UsageAvailable)
		builders[i] = create
	}
	if _, err := tx.AnalyzedChunk.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("inserting chunks for team %d: %w", team.ID, err)
	}

	return tx.Commit()
}

// AnalyzedTeamIDs returns the teams of an exercise whose persisted CQI
// is non-null; resume skips these.
func (s *TeamService) AnalyzedTeamIDs(ctx context.Context, exerciseID int64) (map[int64]bool, error) {
	var ids []int64
	err := s.client.TeamParticipation.Query().
		Where(
			teamparticipation.ExerciseIDEQ(exerciseID),
			teamparticipation.CqiNotNil(),
		).
		Select(teamparticipation.FieldTeamID).
		Scan(ctx, &ids)
	if err != nil {
		return nil, fmt.Errorf("querying analyzed teams: %w", err)
	}

	analyzed := make(map[int64]bool, len(ids))
	for _, id := range ids {
		analyzed[id] = true
	}
	return analyzed, nil
}

// ListResults returns the persisted per-team results of an exercise.
func (s *TeamService) ListResults(ctx context.Context, exerciseID int64) ([]models.TeamResult, error) {
	rows, err := s.client.TeamParticipation.Query().
		Where(teamparticipation.ExerciseIDEQ(exerciseID)).
		Order(ent.Asc(teamparticipation.FieldTeamName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying team results: %w", err)
	}

	results := make([]models.TeamResult, len(rows))
	for i, row := range rows {
		results[i] = toTeamResult(row)
	}
	return results, nil
}

// GetResult returns one team's persisted result.
func (s *TeamService) GetResult(ctx context.Context, exerciseID, teamID int64) (*models.TeamResult, error) {
	row, err := s.client.TeamParticipation.Query().
		Where(
			teamparticipation.ExerciseIDEQ(exerciseID),
			teamparticipation.TeamIDEQ(teamID),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying team result: %w", err)
	}
	result := toTeamResult(row)
	return &result, nil
}

func toTeamResult(row *ent.TeamParticipation) models.TeamResult {
	result := models.TeamResult{
		TeamID:       row.TeamID,
		TeamName:     row.TeamName,
		CQI:          row.Cqi,
		IsSuspicious: row.IsSuspicious,
		Components:   row.Components,
	}
	if row.BalanceScore != nil {
		result.BalanceScore = *row.BalanceScore
	}
	if row.AnalyzedAt != nil {
		result.AnalyzedAt = *row.AnalyzedAt
	}
	for _, f := range row.Flags {
		result.Flags = append(result.Flags, models.Flag(f))
	}
	return result
}
