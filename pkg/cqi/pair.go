package cqi

import (
	"strings"
	"time"

	"github.com/fairlens/fairlens/pkg/models"
)

// PairStatus reports whether a pair-programming score could be computed.
type PairStatus string

// Pair-programming statuses.
const (
	// PairNotApplicable: the team is not a pair (size ≠ 2).
	PairNotApplicable PairStatus = "NOT_APPLICABLE"
	// PairNotFound: no schedule entry for the team.
	PairNotFound PairStatus = "NOT_FOUND"
	// PairFound: a score was computed (possibly 0).
	PairFound PairStatus = "FOUND"
)

// PairResult is the pair-programming attendance outcome. Score is nil
// unless Status is PairFound.
type PairResult struct {
	Status  PairStatus `json:"status"`
	Score   *float64   `json:"score,omitempty"`
	Covered int        `json:"covered"`
	Total   int        `json:"total"`
}

// PairProgramming computes the fraction of paired sessions on which both
// team members committed, projected to UTC calendar dates.
func PairProgramming(team models.Team, pairedSessions []time.Time, chunks []models.Chunk) PairResult {
	if len(team.Members) != 2 {
		return PairResult{Status: PairNotApplicable}
	}
	if len(pairedSessions) == 0 {
		return PairResult{Status: PairNotFound}
	}

	// Per-member sets of UTC dates with at least one commit.
	datesA := commitDates(team.Members[0], chunks)
	datesB := commitDates(team.Members[1], chunks)

	sessions := make(map[string]bool, len(pairedSessions))
	for _, s := range pairedSessions {
		sessions[utcDate(s)] = true
	}

	covered := 0
	for day := range sessions {
		if datesA[day] && datesB[day] {
			covered++
		}
	}

	score := 100 * float64(covered) / float64(len(sessions))
	return PairResult{Status: PairFound, Score: &score, Covered: covered, Total: len(sessions)}
}

func commitDates(member models.Member, chunks []models.Chunk) map[string]bool {
	dates := make(map[string]bool)
	for _, c := range chunks {
		if !chunkByMember(c, member) {
			continue
		}
		dates[utcDate(c.Timestamp)] = true
	}
	return dates
}

func chunkByMember(c models.Chunk, member models.Member) bool {
	if c.AuthorID != nil && *c.AuthorID == member.ID {
		return true
	}
	return c.AuthorID == nil && strings.EqualFold(strings.TrimSpace(c.AuthorEmail), strings.TrimSpace(member.Email))
}

func utcDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// NormalizeTeamName canonicalizes a team name for schedule matching:
// non-breaking spaces become spaces, runs of whitespace collapse, and the
// result is trimmed and case-folded.
func NormalizeTeamName(name string) string {
	name = strings.ReplaceAll(name, "\u00a0", " ")
	name = strings.Join(strings.Fields(name), " ")
	return strings.ToLower(strings.TrimSpace(name))
}
