package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/fairlens/fairlens/ent"
	"github.com/fairlens/fairlens/ent/emailmapping"
)

// EmailMappingService persists git-email to student-ID mappings derived
// from the platform's VCS access log. Mappings survive restarts so
// resumed runs do not have to re-fetch the access log for finished teams.
type EmailMappingService struct {
	client *ent.Client
}

// NewEmailMappingService creates a new EmailMappingService.
func NewEmailMappingService(client *ent.Client) *EmailMappingService {
	return &EmailMappingService{client: client}
}

// Upsert stores one git email's mapping for an exercise. Emails are
// stored lower-cased so lookups are case-insensitive.
func (s *EmailMappingService) Upsert(ctx context.Context, exerciseID int64, gitEmail string, studentID int64, studentName string) error {
	gitEmail = strings.ToLower(strings.TrimSpace(gitEmail))
	if gitEmail == "" {
		return NewValidationError("gitEmail", "cannot be empty")
	}

	existing, err := s.client.EmailMapping.Query().
		Where(
			emailmapping.ExerciseIDEQ(exerciseID),
			emailmapping.GitEmailEQ(gitEmail),
		).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = s.client.EmailMapping.Create().
			SetExerciseID(exerciseID).
			SetGitEmail(gitEmail).
			SetStudentID(studentID).
			SetStudentName(studentName).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("creating email mapping for %q: %w", gitEmail, err)
		}
	case err != nil:
		return fmt.Errorf("querying email mapping for %q: %w", gitEmail, err)
	default:
		_, err = existing.Update().
			SetStudentID(studentID).
			SetStudentName(studentName).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("updating email mapping for %q: %w", gitEmail, err)
		}
	}
	return nil
}

// MappingsFor returns every stored git email to student ID mapping of an
// exercise, keyed by lower-cased email.
func (s *EmailMappingService) MappingsFor(ctx context.Context, exerciseID int64) (map[string]int64, error) {
	rows, err := s.client.EmailMapping.Query().
		Where(emailmapping.ExerciseIDEQ(exerciseID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying email mappings: %w", err)
	}

	mappings := make(map[string]int64, len(rows))
	for _, row := range rows {
		mappings[row.GitEmail] = row.StudentID
	}
	return mappings, nil
}
