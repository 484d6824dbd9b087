package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fairlens/fairlens/ent"
	"github.com/fairlens/fairlens/ent/event"
)

// StoredEvent is one persisted event row, as served to catch-up.
type StoredEvent struct {
	ID      int64
	Payload map[string]any
}

// EventService reads and prunes the persisted event stream.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// EventsSince returns up to limit events on the channel with id > sinceID,
// oldest first.
func (s *EventService) EventsSince(ctx context.Context, channel string, sinceID int64, limit int) ([]StoredEvent, error) {
	rows, err := s.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(int(sinceID)),
		).
		Order(ent.Asc(event.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}

	stored := make([]StoredEvent, len(rows))
	for i, row := range rows {
		stored[i] = StoredEvent{ID: int64(row.ID), Payload: row.Payload}
	}
	return stored, nil
}

// CleanupExerciseEvents removes all stored events for one exercise.
// Called when a run restarts from IDLE so catch-up never replays a
// previous run.
func (s *EventService) CleanupExerciseEvents(ctx context.Context, exerciseID int64) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.ExerciseIDEQ(exerciseID)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("cleaning up exercise events: %w", err)
	}
	return count, nil
}

// CleanupOldEvents removes events older than ttlDays.
func (s *EventService) CleanupOldEvents(ctx context.Context, ttlDays int) (int, error) {
	cutoff := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("cleaning up old events: %w", err)
	}
	return count, nil
}
