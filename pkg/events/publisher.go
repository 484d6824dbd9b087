package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fairlens/fairlens/pkg/models"
)

// Publisher persists analysis events and broadcasts them via NOTIFY.
// The INSERT and pg_notify happen in one transaction, so a notification
// is never observed for an event that was not persisted.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a Publisher on the database.Client's *sql.DB.
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// PublishStart persists and broadcasts a START event.
func (p *Publisher) PublishStart(ctx context.Context, exerciseID int64, total int) error {
	return p.publish(ctx, exerciseID, StartPayload{
		Type:       TypeStart,
		ExerciseID: exerciseID,
		Total:      total,
		Timestamp:  nowStamp(),
	})
}

// PublishUpdate persists and broadcasts an UPDATE event with one team's
// complete result.
func (p *Publisher) PublishUpdate(ctx context.Context, exerciseID int64, processed, total int, result models.TeamResult) error {
	return p.publish(ctx, exerciseID, UpdatePayload{
		Type:       TypeUpdate,
		ExerciseID: exerciseID,
		Processed:  processed,
		Total:      total,
		Data:       result,
		Timestamp:  nowStamp(),
	})
}

// PublishDone persists and broadcasts a terminal DONE event carrying the
// run's merged token totals.
func (p *Publisher) PublishDone(ctx context.Context, exerciseID int64, processed int, tokens models.TokenTotals) error {
	return p.publish(ctx, exerciseID, DonePayload{
		Type:       TypeDone,
		ExerciseID: exerciseID,
		Processed:  processed,
		Tokens:     tokens,
		Timestamp:  nowStamp(),
	})
}

// PublishError persists and broadcasts a terminal ERROR event.
func (p *Publisher) PublishError(ctx context.Context, exerciseID int64, message string) error {
	return p.publish(ctx, exerciseID, ErrorPayload{
		Type:       TypeError,
		ExerciseID: exerciseID,
		Message:    message,
		Timestamp:  nowStamp(),
	})
}

func (p *Publisher) publish(ctx context.Context, exerciseID int64, payload any) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling %T: %w", payload, err)
	}
	return p.persistAndNotify(ctx, exerciseID, ExerciseChannel(exerciseID), payloadJSON)
}

// persistAndNotify inserts the event and fires pg_notify in a single
// transaction; the NOTIFY is held until COMMIT.
func (p *Publisher) persistAndNotify(ctx context.Context, exerciseID int64, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning event transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (exercise_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		exerciseID, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("persisting event: %w", err)
	}

	notifyPayload, err := injectEventID(payloadJSON, eventID)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify: %w", err)
	}
	return tx.Commit()
}

// injectEventID adds db_event_id for subscriber position tracking and
// shrinks payloads that exceed PostgreSQL's NOTIFY size limit to a
// routing envelope; subscribers re-fetch the full event via catch-up.
func injectEventID(payloadJSON []byte, eventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("unmarshaling payload for id injection: %w", err)
	}
	m["db_event_id"] = eventID

	enriched, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("marshaling NOTIFY payload: %w", err)
	}
	if len(enriched) <= notifyLimit {
		return string(enriched), nil
	}

	truncated, err := json.Marshal(map[string]any{
		"type":        m["type"],
		"exercise_id": m["exercise_id"],
		"db_event_id": eventID,
		"truncated":   true,
	})
	if err != nil {
		return "", fmt.Errorf("marshaling truncated payload: %w", err)
	}
	return string(truncated), nil
}

// notifyLimit stays under PostgreSQL's 8000-byte NOTIFY payload cap.
const notifyLimit = 7900
