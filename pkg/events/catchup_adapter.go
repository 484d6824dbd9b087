package events

import (
	"context"

	"github.com/fairlens/fairlens/pkg/services"
)

// EventServiceAdapter exposes services.EventService as a CatchupQuerier.
type EventServiceAdapter struct {
	eventService *services.EventService
}

// NewEventServiceAdapter creates a CatchupQuerier from an EventService.
func NewEventServiceAdapter(es *services.EventService) *EventServiceAdapter {
	return &EventServiceAdapter{eventService: es}
}

// EventsSince returns stored events on the channel after sinceID.
func (a *EventServiceAdapter) EventsSince(ctx context.Context, channel string, sinceID int64, limit int) ([]CatchupEvent, error) {
	stored, err := a.eventService.EventsSince(ctx, channel, sinceID, limit)
	if err != nil {
		return nil, err
	}

	result := make([]CatchupEvent, len(stored))
	for i, evt := range stored {
		result[i] = CatchupEvent{ID: evt.ID, Payload: evt.Payload}
	}
	return result, nil
}
