// Package events provides live analysis-progress delivery: events are
// persisted to the events table and broadcast via PostgreSQL NOTIFY, a
// dedicated LISTEN connection receives them, and a subscriber manager
// fans them out to SSE streams. The table is also the catch-up source
// for subscribers that attach mid-run.
package events

import "strconv"

// Message types carried in the "type" field of every payload.
const (
	TypeStart          = "START"
	TypeUpdate         = "UPDATE"
	TypeDone           = "DONE"
	TypeError          = "ERROR"
	TypeAlreadyRunning = "ALREADY_RUNNING"
)

// ExerciseChannel returns the NOTIFY channel for one exercise's run.
// Format: "exercise:{exercise_id}".
func ExerciseChannel(exerciseID int64) string {
	return "exercise:" + strconv.FormatInt(exerciseID, 10)
}
