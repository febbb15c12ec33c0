// Package events records the history of search runs.
// Events are stored in append-only JSONL files next to saved transcripts.
package events

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// SchemaVersion is written into every event.
const SchemaVersion = "1.0"

// FileName is the history file kept in the transcript directory.
const FileName = "events.jsonl"

// Event names.
const (
	SearchStarted  = "search_started"
	SearchFinished = "search_finished"
)

// Event represents a single line in events.jsonl.
type Event struct {
	SchemaVersion string         `json:"schema_version"`
	Timestamp     string         `json:"timestamp"` // RFC3339
	RunID         string         `json:"run_id"`
	Event         string         `json:"event"`
	Data          map[string]any `json:"data,omitempty"`
}

// NewRunID returns a fresh identifier shared by the events of one search.
func NewRunID() string {
	return uuid.NewString()
}

// New returns an event for run runID stamped with t in UTC.
func New(t time.Time, runID, name string, data map[string]any) Event {
	return Event{
		SchemaVersion: SchemaVersion,
		Timestamp:     t.UTC().Format(time.RFC3339),
		RunID:         runID,
		Event:         name,
		Data:          data,
	}
}

// AppendEvent appends a single event to the events file at path.
// The file and its parent directory are created lazily.
//
// Best-effort: errors are returned but callers should typically log them
// and continue with the main operation.
func AppendEvent(path string, e Event) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	_, err = f.Write(append(data, '\n'))
	return err
}

// SearchStartedData returns the data map for a search_started event.
func SearchStartedData(home, command string, timeoutMS int64) map[string]any {
	return map[string]any{
		"home":       home,
		"command":    command,
		"timeout_ms": timeoutMS,
	}
}

// SearchFinishedData returns the data map for a search_finished event.
// errorCode is "" on success; transcript is "" when nothing was saved.
func SearchFinishedData(durationMS int64, records int, transcript, errorCode string) map[string]any {
	data := map[string]any{
		"ok":          errorCode == "",
		"duration_ms": durationMS,
		"records":     records,
	}
	if transcript != "" {
		data["transcript"] = transcript
	}
	if errorCode != "" {
		data["error_code"] = errorCode
	}
	return data
}
