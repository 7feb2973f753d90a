// Package client provides WebSocket and HTTP clients for the Portrait Studio
// backend. Types mirror the backend wire protocol without importing backend
// packages.
package client

import (
	"encoding/json"
	"time"
)

// MessageType identifies the kind of WebSocket message.
type MessageType string

const (
	MsgSnapshot   MessageType = "snapshot"
	MsgJobUpdate  MessageType = "job_update"
	MsgCompletion MessageType = "completion"
	MsgCredits    MessageType = "credits"
	MsgError      MessageType = "error"
)

// WSMessage is the envelope for all WebSocket messages.
type WSMessage struct {
	Type    MessageType     `json:"type"`
	Seq     uint64          `json:"seq"`
	Payload json.RawMessage `json:"payload"`
}

// JobStatus is a generation job's current stage.
type JobStatus string

const (
	JobQueued     JobStatus = "queued"
	JobGenerating JobStatus = "generating"
	JobUpscaling  JobStatus = "upscaling"
	JobComplete   JobStatus = "complete"
	JobFailed     JobStatus = "failed"
)

// Terminal reports whether the job has finished, successfully or not.
func (s JobStatus) Terminal() bool {
	return s == JobComplete || s == JobFailed
}

// Job mirrors the backend's render job record.
type Job struct {
	ID          string     `json:"id"`
	StyleID     string     `json:"styleId"`
	Status      JobStatus  `json:"status"`
	Progress    float64    `json:"progress"` // 0..1 within the current stage
	QueuePos    int        `json:"queuePos,omitempty"`
	QueuedAt    time.Time  `json:"queuedAt"`
	StartedAt   *time.Time `json:"startedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Error       string     `json:"error,omitempty"`
}

// Portrait is one finished render. Preview is a pre-rendered character-art
// thumbnail supplied by the backend; the real raster lives behind URL.
type Portrait struct {
	ID        string    `json:"id"`
	JobID     string    `json:"jobId"`
	StyleID   string    `json:"styleId"`
	Seed      int64     `json:"seed"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Preview   []string  `json:"preview"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}

// --- WebSocket payload types ---

// SnapshotPayload is sent on initial connection.
type SnapshotPayload struct {
	Portraits []*Portrait `json:"portraits"`
	Jobs      []*Job      `json:"jobs,omitempty"`
	Credits   int         `json:"credits"`
}

// JobUpdatePayload carries a job's new stage or progress.
type JobUpdatePayload struct {
	Job *Job `json:"job"`
}

// CompletionPayload is sent when a job finishes and its portrait is ready.
type CompletionPayload struct {
	Job      *Job      `json:"job"`
	Portrait *Portrait `json:"portrait,omitempty"`
	Credits  int       `json:"credits"`
}

// CreditsPayload reports a balance change.
type CreditsPayload struct {
	Balance int `json:"balance"`
}
