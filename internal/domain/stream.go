package domain

import "time"

// Stream names
const (
	StreamStorageCleanup = "stream:storage:cleanup"
)

// OrphanedUploadEvent - published when the upload stage of a submission fails
// after some sibling files already reached blob storage. A background worker
// removes the named objects; the submission itself has already failed as one
// unit by the time this is emitted.
type OrphanedUploadEvent struct {
	UserRef     string    `json:"user_ref"`
	ObjectNames []string  `json:"object_names"`
	FailedAt    time.Time `json:"failed_at"`
}

// StreamMessage - one message read from a Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
