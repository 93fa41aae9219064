package ledger

import "time"

// Status represents the lifecycle of a transcode run.
type Status string

const (
	StatusPending        Status = "pending"
	StatusSessionOpening Status = "session_opening"
	StatusRunning        Status = "running"
	StatusSucceeded      Status = "succeeded"
	StatusFailed         Status = "failed"
)

// Terminal reports whether the status is an end state.
func (s Status) Terminal() bool {
	return s == StatusSucceeded || s == StatusFailed
}

// Job is one orchestration run as recorded in the ledger.
type Job struct {
	ID           string
	Kind         string
	ContainerID  string
	Source       string
	OutputDir    string
	Status       Status
	ErrorMessage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
