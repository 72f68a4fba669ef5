// Package booking owns the per-user booking queue and the executor that
// drives the scheduling dialog one lesson at a time.
package booking

import (
	"fmt"
	"time"

	"smartbooker/internal/lesson"
)

// MaxAttempts caps how often one booking may be tried. At the cap a failed
// attempt is terminal and must be surfaced to the operator, not retried.
const MaxAttempts = 3

// ActionRegisterClass is the only queued action today.
const ActionRegisterClass = "register_class"

// Status is the processing state of one booking attempt.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusProcessed  Status = "processed"
	StatusFailed     Status = "failed"
)

// InvalidTransitionError reports a booking state-machine contract
// violation. Always a programming or ordering bug, never swallowed.
type InvalidTransitionError struct {
	Event  string
	From   Status
	Reason string
}

func (e *InvalidTransitionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid booking transition %q from %q: %s", e.Event, e.From, e.Reason)
	}
	return fmt.Sprintf("invalid booking transition %q from %q", e.Event, e.From)
}

// Attempt is one queued unit of work to book a specific lesson. A lesson
// has at most one non-terminal attempt at a time.
type Attempt struct {
	ID           int64        `db:"id"`
	UserID       int64        `db:"user_id"`
	LessonLevel  lesson.Level `db:"lesson_level"`
	LessonNumber int          `db:"lesson_number"`
	Action       string       `db:"action"`
	Status       Status       `db:"status"`
	Attempts     int          `db:"attempts"`

	LastAttemptAt *time.Time `db:"last_attempt_at"`
	ProcessedAt   *time.Time `db:"processed_at"`
	LastError     string     `db:"last_error"`
	// ResultID is the opaque remote confirmation identifier on success.
	ResultID string `db:"result_id"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Terminal reports whether this attempt accepts no further processing.
func (a *Attempt) Terminal() bool {
	return a.Status == StatusProcessed || (a.Status == StatusFailed && a.Attempts >= MaxAttempts)
}

// CanRetry reports whether a failed attempt still has retries left.
func (a *Attempt) CanRetry() bool {
	return a.Status == StatusFailed && a.Attempts < MaxAttempts
}

// StartProcessing moves the attempt into processing, increments the attempt
// counter, and stamps the attempt time. Legal from pending or failed.
func (a *Attempt) StartProcessing() error {
	if a.Status != StatusPending && a.Status != StatusFailed {
		return &InvalidTransitionError{Event: "start_processing", From: a.Status}
	}
	a.Status = StatusProcessing
	a.Attempts++
	now := time.Now()
	a.LastAttemptAt = &now
	return nil
}

// MarkProcessed finishes the attempt successfully, storing the remote
// confirmation id and clearing any previous error. Legal only from
// processing.
func (a *Attempt) MarkProcessed(resultID string) error {
	if a.Status != StatusProcessing {
		return &InvalidTransitionError{Event: "mark_processed", From: a.Status}
	}
	a.Status = StatusProcessed
	a.ResultID = resultID
	a.LastError = ""
	now := time.Now()
	a.ProcessedAt = &now
	return nil
}

// MarkFailed records a failed attempt with the captured error text. Legal
// only from processing.
func (a *Attempt) MarkFailed(message string) error {
	if a.Status != StatusProcessing {
		return &InvalidTransitionError{Event: "mark_failed", From: a.Status}
	}
	a.Status = StatusFailed
	a.LastError = message
	now := time.Now()
	a.LastAttemptAt = &now
	return nil
}

// Retry resets a failed attempt back to pending, clearing its error. Legal
// only from failed with attempts left.
func (a *Attempt) Retry() error {
	if a.Status != StatusFailed {
		return &InvalidTransitionError{Event: "retry", From: a.Status}
	}
	if a.Attempts >= MaxAttempts {
		return &InvalidTransitionError{
			Event: "retry", From: a.Status,
			Reason: fmt.Sprintf("attempts exhausted (%d/%d)", a.Attempts, MaxAttempts),
		}
	}
	a.Status = StatusPending
	a.LastError = ""
	a.ProcessedAt = nil
	return nil
}
