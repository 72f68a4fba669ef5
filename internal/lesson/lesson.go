// Package lesson holds the lesson domain model: levels, kinds, statuses,
// the description classifier, the lesson state machine, the extractor for
// the remote lesson table, and the local ledger.
package lesson

import (
	"fmt"
	"strings"
	"time"
)

// Level is a course level in the platform's A1..C2 progression.
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
	LevelC2 Level = "C2"
)

// Levels lists all valid levels in progression order.
var Levels = []Level{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2}

// ParseLevel normalizes a raw level string, returning false when the value
// is not a known level.
func ParseLevel(raw string) (Level, bool) {
	candidate := Level(strings.ToUpper(strings.TrimSpace(raw)))
	for _, level := range Levels {
		if candidate == level {
			return level, true
		}
	}
	return "", false
}

// Kind classifies what a lesson slot is for.
type Kind string

const (
	KindIntro     Kind = "intro"
	KindClass     Kind = "class"
	KindQuizUnit  Kind = "quiz_unit"
	KindSmartZone Kind = "smart_zone"
	KindExamPrep  Kind = "exam_prep"
	KindFinalExam Kind = "final_exam"
	// KindOther is a non-empty description that matched no known pattern.
	KindOther Kind = "other"
	// KindUnknown is an empty description.
	KindUnknown Kind = "unknown"
)

// Mandatory reports whether this kind is required to advance a level.
func (k Kind) Mandatory() bool {
	switch k {
	case KindIntro, KindClass, KindExamPrep, KindFinalExam:
		return true
	default:
		return false
	}
}

// kindPatterns maps description fragments to kinds. Order matters: the
// first match wins, and exam_prep must be tried before final_exam because
// "Preparación Examen Final" contains "Examen Final".
var kindPatterns = []struct {
	fragment string
	kind     Kind
}{
	{"INTRO", KindIntro},
	{"CLASE", KindClass},
	{"QUIZ", KindQuizUnit},
	{"SMART", KindSmartZone},
	{"PREPARACI", KindExamPrep},
	{"EXAMEN FINAL", KindFinalExam},
}

// KindFromDescription derives a lesson kind from its free-text description.
func KindFromDescription(description string) Kind {
	normalized := strings.ToUpper(strings.TrimSpace(description))
	if normalized == "" {
		return KindUnknown
	}
	for _, pattern := range kindPatterns {
		if strings.Contains(normalized, pattern.fragment) {
			return pattern.kind
		}
	}
	return KindOther
}

// Status is the lifecycle state of one lesson slot.
type Status string

const (
	StatusPending    Status = "pending"
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusNoShow     Status = "no_show"
)

// statusLabels maps the platform's localized status strings to canonical
// statuses.
var statusLabels = map[string]Status{
	"tomada":     StatusCompleted,
	"pendiente":  StatusPending,
	"en curso":   StatusInProgress,
	"programada": StatusScheduled,
	"cancelada":  StatusCancelled,
	"no asistió": StatusNoShow,
	"no asistio": StatusNoShow,
}

// StatusFromLabel maps a remote status label to a canonical status. An
// unrecognized label defaults to pending: a lenient default for label
// drift, not an error path.
func StatusFromLabel(label string) Status {
	if status, ok := statusLabels[strings.ToLower(strings.TrimSpace(label))]; ok {
		return status
	}
	return StatusPending
}

// transitions is the lesson state machine: completed is terminal, a
// cancelled or missed lesson can be rescheduled.
var transitions = map[Status][]Status{
	StatusPending:    {StatusScheduled, StatusCancelled},
	StatusScheduled:  {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusCancelled:  {StatusScheduled},
	StatusNoShow:     {StatusScheduled},
	StatusCompleted:  {},
}

// CanTransition reports whether from -> to is a legal status change.
func CanTransition(from, to Status) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// InvalidTransitionError reports an illegal lesson status change.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid lesson transition from %q to %q", e.From, e.To)
}

// Lesson is one slot in a user's course sequence. (UserID, Level, Number)
// is unique.
type Lesson struct {
	ID          int64  `db:"id"`
	UserID      int64  `db:"user_id"`
	Level       Level  `db:"level"`
	Number      int    `db:"number"`
	Kind        Kind   `db:"kind"`
	Description string `db:"description"`
	Status      Status `db:"status"`

	ScheduledDate *time.Time `db:"scheduled_date"`
	StartTime     *string    `db:"start_time"`
	EndTime       *string    `db:"end_time"`

	// RemoteRowID correlates this record to the remote table row for
	// idempotent re-matching.
	RemoteRowID string `db:"remote_row_id"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Mandatory reports whether the lesson is required for level advancement.
func (l *Lesson) Mandatory() bool {
	return l.Kind.Mandatory()
}

// TransitionTo moves the lesson to the given status, rejecting illegal
// moves with an InvalidTransitionError.
func (l *Lesson) TransitionTo(to Status) error {
	if !CanTransition(l.Status, to) {
		return &InvalidTransitionError{From: l.Status, To: to}
	}
	l.Status = to
	return nil
}
