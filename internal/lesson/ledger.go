package lesson

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
)

// ReconcileSummary tracks counts for one reconcile pass.
type ReconcileSummary struct {
	Created   int
	Updated   int
	Unchanged int
}

// Progress summarizes how far a user is through a level's mandatory lessons.
type Progress struct {
	CompletedMandatory int
	TotalMandatory     int
	Percent            float64
}

// Ledger is the local, authoritative record of a user's lessons. It
// reconciles extracted remote rows against stored lessons and answers
// scheduling queries.
type Ledger struct {
	repo   LessonRepository
	logger *slog.Logger
}

func NewLedger(repo LessonRepository, logger *slog.Logger) *Ledger {
	return &Ledger{repo: repo, logger: logger}
}

type lessonKey struct {
	level  Level
	number int
}

// Reconcile upserts extracted rows by (level, number). Status moves only
// along legal state-machine transitions: remote drift that would regress a
// record (a lagging extraction reporting a completed lesson as pending) is
// logged and left untouched. Re-running with identical rows is a no-op.
func (l *Ledger) Reconcile(ctx context.Context, userID int64, rows []RawRow) (ReconcileSummary, error) {
	var summary ReconcileSummary

	existing, err := l.repo.FindByUser(ctx, userID)
	if err != nil {
		return summary, fmt.Errorf("load existing lessons: %w", err)
	}
	index := make(map[lessonKey]*Lesson, len(existing))
	for i := range existing {
		index[lessonKey{existing[i].Level, existing[i].Number}] = &existing[i]
	}

	var created []*Lesson
	for i := range rows {
		row := &rows[i]
		record := index[lessonKey{row.Level, row.Number}]
		if record == nil {
			lesson := rowToLesson(userID, row)
			created = append(created, lesson)
			index[lessonKey{row.Level, row.Number}] = lesson
			summary.Created++
			continue
		}

		changed := false
		if record.RemoteRowID != row.RemoteRowID && row.RemoteRowID != "" {
			record.RemoteRowID = row.RemoteRowID
			changed = true
		}
		if record.Description != row.Description && row.Description != "" {
			record.Description = row.Description
			record.Kind = row.Kind
			changed = true
		}
		if record.Status != row.Status {
			if CanTransition(record.Status, row.Status) {
				record.Status = row.Status
				changed = true
			} else {
				l.logger.Warn("ignoring remote status drift that violates the lesson state machine",
					"level", record.Level, "number", record.Number,
					"local_status", record.Status, "remote_status", row.Status)
			}
		}

		if changed {
			if err := l.repo.Update(ctx, record); err != nil {
				return summary, fmt.Errorf("update lesson %s-%d: %w", record.Level, record.Number, err)
			}
			summary.Updated++
		} else {
			summary.Unchanged++
		}
	}

	if err := l.repo.BatchCreate(ctx, created); err != nil {
		return summary, fmt.Errorf("create lessons: %w", err)
	}
	return summary, nil
}

// Resync destroys the user's entire ledger and reinserts it from the given
// rows, bypassing the lesson state machine. A lagging extraction CAN
// regress records through this path; it exists only for explicit full
// resyncs requested by the operator.
func (l *Ledger) Resync(ctx context.Context, userID int64, rows []RawRow) error {
	lessons := make([]*Lesson, 0, len(rows))
	for i := range rows {
		lessons = append(lessons, rowToLesson(userID, &rows[i]))
	}
	l.logger.Warn("full resync replaces the ledger and bypasses the lesson state machine",
		"user_id", userID, "rows", len(lessons))
	if err := l.repo.ReplaceAll(ctx, userID, lessons); err != nil {
		return fmt.Errorf("replace lessons: %w", err)
	}
	return nil
}

// NextUnscheduledMandatory returns the lowest-number mandatory lesson whose
// status is pending, or nil when the level has none left.
func (l *Ledger) NextUnscheduledMandatory(ctx context.Context, userID int64, level Level) (*Lesson, error) {
	pending, err := l.PendingMandatory(ctx, userID, level)
	if err != nil {
		return nil, err
	}
	if len(pending) == 0 {
		return nil, nil
	}
	return &pending[0], nil
}

// PendingMandatory returns the level's pending mandatory lessons in number
// order.
func (l *Ledger) PendingMandatory(ctx context.Context, userID int64, level Level) ([]Lesson, error) {
	lessons, err := l.repo.FindByUserAndLevel(ctx, userID, level)
	if err != nil {
		return nil, fmt.Errorf("load lessons: %w", err)
	}

	var pending []Lesson
	for _, lesson := range lessons {
		if lesson.Mandatory() && lesson.Status == StatusPending {
			pending = append(pending, lesson)
		}
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].Number < pending[j].Number })
	return pending, nil
}

// Progress reports completed versus total mandatory lessons for a level.
func (l *Ledger) Progress(ctx context.Context, userID int64, level Level) (Progress, error) {
	lessons, err := l.repo.FindByUserAndLevel(ctx, userID, level)
	if err != nil {
		return Progress{}, fmt.Errorf("load lessons: %w", err)
	}

	var progress Progress
	for _, lesson := range lessons {
		if !lesson.Mandatory() {
			continue
		}
		progress.TotalMandatory++
		if lesson.Status == StatusCompleted {
			progress.CompletedMandatory++
		}
	}
	if progress.TotalMandatory > 0 {
		progress.Percent = float64(progress.CompletedMandatory) / float64(progress.TotalMandatory) * 100
	}
	return progress, nil
}

// MarkScheduled advances the lesson for (user, level, number) to scheduled.
func (l *Ledger) MarkScheduled(ctx context.Context, userID int64, level Level, number int) error {
	record, err := l.repo.FindOne(ctx, userID, level, number)
	if err != nil {
		return fmt.Errorf("load lesson: %w", err)
	}
	if record == nil {
		return fmt.Errorf("lesson %s-%d not found", level, number)
	}
	if err := record.TransitionTo(StatusScheduled); err != nil {
		return err
	}
	if err := l.repo.Update(ctx, record); err != nil {
		return fmt.Errorf("update lesson: %w", err)
	}
	return nil
}

func rowToLesson(userID int64, row *RawRow) *Lesson {
	return &Lesson{
		UserID:      userID,
		Level:       row.Level,
		Number:      row.Number,
		Kind:        row.Kind,
		Description: row.Description,
		Status:      row.Status,
		RemoteRowID: row.RemoteRowID,
	}
}
