package booking

import (
	"context"
	"fmt"
	"log/slog"

	"smartbooker/internal/lesson"
)

// Queue is a per-user ordered queue of booking attempts. Attempts are
// processed strictly in enqueue order; there is no priority.
type Queue struct {
	repo   AttemptRepository
	logger *slog.Logger
}

func NewQueue(repo AttemptRepository, logger *slog.Logger) *Queue {
	return &Queue{repo: repo, logger: logger}
}

// Enqueue queues a booking attempt for the lesson. Idempotent: when the
// lesson already has a non-terminal attempt, that attempt is returned and
// nothing new is created.
func (q *Queue) Enqueue(ctx context.Context, userID int64, target *lesson.Lesson) (*Attempt, error) {
	existing, err := q.repo.FindNonTerminal(ctx, userID, target.Level, target.Number)
	if err != nil {
		return nil, fmt.Errorf("look up existing attempt: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	attempt := &Attempt{
		UserID:       userID,
		LessonLevel:  target.Level,
		LessonNumber: target.Number,
		Action:       ActionRegisterClass,
		Status:       StatusPending,
	}
	if err := q.repo.Create(ctx, attempt); err != nil {
		return nil, fmt.Errorf("create attempt: %w", err)
	}
	q.logger.Debug("enqueued booking attempt",
		"level", target.Level, "number", target.Number, "attempt_id", attempt.ID)
	return attempt, nil
}

// Eligible returns the user's pending attempts in enqueue order.
func (q *Queue) Eligible(ctx context.Context, userID int64) ([]Attempt, error) {
	attempts, err := q.repo.FindPending(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load pending attempts: %w", err)
	}
	return attempts, nil
}

// RetryFailed resets every retryable failed attempt back to pending and
// returns how many were reset. Exhausted attempts stay failed.
func (q *Queue) RetryFailed(ctx context.Context, userID int64) (int, error) {
	failed, err := q.repo.FindFailed(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("load failed attempts: %w", err)
	}

	reset := 0
	for i := range failed {
		attempt := &failed[i]
		if !attempt.CanRetry() {
			q.logger.Warn("attempt exhausted, leaving failed for operator attention",
				"level", attempt.LessonLevel, "number", attempt.LessonNumber,
				"attempts", attempt.Attempts, "last_error", attempt.LastError)
			continue
		}
		if err := attempt.Retry(); err != nil {
			return reset, err
		}
		if err := q.repo.Update(ctx, attempt); err != nil {
			return reset, fmt.Errorf("persist retried attempt: %w", err)
		}
		reset++
	}
	return reset, nil
}

// Save persists an attempt's current state.
func (q *Queue) Save(ctx context.Context, attempt *Attempt) error {
	if err := q.repo.Update(ctx, attempt); err != nil {
		return fmt.Errorf("persist attempt: %w", err)
	}
	return nil
}

// Stats returns attempt counts grouped by status.
func (q *Queue) Stats(ctx context.Context, userID int64) (map[Status]int, error) {
	counts, err := q.repo.CountByStatus(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count attempts: %w", err)
	}
	return counts, nil
}
