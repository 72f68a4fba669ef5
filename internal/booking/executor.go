package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"smartbooker/internal/lesson"
	"smartbooker/internal/platform"
)

// Failure describes one attempt that did not book in this run.
type Failure struct {
	LessonLevel  lesson.Level
	LessonNumber int
	Attempts     int
	Error        string
	Terminal     bool
}

// Report summarizes one booking run.
type Report struct {
	Successful int
	Failed     int
	Failures   []Failure
}

// Executor drives the scheduling dialog to book queued lessons one at a
// time, strictly in enqueue order. One lesson's failure never aborts the
// rest of the run; only a dialog left in an unknown state does.
type Executor struct {
	queue          *Queue
	ledger         *lesson.Ledger
	logger         *slog.Logger
	delay          time.Duration
	maxDialogPages int
	sleep          func(time.Duration)
}

func NewExecutor(queue *Queue, ledger *lesson.Ledger, delay time.Duration, maxDialogPages int, logger *slog.Logger) *Executor {
	return &Executor{
		queue:          queue,
		ledger:         ledger,
		logger:         logger,
		delay:          delay,
		maxDialogPages: maxDialogPages,
		sleep:          time.Sleep,
	}
}

// Run processes the user's eligible attempts against an authenticated
// session. It navigates to the scheduling dialog once and reselects rows
// per attempt.
func (e *Executor) Run(ctx context.Context, session platform.Session, userID int64, courseCode string) (Report, error) {
	var report Report

	attempts, err := e.queue.Eligible(ctx, userID)
	if err != nil {
		return report, err
	}
	if len(attempts) == 0 {
		e.logger.Info("booking queue empty, nothing to process", "user_id", userID)
		return report, nil
	}

	if err := session.OpenScheduler(ctx); err != nil {
		return report, fmt.Errorf("open scheduler: %w", err)
	}
	if err := session.SelectCourse(ctx, courseCode); err != nil {
		return report, fmt.Errorf("select course %s: %w", courseCode, err)
	}
	dialog, err := session.OpenBookingDialog(ctx)
	if err != nil {
		return report, fmt.Errorf("open booking dialog: %w", err)
	}
	defer func() {
		if closeErr := dialog.Close(ctx); closeErr != nil {
			e.logger.Warn("could not close booking dialog", "error", closeErr)
		}
	}()

	for i := range attempts {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		attempt := &attempts[i]
		if err := e.processAttempt(ctx, dialog, attempt, &report); err != nil {
			return report, err
		}
	}

	return report, nil
}

func (e *Executor) processAttempt(ctx context.Context, dialog platform.Dialog, attempt *Attempt, report *Report) error {
	// A transition failure here is an ordering bug, not a booking failure.
	if err := attempt.StartProcessing(); err != nil {
		return err
	}
	if err := e.queue.Save(ctx, attempt); err != nil {
		return err
	}

	outcome, bookErr := e.book(ctx, dialog, attempt.LessonNumber)
	if bookErr == nil && outcome.Confirmed {
		return e.recordSuccess(ctx, attempt, outcome, report)
	}

	message := failureMessage(outcome, bookErr)
	if err := attempt.MarkFailed(message); err != nil {
		return err
	}
	if err := e.queue.Save(ctx, attempt); err != nil {
		return err
	}
	report.Failed++
	report.Failures = append(report.Failures, Failure{
		LessonLevel:  attempt.LessonLevel,
		LessonNumber: attempt.LessonNumber,
		Attempts:     attempt.Attempts,
		Error:        message,
		Terminal:     attempt.Terminal(),
	})
	e.logger.Warn("booking attempt failed",
		"level", attempt.LessonLevel, "number", attempt.LessonNumber,
		"attempts", attempt.Attempts, "error", message)

	// A missing row is isolated to this lesson. Anything else left the
	// dialog in an unknown state, and pressing on would book blind.
	var navErr *platform.NavError
	if bookErr != nil && !errors.As(bookErr, &navErr) {
		return fmt.Errorf("booking dialog in unknown state after lesson %d: %w", attempt.LessonNumber, bookErr)
	}
	// No delay after a failure: fail fast into the next attempt.
	return nil
}

func (e *Executor) book(ctx context.Context, dialog platform.Dialog, number int) (platform.Outcome, error) {
	if err := dialog.SelectLesson(ctx, number, e.maxDialogPages); err != nil {
		return platform.Outcome{}, err
	}
	return dialog.Assign(ctx)
}

func (e *Executor) recordSuccess(ctx context.Context, attempt *Attempt, outcome platform.Outcome, report *Report) error {
	if err := attempt.MarkProcessed(outcome.ConfirmationID); err != nil {
		return err
	}
	if err := e.queue.Save(ctx, attempt); err != nil {
		return err
	}
	if err := e.ledger.MarkScheduled(ctx, attempt.UserID, attempt.LessonLevel, attempt.LessonNumber); err != nil {
		// The booking went through remotely; a ledger inconsistency must not
		// undo or re-run it. Surface and move on.
		e.logger.Warn("booked remotely but could not advance ledger record",
			"level", attempt.LessonLevel, "number", attempt.LessonNumber, "error", err)
	}
	report.Successful++
	e.logger.Info("booked lesson",
		"level", attempt.LessonLevel, "number", attempt.LessonNumber, "result_id", attempt.ResultID)

	// Spacing successful bookings keeps the platform's rate limiting quiet.
	e.sleep(e.delay)
	return nil
}

func failureMessage(outcome platform.Outcome, err error) string {
	switch {
	case err != nil:
		return err.Error()
	case outcome.Conflict:
		return fmt.Sprintf("schedule conflict: %s", outcome.Message)
	case outcome.Message != "":
		return outcome.Message
	default:
		return "dialog reported neither confirmation nor error"
	}
}
