package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"smartbooker/internal/lesson"
)

//go:generate mockgen -source=repository.go -destination=../mocks/booking/mock_repository.go -package=mock_booking

// AttemptRepository defines persistence operations for booking attempts.
type AttemptRepository interface {
	// FindNonTerminal returns the lesson's attempt that is still live:
	// pending, processing, or failed with retries left. Nil when the lesson
	// has none.
	FindNonTerminal(ctx context.Context, userID int64, level lesson.Level, number int) (*Attempt, error)
	FindPending(ctx context.Context, userID int64) ([]Attempt, error)
	FindFailed(ctx context.Context, userID int64) ([]Attempt, error)
	Create(ctx context.Context, attempt *Attempt) error
	Update(ctx context.Context, attempt *Attempt) error
	CountByStatus(ctx context.Context, userID int64) (map[Status]int, error)
}

// DBAttemptRepository implements AttemptRepository using MySQL.
type DBAttemptRepository struct {
	db *sqlx.DB
}

var _ AttemptRepository = (*DBAttemptRepository)(nil)

// NewDBAttemptRepository creates a new DBAttemptRepository.
func NewDBAttemptRepository(db *sqlx.DB) *DBAttemptRepository {
	return &DBAttemptRepository{db: db}
}

func (r *DBAttemptRepository) FindNonTerminal(ctx context.Context, userID int64, level lesson.Level, number int) (*Attempt, error) {
	var attempt Attempt
	err := r.db.GetContext(ctx, &attempt,
		`SELECT * FROM booking_attempts
		 WHERE user_id = ? AND lesson_level = ? AND lesson_number = ?
		   AND (status IN (?, ?) OR (status = ? AND attempts < ?))
		 ORDER BY id LIMIT 1`,
		userID, level, number,
		StatusPending, StatusProcessing, StatusFailed, MaxAttempts)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(non-terminal attempt) > %w", err)
	}
	return &attempt, nil
}

func (r *DBAttemptRepository) FindPending(ctx context.Context, userID int64) ([]Attempt, error) {
	var attempts []Attempt
	if err := r.db.SelectContext(ctx, &attempts,
		"SELECT * FROM booking_attempts WHERE user_id = ? AND status = ? ORDER BY id",
		userID, StatusPending); err != nil {
		return nil, fmt.Errorf("db.SelectContext(pending attempts) > %w", err)
	}
	return attempts, nil
}

func (r *DBAttemptRepository) FindFailed(ctx context.Context, userID int64) ([]Attempt, error) {
	var attempts []Attempt
	if err := r.db.SelectContext(ctx, &attempts,
		"SELECT * FROM booking_attempts WHERE user_id = ? AND status = ? ORDER BY id",
		userID, StatusFailed); err != nil {
		return nil, fmt.Errorf("db.SelectContext(failed attempts) > %w", err)
	}
	return attempts, nil
}

func (r *DBAttemptRepository) Create(ctx context.Context, attempt *Attempt) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO booking_attempts
		 (user_id, lesson_level, lesson_number, action, status, attempts, last_error, result_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		attempt.UserID, attempt.LessonLevel, attempt.LessonNumber,
		attempt.Action, attempt.Status, attempt.Attempts, attempt.LastError, attempt.ResultID)
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert attempt) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get attempt insert ID: %w", err)
	}
	attempt.ID = id
	return nil
}

func (r *DBAttemptRepository) Update(ctx context.Context, attempt *Attempt) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE booking_attempts
		 SET status = ?, attempts = ?, last_attempt_at = ?, processed_at = ?, last_error = ?, result_id = ?
		 WHERE id = ?`,
		attempt.Status, attempt.Attempts, attempt.LastAttemptAt, attempt.ProcessedAt,
		attempt.LastError, attempt.ResultID, attempt.ID); err != nil {
		return fmt.Errorf("db.ExecContext(update attempt) > %w", err)
	}
	return nil
}

func (r *DBAttemptRepository) CountByStatus(ctx context.Context, userID int64) (map[Status]int, error) {
	rows := []struct {
		Status Status `db:"status"`
		Count  int    `db:"count"`
	}{}
	if err := r.db.SelectContext(ctx, &rows,
		"SELECT status, COUNT(*) AS count FROM booking_attempts WHERE user_id = ? GROUP BY status",
		userID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(attempt counts) > %w", err)
	}

	counts := make(map[Status]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
