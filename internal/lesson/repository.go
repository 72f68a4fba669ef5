package lesson

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"smartbooker/internal/database"
)

//go:generate mockgen -source=repository.go -destination=../mocks/lesson/mock_repository.go -package=mock_lesson

// LessonRepository defines persistence operations for the lesson ledger.
type LessonRepository interface {
	FindByUser(ctx context.Context, userID int64) ([]Lesson, error)
	FindByUserAndLevel(ctx context.Context, userID int64, level Level) ([]Lesson, error)
	FindOne(ctx context.Context, userID int64, level Level, number int) (*Lesson, error)
	BatchCreate(ctx context.Context, lessons []*Lesson) error
	Update(ctx context.Context, lesson *Lesson) error
	// ReplaceAll removes every lesson of the user and bulk-inserts the given
	// set in a single transaction. Destructive full-resync path.
	ReplaceAll(ctx context.Context, userID int64, lessons []*Lesson) error
}

// DBLessonRepository implements LessonRepository using MySQL.
type DBLessonRepository struct {
	db *sqlx.DB
}

var _ LessonRepository = (*DBLessonRepository)(nil)

// NewDBLessonRepository creates a new DBLessonRepository.
func NewDBLessonRepository(db *sqlx.DB) *DBLessonRepository {
	return &DBLessonRepository{db: db}
}

func (r *DBLessonRepository) FindByUser(ctx context.Context, userID int64) ([]Lesson, error) {
	var lessons []Lesson
	if err := r.db.SelectContext(ctx, &lessons,
		"SELECT * FROM lessons WHERE user_id = ? ORDER BY level, number", userID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(lessons by user) > %w", err)
	}
	return lessons, nil
}

func (r *DBLessonRepository) FindByUserAndLevel(ctx context.Context, userID int64, level Level) ([]Lesson, error) {
	var lessons []Lesson
	if err := r.db.SelectContext(ctx, &lessons,
		"SELECT * FROM lessons WHERE user_id = ? AND level = ? ORDER BY number", userID, level); err != nil {
		return nil, fmt.Errorf("db.SelectContext(lessons by user and level) > %w", err)
	}
	return lessons, nil
}

// FindOne returns the lesson for (user, level, number), or nil if not found.
func (r *DBLessonRepository) FindOne(ctx context.Context, userID int64, level Level, number int) (*Lesson, error) {
	var lesson Lesson
	err := r.db.GetContext(ctx, &lesson,
		"SELECT * FROM lessons WHERE user_id = ? AND level = ? AND number = ?", userID, level, number)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(lesson) > %w", err)
	}
	return &lesson, nil
}

func (r *DBLessonRepository) BatchCreate(ctx context.Context, lessons []*Lesson) error {
	if len(lessons) == 0 {
		return nil
	}

	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		return insertLessons(ctx, tx, lessons)
	})
}

func (r *DBLessonRepository) Update(ctx context.Context, lesson *Lesson) error {
	if _, err := r.db.ExecContext(ctx,
		`UPDATE lessons
		 SET kind = ?, description = ?, status = ?, scheduled_date = ?, start_time = ?, end_time = ?, remote_row_id = ?
		 WHERE id = ?`,
		lesson.Kind, lesson.Description, lesson.Status,
		lesson.ScheduledDate, lesson.StartTime, lesson.EndTime, lesson.RemoteRowID,
		lesson.ID); err != nil {
		return fmt.Errorf("db.ExecContext(update lesson) > %w", err)
	}
	return nil
}

func (r *DBLessonRepository) ReplaceAll(ctx context.Context, userID int64, lessons []*Lesson) error {
	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM lessons WHERE user_id = ?", userID); err != nil {
			return fmt.Errorf("delete lessons: %w", err)
		}
		return insertLessons(ctx, tx, lessons)
	})
}

func insertLessons(ctx context.Context, tx *sqlx.Tx, lessons []*Lesson) error {
	if len(lessons) == 0 {
		return nil
	}

	query := buildMultiRowInsert(
		"lessons",
		[]string{"user_id", "level", "number", "kind", "description", "status", "scheduled_date", "start_time", "end_time", "remote_row_id"},
		len(lessons),
	)
	var args []interface{}
	for _, l := range lessons {
		args = append(args, l.UserID, l.Level, l.Number, l.Kind, l.Description, l.Status,
			l.ScheduledDate, l.StartTime, l.EndTime, l.RemoteRowID)
	}
	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("insert lessons: %w", err)
	}
	// MySQL guarantees consecutive auto-increment IDs for multi-row INSERT
	// when innodb_autoinc_lock_mode <= 1.
	firstID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get lessons insert ID: %w", err)
	}
	for i := range lessons {
		lessons[i].ID = firstID + int64(i)
	}
	return nil
}

// buildMultiRowInsert builds an INSERT statement with rowCount value tuples.
func buildMultiRowInsert(table string, columns []string, rowCount int) string {
	placeholders := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ") + ")"
	rows := strings.TrimSuffix(strings.Repeat(placeholders+", ", rowCount), ", ")
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES %s", table, strings.Join(columns, ", "), rows)
}
