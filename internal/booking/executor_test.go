package booking_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"smartbooker/internal/booking"
	"smartbooker/internal/lesson"
	mock_booking "smartbooker/internal/mocks/booking"
	mock_lesson "smartbooker/internal/mocks/lesson"
	mock_platform "smartbooker/internal/mocks/platform"
	"smartbooker/internal/platform"
)

const (
	testUserID     int64 = 7
	testCourseCode       = "INGA1C1"
	maxDialogPages       = 26
)

type executorFixture struct {
	attemptRepo *mock_booking.MockAttemptRepository
	lessonRepo  *mock_lesson.MockLessonRepository
	session     *mock_platform.MockSession
	dialog      *mock_platform.MockDialog
	executor    *booking.Executor
}

func newExecutorFixture(t *testing.T) *executorFixture {
	ctrl := gomock.NewController(t)
	attemptRepo := mock_booking.NewMockAttemptRepository(ctrl)
	lessonRepo := mock_lesson.NewMockLessonRepository(ctrl)

	queue := booking.NewQueue(attemptRepo, discardLogger())
	ledger := lesson.NewLedger(lessonRepo, discardLogger())

	return &executorFixture{
		attemptRepo: attemptRepo,
		lessonRepo:  lessonRepo,
		session:     mock_platform.NewMockSession(ctrl),
		dialog:      mock_platform.NewMockDialog(ctrl),
		executor:    booking.NewExecutor(queue, ledger, 0*time.Millisecond, maxDialogPages, discardLogger()),
	}
}

// expectDialogNavigation wires the one-time navigation into the scheduling
// dialog shared by every non-empty run.
func (f *executorFixture) expectDialogNavigation() {
	f.session.EXPECT().OpenScheduler(gomock.Any()).Return(nil)
	f.session.EXPECT().SelectCourse(gomock.Any(), testCourseCode).Return(nil)
	f.session.EXPECT().OpenBookingDialog(gomock.Any()).Return(f.dialog, nil)
	f.dialog.EXPECT().Close(gomock.Any()).Return(nil)
}

func pendingAttempt(id int64, number int) booking.Attempt {
	return booking.Attempt{
		ID:           id,
		UserID:       testUserID,
		LessonLevel:  lesson.LevelA1,
		LessonNumber: number,
		Action:       booking.ActionRegisterClass,
		Status:       booking.StatusPending,
	}
}

func TestExecutor_Run(t *testing.T) {
	t.Run("empty queue touches nothing", func(t *testing.T) {
		f := newExecutorFixture(t)
		f.attemptRepo.EXPECT().FindPending(gomock.Any(), testUserID).Return(nil, nil)
		// No session navigation when there is nothing to book.

		report, err := f.executor.Run(context.Background(), f.session, testUserID, testCourseCode)
		require.NoError(t, err)
		assert.Zero(t, report.Successful)
		assert.Zero(t, report.Failed)
	})

	t.Run("confirmed booking advances the attempt and the ledger", func(t *testing.T) {
		f := newExecutorFixture(t)
		f.attemptRepo.EXPECT().FindPending(gomock.Any(), testUserID).
			Return([]booking.Attempt{pendingAttempt(1, 3)}, nil)
		f.expectDialogNavigation()

		f.dialog.EXPECT().SelectLesson(gomock.Any(), 3, maxDialogPages).Return(nil)
		f.dialog.EXPECT().Assign(gomock.Any()).
			Return(platform.Outcome{Confirmed: true, ConfirmationID: "CONF-1"}, nil)

		var statuses []booking.Status
		f.attemptRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, attempt *booking.Attempt) error {
				statuses = append(statuses, attempt.Status)
				return nil
			}).Times(2)

		f.lessonRepo.EXPECT().FindOne(gomock.Any(), testUserID, lesson.LevelA1, 3).
			Return(&lesson.Lesson{ID: 3, Status: lesson.StatusPending}, nil)
		f.lessonRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, record *lesson.Lesson) error {
				assert.Equal(t, lesson.StatusScheduled, record.Status)
				return nil
			})

		report, err := f.executor.Run(context.Background(), f.session, testUserID, testCourseCode)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Successful)
		assert.Zero(t, report.Failed)
		assert.Equal(t, []booking.Status{booking.StatusProcessing, booking.StatusProcessed}, statuses)
	})

	t.Run("schedule conflict fails the attempt but not the run", func(t *testing.T) {
		f := newExecutorFixture(t)
		f.attemptRepo.EXPECT().FindPending(gomock.Any(), testUserID).
			Return([]booking.Attempt{pendingAttempt(1, 3)}, nil)
		f.expectDialogNavigation()

		f.dialog.EXPECT().SelectLesson(gomock.Any(), 3, maxDialogPages).Return(nil)
		f.dialog.EXPECT().Assign(gomock.Any()).
			Return(platform.Outcome{Conflict: true, Message: "Horario en conflicto"}, nil)
		f.attemptRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		report, err := f.executor.Run(context.Background(), f.session, testUserID, testCourseCode)
		require.NoError(t, err)
		assert.Zero(t, report.Successful)
		assert.Equal(t, 1, report.Failed)
		require.Len(t, report.Failures, 1)
		assert.Contains(t, report.Failures[0].Error, "schedule conflict")
		assert.False(t, report.Failures[0].Terminal)
	})

	t.Run("unconfirmed outcome without a banner still fails the attempt", func(t *testing.T) {
		f := newExecutorFixture(t)
		f.attemptRepo.EXPECT().FindPending(gomock.Any(), testUserID).
			Return([]booking.Attempt{pendingAttempt(1, 3)}, nil)
		f.expectDialogNavigation()

		// A dialog implementation may legally report neither a confirmation
		// nor an error banner; that must never count as booked.
		f.dialog.EXPECT().SelectLesson(gomock.Any(), 3, maxDialogPages).Return(nil)
		f.dialog.EXPECT().Assign(gomock.Any()).Return(platform.Outcome{}, nil)
		f.attemptRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		report, err := f.executor.Run(context.Background(), f.session, testUserID, testCourseCode)
		require.NoError(t, err)
		assert.Zero(t, report.Successful)
		require.Len(t, report.Failures, 1)
		assert.Equal(t, "dialog reported neither confirmation nor error", report.Failures[0].Error)
	})

	t.Run("missing lesson row is isolated, the run continues", func(t *testing.T) {
		f := newExecutorFixture(t)
		f.attemptRepo.EXPECT().FindPending(gomock.Any(), testUserID).
			Return([]booking.Attempt{pendingAttempt(1, 3), pendingAttempt(2, 4)}, nil)
		f.expectDialogNavigation()

		navErr := &platform.NavError{Selector: "tr[data-gxrow] (lesson 3)", Waited: time.Second}
		f.dialog.EXPECT().SelectLesson(gomock.Any(), 3, maxDialogPages).Return(navErr)
		f.dialog.EXPECT().SelectLesson(gomock.Any(), 4, maxDialogPages).Return(nil)
		f.dialog.EXPECT().Assign(gomock.Any()).
			Return(platform.Outcome{Confirmed: true, ConfirmationID: "CONF-2"}, nil)

		f.attemptRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).Times(4)
		f.lessonRepo.EXPECT().FindOne(gomock.Any(), testUserID, lesson.LevelA1, 4).
			Return(&lesson.Lesson{ID: 4, Status: lesson.StatusPending}, nil)
		f.lessonRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		report, err := f.executor.Run(context.Background(), f.session, testUserID, testCourseCode)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Successful)
		assert.Equal(t, 1, report.Failed)
	})

	t.Run("unknown dialog state aborts the run", func(t *testing.T) {
		f := newExecutorFixture(t)
		f.attemptRepo.EXPECT().FindPending(gomock.Any(), testUserID).
			Return([]booking.Attempt{pendingAttempt(1, 3), pendingAttempt(2, 4)}, nil)
		f.expectDialogNavigation()

		scriptErr := &platform.ScriptError{Err: errors.New("evaluate timed out")}
		f.dialog.EXPECT().SelectLesson(gomock.Any(), 3, maxDialogPages).Return(nil)
		f.dialog.EXPECT().Assign(gomock.Any()).Return(platform.Outcome{}, scriptErr)
		f.attemptRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		// Lesson 4 is never touched.

		report, err := f.executor.Run(context.Background(), f.session, testUserID, testCourseCode)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown state")
		assert.Equal(t, 1, report.Failed)
	})

	t.Run("cancelled context stops between attempts", func(t *testing.T) {
		f := newExecutorFixture(t)
		f.attemptRepo.EXPECT().FindPending(gomock.Any(), testUserID).
			Return([]booking.Attempt{pendingAttempt(1, 3)}, nil)
		f.expectDialogNavigation()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := f.executor.Run(ctx, f.session, testUserID, testCourseCode)
		require.ErrorIs(t, err, context.Canceled)
	})
}
