package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"smartbooker/internal/booking"
	"smartbooker/internal/lesson"
)

func TestRenderStatus(t *testing.T) {
	got := RenderStatus(StatusReport{
		UserID: 7,
		Level:  lesson.LevelA1,
		Progress: lesson.Progress{
			CompletedMandatory: 12,
			TotalMandatory:     24,
			Percent:            50,
		},
		QueueStats: map[booking.Status]int{
			booking.StatusPending: 3,
			booking.StatusFailed:  1,
		},
		Generated: time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC),
	})

	assert.Contains(t, got, "# Scheduling status")
	assert.Contains(t, got, "Generated 2026-09-01 10:30 for user 7, level A1.")
	assert.Contains(t, got, "Mandatory lessons completed: 12 of 24 (50.0%)")
	assert.Contains(t, got, "- pending: 3")
	assert.Contains(t, got, "- failed: 1")
	assert.Contains(t, got, "- processed: 0")
}

func TestRenderBookingRun(t *testing.T) {
	t.Run("clean run has no failures section", func(t *testing.T) {
		got := RenderBookingRun(7, lesson.LevelA1, booking.Report{Successful: 2})
		assert.Contains(t, got, "2 booked, 0 failed")
		assert.NotContains(t, got, "## Failures")
	})

	t.Run("failures distinguish exhausted attempts", func(t *testing.T) {
		got := RenderBookingRun(7, lesson.LevelA1, booking.Report{
			Failed: 2,
			Failures: []booking.Failure{
				{LessonLevel: lesson.LevelA1, LessonNumber: 3, Attempts: 1, Error: "conflict"},
				{LessonLevel: lesson.LevelA1, LessonNumber: 4, Attempts: 3, Error: "still broken", Terminal: true},
			},
		})
		assert.Contains(t, got, "lesson A1-3 (attempt 1, retry eligible): conflict")
		assert.Contains(t, got, "lesson A1-4 (attempt 3, EXHAUSTED, operator attention needed): still broken")
	})
}
