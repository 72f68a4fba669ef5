package lesson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   Level
		wantOK bool
	}{
		{name: "exact match", raw: "A1", want: LevelA1, wantOK: true},
		{name: "lowercase with whitespace", raw: " b2 ", want: LevelB2, wantOK: true},
		{name: "unknown level", raw: "D1", wantOK: false},
		{name: "empty", raw: "", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLevel(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestKindFromDescription(t *testing.T) {
	tests := []struct {
		name          string
		description   string
		want          Kind
		wantMandatory bool
	}{
		{name: "intro lesson", description: "INTRO UNIDAD 1", want: KindIntro, wantMandatory: true},
		{name: "class lesson lowercase", description: "Clase 5", want: KindClass, wantMandatory: true},
		{name: "quiz", description: "Quiz Unidad 2", want: KindQuizUnit, wantMandatory: false},
		{name: "smart zone", description: "Smart Zone", want: KindSmartZone, wantMandatory: false},
		{name: "exam prep", description: "Preparación Examen Final", want: KindExamPrep, wantMandatory: true},
		{name: "final exam", description: "Examen Final", want: KindFinalExam, wantMandatory: true},
		{name: "unmatched description", description: "Taller de conversación", want: KindOther, wantMandatory: false},
		{name: "empty description", description: "", want: KindUnknown, wantMandatory: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KindFromDescription(tt.description)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantMandatory, got.Mandatory())
		})
	}
}

func TestStatusFromLabel(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  Status
	}{
		{name: "taken is completed", label: "Tomada", want: StatusCompleted},
		{name: "pending", label: "Pendiente", want: StatusPending},
		{name: "in progress", label: "En Curso", want: StatusInProgress},
		{name: "scheduled", label: "Programada", want: StatusScheduled},
		{name: "cancelled", label: "Cancelada", want: StatusCancelled},
		{name: "no show with accent", label: "No asistió", want: StatusNoShow},
		{name: "no show without accent", label: "No asistio", want: StatusNoShow},
		{name: "unknown label defaults to pending", label: "Reprogramada", want: StatusPending},
		{name: "empty label defaults to pending", label: "", want: StatusPending},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFromLabel(tt.label))
		})
	}
}

func TestLesson_TransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		wantErr bool
	}{
		{name: "pending to scheduled", from: StatusPending, to: StatusScheduled},
		{name: "scheduled to in progress", from: StatusScheduled, to: StatusInProgress},
		{name: "in progress to completed", from: StatusInProgress, to: StatusCompleted},
		{name: "cancelled can be rescheduled", from: StatusCancelled, to: StatusScheduled},
		{name: "no show can be rescheduled", from: StatusNoShow, to: StatusScheduled},
		{name: "pending cannot complete directly", from: StatusPending, to: StatusCompleted, wantErr: true},
		{name: "completed is terminal", from: StatusCompleted, to: StatusScheduled, wantErr: true},
		{name: "completed cannot regress to pending", from: StatusCompleted, to: StatusPending, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &Lesson{Status: tt.from}
			err := l.TransitionTo(tt.to)
			if tt.wantErr {
				var invalidErr *InvalidTransitionError
				require.ErrorAs(t, err, &invalidErr)
				assert.Equal(t, tt.from, invalidErr.From)
				assert.Equal(t, tt.to, invalidErr.To)
				assert.Equal(t, tt.from, l.Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, l.Status)
		})
	}
}
