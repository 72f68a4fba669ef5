// Package platform drives one authenticated browser session against the
// remote scheduling platform. All state-changing calls are sequential; a
// session must never process two interactions concurrently.
package platform

import "context"

//go:generate mockgen -source=session.go -destination=../mocks/platform/mock_session.go -package=mock_platform

// Credentials authenticate one user against the platform. Never logged.
type Credentials struct {
	Username string
	Password string
}

// Session exposes the navigation primitives of the remote platform plus a
// raw script-execution primitive for in-page extraction.
type Session interface {
	// Authenticate logs in. Calling it on an already authenticated session
	// is a no-op: the login form must not be double-submitted.
	Authenticate(ctx context.Context, creds Credentials) error
	// OpenScheduler navigates from the dashboard to the scheduling area.
	OpenScheduler(ctx context.Context) error
	// SelectCourse selects the course row for the given course code.
	SelectCourse(ctx context.Context, courseCode string) error
	// OpenBookingDialog opens the scheduling dialog and returns a handle to it.
	OpenBookingDialog(ctx context.Context) (Dialog, error)
	// RunInPage evaluates script in the page and unmarshals the result into
	// out (out may be nil when the result is irrelevant). Bounded by the
	// configured script timeout.
	RunInPage(ctx context.Context, script string, out any) error
	Close() error
}

// Outcome is the interpreted result of submitting the scheduling dialog.
type Outcome struct {
	Confirmed      bool
	Conflict       bool
	ConfirmationID string
	Message        string
}

// Dialog is a handle to the open scheduling dialog.
type Dialog interface {
	// SelectLesson locates and selects the row whose lesson number matches,
	// paging forward up to maxPages before giving up with a NavError.
	SelectLesson(ctx context.Context, number int, maxPages int) error
	// Assign submits the currently selected row and interprets the dialog's
	// resulting state.
	Assign(ctx context.Context) (Outcome, error)
	Close(ctx context.Context) error
}
