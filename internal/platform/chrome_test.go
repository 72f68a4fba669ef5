package platform

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChromeSession_Authenticate_NeverLogsCredentials(t *testing.T) {
	creds := Credentials{Username: "student-1", Password: "hunter2"}

	t.Run("already authenticated no-op", func(t *testing.T) {
		var buf bytes.Buffer
		s := &ChromeSession{
			logger:        slog.New(slog.NewTextHandler(&buf, nil)),
			authenticated: true,
		}
		require.NoError(t, s.Authenticate(context.Background(), creds))
		assert.NotContains(t, buf.String(), creds.Username)
		assert.NotContains(t, buf.String(), creds.Password)
	})

	t.Run("missing credentials", func(t *testing.T) {
		var buf bytes.Buffer
		s := &ChromeSession{
			logger: slog.New(slog.NewTextHandler(&buf, nil)),
		}
		err := s.Authenticate(context.Background(), Credentials{Username: "student-1"})
		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		assert.NotContains(t, err.Error(), "student-1")
		assert.NotContains(t, buf.String(), "student-1")
	})
}

func TestInterpretDialogState(t *testing.T) {
	tests := []struct {
		name           string
		message        string
		confirmationID string
		want           Outcome
	}{
		{
			name:           "no banner means confirmed",
			confirmationID: "CONF-17",
			want:           Outcome{Confirmed: true, ConfirmationID: "CONF-17"},
		},
		{
			name: "no banner and no confirmation id still confirms",
			want: Outcome{Confirmed: true},
		},
		{
			name:    "conflict wording",
			message: "Horario en CONFLICTO con otra clase",
			want:    Outcome{Conflict: true, Message: "Horario en CONFLICTO con otra clase"},
		},
		{
			name:    "busy wording",
			message: "El horario está ocupado",
			want:    Outcome{Conflict: true, Message: "El horario está ocupado"},
		},
		{
			name:    "any other banner is a plain failure",
			message: "Sesión expirada",
			want:    Outcome{Message: "Sesión expirada"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, interpretDialogState(tt.message, tt.confirmationID))
		})
	}
}

func TestErrors(t *testing.T) {
	t.Run("nav error carries the selector and wait window", func(t *testing.T) {
		err := &NavError{Selector: "#vUSUNOMBRE", Waited: 15 * time.Second}
		assert.Equal(t, `navigation: "#vUSUNOMBRE" not found within 15000ms`, err.Error())
	})

	t.Run("auth error wraps its cause", func(t *testing.T) {
		cause := errors.New("net::ERR_CONNECTION_REFUSED")
		err := &AuthError{Reason: "login page unreachable", Err: cause}
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "login page unreachable")
	})

	t.Run("script error wraps its cause", func(t *testing.T) {
		cause := errors.New("evaluate timed out")
		err := &ScriptError{Err: cause}
		assert.ErrorIs(t, err, cause)
	})
}
