package platform

import (
	"fmt"
	"time"
)

// AuthError means the platform rejected or never reached the login flow.
// It is fatal for the run and is never retried automatically.
type AuthError struct {
	Reason string
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("authentication failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("authentication failed: %s", e.Reason)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// NavError means an expected page element never showed up within the wait
// window. The caller decides whether that is structural drift or transient
// rendering lag.
type NavError struct {
	Selector string
	Waited   time.Duration
}

func (e *NavError) Error() string {
	return fmt.Sprintf("navigation: %q not found within %dms", e.Selector, e.Waited.Milliseconds())
}

// ScriptError means an in-page script failed or timed out.
type ScriptError struct {
	Err error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("in-page script failed: %v", e.Err)
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}
