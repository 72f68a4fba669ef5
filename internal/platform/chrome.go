package platform

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"github.com/chromedp/chromedp/kb"

	"smartbooker/internal/config"
)

const waitPollInterval = 250 * time.Millisecond

// ChromeSession implements Session on top of a headless Chrome instance.
// One instance owns one browser context; all calls are sequential.
type ChromeSession struct {
	cfg       config.PlatformConfig
	selectors config.SelectorConfig
	logger    *slog.Logger

	waitTimeout   time.Duration
	settleDelay   time.Duration
	scriptTimeout time.Duration

	browserCtx    context.Context
	cancelBrowser context.CancelFunc
	cancelAlloc   context.CancelFunc

	authenticated bool
}

var _ Session = (*ChromeSession)(nil)

// NewChromeSession allocates a fresh browser context. The session is not
// authenticated until Authenticate succeeds.
func NewChromeSession(cfg config.PlatformConfig, logger *slog.Logger) *ChromeSession {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.NoSandbox,
	)
	if cfg.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(cfg.UserAgent))
	}
	if !cfg.Headless {
		opts = append(opts, chromedp.Flag("headless", false))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)

	// Page-side exceptions are invisible otherwise; surface them at debug.
	chromedp.ListenTarget(browserCtx, func(ev interface{}) {
		if e, ok := ev.(*runtime.EventExceptionThrown); ok {
			logger.Debug("page exception", "details", e.ExceptionDetails.Text)
		}
	})

	return &ChromeSession{
		cfg:           cfg,
		selectors:     cfg.Selectors,
		logger:        logger,
		waitTimeout:   time.Duration(cfg.WaitTimeoutSeconds) * time.Second,
		settleDelay:   time.Duration(cfg.SettleDelayMs) * time.Millisecond,
		scriptTimeout: time.Duration(cfg.ScriptTimeoutSeconds) * time.Second,
		browserCtx:    browserCtx,
		cancelBrowser: cancelBrowser,
		cancelAlloc:   cancelAlloc,
	}
}

func (s *ChromeSession) Close() error {
	s.cancelBrowser()
	s.cancelAlloc()
	return nil
}

// run executes chromedp actions against the session's browser context with
// the given timeout, honoring cancellation of the caller's context.
func (s *ChromeSession) run(ctx context.Context, timeout time.Duration, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithTimeout(s.browserCtx, timeout)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()
	return chromedp.Run(runCtx, actions...)
}

// waitFor polls for a selector until it appears or the wait window expires.
// Element presence is polled instead of using a blocking wait so that an
// exhausted window surfaces as a NavError carrying how long was waited.
func (s *ChromeSession) waitFor(ctx context.Context, selector string) error {
	started := time.Now()
	attempts := uint(s.waitTimeout / waitPollInterval)
	if attempts == 0 {
		attempts = 1
	}

	var runErr error
	err := retry.Do(
		func() error {
			var present bool
			script := fmt.Sprintf(`document.querySelector(%q) !== null`, selector)
			if err := s.run(ctx, s.waitTimeout, chromedp.Evaluate(script, &present)); err != nil {
				runErr = err
				return retry.Unrecoverable(err)
			}
			if !present {
				return fmt.Errorf("selector %q not present yet", selector)
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(waitPollInterval),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)
	if err == nil {
		return nil
	}
	if runErr != nil {
		return &ScriptError{Err: runErr}
	}
	return &NavError{Selector: selector, Waited: time.Since(started)}
}

// isPresent reports element presence without waiting out the full window.
func (s *ChromeSession) isPresent(ctx context.Context, selector string) (bool, error) {
	var present bool
	script := fmt.Sprintf(`document.querySelector(%q) !== null`, selector)
	if err := s.run(ctx, s.waitTimeout, chromedp.Evaluate(script, &present)); err != nil {
		return false, &ScriptError{Err: err}
	}
	return present, nil
}

func (s *ChromeSession) Authenticate(ctx context.Context, creds Credentials) error {
	if creds.Username == "" || creds.Password == "" {
		return &AuthError{Reason: "missing credentials"}
	}
	// Re-authenticating a live session would double-submit the login form.
	if s.authenticated {
		return nil
	}

	loginURL := s.cfg.BaseURL + s.cfg.LoginPath
	s.logger.Info("opening login page", "url", loginURL)
	if err := s.run(ctx, s.waitTimeout, chromedp.Navigate(loginURL)); err != nil {
		return &AuthError{Reason: "login page unreachable", Err: err}
	}
	if err := s.waitFor(ctx, s.selectors.LoginUsername); err != nil {
		return &AuthError{Reason: "login form did not render", Err: err}
	}

	if err := s.run(ctx, s.waitTimeout,
		chromedp.SendKeys(s.selectors.LoginUsername, creds.Username, chromedp.ByQuery),
		chromedp.SendKeys(s.selectors.LoginPassword, creds.Password, chromedp.ByQuery),
		chromedp.Click(s.selectors.LoginSubmit, chromedp.ByQuery),
	); err != nil {
		return &AuthError{Reason: "could not submit login form", Err: err}
	}
	time.Sleep(s.settleDelay)

	if err := s.closeInfoPopup(ctx); err != nil {
		return err
	}

	if err := s.waitFor(ctx, s.selectors.DashboardName); err != nil {
		return &AuthError{Reason: "dashboard did not load, credentials likely rejected", Err: err}
	}

	s.authenticated = true
	// Credentials never reach a log record, not even the username half.
	s.logger.Info("authenticated")
	return nil
}

// closeInfoPopup dismisses the informational popup the platform sometimes
// shows right after login.
func (s *ChromeSession) closeInfoPopup(ctx context.Context) error {
	present, err := s.isPresent(ctx, s.selectors.InfoPopupClose)
	if err != nil {
		return err
	}
	if !present {
		return nil
	}
	s.logger.Debug("dismissing info popup")
	if err := s.run(ctx, s.waitTimeout, chromedp.Click(s.selectors.InfoPopupClose, chromedp.ByQuery)); err != nil {
		return &ScriptError{Err: err}
	}
	time.Sleep(s.settleDelay)
	return nil
}

func (s *ChromeSession) OpenScheduler(ctx context.Context) error {
	if err := s.waitFor(ctx, s.selectors.ScheduleIcon); err != nil {
		return err
	}
	if err := s.run(ctx, s.waitTimeout, chromedp.Click(s.selectors.ScheduleIcon, chromedp.ByQuery)); err != nil {
		return &ScriptError{Err: err}
	}
	time.Sleep(s.settleDelay)
	return s.waitFor(ctx, s.selectors.CourseRow)
}

func (s *ChromeSession) SelectCourse(ctx context.Context, courseCode string) error {
	// Prefer the row whose text carries the course code; fall back to the
	// configured fixed row when the grid shows a single enrollment.
	script := fmt.Sprintf(`(() => {
		const rows = Array.from(document.querySelectorAll(%q));
		const match = rows.find((r) => r.innerText.includes(%q));
		const row = match || document.querySelector(%q);
		if (!row) return false;
		row.click();
		return true;
	})()`, s.selectors.LessonRows, courseCode, s.selectors.CourseRow)

	var clicked bool
	if err := s.run(ctx, s.waitTimeout, chromedp.Evaluate(script, &clicked)); err != nil {
		return &ScriptError{Err: err}
	}
	if !clicked {
		return &NavError{Selector: s.selectors.CourseRow, Waited: s.waitTimeout}
	}
	time.Sleep(s.settleDelay)
	return nil
}

func (s *ChromeSession) OpenBookingDialog(ctx context.Context) (Dialog, error) {
	if err := s.waitFor(ctx, s.selectors.StartButton); err != nil {
		return nil, err
	}
	if err := s.run(ctx, s.waitTimeout, chromedp.Click(s.selectors.StartButton, chromedp.ByQuery)); err != nil {
		return nil, &ScriptError{Err: err}
	}
	time.Sleep(s.settleDelay)
	if err := s.waitFor(ctx, s.selectors.DialogRoot); err != nil {
		return nil, err
	}
	return &chromeDialog{session: s}, nil
}

func (s *ChromeSession) RunInPage(ctx context.Context, script string, out any) error {
	if err := s.run(ctx, s.scriptTimeout, chromedp.Evaluate(script, out)); err != nil {
		return &ScriptError{Err: err}
	}
	return nil
}

// chromeDialog drives the scheduling dialog of an open ChromeSession.
type chromeDialog struct {
	session *ChromeSession
}

var _ Dialog = (*chromeDialog)(nil)

func (d *chromeDialog) SelectLesson(ctx context.Context, number int, maxPages int) error {
	s := d.session
	started := time.Now()

	for page := 0; page < maxPages; page++ {
		clicked, err := d.clickLessonRow(ctx, number)
		if err != nil {
			return err
		}
		if clicked {
			time.Sleep(s.settleDelay)
			return nil
		}

		hasNext, err := d.nextPage(ctx)
		if err != nil {
			return err
		}
		if !hasNext {
			break
		}
		time.Sleep(s.settleDelay)
	}
	return &NavError{
		Selector: fmt.Sprintf("%s (lesson %d)", s.selectors.LessonRows, number),
		Waited:   time.Since(started),
	}
}

// clickLessonRow clicks the row whose second cell equals the lesson number.
func (d *chromeDialog) clickLessonRow(ctx context.Context, number int) (bool, error) {
	s := d.session
	script := fmt.Sprintf(`(() => {
		const rows = Array.from(document.querySelectorAll(%q));
		const row = rows.find((r) => {
			const cells = r.querySelectorAll('td');
			return cells.length > 1 && parseInt(cells[1].innerText.trim(), 10) === %d;
		});
		if (!row) return false;
		row.click();
		return true;
	})()`, s.selectors.LessonRows, number)

	var clicked bool
	if err := s.run(ctx, s.waitTimeout, chromedp.Evaluate(script, &clicked)); err != nil {
		return false, &ScriptError{Err: err}
	}
	return clicked, nil
}

// nextPage clicks the "next page" control if present and enabled.
func (d *chromeDialog) nextPage(ctx context.Context) (bool, error) {
	s := d.session
	script := fmt.Sprintf(`(() => {
		const next = document.querySelector(%q);
		if (!next || next.disabled || next.classList.contains('disabled')) return false;
		next.click();
		return true;
	})()`, s.selectors.NextPage)

	var clicked bool
	if err := s.run(ctx, s.waitTimeout, chromedp.Evaluate(script, &clicked)); err != nil {
		return false, &ScriptError{Err: err}
	}
	return clicked, nil
}

func (d *chromeDialog) Assign(ctx context.Context) (Outcome, error) {
	s := d.session
	if err := s.run(ctx, s.waitTimeout, chromedp.Click(s.selectors.AssignButton, chromedp.ByQuery)); err != nil {
		return Outcome{}, &ScriptError{Err: err}
	}
	time.Sleep(s.settleDelay)

	script := fmt.Sprintf(`(() => {
		const banner = document.querySelector(%q);
		const message = banner ? banner.innerText.trim() : '';
		const confirmation = document.querySelector('[id*="CONFIRMACION"], .gx-confirmation');
		return {
			message: message,
			confirmationId: confirmation ? confirmation.innerText.trim() : '',
		};
	})()`, s.selectors.ErrorBanner)

	var raw struct {
		Message        string `json:"message"`
		ConfirmationID string `json:"confirmationId"`
	}
	if err := s.run(ctx, s.waitTimeout, chromedp.Evaluate(script, &raw)); err != nil {
		return Outcome{}, &ScriptError{Err: err}
	}

	outcome := interpretDialogState(raw.Message, raw.ConfirmationID)
	s.logger.Debug("dialog outcome",
		"confirmed", outcome.Confirmed, "conflict", outcome.Conflict, "message", outcome.Message)
	return outcome, nil
}

func (d *chromeDialog) Close(ctx context.Context) error {
	s := d.session
	const script = `(() => {
		const close = document.querySelector('.close, .modal-close, [aria-label="Close"]');
		if (close) { close.click(); return true; }
		return false;
	})()`
	var closed bool
	if err := s.run(ctx, s.waitTimeout, chromedp.Evaluate(script, &closed)); err != nil {
		return &ScriptError{Err: err}
	}
	if !closed {
		// No close control; ESC works on the platform's modals.
		if err := s.run(ctx, s.waitTimeout, chromedp.KeyEvent(kb.Escape)); err != nil {
			return &ScriptError{Err: err}
		}
	}
	return nil
}

// interpretDialogState translates the dialog's banner text into an Outcome.
// Conflict wording follows the platform's Spanish UI.
func interpretDialogState(message, confirmationID string) Outcome {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "conflicto") || strings.Contains(lower, "ocupado"):
		return Outcome{Conflict: true, Message: message}
	case message != "":
		return Outcome{Message: message}
	default:
		return Outcome{Confirmed: true, ConfirmationID: confirmationID}
	}
}
