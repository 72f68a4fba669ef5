package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"smartbooker/internal/booking"
	"smartbooker/internal/database"
	"smartbooker/internal/lesson"
)

func newSyncCommand() *cobra.Command {
	var userID int64
	var levelFlag string
	var full bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Extract the remote lesson table and reconcile it into the local ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// Validate the level up front: a typo must not abort the command
			// after the ledger has already been mutated.
			level, ok := lesson.ParseLevel(levelFlag)
			if !ok {
				return fmt.Errorf("unknown level %q", levelFlag)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer func() { _ = db.Close() }()

			session, err := newAuthenticatedSession(ctx, cfg.Platform)
			if err != nil {
				return err
			}
			defer func() { _ = session.Close() }()

			if err := session.OpenScheduler(ctx); err != nil {
				return fmt.Errorf("open scheduler: %w", err)
			}
			if err := session.SelectCourse(ctx, cfg.Platform.CourseCode); err != nil {
				return fmt.Errorf("select course %s: %w", cfg.Platform.CourseCode, err)
			}
			dialog, err := session.OpenBookingDialog(ctx)
			if err != nil {
				return fmt.Errorf("open scheduling dialog: %w", err)
			}
			defer func() { _ = dialog.Close(ctx) }()

			extractor := lesson.NewExtractor(session, lesson.ExtractorConfig{
				RowSelector:  cfg.Platform.Selectors.LessonRows,
				NextSelector: cfg.Platform.Selectors.NextPage,
				Columns:      cfg.Platform.Columns,
				MaxPages:     cfg.Platform.MaxTablePages,
				SettleDelay:  time.Duration(cfg.Platform.SettleDelayMs) * time.Millisecond,
			}, slog.Default())

			rows, err := extractor.ExtractAll(ctx)
			if err != nil {
				return fmt.Errorf("extract lesson table: %w", err)
			}

			ledger := lesson.NewLedger(lesson.NewDBLessonRepository(db), slog.Default())
			if full {
				if err := ledger.Resync(ctx, userID, rows); err != nil {
					return err
				}
				color.Yellow("Full resync: ledger replaced with %d lessons", len(rows))
			} else {
				summary, err := ledger.Reconcile(ctx, userID, rows)
				if err != nil {
					return err
				}
				color.Green("Sync complete: %d created, %d updated, %d unchanged", summary.Created, summary.Updated, summary.Unchanged)
			}

			pending, err := ledger.PendingMandatory(ctx, userID, level)
			if err != nil {
				return err
			}
			queue := booking.NewQueue(booking.NewDBAttemptRepository(db), slog.Default())
			enqueued := 0
			for i := range pending {
				if _, err := queue.Enqueue(ctx, userID, &pending[i]); err != nil {
					return err
				}
				enqueued++
			}
			fmt.Printf("Queued %d pending mandatory lessons for level %s\n", enqueued, level)
			return nil
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 0, "local user ID that owns the ledger")
	cmd.Flags().StringVar(&levelFlag, "level", "A1", "course level to queue bookings for")
	cmd.Flags().BoolVar(&full, "full", false, "replace the whole ledger instead of merging (bypasses the lesson state machine)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
