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

func newBookCommand() *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Process the booking queue against the scheduling dialog",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

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

			queue := booking.NewQueue(booking.NewDBAttemptRepository(db), slog.Default())
			ledger := lesson.NewLedger(lesson.NewDBLessonRepository(db), slog.Default())
			executor := booking.NewExecutor(
				queue,
				ledger,
				time.Duration(cfg.Booking.DelayMs)*time.Millisecond,
				cfg.Booking.MaxDialogPages,
				slog.Default(),
			)

			report, err := executor.Run(ctx, session, userID, cfg.Platform.CourseCode)
			printBookingReport(report)
			if err != nil {
				return fmt.Errorf("booking run aborted: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 0, "local user ID that owns the booking queue")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func printBookingReport(report booking.Report) {
	if report.Successful > 0 {
		color.Green("Booked %d lessons", report.Successful)
	}
	if report.Failed > 0 {
		color.Red("%d attempts failed", report.Failed)
	}
	for _, failure := range report.Failures {
		if failure.Terminal {
			color.Red("  %s-%d exhausted after %d attempts: %s",
				failure.LessonLevel, failure.LessonNumber, failure.Attempts, failure.Error)
		} else {
			color.Yellow("  %s-%d failed (attempt %d, will retry): %s",
				failure.LessonLevel, failure.LessonNumber, failure.Attempts, failure.Error)
		}
	}
	if report.Successful == 0 && report.Failed == 0 {
		fmt.Println("Nothing to book")
	}
}
