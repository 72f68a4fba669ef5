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
	"smartbooker/internal/report"
)

func newStatusCommand() *cobra.Command {
	var userID int64
	var levelFlag string
	var outputFile string
	var exportPDF bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show course progress and booking queue state",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if exportPDF && outputFile == "" {
				return fmt.Errorf("--pdf requires --output")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			level, ok := lesson.ParseLevel(levelFlag)
			if !ok {
				return fmt.Errorf("unknown level %q", levelFlag)
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer func() { _ = db.Close() }()

			ledger := lesson.NewLedger(lesson.NewDBLessonRepository(db), slog.Default())
			progress, err := ledger.Progress(ctx, userID, level)
			if err != nil {
				return err
			}

			queue := booking.NewQueue(booking.NewDBAttemptRepository(db), slog.Default())
			stats, err := queue.Stats(ctx, userID)
			if err != nil {
				return err
			}

			color.Cyan("Level %s: %d/%d mandatory lessons completed (%.1f%%)",
				level, progress.CompletedMandatory, progress.TotalMandatory, progress.Percent)
			fmt.Printf("Queue: %d pending, %d processing, %d processed, %d failed\n",
				stats[booking.StatusPending], stats[booking.StatusProcessing],
				stats[booking.StatusProcessed], stats[booking.StatusFailed])

			next, err := ledger.NextUnscheduledMandatory(ctx, userID, level)
			if err != nil {
				return err
			}
			if next != nil {
				fmt.Printf("Next up: lesson %s-%d (%s)\n", next.Level, next.Number, next.Description)
			}

			if outputFile == "" {
				return nil
			}
			content := report.RenderStatus(report.StatusReport{
				UserID:     userID,
				Level:      level,
				Progress:   progress,
				QueueStats: stats,
				Generated:  time.Now(),
			})
			if err := report.WriteMarkdown(outputFile, content); err != nil {
				return err
			}
			fmt.Printf("Wrote report to %s\n", outputFile)
			if exportPDF {
				pdfPath, err := report.ExportPDF(outputFile)
				if err != nil {
					return fmt.Errorf("export PDF: %w", err)
				}
				fmt.Printf("Wrote PDF to %s\n", pdfPath)
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 0, "local user ID that owns the ledger")
	cmd.Flags().StringVar(&levelFlag, "level", "A1", "course level to report on")
	cmd.Flags().StringVar(&outputFile, "output", "", "write a markdown report to this path")
	cmd.Flags().BoolVar(&exportPDF, "pdf", false, "also export the markdown report as a PDF")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
