package main

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"smartbooker/internal/booking"
	"smartbooker/internal/database"
)

func newRetryCommand() *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "retry",
		Short: "Reset retryable failed attempts back to pending",
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

			queue := booking.NewQueue(booking.NewDBAttemptRepository(db), slog.Default())
			reset, err := queue.RetryFailed(ctx, userID)
			if err != nil {
				return err
			}
			if reset == 0 {
				fmt.Println("No retryable failed attempts")
				return nil
			}
			color.Green("Reset %d failed attempts to pending; run 'smartbooker book' to process them", reset)
			return nil
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 0, "local user ID that owns the booking queue")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
