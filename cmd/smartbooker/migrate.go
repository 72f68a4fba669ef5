package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"smartbooker/internal/database"
	"smartbooker/schemas"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded SQL schema migrations",
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

			entries, err := schemas.Migrations.ReadDir("migrations")
			if err != nil {
				return fmt.Errorf("read embedded migrations: %w", err)
			}
			sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

			for _, entry := range entries {
				content, err := schemas.Migrations.ReadFile("migrations/" + entry.Name())
				if err != nil {
					return fmt.Errorf("read migration %s: %w", entry.Name(), err)
				}
				if _, err := db.ExecContext(ctx, string(content)); err != nil {
					return fmt.Errorf("apply migration %s: %w", entry.Name(), err)
				}
				fmt.Printf("Applied %s\n", entry.Name())
			}
			return nil
		},
	}
}
