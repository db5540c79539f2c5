package main

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/services"
)

func openStore() error {
	if err := database.Connect(cfg); err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	if err := database.Migrate(database.DB); err != nil {
		_ = database.Close(database.DB)
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := openStore(); err != nil {
				return err
			}
			defer database.Close(database.DB)
			slog.Info("migration completed", "tables", len(database.Models()))
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the baseline catalog and site settings into an empty store",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := openStore(); err != nil {
				return err
			}
			defer database.Close(database.DB)

			ctx := cmd.Context()

			result, err := services.NewSeedService(database.DB, nil).Seed(ctx)
			if err != nil {
				return err
			}
			if err := services.NewSettingsService(database.DB).SeedDefaults(ctx); err != nil {
				return err
			}

			if !result.Seeded {
				slog.Info("catalog already seeded, nothing to do")
				return nil
			}
			slog.Info("catalog seeded",
				"services", result.Services,
				"projects", result.Projects,
				"testimonials", result.Testimonials,
				"pricing", result.Pricing,
			)
			return nil
		},
	}
}

func newGrantAdminCmd() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "grant-admin",
		Short: "Set the admin flag for a user id",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(userID)
			if err != nil || id == uuid.Nil {
				return fmt.Errorf("invalid --user-id %q", userID)
			}

			if err := openStore(); err != nil {
				return err
			}
			defer database.Close(database.DB)

			ctx := cmd.Context()
			if err := services.NewAdminService(database.DB).GrantByID(ctx, id); err != nil {
				return err
			}
			slog.Warn("admin flag granted", "user_id", id.String(), "action", "grant_admin", "source", "cli")
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user-id", "", "user id (JWT subject) to elevate")
	_ = cmd.MarkFlagRequired("user-id")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
