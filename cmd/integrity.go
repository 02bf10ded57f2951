package cmd

import (
	"context"
	"errors"
	"fmt"

	"sports-catalog/core/database"
	"sports-catalog/core/storage"
	"sports-catalog/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on snapshot storage and the favourites database",
	Long:  `Checks that the snapshot bucket has the required folder structure and that the favourites table matches the expected schema.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, true)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix the snapshot folder structure",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false)
	},
}

// databaseCmd represents the integrity database command
var databaseCmd = &cobra.Command{
	Use:   "database",
	Short: "Check and fix the favourites table",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, databaseCmd)

	integrityCmd.PersistentFlags().BoolVar(&fixFlag, "fix", false, "Repair what the checks report")
}

func runIntegrityChecks(ctx context.Context, runStructure, runDatabase bool) error {
	rt, err := bootstrap()
	if err != nil {
		return err
	}
	defer rt.Close()
	logg := rt.log

	var store storage.Client
	if runStructure {
		if store, err = storage.NewClient(rt.cfg.Storage); err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
	}

	// Database (Optional unless checked)
	var db *gorm.DB
	if runDatabase {
		if conn, err := database.Connect(rt.cfg.Database); err != nil {
			logg.Warn("Database connection failed", zap.Error(err))
		} else {
			db = conn
		}
	}

	svc := integrity.NewService(store, rt.cfg.Storage.Bucket, logg, db)

	if runStructure {
		logg.Info("Checking snapshot folder structure...")
		missing, err := svc.CheckStructure(ctx)
		if err != nil {
			return fmt.Errorf("structure check failed: %w", err)
		}

		if len(missing) == 0 {
			logg.Info("Structure is intact.")
		} else {
			logg.Warn("Missing folders detected", zap.Strings("missing", missing))
			if fixFlag {
				logg.Info("Fixing missing folders...")
				if err := svc.FixStructure(ctx, missing); err != nil {
					return fmt.Errorf("failed to fix structure: %w", err)
				}
				logg.Info("Structure fixed successfully.")
			} else {
				logg.Info("Run with --fix to create missing folders.")
			}
		}
	}

	if runDatabase {
		logg.Info("Checking favourites table...")
		report, err := svc.CheckDatabase()
		if errors.Is(err, integrity.ErrNoDatabase) {
			logg.Warn("Database check skipped, no connection")
			return nil
		}
		if err != nil {
			return fmt.Errorf("database check failed: %w", err)
		}

		if report.Matched() {
			logg.Info("Favourites table matches expected definition.", zap.String("table", report.Table))
			return nil
		}

		logg.Warn("Favourites table mismatch",
			zap.String("table", report.Table),
			zap.String("status", report.Status),
			zap.Strings("missing_columns", report.MissingColumns),
		)
		if !fixFlag {
			logg.Info("Run with --fix to migrate the table.")
			return nil
		}
		if err := svc.FixDatabase(); err != nil {
			return fmt.Errorf("failed to migrate favourites table: %w", err)
		}
		logg.Info("Favourites table migrated.")
	}
	return nil
}
