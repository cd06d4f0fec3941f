package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/filetransfer/filetransfer_api/internal/config"
	"github.com/filetransfer/filetransfer_api/internal/database"
	"github.com/filetransfer/filetransfer_api/internal/logging"
	"github.com/filetransfer/filetransfer_api/internal/store"
	"github.com/spf13/cobra"
)

type migration struct {
	cfg    config.Config
	logger *logging.Logger
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st store.Store, run migration) error {
			if err := database.RunMigrations(st.Conn(), run.cfg); err != nil {
				return err
			}
			run.logger.Info("migrations applied")
			return nil
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back every migration",
	Long:  `Roll back every migration. This drops all users, files and the transfer ledger.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			return fmt.Errorf("refusing to drop the schema without --force")
		}

		return withStore(func(st store.Store, run migration) error {
			if err := database.DownMigrations(st.Conn(), run.cfg); err != nil {
				return err
			}
			run.logger.Warn("all migrations rolled back")
			return nil
		})
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the applied schema version",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st store.Store, run migration) error {
			v, err := database.Version(st.Conn(), run.cfg)
			if err != nil {
				return err
			}
			if v == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), color.YellowString("no migrations applied"))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema version %s\n", color.GreenString("%d", v))
			return nil
		})
	},
}

func withStore(fn func(store.Store, migration) error) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	st, err := store.NewPGStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	defer st.Close()

	return fn(st, migration{cfg: cfg, logger: logger})
}

func init() {
	migrateDownCmd.Flags().Bool("force", false, "confirm dropping the schema")

	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateVersionCmd)
	rootCmd.AddCommand(migrateCmd)
}
