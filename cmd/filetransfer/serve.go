package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/filetransfer/filetransfer_api/internal/api"
	"github.com/filetransfer/filetransfer_api/internal/auth"
	"github.com/filetransfer/filetransfer_api/internal/database"
	"github.com/filetransfer/filetransfer_api/internal/filestore"
	"github.com/filetransfer/filetransfer_api/internal/ownership"
	"github.com/filetransfer/filetransfer_api/internal/store"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long:  `Apply pending migrations and serve the JSON API until SIGINT or SIGTERM.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		skipMigrations, _ := cmd.Flags().GetBool("skip-migrations")

		cfg, logger, err := setup()
		if err != nil {
			return err
		}

		st, err := store.NewPGStore(cfg)
		if err != nil {
			return fmt.Errorf("failed to create store: %w", err)
		}
		defer st.Close()

		if !skipMigrations {
			if err := database.RunMigrations(st.Conn(), cfg); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
		}

		files, err := filestore.NewMinioStore(cfg)
		if err != nil {
			return fmt.Errorf("failed to create file store: %w", err)
		}

		authManager, err := auth.NewJWTManager(cfg, st)
		if err != nil {
			return fmt.Errorf("failed to create auth manager: %w", err)
		}

		service := ownership.NewService(st, files, logger)
		server := api.NewServer(cfg, st, service, authManager, logger)

		errCh := make(chan error, 1)
		go func() {
			if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		signCh := make(chan os.Signal, 1)
		signal.Notify(signCh, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return fmt.Errorf("failed to start server: %w", err)
		case sig := <-signCh:
			logger.Infof("received %s, shutting down gracefully", sig)
		}

		if err := server.Shutdown(); err != nil {
			logger.WithError(err).Error("error during shutdown")
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().Bool("skip-migrations", false, "do not apply pending migrations on start")
	rootCmd.AddCommand(serveCmd)
}
