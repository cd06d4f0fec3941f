package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/filetransfer/filetransfer_api/internal/config"
	"github.com/filetransfer/filetransfer_api/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "filetransfer",
	Short:         "File registry with ownership transfer",
	Long:          `FileTransfer keeps a registry of uploaded files, moves their ownership between users and records every change in an append-only ledger.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), color.RedString("Error:"), err)
		return err
	}
	return nil
}

// setup loads the configuration and the logger every subcommand needs.
func setup() (config.Config, *logging.Logger, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return cfg, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.NewLogger(cfg)
	if err != nil {
		return cfg, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return cfg, logger, nil
}
