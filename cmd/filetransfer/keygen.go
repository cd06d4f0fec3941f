package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/filetransfer/filetransfer_api/internal/utils"
	"github.com/spf13/cobra"
)

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate an EdDSA key pair for token signing",
	Long:  `Print a fresh Ed25519 key pair as environment assignments, ready to paste into .env.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		private, public, err := utils.GenerateEdDSAKeys()
		if err != nil {
			return fmt.Errorf("failed to generate keys: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "AUTH_MANAGER_SECRET_PRIVATE_KEY=%s\n", private)
		fmt.Fprintf(out, "AUTH_MANAGER_PUBLIC_KEY=%s\n", public)
		fmt.Fprintln(cmd.ErrOrStderr(), color.YellowString("Keep the private key out of version control."))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keygenCmd)
}
