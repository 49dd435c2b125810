// Package cli defines the pdflock command line interface.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pdflock-cli/internal/core/ports/driven"
	"github.com/custodia-labs/pdflock-cli/internal/core/ports/driving"
	"github.com/custodia-labs/pdflock-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services injected by main before Execute.
var (
	protectService  driving.ProtectService
	settingsService driving.SettingsService
	appConsole      driven.Console
)

// Command flags.
var (
	verboseFlag bool
	inputPath   string
	outputPath  string
)

var rootCmd = &cobra.Command{
	Use:   "pdflock",
	Short: "Create a password-protected PDF",
	Long: `pdflock copies a PDF and writes an encrypted version of it, protected
by a strong password you choose or one it generates for you.

Passwords must be at least 16 characters long and include a digit, an
uppercase letter, a lowercase letter and a special character.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	RunE: runProtect,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Path to the input PDF file")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to the output password-protected PDF file")
	_ = rootCmd.MarkFlagRequired("input")
	_ = rootCmd.MarkFlagRequired("output")
}

// SetServices injects the services the commands depend on.
func SetServices(protect driving.ProtectService, settings driving.SettingsService, console driven.Console) {
	protectService = protect
	settingsService = settings
	appConsole = console
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runProtect(cmd *cobra.Command, _ []string) error {
	if protectService == nil || appConsole == nil {
		return errors.New("protect service not configured")
	}

	appConsole.Banner(
		"Welcome to the PDF Password Protector!",
		"Your PDFs will be safely encrypted with a strong password.",
	)

	if err := protectService.Run(context.Background(), inputPath, outputPath); err != nil {
		// The pipeline has already displayed the failure; only the
		// non-zero exit code remains.
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true
		return err
	}

	appConsole.Note("Note: No PDF protection is 100% secure. Use strong passwords and additional encryption layers if needed.")
	return nil
}
