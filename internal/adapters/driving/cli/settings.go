package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pdflock-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage encryption settings",
	Long: `View and configure how output PDFs are encrypted.

Settings are stored in ~/.pdflock/config.toml and apply to every run.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsModeCmd = &cobra.Command{
	Use:   "mode [aes|rc4]",
	Short: "Set the encryption mode",
	Long: `Set the cipher used to encrypt output PDFs.

Available modes:
  aes - AES encryption (recommended, 128 or 256 bit keys)
  rc4 - legacy RC4 encryption (40 or 128 bit keys, old readers only)`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsMode,
}

var settingsKeyLengthCmd = &cobra.Command{
	Use:   "keylength [bits]",
	Short: "Set the encryption key length",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsKeyLength,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsModeCmd)
	settingsCmd.AddCommand(settingsKeyLengthCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()
	cmd.Println("[Encryption]")
	cmd.Printf("  Mode: %s\n", settings.Mode.Description())
	cmd.Printf("  Key length: %d bits\n", settings.KeyLength)

	return nil
}

func runSettingsMode(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	mode := domain.EncryptionMode(args[0])
	if err := settingsService.SetMode(mode); err != nil {
		return fmt.Errorf("failed to set mode: %w", err)
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	cmd.Printf("Set encryption to %s, %d bits.\n", settings.Mode.Description(), settings.KeyLength)
	return nil
}

func runSettingsKeyLength(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	bits, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("key length must be a number: %w", err)
	}
	if err := settingsService.SetKeyLength(bits); err != nil {
		return fmt.Errorf("failed to set key length: %w", err)
	}

	cmd.Printf("Set key length to %d bits.\n", bits)
	return nil
}
