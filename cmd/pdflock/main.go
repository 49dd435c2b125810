// Command pdflock creates password-protected copies of PDF files.
package main

import (
	"fmt"
	"os"

	configfile "github.com/custodia-labs/pdflock-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/pdflock-cli/internal/adapters/driven/console"
	"github.com/custodia-labs/pdflock-cli/internal/adapters/driven/pdf"
	"github.com/custodia-labs/pdflock-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/pdflock-cli/internal/core/domain"
	"github.com/custodia-labs/pdflock-cli/internal/core/services"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: load configuration: %v\n", err)
		return err
	}

	settingsService := services.NewSettingsService(configStore)
	encryption, err := settingsService.Get()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: read settings: %v\n", err)
		return err
	}

	terminal := console.NewTerminal(os.Stdin, os.Stdout)
	policy := domain.DefaultPasswordPolicy()
	protectService := services.NewProtectService(
		policy,
		services.NewPasswordGenerator(policy),
		terminal,
		pdf.NewEncryptor(encryption),
	)

	cli.SetServices(protectService, settingsService, terminal)
	return cli.Execute()
}
