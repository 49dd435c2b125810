package driving

import "github.com/custodia-labs/pdflock-cli/internal/core/domain"

// SettingsService manages persisted encryption settings.
type SettingsService interface {
	// Get retrieves the current encryption settings, falling back to
	// defaults for missing or invalid stored values.
	Get() (domain.EncryptionSettings, error)

	// Save persists encryption settings after validating them.
	Save(settings domain.EncryptionSettings) error

	// SetMode updates the encryption mode, adjusting the key length to
	// the mode's strongest supported value if the current one is invalid.
	SetMode(mode domain.EncryptionMode) error

	// SetKeyLength updates the key length for the current mode.
	SetKeyLength(bits int) error

	// GetDefaults returns the default settings.
	GetDefaults() domain.EncryptionSettings
}
