package services

import (
	"fmt"

	"github.com/custodia-labs/pdflock-cli/internal/core/domain"
	"github.com/custodia-labs/pdflock-cli/internal/core/ports/driven"
	"github.com/custodia-labs/pdflock-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyEncryptionMode      = "encryption.mode"
	keyEncryptionKeyLength = "encryption.key_length"
)

// SettingsService manages persisted encryption settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves the current encryption settings. Missing or invalid
// stored values fall back to defaults so a hand-edited config file can
// never make the tool unusable.
func (s *SettingsService) Get() (domain.EncryptionSettings, error) {
	defaults := domain.DefaultEncryptionSettings()

	settings := domain.EncryptionSettings{
		Mode:      s.getMode(defaults.Mode),
		KeyLength: s.getInt(keyEncryptionKeyLength, defaults.KeyLength),
	}
	if settings.Validate() != nil {
		settings.KeyLength = strongestKeyLength(settings.Mode)
	}
	return settings, nil
}

// Save persists encryption settings.
func (s *SettingsService) Save(settings domain.EncryptionSettings) error {
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid encryption settings: %w", err)
	}
	if err := s.configStore.Set(keyEncryptionMode, settings.Mode.String()); err != nil {
		return fmt.Errorf("save encryption mode: %w", err)
	}
	if err := s.configStore.Set(keyEncryptionKeyLength, settings.KeyLength); err != nil {
		return fmt.Errorf("save key length: %w", err)
	}
	return nil
}

// SetMode updates the encryption mode. If the stored key length is not
// supported by the new mode, the mode's strongest key length is used.
func (s *SettingsService) SetMode(mode domain.EncryptionMode) error {
	if !mode.IsValid() {
		return fmt.Errorf("set encryption mode: %w: %s", domain.ErrInvalidInput, mode)
	}
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Mode = mode
	if settings.Validate() != nil {
		settings.KeyLength = strongestKeyLength(mode)
	}
	return s.Save(settings)
}

// SetKeyLength updates the key length for the current mode.
func (s *SettingsService) SetKeyLength(bits int) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.KeyLength = bits
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("set key length: %w: %d bits not supported by %s",
			domain.ErrInvalidInput, bits, settings.Mode)
	}
	return s.Save(settings)
}

// GetDefaults returns the default settings.
func (s *SettingsService) GetDefaults() domain.EncryptionSettings {
	return domain.DefaultEncryptionSettings()
}

func (s *SettingsService) getMode(fallback domain.EncryptionMode) domain.EncryptionMode {
	mode := domain.EncryptionMode(s.configStore.GetString(keyEncryptionMode))
	if !mode.IsValid() {
		return fallback
	}
	return mode
}

func (s *SettingsService) getInt(key string, fallback int) int {
	if val := s.configStore.GetInt(key); val != 0 {
		return val
	}
	return fallback
}

func strongestKeyLength(mode domain.EncryptionMode) int {
	lengths := mode.KeyLengths()
	if len(lengths) == 0 {
		return domain.DefaultEncryptionSettings().KeyLength
	}
	return lengths[len(lengths)-1]
}
