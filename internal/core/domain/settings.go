package domain

// EncryptionMode selects the cipher the PDF collaborator applies.
type EncryptionMode string

// Available encryption modes.
const (
	// EncryptionModeAES uses AES, the mode every modern PDF viewer expects.
	EncryptionModeAES EncryptionMode = "aes"

	// EncryptionModeRC4 uses the legacy RC4 cipher. Only useful for
	// readers that predate AES support.
	EncryptionModeRC4 EncryptionMode = "rc4"
)

// IsValid returns true if the mode is recognised.
func (m EncryptionMode) IsValid() bool {
	switch m {
	case EncryptionModeAES, EncryptionModeRC4:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m EncryptionMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m EncryptionMode) Description() string {
	switch m {
	case EncryptionModeAES:
		return "AES (recommended)"
	case EncryptionModeRC4:
		return "RC4 (legacy readers only)"
	default:
		return "Unknown"
	}
}

// KeyLengths returns the key lengths, in bits, the mode supports.
func (m EncryptionMode) KeyLengths() []int {
	switch m {
	case EncryptionModeAES:
		return []int{128, 256}
	case EncryptionModeRC4:
		return []int{40, 128}
	default:
		return nil
	}
}

// EncryptionSettings holds the persisted encryption options.
type EncryptionSettings struct {
	// Mode is the cipher to use.
	Mode EncryptionMode

	// KeyLength is the key size in bits. Valid values depend on Mode.
	KeyLength int
}

// DefaultEncryptionSettings returns the settings used when nothing is
// configured: AES-256.
func DefaultEncryptionSettings() EncryptionSettings {
	return EncryptionSettings{
		Mode:      EncryptionModeAES,
		KeyLength: 256,
	}
}

// Validate checks the settings are internally consistent.
func (s EncryptionSettings) Validate() error {
	if !s.Mode.IsValid() {
		return ErrInvalidInput
	}
	for _, l := range s.Mode.KeyLengths() {
		if s.KeyLength == l {
			return nil
		}
	}
	return ErrInvalidInput
}
