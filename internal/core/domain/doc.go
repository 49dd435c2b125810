// Package domain defines the core business entities for pdflock.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Password: A validated secret used to encrypt a document
//   - PasswordPolicy: The strength rules a password must satisfy
//   - ProtectionRequest: One run's input, output and resolved password
//   - EncryptionSettings: Persisted encryption options
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
