package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInputNotFound indicates the input PDF path does not exist.
	ErrInputNotFound = errors.New("input file not found")

	// ErrInputUnreadable indicates the input file is not a valid PDF.
	ErrInputUnreadable = errors.New("input file is not a valid PDF")

	// ErrEncryptionFailed indicates the encryption step or the output
	// write failed. The underlying detail is wrapped for display.
	ErrEncryptionFailed = errors.New("encryption failed")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
