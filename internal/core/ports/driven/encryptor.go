package driven

import (
	"context"

	"github.com/custodia-labs/pdflock-cli/internal/core/domain"
)

// DocumentEncryptor is the external PDF collaborator. pdflock never
// touches PDF internals itself; parsing and encryption are delegated
// entirely through this port.
type DocumentEncryptor interface {
	// Inspect parses the input document and reports its shape.
	// Returns domain.ErrInputNotFound if the path does not exist and
	// domain.ErrInputUnreadable if the file is not a valid PDF.
	Inspect(ctx context.Context, path string) (*domain.DocumentInfo, error)

	// Encrypt copies every page of the input into a new document
	// encrypted with the request's password and writes it to the output
	// path. On failure no output file is left behind; the error wraps
	// domain.ErrEncryptionFailed with the underlying detail.
	Encrypt(ctx context.Context, req domain.ProtectionRequest) error
}
