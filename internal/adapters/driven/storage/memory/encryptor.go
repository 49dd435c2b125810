package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/pdflock-cli/internal/core/domain"
	"github.com/custodia-labs/pdflock-cli/internal/core/ports/driven"
)

// Ensure Encryptor implements the interface.
var _ driven.DocumentEncryptor = (*Encryptor)(nil)

// Encryptor is a fake implementation of driven.DocumentEncryptor for
// testing the protection pipeline without touching real PDFs.
type Encryptor struct {
	mu sync.Mutex

	// Info is returned by Inspect when InspectErr is nil.
	Info domain.DocumentInfo

	// InspectErr, when set, is returned by Inspect.
	InspectErr error

	// EncryptErr, when set, is returned by Encrypt.
	EncryptErr error

	// Requests records every Encrypt call.
	Requests []domain.ProtectionRequest
}

// NewEncryptor creates a fake encryptor reporting the given page count.
func NewEncryptor(pageCount int) *Encryptor {
	return &Encryptor{Info: domain.DocumentInfo{PageCount: pageCount}}
}

// Inspect returns the configured info or error.
func (e *Encryptor) Inspect(_ context.Context, _ string) (*domain.DocumentInfo, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.InspectErr != nil {
		return nil, e.InspectErr
	}
	info := e.Info
	return &info, nil
}

// Encrypt records the request and returns the configured error.
func (e *Encryptor) Encrypt(_ context.Context, req domain.ProtectionRequest) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.EncryptErr != nil {
		return e.EncryptErr
	}
	e.Requests = append(e.Requests, req)
	return nil
}
