package pdf

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/custodia-labs/pdflock-cli/internal/core/domain"
	"github.com/custodia-labs/pdflock-cli/internal/core/ports/driven"
	"github.com/custodia-labs/pdflock-cli/internal/logger"
)

// Ensure Encryptor implements the interface.
var _ driven.DocumentEncryptor = (*Encryptor)(nil)

// Encryptor encrypts PDF documents using pdfcpu.
type Encryptor struct {
	settings domain.EncryptionSettings
}

// NewEncryptor creates an encryptor using the given encryption settings.
func NewEncryptor(settings domain.EncryptionSettings) *Encryptor {
	return &Encryptor{settings: settings}
}

// Inspect parses and validates the input document and reports its page
// count. A missing path maps to domain.ErrInputNotFound, anything pdfcpu
// cannot parse to domain.ErrInputUnreadable.
func (e *Encryptor) Inspect(ctx context.Context, path string) (*domain.DocumentInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	pdfCtx, err := api.ReadContext(f, model.NewDefaultConfiguration())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInputUnreadable, path, err)
	}
	if err := api.ValidateContext(pdfCtx); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInputUnreadable, path, err)
	}

	return &domain.DocumentInfo{PageCount: pdfCtx.PageCount}, nil
}

// Encrypt copies the input document into an encrypted output. The result
// is written to a uuid-suffixed temp file next to the output path and
// renamed into place, so a failed run never leaves a half-written output.
func (e *Encryptor) Encrypt(ctx context.Context, req domain.ProtectionRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	in, err := os.Open(req.InputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", domain.ErrInputNotFound, req.InputPath)
		}
		return fmt.Errorf("%w: open %s: %v", domain.ErrEncryptionFailed, req.InputPath, err)
	}
	defer in.Close()

	tmpPath := fmt.Sprintf("%s.tmp-%s", req.OutputPath, uuid.NewString())
	out, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", domain.ErrEncryptionFailed, tmpPath, err)
	}

	if err := api.Encrypt(in, out, e.configuration(req.Password)); err != nil {
		out.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: %v", domain.ErrEncryptionFailed, err)
	}

	if err := out.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: close %s: %v", domain.ErrEncryptionFailed, tmpPath, err)
	}

	if err := os.Rename(tmpPath, req.OutputPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: rename to %s: %v", domain.ErrEncryptionFailed, req.OutputPath, err)
	}

	logger.Debug("encrypted %s -> %s (%s-%d)", req.InputPath, req.OutputPath,
		e.settings.Mode, e.settings.KeyLength)
	return nil
}

// configuration builds the pdfcpu encryption configuration. The user and
// owner passwords are set to the same value: the tool's contract is one
// password that both opens and controls the document.
func (e *Encryptor) configuration(password domain.Password) *model.Configuration {
	pw := password.String()
	if e.settings.Mode == domain.EncryptionModeRC4 {
		return model.NewRC4Configuration(pw, pw, e.settings.KeyLength)
	}
	return model.NewAESConfiguration(pw, pw, e.settings.KeyLength)
}
