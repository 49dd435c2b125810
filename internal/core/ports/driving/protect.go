package driving

import (
	"context"

	"github.com/custodia-labs/pdflock-cli/internal/core/domain"
)

// ProtectService runs the password-protection pipeline.
type ProtectService interface {
	// Run executes the full pipeline: resolve a password interactively,
	// then encrypt the input into the output.
	Run(ctx context.Context, inputPath, outputPath string) error

	// ResolvePassword obtains a policy-satisfying password from the user,
	// generating one when asked to or when the user enters nothing.
	ResolvePassword(ctx context.Context) (domain.Password, error)

	// Protect encrypts the request's input into its output using the
	// already-resolved password.
	Protect(ctx context.Context, req domain.ProtectionRequest) error

	// State reports the pipeline's current state.
	State() domain.RunState
}
