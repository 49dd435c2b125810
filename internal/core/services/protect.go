package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/pdflock-cli/internal/core/domain"
	"github.com/custodia-labs/pdflock-cli/internal/core/ports/driven"
	"github.com/custodia-labs/pdflock-cli/internal/core/ports/driving"
	"github.com/custodia-labs/pdflock-cli/internal/logger"
)

// Ensure ProtectService implements the interface.
var _ driving.ProtectService = (*ProtectService)(nil)

// ProtectService coordinates one password-protection run: it resolves a
// policy-satisfying password from the user (or the generator), then
// delegates to the PDF collaborator to produce the encrypted output.
type ProtectService struct {
	policy    domain.PasswordPolicy
	generator *PasswordGenerator
	console   driven.Console
	encryptor driven.DocumentEncryptor

	// State tracking
	mu    sync.RWMutex
	state domain.RunState
}

// NewProtectService creates a new protection pipeline.
func NewProtectService(
	policy domain.PasswordPolicy,
	generator *PasswordGenerator,
	console driven.Console,
	encryptor driven.DocumentEncryptor,
) *ProtectService {
	return &ProtectService{
		policy:    policy,
		generator: generator,
		console:   console,
		encryptor: encryptor,
		state:     domain.RunStateAwaitingPassword,
	}
}

// State reports the pipeline's current state.
func (s *ProtectService) State() domain.RunState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *ProtectService) setState(state domain.RunState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
	logger.Debug("pipeline state: %s", state)
}

// Run executes the full pipeline.
func (s *ProtectService) Run(ctx context.Context, inputPath, outputPath string) error {
	password, err := s.ResolvePassword(ctx)
	if err != nil {
		s.setState(domain.RunStateFailed)
		s.console.Errorf("Error: %v.", err)
		return err
	}

	return s.Protect(ctx, domain.ProtectionRequest{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Password:   password,
	})
}

// ResolvePassword obtains a password that satisfies the policy.
//
// The user is first asked whether to generate one. Declining leads to a
// secret prompt loop: an empty entry falls back to generation, an invalid
// entry surfaces the specific violation and re-prompts. Any generated
// password is displayed before it is used - there is no way to recover
// it afterwards, so the user must be able to record it.
func (s *ProtectService) ResolvePassword(ctx context.Context) (domain.Password, error) {
	s.setState(domain.RunStateAwaitingPassword)

	generate, err := s.console.Confirm("Would you like to generate a strong random password?")
	if err != nil {
		return "", fmt.Errorf("read answer: %w", err)
	}

	if generate {
		s.console.Infof("Generating a strong random password...")
		password, err := s.generate()
		if err != nil {
			return "", err
		}
		s.setState(domain.RunStatePasswordResolved)
		return password, nil
	}

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		candidate, err := s.console.ReadSecret("Enter the password for the PDF: ")
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}

		if candidate == "" {
			s.console.Warnf("No password entered. Generating a strong random password...")
			password, err := s.generate()
			if err != nil {
				return "", err
			}
			s.setState(domain.RunStatePasswordResolved)
			return password, nil
		}

		if err := s.policy.Validate(candidate); err != nil {
			s.console.Errorf("Password error: %v.", err)
			s.console.Warnf("Please try again.")
			continue
		}

		s.setState(domain.RunStatePasswordResolved)
		return domain.Password(candidate), nil
	}
}

// generate produces a password and shows it to the user.
func (s *ProtectService) generate() (domain.Password, error) {
	password, err := s.generator.Generate()
	if err != nil {
		return "", err
	}
	s.console.Successf("Generated password: %s", password)
	return password, nil
}

// Protect encrypts the request's input into its output.
func (s *ProtectService) Protect(ctx context.Context, req domain.ProtectionRequest) error {
	s.setState(domain.RunStateEncrypting)

	// 1. Parse the input first so a missing or malformed file aborts the
	// run before anything is written.
	info, err := s.encryptor.Inspect(ctx, req.InputPath)
	if err != nil {
		s.setState(domain.RunStateFailed)
		s.console.Errorf("Error: %v.", err)
		return err
	}
	logger.Debug("input %s parsed: %d pages", req.InputPath, info.PageCount)

	// 2. Announce the password in use. For generated passwords this is
	// the second time it is shown; for typed ones the first.
	s.console.Successf("Locking with password: %s", req.Password)

	// 3. Delegate to the collaborator.
	if err := s.encryptor.Encrypt(ctx, req); err != nil {
		s.setState(domain.RunStateFailed)
		s.console.Errorf("Error: %v.", err)
		return err
	}

	s.setState(domain.RunStateDone)
	s.console.Successf("Password-protected PDF saved as %s (%d pages).", req.OutputPath, info.PageCount)
	return nil
}
