package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/pdflock-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/pdflock-cli/internal/core/domain"
)

const validPassword = "Abcdef1!ghijklmno"

func newTestService(console *memory.Console, encryptor *memory.Encryptor) *ProtectService {
	policy := domain.DefaultPasswordPolicy()
	return NewProtectService(policy, NewPasswordGenerator(policy), console, encryptor)
}

func messagesContaining(console *memory.Console, substr string) []string {
	var matches []string
	for _, m := range console.Messages {
		if strings.Contains(m, substr) {
			matches = append(matches, m)
		}
	}
	return matches
}

func TestProtectService_Run_GeneratedPassword(t *testing.T) {
	console := memory.NewConsole()
	console.ConfirmAnswers = []bool{true}
	encryptor := memory.NewEncryptor(3)
	service := newTestService(console, encryptor)

	err := service.Run(context.Background(), "sample.pdf", "sample_locked.pdf")

	require.NoError(t, err)
	assert.Equal(t, domain.RunStateDone, service.State())

	require.Len(t, encryptor.Requests, 1)
	req := encryptor.Requests[0]
	assert.Equal(t, "sample.pdf", req.InputPath)
	assert.Equal(t, "sample_locked.pdf", req.OutputPath)
	assert.Len(t, string(req.Password), 16)
	assert.NoError(t, domain.DefaultPasswordPolicy().Validate(string(req.Password)))

	// The generated password must be shown before encryption proceeds.
	shown := messagesContaining(console, "Generated password:")
	require.Len(t, shown, 1)
	assert.Contains(t, shown[0], string(req.Password))

	saved := messagesContaining(console, "saved as sample_locked.pdf")
	require.Len(t, saved, 1)
	assert.Contains(t, saved[0], "3 pages")
}

func TestProtectService_Run_TypedPassword(t *testing.T) {
	console := memory.NewConsole()
	console.ConfirmAnswers = []bool{false}
	console.Secrets = []string{validPassword}
	encryptor := memory.NewEncryptor(1)
	service := newTestService(console, encryptor)

	err := service.Run(context.Background(), "in.pdf", "out.pdf")

	require.NoError(t, err)
	require.Len(t, encryptor.Requests, 1)
	assert.Equal(t, domain.Password(validPassword), encryptor.Requests[0].Password)
	assert.Empty(t, messagesContaining(console, "Generated password:"))
}

func TestProtectService_Run_EmptySecretFallsBackToGeneration(t *testing.T) {
	console := memory.NewConsole()
	console.ConfirmAnswers = []bool{false}
	console.Secrets = []string{""}
	encryptor := memory.NewEncryptor(1)
	service := newTestService(console, encryptor)

	err := service.Run(context.Background(), "in.pdf", "out.pdf")

	require.NoError(t, err)
	assert.NotEmpty(t, messagesContaining(console, "No password entered"))
	require.Len(t, messagesContaining(console, "Generated password:"), 1)
	require.Len(t, encryptor.Requests, 1)
	assert.Len(t, string(encryptor.Requests[0].Password), 16)
}

func TestProtectService_Run_RepromptsUntilValid(t *testing.T) {
	console := memory.NewConsole()
	console.ConfirmAnswers = []bool{false}
	console.Secrets = []string{"short1A!", validPassword}
	encryptor := memory.NewEncryptor(1)
	service := newTestService(console, encryptor)

	err := service.Run(context.Background(), "in.pdf", "out.pdf")

	require.NoError(t, err)
	violations := messagesContaining(console, "Password error:")
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0], "16 characters")
	assert.NotEmpty(t, messagesContaining(console, "try again"))

	require.Len(t, encryptor.Requests, 1)
	assert.Equal(t, domain.Password(validPassword), encryptor.Requests[0].Password)
}

func TestProtectService_Run_SurfacesEachViolation(t *testing.T) {
	console := memory.NewConsole()
	console.ConfirmAnswers = []bool{false}
	console.Secrets = []string{
		"abcdefgh1!ijklmnop", // no uppercase
		"ABCDEFGH1!IJKLMNOP", // no lowercase
		"Abcdefgh1ijklmnop",  // no special
		"Abcdefgh!ijklmnop",  // no digit
		validPassword,
	}
	encryptor := memory.NewEncryptor(1)
	service := newTestService(console, encryptor)

	err := service.Run(context.Background(), "in.pdf", "out.pdf")

	require.NoError(t, err)
	violations := messagesContaining(console, "Password error:")
	require.Len(t, violations, 4)
	assert.Contains(t, violations[0], "uppercase")
	assert.Contains(t, violations[1], "lowercase")
	assert.Contains(t, violations[2], "special")
	assert.Contains(t, violations[3], "digit")
}

func TestProtectService_Protect_InputNotFound(t *testing.T) {
	console := memory.NewConsole()
	encryptor := memory.NewEncryptor(0)
	encryptor.InspectErr = fmt.Errorf("%w: missing.pdf", domain.ErrInputNotFound)
	service := newTestService(console, encryptor)

	err := service.Protect(context.Background(), domain.ProtectionRequest{
		InputPath:  "missing.pdf",
		OutputPath: "out.pdf",
		Password:   validPassword,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInputNotFound))
	assert.Equal(t, domain.RunStateFailed, service.State())
	assert.Empty(t, encryptor.Requests, "encrypt must not run when the input is missing")
	assert.NotEmpty(t, messagesContaining(console, "missing.pdf"))
}

func TestProtectService_Protect_InputUnreadable(t *testing.T) {
	console := memory.NewConsole()
	encryptor := memory.NewEncryptor(0)
	encryptor.InspectErr = fmt.Errorf("%w: not_a_pdf.pdf", domain.ErrInputUnreadable)
	service := newTestService(console, encryptor)

	err := service.Protect(context.Background(), domain.ProtectionRequest{
		InputPath:  "not_a_pdf.pdf",
		OutputPath: "out.pdf",
		Password:   validPassword,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInputUnreadable))
	assert.Equal(t, domain.RunStateFailed, service.State())
	assert.Empty(t, encryptor.Requests)
}

func TestProtectService_Protect_EncryptionFailurePreservesDetail(t *testing.T) {
	console := memory.NewConsole()
	encryptor := memory.NewEncryptor(2)
	encryptor.EncryptErr = fmt.Errorf("%w: %w", domain.ErrEncryptionFailed, errors.New("disk full"))
	service := newTestService(console, encryptor)

	err := service.Protect(context.Background(), domain.ProtectionRequest{
		InputPath:  "in.pdf",
		OutputPath: "out.pdf",
		Password:   validPassword,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrEncryptionFailed))
	assert.Equal(t, domain.RunStateFailed, service.State())
	assert.NotEmpty(t, messagesContaining(console, "disk full"))
}

func TestProtectService_Protect_AnnouncesPasswordBeforeSuccess(t *testing.T) {
	console := memory.NewConsole()
	encryptor := memory.NewEncryptor(5)
	service := newTestService(console, encryptor)

	err := service.Protect(context.Background(), domain.ProtectionRequest{
		InputPath:  "in.pdf",
		OutputPath: "out.pdf",
		Password:   validPassword,
	})

	require.NoError(t, err)
	locking := messagesContaining(console, "Locking with password:")
	require.Len(t, locking, 1)
	assert.Contains(t, locking[0], validPassword)
}

func TestProtectService_StateTransitions(t *testing.T) {
	console := memory.NewConsole()
	console.ConfirmAnswers = []bool{true}
	encryptor := memory.NewEncryptor(1)
	service := newTestService(console, encryptor)

	assert.Equal(t, domain.RunStateAwaitingPassword, service.State())

	password, err := service.ResolvePassword(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.RunStatePasswordResolved, service.State())

	err = service.Protect(context.Background(), domain.ProtectionRequest{
		InputPath:  "in.pdf",
		OutputPath: "out.pdf",
		Password:   password,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RunStateDone, service.State())
	assert.True(t, service.State().Terminal())
}

func TestProtectService_ResolvePassword_CancelledContext(t *testing.T) {
	console := memory.NewConsole()
	console.ConfirmAnswers = []bool{false}
	encryptor := memory.NewEncryptor(1)
	service := newTestService(console, encryptor)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.ResolvePassword(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
