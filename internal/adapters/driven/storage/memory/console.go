package memory

import (
	"fmt"
	"sync"

	"github.com/custodia-labs/pdflock-cli/internal/core/ports/driven"
)

// Ensure Console implements the interface.
var _ driven.Console = (*Console)(nil)

// Console is a scripted implementation of driven.Console for testing.
// Confirm answers and secret inputs are consumed in order; every message
// is recorded with a level prefix ("info: ...", "error: ...") so tests
// can assert on what the user would have seen.
type Console struct {
	mu sync.Mutex

	// ConfirmAnswers are returned by successive Confirm calls.
	ConfirmAnswers []bool

	// Secrets are returned by successive ReadSecret calls.
	Secrets []string

	// Messages records all displayed output in order.
	Messages []string

	confirmIdx int
	secretIdx  int
}

// NewConsole creates a scripted console.
func NewConsole() *Console {
	return &Console{}
}

// Confirm returns the next scripted answer, defaulting to false when the
// script is exhausted.
func (c *Console) Confirm(prompt string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Messages = append(c.Messages, "confirm: "+prompt)
	if c.confirmIdx >= len(c.ConfirmAnswers) {
		return false, nil
	}
	answer := c.ConfirmAnswers[c.confirmIdx]
	c.confirmIdx++
	return answer, nil
}

// ReadSecret returns the next scripted secret, defaulting to empty when
// the script is exhausted.
func (c *Console) ReadSecret(prompt string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Messages = append(c.Messages, "secret: "+prompt)
	if c.secretIdx >= len(c.Secrets) {
		return "", nil
	}
	secret := c.Secrets[c.secretIdx]
	c.secretIdx++
	return secret, nil
}

// Infof records an informational message.
func (c *Console) Infof(format string, args ...any) {
	c.record("info", format, args...)
}

// Successf records a success message.
func (c *Console) Successf(format string, args ...any) {
	c.record("success", format, args...)
}

// Warnf records a warning message.
func (c *Console) Warnf(format string, args ...any) {
	c.record("warn", format, args...)
}

// Errorf records an error message.
func (c *Console) Errorf(format string, args ...any) {
	c.record("error", format, args...)
}

// Banner records the welcome header.
func (c *Console) Banner(title, subtitle string) {
	c.record("banner", "%s %s", title, subtitle)
}

// Note records a closing remark.
func (c *Console) Note(msg string) {
	c.record("note", "%s", msg)
}

func (c *Console) record(level, format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Messages = append(c.Messages, level+": "+fmt.Sprintf(format, args...))
}
