package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/custodia-labs/pdflock-cli/internal/core/ports/driven"
)

// Ensure Terminal implements the interface.
var _ driven.Console = (*Terminal)(nil)

// Terminal is the interactive terminal implementation of driven.Console.
type Terminal struct {
	in     io.Reader
	reader *bufio.Reader
	out    io.Writer
	styles Styles
}

// NewTerminal creates a console over the given streams. When in is a
// terminal, secrets are read without echo; otherwise ReadSecret falls
// back to a plain line read so piped input still works.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:     in,
		reader: bufio.NewReader(in),
		out:    out,
		styles: DefaultStyles(),
	}
}

// Confirm asks a yes/no question. Only "y" and "yes" (any case) count as
// yes; everything else, including an empty answer, is no.
func (t *Terminal) Confirm(prompt string) (bool, error) {
	fmt.Fprint(t.out, t.styles.Prompt.Render(prompt+" (y/n): "))
	line, err := t.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("read answer: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// ReadSecret reads a line without echoing it to the terminal.
func (t *Terminal) ReadSecret(prompt string) (string, error) {
	fmt.Fprint(t.out, t.styles.Prompt.Render(prompt))

	if f, ok := t.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		secret, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(t.out)
		if err != nil {
			return "", fmt.Errorf("read secret: %w", err)
		}
		return string(secret), nil
	}

	// Not a terminal: plain line read. Only the line ending is stripped;
	// leading and trailing spaces are part of the password, matching the
	// no-echo path.
	line, err := t.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Banner displays the welcome header.
func (t *Terminal) Banner(title, subtitle string) {
	fmt.Fprintln(t.out, t.styles.Banner.Render(title))
	fmt.Fprintln(t.out, t.styles.Info.Render(subtitle))
	fmt.Fprintln(t.out)
}

// Note displays a low-emphasis closing remark.
func (t *Terminal) Note(msg string) {
	fmt.Fprintln(t.out, t.styles.Note.Render(msg))
}

// Infof displays an informational message.
func (t *Terminal) Infof(format string, args ...any) {
	fmt.Fprintln(t.out, t.styles.Info.Render(fmt.Sprintf(format, args...)))
}

// Successf displays a positive outcome.
func (t *Terminal) Successf(format string, args ...any) {
	fmt.Fprintln(t.out, t.styles.Success.Render(fmt.Sprintf(format, args...)))
}

// Warnf displays a cautionary message.
func (t *Terminal) Warnf(format string, args ...any) {
	fmt.Fprintln(t.out, t.styles.Warning.Render(fmt.Sprintf(format, args...)))
}

// Errorf displays a failure message.
func (t *Terminal) Errorf(format string, args ...any) {
	fmt.Fprintln(t.out, t.styles.Error.Render(fmt.Sprintf(format, args...)))
}
