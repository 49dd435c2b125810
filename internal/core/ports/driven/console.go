package driven

// Console abstracts interactive terminal I/O so the protection pipeline
// can be driven by a scripted fake in tests.
type Console interface {
	// Confirm asks a yes/no question and returns the answer.
	Confirm(prompt string) (bool, error)

	// ReadSecret reads a line of input without echoing it.
	ReadSecret(prompt string) (string, error)

	// Infof displays an informational message.
	Infof(format string, args ...any)

	// Successf displays a positive outcome.
	Successf(format string, args ...any)

	// Warnf displays a cautionary message.
	Warnf(format string, args ...any)

	// Errorf displays a failure message.
	Errorf(format string, args ...any)

	// Banner displays the welcome header.
	Banner(title, subtitle string)

	// Note displays a low-emphasis closing remark.
	Note(msg string)
}
