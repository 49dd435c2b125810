package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminal_Confirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"lowercase y", "y\n", true},
		{"yes", "yes\n", true},
		{"uppercase Y", "Y\n", true},
		{"padded yes", "  yes  \n", true},
		{"n", "n\n", false},
		{"no", "no\n", false},
		{"empty answer", "\n", false},
		{"nonsense", "maybe\n", false},
		{"eof without newline", "y", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := new(bytes.Buffer)
			terminal := NewTerminal(strings.NewReader(tt.input), out)

			got, err := terminal.Confirm("Generate a password?")

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Generate a password?")
		})
	}
}

func TestTerminal_ReadSecret_NonTerminalFallback(t *testing.T) {
	out := new(bytes.Buffer)
	terminal := NewTerminal(strings.NewReader("Abcdef1!ghijklmno\n"), out)

	secret, err := terminal.ReadSecret("Enter the password: ")

	require.NoError(t, err)
	assert.Equal(t, "Abcdef1!ghijklmno", secret)
	assert.Contains(t, out.String(), "Enter the password: ")
	assert.NotContains(t, out.String(), "Abcdef1!ghijklmno", "secret must not be echoed")
}

func TestTerminal_ReadSecret_PreservesInnerAndOuterSpaces(t *testing.T) {
	terminal := NewTerminal(strings.NewReader("  spaced Secret1! \r\n"), new(bytes.Buffer))

	secret, err := terminal.ReadSecret("Enter the password: ")

	require.NoError(t, err)
	assert.Equal(t, "  spaced Secret1! ", secret, "only the line ending may be stripped")
}

func TestTerminal_ReadSecret_EmptyLine(t *testing.T) {
	terminal := NewTerminal(strings.NewReader("\n"), new(bytes.Buffer))

	secret, err := terminal.ReadSecret("Enter the password: ")

	require.NoError(t, err)
	assert.Empty(t, secret)
}

func TestTerminal_MessageLevels(t *testing.T) {
	out := new(bytes.Buffer)
	terminal := NewTerminal(strings.NewReader(""), out)

	terminal.Infof("parsing %s", "in.pdf")
	terminal.Successf("saved as %s", "out.pdf")
	terminal.Warnf("please try again")
	terminal.Errorf("error: %v", "boom")

	output := out.String()
	assert.Contains(t, output, "parsing in.pdf")
	assert.Contains(t, output, "saved as out.pdf")
	assert.Contains(t, output, "please try again")
	assert.Contains(t, output, "error: boom")
}

func TestTerminal_Banner(t *testing.T) {
	out := new(bytes.Buffer)
	terminal := NewTerminal(strings.NewReader(""), out)

	terminal.Banner("Welcome to pdflock!", "Your PDFs will be encrypted with a strong password.")

	assert.Contains(t, out.String(), "Welcome to pdflock!")
	assert.Contains(t, out.String(), "strong password")
}
