// Package console implements the Console port against a real terminal:
// unechoed password entry via x/term and lipgloss-styled output.
package console
