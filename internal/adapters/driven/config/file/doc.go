// Package file provides a TOML-file implementation of the ConfigStore
// port, persisted under the user's pdflock config directory.
package file
