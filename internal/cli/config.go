// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package cli

import (
	"fmt"
	"io"
	"os"

	eviltwin "github.com/complex-gh/eviltwin_go"
	"github.com/complex-gh/eviltwin_go/internal/logging"
)

// EnvPassphrase overrides an empty --passphrase flag
const EnvPassphrase = "EVILTWIN_PASSPHRASE"

// Share file formats
const (
	ShareFormatJSON   = "json"
	ShareFormatBinary = "binary"
)

// Config holds global CLI configuration
type Config struct {
	// OutputFormat controls command output (text, json)
	OutputFormat string

	// ShareFormat is the file format written by split (json, binary)
	ShareFormat string

	// Passphrase selects the reproducible keyed source; empty uses crypto/rand
	Passphrase string

	// Salt is mixed into the passphrase derivation
	Salt string

	// Verbose enables debug logging
	Verbose bool
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		OutputFormat: string(OutputFormatText),
		ShareFormat:  ShareFormatJSON,
	}
}

// Validate checks the configured formats
func (c *Config) Validate() error {
	switch OutputFormat(c.OutputFormat) {
	case OutputFormatText, OutputFormatJSON:
	default:
		return fmt.Errorf("unknown output format: %s", c.OutputFormat)
	}
	switch c.ShareFormat {
	case ShareFormatJSON, ShareFormatBinary:
	default:
		return fmt.Errorf("unknown share format: %s", c.ShareFormat)
	}
	return nil
}

// Source returns the randomness source for encoding
func (c *Config) Source() (eviltwin.Source, error) {
	passphrase := c.Passphrase
	if passphrase == "" {
		passphrase = os.Getenv(EnvPassphrase)
	}
	if passphrase == "" {
		return eviltwin.CryptoSource(), nil
	}
	src, err := eviltwin.NewStreamSource(passphrase, []byte(c.Salt))
	if err != nil {
		return nil, fmt.Errorf("failed to create keyed source: %w", err)
	}
	return src, nil
}

// Logger returns a logger writing to w at the configured verbosity
func (c *Config) Logger(w io.Writer) logging.Logger {
	return logging.NewText(w, c.Verbose)
}
