// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package cli implements the eviltwin command-line tool.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree with a fresh configuration
func NewRootCmd() *cobra.Command {
	cfg := NewConfig()

	rootCmd := &cobra.Command{
		Use:   "eviltwin",
		Short: "Split data into evil twin shares",
		Long: `eviltwin encodes every byte of a message as two 64-bit shares.
Both share files are needed to recover the message; either file alone
leaves many candidate decodings per byte.

The scheme obscures data, it does not encrypt it. Do not rely on it
where a real cipher or secret sharing scheme is required.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.Validate()
		},
	}

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVarP(&cfg.OutputFormat, "output", "o", cfg.OutputFormat,
		"output format (text, json)")
	rootCmd.PersistentFlags().StringVar(&cfg.Passphrase, "passphrase", "",
		"derive shares from a passphrase instead of crypto/rand (or $"+EnvPassphrase+")")
	rootCmd.PersistentFlags().StringVar(&cfg.Salt, "salt", "",
		"salt mixed into the passphrase derivation")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", false,
		"verbose output")

	// Add subcommands
	rootCmd.AddCommand(newSplitCmd(cfg))
	rootCmd.AddCommand(newCombineCmd(cfg))
	rootCmd.AddCommand(newInspectCmd(cfg))
	rootCmd.AddCommand(newVersionCmd(cfg))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
