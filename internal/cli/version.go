// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set during build)
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newVersionCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := NewPrinter(cfg.OutputFormat, cmd.OutOrStdout())
			if p.format == OutputFormatJSON {
				return p.printJSON(map[string]string{
					"version": version,
					"commit":  commit,
					"date":    date,
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "eviltwin\n")
			fmt.Fprintf(cmd.OutOrStdout(), "  Version:    %s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "  Git Commit: %s\n", commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  Built:      %s\n", date)
			return nil
		},
	}
}
