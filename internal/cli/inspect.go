// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	eviltwin "github.com/complex-gh/eviltwin_go"
)

func newInspectCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <a> <b>",
		Short: "Analyze a single share pair",
		Long: `Inspect factors two decimal shares, reports whether they form a valid
pair, and counts how many messages each share could encode on its own.`,
		Example: `  eviltwin inspect 206770 30658570`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid share %q: %w", args[0], err)
			}
			b, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid share %q: %w", args[1], err)
			}

			result := InspectResult{
				Valid: eviltwin.Validate(a, b),
				A:     inspectShare(a),
				B:     inspectShare(b),
			}
			if result.Valid {
				result.Message = eviltwin.Decode(a, b)
			}

			return NewPrinter(cfg.OutputFormat, cmd.OutOrStdout()).PrintInspect(result)
		},
	}
}

func inspectShare(share uint64) ShareInfo {
	info := ShareInfo{Value: share}
	info.Factors, _ = eviltwin.Factor(share)
	if analysis, err := eviltwin.Candidates(share); err == nil {
		info.Hypotheses = analysis.Hypotheses
		info.Candidates = len(analysis.Messages)
	}
	return info
}
