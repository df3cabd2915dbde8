// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	eviltwin "github.com/complex-gh/eviltwin_go"
)

func newCombineCmd(cfg *Config) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:     "combine <share> <share>",
		Short:   "Recover a message from two share files",
		Example: `  eviltwin combine twin2.json twin1.json --out secret.txt`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := cfg.Logger(cmd.ErrOrStderr()).With("command", "combine")

			a, err := readShareFile(args[0])
			if err != nil {
				return err
			}
			b, err := readShareFile(args[1])
			if err != nil {
				return err
			}

			message, err := eviltwin.Combine(a, b)
			if err != nil {
				logger.Warn(ctx, "shares rejected", "error", err)
				return fmt.Errorf("failed to combine shares: %w", err)
			}
			logger.Info(ctx, "message recovered", "bytes", len(message))

			if out == "-" {
				_, err = cmd.OutOrStdout().Write(message)
				return err
			}
			if err := os.WriteFile(out, message, shareFileMode); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "-", "message file (- for stdout)")

	return cmd
}
