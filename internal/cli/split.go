// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	eviltwin "github.com/complex-gh/eviltwin_go"
	"github.com/complex-gh/eviltwin_go/internal/logging"
)

const shareFileMode = 0o600

func newSplitCmd(cfg *Config) *cobra.Command {
	var in, outA, outB string

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a message into two share files",
		Example: `  eviltwin split --in secret.txt -a twin1.json -b twin2.json
  echo -n hello | eviltwin split -a twin1.bin -b twin2.bin --format binary`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := cfg.Logger(cmd.ErrOrStderr()).With("command", "split")

			message, err := readInput(cmd, in)
			if err != nil {
				return err
			}
			logger.Debug(ctx, "message read", logging.Redacted("message"), "bytes", len(message))

			src, err := cfg.Source()
			if err != nil {
				return err
			}

			a, b := eviltwin.Split(src, message)
			if err := writeShareFile(outA, 1, a, cfg.ShareFormat); err != nil {
				return err
			}
			if err := writeShareFile(outB, 2, b, cfg.ShareFormat); err != nil {
				return err
			}
			logger.Info(ctx, "message split", "bytes", len(message), "format", cfg.ShareFormat)

			printer := NewPrinter(cfg.OutputFormat, cmd.OutOrStdout())
			return printer.PrintSplit(SplitResult{
				Bytes:  len(message),
				ShareA: outA,
				ShareB: outB,
				Format: cfg.ShareFormat,
			})
		},
	}

	cmd.Flags().StringVar(&in, "in", "-", "message file (- for stdin)")
	cmd.Flags().StringVarP(&outA, "out-a", "a", "", "first share file")
	cmd.Flags().StringVarP(&outB, "out-b", "b", "", "second share file")
	cmd.Flags().StringVar(&cfg.ShareFormat, "format", cfg.ShareFormat, "share file format (json, binary)")
	_ = cmd.MarkFlagRequired("out-a")
	_ = cmd.MarkFlagRequired("out-b")

	return cmd
}

// readInput reads a file, or stdin for "-"
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// writeShareFile writes one share stream in the requested format
func writeShareFile(path string, twin int, stream []byte, format string) error {
	var data []byte
	var err error
	switch format {
	case ShareFormatBinary:
		data, err = eviltwin.StoreShare(stream)
	case ShareFormatJSON:
		data, err = json.MarshalIndent(eviltwin.NewShare(twin, stream), "", "  ")
	default:
		err = fmt.Errorf("unknown share format: %s", format)
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, shareFileMode); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// readShareFile loads a share stream, detecting the file format
func readShareFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if eviltwin.IsStorage(data) {
		stream, err := eviltwin.LoadShare(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return stream, nil
	}

	var share eviltwin.Share
	if err := json.Unmarshal(data, &share); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, eviltwin.StatusErrFormat, err)
	}
	if err := share.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	stream, err := share.Bytes()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return stream, nil
}
