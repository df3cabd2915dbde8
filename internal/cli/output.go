// Copyright (c) 2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// OutputFormat defines the output format type
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
)

// SplitResult describes the files written by split
type SplitResult struct {
	Bytes  int    `json:"bytes"`
	ShareA string `json:"share_a"`
	ShareB string `json:"share_b"`
	Format string `json:"format"`
}

// ShareInfo describes what one share reveals alone
type ShareInfo struct {
	Value      uint64   `json:"value"`
	Factors    []uint64 `json:"factors"`
	Hypotheses int      `json:"hypotheses"`
	Candidates int      `json:"candidates"`
}

// InspectResult describes a share pair
type InspectResult struct {
	Valid   bool      `json:"valid"`
	Message byte      `json:"message"`
	A       ShareInfo `json:"a"`
	B       ShareInfo `json:"b"`
}

// Printer handles formatted output
type Printer struct {
	format OutputFormat
	writer io.Writer
}

// NewPrinter creates a new Printer
func NewPrinter(format string, writer io.Writer) *Printer {
	return &Printer{
		format: OutputFormat(format),
		writer: writer,
	}
}

// PrintSplit prints the result of a split
func (p *Printer) PrintSplit(r SplitResult) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(r)
	case OutputFormatText:
		fmt.Fprintf(p.writer, "Split %d bytes (%s)\n", r.Bytes, r.Format)
		fmt.Fprintf(p.writer, "  Share A: %s\n", r.ShareA)
		fmt.Fprintf(p.writer, "  Share B: %s\n", r.ShareB)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintInspect prints the analysis of a share pair
func (p *Printer) PrintInspect(r InspectResult) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(r)
	case OutputFormatText:
		if r.Valid {
			fmt.Fprintf(p.writer, "Valid pair, message: %d (0x%02x)\n", r.Message, r.Message)
		} else {
			fmt.Fprintln(p.writer, "Not a valid pair")
		}
		for _, s := range []struct {
			name string
			info ShareInfo
		}{{"A", r.A}, {"B", r.B}} {
			fmt.Fprintf(p.writer, "  Share %s: %d\n", s.name, s.info.Value)
			fmt.Fprintf(p.writer, "    Factors:    %v\n", s.info.Factors)
			fmt.Fprintf(p.writer, "    Hypotheses: %d\n", s.info.Hypotheses)
			fmt.Fprintf(p.writer, "    Candidates: %d\n", s.info.Candidates)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintError prints an error
func (p *Printer) PrintError(err error) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]string{"error": err.Error()})
	default:
		_, werr := fmt.Fprintf(p.writer, "Error: %v\n", err)
		return werr
	}
}

func (p *Printer) printJSON(v any) error {
	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
