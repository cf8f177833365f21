package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Cepat-Kilat-Teknologi/upc-keys-relay/keygen"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Opts holds the flags of the root command.
type Opts struct {
	Band       string
	Format     string
	Workers    int
	Sequential bool
}

// bandResult is the candidate list of one band, as printed by every format.
type bandResult struct {
	Band       string          `json:"band" yaml:"band"`
	SSID       string          `json:"ssid" yaml:"ssid"`
	Target     uint32          `json:"target" yaml:"target"`
	Candidates []keygen.Result `json:"candidates" yaml:"candidates"`
}

func newRootCommand() *cobra.Command {
	opts := &Opts{}
	cmd := &cobra.Command{
		Use:   "upckeys <SSID>",
		Short: "Recover default WPA passphrases of UPC routers",
		Long: `upckeys lists every serial number whose SSID checksum matches the
given SSID and the factory default WPA passphrase derived from it.

The first three characters of the SSID are the vendor prefix and are
skipped; the rest must be the numeric suffix. The checksum is not
injective, so several candidates per band are normal.`,
		Example: `  # Both bands, table output
  upckeys UPC1234567

  # 5GHz only, as JSON
  upckeys UPC1234567 --band 5 -o json

  # Stream results one by one on a single goroutine
  upckeys UPC1234567 --sequential`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Band, "band", "b", bandBoth,
		"Radio band: 2.4, 5 or both")
	cmd.Flags().StringVarP(&opts.Format, "format", "o", formatTable,
		"Output format: table, json or yaml")
	cmd.Flags().IntVarP(&opts.Workers, "workers", "w", 0,
		"Goroutines used per band (0 uses every CPU)")
	cmd.Flags().BoolVar(&opts.Sequential, "sequential", false,
		"Enumerate on a single goroutine")

	cmd.AddCommand(newDeriveCommand())
	return cmd
}

func run(cmd *cobra.Command, args []string, opts *Opts) error {
	if err := validateFormat(opts.Format); err != nil {
		return err
	}
	bands, err := parseBands(opts.Band)
	if err != nil {
		return err
	}
	ssid := args[0]
	target, err := keygen.ParseSSID(ssid)
	if err != nil {
		return err
	}

	// Spinner frames would corrupt piped or captured output
	var spinner *pterm.SpinnerPrinter
	if opts.Format == formatTable && isTerminal(cmd.OutOrStdout()) {
		spinner, _ = pterm.DefaultSpinner.WithRemoveWhenDone(true).Start("Enumerating serials for " + ssid)
	}

	out := make([]bandResult, 0, len(bands))
	for _, band := range bands {
		results, err := collect(cmd, ssid, target, band, opts)
		if err != nil {
			if spinner != nil {
				_ = spinner.Stop()
			}
			return fmt.Errorf("failed to enumerate %s candidates: %w", band, err)
		}
		out = append(out, bandResult{
			Band:       band.String(),
			SSID:       ssid,
			Target:     target,
			Candidates: results,
		})
	}
	if spinner != nil {
		_ = spinner.Stop()
	}

	return render(cmd.OutOrStdout(), opts.Format, out, renderCandidates)
}

// collect gathers the candidates of one band, streaming through Generate
// in sequential mode and partitioning across goroutines otherwise
func collect(cmd *cobra.Command, ssid string, target uint32, band keygen.Band, opts *Opts) ([]keygen.Result, error) {
	if !opts.Sequential {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return keygen.Collect(ctx, band, target, opts.Workers)
	}
	seq, err := keygen.Generate(ssid, band)
	if err != nil {
		return nil, err
	}
	results := []keygen.Result{}
	for r := range seq {
		results = append(results, r)
	}
	return results, nil
}

// isTerminal reports whether w is a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
