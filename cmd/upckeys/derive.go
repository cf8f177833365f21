package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Cepat-Kilat-Teknologi/upc-keys-relay/keygen"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// DeriveOpts holds the flags of the derive command.
type DeriveOpts struct {
	Band   string
	Format string
}

// derivation is the passphrase of one serial on one band.
type derivation struct {
	Serial   string `json:"serial" yaml:"serial"`
	Band     string `json:"band" yaml:"band"`
	SSID     string `json:"ssid,omitempty" yaml:"ssid,omitempty"`
	Checksum uint32 `json:"checksum" yaml:"checksum"`
	Password string `json:"password" yaml:"password"`
}

func newDeriveCommand() *cobra.Command {
	opts := &DeriveOpts{}
	cmd := &cobra.Command{
		Use:   "derive <SERIAL>",
		Short: "Derive the default passphrase of a known serial number",
		Long: `Derive the factory default WPA passphrase of one serial number
(SAAP followed by 8 digits) and show the SSID it broadcasts on each band.`,
		Example: `  upckeys derive SAAP12345678
  upckeys derive SAAP12345678 --band 5 -o yaml`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDerive(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Band, "band", "b", bandBoth,
		"Radio band: 2.4, 5 or both")
	cmd.Flags().StringVarP(&opts.Format, "format", "o", formatTable,
		"Output format: table, json or yaml")
	return cmd
}

func runDerive(cmd *cobra.Command, args []string, opts *DeriveOpts) error {
	if err := validateFormat(opts.Format); err != nil {
		return err
	}
	bands, err := parseBands(opts.Band)
	if err != nil {
		return err
	}
	serial := strings.ToUpper(args[0])
	tuple, err := keygen.ParseSerial(serial)
	if err != nil {
		return err
	}

	d, err := keygen.NewDeriver()
	if err != nil {
		return err
	}
	out := make([]derivation, 0, len(bands))
	for _, band := range bands {
		ssid, _ := tuple.SSID(band)
		out = append(out, derivation{
			Serial:   serial,
			Band:     band.String(),
			SSID:     ssid,
			Checksum: keygen.Checksum(tuple, band.Magic()),
			Password: d.Password(serial, band),
		})
	}
	return render(cmd.OutOrStdout(), opts.Format, out, renderDerivations)
}

func renderDerivations(w io.Writer, rows []derivation) error {
	data := pterm.TableData{{"Serial", "Band", "SSID", "Checksum", "Password"}}
	for _, r := range rows {
		ssid := r.SSID
		if ssid == "" {
			ssid = "-"
		}
		data = append(data, []string{r.Serial, r.Band, ssid, strconv.FormatUint(uint64(r.Checksum), 10), r.Password})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, table)
	return err
}
