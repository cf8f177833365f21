package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/Cepat-Kilat-Teknologi/upc-keys-relay/keygen"
	"github.com/pterm/pterm"
	"go.yaml.in/yaml/v4"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"

	bandBoth = "both"
)

func validateFormat(format string) error {
	switch format {
	case formatTable, formatJSON, formatYAML:
		return nil
	}
	return fmt.Errorf("invalid format %q, must be one of table, json or yaml", format)
}

// parseBands expands the --band flag; "both" keeps the stable 2.4GHz, 5GHz order
func parseBands(raw string) ([]keygen.Band, error) {
	if raw == bandBoth {
		return keygen.Bands, nil
	}
	band, err := keygen.ParseBand(raw)
	if err != nil {
		return nil, err
	}
	return []keygen.Band{band}, nil
}

// render writes v as json or yaml, or hands it to table for table output
func render[T any](w io.Writer, format string, v T, table func(io.Writer, T) error) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return table(w, v)
	}
}

func renderCandidates(w io.Writer, bands []bandResult) error {
	for _, b := range bands {
		fmt.Fprintf(w, "%s %s: %d candidate(s)\n", b.SSID, b.Band, len(b.Candidates))
		if len(b.Candidates) == 0 {
			fmt.Fprintln(w)
			continue
		}
		data := pterm.TableData{{"#", "Serial", "Password"}}
		for i, c := range b.Candidates {
			data = append(data, []string{strconv.Itoa(i + 1), c.Serial, c.Password})
		}
		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, table)
		fmt.Fprintln(w)
	}
	return nil
}
