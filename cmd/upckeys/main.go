// Command upckeys prints the default WPA passphrase candidates of a
// UPC-class router from its SSID.
package main

import (
	"os"

	"github.com/pterm/pterm"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		pterm.Error.Printf("%v\n", err)
		os.Exit(1)
	}
}
