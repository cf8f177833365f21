package keygen

import (
	"fmt"
	"strings"
)

// Band is the radio band the SSID is broadcast on.
type Band int

const (
	Band24GHz Band = iota
	Band5GHz
)

// Checksum magics per band
const (
	magic24GHz uint32 = 0xff8d8f20
	magic5GHz  uint32 = 0xffd9da60
)

// Bands lists every supported band in a stable order.
var Bands = []Band{Band24GHz, Band5GHz}

func (b Band) String() string {
	switch b {
	case Band24GHz:
		return "2.4GHz"
	case Band5GHz:
		return "5GHz"
	default:
		return fmt.Sprintf("Band(%d)", int(b))
	}
}

// Magic returns the constant added by the SSID checksum for this band.
func (b Band) Magic() uint32 {
	if b == Band5GHz {
		return magic5GHz
	}
	return magic24GHz
}

// reversesSerial reports whether the firmware hashes the serial backwards.
func (b Band) reversesSerial() bool {
	return b == Band5GHz
}

// ParseBand parses a user supplied band selector such as "2.4", "2.4GHz" or "5".
func ParseBand(s string) (Band, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "2.4", "2.4ghz", "24", "g24":
		return Band24GHz, nil
	case "5", "5ghz", "g5":
		return Band5GHz, nil
	}
	return 0, fmt.Errorf("%w: unknown band %q", ErrInvalidInput, s)
}
