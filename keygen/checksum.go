package keygen

import (
	"fmt"
	"strconv"
)

// Tuple bounds, inclusive
const (
	MaxD0 = 9
	MaxD1 = 99
	MaxD2 = 9
	MaxD3 = 9999
)

const (
	serialPrefix = "SAAP"
	serialLen    = len(serialPrefix) + 8
	ssidPrefix   = 3

	// reciprocal of 10,000,000 scaled by 2^54
	checksumReciprocal = 0x6b5fca6b
)

// Tuple is the digit decomposition of a serial number.
type Tuple struct {
	D0, D1, D2, D3 uint32
}

// Serial formats the tuple as SAAP + d0 + d1(2) + d2 + d3(4).
func (t Tuple) Serial() string {
	return fmt.Sprintf("%s%d%02d%d%04d", serialPrefix, t.D0, t.D1, t.D2, t.D3)
}

// Valid reports whether every component is within its bound.
func (t Tuple) Valid() bool {
	return t.D0 <= MaxD0 && t.D1 <= MaxD1 && t.D2 <= MaxD2 && t.D3 <= MaxD3
}

// Checksum computes the SSID suffix the firmware derives from a serial tuple.
//
// The quotient is the firmware's reciprocal division including the
// sign-bit correction, which makes it one less than b/10^7 whenever the
// top bit of b is set. Both band magics put b there for small tuples, so
// plain division would not reproduce the device's SSIDs.
func Checksum(t Tuple, magic uint32) uint32 {
	a := t.D1*10 + t.D2
	b := t.D0*2500000 + a*6800 + t.D3 + magic
	q := uint32((uint64(b)*checksumReciprocal)>>54) - b>>31
	return b - q*10000000
}

// SSID returns the SSID a device with this tuple broadcasts on band, and
// false when the checksum does not fit the 7 digit suffix.
func (t Tuple) SSID(band Band) (string, bool) {
	c := Checksum(t, band.Magic())
	if c > 9999999 {
		return "", false
	}
	return fmt.Sprintf("UPC%07d", c), true
}

// ParseSerial splits a SAAP serial back into its tuple.
func ParseSerial(serial string) (Tuple, error) {
	if len(serial) != serialLen || serial[:len(serialPrefix)] != serialPrefix {
		return Tuple{}, fmt.Errorf("%w: serial %q is not %s followed by 8 digits", ErrInvalidInput, serial, serialPrefix)
	}
	digits := serial[len(serialPrefix):]
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return Tuple{}, fmt.Errorf("%w: serial %q contains a non-digit", ErrInvalidInput, serial)
		}
	}
	num := func(s string) uint32 {
		n, _ := strconv.ParseUint(s, 10, 32)
		return uint32(n)
	}
	return Tuple{
		D0: num(digits[0:1]),
		D1: num(digits[1:3]),
		D2: num(digits[3:4]),
		D3: num(digits[4:8]),
	}, nil
}

// ParseTarget parses the numeric SSID suffix into the checksum to search for.
func ParseTarget(suffix string) (uint32, error) {
	if suffix == "" {
		return 0, fmt.Errorf("%w: empty SSID suffix", ErrInvalidInput)
	}
	for i := 0; i < len(suffix); i++ {
		if suffix[i] < '0' || suffix[i] > '9' {
			return 0, fmt.Errorf("%w: SSID suffix %q is not numeric", ErrInvalidInput, suffix)
		}
	}
	n, err := strconv.ParseUint(suffix, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: SSID suffix %q out of range", ErrInvalidInput, suffix)
	}
	return uint32(n), nil
}

// ParseSSID drops the 3 character vendor prefix of ssid and parses the rest.
// The prefix is counted in characters, not bytes, and is never checked.
func ParseSSID(ssid string) (uint32, error) {
	runes := []rune(ssid)
	if len(runes) <= ssidPrefix {
		return 0, fmt.Errorf("%w: SSID %q too short", ErrInvalidInput, ssid)
	}
	return ParseTarget(string(runes[ssidPrefix:]))
}
