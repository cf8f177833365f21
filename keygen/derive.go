package keygen

import (
	"crypto"
	_ "crypto/md5"
	"fmt"
	"hash"
	"io"
	"slices"
)

// newHash constructs the stage hash; tests swap it to simulate a missing primitive.
var newHash = func() (hash.Hash, error) {
	if !crypto.MD5.Available() {
		return nil, ErrHashUnavailable
	}
	return crypto.MD5.New(), nil
}

// Deriver turns serial numbers into default passphrases.
// A Deriver reuses one hash instance and must not be shared between goroutines.
type Deriver struct {
	h   hash.Hash
	sum []byte
}

// NewDeriver returns a Deriver, or ErrHashUnavailable when MD5 is not linked in.
func NewDeriver() (*Deriver, error) {
	h, err := newHash()
	if err != nil {
		return nil, fmt.Errorf("create deriver: %w", err)
	}
	return &Deriver{h: h, sum: make([]byte, 0, h.Size())}, nil
}

// Password derives the factory passphrase of serial on band.
func (d *Deriver) Password(serial string, band Band) string {
	// Second stage: hash the hex words, then map the digest onto letters
	return EncodePassword(d.digest(d.stage2Input(serial, band)))
}

// stage2Input hashes the (possibly reversed) serial and renders the two
// mangled words as 16 hex digits.
func (d *Deriver) stage2Input(serial string, band Band) string {
	if band.reversesSerial() {
		serial = reverse(serial)
	}
	// First stage digest, split into two 8-byte halves
	h1 := d.digest(serial)
	w1 := Mangle(words(h1[0:8]))
	w2 := Mangle(words(h1[8:16]))
	return fmt.Sprintf("%08X%08X", w1, w2)
}

// digest returns the hash of s. The slice is reused by the next call.
func (d *Deriver) digest(s string) []byte {
	// Reset so earlier input does not leak into this digest
	d.h.Reset()
	_, _ = io.WriteString(d.h, s)
	d.sum = d.h.Sum(d.sum[:0])
	return d.sum
}

// DerivePassword is a one-shot helper around Deriver.
func DerivePassword(serial string, band Band) (string, error) {
	d, err := NewDeriver()
	if err != nil {
		return "", err
	}
	return d.Password(serial, band), nil
}

func reverse(s string) string {
	b := []byte(s)
	slices.Reverse(b)
	return string(b)
}
