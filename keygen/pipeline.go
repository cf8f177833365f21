package keygen

import "iter"

// Result is one candidate serial and the passphrase derived from it.
type Result struct {
	Serial   string `json:"serial" yaml:"serial"`
	Password string `json:"password" yaml:"password"`
}

// Candidates lazily yields a Result for every serial matching target on band,
// in enumeration order. The hash primitive is set up before anything is
// enumerated so ErrHashUnavailable surfaces immediately.
//
// The returned sequence is restartable but not safe for concurrent
// iteration, since every pass shares one Deriver.
func Candidates(band Band, target uint32) (iter.Seq[Result], error) {
	d, err := NewDeriver()
	if err != nil {
		return nil, err
	}
	return func(yield func(Result) bool) {
		for serial := range Serials(band, target) {
			if !yield(Result{Serial: serial, Password: d.Password(serial, band)}) {
				return
			}
		}
	}, nil
}

// Generate parses a full SSID such as "UPC1234567" and returns its candidates.
func Generate(ssid string, band Band) (iter.Seq[Result], error) {
	target, err := ParseSSID(ssid)
	if err != nil {
		return nil, err
	}
	return Candidates(band, target)
}
