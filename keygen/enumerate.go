package keygen

import "iter"

// Serials yields, in enumeration order, every serial whose band checksum
// equals target. d0 is the outermost dimension and d3 the innermost.
func Serials(band Band, target uint32) iter.Seq[string] {
	return func(yield func(string) bool) {
		scan(0, MaxD0, band.Magic(), target, func(t Tuple) bool {
			return yield(t.Serial())
		})
	}
}

// Tuples is Serials without the string formatting.
func Tuples(band Band, target uint32) iter.Seq[Tuple] {
	return func(yield func(Tuple) bool) {
		scan(0, MaxD0, band.Magic(), target, yield)
	}
}

// scan walks d0 in [lo, hi] and the full range of the other dimensions.
// It returns false if yield asked to stop.
func scan(lo, hi uint32, magic, target uint32, yield func(Tuple) bool) bool {
	for d0 := lo; d0 <= hi; d0++ {
		for d1 := uint32(0); d1 <= MaxD1; d1++ {
			if !scanBlock(d0, d1, magic, target, yield) {
				return false
			}
		}
	}
	return true
}

// scanBlock walks d2 and d3 for a fixed (d0, d1).
func scanBlock(d0, d1, magic, target uint32, yield func(Tuple) bool) bool {
	for d2 := uint32(0); d2 <= MaxD2; d2++ {
		for d3 := uint32(0); d3 <= MaxD3; d3++ {
			t := Tuple{D0: d0, D1: d1, D2: d2, D3: d3}
			if Checksum(t, magic) != target {
				continue
			}
			if !yield(t) {
				return false
			}
		}
	}
	return true
}
