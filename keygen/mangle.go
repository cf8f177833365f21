package keygen

import "encoding/binary"

// reciprocal of 9999 scaled by 2^40
const mangleReciprocal = 0x068de3af

// Mangle folds four 16-bit digest words into one 32-bit word.
// All arithmetic wraps at 32 bits.
func Mangle(pp [4]uint32) uint32 {
	a := uint32((uint64(pp[3])*mangleReciprocal)>>40) - pp[3]>>31
	b := (pp[3] - a*9999 + 1) * 11
	return b * (pp[1]*100 + pp[2]*10 + pp[0])
}

// words packs an 8 byte window into little-endian 16-bit words.
func words(window []byte) [4]uint32 {
	var pp [4]uint32
	for i := range pp {
		pp[i] = uint32(binary.LittleEndian.Uint16(window[2*i:]))
	}
	return pp
}
