package keygen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const passwordAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ"

func TestEncodePassword(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"first letters", []byte{0, 1, 2, 3, 4, 5, 6, 7}, "ABCDEFGH"},
		{"skips I L O", []byte{8, 9, 10, 11, 12, 13, 14, 15}, "JKMNPQRS"},
		{"cascade and reduction", []byte{22, 23, 31, 0xff, 0x48, 0x49, 0x4e, 0x55}, "ZAJJJKRY"},
		{"only first 8 bytes", []byte{0, 0, 0, 0, 0, 0, 0, 0, 22, 22}, "AAAAAAAA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodePassword(tt.in))
		})
	}
}

func TestEncodePassword_Alphabet(t *testing.T) {
	for v := 0; v < 256; v++ {
		b := byte(v)
		got := EncodePassword([]byte{b, b, b, b, b, b, b, b})
		want := string(passwordAlphabet[int(b&0x1f)%23])
		assert.Equal(t, strings.Repeat(want, PasswordLen), got, "byte %#x", b)
	}
}
