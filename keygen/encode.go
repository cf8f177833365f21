package keygen

// PasswordLen is the length of every derived passphrase.
const PasswordLen = 8

// EncodePassword maps the first 8 bytes of a digest onto A-Z without I, L and O.
func EncodePassword(h []byte) string {
	pass := make([]byte, PasswordLen)
	for i := range pass {
		a := uint32(h[i]&0x1f) % 23
		a = (a & 0xff) + 'A'
		// each skip is tested against the already shifted value
		if a >= 'I' {
			a++
		}
		if a >= 'L' {
			a++
		}
		if a >= 'O' {
			a++
		}
		pass[i] = byte(a)
	}
	return string(pass)
}
