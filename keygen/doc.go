// Package keygen recovers factory default WPA passphrases of UPC-class
// routers whose SSID is "UPC" followed by a 7 digit checksum of the hidden
// serial number.
//
// The pipeline is: enumerate every serial tuple whose checksum equals the
// SSID suffix, then for each serial run the vendor's two-stage MD5 key
// derivation. The checksum is not injective, so several (serial, password)
// pairs are usually produced and all of them have to be tried.
package keygen
