package keygen

import "errors"

var (
	// ErrInvalidInput is returned for malformed SSIDs, targets, serials or bands.
	ErrInvalidInput = errors.New("invalid input")

	// ErrHashUnavailable is returned when the MD5 primitive cannot be constructed.
	ErrHashUnavailable = errors.New("md5 hash primitive unavailable")
)
