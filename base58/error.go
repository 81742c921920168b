package base58

import (
	"errors"
	"fmt"
)

// ErrInvalidCharacter is returned when decoding encounters a character
// that is not part of the base58 alphabet.
type ErrInvalidCharacter byte

func (e ErrInvalidCharacter) Error() string {
	return fmt.Sprintf("invalid character in string: '%c'", byte(e))
}

var (
	// ErrChecksum indicates that the checksum of a check-encoded string
	// does not verify against the checksum.
	ErrChecksum = errors.New("checksum error")

	// ErrInvalidFormat indicates that the check-encoded string has an
	// invalid format. In particular, anything that base58-decodes to
	// fewer than five bytes (a version byte plus the four checksum
	// bytes) cannot be a check-encoded string. The empty string fails
	// this way, not with a checksum error.
	ErrInvalidFormat = errors.New("invalid format: version and/or checksum bytes missing")
)
