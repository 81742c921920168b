package address

import (
	"errors"
	"fmt"
)

var (
	// ErrChecksumMismatch describes an error where decoding failed due
	// to a bad checksum.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrInvalidLength describes an error where a decoded address
	// carries a payload that is not exactly twenty bytes.
	ErrInvalidLength = errors.New("invalid payload length")

	// ErrInvalidHashLength describes an error where a constructor was
	// handed a hash that is not exactly twenty bytes.
	ErrInvalidHashLength = errors.New("hash must be 20 bytes")
)

// UnknownVersionError is returned when an address is well formed but
// carries a version byte that no registered network claims.
type UnknownVersionError byte

func (e UnknownVersionError) Error() string {
	return fmt.Sprintf("unknown address version byte %d", byte(e))
}

// WrongNetworkError is returned when an address is well formed and its
// version byte resolves to a registered network, but not the one the
// caller expected. Resolved names the network the address actually
// belongs to, so callers can report it or retry against it rather than
// treat the input as corrupt.
type WrongNetworkError struct {
	Resolved string
	Expected string
}

func (e *WrongNetworkError) Error() string {
	return fmt.Sprintf("address is for network %s, expected %s",
		e.Resolved, e.Expected)
}
