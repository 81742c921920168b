package base58

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// checksum: first four bytes of double-sha256.
func checksum(input []byte) (cksum [4]byte) {
	h := chainhash.DoubleHashB(input)
	copy(cksum[:], h[:4])
	return
}

// CheckEncode prepends a version byte, appends a four byte checksum
// computed over the version byte and the input, and returns the base58
// encoding of the result.
func CheckEncode(input []byte, version byte) string {
	b := make([]byte, 0, 1+len(input)+4)
	b = append(b, version)
	b = append(b, input...)
	cksum := checksum(b)
	b = append(b, cksum[:]...)
	return Encode(b)
}

// CheckDecode decodes a string that was encoded with CheckEncode and
// verifies the checksum.
func CheckDecode(input string) (result []byte, version byte, err error) {
	decoded, err := Decode(input)
	if err != nil {
		return nil, 0, err
	}
	if len(decoded) < 5 {
		return nil, 0, ErrInvalidFormat
	}
	version = decoded[0]
	var cksum [4]byte
	copy(cksum[:], decoded[len(decoded)-4:])
	if checksum(decoded[:len(decoded)-4]) != cksum {
		return nil, 0, ErrChecksum
	}
	payload := decoded[1 : len(decoded)-4]
	result = append(result, payload...)
	return
}
