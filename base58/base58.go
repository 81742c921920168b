package base58

import (
	"math/big"
)

const (
	// alphabet is the 58-character set used for encoding. It is the
	// usual bitcoin-style set: the easily confused characters 0, O, I
	// and l are excluded.
	alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

	// alphabetIdx0 is the character that encodes a zero byte.
	alphabetIdx0 = '1'
)

var (
	bigRadix = big.NewInt(58)
	bigZero  = big.NewInt(0)

	// b58 maps each ASCII character to its alphabet index, or -1 for
	// characters outside the alphabet.
	b58 [256]int8
)

func init() {
	for i := range b58 {
		b58[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		b58[alphabet[i]] = int8(i)
	}
}

// Encode encodes a byte slice to a base58 string. The input is treated
// as a big-endian unsigned integer; leading zero bytes are preserved as
// leading '1' characters so that the byte length round-trips exactly.
// The empty slice encodes to the empty string.
func Encode(b []byte) string {
	x := new(big.Int)
	x.SetBytes(b)

	// Worst case the output grows by log(256)/log(58) ~ 1.37.
	answer := make([]byte, 0, len(b)*136/100+1)
	mod := new(big.Int)
	for x.Cmp(bigZero) > 0 {
		x.DivMod(x, bigRadix, mod)
		answer = append(answer, alphabet[mod.Int64()])
	}

	for _, i := range b {
		if i != 0 {
			break
		}
		answer = append(answer, alphabetIdx0)
	}

	// The digits were emitted least significant first.
	alen := len(answer)
	for i := 0; i < alen/2; i++ {
		answer[i], answer[alen-1-i] = answer[alen-1-i], answer[i]
	}

	return string(answer)
}

// Decode decodes a base58 string to a byte slice, the exact inverse of
// Encode. It fails with ErrInvalidCharacter if the string contains a
// character outside the alphabet. The empty string decodes to an empty
// slice.
func Decode(b string) ([]byte, error) {
	answer := big.NewInt(0)
	scratch := new(big.Int)

	for i := 0; i < len(b); i++ {
		v := b58[b[i]]
		if v < 0 {
			return nil, ErrInvalidCharacter(b[i])
		}
		answer.Mul(answer, bigRadix)
		scratch.SetInt64(int64(v))
		answer.Add(answer, scratch)
	}

	tmpval := answer.Bytes()

	var numZeros int
	for numZeros = 0; numZeros < len(b); numZeros++ {
		if b[numZeros] != alphabetIdx0 {
			break
		}
	}

	flen := numZeros + len(tmpval)
	val := make([]byte, flen)
	copy(val[numZeros:], tmpval)

	return val, nil
}
