// Package base58 provides base58 and base58check encoding and decoding.
//
// The plain codec (Encode, Decode) converts between byte slices and the
// 58-character bitcoin-style alphabet, preserving leading zero bytes as
// leading '1' characters.
//
// The check codec (CheckEncode, CheckDecode) additionally prepends a
// version byte and appends a four byte double-sha256 checksum, which is
// the wire format of legacy addresses.
package base58
