// Package address implements legacy base58check addresses: a version
// byte selecting a network and address type, a twenty byte
// pay-to-pubkey-hash or pay-to-script-hash payload, and a four byte
// checksum.
//
// Decoding resolves the version byte against a network.Registry, so an
// application chooses which networks it recognizes: the built-ins, or
// parameter sets it registers itself.
package address
