package address

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"golang.org/x/crypto/ripemd160"

	"github.com/yondernetwork/go-yonder/base58"
	"github.com/yondernetwork/go-yonder/network"
)

// Address is a legacy base58check address: a twenty byte hash bound to
// the network and address type it was produced for. An Address is
// immutable once constructed and safe to share.
type Address struct {
	net  *network.Network
	typ  network.AddressType
	hash [ripemd160.Size]byte
}

// FromPubKeyHash builds a pay-to-pubkey-hash address for the given
// network from an already computed hash160 of a public key.
func FromPubKeyHash(net *network.Network, pkHash []byte) (*Address, error) {
	return newAddress(net, network.P2PKH, pkHash)
}

// FromScriptHash builds a pay-to-script-hash address for the given
// network from an already computed hash160 of a redeem script.
func FromScriptHash(net *network.Network, scriptHash []byte) (*Address, error) {
	return newAddress(net, network.P2SH, scriptHash)
}

func newAddress(net *network.Network, typ network.AddressType, hash []byte) (*Address, error) {
	if len(hash) != ripemd160.Size {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidHashLength, len(hash))
	}
	addr := &Address{net: net, typ: typ}
	copy(addr.hash[:], hash)
	return addr, nil
}

// FromPubKey builds a pay-to-pubkey-hash address from the hash160 of
// the compressed serialization of pub.
func FromPubKey(net *network.Network, pub *btcec.PublicKey) *Address {
	addr := &Address{net: net, typ: network.P2PKH}
	copy(addr.hash[:], btcutil.Hash160(pub.SerializeCompressed()))
	return addr
}

// FromScript builds a pay-to-script-hash address committing to the
// given redeem script.
func FromScript(net *network.Network, script []byte) *Address {
	addr := &Address{net: net, typ: network.P2SH}
	copy(addr.hash[:], btcutil.Hash160(script))
	return addr
}

// DecodeAddress decodes the string encoding of an address and returns
// the address bound to the network its version byte resolves to.
//
// Resolution walks the networks registered in reg in order, and the
// first one claiming the version byte is authoritative: a version byte
// shared by two registered networks always resolves to the earlier
// one, even when expected names the later one. If expected is non-nil
// and resolution disagrees with it, decoding fails with a
// *WrongNetworkError carrying the name of the network the address
// actually resolved to.
func DecodeAddress(addr string, expected *network.Network, reg *network.Registry) (*Address, error) {
	payload, version, err := base58.CheckDecode(addr)
	if err != nil {
		if errors.Is(err, base58.ErrChecksum) {
			return nil, ErrChecksumMismatch
		}
		return nil, err
	}
	if len(payload) != ripemd160.Size {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidLength, len(payload))
	}

	matches := reg.FindByVersion(version)
	if len(matches) == 0 {
		return nil, UnknownVersionError(version)
	}
	match := matches[0]

	net := match.Network
	if expected != nil {
		if match.Network.Name != expected.Name {
			return nil, &WrongNetworkError{
				Resolved: match.Network.Name,
				Expected: expected.Name,
			}
		}
		net = expected
	}

	a := &Address{net: net, typ: match.Type}
	copy(a.hash[:], payload)
	return a, nil
}

// NetworkForAddress reports which registered network an encoded
// address belongs to, without keeping the decoded address around.
func NetworkForAddress(addr string, reg *network.Registry) (*network.Network, error) {
	decoded, err := DecodeAddress(addr, nil, reg)
	if err != nil {
		return nil, err
	}
	return decoded.net, nil
}

// Network returns the parameter set the address was created for.
func (a *Address) Network() *network.Network {
	return a.net
}

// Type returns the address type.
func (a *Address) Type() network.AddressType {
	return a.typ
}

// Version returns the version byte the address is encoded with: the
// network's pubkey-hash or script-hash version, per the address type.
func (a *Address) Version() byte {
	return a.net.Version(a.typ)
}

// Hash160 returns the underlying array of the address hash.
func (a *Address) Hash160() *[ripemd160.Size]byte {
	return &a.hash
}

// ScriptAddress returns the raw hash bytes to be included in a spend
// script.
func (a *Address) ScriptAddress() []byte {
	return a.hash[:]
}

// IsForNet reports whether the address is associated with the given
// network.
func (a *Address) IsForNet(net *network.Network) bool {
	return a.net.Name == net.Name
}

// EncodeAddress returns the string encoding of the address: version
// byte and hash, base58check encoded.
func (a *Address) EncodeAddress() string {
	return base58.CheckEncode(a.hash[:], a.Version())
}

// String returns the same encoding as EncodeAddress.
func (a *Address) String() string {
	return a.EncodeAddress()
}

// Clone returns a copy of the address with its own storage for the
// hash bytes. The network reference stays shared, parameter sets
// being immutable.
func (a *Address) Clone() *Address {
	c := *a
	return &c
}

// Equal reports whether a and o encode the same hash with the same
// version byte on the same network. Networks compare by name, so
// equality survives cloning and re-decoding.
func (a *Address) Equal(o *Address) bool {
	if a == nil || o == nil {
		return a == o
	}
	return a.Compare(o) == 0
}

// Compare orders two addresses by network name, then version byte,
// then hash bytes interpreted as unsigned. The order is total and
// consistent with Equal: Compare returns 0 exactly when Equal reports
// true.
func (a *Address) Compare(o *Address) int {
	if a.net.Name != o.net.Name {
		if a.net.Name < o.net.Name {
			return -1
		}
		return 1
	}
	if av, ov := a.Version(), o.Version(); av != ov {
		if av < ov {
			return -1
		}
		return 1
	}
	return bytes.Compare(a.hash[:], o.hash[:])
}
