package network

// Network type represents the address prefixes for each network
// https://en.bitcoin.it/wiki/List_of_address_prefixes
type Network struct {
	// Name identifies the network. It must be unique across every
	// parameter set handed to a Registry; two parameter sets with the
	// same name describe the same network.
	Name string
	// Address encoding magic
	PubKeyHash byte
	ScriptHash byte
}

// Version returns the version byte the network uses for addresses of
// the given type.
func (n *Network) Version(t AddressType) byte {
	if t == P2SH {
		return n.ScriptHash
	}
	return n.PubKeyHash
}

// AddressType identifies which of a network's two version bytes an
// address is encoded with.
type AddressType uint8

const (
	// P2PKH is a pay-to-pubkey-hash address.
	P2PKH AddressType = iota

	// P2SH is a pay-to-script-hash address.
	P2SH
)

func (t AddressType) String() string {
	switch t {
	case P2PKH:
		return "p2pkh"
	case P2SH:
		return "p2sh"
	default:
		return "unknown"
	}
}

// Mainnet defines the network parameters for the main Yonder network.
var Mainnet = Network{
	Name:       "mainnet",
	PubKeyHash: 78,
	ScriptHash: 60,
}

// Testnet3 defines the network parameters for the third generation test
// network.
var Testnet3 = Network{
	Name:       "testnet3",
	PubKeyHash: 111,
	ScriptHash: 196,
}

// Regtest defines the network parameters for the regression test
// network. It shares its version bytes with Testnet3, so it is not part
// of the default registry; callers that want regtest addresses register
// it explicitly.
var Regtest = Network{
	Name:       "regtest",
	PubKeyHash: 111,
	ScriptHash: 196,
}
