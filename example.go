package main

import (
	"encoding/hex"
	"errors"
	"log"
	"os"
	"sort"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btclog"

	"github.com/yondernetwork/go-yonder/address"
	"github.com/yondernetwork/go-yonder/network"
)

func main() {
	// Surface the registry debug logs on stdout.
	backend := btclog.NewBackend(os.Stdout)
	logger := backend.Logger("YNDR")
	logger.SetLevel(btclog.LevelDebug)
	network.UseLogger(logger)

	reg := network.NewRegistry()

	// Decode a mainnet address and inspect it.
	a, err := address.DecodeAddress("YPhhKh9d32yY89effx7mcHdquqyq4G1AL5", nil, reg)
	if err != nil {
		panic(err)
	}
	log.Printf("%s: network=%s type=%s hash=%x",
		a, a.Network().Name, a.Type(), a.ScriptAddress())

	// Parsing against another network fails with a distinguished error
	// that still names the network the address really belongs to.
	_, err = address.DecodeAddress(a.String(), &network.Testnet3, reg)
	var wrongNet *address.WrongNetworkError
	if errors.As(err, &wrongNet) {
		log.Printf("rejected: %s (address is really for %s)", err, wrongNet.Resolved)
	}

	// Alternate networks become decodable once registered.
	ltc := &network.Network{Name: "litecoin", PubKeyHash: 48, ScriptHash: 5}
	if err := reg.Register(ltc); err != nil {
		panic(err)
	}
	b, err := address.DecodeAddress("LLxSnHLN2CYyzB5eWTR9K9rS9uWtbTQFb6", nil, reg)
	if err != nil {
		panic(err)
	}
	log.Printf("%s: network=%s", b, b.Network().Name)
	reg.Unregister(ltc)

	// Build addresses from an upstream hash and from a public key.
	pkHash, _ := hex.DecodeString("fda79a24e50ff70ff42f7d89585da5bd19d9e5cc")
	c, err := address.FromPubKeyHash(&network.Testnet3, pkHash)
	if err != nil {
		panic(err)
	}

	serialized, _ := hex.DecodeString(
		"0250863ad64a87ae8a2fe83c1af1a8403cb53f53e486d8511dad8a04887e5b2352")
	pub, err := btcec.ParsePubKey(serialized)
	if err != nil {
		panic(err)
	}
	d := address.FromPubKey(&network.Mainnet, pub)

	// Addresses carry a total order: by network, version byte, hash.
	addrs := []*address.Address{c, d, a}
	sort.Slice(addrs, func(i, j int) bool {
		return addrs[i].Compare(addrs[j]) < 0
	})
	for _, x := range addrs {
		log.Printf("%s (%s %s)", x, x.Network().Name, x.Type())
	}
}
