/*
This is a walkthrough of the go-yonder address library: decoding,
inspecting and re-encoding legacy base58check addresses across the
networks of the Yonder chain family.

You can run the full example with this command.
  $ go run .

Everything starts from a network registry. The registry decides which
networks are recognized while decoding; it comes seeded with the
built-ins, Mainnet and Testnet3.
	reg := network.NewRegistry()

Decoding with no expected network resolves the address version byte
against the registry and binds the matching network.
	a, err := address.DecodeAddress("YPhhKh9d32yY89effx7mcHdquqyq4G1AL5", nil, reg)
	if err != nil {
		panic(err)
	}
	fmt.Println(a.Network().Name) // mainnet
	fmt.Println(a.Type())         // p2pkh

Decoding with an expected network guards against pasting an address
from the wrong chain. The failure is distinguishable from corrupt
input, and carries the network the address actually belongs to.
	_, err = address.DecodeAddress(a.String(), &network.Testnet3, reg)
	var wrongNet *address.WrongNetworkError
	if errors.As(err, &wrongNet) {
		fmt.Println(wrongNet.Resolved) // mainnet
	}

Alternate networks are plain parameter sets. Register one and its
addresses decode like the built-ins; unregister it and they stop.
	ltc := &network.Network{Name: "litecoin", PubKeyHash: 48, ScriptHash: 5}
	if err := reg.Register(ltc); err != nil {
		panic(err)
	}
	b, _ := address.DecodeAddress("LLxSnHLN2CYyzB5eWTR9K9rS9uWtbTQFb6", nil, reg)
	reg.Unregister(ltc)

Addresses are also built directly, from a twenty byte hash computed
upstream or from a public key.
	pkh, _ := address.FromPubKeyHash(&network.Testnet3, hash160)
	p2sh, _ := address.FromScriptHash(&network.Mainnet, scriptHash160)
	fromKey := address.FromPubKey(&network.Mainnet, pubKey)

Rendering is the exact inverse of decoding.
	fmt.Println(pkh.String())

Addresses are immutable values with value equality and a total order,
so they work as map keys via String and sort deterministically.
	clone := pkh.Clone()
	fmt.Println(pkh.Equal(clone))     // true
	fmt.Println(pkh.Compare(clone))   // 0
*/
package main
