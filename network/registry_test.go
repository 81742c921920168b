package network_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/require"

	"github.com/yondernetwork/go-yonder/network"
)

// bitcoinNet builds an alternate parameter set from the upstream
// bitcoin mainnet constants.
func bitcoinNet() *network.Network {
	return &network.Network{
		Name:       "bitcoin",
		PubKeyHash: chaincfg.MainNetParams.PubKeyHashAddrID,
		ScriptHash: chaincfg.MainNetParams.ScriptHashAddrID,
	}
}

func TestNewRegistry(t *testing.T) {
	reg := network.NewRegistry()

	nets := reg.Networks()
	require.Len(t, nets, 2)
	require.Same(t, &network.Mainnet, nets[0])
	require.Same(t, &network.Testnet3, nets[1])
}

func TestRegister(t *testing.T) {
	reg := network.NewRegistry()
	btc := bitcoinNet()

	require.NoError(t, reg.Register(btc))
	nets := reg.Networks()
	require.Len(t, nets, 3)
	require.Same(t, btc, nets[2])

	t.Run("same pointer is a no-op", func(t *testing.T) {
		require.NoError(t, reg.Register(btc))
		require.Len(t, reg.Networks(), 3)
	})

	t.Run("duplicate name", func(t *testing.T) {
		err := reg.Register(bitcoinNet())
		require.ErrorIs(t, err, network.ErrDuplicateNetwork)

		err = reg.Register(&network.Network{
			Name:       "mainnet",
			PubKeyHash: 1,
			ScriptHash: 2,
		})
		require.ErrorIs(t, err, network.ErrDuplicateNetwork)
	})

	t.Run("invalid parameters", func(t *testing.T) {
		require.ErrorIs(t, reg.Register(nil), network.ErrInvalidNetwork)
		require.ErrorIs(t, reg.Register(&network.Network{
			PubKeyHash: 1,
			ScriptHash: 2,
		}), network.ErrInvalidNetwork)
		require.ErrorIs(t, reg.Register(&network.Network{
			Name:       "collide",
			PubKeyHash: 7,
			ScriptHash: 7,
		}), network.ErrInvalidNetwork)
	})
}

func TestUnregister(t *testing.T) {
	reg := network.NewRegistry()
	btc := bitcoinNet()
	require.NoError(t, reg.Register(btc))

	// Absent networks are ignored.
	reg.Unregister(&network.Network{Name: "nope"})
	require.Len(t, reg.Networks(), 3)

	reg.Unregister(btc)
	require.Len(t, reg.Networks(), 2)
	reg.Unregister(btc)
	require.Len(t, reg.Networks(), 2)

	t.Run("by name", func(t *testing.T) {
		require.NoError(t, reg.Register(btc))
		reg.Unregister(&network.Network{Name: "bitcoin"})
		require.Len(t, reg.Networks(), 2)
	})

	t.Run("built-in", func(t *testing.T) {
		reg.Unregister(&network.Mainnet)
		nets := reg.Networks()
		require.Len(t, nets, 1)
		require.Same(t, &network.Testnet3, nets[0])
	})
}

func TestFindByVersion(t *testing.T) {
	reg := network.NewRegistry()

	matches := reg.FindByVersion(network.Mainnet.PubKeyHash)
	require.Len(t, matches, 1)
	require.Same(t, &network.Mainnet, matches[0].Network)
	require.Equal(t, network.P2PKH, matches[0].Type)

	matches = reg.FindByVersion(network.Mainnet.ScriptHash)
	require.Len(t, matches, 1)
	require.Same(t, &network.Mainnet, matches[0].Network)
	require.Equal(t, network.P2SH, matches[0].Type)

	require.Empty(t, reg.FindByVersion(0xee))

	// Regtest shares its version bytes with testnet3. Once registered
	// it matches too, but always after testnet3.
	require.NoError(t, reg.Register(&network.Regtest))

	matches = reg.FindByVersion(network.Testnet3.PubKeyHash)
	require.Len(t, matches, 2)
	require.Same(t, &network.Testnet3, matches[0].Network)
	require.Same(t, &network.Regtest, matches[1].Network)
	require.Equal(t, network.P2PKH, matches[0].Type)
	require.Equal(t, network.P2PKH, matches[1].Type)

	matches = reg.FindByVersion(network.Testnet3.ScriptHash)
	require.Len(t, matches, 2)
	require.Same(t, &network.Testnet3, matches[0].Network)
	require.Same(t, &network.Regtest, matches[1].Network)
	require.Equal(t, network.P2SH, matches[0].Type)
	require.Equal(t, network.P2SH, matches[1].Type)
}

func TestNetworksSnapshot(t *testing.T) {
	reg := network.NewRegistry()

	nets := reg.Networks()
	nets[0] = nil

	fresh := reg.Networks()
	require.Same(t, &network.Mainnet, fresh[0])
}

func TestVersionByType(t *testing.T) {
	require.Equal(t, byte(78), network.Mainnet.Version(network.P2PKH))
	require.Equal(t, byte(60), network.Mainnet.Version(network.P2SH))
	require.Equal(t, byte(111), network.Testnet3.Version(network.P2PKH))
	require.Equal(t, byte(196), network.Testnet3.Version(network.P2SH))
}

func TestAddressTypeString(t *testing.T) {
	require.Equal(t, "p2pkh", network.P2PKH.String())
	require.Equal(t, "p2sh", network.P2SH.String())
	require.Equal(t, "unknown", network.AddressType(42).String())
}

// TestConcurrentAccess exercises lookups racing registrations. It is a
// smoke test for the snapshot discipline; run it with -race.
func TestConcurrentAccess(t *testing.T) {
	reg := network.NewRegistry()

	errCh := make(chan error, 8)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)

		go func(i int) {
			defer wg.Done()
			net := &network.Network{
				Name:       fmt.Sprintf("alt%d", i),
				PubKeyHash: byte(2 * i),
				ScriptHash: byte(2*i + 1),
			}
			errCh <- reg.Register(net)
			reg.Unregister(net)
		}(i)

		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				reg.FindByVersion(network.Mainnet.PubKeyHash)
				reg.Networks()
			}
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	// Every dynamic registration was removed again.
	require.Len(t, reg.Networks(), 2)
}
