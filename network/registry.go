package network

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrDuplicateNetwork is returned by Registry.Register when a
	// different parameter set with the same name is already registered.
	ErrDuplicateNetwork = errors.New("duplicate network")

	// ErrInvalidNetwork is returned by Registry.Register for a
	// parameter set with an empty name or whose two version bytes are
	// not distinct.
	ErrInvalidNetwork = errors.New("invalid network parameters")
)

// VersionMatch pairs a registered network with the address type whose
// version byte matched a lookup.
type VersionMatch struct {
	Network *Network
	Type    AddressType
}

// Registry holds the set of networks recognized when decoding
// addresses. Lookups walk the networks in order, built-ins first and
// then dynamic registrations oldest first, so the earliest registered
// network wins whenever two networks claim the same version byte.
//
// A Registry is safe for concurrent use. The backing slice is replaced
// wholesale on every mutation and lookups iterate over the snapshot
// they read, so registering or unregistering never blocks decoding.
type Registry struct {
	mtx      sync.RWMutex
	networks []*Network
}

// NewRegistry returns a registry seeded with the built-in networks,
// Mainnet and Testnet3, in that order. Regtest shares its version bytes
// with Testnet3 and is left for the caller to register when wanted.
func NewRegistry() *Registry {
	return &Registry{
		networks: []*Network{&Mainnet, &Testnet3},
	}
}

// Register adds net after every already registered network, so a new
// registration can never shadow an earlier network claiming the same
// version bytes. Registering a pointer that is already present is a
// no-op. Registering a distinct parameter set under a name that is
// already taken fails with ErrDuplicateNetwork.
func (r *Registry) Register(net *Network) error {
	if net == nil || net.Name == "" || net.PubKeyHash == net.ScriptHash {
		return ErrInvalidNetwork
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	for _, n := range r.networks {
		if n == net {
			return nil
		}
		if n.Name == net.Name {
			return fmt.Errorf("%w: %s", ErrDuplicateNetwork, net.Name)
		}
	}

	networks := make([]*Network, len(r.networks), len(r.networks)+1)
	copy(networks, r.networks)
	r.networks = append(networks, net)

	log.Debugf("Registered network %s (p2pkh version %d, p2sh "+
		"version %d)", net.Name, net.PubKeyHash, net.ScriptHash)
	return nil
}

// Unregister removes a previously registered network, matched by
// pointer or by name. Unregistering a network that is not present is a
// no-op. Built-ins may be removed the same way.
func (r *Registry) Unregister(net *Network) {
	if net == nil {
		return
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	for i, n := range r.networks {
		if n != net && n.Name != net.Name {
			continue
		}
		networks := make([]*Network, 0, len(r.networks)-1)
		networks = append(networks, r.networks[:i]...)
		networks = append(networks, r.networks[i+1:]...)
		r.networks = networks

		log.Debugf("Unregistered network %s", n.Name)
		return
	}
}

// Networks returns the registered networks in lookup order.
func (r *Registry) Networks() []*Network {
	r.mtx.RLock()
	networks := r.networks
	r.mtx.RUnlock()

	out := make([]*Network, len(networks))
	copy(out, networks)
	return out
}

// FindByVersion returns every registered network claiming the given
// version byte, in lookup order. A caller that resolves the byte to a
// single network takes the first match; the full slice is for callers
// that want to inspect the ambiguity when networks collide.
func (r *Registry) FindByVersion(version byte) []VersionMatch {
	r.mtx.RLock()
	networks := r.networks
	r.mtx.RUnlock()

	var matches []VersionMatch
	for _, n := range networks {
		if n.PubKeyHash == version {
			matches = append(matches, VersionMatch{Network: n, Type: P2PKH})
		}
		if n.ScriptHash == version {
			matches = append(matches, VersionMatch{Network: n, Type: P2SH})
		}
	}
	return matches
}
