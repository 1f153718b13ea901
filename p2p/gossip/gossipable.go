// Copyright (C) 2024-2026, Driftmesh, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gossip

import "github.com/driftmesh/peersync/ids"

// Gossipable is an item that can be gossiped across the network
type Gossipable interface {
	GossipID() ids.ID
}

// Marshaller handles parsing logic for a concrete Gossipable type
type Marshaller[T Gossipable] interface {
	MarshalGossip(T) ([]byte, error)
	UnmarshalGossip([]byte) (T, error)
}

// Set holds a set of known Gossipables
type Set[T Gossipable] interface {
	// Add adds a Gossipable to the set. Returns an error if gossipable was
	// not added.
	Add(gossipable T) error
	// Has returns true if the gossipable is in the set.
	Has(gossipID ids.ID) bool
	// Iterate iterates over elements until [f] returns false
	Iterate(f func(gossipable T) bool)
	// GetFilter returns the byte representation of the bloom filter and its
	// corresponding salt.
	GetFilter() (bloom []byte, salt []byte)
}
