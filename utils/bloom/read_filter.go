// Copyright (C) 2024-2026, Driftmesh, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bloom

import (
	"encoding/binary"
	"errors"
)

var (
	errInvalidNumHashes = errors.New("invalid num hashes")

	// EmptyFilter is a ReadFilter that returns false for all queries.
	EmptyFilter = &ReadFilter{
		hashSeeds: make([]uint64, minHashes),
		entries:   make([]byte, minEntries),
	}

	// FullFilter is a ReadFilter that returns true for all queries.
	FullFilter = &ReadFilter{
		hashSeeds: make([]uint64, minHashes),
		entries:   []byte{0xFF},
	}
)

// ReadFilter is a read-only view over the wire representation of a filter.
// It is used to rehydrate a peer's filter without taking ownership of it.
type ReadFilter struct {
	hashSeeds []uint64
	entries   []byte
}

// Parse [bytes] into a read-only bloom filter.
func Parse(bytes []byte) (*ReadFilter, error) {
	if len(bytes) == 0 {
		return nil, errInvalidNumHashes
	}
	numHashes := int(bytes[0])
	entriesOffset := 1 + numHashes*bytesPerUint64
	switch {
	case numHashes < minHashes:
		return nil, errTooFewHashes
	case numHashes > maxHashes:
		return nil, errTooManyHashes
	case len(bytes) < entriesOffset+minEntries:
		return nil, errTooFewEntries
	}

	f := &ReadFilter{
		hashSeeds: make([]uint64, numHashes),
		entries:   bytes[entriesOffset:],
	}
	for i := range f.hashSeeds {
		f.hashSeeds[i] = binary.BigEndian.Uint64(bytes[1+i*bytesPerUint64:])
	}
	return f, nil
}

// Contains returns true if [hash] may have been added to the filter this view
// was parsed from; false is definitive.
func (f *ReadFilter) Contains(hash uint64) bool {
	return contains(f.hashSeeds, f.entries, hash)
}

// Marshal returns the wire representation this view was parsed from.
func (f *ReadFilter) Marshal() []byte {
	return marshal(f.hashSeeds, f.entries)
}
