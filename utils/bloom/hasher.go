// Copyright (C) 2024-2026, Driftmesh, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bloom

import (
	"crypto/sha256"
	"encoding/binary"
)

// Checker is the read side of a bloom filter.
type Checker interface {
	Contains(hash uint64) bool
}

// Add [key] salted with [salt] to [f].
func Add(f *Filter, key, salt []byte) {
	f.Add(Hash(key, salt))
}

// Contains returns true if [key] salted with [salt] may have been added to
// [c]; false is definitive.
func Contains(c Checker, key, salt []byte) bool {
	return c.Contains(Hash(key, salt))
}

// Hash deterministically maps [key] salted with [salt] to the uint64 that is
// inserted into or looked up in a filter. Every byte of both inputs
// contributes to the result, so two parties only agree on the mapping if they
// agree on the salt.
func Hash(key, salt []byte) uint64 {
	hash := sha256.New()
	// sha256.Write never returns errors
	_, _ = hash.Write(key)
	_, _ = hash.Write(salt)

	output := make([]byte, 0, sha256.Size)
	return binary.BigEndian.Uint64(hash.Sum(output))
}
