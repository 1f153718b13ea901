// Copyright (C) 2024-2026, Driftmesh, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// IDLen is the number of bytes in an ID.
const IDLen = 32

// Empty is a useful all-zero value.
var Empty = ID{}

// ID is a 32 byte opaque identifier. It is used both to key gossiped items
// and as a bloom filter salt.
type ID [IDLen]byte

// ToID attempts to convert a byte slice into an id.
func ToID(bytes []byte) (ID, error) {
	if len(bytes) != IDLen {
		return Empty, fmt.Errorf("expected %d bytes but got %d", IDLen, len(bytes))
	}
	var id ID
	copy(id[:], bytes)
	return id, nil
}

func (id ID) Compare(other ID) int {
	return bytes.Compare(id[:], other[:])
}

func (id ID) String() string {
	return hex.EncodeToString(id[:])
}

func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *ID) UnmarshalText(text []byte) error {
	decoded, err := hex.DecodeString(string(text))
	if err != nil {
		return err
	}
	newID, err := ToID(decoded)
	if err != nil {
		return err
	}
	*id = newID
	return nil
}

// GenerateTestID returns a new ID that should only be used for testing.
func GenerateTestID() ID {
	var id ID
	_, _ = rand.Read(id[:])
	return id
}
