// Copyright (C) 2024-2026, Driftmesh, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// NodeIDLen is the number of bytes in a NodeID.
const NodeIDLen = 20

var EmptyNodeID = NodeID{}

// NodeID identifies a peer. The transport layer is responsible for binding
// node ids to authenticated connections.
type NodeID [NodeIDLen]byte

// ToNodeID attempts to convert a byte slice into a node id.
func ToNodeID(bytes []byte) (NodeID, error) {
	if len(bytes) != NodeIDLen {
		return EmptyNodeID, fmt.Errorf("expected %d bytes but got %d", NodeIDLen, len(bytes))
	}
	var nodeID NodeID
	copy(nodeID[:], bytes)
	return nodeID, nil
}

func (id NodeID) Compare(other NodeID) int {
	return bytes.Compare(id[:], other[:])
}

func (id NodeID) String() string {
	return "NodeID-" + hex.EncodeToString(id[:])
}

// GenerateTestNodeID returns a new NodeID that should only be used for
// testing.
func GenerateTestNodeID() NodeID {
	var id NodeID
	_, _ = rand.Read(id[:])
	return id
}
