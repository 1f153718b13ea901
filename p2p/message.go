// Copyright (C) 2024-2026, Driftmesh, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package p2p

import "encoding/binary"

// Op is the type of an application message.
type Op byte

const (
	AppRequestOp Op = iota
	AppResponseOp
	AppRequestFailedOp
	AppGossipOp
	CrossChainAppRequestOp
)

func (op Op) String() string {
	switch op {
	case AppRequestOp:
		return "app_request"
	case AppResponseOp:
		return "app_response"
	case AppRequestFailedOp:
		return "app_request_failed"
	case AppGossipOp:
		return "app_gossip"
	case CrossChainAppRequestOp:
		return "cross_chain_app_request"
	default:
		return "unknown"
	}
}

// ProtocolPrefix returns the wire prefix that routes messages to the handler
// registered with [handlerID].
func ProtocolPrefix(handlerID uint64) []byte {
	return binary.AppendUvarint(nil, handlerID)
}

// PrefixMessage prefixes the original message with the protocol identifier.
//
// Only gossip and request messages need to be prefixed.
// Response messages don't need to be prefixed because request ids are tracked
// which map to the expected response handler.
func PrefixMessage(prefix, msg []byte) []byte {
	messageBytes := make([]byte, len(prefix)+len(msg))
	copy(messageBytes, prefix)
	copy(messageBytes[len(prefix):], msg)
	return messageBytes
}
