// Copyright (C) 2024-2026, Driftmesh, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package p2p

import (
	"context"

	"github.com/driftmesh/peersync/ids"
	"github.com/driftmesh/peersync/utils/set"
)

// SendConfig specifies who to send gossip messages to.
type SendConfig struct {
	// NodeIDs are explicit recipients.
	NodeIDs set.Set[ids.NodeID]
	// Peers is the number of additional random peers to send to.
	Peers int
}

// Sender is the transport boundary of this module. Implementations are
// expected to deliver messages asynchronously and must be non-blocking; the
// protocol layer never opens sockets itself.
type Sender interface {
	// SendAppRequest sends [requestBytes] to [nodeIDs]. Responses are
	// correlated by [requestID] and delivered through AppHandler.AppResponse
	// or AppHandler.AppRequestFailed.
	SendAppRequest(ctx context.Context, nodeIDs set.Set[ids.NodeID], requestID uint32, requestBytes []byte) error
	// SendAppResponse sends [responseBytes] answering the request [requestID]
	// previously received from [nodeID].
	SendAppResponse(ctx context.Context, nodeID ids.NodeID, requestID uint32, responseBytes []byte) error
	// SendAppError reports a handler failure for request [requestID] back to
	// [nodeID].
	SendAppError(ctx context.Context, nodeID ids.NodeID, requestID uint32, errorCode int32, errorMessage string) error
	// SendAppGossip sends [gossipBytes] to the peers selected by [config]
	// without expecting a response.
	SendAppGossip(ctx context.Context, config SendConfig, gossipBytes []byte) error
	// SendCrossChainAppResponse sends [responseBytes] answering the
	// cross-chain request [requestID] previously received from [chainID].
	SendCrossChainAppResponse(ctx context.Context, chainID ids.ID, requestID uint32, responseBytes []byte) error
}

var _ Sender = (*FakeSender)(nil)

// FakeSender is used for testing. Sent bytes are written to the corresponding
// channel when it is non-nil.
type FakeSender struct {
	SentAppRequest            chan []byte
	SentAppResponse           chan []byte
	SentAppGossip             chan []byte
	SentAppError              chan *AppError
	SentCrossChainAppResponse chan []byte
}

func (f *FakeSender) SendAppRequest(_ context.Context, _ set.Set[ids.NodeID], _ uint32, bytes []byte) error {
	if f.SentAppRequest == nil {
		return nil
	}
	f.SentAppRequest <- bytes
	return nil
}

func (f *FakeSender) SendAppResponse(_ context.Context, _ ids.NodeID, _ uint32, bytes []byte) error {
	if f.SentAppResponse == nil {
		return nil
	}
	f.SentAppResponse <- bytes
	return nil
}

func (f *FakeSender) SendAppError(_ context.Context, _ ids.NodeID, _ uint32, errorCode int32, errorMessage string) error {
	if f.SentAppError == nil {
		return nil
	}
	f.SentAppError <- &AppError{Code: errorCode, Message: errorMessage}
	return nil
}

func (f *FakeSender) SendAppGossip(_ context.Context, _ SendConfig, bytes []byte) error {
	if f.SentAppGossip == nil {
		return nil
	}
	f.SentAppGossip <- bytes
	return nil
}

func (f *FakeSender) SendCrossChainAppResponse(_ context.Context, _ ids.ID, _ uint32, bytes []byte) error {
	if f.SentCrossChainAppResponse == nil {
		return nil
	}
	f.SentCrossChainAppResponse <- bytes
	return nil
}
