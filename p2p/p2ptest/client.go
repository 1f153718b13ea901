// Copyright (C) 2024-2026, Driftmesh, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package p2ptest

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/driftmesh/peersync/ids"
	"github.com/driftmesh/peersync/p2p"
	"github.com/driftmesh/peersync/utils/logging"
	"github.com/driftmesh/peersync/utils/set"
)

var _ p2p.Sender = (*sender)(nil)

// sender routes each message through a caller-provided function.
type sender struct {
	sendAppRequestF  func(ctx context.Context, nodeIDs set.Set[ids.NodeID], requestID uint32, requestBytes []byte) error
	sendAppResponseF func(ctx context.Context, nodeID ids.NodeID, requestID uint32, responseBytes []byte) error
	sendAppErrorF    func(ctx context.Context, nodeID ids.NodeID, requestID uint32, errorCode int32, errorMessage string) error
	sendAppGossipF   func(ctx context.Context, config p2p.SendConfig, gossipBytes []byte) error
}

func (s *sender) SendAppRequest(ctx context.Context, nodeIDs set.Set[ids.NodeID], requestID uint32, requestBytes []byte) error {
	if s.sendAppRequestF == nil {
		return nil
	}
	return s.sendAppRequestF(ctx, nodeIDs, requestID, requestBytes)
}

func (s *sender) SendAppResponse(ctx context.Context, nodeID ids.NodeID, requestID uint32, responseBytes []byte) error {
	if s.sendAppResponseF == nil {
		return nil
	}
	return s.sendAppResponseF(ctx, nodeID, requestID, responseBytes)
}

func (s *sender) SendAppError(ctx context.Context, nodeID ids.NodeID, requestID uint32, errorCode int32, errorMessage string) error {
	if s.sendAppErrorF == nil {
		return nil
	}
	return s.sendAppErrorF(ctx, nodeID, requestID, errorCode, errorMessage)
}

func (s *sender) SendAppGossip(ctx context.Context, config p2p.SendConfig, gossipBytes []byte) error {
	if s.sendAppGossipF == nil {
		return nil
	}
	return s.sendAppGossipF(ctx, config, gossipBytes)
}

func (*sender) SendCrossChainAppResponse(context.Context, ids.ID, uint32, []byte) error {
	return nil
}

// NewClient generates a client-server pair and returns the client used to
// communicate with a server with the specified handler
func NewClient(
	t *testing.T,
	ctx context.Context,
	handler p2p.Handler,
	clientNodeID ids.NodeID,
	serverNodeID ids.NodeID,
) *p2p.Client {
	clientSender := &sender{}
	serverSender := &sender{}

	clientNetwork, err := p2p.NewNetwork(logging.NoLog{}, clientSender, prometheus.NewRegistry(), "")
	require.NoError(t, err)

	serverNetwork, err := p2p.NewNetwork(logging.NoLog{}, serverSender, prometheus.NewRegistry(), "")
	require.NoError(t, err)

	clientSender.sendAppGossipF = func(ctx context.Context, _ p2p.SendConfig, gossipBytes []byte) error {
		// Send the request asynchronously to avoid deadlock when the server
		// sends the response back to the client
		go func() {
			require.NoError(t, serverNetwork.AppGossip(ctx, clientNodeID, gossipBytes))
		}()

		return nil
	}

	clientSender.sendAppRequestF = func(ctx context.Context, _ set.Set[ids.NodeID], requestID uint32, requestBytes []byte) error {
		// Send the request asynchronously to avoid deadlock when the server
		// sends the response back to the client
		go func() {
			require.NoError(t, serverNetwork.AppRequest(ctx, clientNodeID, requestID, time.Time{}, requestBytes))
		}()

		return nil
	}

	serverSender.sendAppResponseF = func(ctx context.Context, _ ids.NodeID, requestID uint32, responseBytes []byte) error {
		// Send the response asynchronously to avoid deadlock when the client
		// issues another request from inside the callback
		go func() {
			require.NoError(t, clientNetwork.AppResponse(ctx, serverNodeID, requestID, responseBytes))
		}()

		return nil
	}

	serverSender.sendAppErrorF = func(ctx context.Context, _ ids.NodeID, requestID uint32, errorCode int32, errorMessage string) error {
		// Send the error asynchronously to avoid deadlock when the client
		// issues another request from inside the callback
		go func() {
			require.NoError(t, clientNetwork.AppRequestFailed(ctx, serverNodeID, requestID, &p2p.AppError{
				Code:    errorCode,
				Message: errorMessage,
			}))
		}()

		return nil
	}

	require.NoError(t, clientNetwork.Connected(ctx, clientNodeID))
	require.NoError(t, clientNetwork.Connected(ctx, serverNodeID))
	require.NoError(t, serverNetwork.Connected(ctx, clientNodeID))
	require.NoError(t, serverNetwork.Connected(ctx, serverNodeID))

	require.NoError(t, serverNetwork.AddHandler(0, handler))
	return clientNetwork.NewClient(0)
}
