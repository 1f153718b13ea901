// Copyright (C) 2024-2026, Driftmesh, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package p2p

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/driftmesh/peersync/ids"
	"github.com/driftmesh/peersync/utils/logging"
	"github.com/driftmesh/peersync/utils/set"
)

const handlerID = 123

func TestClientAppRequestResponse(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	sender := &FakeSender{
		SentAppRequest:  make(chan []byte, 1),
		SentAppResponse: make(chan []byte, 1),
	}
	network, err := NewNetwork(logging.NoLog{}, sender, prometheus.NewRegistry(), "")
	require.NoError(err)

	wantResponse := []byte("response")
	require.NoError(network.AddHandler(handlerID, TestHandler{
		AppRequestF: func(context.Context, ids.NodeID, time.Time, []byte) ([]byte, *AppError) {
			return wantResponse, nil
		},
	}))

	client := network.NewClient(handlerID)
	nodeID := ids.GenerateTestNodeID()

	done := make(chan struct{})
	onResponse := func(_ context.Context, gotNodeID ids.NodeID, response []byte, err error) {
		defer close(done)

		require.NoError(err)
		require.Equal(nodeID, gotNodeID)
		require.Equal(wantResponse, response)
	}
	require.NoError(client.AppRequest(ctx, set.Of(nodeID), []byte("request"), onResponse))

	// The peer handles the request and replies with a response.
	require.NoError(network.AppRequest(ctx, nodeID, 1, time.Time{}, <-sender.SentAppRequest))
	require.NoError(network.AppResponse(ctx, nodeID, 1, <-sender.SentAppResponse))
	<-done
}

func TestClientAppRequestFailed(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	sender := &FakeSender{
		SentAppRequest: make(chan []byte, 1),
	}
	network, err := NewNetwork(logging.NoLog{}, sender, prometheus.NewRegistry(), "")
	require.NoError(err)
	require.NoError(network.AddHandler(handlerID, NoOpHandler{}))

	client := network.NewClient(handlerID)
	nodeID := ids.GenerateTestNodeID()

	wantErr := &AppError{Code: 1, Message: "failed"}

	done := make(chan struct{})
	onResponse := func(_ context.Context, gotNodeID ids.NodeID, response []byte, err error) {
		defer close(done)

		require.Nil(response)
		require.Equal(nodeID, gotNodeID)
		require.ErrorIs(err, wantErr)
	}
	require.NoError(client.AppRequest(ctx, set.Of(nodeID), []byte("request"), onResponse))
	<-sender.SentAppRequest

	require.NoError(network.AppRequestFailed(ctx, nodeID, 1, wantErr))
	<-done
}

// Handlers that return an application error should have it wrapped and sent
// back to the requesting peer.
// A peer that never answers must fail the request with ErrTimeout once the
// context deadline passes, and a late response must then be unrequested.
func TestClientAppRequestTimeout(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	sender := &FakeSender{}
	network, err := NewNetwork(logging.NoLog{}, sender, prometheus.NewRegistry(), "")
	require.NoError(err)
	require.NoError(network.AddHandler(handlerID, NoOpHandler{}))

	client := network.NewClient(handlerID)
	nodeID := ids.GenerateTestNodeID()

	done := make(chan struct{})
	onResponse := func(_ context.Context, gotNodeID ids.NodeID, response []byte, err error) {
		defer close(done)

		require.Nil(response)
		require.Equal(nodeID, gotNodeID)
		require.ErrorIs(err, ErrTimeout)
	}

	requestCtx, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
	defer cancel()
	require.NoError(client.AppRequest(requestCtx, set.Of(nodeID), []byte("request"), onResponse))
	<-done

	err = network.AppResponse(ctx, nodeID, 1, []byte("response"))
	require.ErrorIs(err, ErrUnrequestedResponse)
}

// A response arriving before the deadline must stop the expiry timer so the
// callback only fires once.
func TestClientAppRequestResponseBeforeDeadline(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	sender := &FakeSender{
		SentAppRequest:  make(chan []byte, 1),
		SentAppResponse: make(chan []byte, 1),
	}
	network, err := NewNetwork(logging.NoLog{}, sender, prometheus.NewRegistry(), "")
	require.NoError(err)

	wantResponse := []byte("response")
	require.NoError(network.AddHandler(handlerID, TestHandler{
		AppRequestF: func(context.Context, ids.NodeID, time.Time, []byte) ([]byte, *AppError) {
			return wantResponse, nil
		},
	}))

	client := network.NewClient(handlerID)
	nodeID := ids.GenerateTestNodeID()

	calls := make(chan error, 2)
	onResponse := func(_ context.Context, _ ids.NodeID, _ []byte, err error) {
		calls <- err
	}

	requestCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	require.NoError(client.AppRequest(requestCtx, set.Of(nodeID), []byte("request"), onResponse))

	require.NoError(network.AppRequest(ctx, nodeID, 1, time.Time{}, <-sender.SentAppRequest))
	require.NoError(network.AppResponse(ctx, nodeID, 1, <-sender.SentAppResponse))
	require.NoError(<-calls)

	// give a leaked timer the chance to misfire
	time.Sleep(100 * time.Millisecond)
	select {
	case err := <-calls:
		require.FailNow("callback fired twice", err)
	default:
	}
}

func TestAppRequestHandlerError(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	sender := &FakeSender{
		SentAppError: make(chan *AppError, 1),
	}
	network, err := NewNetwork(logging.NoLog{}, sender, prometheus.NewRegistry(), "")
	require.NoError(err)

	wantErr := &AppError{Code: 7, Message: "rejected"}
	require.NoError(network.AddHandler(handlerID, TestHandler{
		AppRequestF: func(context.Context, ids.NodeID, time.Time, []byte) ([]byte, *AppError) {
			return nil, wantErr
		},
	}))

	request := PrefixMessage(ProtocolPrefix(handlerID), []byte("request"))
	require.NoError(network.AppRequest(ctx, ids.GenerateTestNodeID(), 1, time.Time{}, request))
	require.Equal(wantErr, <-sender.SentAppError)
}

// Requests with an unregistered handler prefix should fail over the wire
// instead of timing out.
func TestAppRequestUnregisteredHandler(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	sender := &FakeSender{
		SentAppError: make(chan *AppError, 1),
	}
	network, err := NewNetwork(logging.NoLog{}, sender, prometheus.NewRegistry(), "")
	require.NoError(err)

	request := PrefixMessage(ProtocolPrefix(handlerID), []byte("request"))
	require.NoError(network.AppRequest(ctx, ids.GenerateTestNodeID(), 1, time.Time{}, request))

	gotErr := <-sender.SentAppError
	require.ErrorIs(gotErr, ErrUnregisteredHandler)
}

func TestAppGossip(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	sender := &FakeSender{
		SentAppGossip: make(chan []byte, 1),
	}
	network, err := NewNetwork(logging.NoLog{}, sender, prometheus.NewRegistry(), "")
	require.NoError(err)

	received := make(chan []byte, 1)
	require.NoError(network.AddHandler(handlerID, TestHandler{
		AppGossipF: func(_ context.Context, _ ids.NodeID, gossipBytes []byte) {
			received <- gossipBytes
		},
	}))

	client := network.NewClient(handlerID)
	want := []byte("gossip")
	require.NoError(client.AppGossip(ctx, SendConfig{Peers: 1}, want))

	require.NoError(network.AppGossip(ctx, ids.GenerateTestNodeID(), <-sender.SentAppGossip))
	require.Equal(want, <-received)
}

func TestClientWithNodeSampler(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	sender := &FakeSender{
		SentAppRequest: make(chan []byte, 1),
	}
	network, err := NewNetwork(logging.NoLog{}, sender, prometheus.NewRegistry(), "")
	require.NoError(err)

	// the configured sampler takes precedence over the connected peer set
	nodeID := ids.GenerateTestNodeID()
	client := network.NewClient(handlerID, WithNodeSampler(testNodeSampler{
		nodeIDs: []ids.NodeID{nodeID},
	}))

	require.NoError(client.AppRequestAny(ctx, []byte("request"), nil))
	<-sender.SentAppRequest
}

type testNodeSampler struct {
	nodeIDs []ids.NodeID
}

func (t testNodeSampler) Sample(_ context.Context, limit int) []ids.NodeID {
	if len(t.nodeIDs) < limit {
		return t.nodeIDs
	}
	return t.nodeIDs[:limit]
}

func TestAppRequestAnyNoPeers(t *testing.T) {
	require := require.New(t)

	network, err := NewNetwork(logging.NoLog{}, &FakeSender{}, prometheus.NewRegistry(), "")
	require.NoError(err)

	client := network.NewClient(handlerID)
	err = client.AppRequestAny(context.Background(), []byte("request"), nil)
	require.ErrorIs(err, ErrNoPeers)
}

func TestNetworkTracksConnectedPeers(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	network, err := NewNetwork(logging.NoLog{}, &FakeSender{}, prometheus.NewRegistry(), "")
	require.NoError(err)

	nodeIDs := []ids.NodeID{
		ids.GenerateTestNodeID(),
		ids.GenerateTestNodeID(),
		ids.GenerateTestNodeID(),
	}
	for _, nodeID := range nodeIDs {
		require.NoError(network.Connected(ctx, nodeID))
	}

	sampled := network.Peers.Sample(len(nodeIDs))
	require.ElementsMatch(nodeIDs, sampled)

	require.NoError(network.Disconnected(ctx, nodeIDs[0]))
	require.False(network.Peers.has(nodeIDs[0]))
	require.Len(network.Peers.Sample(len(nodeIDs)), len(nodeIDs)-1)
}

func TestResponseForUnrequestedRequest(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	network, err := NewNetwork(logging.NoLog{}, &FakeSender{}, prometheus.NewRegistry(), "")
	require.NoError(err)
	require.NoError(network.AddHandler(handlerID, NoOpHandler{}))

	err = network.AppResponse(ctx, ids.GenerateTestNodeID(), 1, []byte("response"))
	require.ErrorIs(err, ErrUnrequestedResponse)
}

func TestAddHandlerDuplicateID(t *testing.T) {
	require := require.New(t)

	network, err := NewNetwork(logging.NoLog{}, &FakeSender{}, prometheus.NewRegistry(), "")
	require.NoError(err)

	require.NoError(network.AddHandler(handlerID, NoOpHandler{}))
	err = network.AddHandler(handlerID, NoOpHandler{})
	require.ErrorIs(err, ErrExistingAppProtocol)
}
