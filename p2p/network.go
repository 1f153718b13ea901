// Copyright (C) 2024-2026, Driftmesh, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package p2p

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/driftmesh/peersync/ids"
	"github.com/driftmesh/peersync/utils"
	"github.com/driftmesh/peersync/utils/logging"
	"github.com/driftmesh/peersync/utils/set"
)

var (
	_ NodeSampler = (*peerSampler)(nil)

	handlerLabel = "handlerID"
	labelNames   = []string{handlerLabel}
)

// NodeSampler samples peers to send requests to. Implementations must be
// non-blocking and free of side effects.
type NodeSampler interface {
	// Sample returns at most [limit] nodes. This may return fewer nodes if
	// fewer than [limit] are available.
	Sample(ctx context.Context, limit int) []ids.NodeID
}

// ClientOption configures Client
type ClientOption interface {
	apply(options *clientOptions)
}

type clientOptionFunc func(options *clientOptions)

func (o clientOptionFunc) apply(options *clientOptions) {
	o(options)
}

// WithNodeSampler configures Client.AppRequestAny to sample nodes from
// [nodeSampler] instead of the set of connected peers.
func WithNodeSampler(nodeSampler NodeSampler) ClientOption {
	return clientOptionFunc(func(options *clientOptions) {
		options.nodeSampler = nodeSampler
	})
}

// clientOptions holds client-configurable values
type clientOptions struct {
	// nodeSampler is used to select nodes to route Client.AppRequestAny to
	nodeSampler NodeSampler
}

// NewNetwork returns an instance of Network
func NewNetwork(
	log logging.Logger,
	sender Sender,
	registerer prometheus.Registerer,
	namespace string,
) (*Network, error) {
	metrics := metrics{
		appRequestTime: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "app_request_time",
			Help:      "app request time (ns)",
		}, labelNames),
		appRequestCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "app_request_count",
			Help:      "app request count (n)",
		}, labelNames),
		appResponseTime: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "app_response_time",
			Help:      "app response time (ns)",
		}, labelNames),
		appResponseCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "app_response_count",
			Help:      "app response count (n)",
		}, labelNames),
		appRequestFailedTime: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "app_request_failed_time",
			Help:      "app request failed time (ns)",
		}, labelNames),
		appRequestFailedCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "app_request_failed_count",
			Help:      "app request failed count (n)",
		}, labelNames),
		appGossipTime: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "app_gossip_time",
			Help:      "app gossip time (ns)",
		}, labelNames),
		appGossipCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "app_gossip_count",
			Help:      "app gossip count (n)",
		}, labelNames),
		crossChainAppRequestTime: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cross_chain_app_request_time",
			Help:      "cross chain app request time (ns)",
		}, labelNames),
		crossChainAppRequestCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cross_chain_app_request_count",
			Help:      "cross chain app request count (n)",
		}, labelNames),
	}

	err := utils.Err(
		registerer.Register(metrics.appRequestTime),
		registerer.Register(metrics.appRequestCount),
		registerer.Register(metrics.appResponseTime),
		registerer.Register(metrics.appResponseCount),
		registerer.Register(metrics.appRequestFailedTime),
		registerer.Register(metrics.appRequestFailedCount),
		registerer.Register(metrics.appGossipTime),
		registerer.Register(metrics.appGossipCount),
		registerer.Register(metrics.crossChainAppRequestTime),
		registerer.Register(metrics.crossChainAppRequestCount),
	)
	if err != nil {
		return nil, err
	}

	return &Network{
		Peers:  &Peers{},
		log:    log,
		sender: sender,
		router: newRouter(log, sender, metrics),
	}, nil
}

// Network exposes networking state and supports building p2p application
// protocols
type Network struct {
	Peers *Peers

	log    logging.Logger
	sender Sender

	router *router
}

// AppRequest delivers an inbound request from the transport layer.
func (n *Network) AppRequest(ctx context.Context, nodeID ids.NodeID, requestID uint32, deadline time.Time, request []byte) error {
	return n.router.AppRequest(ctx, nodeID, requestID, deadline, request)
}

// AppResponse delivers an inbound response from the transport layer.
func (n *Network) AppResponse(ctx context.Context, nodeID ids.NodeID, requestID uint32, response []byte) error {
	return n.router.AppResponse(ctx, nodeID, requestID, response)
}

// AppRequestFailed delivers an inbound request failure from the transport
// layer.
func (n *Network) AppRequestFailed(ctx context.Context, nodeID ids.NodeID, requestID uint32, appErr *AppError) error {
	return n.router.AppRequestFailed(ctx, nodeID, requestID, appErr)
}

// AppGossip delivers an inbound gossip message from the transport layer.
func (n *Network) AppGossip(ctx context.Context, nodeID ids.NodeID, msg []byte) error {
	return n.router.AppGossip(ctx, nodeID, msg)
}

// CrossChainAppRequest delivers an inbound cross-chain request from the
// transport layer.
func (n *Network) CrossChainAppRequest(ctx context.Context, chainID ids.ID, requestID uint32, deadline time.Time, request []byte) error {
	return n.router.CrossChainAppRequest(ctx, chainID, requestID, deadline, request)
}

// Connected is called by the transport layer when a connection to [nodeID]
// is established.
func (n *Network) Connected(_ context.Context, nodeID ids.NodeID) error {
	n.Peers.add(nodeID)
	return nil
}

// Disconnected is called by the transport layer when the connection to
// [nodeID] is lost.
func (n *Network) Disconnected(_ context.Context, nodeID ids.NodeID) error {
	n.Peers.remove(nodeID)
	return nil
}

// NewClient returns a Client that can be used to send messages for the
// corresponding protocol.
func (n *Network) NewClient(handlerID uint64, options ...ClientOption) *Client {
	client := &Client{
		handlerID:     handlerID,
		handlerIDStr:  strconv.FormatUint(handlerID, 10),
		handlerPrefix: ProtocolPrefix(handlerID),
		sender:        n.sender,
		router:        n.router,
		options: &clientOptions{
			nodeSampler: &peerSampler{
				peers: n.Peers,
			},
		},
	}

	for _, option := range options {
		option.apply(client.options)
	}

	return client
}

// AddHandler reserves an identifier for an application protocol
func (n *Network) AddHandler(handlerID uint64, handler Handler) error {
	return n.router.addHandler(handlerID, handler)
}

// Peers contains metadata about the current set of connected peers
type Peers struct {
	lock sync.RWMutex
	set  set.SampleableSet[ids.NodeID]
}

func (p *Peers) add(nodeID ids.NodeID) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.set.Add(nodeID)
}

func (p *Peers) remove(nodeID ids.NodeID) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.set.Remove(nodeID)
}

func (p *Peers) has(nodeID ids.NodeID) bool {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return p.set.Contains(nodeID)
}

// Sample returns a pseudo-random sample of up to limit Peers
func (p *Peers) Sample(limit int) []ids.NodeID {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return p.set.Sample(limit)
}

type peerSampler struct {
	peers *Peers
}

func (p peerSampler) Sample(_ context.Context, limit int) []ids.NodeID {
	return p.peers.Sample(limit)
}
