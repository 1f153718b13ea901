// Copyright (C) 2024-2026, Driftmesh, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gossip

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/driftmesh/peersync/ids"
	"github.com/driftmesh/peersync/p2p"
	"github.com/driftmesh/peersync/utils/bloom"
	"github.com/driftmesh/peersync/utils/logging"
)

var _ p2p.Handler = (*Handler[*testTx])(nil)

func NewHandler[T Gossipable](
	log logging.Logger,
	marshaller Marshaller[T],
	accumulator Accumulator[T],
	set Set[T],
	metrics Metrics,
	targetResponseSize int,
) *Handler[T] {
	return &Handler[T]{
		Handler:            p2p.NoOpHandler{},
		log:                log,
		marshaller:         marshaller,
		accumulator:        accumulator,
		set:                set,
		metrics:            metrics,
		targetResponseSize: targetResponseSize,
	}
}

// Handler answers pull gossip requests with everything in its set that the
// requesting peer does not already know about.
type Handler[T Gossipable] struct {
	p2p.Handler
	marshaller Marshaller[T]
	// accumulator queues gossip to be forwarded to other peers. It is unused
	// while push gossip is disabled.
	accumulator        Accumulator[T]
	log                logging.Logger
	set                Set[T]
	metrics            Metrics
	targetResponseSize int
}

func (h Handler[T]) AppRequest(_ context.Context, _ ids.NodeID, deadline time.Time, requestBytes []byte) ([]byte, *p2p.AppError) {
	filter, salt, err := ParseAppRequest(requestBytes)
	if err != nil {
		return nil, p2p.ErrUnexpected
	}

	responseSize := 0
	gossipBytes := make([][]byte, 0)
	h.set.Iterate(func(gossipable T) bool {
		// stop early if the requester is no longer waiting for us
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			return false
		}

		gossipID := gossipable.GossipID()

		// filter out what the requesting peer already knows about
		if bloom.Contains(filter, gossipID[:], salt[:]) {
			return true
		}

		bytes, err := h.marshaller.MarshalGossip(gossipable)
		if err != nil {
			h.log.Debug(
				"failed to marshal gossip",
				zap.Stringer("id", gossipID),
				zap.Error(err),
			)
			return true
		}

		// stop before an item would push the response past its target size
		if responseSize+len(bytes) > h.targetResponseSize {
			return false
		}

		gossipBytes = append(gossipBytes, bytes)
		responseSize += len(bytes)

		return true
	})

	if err := h.metrics.observeMessage(sentPullLabels, len(gossipBytes), responseSize); err != nil {
		h.log.Error("failed to update metrics", zap.Error(err))
	}

	responseBytes, err := MarshalAppResponse(gossipBytes)
	if err != nil {
		h.log.Error("failed to marshal gossip response", zap.Error(err))
		return nil, p2p.ErrUnexpected
	}

	return responseBytes, nil
}

// AppGossip drops pushed gossip. Unrequested messages are only counted so
// that their volume remains visible.
func (h Handler[T]) AppGossip(_ context.Context, nodeID ids.NodeID, gossipBytes []byte) {
	h.log.Debug(
		"dropping unrequested gossip",
		zap.Stringer("nodeID", nodeID),
	)

	if err := h.metrics.observeMessage(receivedPushLabels, 1, len(gossipBytes)); err != nil {
		h.log.Error("failed to update metrics", zap.Error(err))
	}
}
