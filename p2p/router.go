// Copyright (C) 2024-2026, Driftmesh, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package p2p

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"go.uber.org/zap"

	"github.com/driftmesh/peersync/ids"
	"github.com/driftmesh/peersync/utils/logging"
)

var (
	ErrExistingAppProtocol = errors.New("existing app protocol")
	ErrUnrequestedResponse = errors.New("unrequested response")
)

type pendingAppRequest struct {
	handlerID string
	callback  AppResponseCallback
	// expiry fires the callback with ErrTimeout if the peer stays silent
	// past the request deadline. Nil if the request carried no deadline.
	expiry *time.Timer
}

// meteredHandler emits metrics for a Handler
type meteredHandler struct {
	*responder
	metrics
}

type metrics struct {
	appRequestTime              *prometheus.CounterVec
	appRequestCount             *prometheus.CounterVec
	appResponseTime             *prometheus.CounterVec
	appResponseCount            *prometheus.CounterVec
	appRequestFailedTime        *prometheus.CounterVec
	appRequestFailedCount       *prometheus.CounterVec
	appGossipTime               *prometheus.CounterVec
	appGossipCount              *prometheus.CounterVec
	crossChainAppRequestTime    *prometheus.CounterVec
	crossChainAppRequestCount   *prometheus.CounterVec
}

func (m *metrics) observe(labels prometheus.Labels, metricTime *prometheus.CounterVec, metricCount *prometheus.CounterVec, start time.Time) error {
	countMetric, err := metricCount.GetMetricWith(labels)
	if err != nil {
		return err
	}

	timeMetric, err := metricTime.GetMetricWith(labels)
	if err != nil {
		return err
	}

	countMetric.Inc()
	timeMetric.Add(float64(time.Since(start)))
	return nil
}

// router routes incoming application messages to the corresponding registered
// app handler. App messages must be made using the registered handler's
// corresponding Client.
type router struct {
	log     logging.Logger
	sender  Sender
	metrics metrics

	lock               sync.RWMutex
	handlers           map[uint64]*meteredHandler
	pendingAppRequests map[uint32]pendingAppRequest
	requestID          uint32
}

// newRouter returns a new instance of Router
func newRouter(
	log logging.Logger,
	sender Sender,
	metrics metrics,
) *router {
	return &router{
		log:                log,
		sender:             sender,
		metrics:            metrics,
		handlers:           make(map[uint64]*meteredHandler),
		pendingAppRequests: make(map[uint32]pendingAppRequest),
		// invariant: this module uses odd-numbered requestIDs, so that an
		// enclosing application can issue its own requests on even ids
		// without collisions.
		requestID: 1,
	}
}

func (r *router) addHandler(handlerID uint64, handler Handler) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.handlers[handlerID]; ok {
		return fmt.Errorf("failed to register handler id %d: %w", handlerID, ErrExistingAppProtocol)
	}

	r.handlers[handlerID] = &meteredHandler{
		responder: &responder{
			Handler:   handler,
			handlerID: handlerID,
			log:       r.log,
			sender:    r.sender,
		},
		metrics: r.metrics,
	}

	return nil
}

// AppRequest routes an AppRequest to a Handler based on the handler prefix.
// The message is dropped if no matching handler can be found.
//
// Any error condition propagated outside Handler application logic is
// considered fatal
func (r *router) AppRequest(ctx context.Context, nodeID ids.NodeID, requestID uint32, deadline time.Time, request []byte) error {
	start := time.Now()
	parsedMsg, handler, handlerID, ok := r.parse(request)
	if !ok {
		r.log.Debug("failed to process message",
			zap.Stringer("messageOp", AppRequestOp),
			zap.Stringer("nodeID", nodeID),
			zap.Uint32("requestID", requestID),
			zap.Time("deadline", deadline),
			zap.Binary("message", request),
		)
		return r.sender.SendAppError(ctx, nodeID, requestID, ErrUnregisteredHandler.Code, ErrUnregisteredHandler.Message)
	}

	// call the corresponding handler and send back a response to nodeID
	if err := handler.AppRequest(ctx, nodeID, requestID, deadline, parsedMsg); err != nil {
		return err
	}

	return r.metrics.observe(
		prometheus.Labels{handlerLabel: handlerID},
		r.metrics.appRequestTime,
		r.metrics.appRequestCount,
		start,
	)
}

// AppRequestFailed routes an AppRequestFailed message to the callback
// corresponding to requestID.
//
// Any error condition propagated outside Handler application logic is
// considered fatal
func (r *router) AppRequestFailed(ctx context.Context, nodeID ids.NodeID, requestID uint32, appErr *AppError) error {
	start := time.Now()
	pending, ok := r.clearAppRequest(requestID)
	if !ok {
		// we should never receive a timeout without a corresponding requestID
		return ErrUnrequestedResponse
	}

	pending.callback(ctx, nodeID, nil, appErr)

	return r.metrics.observe(
		prometheus.Labels{handlerLabel: pending.handlerID},
		r.metrics.appRequestFailedTime,
		r.metrics.appRequestFailedCount,
		start,
	)
}

// AppResponse routes an AppResponse message to the callback corresponding to
// requestID.
//
// Any error condition propagated outside Handler application logic is
// considered fatal
func (r *router) AppResponse(ctx context.Context, nodeID ids.NodeID, requestID uint32, response []byte) error {
	start := time.Now()
	pending, ok := r.clearAppRequest(requestID)
	if !ok {
		// we should never receive a timeout without a corresponding requestID
		return ErrUnrequestedResponse
	}

	pending.callback(ctx, nodeID, response, nil)

	return r.metrics.observe(
		prometheus.Labels{handlerLabel: pending.handlerID},
		r.metrics.appResponseTime,
		r.metrics.appResponseCount,
		start,
	)
}

// AppGossip routes an AppGossip message to a Handler based on the handler
// prefix. The message is dropped if no matching handler can be found.
//
// Any error condition propagated outside Handler application logic is
// considered fatal
func (r *router) AppGossip(ctx context.Context, nodeID ids.NodeID, gossip []byte) error {
	start := time.Now()
	parsedMsg, handler, handlerID, ok := r.parse(gossip)
	if !ok {
		r.log.Debug("failed to process message",
			zap.Stringer("messageOp", AppGossipOp),
			zap.Stringer("nodeID", nodeID),
			zap.Binary("message", gossip),
		)
		return nil
	}

	handler.AppGossip(ctx, nodeID, parsedMsg)

	return r.metrics.observe(
		prometheus.Labels{handlerLabel: handlerID},
		r.metrics.appGossipTime,
		r.metrics.appGossipCount,
		start,
	)
}

// CrossChainAppRequest routes a CrossChainAppRequest message to a Handler
// based on the handler prefix. The message is dropped if no matching handler
// can be found.
//
// Any error condition propagated outside Handler application logic is
// considered fatal
func (r *router) CrossChainAppRequest(ctx context.Context, chainID ids.ID, requestID uint32, deadline time.Time, msg []byte) error {
	start := time.Now()
	parsedMsg, handler, handlerID, ok := r.parse(msg)
	if !ok {
		r.log.Debug("failed to process message",
			zap.Stringer("messageOp", CrossChainAppRequestOp),
			zap.Stringer("chainID", chainID),
			zap.Uint32("requestID", requestID),
			zap.Time("deadline", deadline),
			zap.Binary("message", msg),
		)
		return nil
	}

	if err := handler.CrossChainAppRequest(ctx, chainID, requestID, deadline, parsedMsg); err != nil {
		return err
	}

	return r.metrics.observe(
		prometheus.Labels{handlerLabel: handlerID},
		r.metrics.crossChainAppRequestTime,
		r.metrics.crossChainAppRequestCount,
		start,
	)
}

// Parse parses a gossip or request message and maps it to a corresponding
// handler if present.
//
// Returns:
// - The unprefixed protocol message.
// - The protocol responder.
// - The protocol metric name.
// - A boolean indicating that parsing succeeded.
//
// Invariant: Assumes [r.lock] isn't held.
func (r *router) parse(msg []byte) ([]byte, *meteredHandler, string, bool) {
	handlerID, bytesRead := binary.Uvarint(msg)
	if bytesRead <= 0 {
		return nil, nil, "", false
	}

	r.lock.RLock()
	defer r.lock.RUnlock()

	handlerStr := strconv.FormatUint(handlerID, 10)
	handler, ok := r.handlers[handlerID]
	return msg[bytesRead:], handler, handlerStr, ok
}

// handleRequestTimeout fires when a peer has not answered an AppRequest
// before its deadline. The pending entry is cleared first, so a response
// arriving later is treated as unrequested.
func (r *router) handleRequestTimeout(ctx context.Context, nodeID ids.NodeID, requestID uint32) {
	start := time.Now()
	pending, ok := r.clearAppRequest(requestID)
	if !ok {
		// the response won the race against the timer
		return
	}

	pending.callback(ctx, nodeID, nil, ErrTimeout)

	if err := r.metrics.observe(
		prometheus.Labels{handlerLabel: pending.handlerID},
		r.metrics.appRequestFailedTime,
		r.metrics.appRequestFailedCount,
		start,
	); err != nil {
		r.log.Error("failed to update metrics",
			zap.Uint32("requestID", requestID),
			zap.Error(err),
		)
	}
}

// Invariant: Assumes [r.lock] isn't held.
func (r *router) clearAppRequest(requestID uint32) (pendingAppRequest, bool) {
	r.lock.Lock()
	defer r.lock.Unlock()

	pending, ok := r.pendingAppRequests[requestID]
	if ok && pending.expiry != nil {
		pending.expiry.Stop()
	}
	delete(r.pendingAppRequests, requestID)
	return pending, ok
}
