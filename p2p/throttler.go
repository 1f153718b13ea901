// Copyright (C) 2024-2026, Driftmesh, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package p2p

import (
	"sync"
	"time"

	"github.com/driftmesh/peersync/ids"
	"github.com/driftmesh/peersync/utils/timer/mockable"
)

var _ Throttler = (*SlidingWindowThrottler)(nil)

type Throttler interface {
	// Handle returns true if a message from [nodeID] should be handled.
	Handle(nodeID ids.NodeID) bool
}

// NewSlidingWindowThrottler returns a new instance of
// SlidingWindowThrottler. Nodes are throttled if they exceed [limit]
// messages during an interval of time over [period].
// [period] and [limit] should both be > 0.
func NewSlidingWindowThrottler(period time.Duration, limit int) *SlidingWindowThrottler {
	now := time.Now()
	return &SlidingWindowThrottler{
		period: period,
		limit:  float64(limit),
		windows: [2]window{
			{
				start: now,
				hits:  make(map[ids.NodeID]float64),
			},
			{
				start: now.Add(-period),
				hits:  make(map[ids.NodeID]float64),
			},
		},
	}
}

// SlidingWindowThrottler is an implementation of the sliding window
// throttling algorithm.
type SlidingWindowThrottler struct {
	period time.Duration
	limit  float64
	clock  mockable.Clock

	lock    sync.Mutex
	current int
	windows [2]window
}

// window is used to count the amount of hits during an evaluation period
type window struct {
	start time.Time
	hits  map[ids.NodeID]float64
}

// Handle returns true if the amount of calls received in the last [period]
// is less than [limit].
//
// This is calculated by adding the current window's hits to a weighted
// fraction of the previous window's hits.
func (s *SlidingWindowThrottler) Handle(nodeID ids.NodeID) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	now := s.clock.Time()
	sinceUpdate := now.Sub(s.windows[s.current].start)
	if sinceUpdate >= 2*s.period {
		// The current window is too stale to be a valid previous window, so
		// rotate twice to reset both windows.
		s.rotate(now.Add(-s.period))
	}
	if sinceUpdate >= s.period {
		s.rotate(s.windows[s.current].start.Add(s.period))
	}

	currentHits := s.windows[s.current].hits
	current := currentHits[nodeID]
	previousFraction := float64(s.period-now.Sub(s.windows[s.current].start)) / float64(s.period)
	previous := s.windows[1-s.current].hits[nodeID]
	estimatedHits := current + previousFraction*previous
	if estimatedHits >= s.limit {
		// The peer has sent too many requests, drop this request.
		return false
	}

	currentHits[nodeID]++
	return true
}

// rotate swaps the current and previous windows and resets the new current
// window to start at [start].
func (s *SlidingWindowThrottler) rotate(start time.Time) {
	s.current = 1 - s.current
	s.windows[s.current] = window{
		start: start,
		hits:  make(map[ids.NodeID]float64),
	}
}
