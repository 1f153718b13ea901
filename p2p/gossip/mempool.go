// Copyright (C) 2024-2026, Driftmesh, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gossip

import (
	"errors"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"go.uber.org/zap"

	"github.com/driftmesh/peersync/ids"
	"github.com/driftmesh/peersync/utils/logging"
)

var (
	ErrDuplicateID = errors.New("duplicate gossip id")

	_ Set[*testTx] = (*Mempool[*testTx])(nil)
)

// NewMempool returns a thread-safe in-memory Set backed by a bloom filter
// that tracks everything currently held.
func NewMempool[T Gossipable](
	log logging.Logger,
	registerer prometheus.Registerer,
	namespace string,
	minTargetElements int,
	targetFalsePositiveProbability float64,
) (*Mempool[T], error) {
	bloom, err := NewBloomFilter(
		registerer,
		namespace,
		minTargetElements,
		targetFalsePositiveProbability,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize bloom filter: %w", err)
	}

	return &Mempool[T]{
		log:   log,
		items: make(map[ids.ID]T),
		bloom: bloom,
	}, nil
}

type Mempool[T Gossipable] struct {
	log logging.Logger

	lock  sync.RWMutex
	items map[ids.ID]T
	bloom *BloomFilter
}

// Add inserts a gossipable, tracking it in the bloom filter. The bloom
// filter is regenerated with a fresh salt whenever it becomes too saturated
// to answer queries accurately.
func (m *Mempool[T]) Add(gossipable T) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	gossipID := gossipable.GossipID()
	if _, ok := m.items[gossipID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateID, gossipID)
	}

	m.items[gossipID] = gossipable
	m.bloom.Add(gossipable)

	reset, err := m.bloom.ResetIfNeeded(len(m.items), func() error {
		// Everything still held must remain visible to filter queries, so
		// refill the fresh filter. The reset lock is held here, so the
		// unlocked variant must be used.
		for _, item := range m.items {
			m.bloom.addLocked(item)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to reset bloom filter: %w", err)
	}
	if reset {
		m.log.Debug("bloom filter was reset", zap.Int("elements", len(m.items)))
	}

	return nil
}

func (m *Mempool[T]) Has(gossipID ids.ID) bool {
	m.lock.RLock()
	defer m.lock.RUnlock()

	_, ok := m.items[gossipID]
	return ok
}

// Remove drops a gossipable from the set. The bloom filter may keep
// reporting the dropped id until its next reset.
func (m *Mempool[T]) Remove(gossipID ids.ID) {
	m.lock.Lock()
	defer m.lock.Unlock()

	delete(m.items, gossipID)
}

func (m *Mempool[T]) Len() int {
	m.lock.RLock()
	defer m.lock.RUnlock()

	return len(m.items)
}

func (m *Mempool[T]) Iterate(f func(gossipable T) bool) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	for _, item := range m.items {
		if !f(item) {
			return
		}
	}
}

func (m *Mempool[T]) GetFilter() ([]byte, []byte) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	return m.bloom.Marshal()
}
