// Copyright (C) 2024-2026, Driftmesh, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gossip

import (
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/driftmesh/peersync/ids"
	"github.com/driftmesh/peersync/utils/bloom"
	"github.com/driftmesh/peersync/utils/logging"
)

func newTestMempool(t *testing.T, minTargetElements int) *Mempool[*testTx] {
	t.Helper()

	mempool, err := NewMempool[*testTx](
		logging.NoLog{},
		prometheus.NewRegistry(),
		"",
		minTargetElements,
		0.01,
	)
	require.NoError(t, err)
	return mempool
}

func TestNewMempoolInvalidParameters(t *testing.T) {
	require := require.New(t)

	_, err := NewMempool[*testTx](
		logging.NoLog{},
		prometheus.NewRegistry(),
		"",
		0,
		0.01,
	)
	require.ErrorIs(err, errInvalidTargetElements)
}

func TestMempoolAddDuplicate(t *testing.T) {
	require := require.New(t)

	mempool := newTestMempool(t, 1000)
	tx := &testTx{id: ids.GenerateTestID()}

	require.NoError(mempool.Add(tx))
	err := mempool.Add(tx)
	require.ErrorIs(err, ErrDuplicateID)
	require.Equal(1, mempool.Len())
}

func TestMempoolHasRemove(t *testing.T) {
	require := require.New(t)

	mempool := newTestMempool(t, 1000)
	tx := &testTx{id: ids.GenerateTestID()}

	require.False(mempool.Has(tx.id))
	require.NoError(mempool.Add(tx))
	require.True(mempool.Has(tx.id))

	mempool.Remove(tx.id)
	require.False(mempool.Has(tx.id))
	require.Zero(mempool.Len())
}

func TestMempoolIterate(t *testing.T) {
	require := require.New(t)

	mempool := newTestMempool(t, 1000)
	txs := []*testTx{
		{id: ids.GenerateTestID()},
		{id: ids.GenerateTestID()},
		{id: ids.GenerateTestID()},
	}
	for _, tx := range txs {
		require.NoError(mempool.Add(tx))
	}

	seen := make(map[ids.ID]struct{})
	mempool.Iterate(func(tx *testTx) bool {
		seen[tx.id] = struct{}{}
		return true
	})
	require.Len(seen, len(txs))

	// iteration must stop when the callback returns false
	iterations := 0
	mempool.Iterate(func(*testTx) bool {
		iterations++
		return false
	})
	require.Equal(1, iterations)
}

// Everything held must stay visible to filter queries across bloom filter
// resets.
func TestMempoolFilterRefilledAfterReset(t *testing.T) {
	require := require.New(t)

	// a tiny target element count forces frequent resets
	mempool := newTestMempool(t, 1)

	_, initialSalt := mempool.GetFilter()

	txs := make([]*testTx, 0, 100)
	for i := 0; i < 100; i++ {
		tx := &testTx{id: ids.GenerateTestID()}
		require.NoError(mempool.Add(tx))
		txs = append(txs, tx)
	}

	filterBytes, salt := mempool.GetFilter()
	require.NotEqual(initialSalt, salt)

	readFilter, err := bloom.Parse(filterBytes)
	require.NoError(err)
	for _, tx := range txs {
		require.True(bloom.Contains(readFilter, tx.id[:], salt))
	}
}

func TestMempoolConcurrentAdd(t *testing.T) {
	require := require.New(t)

	mempool := newTestMempool(t, 100)

	const total = 256
	var wg sync.WaitGroup
	errs := make([]error, total)
	for i := 0; i < total; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = mempool.Add(&testTx{id: ids.GenerateTestID()})
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(err)
	}
	require.Equal(total, mempool.Len())
}
