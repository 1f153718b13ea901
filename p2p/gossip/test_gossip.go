// Copyright (C) 2024-2026, Driftmesh, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package gossip

import (
	"context"
	"fmt"

	"github.com/driftmesh/peersync/ids"
)

var (
	_ Gossipable          = (*testTx)(nil)
	_ Marshaller[*testTx] = (*testMarshaller)(nil)
	_ Set[*testTx]        = (*testSet)(nil)
)

type testTx struct {
	id ids.ID
}

func (t *testTx) GossipID() ids.ID {
	return t.id
}

type testMarshaller struct{}

func (testMarshaller) MarshalGossip(tx *testTx) ([]byte, error) {
	return tx.id[:], nil
}

func (testMarshaller) UnmarshalGossip(bytes []byte) (*testTx, error) {
	id, err := ids.ToID(bytes)
	if err != nil {
		return nil, err
	}

	return &testTx{id: id}, nil
}

type testSet struct {
	txs   map[ids.ID]*testTx
	bloom *BloomFilter
	onAdd func(tx *testTx)
}

func (t *testSet) Add(gossipable *testTx) error {
	if _, ok := t.txs[gossipable.id]; ok {
		return fmt.Errorf("%s already present", gossipable.id)
	}

	t.txs[gossipable.id] = gossipable
	t.bloom.Add(gossipable)
	if t.onAdd != nil {
		t.onAdd(gossipable)
	}

	return nil
}

func (t *testSet) Has(gossipID ids.ID) bool {
	_, ok := t.txs[gossipID]
	return ok
}

func (t *testSet) Iterate(f func(gossipable *testTx) bool) {
	for _, tx := range t.txs {
		if !f(tx) {
			return
		}
	}
}

func (t *testSet) GetFilter() ([]byte, []byte) {
	return t.bloom.Marshal()
}

type TestGossiper struct {
	GossipF func(ctx context.Context) error
}

func (t *TestGossiper) Gossip(ctx context.Context) error {
	return t.GossipF(ctx)
}
