// Copyright (C) 2024-2026, Driftmesh, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package p2p

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/driftmesh/peersync/ids"
	"github.com/driftmesh/peersync/utils/logging"
)

func TestThrottlerHandlerAppRequest(t *testing.T) {
	tests := []struct {
		name      string
		throttler Throttler
		wantErr   bool
	}{
		{
			name:      "not throttled",
			throttler: NewSlidingWindowThrottler(time.Second, 1),
		},
		{
			name:      "throttled",
			throttler: NewSlidingWindowThrottler(time.Second, 0),
			wantErr:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			handler := NewThrottlerHandler(
				NoOpHandler{},
				tt.throttler,
				logging.NoLog{},
			)

			_, err := handler.AppRequest(context.Background(), ids.GenerateTestNodeID(), time.Time{}, []byte("foobar"))
			if tt.wantErr {
				require.ErrorIs(err, ErrThrottled)
			} else {
				require.Nil(err)
			}
		})
	}
}

func TestThrottlerHandlerAppGossip(t *testing.T) {
	tests := []struct {
		name      string
		throttler Throttler
		handled   bool
	}{
		{
			name:      "not throttled",
			throttler: NewSlidingWindowThrottler(time.Second, 1),
			handled:   true,
		},
		{
			name:      "throttled",
			throttler: NewSlidingWindowThrottler(time.Second, 0),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)

			handled := false
			handler := NewThrottlerHandler(
				TestHandler{
					AppGossipF: func(context.Context, ids.NodeID, []byte) {
						handled = true
					},
				},
				tt.throttler,
				logging.NoLog{},
			)

			handler.AppGossip(context.Background(), ids.GenerateTestNodeID(), []byte("foobar"))
			require.Equal(tt.handled, handled)
		})
	}
}
