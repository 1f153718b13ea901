// Copyright (C) 2024-2026, Driftmesh, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bloom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptimalHashesBounds(t *testing.T) {
	tests := []struct {
		name       string
		numEntries int
		count      int
		expected   int
	}{
		{
			name:       "invalid entries",
			numEntries: 0,
			count:      1024,
			expected:   minHashes,
		},
		{
			name:       "invalid count",
			numEntries: 1024,
			count:      0,
			expected:   maxHashes,
		},
		{
			name:       "overflow clamped",
			numEntries: math.MaxInt,
			count:      1,
			expected:   maxHashes,
		},
		{
			name:       "tiny filter",
			numEntries: 1,
			count:      1024,
			expected:   minHashes,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, OptimalHashes(tt.numEntries, tt.count))
		})
	}
}

func TestOptimalEntriesBounds(t *testing.T) {
	require := require.New(t)

	require.Equal(minEntries, OptimalEntries(0, .5))
	require.Equal(minEntries, OptimalEntries(1, 1))
	require.Equal(math.MaxInt, OptimalEntries(1, 0))
}

func TestEstimateCountRoundTrip(t *testing.T) {
	require := require.New(t)

	const (
		count  = 10_000
		target = 0.01
	)

	numHashes, numEntries := OptimalParameters(count, target)

	// A filter sized for [count] elements at [target] should hit the false
	// positive target at roughly [count] additions.
	estimated := EstimateCount(numHashes, numEntries, target)
	require.InEpsilon(count, estimated, 0.05)

	// The threshold must correspond to a false positive probability that
	// meets the target.
	fppAtThreshold := EstimatedFalsePositiveProbability(numHashes, numEntries, estimated)
	require.InEpsilon(target, fppAtThreshold, 0.05)
}

func TestEstimatedFalsePositiveProbabilityMonotonic(t *testing.T) {
	require := require.New(t)

	numHashes, numEntries := OptimalParameters(1_000, 0.01)

	require.Zero(EstimatedFalsePositiveProbability(numHashes, numEntries, 0))

	previous := 0.0
	for count := 1; count <= 10_000; count *= 10 {
		fpp := EstimatedFalsePositiveProbability(numHashes, numEntries, count)
		require.GreaterOrEqual(fpp, previous)
		require.LessOrEqual(fpp, 1.0)
		previous = fpp
	}
}
