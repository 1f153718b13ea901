// Copyright (C) 2024-2026, Driftmesh, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bloom

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/driftmesh/peersync/utils/units"
)

func TestNewErrors(t *testing.T) {
	tests := []struct {
		numHashes  int
		numEntries int
		err        error
	}{
		{
			numHashes:  0,
			numEntries: 1,
			err:        errTooFewHashes,
		},
		{
			numHashes:  17,
			numEntries: 1,
			err:        errTooManyHashes,
		},
		{
			numHashes:  8,
			numEntries: 0,
			err:        errTooFewEntries,
		},
	}
	for _, test := range tests {
		t.Run(test.err.Error(), func(t *testing.T) {
			_, err := New(test.numHashes, test.numEntries)
			require.ErrorIs(t, err, test.err)
		})
	}
}

func TestNormalUsage(t *testing.T) {
	require := require.New(t)

	toAdd := make([]uint64, 1024)
	for i := range toAdd {
		toAdd[i] = rand.Uint64() //#nosec G404
	}

	initialNumHashes, initialNumBytes := OptimalParameters(1024, 0.01)
	filter, err := New(initialNumHashes, initialNumBytes)
	require.NoError(err)

	for i, elem := range toAdd {
		filter.Add(elem)
		for _, elem := range toAdd[:i] {
			require.True(filter.Contains(elem))
		}
	}

	require.Equal(len(toAdd), filter.Count())

	filterBytes := filter.Marshal()
	parsedFilter, err := Parse(filterBytes)
	require.NoError(err)

	for _, elem := range toAdd {
		require.True(parsedFilter.Contains(elem))
	}

	parsedFilterBytes := parsedFilter.Marshal()
	require.Equal(filterBytes, parsedFilterBytes)
}

// The measured false positive rate after filling a filter to its target
// count should not appreciably exceed the target probability.
func TestFalsePositiveProbabilityBound(t *testing.T) {
	require := require.New(t)

	const (
		count        = 10_000
		target       = 0.01
		queries      = 100_000
		allowedSlack = 1.25
	)

	numHashes, numEntries := OptimalParameters(count, target)
	filter, err := New(numHashes, numEntries)
	require.NoError(err)

	for i := 0; i < count; i++ {
		filter.Add(rand.Uint64()) //#nosec G404
	}

	falsePositives := 0
	for i := 0; i < queries; i++ {
		if filter.Contains(rand.Uint64()) { //#nosec G404
			falsePositives++
		}
	}

	measured := float64(falsePositives) / queries
	require.LessOrEqual(measured, target*allowedSlack)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		bytes []byte
		err   error
	}{
		{
			name: "empty",
			err:  errInvalidNumHashes,
		},
		{
			name:  "zero hashes",
			bytes: []byte{0},
			err:   errTooFewHashes,
		},
		{
			name:  "too many hashes",
			bytes: []byte{17},
			err:   errTooManyHashes,
		},
		{
			name:  "no entries",
			bytes: []byte{1, 0, 0, 0, 0, 0, 0, 0, 0},
			err:   errTooFewEntries,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.bytes)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func BenchmarkAdd(b *testing.B) {
	f, err := New(8, 16*units.KiB)
	require.NoError(b, err)

	for i := 0; i < b.N; i++ {
		f.Add(1)
	}
}

func BenchmarkMarshal(b *testing.B) {
	f, err := New(OptimalParameters(10_000, .01))
	require.NoError(b, err)

	for i := 0; i < b.N; i++ {
		f.Marshal()
	}
}
