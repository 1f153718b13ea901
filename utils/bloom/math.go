// Copyright (C) 2024-2026, Driftmesh, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bloom

import "math"

const ln2Squared = math.Ln2 * math.Ln2

// OptimalParameters calculates the optimal [numHashes] and [numEntries] that
// should be allocated for a bloom filter which will contain [count] entries
// and target [falsePositiveProbability].
func OptimalParameters(count int, falsePositiveProbability float64) (int, int) {
	numEntries := OptimalEntries(count, falsePositiveProbability)
	numHashes := OptimalHashes(numEntries, count)
	return numHashes, numEntries
}

// OptimalHashes calculates the number of hashes which will minimize the false
// positive probability of a bloom filter with [numEntries] after [count]
// additions.
//
// It is guaranteed to return a value in the range [minHashes, maxHashes].
func OptimalHashes(numEntries, count int) int {
	switch {
	case numEntries < minEntries:
		return minHashes
	case count <= 0:
		return maxHashes
	}

	numHashes := math.Ceil(float64(numEntries) * bitsPerByte * math.Ln2 / float64(count))
	// Converting a floating-point value to an int produces an undefined value
	// if the floating-point value cannot be represented as an int. To avoid
	// this undefined behavior, we explicitly check against MaxInt here.
	//
	// ref: https://go.dev/ref/spec#Conversions
	if numHashes >= maxHashes {
		return maxHashes
	}
	return max(int(numHashes), minHashes)
}

// OptimalEntries calculates the optimal number of entries to use when
// creating a new bloom filter when targeting a size of [count] with
// [falsePositiveProbability], assuming that the optimal number of hashes is
// used.
//
// It is guaranteed to return a value in the range [minEntries, MaxInt].
func OptimalEntries(count int, falsePositiveProbability float64) int {
	switch {
	case count <= 0:
		return minEntries
	case falsePositiveProbability >= 1:
		return minEntries
	case falsePositiveProbability <= 0:
		return math.MaxInt
	}

	optimalBitCount := math.Ceil(float64(count) * math.Log(falsePositiveProbability) / -ln2Squared)
	optimalEntryCount := math.Ceil(optimalBitCount / bitsPerByte)
	if optimalEntryCount >= math.MaxInt {
		return math.MaxInt
	}
	return max(int(optimalEntryCount), minEntries)
}

// EstimateCount estimates the number of additions a bloom filter with
// [numHashes] and [numEntries] must have received to reach
// [falsePositiveProbability]. The result is used as the reset threshold.
//
// It is guaranteed to return a value in the range [0, MaxInt].
func EstimateCount(numHashes, numEntries int, falsePositiveProbability float64) int {
	switch {
	case numHashes < minHashes, numEntries < minEntries, falsePositiveProbability <= 0:
		return 0
	case falsePositiveProbability >= 1:
		return math.MaxInt
	}

	invNumHashes := 1 / float64(numHashes)
	numBits := float64(numEntries * bitsPerByte)
	exp := 1 - math.Pow(falsePositiveProbability, invNumHashes)
	count := math.Ceil(-math.Log(exp) * numBits * invNumHashes)
	if count >= math.MaxInt {
		return math.MaxInt
	}
	return int(count)
}

// EstimatedFalsePositiveProbability returns the expected false positive
// probability of a bloom filter with [numHashes] and [numEntries] after
// [count] additions. It is monotonically non-decreasing in [count].
func EstimatedFalsePositiveProbability(numHashes, numEntries, count int) float64 {
	if numHashes < minHashes || numEntries < minEntries {
		return 1
	}
	if count <= 0 {
		return 0
	}

	numBits := float64(numEntries * bitsPerByte)
	bitProbability := 1 - math.Exp(-float64(numHashes)*float64(count)/numBits)
	return math.Pow(bitProbability, float64(numHashes))
}
