// Copyright (C) 2024-2026, Driftmesh, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bloom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/driftmesh/peersync/utils"
)

// Metrics reports the state of a bloom filter that is reset when it becomes
// saturated.
type Metrics struct {
	// Count is the number of additions since the last reset.
	Count prometheus.Gauge
	// NumHashes is the number of hash seeds in the current filter.
	NumHashes prometheus.Gauge
	// NumEntries is the number of bytes allocated to the current filter's bit
	// array.
	NumEntries prometheus.Gauge
	// MaxCount is the number of additions at which the filter is reset.
	MaxCount prometheus.Gauge
	// ResetCount is the total number of times the filter has been reset.
	ResetCount prometheus.Counter
}

func NewMetrics(
	namespace string,
	registerer prometheus.Registerer,
) (*Metrics, error) {
	m := &Metrics{
		Count: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "bloom_count",
			Help:      "Number of additions that have been performed to the bloom",
		}),
		NumHashes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "bloom_hashes",
			Help:      "Number of hashes in the bloom",
		}),
		NumEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "bloom_entries",
			Help:      "Number of bytes allocated to slots in the bloom",
		}),
		MaxCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "bloom_max_count",
			Help:      "Maximum number of additions that should be performed to the bloom before resetting",
		}),
		ResetCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bloom_reset_count",
			Help:      "Number times the bloom has been reset",
		}),
	}
	err := utils.Err(
		registerer.Register(m.Count),
		registerer.Register(m.NumHashes),
		registerer.Register(m.NumEntries),
		registerer.Register(m.MaxCount),
		registerer.Register(m.ResetCount),
	)
	return m, err
}

// Reset updates the metrics to reflect a newly allocated filter.
func (m *Metrics) Reset(newFilter *Filter, maxCount int) {
	m.Count.Set(0)
	m.NumHashes.Set(float64(len(newFilter.hashSeeds)))
	m.NumEntries.Set(float64(len(newFilter.entries)))
	m.MaxCount.Set(float64(maxCount))
	m.ResetCount.Inc()
}
