// Package metrics exposes memory pool statistics to Prometheus
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/vkngwrapper/crucible/memory"
	"github.com/vkngwrapper/crucible/memutils"
)

const (
	pagesDesc = iota
	pageBytesDesc
	allocationsDesc
	allocationBytesDesc
	unusedRangesDesc
	numDescriptors
)

// pool is the position of the pool in the source list, memory_type its memory type index
var poolLabels = []string{"pool", "memory_type", "flags"}

// PoolSource returns the pools to report on each scrape
type PoolSource func() []*memory.Pool

type poolCollector struct {
	source      PoolSource
	descriptors [numDescriptors]*prometheus.Desc
}

// NewPoolCollector creates a collector reporting page and allocation statistics of every pool
// returned by source. Session.Pools is a suitable source.
func NewPoolCollector(namespace string, source PoolSource) prometheus.Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "pool", name), help, poolLabels, nil)
	}

	return &poolCollector{
		source: source,
		descriptors: [numDescriptors]*prometheus.Desc{
			pagesDesc:           desc("pages", "Number of device memory pages held by the pool."),
			pageBytesDesc:       desc("page_bytes", "Total capacity of the pool's pages in bytes."),
			allocationsDesc:     desc("allocations", "Number of live allocations placed in the pool."),
			allocationBytesDesc: desc("allocation_bytes", "Bytes reserved by live allocations, padding included."),
			unusedRangesDesc:    desc("unused_ranges", "Number of free intervals across the pool's pages."),
		},
	}
}

// Describe implements prometheus.Collector interface
func (c *poolCollector) Describe(ch chan<- *prometheus.Desc) {
	for _, d := range c.descriptors {
		ch <- d
	}
}

// Collect implements prometheus.Collector interface
func (c *poolCollector) Collect(ch chan<- prometheus.Metric) {
	for index, pool := range c.source() {
		var stats memutils.DetailedStatistics
		stats.Clear()
		pool.AddDetailedStatistics(&stats)

		labels := []string{
			strconv.Itoa(index),
			strconv.Itoa(pool.MemoryTypeIndex()),
			pool.PropertyFlags().String(),
		}

		values := [numDescriptors]int{
			pagesDesc:           stats.PageCount,
			pageBytesDesc:       stats.PageBytes,
			allocationsDesc:     stats.AllocationCount,
			allocationBytesDesc: stats.AllocationBytes,
			unusedRangesDesc:    stats.UnusedRangeCount,
		}

		for desc, value := range values {
			ch <- prometheus.MustNewConstMetric(
				c.descriptors[desc],
				prometheus.GaugeValue,
				float64(value),
				labels...,
			)
		}
	}
}
