package region

import (
	"sort"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// StatsSource is anything that can report region statistics. *Locked is safe
// to scrape concurrently; a bare *Region is only safe if its owner serializes
// scrapes with allocations.
type StatsSource interface {
	Stats() Stats
}

// Collector exports the usage of a set of named regions as prometheus gauges.
// Owners Track the region they allocate from and Untrack it when they rotate.
type Collector struct {
	mu      sync.Mutex
	sources map[string]StatsSource

	allocatedDesc   *prometheus.Desc
	remainingDesc   *prometheus.Desc
	capacityDesc    *prometheus.Desc
	utilizationDesc *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a collector whose metrics are prefixed with namespace.
func NewCollector(namespace string) *Collector {
	labels := []string{"region"}
	return &Collector{
		sources: make(map[string]StatsSource),
		allocatedDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "region", "allocated_bytes"),
			"Bytes handed out by the region, alignment padding included.",
			labels, nil,
		),
		remainingDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "region", "remaining_bytes"),
			"Headroom left in the region before exhaustion.",
			labels, nil,
		),
		capacityDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "region", "capacity_bytes"),
			"Reserved size of the region.",
			labels, nil,
		),
		utilizationDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "region", "utilization_ratio"),
			"Ratio of allocated bytes to capacity.",
			labels, nil,
		),
	}
}

// Track starts exporting src under name, replacing any source with that name.
func (c *Collector) Track(name string, src StatsSource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sources[name] = src
}

// Untrack stops exporting the source registered under name.
func (c *Collector) Untrack(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sources, name)
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.allocatedDesc
	ch <- c.remainingDesc
	ch <- c.capacityDesc
	ch <- c.utilizationDesc
}

// Collect implements prometheus.Collector. Released regions are skipped.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mu.Lock()
	names := make([]string, 0, len(c.sources))
	for name := range c.sources {
		names = append(names, name)
	}
	sources := make([]StatsSource, 0, len(names))
	sort.Strings(names)
	for _, name := range names {
		sources = append(sources, c.sources[name])
	}
	c.mu.Unlock()

	for i, src := range sources {
		s := src.Stats()
		if s.Released {
			continue
		}
		name := names[i]
		ch <- prometheus.MustNewConstMetric(c.allocatedDesc, prometheus.GaugeValue, float64(s.Allocated), name)
		ch <- prometheus.MustNewConstMetric(c.remainingDesc, prometheus.GaugeValue, float64(s.Remaining), name)
		ch <- prometheus.MustNewConstMetric(c.capacityDesc, prometheus.GaugeValue, float64(s.Capacity), name)
		ch <- prometheus.MustNewConstMetric(c.utilizationDesc, prometheus.GaugeValue, s.Utilization, name)
	}
}
