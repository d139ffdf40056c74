package core

import (
	"github.com/prometheus/client_golang/prometheus"
)

type coreMetrics struct {
	commits           prometheus.Counter
	fetches           prometheus.Counter
	patchBytesWritten prometheus.Counter
	patchBytesRead    prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *coreMetrics {
	m := &coreMetrics{
		commits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quilt",
			Name:      "commits_total",
			Help:      "Number of commits applied",
		}),
		fetches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quilt",
			Name:      "fetches_total",
			Help:      "Number of fetches served",
		}),
		patchBytesWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quilt",
			Name:      "patch_bytes_written_total",
			Help:      "Bytes of patch blobs persisted",
		}),
		patchBytesRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quilt",
			Name:      "patch_bytes_read_total",
			Help:      "Bytes of patch blobs loaded",
		}),
	}
	reg.MustRegister(m.commits, m.fetches, m.patchBytesWritten, m.patchBytesRead)
	return m
}

func (m *coreMetrics) incCommits() {
	if m != nil {
		m.commits.Inc()
	}
}

func (m *coreMetrics) incFetches() {
	if m != nil {
		m.fetches.Inc()
	}
}

func (m *coreMetrics) addPatchBytesWritten(n int) {
	if m != nil {
		m.patchBytesWritten.Add(float64(n))
	}
}

func (m *coreMetrics) addPatchBytesRead(n int) {
	if m != nil {
		m.patchBytesRead.Add(float64(n))
	}
}
