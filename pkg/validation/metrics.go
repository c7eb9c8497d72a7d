package validation

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofhir/models/pkg/issue"
)

// Metrics tracks validator throughput using atomic counters. All methods
// are safe for concurrent use.
type Metrics struct {
	validationsTotal atomic.Uint64
	validationsValid atomic.Uint64

	// nanoseconds
	timeTotal atomic.Uint64
	timeMin   atomic.Uint64
	timeMax   atomic.Uint64

	errorsTotal   atomic.Uint64
	warningsTotal atomic.Uint64
	infosTotal    atomic.Uint64

	bySource sync.Map // map[string]*atomic.Uint64
}

// NewMetrics creates an empty Metrics.
func NewMetrics() *Metrics {
	m := &Metrics{}
	m.timeMin.Store(^uint64(0))
	return m
}

// Record adds one finished validation.
func (m *Metrics) Record(result *issue.Result, duration time.Duration) {
	m.validationsTotal.Add(1)
	if !result.HasErrors() {
		m.validationsValid.Add(1)
	}

	ns := uint64(duration.Nanoseconds()) //nolint:gosec // durations are non-negative
	m.timeTotal.Add(ns)
	for {
		old := m.timeMin.Load()
		if ns >= old || m.timeMin.CompareAndSwap(old, ns) {
			break
		}
	}
	for {
		old := m.timeMax.Load()
		if ns <= old || m.timeMax.CompareAndSwap(old, ns) {
			break
		}
	}

	for _, iss := range result.Issues {
		switch iss.Severity {
		case issue.SeverityError, issue.SeverityFatal:
			m.errorsTotal.Add(1)
		case issue.SeverityWarning:
			m.warningsTotal.Add(1)
		case issue.SeverityInformation:
			m.infosTotal.Add(1)
		}
		if iss.Source != "" {
			m.counter(iss.Source).Add(1)
		}
	}
}

func (m *Metrics) counter(source string) *atomic.Uint64 {
	if v, ok := m.bySource.Load(source); ok {
		return v.(*atomic.Uint64)
	}
	v, _ := m.bySource.LoadOrStore(source, new(atomic.Uint64))
	return v.(*atomic.Uint64)
}

// ValidationsTotal returns the number of validations recorded.
func (m *Metrics) ValidationsTotal() uint64 {
	return m.validationsTotal.Load()
}

// ValidationRate returns the share of validations without errors.
func (m *Metrics) ValidationRate() float64 {
	total := m.validationsTotal.Load()
	if total == 0 {
		return 0
	}
	return float64(m.validationsValid.Load()) / float64(total)
}

// AverageTime returns the mean validation duration.
func (m *Metrics) AverageTime() time.Duration {
	total := m.validationsTotal.Load()
	if total == 0 {
		return 0
	}
	return time.Duration(m.timeTotal.Load() / total) //nolint:gosec // fits int64
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	Timestamp        time.Time         `json:"timestamp"`
	ValidationsTotal uint64            `json:"validations_total"`
	ValidationsValid uint64            `json:"validations_valid"`
	ValidationRate   float64           `json:"validation_rate"`
	AvgTimeNs        uint64            `json:"avg_time_ns"`
	MinTimeNs        uint64            `json:"min_time_ns"`
	MaxTimeNs        uint64            `json:"max_time_ns"`
	ErrorsTotal      uint64            `json:"errors_total"`
	WarningsTotal    uint64            `json:"warnings_total"`
	InfosTotal       uint64            `json:"infos_total"`
	IssuesBySource   map[string]uint64 `json:"issues_by_source,omitempty"`

	// Expression cache counters are filled in by Validator.Metrics.
	ExpressionCacheHits   uint64  `json:"expression_cache_hits"`
	ExpressionCacheMisses uint64  `json:"expression_cache_misses"`
	ExpressionCacheRate   float64 `json:"expression_cache_hit_rate"`
}

// Snapshot returns the current counters.
func (m *Metrics) Snapshot() Snapshot {
	total := m.validationsTotal.Load()
	s := Snapshot{
		Timestamp:        time.Now(),
		ValidationsTotal: total,
		ValidationsValid: m.validationsValid.Load(),
		ValidationRate:   m.ValidationRate(),
		MaxTimeNs:        m.timeMax.Load(),
		ErrorsTotal:      m.errorsTotal.Load(),
		WarningsTotal:    m.warningsTotal.Load(),
		InfosTotal:       m.infosTotal.Load(),
	}
	if total > 0 {
		s.AvgTimeNs = m.timeTotal.Load() / total
	}
	if minTime := m.timeMin.Load(); minTime != ^uint64(0) {
		s.MinTimeNs = minTime
	}
	m.bySource.Range(func(key, value any) bool {
		if s.IssuesBySource == nil {
			s.IssuesBySource = make(map[string]uint64)
		}
		s.IssuesBySource[key.(string)] = value.(*atomic.Uint64).Load()
		return true
	})
	return s
}

// Reset clears all counters.
func (m *Metrics) Reset() {
	m.validationsTotal.Store(0)
	m.validationsValid.Store(0)
	m.timeTotal.Store(0)
	m.timeMin.Store(^uint64(0))
	m.timeMax.Store(0)
	m.errorsTotal.Store(0)
	m.warningsTotal.Store(0)
	m.infosTotal.Store(0)
	m.bySource.Range(func(key, _ any) bool {
		m.bySource.Delete(key)
		return true
	})
}
