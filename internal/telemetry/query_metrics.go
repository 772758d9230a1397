// Package telemetry collects in-memory statistics about metadata queries:
// which route answered (index, direct, fallback), how long each operation
// took, and which paths are queried most often. Everything lives in memory
// for the life of the process; nothing is persisted.
package telemetry

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/swiftfs/swiftfs/internal/queryfs"
)

// LatencyBucket is a human-readable latency range for histogram grouping.
type LatencyBucket string

const (
	Bucket10ms   LatencyBucket = "<10ms"
	Bucket50ms   LatencyBucket = "<50ms"
	Bucket100ms  LatencyBucket = "<100ms"
	Bucket500ms  LatencyBucket = "<500ms"
	Bucket1000ms LatencyBucket = "<1000ms"
	BucketSlow   LatencyBucket = "1000ms+"
)

// LatencyToBucket maps a duration to its histogram bucket.
func LatencyToBucket(d time.Duration) LatencyBucket {
	ms := d.Milliseconds()
	switch {
	case ms < 10:
		return Bucket10ms
	case ms < 50:
		return Bucket50ms
	case ms < 100:
		return Bucket100ms
	case ms < 500:
		return Bucket500ms
	case ms < 1000:
		return Bucket1000ms
	default:
		return BucketSlow
	}
}

// Event is one completed metadata operation.
type Event struct {
	Op          string        `json:"op"`
	Path        string        `json:"path"`
	Route       queryfs.Route `json:"route"`
	Latency     time.Duration `json:"latency"`
	ResultCount int           `json:"result_count"`
	Timestamp   time.Time     `json:"timestamp"`
}

// CircularBuffer is a fixed-capacity ring; once full, new items overwrite
// the oldest. Not safe for concurrent use; callers hold their own lock.
type CircularBuffer[T any] struct {
	items []T
	head  int
	size  int
}

// NewCircularBuffer creates a ring with the given capacity.
func NewCircularBuffer[T any](capacity int) *CircularBuffer[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &CircularBuffer[T]{items: make([]T, capacity)}
}

// Add appends an item, evicting the oldest when full.
func (b *CircularBuffer[T]) Add(item T) {
	b.items[b.head] = item
	b.head = (b.head + 1) % len(b.items)
	if b.size < len(b.items) {
		b.size++
	}
}

// Items returns the buffered items oldest-first.
func (b *CircularBuffer[T]) Items() []T {
	out := make([]T, 0, b.size)
	start := b.head - b.size
	if start < 0 {
		start += len(b.items)
	}
	for i := 0; i < b.size; i++ {
		out = append(out, b.items[(start+i)%len(b.items)])
	}
	return out
}

// Len returns the number of buffered items.
func (b *CircularBuffer[T]) Len() int { return b.size }

// PathCount pairs a queried path with how many times it was asked about.
type PathCount struct {
	Path  string `json:"path"`
	Count int64  `json:"count"`
}

// Snapshot is a point-in-time copy of all collected metrics.
type Snapshot struct {
	TotalQueries    int64                          `json:"total_queries"`
	ByOperation     map[string]int64               `json:"by_operation"`
	ByRoute         map[queryfs.Route]int64        `json:"by_route"`
	LatencyBuckets  map[LatencyBucket]int64        `json:"latency_buckets"`
	ZeroResultCount int64                          `json:"zero_result_count"`
	HotPaths        []PathCount                    `json:"hot_paths"`
	Recent          []Event                        `json:"recent"`
}

// Config controls metrics capacity.
type Config struct {
	// RecentSize is how many recent events to retain.
	RecentSize int
	// HotPathSize is how many distinct paths the hot-path cache tracks.
	HotPathSize int
	// TopPaths is how many hot paths a Snapshot reports.
	TopPaths int
}

// DefaultConfig returns the standard capacities.
func DefaultConfig() Config {
	return Config{
		RecentSize:  100,
		HotPathSize: 1000,
		TopPaths:    10,
	}
}

// Metrics accumulates query statistics. It implements queryfs.Recorder and
// is safe for concurrent use.
type Metrics struct {
	mu sync.Mutex

	total       int64
	byOp        map[string]int64
	byRoute     map[queryfs.Route]int64
	byBucket    map[LatencyBucket]int64
	zeroResults int64

	hotPaths *lru.Cache[string, int64]
	recent   *CircularBuffer[Event]

	topPaths int
	logger   *slog.Logger
}

// NewMetrics creates a Metrics with default capacities.
func NewMetrics(logger *slog.Logger) *Metrics {
	return NewMetricsWithConfig(DefaultConfig(), logger)
}

// NewMetricsWithConfig creates a Metrics with explicit capacities.
func NewMetricsWithConfig(cfg Config, logger *slog.Logger) *Metrics {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.HotPathSize < 1 {
		cfg.HotPathSize = 1
	}
	if cfg.TopPaths < 1 {
		cfg.TopPaths = 1
	}
	// lru.New only fails on a non-positive size, which is clamped above.
	cache, _ := lru.New[string, int64](cfg.HotPathSize)
	return &Metrics{
		byOp:     make(map[string]int64),
		byRoute:  make(map[queryfs.Route]int64),
		byBucket: make(map[LatencyBucket]int64),
		hotPaths: cache,
		recent:   NewCircularBuffer[Event](cfg.RecentSize),
		topPaths: cfg.TopPaths,
		logger:   logger,
	}
}

// Record accumulates one completed operation.
func (m *Metrics) Record(op, path string, route queryfs.Route, latency time.Duration, resultCount int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.total++
	m.byOp[op]++
	m.byRoute[route]++
	m.byBucket[LatencyToBucket(latency)]++
	if resultCount == 0 {
		m.zeroResults++
	}

	n, _ := m.hotPaths.Get(path)
	m.hotPaths.Add(path, n+1)

	m.recent.Add(Event{
		Op:          op,
		Path:        path,
		Route:       route,
		Latency:     latency,
		ResultCount: resultCount,
		Timestamp:   time.Now(),
	})
}

// Snapshot copies the current state. The returned maps and slices are owned
// by the caller.
func (m *Metrics) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{
		TotalQueries:    m.total,
		ByOperation:     make(map[string]int64, len(m.byOp)),
		ByRoute:         make(map[queryfs.Route]int64, len(m.byRoute)),
		LatencyBuckets:  make(map[LatencyBucket]int64, len(m.byBucket)),
		ZeroResultCount: m.zeroResults,
		Recent:          m.recent.Items(),
	}
	for k, v := range m.byOp {
		snap.ByOperation[k] = v
	}
	for k, v := range m.byRoute {
		snap.ByRoute[k] = v
	}
	for k, v := range m.byBucket {
		snap.LatencyBuckets[k] = v
	}

	counts := make([]PathCount, 0, m.hotPaths.Len())
	for _, key := range m.hotPaths.Keys() {
		if n, ok := m.hotPaths.Peek(key); ok {
			counts = append(counts, PathCount{Path: key, Count: n})
		}
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Path < counts[j].Path
	})
	if len(counts) > m.topPaths {
		counts = counts[:m.topPaths]
	}
	snap.HotPaths = counts
	return snap
}
