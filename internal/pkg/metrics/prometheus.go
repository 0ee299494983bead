// Package metrics 服务的 Prometheus 指标
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// 缓存读取结果
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// Manager 持有全部指标，nil Manager 上的调用都是空操作
type Manager struct {
	namespace        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	cmsRequests        *prometheus.CounterVec
	cmsRequestDuration *prometheus.HistogramVec
	engagementCache    *prometheus.CounterVec
	candidatesScored   prometheus.Gauge
	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
}

// NewManager 创建指标管理器，默认使用独立 Registry 并注册 Go 运行时指标
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "hustings",
		histogramBuckets: prometheus.DefBuckets,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.cmsRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "cms",
		Name:      "requests_total",
		Help:      "Directus requests by collection and status",
	}, []string{"collection", "status"})

	m.cmsRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "cms",
		Name:      "request_duration_seconds",
		Help:      "Directus request latency in seconds",
		Buckets:   m.histogramBuckets,
	}, []string{"collection"})

	m.engagementCache = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "engagement",
		Name:      "cache_total",
		Help:      "Engagement tally cache lookups by result",
	}, []string{"result"})

	m.candidatesScored = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "engagement",
		Name:      "candidates",
		Help:      "Number of candidates in the last fetched tally",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by route, method and status code",
	}, []string{"route", "method", "status_code"})

	m.httpDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   m.histogramBuckets,
	}, []string{"route", "method"})
}

// Registry 返回底层 Registry
func (m *Manager) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler /metrics 处理器
func (m *Manager) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Manager) ObserveCMSRequest(collection, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.cmsRequests.WithLabelValues(collection, status).Inc()
	m.cmsRequestDuration.WithLabelValues(collection).Observe(d.Seconds())
}

func (m *Manager) ObserveCache(result string) {
	if m == nil {
		return
	}
	m.engagementCache.WithLabelValues(result).Inc()
}

func (m *Manager) SetCandidates(n int) {
	if m == nil {
		return
	}
	m.candidatesScored.Set(float64(n))
}

func (m *Manager) ObserveHTTPRequest(route, method string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(d.Seconds())
}
