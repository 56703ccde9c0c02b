package render

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the render metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "viewspec").
	Namespace string

	// Subsystem is the metrics subsystem (default: "render").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for root render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the render metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "viewspec",
		Subsystem: "render",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus collectors for a Renderer. A nil *Metrics
// records nothing.
type Metrics struct {
	nodesRendered  *prometheus.CounterVec
	emissions      prometheus.Counter
	renderErrors   *prometheus.CounterVec
	hookFailures   prometheus.Counter
	renderDuration prometheus.Histogram
	activeStreams  prometheus.Gauge
}

// NewMetrics creates and registers the render metrics.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		nodesRendered: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "nodes_total",
			Help:        "Total number of structure nodes rendered, by kind",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		emissions: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "stream_emissions_total",
			Help:        "Total number of stream node emissions re-rendered",
			ConstLabels: config.ConstLabels,
		}),

		renderErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "errors_total",
			Help:        "Total number of render errors, by error code",
			ConstLabels: config.ConstLabels,
		}, []string{"code"}),

		hookFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "dev_hook_failures_total",
			Help:        "Total number of dev hook invocations that failed",
			ConstLabels: config.ConstLabels,
		}),

		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "duration_seconds",
			Help:        "Duration of root Render calls in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		activeStreams: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "active_streams",
			Help:        "Number of stream nodes currently subscribed",
			ConstLabels: config.ConstLabels,
		}),
	}
}

func (m *Metrics) nodeRendered(kind string) {
	if m == nil {
		return
	}
	m.nodesRendered.WithLabelValues(kind).Inc()
}

func (m *Metrics) emission() {
	if m == nil {
		return
	}
	m.emissions.Inc()
}

func (m *Metrics) renderError(code string) {
	if m == nil {
		return
	}
	m.renderErrors.WithLabelValues(code).Inc()
}

func (m *Metrics) hookFailure() {
	if m == nil {
		return
	}
	m.hookFailures.Inc()
}

func (m *Metrics) observeDuration(seconds float64) {
	if m == nil {
		return
	}
	m.renderDuration.Observe(seconds)
}

func (m *Metrics) streamSubscribed() {
	if m == nil {
		return
	}
	m.activeStreams.Inc()
}

func (m *Metrics) streamReleased() {
	if m == nil {
		return
	}
	m.activeStreams.Dec()
}
