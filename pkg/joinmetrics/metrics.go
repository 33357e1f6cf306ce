package joinmetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/vsel/pkg/selection"
)

// MetricsConfig configures a Collector.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "vsel").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for request duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures a Collector.
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

// WithBuckets sets the request duration histogram buckets.
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
		Namespace: "vsel",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// sizeBuckets cover 1 to 16384 values or groups.
var sizeBuckets = prometheus.ExponentialBuckets(1, 4, 8)

// Collector holds the Prometheus metrics for joins and service requests.
type Collector struct {
	joinsTotal      prometheus.Counter
	slotsTotal      *prometheus.CounterVec
	joinValues      prometheus.Histogram
	joinGroups      prometheus.Histogram
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

var _ selection.Observer = (*Collector)(nil)

// NewCollector creates and registers the metrics. Registering twice on the
// same registry panics, as with promauto.
func NewCollector(opts ...MetricsOption) *Collector {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Collector{
		joinsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "joins_total",
			Help:        "Total number of data joins",
			ConstLabels: config.ConstLabels,
		}),

		slotsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "join_slots_total",
			Help:        "Total number of non-empty join slots by partition",
			ConstLabels: config.ConstLabels,
		}, []string{"partition"}),

		joinValues: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "join_values",
			Help:        "Number of data values per join",
			ConstLabels: config.ConstLabels,
			Buckets:     sizeBuckets,
		}),

		joinGroups: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "join_groups",
			Help:        "Number of groups per join",
			ConstLabels: config.ConstLabels,
			Buckets:     sizeBuckets,
		}),

		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "requests_total",
			Help:        "Total number of join requests",
			ConstLabels: config.ConstLabels,
		}, []string{"endpoint", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "request_duration_seconds",
			Help:        "Join request duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"endpoint"}),
	}
}

// ObserveJoin implements selection.Observer.
func (c *Collector) ObserveJoin(stats selection.JoinStats) {
	c.joinsTotal.Inc()
	c.slotsTotal.WithLabelValues("update").Add(float64(stats.Update))
	c.slotsTotal.WithLabelValues("enter").Add(float64(stats.Enter))
	c.slotsTotal.WithLabelValues("exit").Add(float64(stats.Exit))
	c.joinValues.Observe(float64(stats.Values))
	c.joinGroups.Observe(float64(stats.Groups))
}

// ObserveRequest records a finished service request. status is "success"
// or an error category.
func (c *Collector) ObserveRequest(endpoint, status string, d time.Duration) {
	c.requestsTotal.WithLabelValues(endpoint, status).Inc()
	c.requestDuration.WithLabelValues(endpoint).Observe(d.Seconds())
}
