package telemetry

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	tterrors "github.com/vango-dev/tooltip/internal/errors"
	"github.com/vango-dev/tooltip/pkg/tooltip"
)

const defaultTracerName = "github.com/vango-dev/tooltip"

// Config configures a Recorder.
type Config struct {
	// Namespace is the metrics namespace (default: "tooltip").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	Buckets []float64

	// Registry is the Prometheus registerer to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer

	// TracerName names the tracer obtained from the global provider.
	TracerName string
}

// Option configures a Recorder.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the render duration buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registerer.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

// WithTracerName sets the tracer name.
func WithTracerName(name string) Option {
	return func(c *Config) {
		c.TracerName = name
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "tooltip",
		// Renders are sub-millisecond; the default buckets start at 5ms.
		Buckets:    prometheus.ExponentialBuckets(0.00005, 4, 8),
		Registry:   prometheus.DefaultRegisterer,
		TracerName: defaultTracerName,
	}
}

// Recorder instruments tooltip rendering. Its methods are safe for
// concurrent use.
type Recorder struct {
	tracer trace.Tracer

	rendersTotal   *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	renderErrors   *prometheus.CounterVec
	patchesSent    prometheus.Counter
	liveClients    prometheus.Gauge
	snapshotsTotal *prometheus.CounterVec
}

// New creates a Recorder and registers its metrics.
func New(opts ...Option) *Recorder {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	factory := promauto.With(cfg.Registry)

	return &Recorder{
		tracer: otel.Tracer(cfg.TracerName),

		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "renders_total",
			Help:        "Total number of tooltip renders",
			ConstLabels: cfg.ConstLabels,
		}, []string{"format", "status"}),

		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Tooltip render duration in seconds",
			ConstLabels: cfg.ConstLabels,
			Buckets:     cfg.Buckets,
		}, []string{"format"}),

		renderErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "render_errors_total",
			Help:        "Tooltip render failures by error code, including recovered ones",
			ConstLabels: cfg.ConstLabels,
		}, []string{"code"}),

		patchesSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "patches_sent_total",
			Help:        "Total number of patches sent to live preview clients",
			ConstLabels: cfg.ConstLabels,
		}),

		liveClients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "live_clients",
			Help:        "Number of connected live preview clients",
			ConstLabels: cfg.ConstLabels,
		}),

		snapshotsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "snapshots_total",
			Help:        "Total number of published snapshots",
			ConstLabels: cfg.ConstLabels,
		}, []string{"store", "status"}),
	}
}

// Render renders c into m inside a span and records the outcome.
func (r *Recorder) Render(ctx context.Context, c *tooltip.Content, m tooltip.Mount) (tooltip.RenderInfo, error) {
	state := c.State()
	_, span := r.tracer.Start(ctx, "tooltip.render",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("tooltip.strategy", state.StrategyName),
			attribute.Bool("tooltip.formatter", state.Formatter != nil),
			attribute.Bool("tooltip.has_model", state.HasModel()),
		),
	)
	defer span.End()

	start := time.Now()
	info, err := c.RenderInfo(m)
	elapsed := time.Since(start).Seconds()

	if err != nil {
		code := errorCode(err)
		r.renderErrors.WithLabelValues(code).Inc()
		r.rendersTotal.WithLabelValues("none", "error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, code)
		return info, err
	}

	format := string(info.Format)
	if info.Deferred {
		format = "deferred"
	}
	status := "success"
	if info.Degraded != nil {
		status = "degraded"
		r.renderErrors.WithLabelValues(errorCode(info.Degraded)).Inc()
		span.RecordError(info.Degraded)
	}
	for _, cellErr := range info.CellErrors {
		r.renderErrors.WithLabelValues(errorCode(cellErr)).Inc()
	}

	r.rendersTotal.WithLabelValues(format, status).Inc()
	r.renderDuration.WithLabelValues(format).Observe(elapsed)
	span.SetAttributes(
		attribute.String("tooltip.format", format),
		attribute.Int("tooltip.rows", info.Rows),
		attribute.Int("tooltip.cells", info.Cells),
		attribute.Int("tooltip.cell_errors", len(info.CellErrors)),
	)
	span.SetStatus(codes.Ok, "")
	return info, nil
}

// Snapshot runs publish inside a span and counts the result per store kind.
func (r *Recorder) Snapshot(ctx context.Context, store string, publish func(context.Context) error) error {
	ctx, span := r.tracer.Start(ctx, "tooltip.snapshot",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("tooltip.store", store)),
	)
	defer span.End()

	if err := publish(ctx); err != nil {
		r.snapshotsTotal.WithLabelValues(store, "error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, errorCode(err))
		return err
	}
	r.snapshotsTotal.WithLabelValues(store, "success").Inc()
	return nil
}

// RecordPatches counts patches delivered to live clients.
func (r *Recorder) RecordPatches(n int) {
	if n > 0 {
		r.patchesSent.Add(float64(n))
	}
}

// ClientConnected tracks a live client connecting.
func (r *Recorder) ClientConnected() {
	r.liveClients.Inc()
}

// ClientDisconnected tracks a live client going away.
func (r *Recorder) ClientDisconnected() {
	r.liveClients.Dec()
}

// errorCode keeps label cardinality bounded to registered codes.
func errorCode(err error) string {
	if code := tterrors.CodeOf(err); code != "" {
		return code
	}
	return "unknown"
}
