package infrastructure

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.28.0"

	"github.com/uniomni/survey/internal/config"
)

// MeterName is the instrumentation scope of the run metrics
const MeterName = "github.com/uniomni/survey"

// Telemetry holds the OpenTelemetry providers of one run
type Telemetry struct {
	TracerProvider *sdktrace.TracerProvider
	MeterProvider  *sdkmetric.MeterProvider
	Meter          metric.Meter
	Registry       *prometheus.Registry

	metricsFile string
	logger      *slog.Logger
}

// InitTelemetry sets up tracing and metrics. When cfg.Trace is set, spans are
// written synchronously to traceOut so a short run flushes every span. Metrics
// are always collected into a private Prometheus registry; they are only
// written out when cfg.MetricsFile is set.
func InitTelemetry(cfg config.TelemetryConfig, traceOut io.Writer, logger *slog.Logger) (*Telemetry, error) {
	if logger == nil {
		logger = slog.Default()
	}
	ctx := context.Background()

	res, err := createResource(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	t := &Telemetry{
		metricsFile: cfg.MetricsFile,
		logger:      logger,
	}

	if cfg.Trace {
		if traceOut == nil {
			traceOut = os.Stderr
		}
		exporter, err := stdouttrace.New(
			stdouttrace.WithWriter(traceOut),
			stdouttrace.WithPrettyPrint(),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create trace exporter: %w", err)
		}
		t.TracerProvider = sdktrace.NewTracerProvider(
			sdktrace.WithSyncer(exporter),
			sdktrace.WithResource(res),
		)
		otel.SetTracerProvider(t.TracerProvider)
		logger.DebugContext(ctx, "Tracing initialized", slog.String("exporter", "stdout"))
	}

	t.Registry = prometheus.NewRegistry()
	exporter, err := otelprom.New(otelprom.WithRegisterer(t.Registry))
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}
	t.MeterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(exporter),
	)
	t.Meter = t.MeterProvider.Meter(MeterName, metric.WithInstrumentationVersion(config.AppVersion))

	logger.DebugContext(ctx, "Telemetry initialized",
		slog.Bool("tracing_enabled", cfg.Trace),
		slog.String("metrics_file", cfg.MetricsFile))

	return t, nil
}

// createResource creates the OpenTelemetry resource
func createResource(cfg config.TelemetryConfig) (*resource.Resource, error) {
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(config.AppVersion),
	), nil
}

// WriteMetrics writes the registry to the configured textfile. It does
// nothing when no metrics file is configured.
func (t *Telemetry) WriteMetrics() error {
	if t.metricsFile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(t.metricsFile, t.Registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", t.metricsFile, err)
	}
	t.logger.Debug("Metrics written", slog.String("path", t.metricsFile))
	return nil
}

// Shutdown flushes and stops the providers
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error

	if t.TracerProvider != nil {
		if err := t.TracerProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer provider shutdown: %w", err))
		}
	}

	if t.MeterProvider != nil {
		if err := t.MeterProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter provider shutdown: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("opentelemetry shutdown errors: %v", errs)
	}
	return nil
}
