// Package telemetry sets up the optional request metrics and traces. A CLI run is short, so both
// are reported through the logger when the process shuts down instead of being scraped or exported.
package telemetry

import (
	"context"
	"errors"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const ServiceName = "portal"

type Options struct {
	Metrics bool
	Tracing bool
	Version string
}

// Instruments bundles what the gateway needs. Nil fields mean the concern is disabled.
type Instruments struct {
	Registry       *prometheus.Registry
	TracerProvider trace.TracerProvider
}

func Init(opts Options, logger *logrus.Logger) (*Instruments, func(context.Context) error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	entry := logger.WithField("component", "telemetry")

	instruments := &Instruments{}
	var provider *sdktrace.TracerProvider

	if opts.Metrics {
		instruments.Registry = prometheus.NewRegistry()
	}
	if opts.Tracing {
		res := resource.NewSchemaless(
			attribute.String("service.name", ServiceName),
			attribute.String("service.version", opts.Version),
		)
		provider = sdktrace.NewTracerProvider(
			sdktrace.WithResource(res),
			sdktrace.WithSyncer(&logExporter{logger: entry}),
		)
		instruments.TracerProvider = provider
	}

	shutdown := func(ctx context.Context) error {
		var shutdownErr error
		if instruments.Registry != nil {
			shutdownErr = errors.Join(shutdownErr, logMetrics(instruments.Registry, entry))
		}
		if provider != nil {
			shutdownErr = errors.Join(shutdownErr, provider.Shutdown(ctx))
		}
		return shutdownErr
	}

	return instruments, shutdown
}

func logMetrics(registry *prometheus.Registry, logger *logrus.Entry) error {
	families, err := registry.Gather()
	if err != nil {
		return err
	}

	for _, family := range families {
		for _, metric := range family.GetMetric() {
			fields := logrus.Fields{"metric": family.GetName()}
			labels := metric.GetLabel()
			sort.Slice(labels, func(i, j int) bool { return labels[i].GetName() < labels[j].GetName() })
			for _, label := range labels {
				fields[label.GetName()] = label.GetValue()
			}

			switch {
			case metric.GetCounter() != nil:
				fields["value"] = metric.GetCounter().GetValue()
			case metric.GetHistogram() != nil:
				fields["count"] = metric.GetHistogram().GetSampleCount()
				fields["sum"] = metric.GetHistogram().GetSampleSum()
			default:
				continue
			}
			logger.WithFields(fields).Info("metric")
		}
	}

	return nil
}

// logExporter writes finished spans to the logger at debug level.
type logExporter struct {
	logger *logrus.Entry
}

var _ sdktrace.SpanExporter = (*logExporter)(nil)

func (e *logExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, span := range spans {
		fields := logrus.Fields{
			"span":     span.Name(),
			"trace_id": span.SpanContext().TraceID().String(),
			"duration": span.EndTime().Sub(span.StartTime()).String(),
			"status":   span.Status().Code.String(),
		}
		for _, attr := range span.Attributes() {
			fields[string(attr.Key)] = attr.Value.Emit()
		}
		e.logger.WithFields(fields).Debug("span")
	}
	return ctx.Err()
}

func (e *logExporter) Shutdown(ctx context.Context) error {
	return ctx.Err()
}
