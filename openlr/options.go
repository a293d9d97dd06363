package openlr

import (
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "roadref.openlr"

// Option configures a PathsConnector.
type Option func(*connectorOptions)

type connectorOptions struct {
	logger *slog.Logger
	tracer trace.Tracer
}

func defaultOptions() connectorOptions {
	return connectorOptions{
		logger: slog.Default(),
		tracer: otel.Tracer(tracerName),
	}
}

// WithLogger sets the logger used for debug diagnostics. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *connectorOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithTracer sets the tracer used for connection spans. Nil is ignored.
// By default the global OpenTelemetry provider is used.
func WithTracer(t trace.Tracer) Option {
	return func(o *connectorOptions) {
		if t != nil {
			o.tracer = t
		}
	}
}
