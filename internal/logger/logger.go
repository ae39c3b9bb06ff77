// Package logger configures the application's logging,
// monitoring, and observability.
//
// It uses zerolog for logging and optionally integrates with
// New Relic to instrument the codebase, forwarding logs and
// traces for debugging.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"itemsapi/internal/config"

	"github.com/newrelic/go-agent/v3/integrations/logcontext-v2/zerologWriter"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// LoggerService wraps the optional New Relic application instance.
// When New Relic is not configured, the wrapper exists but holds nil,
// and every consumer degrades to a no-op.
type LoggerService struct {
	nrApp *newrelic.Application
}

// GetApplication returns the New Relic application, or nil when APM
// is disabled.
func (s *LoggerService) GetApplication() *newrelic.Application {
	if s == nil {
		return nil
	}
	return s.nrApp
}

// New builds the root application logger and the observability service.
//
// Output format follows config: console writer for "console" format
// (typical in local env), plain JSON otherwise. When a New Relic license
// key is configured and log forwarding is enabled, the JSON stream is
// routed through the agent's zerolog writer so logs carry trace linking
// metadata.
func New(cfg *config.Config) (*zerolog.Logger, *LoggerService, error) {
	level, err := zerolog.ParseLevel(cfg.Observability.GetLogLevel())
	if err != nil {
		return nil, nil, fmt.Errorf("parsing log level: %w", err)
	}

	service := &LoggerService{}

	nrCfg := cfg.Observability.NewRelic
	if nrCfg.LicenseKey != "" {
		app, err := newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.Observability.ServiceName),
			newrelic.ConfigLicense(nrCfg.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(nrCfg.DistributedTracingEnabled),
			newrelic.ConfigAppLogForwardingEnabled(nrCfg.AppLogForwardingEnabled),
		)
		if err != nil {
			return nil, nil, fmt.Errorf("initializing new relic application: %w", err)
		}
		service.nrApp = app
	}

	var out io.Writer
	switch {
	case cfg.Observability.Logging.Format == "console":
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	case service.nrApp != nil && nrCfg.AppLogForwardingEnabled:
		w := zerologWriter.New(os.Stdout, service.nrApp)
		out = &w
	default:
		out = os.Stdout
	}

	logger := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.Observability.ServiceName).
		Str("env", cfg.Observability.Environment).
		Logger()

	return &logger, service, nil
}

// WithTraceContext returns a child logger carrying the transaction's
// trace.id and span.id, so log lines correlate with distributed traces.
func WithTraceContext(logger zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return logger
	}

	md := txn.GetLinkingMetadata()
	builder := logger.With()
	if md.TraceID != "" {
		builder = builder.Str("trace.id", md.TraceID)
	}
	if md.SpanID != "" {
		builder = builder.Str("span.id", md.SpanID)
	}
	return builder.Logger()
}
