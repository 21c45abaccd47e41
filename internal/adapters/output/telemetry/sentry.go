// Package telemetry reports unexpected directive failures to Sentry.
// Reporting is fire and forget: a broken or absent sink must never delay
// or fail the response to the assistant.
package telemetry

import (
	"time"

	"github.com/getsentry/sentry-go"

	"alexa-cloud-bridge/internal/domain/model"
	"alexa-cloud-bridge/internal/logging"
	"alexa-cloud-bridge/internal/ports"
)

const flushTimeout = 2 * time.Second

type SentryReporter struct {
	hub    *sentry.Hub
	logger *logging.Logger
}

// New builds the telemetry sink. An empty DSN disables telemetry and
// returns a no-op reporter; that is a supported configuration.
func New(cfg model.TelemetryConfig, logger *logging.Logger) (ports.Telemetry, error) {
	if cfg.DSN == "" {
		logger.Info("telemetry disabled, no DSN configured")
		return Nop{}, nil
	}

	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		Release:     cfg.Release,
	})
	if err != nil {
		return nil, err
	}

	return &SentryReporter{
		hub:    sentry.NewHub(client, sentry.NewScope()),
		logger: logger.With("component", "telemetry"),
	}, nil
}

func (r *SentryReporter) ReportError(err error, directiveKind string) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Warn("telemetry report panicked", "recovered", rec)
		}
	}()

	// Sending is asynchronous; the response path never waits on the sink.
	r.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("directive", directiveKind)
		r.hub.CaptureException(err)
	})
}

// Close drains buffered events at shutdown, best effort.
func (r *SentryReporter) Close() {
	r.hub.Flush(flushTimeout)
}

// Nop is the reporter used when telemetry is not configured.
type Nop struct{}

func (Nop) ReportError(error, string) {}
