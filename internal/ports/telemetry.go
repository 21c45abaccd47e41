package ports

// Telemetry is the fire-and-forget error-reporting sink. Implementations
// must never block the response path or propagate their own failures.
type Telemetry interface {
	ReportError(err error, directiveKind string)
}
