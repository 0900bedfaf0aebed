package engagespot

// RequestLogger receives a log line for every API call the [Client] makes:
// Debugf on success, Warnf on a non-2xx response, Errorf on a transport
// failure. Implement it to integrate with your logging library and supply
// the implementation via [WithRequestLogger].
type RequestLogger interface {
	Errorf(format string, v ...any)
	Warnf(format string, v ...any)
	Debugf(format string, v ...any)
}

// NoopLogger is a [RequestLogger] that discards all log messages. It is
// the default when no logger is provided to [New].
type NoopLogger struct{}

func (l *NoopLogger) Errorf(_ string, _ ...any) {}
func (l *NoopLogger) Warnf(_ string, _ ...any)  {}
func (l *NoopLogger) Debugf(_ string, _ ...any) {}
