package log

// NopLogger discards all log output. It is the default for components
// where logging is an opt-in observability hook.
type NopLogger struct{}

// NewNopLogger creates a logger that discards everything.
func NewNopLogger() *NopLogger {
	return &NopLogger{}
}

// Debug discards the message.
func (NopLogger) Debug(args ...interface{}) {}

// Debugf discards the message.
func (NopLogger) Debugf(format string, args ...interface{}) {}

// Info discards the message.
func (NopLogger) Info(args ...interface{}) {}

// Infof discards the message.
func (NopLogger) Infof(format string, args ...interface{}) {}

// Warn discards the message.
func (NopLogger) Warn(args ...interface{}) {}

// Warnf discards the message.
func (NopLogger) Warnf(format string, args ...interface{}) {}

// Error discards the message.
func (NopLogger) Error(args ...interface{}) {}

// Errorf discards the message.
func (NopLogger) Errorf(format string, args ...interface{}) {}
