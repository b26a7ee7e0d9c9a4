package core

// Logger is the minimal logging surface used by the renderer and the CLI
type Logger interface {
	Printf(format string, args ...interface{})
}

// DiscardLogger drops every message; used by tests and quiet renders
type DiscardLogger struct{}

// Printf implements Logger
func (DiscardLogger) Printf(format string, args ...interface{}) {}
