package ports

import "io"

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Info logs an informational message.
	Info(msg string)
	// Warn logs a warning message.
	Warn(msg string)
	// Error logs an error, unwinding wrapped causes where possible.
	Error(err error)
	// SetOutput updates the logger's output destination.
	SetOutput(w io.Writer)
	// SetJSON switches between JSON and pretty logging.
	SetJSON(enable bool)
}
