package types

import "log"

// Logger is the channel failures are reported on. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, args ...any)
}

// DefaultLogger returns the standard library logger.
func DefaultLogger() Logger {
	return log.Default()
}
