package multibase

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the package's logger. Registry construction emits
// debug traces through it; encode and decode paths never log. This must be
// called before the default registry is first used.
func SetLogger(l *zap.Logger) {
	logger = l
}
