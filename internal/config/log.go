package config

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// LogConfig holds settings for diagnostic output. It is shared by every
// game of a self-play match, so writes are serialised. Pass it by pointer.
type LogConfig struct {
	// Verbosity: 0=nothing, 1=summary, 2=running commentary
	Verbosity int

	// LogFile receives diagnostic output
	LogFile io.Writer

	mu sync.Mutex
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{
		Verbosity: 1,
		LogFile:   os.Stderr,
	}
}

// Logf writes a line to LogFile when Verbosity is at least level.
func (l *LogConfig) Logf(level int, format string, args ...interface{}) {
	if l == nil || l.LogFile == nil || l.Verbosity < level {
		return
	}
	line := fmt.Sprintf(format+"\n", args...)

	l.mu.Lock()
	defer l.mu.Unlock()
	io.WriteString(l.LogFile, line) //nolint:errcheck // diagnostics are best effort
}
