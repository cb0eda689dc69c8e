// Package logger configures the process-wide zerolog logger. The terminal
// belongs to the timer display while it runs, so log lines go to a file.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

const timeFormat = "2006-01-02T15:04:05.000Z07:00"

var (
	mu  sync.Mutex
	log = zerolog.Nop()
)

// Configure points the logger at w. Subsequent calls replace the sink.
func Configure(w io.Writer, level zerolog.Level) *zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: timeFormat,
	}

	mu.Lock()
	defer mu.Unlock()
	log = zerolog.New(output).Level(level).With().Timestamp().Logger()
	return &log
}

// OpenFile configures the logger to append to path, creating parent
// directories. The returned function closes the file.
func OpenFile(path string, level zerolog.Level) (func() error, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	Configure(f, level)
	return f.Close, nil
}

// Get returns the current logger. It discards everything until configured.
func Get() *zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	l := log
	return &l
}
