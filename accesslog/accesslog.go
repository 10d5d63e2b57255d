// Package accesslog appends one CSV row per logged wallet-info request.
package accesslog

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger writes an append-only CSV access log. A nil *Logger is a no-op, so
// callers never have to branch on whether logging is enabled.
type Logger struct {
	path string
	log  *logrus.Logger
}

// New creates an access logger writing to path, or nil when disabled.
func New(path string, enabled bool, log *logrus.Logger) *Logger {
	if !enabled {
		return nil
	}
	return &Logger{path: path, log: log}
}

// Record appends one row: RFC3339 UTC timestamp, client IP, queried address.
// Failures are logged and never surfaced to the request; each call is a
// single O_APPEND write, so concurrent requests interleave safely.
func (l *Logger) Record(clientIP, address string) {
	if l == nil {
		return
	}
	if err := l.append(clientIP, address); err != nil {
		l.log.WithError(err).Warn("access log write failed")
	}
}

func (l *Logger) append(clientIP, address string) error {
	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{time.Now().UTC().Format(time.RFC3339), clientIP, address}); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
