package accesslog

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestRecordAppendsRows(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "access_log.csv")
	l := New(path, true, discardLogger())

	l.Record("203.0.113.7", "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin")
	l.Record("198.51.100.2", "4Nd1mYvM6K2KcwDeFgHjQp8ZsQvWcrWnXk3zB5tLaGqE")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "203.0.113.7", rows[0][1])
	assert.Equal(t, "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin", rows[0][2])
	assert.Equal(t, "198.51.100.2", rows[1][1])

	_, err = time.Parse(time.RFC3339, rows[0][0])
	assert.NoError(t, err, "first column should be an RFC3339 timestamp")
}

func TestDisabledLoggerWritesNothing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "access_log.csv")
	l := New(path, false, discardLogger())

	l.Record("203.0.113.7", "some-address")

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestRecordFailureDoesNotPanic(t *testing.T) {
	t.Parallel()

	// Point the log at a path whose parent is a file, so the append fails.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	l := New(filepath.Join(blocker, "access_log.csv"), true, discardLogger())
	assert.NotPanics(t, func() {
		l.Record("203.0.113.7", "some-address")
	})
}
