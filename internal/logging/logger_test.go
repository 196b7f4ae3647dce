// file: internal/logging/logger_test.go
// version: 2.0.0
// guid: 5a8c3e17-d2b9-4f06-8e41-7c0b9d6a2e53

package logging

import (
	"bytes"
	"errors"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// captureLog redirects the standard logger for the duration of fn.
func captureLog(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	prev := Level()
	defer func() {
		log.SetOutput(os.Stderr)
		SetLevel(prev)
	}()
	fn()
	return buf.String()
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("debug"))
	assert.Equal(t, InfoLevel, ParseLevel("INFO"))
	assert.Equal(t, WarnLevel, ParseLevel("warning"))
	assert.Equal(t, ErrorLevel, ParseLevel(" error "))
	assert.Equal(t, InfoLevel, ParseLevel("nonsense"))
}

func TestLevelFiltering(t *testing.T) {
	out := captureLog(t, func() {
		SetLevel(WarnLevel)
		Debugf("hidden %d", 1)
		Infof("hidden %d", 2)
		Warnf("shown %d", 3)
		Errorf("shown %d", 4)
	})

	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN] shown 3")
	assert.Contains(t, out, "[ERROR] shown 4")
}

func TestServiceLogger(t *testing.T) {
	out := captureLog(t, func() {
		SetLevel(DebugLevel)
		sl := NewServiceLogger("catalog", "req-1")
		sl.LogOperation("Reconcile", map[string]any{"isbn": "123"})
		sl.LogWarning("Fetch", "no match")
		sl.LogError("Persist", errors.New("disk full"))
		sl.LogDebug("Validate", "trimmed input")
		assert.Equal(t, "req-1", sl.RequestID())
	})

	assert.Contains(t, out, "[SERVICE] catalog.Reconcile map[isbn:123] [request-id: req-1]")
	assert.Contains(t, out, "[SERVICE-WARN] catalog.Fetch: no match")
	assert.Contains(t, out, "[SERVICE-ERROR] catalog.Persist: disk full")
	assert.Contains(t, out, "[SERVICE-DEBUG] catalog.Validate: trimmed input")
}

func TestLogDatabaseOperation(t *testing.T) {
	out := captureLog(t, func() {
		SetLevel(DebugLevel)
		LogDatabaseOperation("insert", "books", time.Millisecond, 1, nil)
		LogDatabaseOperation("insert", "books", time.Millisecond, 0, errors.New("constraint"))
	})

	assert.Contains(t, out, "[DB] insert on books completed")
	assert.Contains(t, out, "[DB-ERROR] insert on books failed")
}

func TestLogProviderCall(t *testing.T) {
	out := captureLog(t, func() {
		SetLevel(InfoLevel)
		LogProviderCall("Google Books", "9780143127741", time.Millisecond, nil)
		LogProviderCall("Google Books", "9780143127741", time.Millisecond, errors.New("timeout"))
	})

	assert.NotContains(t, out, "[PROVIDER] ")
	assert.Contains(t, out, "[PROVIDER-ERROR] Google Books lookup for 9780143127741 failed")
}
