//go:build !release

package log

import (
	"bytes"
	stdlog "log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := stdlog.Writer()
	stdlog.SetOutput(&buf)
	t.Cleanup(func() { stdlog.SetOutput(prev) })
	return &buf
}

func TestPrintfSingleLine(t *testing.T) {
	buf := captureOutput(t)

	Printf("failed to set wallpaper: %s", "exit status 1")

	assert.Equal(t, "rwall: failed to set wallpaper: exit status 1\n", buf.String())
}

func TestDebugfHonoursFlag(t *testing.T) {
	buf := captureOutput(t)
	old := debug
	t.Cleanup(func() { debug = old })

	debug = false
	Debugf("hidden %d", 1)
	assert.Empty(t, buf.String())

	debug = true
	Debugf("shown %d", 2)
	assert.Contains(t, buf.String(), "[DEBUG] shown 2")
}
