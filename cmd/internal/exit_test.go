package internal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	origOut, origExit := Output, exit
	t.Cleanup(func() {
		Output, exit = origOut, origExit
		SetVerbose(false)
	})
	Output = &buf
	return &buf
}

func TestEcho(t *testing.T) {
	buf := capture(t)
	Echo("value: %d", 5)
	Echo("already terminated\n")
	assert.Equal(t, "value: 5\nalready terminated\n", buf.String())
}

func TestDebug(t *testing.T) {
	buf := capture(t)
	Debug("hidden")
	assert.Empty(t, buf.String())

	SetVerbose(true)
	Debug("shown")
	assert.Equal(t, "shown\n", buf.String())
}

func TestFatal(t *testing.T) {
	buf := capture(t)
	var code int
	exit = func(c int) {
		code = c
	}
	Fatal("failed: %v", "reason")
	assert.Equal(t, 1, code)
	assert.Equal(t, "failed: reason\n", buf.String())
}
