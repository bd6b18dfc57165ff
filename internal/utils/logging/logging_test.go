package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	var quiet, verbose bytes.Buffer

	New(false, zapcore.AddSync(&quiet)).Debugw("hidden", "k", "v")
	New(true, zapcore.AddSync(&verbose)).Debugw("shown", "k", "v")

	assert.Empty(t, quiet.String())
	assert.Contains(t, verbose.String(), "shown")
	assert.Contains(t, verbose.String(), "DEBUG")
}
