package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide logger. It discards everything until Init is called.
var Logger = zap.NewNop().Sugar()

// Init points Logger at stderr. Warnings and errors are always shown; debug
// enables the rest. Stdout is left to command output.
func Init(debug bool) *zap.SugaredLogger {
	Logger = New(debug, zapcore.Lock(os.Stderr))
	return Logger
}

// New builds a console logger writing to w.
func New(debug bool, w zapcore.WriteSyncer) *zap.SugaredLogger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	level := zap.WarnLevel
	if debug {
		level = zap.DebugLevel
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), w, level)
	return zap.New(core).Sugar()
}
