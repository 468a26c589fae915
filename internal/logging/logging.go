// Package logging builds the zap logger shared by renewstat commands.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger on stderr. Debug entries are emitted only
// when verbose is set.
func New(verbose bool) *zap.Logger {
	return NewWithSink(zapcore.Lock(os.Stderr), verbose)
}

// NewWithSink is New with a caller-supplied writer.
func NewWithSink(sink zapcore.WriteSyncer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encCfg.CallerKey = ""

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), sink, level)
	return zap.New(core)
}
