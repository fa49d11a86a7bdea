// Package logging provides the process-wide zap logger for salvage.
// Loggers are split by category so discovery, extraction and watch output
// can be told apart on stderr. Verbosity maps onto a level threshold once
// at startup; after Initialize the configuration is read-only.
package logging

import (
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot     Category = "boot"     // Startup and flag handling
	CategoryDiscover Category = "discover" // Directory listing and pattern matching
	CategoryExtract  Category = "extract"  // Asset parsing and field navigation
	CategoryScan     Category = "scan"     // Scan passes and printing
	CategoryWatch    Category = "watch"    // Directory watching
)

// TraceLevel sits below zap's DebugLevel. It carries full document dumps.
const TraceLevel = zapcore.DebugLevel - 1

var (
	global     *zap.Logger
	globalOnce sync.Once
	globalMu   sync.RWMutex
)

// LevelForVerbosity maps the number of -v flags onto a level threshold:
// 0=error, 1=info, 2=debug, 3 or more=trace.
func LevelForVerbosity(n int) zapcore.Level {
	switch {
	case n <= 0:
		return zapcore.ErrorLevel
	case n == 1:
		return zapcore.InfoLevel
	case n == 2:
		return zapcore.DebugLevel
	default:
		return TraceLevel
	}
}

// New builds a console logger writing to w at the given threshold.
func New(level zapcore.Level, w io.Writer) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = encodeLevel
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(level),
	)
	return zap.New(core)
}

func encodeLevel(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	if l == TraceLevel {
		enc.AppendString("TRACE")
		return
	}
	zapcore.CapitalLevelEncoder(l, enc)
}

// Initialize sets up the process-wide logger on stderr.
// Only the first call has any effect.
func Initialize(level zapcore.Level) *zap.Logger {
	globalOnce.Do(func() {
		globalMu.Lock()
		global = New(level, os.Stderr)
		globalMu.Unlock()
	})
	return L()
}

// L returns the process-wide logger, or a no-op logger before Initialize.
func L() *zap.Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if global == nil {
		return zap.NewNop()
	}
	return global
}

// Get returns the process-wide logger named for category.
func Get(category Category) *zap.Logger {
	return L().Named(string(category))
}

// Trace logs msg at TraceLevel.
func Trace(logger *zap.Logger, msg string, fields ...zap.Field) {
	if ce := logger.Check(TraceLevel, msg); ce != nil {
		ce.Write(fields...)
	}
}

// Sync flushes the process-wide logger. Errors from syncing a terminal
// are not interesting at shutdown and are dropped.
func Sync() {
	_ = L().Sync()
}
