// Package log prints diagnostics to standard error through a process-wide
// zap logger.
package log

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var level = zap.NewAtomicLevelAt(zapcore.WarnLevel)

func init() {
	zap.ReplaceGlobals(newLogger(os.Stderr))
}

// Init redirects diagnostics to w at the named level (debug, info, warn or error).
func Init(w io.Writer, lvl string) error {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(lvl)); err != nil {
		return errors.Wrapf(err, "invalid log level %q", lvl)
	}
	level.SetLevel(l)
	zap.ReplaceGlobals(newLogger(w))
	return nil
}

func newLogger(w io.Writer) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	enc.NameKey = ""
	enc.CallerKey = ""
	enc.StacktraceKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)
	return zap.New(core)
}

func Debug(format string, args ...interface{}) {
	zap.S().Debugf(format, args...)
}

func Info(format string, args ...interface{}) {
	zap.S().Infof(format, args...)
}

func Warn(format string, args ...interface{}) {
	zap.S().Warnf(format, args...)
}

func Error(format string, args ...interface{}) {
	zap.S().Errorf(format, args...)
}

// Sync flushes buffered entries.
func Sync() {
	_ = zap.L().Sync()
}
