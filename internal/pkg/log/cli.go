// nolint:forbidigo // allow usage of the "zap" package
package log

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewCliLogger new production zapLogger.
// Debug and info messages go to stdout, warnings and errors to stderr.
// Debug messages are skipped unless verbose is set.
func NewCliLogger(stdout io.Writer, stderr io.Writer, verbose bool) Logger {
	cores := []zapcore.Core{
		stdoutCore(stdout, verbose),
		stderrCore(stderr),
	}
	return loggerFromZap(zap.New(zapcore.NewTee(cores...)))
}

// NewNopLogger drops all messages.
func NewNopLogger() Logger {
	return &zapLogger{SugaredLogger: zap.NewNop().Sugar()}
}

// stdoutCore writes debug (if verbose) and info messages to stdout, only the message itself.
func stdoutCore(stdout io.Writer, verbose bool) zapcore.Core {
	minLevel := InfoLevel
	if verbose {
		minLevel = DebugLevel
	}
	levels := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= minLevel && l < WarnLevel
	})
	return zapcore.NewCore(consoleEncoder(), zapcore.AddSync(stdout), levels)
}

// stderrCore writes warnings and errors to stderr, only the message itself.
func stderrCore(stderr io.Writer) zapcore.Core {
	levels := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= WarnLevel
	})
	return zapcore.NewCore(consoleEncoder(), zapcore.AddSync(stderr), levels)
}

func consoleEncoder() zapcore.Encoder {
	return zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:  "message",
		LineEnding:  zapcore.DefaultLineEnding,
		EncodeLevel: zapcore.CapitalLevelEncoder,
		EncodeTime:  zapcore.ISO8601TimeEncoder,
	})
}
