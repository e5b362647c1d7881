package log

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewDebugLogger records all messages in memory, it is used in tests.
// Reading any messages truncates the buffer.
func NewDebugLogger() DebugLogger {
	recorder := &recorder{}
	core := &memoryCore{recorder: recorder, LevelEnabler: DebugLevel}
	return &debugLogger{zapLogger: loggerFromZap(zap.New(core)), recorder: recorder}
}

type debugLogger struct {
	*zapLogger
	recorder *recorder
}

type record struct {
	level   zapcore.Level
	message string
}

func (r record) String() string {
	return fmt.Sprintf("%s  %s\n", r.level.CapitalString(), r.message)
}

type recorder struct {
	lock    sync.Mutex
	records []record
	mirror  io.Writer
}

func (r *recorder) add(level zapcore.Level, message string) {
	r.lock.Lock()
	defer r.lock.Unlock()
	rec := record{level: level, message: message}
	r.records = append(r.records, rec)
	if r.mirror != nil {
		_, _ = r.mirror.Write([]byte(rec.String()))
	}
}

type memoryCore struct {
	zapcore.LevelEnabler
	recorder *recorder
}

func (c *memoryCore) With(fields []zapcore.Field) zapcore.Core {
	return c
}

func (c *memoryCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}
	return checked
}

func (c *memoryCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	c.recorder.add(entry.Level, entry.Message)
	return nil
}

func (c *memoryCore) Sync() error {
	return nil
}

// ConnectTo mirrors all future messages to the writer.
func (l *debugLogger) ConnectTo(writer io.Writer) {
	l.recorder.lock.Lock()
	defer l.recorder.lock.Unlock()
	l.recorder.mirror = writer
}

func (l *debugLogger) Truncate() {
	l.recorder.lock.Lock()
	defer l.recorder.lock.Unlock()
	l.recorder.records = nil
}

func (l *debugLogger) AllMessages() string {
	return l.messages(func(level zapcore.Level) bool { return true })
}

func (l *debugLogger) DebugMessages() string {
	return l.messages(func(level zapcore.Level) bool { return level == DebugLevel })
}

func (l *debugLogger) InfoMessages() string {
	return l.messages(func(level zapcore.Level) bool { return level == InfoLevel })
}

func (l *debugLogger) WarnMessages() string {
	return l.messages(func(level zapcore.Level) bool { return level == WarnLevel })
}

func (l *debugLogger) WarnAndErrorMessages() string {
	return l.messages(func(level zapcore.Level) bool { return level >= WarnLevel })
}

func (l *debugLogger) ErrorMessages() string {
	return l.messages(func(level zapcore.Level) bool { return level == ErrorLevel })
}

func (l *debugLogger) messages(match func(level zapcore.Level) bool) string {
	l.recorder.lock.Lock()
	defer l.recorder.lock.Unlock()
	var out strings.Builder
	for _, rec := range l.recorder.records {
		if match(rec.level) {
			out.WriteString(rec.String())
		}
	}
	l.recorder.records = nil
	return out.String()
}
