package errors

import (
	"fmt"
	"runtime"
	"strings"
	"unicode"
)

// FormatConfig is built from FormatOption values, see Format.
type FormatConfig struct {
	WithStack   bool
	WithUnwrap  bool
	AsSentences bool
}

type FormatOption func(*FormatConfig)

// MessageFormatter formats each error message according to the FormatConfig.
type MessageFormatter func(msg string, trace StackTrace, config FormatConfig) string

// PrefixFormatter formats a prefix followed by a list of errors, see defaultPrefixFormatter.
type PrefixFormatter func(prefix string) string

// FormatWithStack output includes the call site of each error, it implies FormatWithUnwrap.
func FormatWithStack() FormatOption {
	return func(c *FormatConfig) {
		c.WithStack = true
		c.WithUnwrap = true
	}
}

// FormatWithUnwrap output includes also wrapped errors.
func FormatWithUnwrap() FormatOption {
	return func(c *FormatConfig) {
		c.WithUnwrap = true
	}
}

// FormatAsSentences output starts each message with an upper-case letter and ends it with a dot.
func FormatAsSentences() FormatOption {
	return func(c *FormatConfig) {
		c.AsSentences = true
	}
}

func Format(err error, opts ...FormatOption) string {
	w := NewWriter(defaultMessageFormatter, defaultPrefixFormatter, opts...)
	w.WriteError(err)
	return w.String()
}

func defaultMessageFormatter(msg string, trace StackTrace, config FormatConfig) string {
	if config.AsSentences {
		msg = toSentence(msg)
	}
	if config.WithStack && len(trace) > 0 {
		frame := trace[0]
		fn := runtime.FuncForPC(frame)
		file, line := fn.FileLine(frame)
		msg = fmt.Sprintf("%s [%s:%d]", msg, file, line)
	}
	return msg
}

func defaultPrefixFormatter(prefix string) string {
	return strings.TrimRight(prefix, ".,:") + ":"
}

func toSentence(msg string) string {
	runes := []rune(msg)
	if len(runes) == 0 {
		return msg
	}
	runes[0] = unicode.ToUpper(runes[0])
	msg = string(runes)
	if last := runes[len(runes)-1]; unicode.IsLetter(last) || unicode.IsDigit(last) {
		msg += "."
	}
	return msg
}
