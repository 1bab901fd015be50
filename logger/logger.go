// Package logger provides structured logging over logrus with a compact terminal formatter
package logger

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// Logger is the logging surface used across the module
type Logger interface {
	Debug(message string, fields ...Field)
	Info(message string, fields ...Field)
	Warn(message string, fields ...Field)
	Error(message string, fields ...Field)

	// With returns a child logger carrying the given fields on every entry
	With(fields ...Field) Logger
}

// Field represents a structured logging field
type Field struct {
	Key   string
	Value any
}

// F creates a new field
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Formatter renders entries as "time LEVEL [component] message {k=v, ...}"
type Formatter struct {
	TimestampFormat string
	DisableColors   bool
}

// Format implements logrus.Formatter
func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	var levelColor *color.Color
	switch entry.Level {
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		levelColor = color.New(color.FgRed, color.Bold)
	case logrus.WarnLevel:
		levelColor = color.New(color.FgYellow, color.Bold)
	case logrus.InfoLevel:
		levelColor = color.New(color.FgCyan)
	default:
		levelColor = color.New(color.FgWhite, color.Faint)
	}
	levelText := strings.ToUpper(entry.Level.String())

	paint := func(c *color.Color, s string) string {
		if f.DisableColors {
			return s
		}
		return c.Sprint(s)
	}

	var b strings.Builder
	b.WriteString(entry.Time.Format(f.TimestampFormat))
	b.WriteByte(' ')
	b.WriteString(paint(levelColor, levelText))
	b.WriteByte(' ')

	if comp, ok := entry.Data["component"]; ok {
		b.WriteString(paint(color.New(color.FgBlue), fmt.Sprintf("[%v] ", comp)))
	}
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		if k != "component" {
			keys = append(keys, k)
		}
	}
	if len(keys) > 0 {
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = fmt.Sprintf("%s=%v", k, entry.Data[k])
		}
		b.WriteString(paint(color.New(color.FgWhite, color.Faint), " {"+strings.Join(parts, ", ")+"}"))
	}
	b.WriteByte('\n')

	return []byte(b.String()), nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

type entryLogger struct {
	entry *logrus.Entry
}

// New creates a logger writing to file, or discarding output when file is empty
// The terminal belongs to the renderer while a scene is on screen, so stdout is never used
// The returned closer releases the log file
func New(file, level string) (Logger, io.Closer, error) {
	log := logrus.New()
	log.SetLevel(parseLevel(level))
	log.SetFormatter(&Formatter{TimestampFormat: "15:04:05.000", DisableColors: true})

	if file == "" {
		log.SetOutput(io.Discard)
		return &entryLogger{entry: logrus.NewEntry(log)}, nopCloser{}, nil
	}

	fh, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", file, err)
	}
	log.SetOutput(fh)
	return &entryLogger{entry: logrus.NewEntry(log)}, fh, nil
}

// NewWithOutput creates a logger with custom output and colors disabled (for testing and CLI)
func NewWithOutput(output io.Writer, level string) Logger {
	log := logrus.New()
	log.SetLevel(parseLevel(level))
	log.SetFormatter(&Formatter{TimestampFormat: "15:04:05", DisableColors: true})
	log.SetOutput(output)
	return &entryLogger{entry: logrus.NewEntry(log)}
}

// Discard returns a logger that drops everything, the default for library callers
func Discard() Logger {
	return NewWithOutput(io.Discard, "error")
}

// Component tags a logger with the subsystem name rendered in brackets
func Component(l Logger, name string) Logger {
	return l.With(F("component", name))
}

func parseLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

func (l *entryLogger) fields(fields []Field) *logrus.Entry {
	if len(fields) == 0 {
		return l.entry
	}
	data := make(logrus.Fields, len(fields))
	for _, f := range fields {
		data[f.Key] = f.Value
	}
	return l.entry.WithFields(data)
}

func (l *entryLogger) Debug(message string, fields ...Field) {
	l.fields(fields).Debug(message)
}

func (l *entryLogger) Info(message string, fields ...Field) {
	l.fields(fields).Info(message)
}

func (l *entryLogger) Warn(message string, fields ...Field) {
	l.fields(fields).Warn(message)
}

func (l *entryLogger) Error(message string, fields ...Field) {
	l.fields(fields).Error(message)
}

func (l *entryLogger) With(fields ...Field) Logger {
	return &entryLogger{entry: l.fields(fields)}
}
