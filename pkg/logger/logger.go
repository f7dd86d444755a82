// Package logger provides structured logging for the launcher.
// Output goes to stderr: stdout belongs to the engine.
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

// DefaultLevel keeps a successful launch silent
const DefaultLevel = "warn"

// Logger interface for abstracted logging
type Logger interface {
	Info(message string, fields ...Field)
	Error(message string, fields ...Field)
	Warn(message string, fields ...Field)
	Debug(message string, fields ...Field)
	WithComponent(component string) Logger
}

// Field represents a structured logging field
type Field struct {
	Key   string
	Value interface{}
}

// WithField creates a new field
func WithField(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// ComponentLogger implements Logger on top of logrus
type ComponentLogger struct {
	logger    *logrus.Logger
	component string
	file      *os.File
}

// CustomFormatter formats logs with colors
type CustomFormatter struct {
	TimestampFormat string
	DisableColors   bool
}

// Format implements logrus.Formatter
func (f *CustomFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestamp := entry.Time.Format(f.TimestampFormat)

	var levelColor *color.Color
	switch entry.Level {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		levelColor = color.New(color.FgRed, color.Bold)
	case logrus.WarnLevel:
		levelColor = color.New(color.FgYellow, color.Bold)
	case logrus.InfoLevel:
		levelColor = color.New(color.FgCyan)
	default:
		levelColor = color.New(color.FgWhite, color.Faint)
	}
	levelText := strings.ToUpper(entry.Level.String())

	data := make(logrus.Fields, len(entry.Data))
	for k, v := range entry.Data {
		data[k] = v
	}

	componentPrefix := ""
	if component, ok := data["component"]; ok {
		componentPrefix = fmt.Sprintf("[%v] ", component)
		if !f.DisableColors {
			componentPrefix = fmt.Sprintf("[%s] ", f.paint(color.New(color.FgBlue), component))
		}
		delete(data, "component")
	}

	if !f.DisableColors {
		levelText = f.paint(levelColor, levelText)
	}
	output := fmt.Sprintf("Ω [%s] %s: %s%s", timestamp, levelText, componentPrefix, entry.Message)

	if len(data) > 0 {
		keys := make([]string, 0, len(data))
		for k := range data {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		pairs := make([]string, 0, len(keys))
		for _, k := range keys {
			pairs = append(pairs, fmt.Sprintf("%s=%v", k, data[k]))
		}
		fields := " {" + strings.Join(pairs, ", ") + "}"
		if !f.DisableColors {
			fields = f.paint(color.New(color.FgWhite, color.Faint), fields)
		}
		output += fields
	}

	return []byte(output + "\n"), nil
}

// paint colors v with c even when color.NoColor is set.
func (f *CustomFormatter) paint(c *color.Color, v interface{}) string {
	c.EnableColor()
	return c.Sprint(v)
}

// CreateLogger creates a logger writing to stderr and, if logFile is set, appending to it.
// An unparsable level falls back to DefaultLevel. A log file that cannot be
// opened is reported as a warning and logging continues on stderr alone.
// Close the returned logger to release the file.
func CreateLogger(logFile string, logLevel string) *ComponentLogger {
	return newLogger(logFile, logLevel, os.Stderr, !IsTerminal(os.Stderr))
}

// CreateLoggerWithOutput creates a logger with custom output (for testing)
func CreateLoggerWithOutput(logFile string, logLevel string, output io.Writer) *ComponentLogger {
	return newLogger(logFile, logLevel, output, true)
}

func newLogger(logFile, logLevel string, output io.Writer, disableColors bool) *ComponentLogger {
	var file *os.File
	var openErr error
	if logFile != "" {
		file, openErr = os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr == nil {
			output = io.MultiWriter(output, file)
		}
	}

	log := logrus.New()

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level, _ = logrus.ParseLevel(DefaultLevel)
	}
	log.SetLevel(level)

	log.SetFormatter(&CustomFormatter{
		TimestampFormat: "15:04:05",
		DisableColors:   disableColors,
	})
	log.SetOutput(output)

	l := &ComponentLogger{logger: log, file: file}
	if openErr != nil {
		l.Warn("Failed to open log file",
			WithField("path", logFile),
			WithField("error", openErr))
	}
	return l
}

// Close releases the log file, if any. Loggers derived with WithComponent
// share it.
func (l *ComponentLogger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// WithComponent creates a new logger tagged with a component name
func (l *ComponentLogger) WithComponent(component string) Logger {
	return &ComponentLogger{
		logger:    l.logger,
		component: component,
		file:      l.file,
	}
}

func (l *ComponentLogger) convertFields(fields []Field) logrus.Fields {
	result := make(logrus.Fields, len(fields)+1)
	if l.component != "" {
		result["component"] = l.component
	}
	for _, f := range fields {
		result[f.Key] = f.Value
	}
	return result
}

// Info logs an info message
func (l *ComponentLogger) Info(message string, fields ...Field) {
	l.logger.WithFields(l.convertFields(fields)).Info(message)
}

// Error logs an error message
func (l *ComponentLogger) Error(message string, fields ...Field) {
	l.logger.WithFields(l.convertFields(fields)).Error(message)
}

// Warn logs a warning message
func (l *ComponentLogger) Warn(message string, fields ...Field) {
	l.logger.WithFields(l.convertFields(fields)).Warn(message)
}

// Debug logs a debug message
func (l *ComponentLogger) Debug(message string, fields ...Field) {
	l.logger.WithFields(l.convertFields(fields)).Debug(message)
}
