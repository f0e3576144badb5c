package utils

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type LogLevel string

const (
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info"
	LevelWarn  LogLevel = "warn"
	LevelError LogLevel = "error"
)

type Logger struct {
	logger     *logrus.Logger
	RawBodyLog bool
}

func NewLogger(level string, rawBodyLog bool) *Logger {
	return newLogger(os.Stderr, level, rawBodyLog)
}

// NewWriterLogger logs to out instead of stderr.
func NewWriterLogger(out io.Writer, level string, rawBodyLog bool) *Logger {
	return newLogger(out, level, rawBodyLog)
}

func NewDiscardLogger() *Logger {
	return newLogger(io.Discard, string(LevelInfo), false)
}

func newLogger(out io.Writer, level string, rawBodyLog bool) *Logger {
	logLevel := parseLogLevel(level)

	return &Logger{
		logger: &logrus.Logger{
			Out: out,
			Formatter: &logrus.TextFormatter{
				FullTimestamp:   true,
				TimestampFormat: "2006-01-02 15:04:05",
			},
			Hooks: make(logrus.LevelHooks),
			Level: toLogrusLevel(logLevel),
		},
		RawBodyLog: rawBodyLog,
	}
}

func parseLogLevel(level string) LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func toLogrusLevel(level LogLevel) logrus.Level {
	switch level {
	case LevelDebug:
		return logrus.DebugLevel
	case LevelWarn:
		return logrus.WarnLevel
	case LevelError:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// entry tags the log line with the request id when one is given.
func (l *Logger) entry(reqID *string) *logrus.Entry {
	e := logrus.NewEntry(l.logger)
	if reqID != nil && *reqID != "" {
		e = e.WithField("req_id", *reqID)
	}
	return e
}

func (l *Logger) Info(reqID *string, format string, v ...any) {
	l.entry(reqID).Infof(format, v...)
}

func (l *Logger) Warn(reqID *string, format string, v ...any) {
	l.entry(reqID).Warnf(format, v...)
}

func (l *Logger) Error(reqID *string, format string, v ...any) {
	l.entry(reqID).Errorf(format, v...)
}

func (l *Logger) Debug(reqID *string, format string, v ...any) {
	l.entry(reqID).Debugf(format, v...)
}

func (l *Logger) Fatal(v ...any) {
	l.logger.Fatal(v...)
}
