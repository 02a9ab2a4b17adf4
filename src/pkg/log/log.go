package log

import (
	"io"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Log wraps a logrus logger with the service name and a coarse level gate.
type Log struct {
	AppName  string
	LogLevel int
	Logger   *logrus.Logger
}

var logger Log

var mapOfLogLevel = map[string]int{
	"DEBUG": 1,
	"INFO":  1,
	"WARN":  2,
	"ERROR": 2,
}

// InitLogger initialize logger from Viper
func InitLogger(v *viper.Viper) {
	logger = New(v)
}

// GetLogger return singleton
func GetLogger() Log {
	return logger
}

func New(v *viper.Viper) Log {
	levelStr := strings.ToUpper(v.GetString("log.level"))
	return Log{
		AppName:  v.GetString("app.name"),
		LogLevel: mapOfLogLevel[levelStr],
		Logger:   newLogrusLogger(levelStr),
	}
}

// NewDiscard returns a logger that drops everything, used by tests.
func NewDiscard(appName string) Log {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return Log{AppName: appName, LogLevel: 1, Logger: l}
}

func newLogrusLogger(levelStr string) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)
	return l
}

func (l Log) fields(context, scope, meta string, skip int) logrus.Fields {
	_, file, line, _ := runtime.Caller(skip)
	return logrus.Fields{
		"service": l.AppName,
		"context": context,
		"scope":   scope,
		"meta":    meta,
		"file":    file,
		"line":    line,
	}
}

func (l Log) Info(context, message, scope, meta string) {
	if l.Logger == nil || l.LogLevel > 1 {
		return
	}
	l.Logger.WithFields(l.fields(context, scope, meta, 2)).Info(message)
}

func (l Log) Warn(context, message, scope, meta string) {
	if l.Logger == nil || l.LogLevel > 2 {
		return
	}
	l.Logger.WithFields(l.fields(context, scope, meta, 2)).Warn(message)
}

// Error also records the caller of the caller, which is usually the controller.
func (l Log) Error(context, message, scope, meta string) {
	if l.Logger == nil || l.LogLevel > 2 {
		return
	}
	f := l.fields(context, scope, meta, 2)
	_, file2, line2, _ := runtime.Caller(2)
	f["file2"] = file2
	f["line2"] = line2
	l.Logger.WithFields(f).Error(message)
}

func (l Log) Slow(context, message, scope, meta string) {
	if l.Logger == nil || l.LogLevel > 1 {
		return
	}
	l.Logger.WithFields(l.fields(context, scope, meta, 3)).Info("[SLOW] " + message)
}
