// Package sklog is a small leveled-logging facade used throughout this
// module instead of calling a logging library directly. It lets call sites
// write sklog.Infof(...) without caring which backend is installed; the
// default backend is a logrus.Logger writing to stderr.
//
// This is a deliberately thin subset of the facade this code base used to
// carry: no pluggable structured-logging backends, just the leveled
// functions that every package here actually calls.
package sklog

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logger = newDefaultLogger()

func newDefaultLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

// SetLogger replaces the backend logger used by all future log calls.
// Intended for tests.
func SetLogger(l *logrus.Logger) {
	logger = l
}

func Debug(args ...interface{})                 { logger.Debug(args...) }
func Debugf(format string, args ...interface{}) { logger.Debugf(format, args...) }

func Info(args ...interface{})                 { logger.Info(args...) }
func Infof(format string, args ...interface{}) { logger.Infof(format, args...) }

func Warning(args ...interface{})                 { logger.Warn(args...) }
func Warningf(format string, args ...interface{}) { logger.Warnf(format, args...) }

func Error(args ...interface{})                 { logger.Error(args...) }
func Errorf(format string, args ...interface{}) { logger.Errorf(format, args...) }

// Fatal logs at fatal level and terminates the process, mirroring the
// severity the rest of this code base expects from a config-load failure.
func Fatal(args ...interface{})                 { logger.Fatal(args...) }
func Fatalf(format string, args ...interface{}) { logger.Fatalf(format, args...) }
