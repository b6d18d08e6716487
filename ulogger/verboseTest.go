package ulogger

import (
	"strings"
	"sync"
	"testing"
)

const (
	verboseDebug = iota
	verboseInfo
	verboseWarn
	verboseError
)

// VerboseTestLogger writes every message at or above its level to the test log, prefixed with
// the service name.
type VerboseTestLogger struct {
	t       testing.TB
	service string
	level   int
	mutex   *sync.Mutex
}

func NewVerboseTestLogger(t testing.TB) *VerboseTestLogger {
	return &VerboseTestLogger{t: t, service: "test", level: verboseDebug, mutex: &sync.Mutex{}}
}

func (l *VerboseTestLogger) LogLevel() int {
	return l.level
}

func (l *VerboseTestLogger) SetLogLevel(level string) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		l.level = verboseDebug
	case "WARN":
		l.level = verboseWarn
	case "ERROR", "FATAL":
		l.level = verboseError
	default:
		l.level = verboseInfo
	}
}

// New returns a logger sharing the test and the lock, with its own service prefix.
func (l *VerboseTestLogger) New(service string, options ...Option) Logger {
	child := &VerboseTestLogger{t: l.t, service: service, level: l.level, mutex: l.mutex}

	opts := &Options{}
	for _, o := range options {
		o(opts)
	}

	if opts.logLevel != "" {
		child.SetLogLevel(opts.logLevel)
	}

	return child
}

func (l *VerboseTestLogger) Duplicate(options ...Option) Logger {
	return l.New(l.service, options...)
}

func (l *VerboseTestLogger) Debugf(format string, args ...interface{}) {
	l.log(verboseDebug, "DEBUG", format, args...)
}

func (l *VerboseTestLogger) Infof(format string, args ...interface{}) {
	l.log(verboseInfo, "INFO", format, args...)
}

func (l *VerboseTestLogger) Warnf(format string, args ...interface{}) {
	l.log(verboseWarn, "WARN", format, args...)
}

func (l *VerboseTestLogger) Errorf(format string, args ...interface{}) {
	l.log(verboseError, "ERROR", format, args...)
}

func (l *VerboseTestLogger) Fatalf(format string, args ...interface{}) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.t.Fatalf("[FATAL] ["+l.service+"] "+format, args...)
}

func (l *VerboseTestLogger) log(level int, name, format string, args ...interface{}) {
	if level < l.level {
		return
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.t.Helper()
	l.t.Logf("["+name+"] ["+l.service+"] "+format, args...)
}
