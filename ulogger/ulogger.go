// Package ulogger is the logging facade used by the decoder tooling. The core parsers never log;
// adapters and command line tools take a Logger.
package ulogger

import "strings"

// DefaultService names loggers created with an empty service.
const DefaultService = "bsl"

// Logger types accepted by WithLoggerType and the loggerType setting.
const (
	LoggerTypeZerolog = "zerolog"
	LoggerTypeGoCore  = "gocore"
)

type Logger interface {
	LogLevel() int
	SetLogLevel(level string)
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
	New(service string, options ...Option) Logger
	Duplicate(options ...Option) Logger
}

var backends = map[string]func(service string, options ...Option) Logger{
	LoggerTypeZerolog: func(service string, options ...Option) Logger {
		return NewZeroLogger(service, options...)
	},
	LoggerTypeGoCore: func(service string, options ...Option) Logger {
		return NewGoCoreLogger(service, options...)
	},
}

// New returns a logger of the type selected by WithLoggerType. Unknown types get zerolog.
func New(service string, options ...Option) Logger {
	opts := applyOptions(DefaultOptions(), options)

	newLogger, ok := backends[strings.ToLower(opts.loggerType)]
	if !ok {
		newLogger = backends[LoggerTypeZerolog]
	}

	return newLogger(serviceOrDefault(service), options...)
}

func serviceOrDefault(service string) string {
	if service == "" {
		return DefaultService
	}

	return service
}
