package ulogger

import (
	"io"
	"os"
)

type Options struct {
	logLevel   string
	loggerType string
	writer     io.Writer
	skip       int
	pretty     *bool
}

type Option func(*Options)

func applyOptions(opts *Options, options []Option) *Options {
	for _, o := range options {
		o(opts)
	}

	return opts
}

func DefaultOptions() *Options {
	return &Options{
		logLevel:   "INFO",
		loggerType: LoggerTypeZerolog,
		writer:     os.Stdout,
		skip:       0,
	}
}

// WithLevel sets the minimum level: DEBUG, INFO, WARN, ERROR, FATAL or PANIC.
func WithLevel(level string) Option {
	return func(o *Options) {
		o.logLevel = level
	}
}

// WithLoggerType selects the backend, "zerolog" (default) or "gocore".
func WithLoggerType(loggerType string) Option {
	return func(o *Options) {
		o.loggerType = loggerType
	}
}

func WithWriter(w io.Writer) Option {
	return func(o *Options) {
		o.writer = w
	}
}

func WithSkipFrame(skip int) Option {
	return func(o *Options) {
		o.skip = skip
	}
}

// WithPretty overrides the PRETTY_LOGS setting for this logger.
func WithPretty(pretty bool) Option {
	return func(o *Options) {
		o.pretty = &pretty
	}
}
