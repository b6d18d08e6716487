package ulogger

import (
	"strings"

	"github.com/ordishs/gocore"
)

// GoCoreLogger writes through gocore, which also exposes the service on its runtime settings
// socket. gocore keeps one logger per service and fixes its level on first use, so the level is
// held here and checked before a message reaches gocore.
type GoCoreLogger struct {
	log     *gocore.Logger
	service string
	level   int
}

func NewGoCoreLogger(service string, options ...Option) *GoCoreLogger {
	opts := applyOptions(DefaultOptions(), options)
	service = serviceOrDefault(service)

	return &GoCoreLogger{
		log:     gocore.Log(service, gocore.DEBUG),
		service: service,
		level:   goCoreLevel(opts.logLevel),
	}
}

// goCoreLevel maps a level name onto gocore's numbering. Unknown names mean INFO, as for zerolog.
func goCoreLevel(level string) int {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return int(gocore.DEBUG)
	case "WARN", "WARNING":
		return int(gocore.WARN)
	case "ERROR":
		return int(gocore.ERROR)
	case "FATAL":
		return int(gocore.FATAL)
	case "PANIC":
		return int(gocore.PANIC)
	default:
		return int(gocore.INFO)
	}
}

func (g *GoCoreLogger) levelName() string {
	return gocoreLevelNames[g.level]
}

var gocoreLevelNames = map[int]string{
	int(gocore.DEBUG): "DEBUG",
	int(gocore.INFO):  "INFO",
	int(gocore.WARN):  "WARN",
	int(gocore.ERROR): "ERROR",
	int(gocore.FATAL): "FATAL",
	int(gocore.PANIC): "PANIC",
}

// Service returns the gocore package name the logger writes under.
func (g *GoCoreLogger) Service() string {
	return g.service
}

// New returns a logger for service that inherits g's level unless WithLevel overrides it.
func (g *GoCoreLogger) New(service string, options ...Option) Logger {
	return NewGoCoreLogger(service, append([]Option{WithLevel(g.levelName())}, options...)...)
}

func (g *GoCoreLogger) Duplicate(options ...Option) Logger {
	return g.New(g.service, options...)
}

func (g *GoCoreLogger) SetLogLevel(level string) {
	g.level = goCoreLevel(level)
}

func (g *GoCoreLogger) LogLevel() int {
	return g.level
}

func (g *GoCoreLogger) enabled(level int) bool {
	return level >= g.level
}

func (g *GoCoreLogger) Debugf(format string, args ...interface{}) {
	if g.enabled(int(gocore.DEBUG)) {
		g.log.Debugf(format, args...)
	}
}

func (g *GoCoreLogger) Infof(format string, args ...interface{}) {
	if g.enabled(int(gocore.INFO)) {
		g.log.Infof(format, args...)
	}
}

func (g *GoCoreLogger) Warnf(format string, args ...interface{}) {
	if g.enabled(int(gocore.WARN)) {
		g.log.Warnf(format, args...)
	}
}

func (g *GoCoreLogger) Errorf(format string, args ...interface{}) {
	if g.enabled(int(gocore.ERROR)) {
		g.log.Errorf(format, args...)
	}
}

// Fatalf always reaches gocore, which exits the process.
func (g *GoCoreLogger) Fatalf(format string, args ...interface{}) {
	g.log.Fatalf(format, args...)
}
