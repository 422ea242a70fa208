package lumen

import (
	"io"
	"os"
	"sync"

	"github.com/op/go-logging"
)

type Logger interface {
	DebugEnabled() bool
	SetDebug(enabled bool)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

var (
	colorFormat = logging.MustStringFormatter(
		`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
	)
	plainFormat = logging.MustStringFormatter(
		`[%{time:15:04:05.000}] [%{module}] [%{level}] %{message}`,
	)
)

// DefaultLogger is a go-logging logger with its own leveled backend, so several
// apps in one process can log at different levels.
type DefaultLogger struct {
	mu      sync.Mutex
	debug   bool
	module  string
	log     *logging.Logger
	backend logging.LeveledBackend
}

// NewDefaultLogger logs to stderr with colored levels.
func NewDefaultLogger(module string, debug bool) *DefaultLogger {
	return newLogger(os.Stderr, colorFormat, module, debug)
}

// NewLoggerTo logs to w without color codes.
func NewLoggerTo(w io.Writer, module string, debug bool) *DefaultLogger {
	return newLogger(w, plainFormat, module, debug)
}

func newLogger(w io.Writer, format logging.Formatter, module string, debug bool) *DefaultLogger {
	if module == "" {
		module = "lumen"
	}
	backend := logging.AddModuleLevel(logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), format))
	log := logging.MustGetLogger(module)
	log.SetBackend(backend)

	l := &DefaultLogger{module: module, log: log, backend: backend}
	l.SetDebug(debug)
	return l
}

func (l *DefaultLogger) DebugEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debug
}

func (l *DefaultLogger) SetDebug(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debug = enabled
	if enabled {
		l.backend.SetLevel(logging.DEBUG, l.module)
	} else {
		l.backend.SetLevel(logging.INFO, l.module)
	}
}

// SetQuiet drops everything below warnings.
func (l *DefaultLogger) SetQuiet() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debug = false
	l.backend.SetLevel(logging.WARNING, l.module)
}

func (l *DefaultLogger) Debugf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.log.Debugf(format, args...)
}

func (l *DefaultLogger) Infof(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.log.Infof(format, args...)
}

func (l *DefaultLogger) Warnf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.log.Warningf(format, args...)
}

func (l *DefaultLogger) Errorf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.log.Errorf(format, args...)
}

// LoggingModule installs a logger as a resource. Logger wins over Module and Debug
// when set.
type LoggingModule struct {
	Module string
	Debug  bool
	Logger *DefaultLogger
}

func (m LoggingModule) Install(app *App, cmd *Commands) {
	logger := m.Logger
	if logger == nil {
		logger = NewDefaultLogger(m.Module, m.Debug)
	}
	cmd.AddResources(logger)
}

type nopLogger struct{}

func NewNopLogger() Logger { return &nopLogger{} }

func (n *nopLogger) DebugEnabled() bool                { return false }
func (n *nopLogger) SetDebug(enabled bool)             {}
func (n *nopLogger) Debugf(format string, args ...any) {}
func (n *nopLogger) Infof(format string, args ...any)  {}
func (n *nopLogger) Warnf(format string, args ...any)  {}
func (n *nopLogger) Errorf(format string, args ...any) {}

// Logger returns the first Logger resource if present, otherwise a no-op logger.
// Never returns nil.
func (app *App) Logger() Logger {
	if app == nil {
		return NewNopLogger()
	}
	for _, r := range app.resources {
		if l, ok := r.(Logger); ok {
			return l
		}
	}
	return NewNopLogger()
}
