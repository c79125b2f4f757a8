package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/davecgh/go-spew/spew"

	"coco-prep/internal/config"
)

const flags = log.Ldate | log.Ltime

// Logger provides leveled logging (debug/info/warning/error) to stdout/stderr
// and, when a log directory is configured, to per-level files.
type Logger struct {
	debugLog   *log.Logger
	infoLog    *log.Logger
	warningLog *log.Logger
	errorLog   *log.Logger
	debug      bool
	files      []*os.File
	mu         sync.Mutex
}

// New creates a Logger for the given configuration, creating the log
// directory if one is set.
func New(cfg *config.Config) (*Logger, error) {
	if cfg.LogDirectory == "" {
		return NewWriter(os.Stdout, os.Stderr, cfg.Debug), nil
	}

	if err := os.MkdirAll(cfg.LogDirectory, 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	l := &Logger{debug: cfg.Debug}

	infoFile, err := l.openLogFile(filepath.Join(cfg.LogDirectory, "info.log"))
	if err != nil {
		return nil, err
	}

	warningFile, err := l.openLogFile(filepath.Join(cfg.LogDirectory, "warning.log"))
	if err != nil {
		l.Close()
		return nil, err
	}

	errorFile, err := l.openLogFile(filepath.Join(cfg.LogDirectory, "error.log"))
	if err != nil {
		l.Close()
		return nil, err
	}

	l.setupLoggers(
		io.MultiWriter(os.Stdout, infoFile),
		io.MultiWriter(os.Stdout, warningFile),
		io.MultiWriter(os.Stderr, errorFile),
	)

	return l, nil
}

// NewWriter creates a Logger writing info and warning entries to out and
// error entries to errOut.
func NewWriter(out, errOut io.Writer, debug bool) *Logger {
	l := &Logger{debug: debug}
	l.setupLoggers(out, out, errOut)

	return l
}

// setupLoggers initializes the per-level loggers.
func (l *Logger) setupLoggers(info, warning, errOut io.Writer) {
	l.debugLog = log.New(info, "DEBUG   ", flags)
	l.infoLog = log.New(info, "INFO    ", flags)
	l.warningLog = log.New(warning, "WARNING ", flags)
	l.errorLog = log.New(errOut, "ERROR   ", flags)
}

// openLogFile opens or creates a log file for appending.
func (l *Logger) openLogFile(filename string) (*os.File, error) {
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", filename, err)
	}

	l.files = append(l.files, file)

	return file, nil
}

// Debug writes a formatted debug-level log entry when debugging is enabled.
func (l *Logger) Debug(format string, v ...any) {
	if !l.debug {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.debugLog.Printf(format, v...)
}

// Dump writes a spew dump of v at debug level.
func (l *Logger) Dump(label string, v any) {
	if !l.debug {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.debugLog.Printf("%s:\n%s", label, spew.Sdump(v))
}

// Info writes a formatted info-level log entry.
func (l *Logger) Info(format string, v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infoLog.Printf(format, v...)
}

// Warning writes a formatted warning-level log entry.
func (l *Logger) Warning(format string, v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warningLog.Printf(format, v...)
}

// Error writes a formatted error-level log entry.
func (l *Logger) Error(format string, v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errorLog.Printf(format, v...)
}

// Close closes the log files, if any.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var firstErr error

	for _, f := range l.files {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	l.files = nil

	return firstErr
}
