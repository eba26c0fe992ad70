// Package logging provides the leveled logger used by every lss command.
// Lines go to stderr so stdout carries only the report; --log appends an
// uncolored copy of each line to a file.
package logging

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/backmassage/lss/internal/config"
	"github.com/backmassage/lss/internal/term"
)

const (
	timeLayout   = "2006-01-02 15:04:05"
	successField = "success"
)

// Logger provides leveled, optionally colored logging with optional file sink.
type Logger struct {
	log  *logrus.Logger
	hook *fileHook
}

// NewLogger resolves colors from cfg and optionally opens cfg.LogFile.
// Call Close() when done if LogFile was set.
func NewLogger(cfg *config.Config) (*Logger, error) {
	term.Configure(cfg.ColorMode)
	return newLogger(os.Stderr, cfg.LogFile)
}

func newLogger(out io.Writer, logFile string) (*Logger, error) {
	l := &Logger{log: logrus.New()}
	l.log.SetOutput(out)
	l.log.SetLevel(logrus.DebugLevel)
	l.log.SetFormatter(&lineFormatter{color: true})

	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		l.hook = &fileHook{file: f, formatter: &lineFormatter{}}
		l.log.AddHook(l.hook)
	}
	return l, nil
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	if l.hook == nil {
		return nil
	}
	return l.hook.close()
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.log.Infof(format, args...)
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.log.WithField(successField, true).Infof(format, args...)
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log.Warnf(format, args...)
}

// Error logs at ERROR level (red).
func (l *Logger) Error(format string, args ...interface{}) {
	l.log.Errorf(format, args...)
}

// Debug logs at DEBUG level (cyan) only when verbose.
func (l *Logger) Debug(verbose bool, format string, args ...interface{}) {
	if !verbose {
		return
	}
	l.log.Debugf(format, args...)
}

// lineFormatter renders "2006-01-02 15:04:05 [LEVEL] message". With color
// set, the level tag is wrapped in the term colors (which are empty when
// colors are off).
type lineFormatter struct {
	color bool
}

func (f *lineFormatter) Format(e *logrus.Entry) ([]byte, error) {
	level, color := label(e)
	var b bytes.Buffer
	b.WriteString(e.Time.Format(timeLayout))
	b.WriteByte(' ')
	if f.color && color != "" {
		b.WriteString(color + "[" + level + "]" + term.NC)
	} else {
		b.WriteString("[" + level + "]")
	}
	b.WriteByte(' ')
	b.WriteString(e.Message)
	b.WriteByte('\n')
	return b.Bytes(), nil
}

func label(e *logrus.Entry) (string, string) {
	switch e.Level {
	case logrus.DebugLevel, logrus.TraceLevel:
		return "DEBUG", term.Cyan
	case logrus.WarnLevel:
		return "WARN", term.Yellow
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return "ERROR", term.Red
	}
	if ok, _ := e.Data[successField].(bool); ok {
		return "SUCCESS", term.Green
	}
	return "INFO", term.Blue
}

// fileHook appends every entry, uncolored, to the --log file.
type fileHook struct {
	mu        sync.Mutex
	file      *os.File
	formatter logrus.Formatter
}

func (h *fileHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h *fileHook) Fire(e *logrus.Entry) error {
	line, err := h.formatter.Format(e)
	if err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.file == nil {
		return nil
	}
	_, err = h.file.Write(line)
	return err
}

func (h *fileHook) close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.file == nil {
		return nil
	}
	err := h.file.Close()
	h.file = nil
	return err
}
