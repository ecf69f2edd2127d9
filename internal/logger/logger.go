package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// timeFormat renders the line prefix as an ISO-like local timestamp.
const timeFormat = "2006-01-02T15:04:05.000Z07:00"

// Logger is the capability handed to request handlers and event formatters.
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string, err error)
	With(key, value string) Logger
}

// ZeroLogger adapts a zerolog.Logger to Logger.
type ZeroLogger struct {
	zl zerolog.Logger
}

// Options selects the sinks and the minimum level.
type Options struct {
	Level   string
	File    string    // append-only log file, empty for console only
	Console io.Writer // defaults to os.Stdout
}

// New builds the process-wide logger. Every sink receives lines of the form
// "<timestamp> [LEVEL]: <message>". The returned closer releases the log file.
func New(opts Options) (*ZeroLogger, io.Closer, error) {
	lvl, err := parseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	// Stored timestamps keep sub-second precision so lines can show milliseconds.
	zerolog.TimeFieldFormat = time.RFC3339Nano

	console := opts.Console
	if console == nil {
		console = os.Stdout
	}

	writers := []io.Writer{lineWriter(console)}
	var closer io.Closer = nopCloser{}

	if opts.File != "" {
		if dir := filepath.Dir(opts.File); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("create log dir: %w", err)
			}
		}
		f, err := os.OpenFile(opts.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		writers = append(writers, lineWriter(f))
		closer = f
	}

	zl := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(lvl).
		With().
		Timestamp().
		Logger()

	return &ZeroLogger{zl: zl}, closer, nil
}

// Info logs msg at info level.
func (l *ZeroLogger) Info(msg string) {
	l.zl.Info().Msg(msg)
}

// Warn logs msg at warn level.
func (l *ZeroLogger) Warn(msg string) {
	l.zl.Warn().Msg(msg)
}

// Error logs msg at error level, attaching err when it is not nil.
func (l *ZeroLogger) Error(msg string, err error) {
	ev := l.zl.Error()
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg(msg)
}

// With returns a child logger carrying key=value on every line.
func (l *ZeroLogger) With(key, value string) Logger {
	return &ZeroLogger{zl: l.zl.With().Str(key, value).Logger()}
}

func lineWriter(out io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    true,
		TimeFormat: timeFormat,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			zerolog.MessageFieldName,
		},
		FormatLevel: func(i interface{}) string {
			s, _ := i.(string)
			if s == "" {
				s = "log"
			}
			return "[" + strings.ToUpper(s) + "]:"
		},
	}
}

func parseLevel(level string) (zerolog.Level, error) {
	level = strings.TrimSpace(level)
	if level == "" {
		level = zerolog.InfoLevel.String()
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.NoLevel, err
	}
	return lvl, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
