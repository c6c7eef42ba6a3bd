package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

var DefaultLogLevel = zerolog.InfoLevel

// Logger is embedded by components that report on decoded traffic.
type Logger struct {
	logger *zerolog.Logger
}

func levelColor(i any) string {
	level := strings.ToUpper(fmt.Sprintf("%s", i))
	switch level {
	case "DEBUG":
		return "\033[36m" + level + "\033[0m"
	case "INFO":
		return "\033[32m" + level + "\033[0m"
	case "WARN":
		return "\033[33m" + level + "\033[0m"
	case "ERROR":
		return "\033[31m" + level + "\033[0m"
	default:
		return level
	}
}

// InitLogger builds a console logger writing to out. level is applied to
// this logger only; an empty level keeps the global one.
func InitLogger(out io.Writer, level string, fields map[string]string) *Logger {
	consoleWriter := zerolog.ConsoleWriter{
		Out:         out,
		NoColor:     true,
		FormatLevel: levelColor,
	}
	ctx := zerolog.New(consoleWriter).With().Timestamp()
	for k, v := range fields {
		ctx = ctx.Str(k, v)
	}
	entry := ctx.Logger()

	if len(level) > 0 {
		if lvl, err := zerolog.ParseLevel(strings.ToLower(level)); err == nil {
			entry = entry.Level(lvl)
		}
	}
	return &Logger{logger: &entry}
}

// RotatingFile is a log file rotated by size. Zero limits take the
// lumberjack defaults.
type RotatingFile struct {
	Filename   string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
}

// Output returns stderr, or stderr plus the rotated file when f names one.
// close must be called once logging is done.
func Output(f RotatingFile) (out io.Writer, close func() error) {
	if f.Filename == "" {
		return os.Stderr, func() error { return nil }
	}
	file := &lumberjack.Logger{
		Filename:   f.Filename,
		MaxSize:    f.MaxSize,
		MaxBackups: f.MaxBackups,
		MaxAge:     f.MaxAge,
		Compress:   f.Compress,
	}
	return io.MultiWriter(os.Stderr, file), file.Close
}

// ParseLogLevel sets the global zerolog level, falling back to
// DefaultLogLevel on a bad value.
func ParseLogLevel(level string) {
	if len(level) == 0 {
		return
	}
	logLevel, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		log.Error().Err(err).Msg("Failed to parse log level -> set InfoLevel")
		zerolog.SetGlobalLevel(DefaultLogLevel)
		return
	}
	zerolog.SetGlobalLevel(logLevel)
}

// With returns a child logger carrying one more field.
func (l *Logger) With(key, value string) *Logger {
	child := l.logger.With().Str(key, value).Logger()
	return &Logger{logger: &child}
}

func (l *Logger) Info(format string, args ...any) {
	l.logger.Info().Msgf(fmt.Sprintf("%-50s\t", format), args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.logger.Warn().Msgf(fmt.Sprintf("%-50s\t", format), args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.logger.Error().Msgf(fmt.Sprintf("%-50s\t", format), args...)
}

func (l *Logger) Debug(format string, args ...any) {
	l.logger.Debug().Msgf(fmt.Sprintf("%-50s\t", format), args...)
}

func (l *Logger) Trace(format string, args ...any) {
	l.logger.Trace().Msgf(fmt.Sprintf("%-50s\t", format), args...)
}
