// Package logger wraps zerolog behind context-aware helpers. Handlers and
// services log through these so request-scoped fields attached with
// WithLogger travel down the call chain.
package logger

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	globalLogger zerolog.Logger
	once         sync.Once
)

// InitLogging configures the process-wide logger. Output always goes to
// stdout; when logFilePath is set it is appended there as well. Safe to
// call more than once; only the first call takes effect.
func InitLogging(logFilePath string) {
	once.Do(func() {
		writers := []io.Writer{os.Stdout}

		if logFilePath != "" {
			file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0664)
			if err != nil {
				// The logger isn't up yet; stderr is all we have.
				os.Stderr.WriteString("failed to open log file: " + err.Error() + "\n")
			} else {
				writers = append(writers, file)
			}
		}

		globalLogger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
			With().Timestamp().Logger().
			Level(zerolog.InfoLevel)

		// Keep the zerolog/log package logger in sync for third-party code.
		log.Logger = globalLogger
	})
}

// WithLogger returns a context carrying the global logger extended with
// the given fields.
func WithLogger(ctx context.Context, fields map[string]interface{}) context.Context {
	l := globalLogger.With().Fields(fields).Logger()
	return l.WithContext(ctx)
}

func fromContext(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &globalLogger
}

// DebugLog logs at debug level.
func DebugLog(ctx context.Context, msg string, args ...interface{}) {
	fromContext(ctx).Debug().Msgf(msg, args...)
}

// InfoLog logs at info level.
func InfoLog(ctx context.Context, msg string, args ...interface{}) {
	fromContext(ctx).Info().Msgf(msg, args...)
}

// WarnLog logs at warn level.
func WarnLog(ctx context.Context, msg string, args ...interface{}) {
	fromContext(ctx).Warn().Msgf(msg, args...)
}

// ErrorLog logs at error level. When the first argument is an error it is
// attached as a structured field instead of formatted into the message.
func ErrorLog(ctx context.Context, msg string, args ...interface{}) {
	l := fromContext(ctx)
	if len(args) > 0 {
		if err, ok := args[0].(error); ok && len(args) == 1 {
			l.Error().Err(err).Msg(msg)
			return
		}
		l.Error().Msgf(msg, args...)
		return
	}
	l.Error().Msg(msg)
}
