// Package log provides structured logging for kaiseki pipelines.
//
// Pipeline code (CLI, data loading, examples) logs through log/slog with a
// JSON handler; warnings raised by pkg/errors are routed to a zerolog logger
// so that typed warnings keep their structured fields. The numeric core
// packages (linear, metrics, inspection) do not log.
package log

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/rs/zerolog"

	kerrors "github.com/kaiseki-ml/kaiseki/pkg/errors"
)

// SetupLogger installs the default slog logger and routes kaiseki warnings
// to a zerolog writer on stderr.
func SetupLogger(loglevel string) {
	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     ToLogLevel(loglevel),
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.LevelKey:
				attr = slog.Attr{
					Key:   "severity",
					Value: attr.Value,
				}
			case slog.MessageKey:
				attr = slog.Attr{
					Key:   "message",
					Value: attr.Value,
				}
			}
			return attr
		},
	}
	handler := slog.NewJSONHandler(os.Stdout, &ops)
	errFmtHandler := WrapByErrFmtHandler(handler)
	slog.SetDefault(slog.New(errFmtHandler))

	installWarnSink()
}

// ToLogLevel converts a level name to a slog.Level.
func ToLogLevel(level string) slog.Level {
	switch level {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		panic(fmt.Sprintf("invalid log level :%s", level))
	}
}

// installWarnSink wires pkg/errors warnings into zerolog. Warnings that
// implement zerolog.LogObjectMarshaler are embedded with their structured
// fields; anything else is logged as a plain error field.
func installWarnSink() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	kerrors.SetZerologWarnFunc(func(warning error) {
		if obj, ok := warning.(zerolog.LogObjectMarshaler); ok {
			logger.Warn().EmbedObject(obj).Msg(warning.Error())
			return
		}
		logger.Warn().Err(warning).Msg("kaiseki warning")
	})
}

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}
