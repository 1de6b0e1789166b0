package logging

import (
	"context"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type loggerKeyType string

const loggerKey = loggerKeyType("logger")

// set with -ldflags "-X bitbucket.org/kleinnic74/geocoords/logging.devmode=true"
var devmode string = "false"

var rootLogger *zap.Logger

func IsDevMode() bool {
	return strings.ToLower(devmode) == "true"
}

func init() {
	rootLogger = NewLogger(zapcore.Lock(os.Stderr), IsDevMode())
	rootLogger.Debug("Logging initialized", zap.Bool("devmode", IsDevMode()))
}

// NewLogger writes human readable debug output in devmode and JSON lines
// from info level upwards otherwise.
func NewLogger(out zapcore.WriteSyncer, devmode bool) *zap.Logger {
	var encoder zapcore.Encoder
	var filter zap.LevelEnablerFunc
	if devmode {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		filter = func(lvl zapcore.Level) bool {
			return lvl >= zapcore.DebugLevel
		}
	} else {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		filter = func(lvl zapcore.Level) bool {
			return lvl >= zapcore.InfoLevel
		}
	}
	return zap.New(zapcore.NewCore(encoder, out, filter))
}

// From returns the logger of the current context, if no logger is available, returns the root logger
func From(ctx context.Context) *zap.Logger {
	l := ctx.Value(loggerKey)
	if l == nil {
		return rootLogger
	}
	return l.(*zap.Logger)
}

func SubFrom(ctx context.Context, name string) (*zap.Logger, context.Context) {
	logger := From(ctx).Named(name)
	return logger, Context(ctx, logger)
}

func Context(ctx context.Context, logger *zap.Logger) context.Context {
	if logger == nil {
		logger = rootLogger
	}
	return context.WithValue(ctx, loggerKey, logger)
}

func FromWithFields(ctx context.Context, fields ...zapcore.Field) (*zap.Logger, context.Context) {
	logger := From(ctx).With(fields...)
	ctx = Context(ctx, logger)
	return logger, ctx
}
