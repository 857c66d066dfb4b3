package logx

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"storefront/internal/config"
)

type LoggerOpts struct {
	Environment config.Environment
	Output      io.Writer
}

var DefaultLoggerOpts = &LoggerOpts{
	Environment: config.Development,
}

func safe(opts ...LoggerOpts) *LoggerOpts {
	if len(opts) == 0 {
		return DefaultLoggerOpts
	}
	return &opts[0]
}

// Init configures the global logger. Production logs JSON at info level,
// everything else gets a console writer at debug level.
func Init(opts ...LoggerOpts) {
	o := safe(opts...)
	out := o.Output
	if out == nil {
		out = os.Stderr
	}

	switch o.Environment {
	case config.Production:
		log.Logger = zerolog.New(out).With().Timestamp().Logger().Level(zerolog.InfoLevel)
	case config.Testing:
		log.Logger = zerolog.New(out).Level(zerolog.Disabled)
	default:
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: out}).With().Timestamp().Caller().Logger()
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	}
}

func Debug() *zerolog.Event {
	return log.Debug()
}

func Info() *zerolog.Event {
	return log.Info()
}

func Warn() *zerolog.Event {
	return log.Warn()
}

func Error() *zerolog.Event {
	return log.Error()
}
