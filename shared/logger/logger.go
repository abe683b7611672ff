package logger

import (
	"io"
	"journal/config"
	"journal/shared/constant"
	"journal/shared/timezone"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const defaultAppName = "journal"

// InitLogger installs the global logger for cfg. It should run right after the
// configuration is loaded and before any other package logs.
func InitLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.TimestampFunc = timezone.Now
	zerolog.SetGlobalLevel(Level(cfg))

	log.Logger = New(cfg, os.Stdout)
	log.Trace().Str("loglevel", zerolog.GlobalLevel().String()).Msg("Zerolog initialized.")
}

// New builds a logger tagged with the application name and environment.
// Production writes JSON lines; every other environment gets the console writer.
func New(cfg *config.Config, out io.Writer) zerolog.Logger {
	writer := out
	if cfg.Server.Env != constant.ServerEnvProduction {
		writer = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	app := cfg.App.Name
	if app == "" {
		app = defaultAppName
	}

	fields := zerolog.New(writer).With().Timestamp().Str("app", app)
	if cfg.Server.Env != "" {
		fields = fields.Str("env", cfg.Server.Env)
	}

	return fields.Logger()
}

// Level parses SERVER_LOG_LEVEL. Anything unparsable falls back to trace.
func Level(cfg *config.Config) zerolog.Level {
	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil || cfg.Server.LogLevel == "" {
		return zerolog.TraceLevel
	}

	return level
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}
