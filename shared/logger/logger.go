package logger

import (
	"os"
	"time"

	"hotel/config"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultLevel keeps diagnostics out of the interactive session unless asked for.
const DefaultLevel = zerolog.WarnLevel

// InitLogger writes human readable logs to stderr; stdout belongs to the menus.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(DefaultLevel)

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}

	log.Logger = log.Output(output)
	log.Trace().Msg("Zerolog initialized.")
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = DefaultLevel
		log.Debug().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Debug().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}
