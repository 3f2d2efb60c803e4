// Package logger configures the application's zerolog output.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global zerolog logger. Debug mode gets a
// human-readable console writer; anything else logs JSON lines.
func Setup(ginMode string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if ginMode == "release" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return
	}

	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	})
}
