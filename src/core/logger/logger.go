package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Log is the application-wide logger. Init must run before anything logs.
var Log zerolog.Logger

func Init() {
	zerolog.TimeFieldFormat = time.RFC3339
	Log = zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Pretty output outside production.
	if os.Getenv("APP_ENV") != "production" {
		Log = Log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})
	}
}
