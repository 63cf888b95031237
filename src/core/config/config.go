package config

import (
	"os"

	"github.com/joho/godotenv"

	"campushub/src/core/logger"
)

func SetupEnv() {
	// Load environment variables from .env file when present; deployed
	// environments supply them through the process environment instead.
	if err := godotenv.Load(".env"); err != nil {
		logger.Log.Warn().Msg("no .env file found, using process environment")
	}
}

// Config returns the environment variable or defaults to empty string
func Config(key string) string {
	return os.Getenv(key)
}
