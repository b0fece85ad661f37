package config

import (
	"os"
	"strings"

	"github.com/private-landing/calc/internal/logger"
)

// Environment variables read by FromEnv.
const (
	EnvLogFile   = "CALC_LOG_FILE"
	EnvLogLevel  = "CALC_LOG_LEVEL"
	EnvAltScreen = "CALC_ALT_SCREEN"
)

// Config holds runtime settings for the calc command.
type Config struct {
	LogFile   string
	LogLevel  logger.Level
	AltScreen bool
}

// FromEnv reads the configuration from the environment.
func FromEnv() Config {
	return Config{
		LogFile:   strings.TrimSpace(os.Getenv(EnvLogFile)),
		LogLevel:  logger.ParseLevel(os.Getenv(EnvLogLevel)),
		AltScreen: parseBool(os.Getenv(EnvAltScreen)),
	}
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
