package app

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"

	"github.com/taskmaster/taskmaster-server/internal/config"
)

func MustReadEnv(logger zerolog.Logger) *config.Config {
	path := os.Getenv(config.ConfigFileEnv)
	cfg, err := config.NewReader(path).Read()
	if err != nil {
		logger.Error().
			Err(err).
			Str("config_file", path).
			Msg("failed to read env")
		panic(err)
	}
	logger.Info().
		Str("env", cfg.Env).
		Msg("read env")

	return cfg
}
