package config

import (
	"fmt"
	"os"
	"strconv"

	"cs2-tracker/internal/constants"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	SteamAPIKey     string
	SteamAPIBaseURL string
	SteamAppID      int
	DBPath          string
	ServerPort      string
	LogLevel        string
	GinMode         string
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	appID, err := strconv.Atoi(getEnv("STEAM_APP_ID", strconv.Itoa(constants.DefaultSteamAppID)))
	if err != nil {
		return nil, fmt.Errorf("invalid STEAM_APP_ID: %w", err)
	}

	cfg := &Config{
		SteamAPIKey:     getEnv("STEAM_API_KEY", ""),
		SteamAPIBaseURL: getEnv("STEAM_API_BASE_URL", constants.DefaultSteamBaseURL),
		SteamAppID:      appID,
		DBPath:          getEnv("DB_PATH", "cs2_stats.db"),
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		GinMode:         getEnv("GIN_MODE", "release"),
	}

	if cfg.SteamAPIKey == "" {
		return nil, fmt.Errorf("STEAM_API_KEY is required")
	}

	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Int("steam_app_id", cfg.SteamAppID).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var Module = fx.Provide(Load)
