package main

import (
	"os"

	"github.com/carelink-dev/carelink/db"
	"github.com/carelink-dev/carelink/internal/auth"
	"github.com/carelink-dev/carelink/internal/config"
	"github.com/carelink-dev/carelink/internal/router"
	"github.com/carelink-dev/carelink/internal/services"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	setupLogger(cfg)

	if err := auth.Init(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize token signing")
	}

	services.SetPasswordPolicy(cfg.PasswordMinLength)

	if err := db.ConnectDatabase(postgres.Open(cfg.DatabaseDSN)); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	r := router.NewRouter()

	log.Info().Str("port", cfg.Port).Msg("Starting server")

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

func setupLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.LogPretty {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	log.Logger = logger
}
