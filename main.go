package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Ruckus000/WrathWord-sub001/internal/httpserver"
	"github.com/Ruckus000/WrathWord-sub001/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	db, err := openDB(getEnv("DB_PATH", "./data/wrathword.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to apply migrations")
	}

	wp, err := words.Load(os.Getenv("WORDS_DIR"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}

	srv := httpserver.New(db, wp)
	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Msg("starting wrathword server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
