package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/spellbee/internal/config"
	"github.com/robalobadob/spellbee/internal/httpserver"
	"github.com/robalobadob/spellbee/internal/puzzle"
	"github.com/robalobadob/spellbee/internal/store"
	"github.com/robalobadob/spellbee/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	words.Init(words.Options{
		File:    cfg.Words.File,
		URL:     cfg.Words.URL,
		Timeout: cfg.Words.FetchTimeout,
	})
	count, src := words.Stats()
	log.Info().Int("words", count).Str("source", src).Msg("word list loaded")

	mem := store.NewMemoryStore()
	gen := puzzle.NewGenerator()
	srv := httpserver.New(mem, gen, cfg)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("starting spellbee server")
	if err := srv.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
