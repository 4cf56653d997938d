package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{
		"SERVER_HOST", "PORT", "CLIENT_ORIGIN", "WORDS_FILE", "WORDS_URL",
		"WORDS_FETCH_TIMEOUT", "GAME_MIN_VALID_WORDS", "GAME_MIN_WORD_LENGTH",
		"GAME_MAX_WORDS",
	} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 5176 {
		t.Errorf("default port = %d", cfg.Server.Port)
	}
	if cfg.Game.MinValidWords != 10 || cfg.Game.MinWordLength != 4 || cfg.Game.MaxWords != 3 {
		t.Errorf("default game config = %+v", cfg.Game)
	}
	if cfg.Words.FetchTimeout != 5*time.Second {
		t.Errorf("default fetch timeout = %v", cfg.Words.FetchTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("GAME_MAX_WORDS", "5")
	t.Setenv("WORDS_FETCH_TIMEOUT", "2s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8080 || cfg.Game.MaxWords != 5 || cfg.Words.FetchTimeout != 2*time.Second {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Setenv("PORT", "99999")
	if _, err := Load(); err == nil {
		t.Error("expected error for out-of-range port")
	}

	t.Setenv("PORT", "8080")
	t.Setenv("GAME_MAX_WORDS", "0")
	if _, err := Load(); err == nil {
		t.Error("expected error for zero max words")
	}
}
