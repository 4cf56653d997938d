// internal/config/config.go
//
// Environment-driven configuration for the Spelling Bee server.

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the server.
type Config struct {
	Server ServerConfig
	CORS   CORSConfig
	Words  WordsConfig
	Game   GameConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host string
	Port int
}

// CORSConfig holds the browser-client origin allowed to call the API.
type CORSConfig struct {
	Origin string
}

// WordsConfig selects the dictionary source.
type WordsConfig struct {
	File         string        // local word file; wins over URL when set
	URL          string        // remote word list; empty means the provider default
	FetchTimeout time.Duration // bound on the remote fetch
}

// GameConfig holds the puzzle and session tunables.
type GameConfig struct {
	MinValidWords int // words a candidate letter set must allow
	MinWordLength int // shortest acceptable submission
	MaxWords      int // accepted words that end a session
}

// Load reads configuration from environment variables, applying defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("PORT", 5176),
		},
		CORS: CORSConfig{
			Origin: getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		},
		Words: WordsConfig{
			File:         getEnv("WORDS_FILE", ""),
			URL:          getEnv("WORDS_URL", ""),
			FetchTimeout: getEnvAsDuration("WORDS_FETCH_TIMEOUT", 5*time.Second),
		},
		Game: GameConfig{
			MinValidWords: getEnvAsInt("GAME_MIN_VALID_WORDS", 10),
			MinWordLength: getEnvAsInt("GAME_MIN_WORD_LENGTH", 4),
			MaxWords:      getEnvAsInt("GAME_MAX_WORDS", 3),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate rejects values the rest of the system cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Game.MinValidWords < 1 {
		return fmt.Errorf("invalid minimum valid words: %d", c.Game.MinValidWords)
	}
	if c.Game.MinWordLength < 1 {
		return fmt.Errorf("invalid minimum word length: %d", c.Game.MinWordLength)
	}
	if c.Game.MaxWords < 1 {
		return fmt.Errorf("invalid max words: %d", c.Game.MaxWords)
	}
	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
