package config

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"os"
	"sync"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordPublicKey string // hex-encoded ed25519 key for webhook signatures
	DiscordAppID     string
	DiscordToken     string // only needed for command registration

	// Database configuration
	DatabaseURL string

	// HTTP configuration
	ListenAddr string

	// Error reporting
	SentryDSN string

	// Environment
	Environment string // "development" or "production"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// PublicKey decodes the configured hex key into an ed25519 public key
func (c *Config) PublicKey() (ed25519.PublicKey, error) {
	raw, err := hex.DecodeString(c.DiscordPublicKey)
	if err != nil {
		return nil, fmt.Errorf("DISCORD_PUBLIC_KEY is not valid hex: %w", err)
	}
	if len(raw) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("DISCORD_PUBLIC_KEY must be %d bytes, got %d", ed25519.PublicKeySize, len(raw))
	}
	return ed25519.PublicKey(raw), nil
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		// Discord
		DiscordPublicKey: os.Getenv("DISCORD_PUBLIC_KEY"),
		DiscordAppID:     os.Getenv("DISCORD_APP_ID"),
		DiscordToken:     os.Getenv("DISCORD_TOKEN"),

		// Database
		DatabaseURL: os.Getenv("DATABASE_URL"),

		// HTTP
		ListenAddr: os.Getenv("LISTEN_ADDR"),

		// Error reporting
		SentryDSN: os.Getenv("SENTRY_DSN"),

		// Environment
		Environment: os.Getenv("ENVIRONMENT"),
	}

	if config.ListenAddr == "" {
		config.ListenAddr = ":8080"
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
		if config.DiscordPublicKey == "" {
			return nil, fmt.Errorf("DISCORD_PUBLIC_KEY is required")
		}
		if _, err := config.PublicKey(); err != nil {
			return nil, err
		}
	}

	return config, nil
}
