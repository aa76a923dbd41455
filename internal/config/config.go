package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	Port                string
	SiteURL             string
	IdentityURL         string
	IdentityAnonKey     string
	SessionJWTSecret    string
	GalleriaAPIURL      string
	GalleriaBearerToken string
}

// Load reads configuration from the environment and performs minimal
// validation. DynamoDB settings are resolved separately by the database
// package; table names default inside each repository.
func Load() (Config, error) {
	cfg := Config{
		Port:                fallback(os.Getenv("PORT"), "8080"),
		SiteURL:             fallback(os.Getenv("SITE_URL"), "http://localhost:8080"),
		IdentityURL:         strings.TrimSpace(os.Getenv("IDENTITY_PROVIDER_URL")),
		IdentityAnonKey:     strings.TrimSpace(os.Getenv("IDENTITY_ANON_KEY")),
		SessionJWTSecret:    strings.TrimSpace(os.Getenv("SESSION_JWT_SECRET")),
		GalleriaAPIURL:      fallback(os.Getenv("GALLERIA_API_URL"), "https://backoffice.galleriabank.com.br/sistema/siscoat"),
		GalleriaBearerToken: strings.TrimSpace(os.Getenv("GALLERIA_BANK_API_TOKEN")),
	}

	if cfg.IdentityURL == "" {
		return Config{}, errors.New("IDENTITY_PROVIDER_URL is required")
	}
	if cfg.SessionJWTSecret == "" {
		return Config{}, errors.New("SESSION_JWT_SECRET is required")
	}

	return cfg, nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}
