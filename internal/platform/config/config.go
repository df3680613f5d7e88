package config

import (
	"errors"
	"os"
	"strings"
)

type HTTPConfig struct {
	Addr string
}

// CatalogConfig holds the Listen Notes credential. An empty APIKey selects
// the fixture catalog provider at startup.
type CatalogConfig struct {
	APIKey string
}

// GeminiConfig holds the generative-AI credential. The key is required:
// no offline summarizer is wired into the server by default.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// MongoConfig holds the document-store connection. An empty URI selects
// the in-memory summary store at startup.
type MongoConfig struct {
	URI      string
	Database string
}

type AppConfig struct {
	ServiceName string
	LogLevel    string
	HTTP        HTTPConfig
	Catalog     CatalogConfig
	Gemini      GeminiConfig
	Mongo       MongoConfig
}

func Load() (AppConfig, error) {
	cfg := AppConfig{
		ServiceName: strings.TrimSpace(os.Getenv("SERVICE_NAME")),
		LogLevel:    strings.TrimSpace(os.Getenv("LOG_LEVEL")),
		HTTP: HTTPConfig{
			Addr: strings.TrimSpace(os.Getenv("HTTP_ADDR")),
		},
		Catalog: CatalogConfig{
			APIKey: strings.TrimSpace(os.Getenv("LISTEN_NOTES_API_KEY")),
		},
		Gemini: GeminiConfig{
			APIKey: strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
			Model:  strings.TrimSpace(os.Getenv("GEMINI_MODEL")),
		},
		Mongo: MongoConfig{
			URI:      strings.TrimSpace(os.Getenv("MONGODB_URI")),
			Database: strings.TrimSpace(os.Getenv("MONGODB_DB_NAME")),
		},
	}
	if cfg.Gemini.APIKey == "" {
		return AppConfig{}, errors.New("GEMINI_API_KEY is required")
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "podcast-digest"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = ":8080"
	}
	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = "gemini-1.5-flash"
	}
	if cfg.Mongo.Database == "" {
		cfg.Mongo.Database = "podcast_summarizer"
	}
	return cfg, nil
}
