package config

import "testing"

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "test-gemini-key")
	t.Setenv("LISTEN_NOTES_API_KEY", "")
	t.Setenv("MONGODB_URI", "")
	t.Setenv("MONGODB_DB_NAME", "")
	t.Setenv("SERVICE_NAME", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("GEMINI_MODEL", "")
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ServiceName != "podcast-digest" {
		t.Fatalf("unexpected service name %q", cfg.ServiceName)
	}
	if cfg.HTTP.Addr != ":8080" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Gemini.Model != "gemini-1.5-flash" {
		t.Fatalf("unexpected model %q", cfg.Gemini.Model)
	}
	if cfg.Mongo.Database != "podcast_summarizer" {
		t.Fatalf("unexpected database %q", cfg.Mongo.Database)
	}
}

func TestLoad_GeminiKeyRequired(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("GEMINI_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when GEMINI_API_KEY is absent")
	}
}

func TestLoad_TrimsWhitespace(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("LISTEN_NOTES_API_KEY", "  padded-key  ")
	t.Setenv("MONGODB_URI", " mongodb://localhost:27017 ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Catalog.APIKey != "padded-key" {
		t.Fatalf("expected trimmed key, got %q", cfg.Catalog.APIKey)
	}
	if cfg.Mongo.URI != "mongodb://localhost:27017" {
		t.Fatalf("expected trimmed uri, got %q", cfg.Mongo.URI)
	}
}
