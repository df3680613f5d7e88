package main

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/example/podcast-digest/internal/app"
	"github.com/example/podcast-digest/internal/catalog"
	"github.com/example/podcast-digest/internal/handlers"
	"github.com/example/podcast-digest/internal/platform/config"
	"github.com/example/podcast-digest/internal/platform/httpserver"
	"github.com/example/podcast-digest/internal/platform/logging"
	"github.com/example/podcast-digest/internal/platform/run"
	"github.com/example/podcast-digest/internal/store"
	"github.com/example/podcast-digest/internal/summarize"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log, err := logging.New(cfg.LogLevel, cfg.ServiceName)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	provider, source := initCatalog(cfg, log)
	summaries := initStore(cfg, log)
	summarizer := summarize.NewGeminiClient(cfg.Gemini.APIKey, cfg.Gemini.Model)
	log.Info("summarizer: gemini", zap.String("model", cfg.Gemini.Model))

	svc := app.New(provider, summarizer, summaries, log)

	r := chi.NewRouter()
	httpserver.SetupRouter(r)
	r.Get("/episodes", handlers.ListEpisodes(svc, source))
	r.Get("/episodes/{episode_id}", handlers.GetEpisode(svc))
	r.Get("/summaries", handlers.ListSummaries(svc))
	r.Get("/summaries/{episode_id}", handlers.GetSummary(svc))
	r.Post("/summarize", handlers.Summarize(svc))

	srv := httpserver.New(httpserver.Options{Addr: cfg.HTTP.Addr, Router: r})

	runner := run.New(log)
	code := runner.WithSignals(func(ctx context.Context) error {
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		return srv.Start(log)
	})

	log.Info("exit", zap.Int("code", code))
	run.Exit(code)
}

// initCatalog selects the catalog provider. Without a Listen Notes
// credential the fixture set backs the service; the workflow logic is
// identical either way.
func initCatalog(cfg config.AppConfig, log *zap.Logger) (catalog.Provider, string) {
	if cfg.Catalog.APIKey == "" {
		log.Warn("LISTEN_NOTES_API_KEY not set, using fixture catalog provider")
		return catalog.NewFixtureProvider(), handlers.SourceFixture
	}
	log.Info("catalog provider: listen notes")
	return catalog.NewListenNotesClient(cfg.Catalog.APIKey), handlers.SourceLive
}

// initStore selects the summary store backend.
func initStore(cfg config.AppConfig, log *zap.Logger) store.SummaryStore {
	if cfg.Mongo.URI == "" {
		log.Warn("MONGODB_URI not set, using in-memory summary store (development only)")
		return store.NewMemoryStore()
	}
	log.Info("summary store: mongodb",
		zap.String("database", cfg.Mongo.Database),
		zap.String("collection", store.DefaultCollection))
	return store.NewMongoStore(cfg.Mongo.URI, cfg.Mongo.Database, store.DefaultCollection)
}
