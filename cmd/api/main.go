package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ironcoach/ironcoach/internal/config"
	"github.com/ironcoach/ironcoach/internal/handler"
	"github.com/ironcoach/ironcoach/internal/handler/ask"
	"github.com/ironcoach/ironcoach/internal/handler/volume"
	"github.com/ironcoach/ironcoach/internal/service/ai"
	"github.com/ironcoach/ironcoach/internal/service/conversation"
	"github.com/ironcoach/ironcoach/internal/service/knowledge"
	"github.com/ironcoach/ironcoach/internal/storage"
	"github.com/ironcoach/ironcoach/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		logger.Warnf("failed to load .env file: %v, continuing with system environment only", err)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load configuration: %v", err)
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	store, cleanup, err := openStore(ctx, cfg.Database)
	if err != nil {
		logger.Fatalf("failed to open storage: %v", err)
	}
	defer cleanup()

	coachSvc, err := buildCoach(ctx, cfg, store)
	if err != nil {
		logger.Fatalf("failed to initialize coach service: %v", err)
	}

	router := handler.NewRouter(ask.New(coachSvc), volume.New(store))

	startServer(ctx, cfg.Server, router)
}

// openStore selects Postgres when a database URL is configured, otherwise
// the in-memory store so the server runs without infrastructure.
func openStore(ctx context.Context, cfg config.DatabaseConfig) (storage.Store, func(), error) {
	if cfg.URL == "" {
		logger.Infof("DATABASE_URL not set, using in-memory store")
		return storage.NewMemoryStore(), func() {}, nil
	}

	pg, err := storage.NewPostgresStore(ctx, cfg.URL)
	if err != nil {
		return nil, nil, err
	}
	logger.Infof("connected to health database")
	return pg, pg.Close, nil
}

func buildCoach(ctx context.Context, cfg *config.Config, store storage.Store) (*ai.Coach, error) {
	chatModel, err := cfg.AI.NewChatModel(ctx)
	if err != nil {
		return nil, err
	}

	var retriever ai.ContextRetriever
	embedder, err := cfg.AI.NewEmbedder(ctx)
	if err != nil {
		logger.Warnf("embedding model unavailable, knowledge retrieval disabled: %v", err)
	} else if embedder != nil {
		retriever = knowledge.NewRetriever(embedder, store, cfg.AI.KnowledgeTopK)
	} else {
		logger.Infof("ARK_EMBEDDING_MODEL not set, knowledge retrieval disabled")
	}

	return ai.NewCoach(ctx, chatModel, conversation.NewService(), store, retriever)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	logger.Infof("coach backend listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		logger.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
