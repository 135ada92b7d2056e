package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"oracle-veil/internal/config"
	"oracle-veil/internal/domain/ports/adapter"
	"oracle-veil/internal/infra/adapters/ai"
	"oracle-veil/internal/infra/db/postgres"
	"oracle-veil/internal/infra/logging"
	"oracle-veil/internal/infra/metrics"
	red "oracle-veil/internal/infra/redis"
	"oracle-veil/internal/infra/web"
	"oracle-veil/internal/usecase"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	dev := flag.Bool("dev", false, "development mode: console logs, canned readings when no provider is configured")
	flag.Parse()

	if err := run(*configPath, *dev); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}

func run(configPath string, dev bool) error {
	cfg, err := config.LoadConfig(configPath, dev)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logging.New(cfg.Log, dev)
	metrics.MustRegister()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPgxPool(ctx, cfg.Database.URL, int32(cfg.Database.MaxConns))
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()
	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	redisClient, err := red.NewClient(ctx, &cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer redisClient.Close()

	tokenRepo := postgres.NewTokenRepoCacheDecorator(
		postgres.NewPostgresTokenRepo(pool),
		redisClient,
		cfg.Redis.CacheTTL,
	)
	sessionRepo := red.NewSessionStore(redisClient, cfg.Admin.SessionTTL)

	aiAdapter := pickAIAdapter(ctx, cfg, dev, log)

	tokenUC := usecase.NewTokenUseCase(tokenRepo)
	readingUC := usecase.NewReadingUseCase(aiAdapter, cfg.AI.Model, 30*time.Second, log)

	auth := web.NewAuthManager(
		cfg.Admin.JWTSecret,
		cfg.Admin.SecureCookie,
		cfg.Admin.CookieDomain,
		cfg.Admin.SessionTTL,
		sessionRepo,
	)
	srv := web.NewServer(tokenUC, readingUC, auth, cfg.Admin.Keyword, log)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           srv.Routes(cfg.Server.RequestTimeout),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("http server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// pickAIAdapter selects the reading provider. Gemini wins when both keys are
// set. With no key at all the server still starts: dev mode falls back to
// canned readings, production serves a configuration error on demand.
func pickAIAdapter(ctx context.Context, cfg *config.Config, dev bool, log *zerolog.Logger) adapter.AIServiceAdapter {
	switch {
	case cfg.AI.GeminiKey != "":
		a, err := ai.NewGeminiAdapter(ctx, cfg.AI.GeminiKey, cfg.AI.GeminiURL, cfg.AI.Model, cfg.AI.MaxOutputTokens)
		if err != nil {
			log.Error().Err(err).Msg("gemini adapter init failed, readings disabled")
			return nil
		}
		log.Info().Str("provider", a.Provider()).Str("model", cfg.AI.Model).Msg("reading provider ready")
		return a
	case cfg.AI.OpenAIKey != "":
		a, err := ai.NewOpenAIAdapter(cfg.AI.OpenAIKey, cfg.AI.OpenAIBaseURL, cfg.AI.Model)
		if err != nil {
			log.Error().Err(err).Msg("openai adapter init failed, readings disabled")
			return nil
		}
		log.Info().Str("provider", a.Provider()).Str("model", cfg.AI.Model).Msg("reading provider ready")
		return a
	case dev:
		log.Warn().Msg("no provider key set, serving canned readings")
		return ai.NewNoopAIAdapter()
	default:
		log.Warn().Msg("no provider key set, readings disabled")
		return nil
	}
}
