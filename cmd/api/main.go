package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"dreambody/internal/advice"
	"dreambody/internal/http/handlers"
	"dreambody/internal/http/httpapi"
	"dreambody/internal/infra"
	"dreambody/internal/store"
)

func main() {
	// .env is optional.
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	kv, err := store.NewFileKV(cfg.DataDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open data directory")
	}
	st := store.New(kv)
	if err := st.Init(); err != nil {
		logger.Fatal().Err(err).Msg("failed to seed collections")
	}

	app := handlers.NewApp(st, newAdvisor(cfg, logger), logger)
	router := httpapi.NewRouter(app, httpapi.Options{
		CORSOrigins:    cfg.CORSOrigins,
		LoginRateLimit: cfg.LoginRateLimit,
	}, logger)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}

// newAdvisor picks the configured advice provider, dropping to the
// canned advisor when the provider cannot be constructed so the app
// still answers questions offline.
func newAdvisor(cfg *infra.Config, logger infra.Logger) advice.Advisor {
	switch cfg.AdviceProvider {
	case "openai":
		a, err := advice.NewOpenAIAdvisor(advice.OpenAIOptions{
			APIKey: cfg.OpenAIAPIKey,
			Model:  cfg.OpenAIModel,
		})
		if err != nil {
			logger.Warn().Err(err).Msg("openai advisor unavailable, using canned advice")
			return advice.NewStaticAdvisor()
		}
		return a
	case "static":
		return advice.NewStaticAdvisor()
	default:
		a, err := advice.NewGeminiAdvisor(advice.GeminiOptions{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			BaseURL: cfg.GeminiBaseURL,
		})
		if err != nil {
			logger.Warn().Err(err).Msg("gemini advisor unavailable, using canned advice")
			return advice.NewStaticAdvisor()
		}
		return a
	}
}
