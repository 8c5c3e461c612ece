// @title AEP Proxy API
// @version 1.0
// @description REST proxy for a subset of Adobe Experience Platform APIs: schemas, datasets, segments, ingestion, profiles, query and destinations.
// @BasePath /api/aep
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aep-proxy/internal/aep"
	"aep-proxy/internal/auth"
	"aep-proxy/internal/config"
	"aep-proxy/internal/handlers"
	"aep-proxy/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Setup(cfg.Log, os.Stdout); err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}

	slog.Info("configuration loaded",
		"base_url", cfg.Credentials.BaseURL,
		"token_url", cfg.Credentials.TokenURL,
		"org_id", cfg.Credentials.OrgID,
		"port", cfg.Port,
		"http_timeout", cfg.HTTPTimeout.String(),
	)

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	tokens := auth.NewTokenCache(auth.NewIMSTokenSource(cfg.Credentials, httpClient))
	headers := auth.NewHeaderBuilder(tokens, cfg.Credentials)
	gateway := aep.NewClient(cfg.Credentials.BaseURL, headers, httpClient)

	router := handlers.NewRouter(handlers.NewAPI(gateway))

	srv := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("starting AEP proxy", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}
