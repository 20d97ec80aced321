package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caffeinepub/ryk-cart/internal/api"
	"github.com/caffeinepub/ryk-cart/internal/infrastructure/backend"
	dbredis "github.com/caffeinepub/ryk-cart/internal/infrastructure/db/redis"
	"github.com/caffeinepub/ryk-cart/internal/pkg/config"
	"github.com/caffeinepub/ryk-cart/pkg/logger"
)

// @title           Storefront Gateway API
// @version         1.0
// @description     HTTP gateway for the storefront: catalog, cart, checkout, loyalty rewards and the admin product panel.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	log.Info().Str("env", cfg.Env).Msg("starting storefront gateway")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rdb, err := dbredis.Connect(ctx, dbredis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()
	log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")

	backendClient := backend.NewClient(cfg.Backend.URL)
	log.Info().Str("url", cfg.Backend.URL).Msg("backend client initialised")

	router := api.NewRouter(rdb, backendClient, cfg, log)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
	log.Info().Msg("server exited")
}
