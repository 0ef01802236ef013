package main

import (
	"context"
	"errors"
	"github.com/evanhutnik/weathercheck-service/internal/cache"
	"github.com/evanhutnik/weathercheck-service/internal/config"
	"github.com/evanhutnik/weathercheck-service/internal/weather"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	logger := baseLogger.Sugar()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Invalid configuration: %v", err)
	}

	var store cache.Store
	if cfg.DisableRedis {
		logger.Infow("redis disabled, using in-memory cache")
		store = cache.NewMemoryStore(5 * time.Minute)
	} else {
		rc := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddress,
		})
		defer rc.Close()
		store = cache.NewRedisStore(rc, logger)
	}

	s := weather.New(cfg, logger, weather.CacheOption(store))

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Infow("server started", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Errorf("Server error: %v", err)
	}
	logger.Info("server stopped")
}
