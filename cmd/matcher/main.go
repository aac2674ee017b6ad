package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"matching-engine/internal/common/config"
	"matching-engine/internal/common/database"
	apperrors "matching-engine/internal/common/errors"
	"matching-engine/internal/common/logger"
	"matching-engine/internal/matching"
	"matching-engine/internal/storage"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	pg, err := database.NewPostgres(cfg.Database.Postgres)
	if err != nil {
		zapLog.Fatal("failed to create postgres client", zap.Error(err))
	}
	defer pg.Close()

	if err := retryWithBackoff(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return pg.Ping(ctx)
	}, 5, time.Second, zapLog, "postgres ping"); err != nil {
		zapLog.Fatal("postgres unreachable", zap.Error(err))
	}

	rdb, err := database.NewRedis(cfg.Database.Redis)
	if err != nil {
		zapLog.Fatal("failed to create redis client", zap.Error(err))
	}
	defer rdb.Close()

	if err := retryWithBackoff(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return rdb.Ping(ctx)
	}, 5, time.Second, zapLog, "redis ping"); err != nil {
		zapLog.Fatal("redis unreachable", zap.Error(err))
	}

	store := storage.NewMatchStore(pg.DB, log)
	settings := storage.NewRedisSettings(rdb.Client, cfg.Matching)

	weights := matching.DefaultWeights()
	if err := weights.Validate(); err != nil {
		zapLog.Fatal("invalid weight configuration", zap.Error(err))
	}

	engine := matching.NewEngine(store, settings, weights, log)

	if cfg.Metrics.Enabled {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			addr := fmt.Sprintf(":%d", cfg.Metrics.Port)
			zapLog.Info("metrics endpoint listening", zap.String("addr", addr))
			if err := http.ListenAndServe(addr, mux); err != nil {
				zapLog.Error("metrics server stopped", zap.Error(err))
			}
		}()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go runSweepLoop(ctx, engine, store, cfg, log)

	zapLog.Info("matching engine started",
		zap.String("environment", cfg.App.Environment),
		zap.Float64("globalMinScore", cfg.Matching.GlobalMinScore),
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	zapLog.Info("shutting down", zap.String("signal", sig.String()))
	cancel()
}

// runSweepLoop periodically recomputes and persists matches for every active
// user, so the service layer can serve fresh results without computing them
// inline on every request.
func runSweepLoop(ctx context.Context, engine *matching.Engine, store *storage.MatchStore, cfg *config.Config, log logger.Logger) {
	interval := time.Duration(cfg.Matching.SweepIntervalMs) * time.Millisecond
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	sweep(ctx, engine, store, cfg, log)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sweep(ctx, engine, store, cfg, log)
		}
	}
}

func sweep(ctx context.Context, engine *matching.Engine, store *storage.MatchStore, cfg *config.Config, log logger.Logger) {
	userIDs, err := store.ListActiveUserIDs(ctx)
	if err != nil {
		log.Error("sweep: failed to list active users", map[string]interface{}{"error": err})
		return
	}

	var updated, skipped int
	for _, userID := range userIDs {
		results, err := engine.FindMatches(ctx, userID, cfg.Matching.DefaultLimit)
		if err != nil {
			if apperrors.IsCode(err, apperrors.ErrCodeIncompleteProfile) {
				skipped++
				continue
			}
			log.Error("sweep: match computation failed", map[string]interface{}{
				"userId": userID,
				"error":  err,
			})
			continue
		}
		if len(results) == 0 {
			continue
		}
		if err := engine.SaveMatchResults(ctx, userID, results); err != nil {
			log.Error("sweep: failed to persist matches", map[string]interface{}{
				"userId": userID,
				"error":  err,
			})
			continue
		}
		updated++
	}

	log.Info("sweep complete", map[string]interface{}{
		"users":   len(userIDs),
		"updated": updated,
		"skipped": skipped,
	})
}
