package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"regform/internal/platform/config"
	"regform/internal/platform/httpserver"
	"regform/internal/platform/logger"
	"regform/internal/platform/metrics"
	"regform/internal/platform/redis"
	ratelimitmw "regform/internal/ratelimit/middleware"
	"regform/internal/ratelimit/store/bucket"
	"regform/internal/registration/handler"
	regmetrics "regform/internal/registration/metrics"
	"regform/internal/registration/rules"
	"regform/internal/registration/service"
	httptransport "regform/internal/transport/http"
	"regform/pkg/platform/middleware/metadata"
)

const sweepInterval = time.Minute

// main wires dependencies, serves HTTP, and shuts down on SIGINT/SIGTERM.
// Business logic lives in internal/registration.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	g, ctx := errgroup.WithContext(ctx)

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}

	var (
		store  ratelimitmw.BucketStore
		health httptransport.HealthCheck
	)
	if redisClient != nil {
		defer redisClient.Close()
		store = bucket.NewRedisStore(redisClient.Client)
		health = redisClient.Health
		log.Info("rate limit store", "backend", "redis")
	} else {
		memory := bucket.NewInMemoryBucketStore()
		store = memory
		g.Go(func() error {
			sweep(ctx, memory, log)
			return nil
		})
		log.Info("rate limit store", "backend", "memory")
	}

	proxies, err := metadata.ParseProxies(cfg.TrustedProxies)
	if err != nil {
		return err
	}

	svc := service.New(rules.NewValidator(), log, service.WithMetrics(regmetrics.New(reg)))

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:       log,
		Registration: handler.New(svc, log),
		RateLimiter: ratelimitmw.New(store, log, cfg.RateLimit.Requests, cfg.RateLimit.Window,
			ratelimitmw.WithDisabled(cfg.RateLimit.Disabled)),
		HTTPMetrics:        metrics.New(reg),
		MetricsHandler:     promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		Health:             health,
		TrustedProxies:     proxies,
		StaticDir:          cfg.StaticDir,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RequestTimeout:     cfg.RequestTimeout,
	})

	srv := httpserver.New(cfg.Addr, router)

	g.Go(func() error {
		log.Info("starting regform", "addr", cfg.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// sweep drops idle in-memory rate limit buckets until ctx is done.
func sweep(ctx context.Context, store *bucket.InMemoryBucketStore, log *slog.Logger) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := store.Sweep(); n > 0 {
				log.Debug("swept rate limit buckets", "count", n)
			}
		}
	}
}
