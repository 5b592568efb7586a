package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fleet-dashboard/internal/config"
	"fleet-dashboard/internal/database"
	"fleet-dashboard/internal/detail"
	"fleet-dashboard/internal/events"
	"fleet-dashboard/internal/logger"
	"fleet-dashboard/internal/providers"
	"fleet-dashboard/internal/session"
	"fleet-dashboard/internal/websocket"

	"github.com/go-redis/redis/v8"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("❌ FATAL ERROR: invalid configuration: %v", err)
	}

	log := logger.New(&cfg.Logger)
	log.Info("═══════════════════════════════════════════════════════════════════")
	log.Info("🚀 FLEET DASHBOARD SERVER STARTING")
	log.Info("═══════════════════════════════════════════════════════════════════")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	storage, closeStorage, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Fatal("❌ FATAL ERROR: session storage unavailable")
	}
	defer closeStorage()

	store := session.NewStore(storage, log)
	defer store.Dispose()
	log.WithField("state", store.Restore(ctx).String()).Info("🔐 Session restored")

	fleet := providers.NewFleet(cfg.Providers.FetchDelay, log)
	defer fleet.Dispose()
	fleet.Activate(ctx)

	hubCtx, stopHub := context.WithCancel(context.Background())
	hub := websocket.NewHub(log)
	go hub.Run(hubCtx)
	log.Info("✅ WebSocket hub started")

	feed := providers.NewLocationFeed(fleet.TruckLocations, cfg.Providers.LocationTick, nil, log)
	feed.Subscribe(hub)

	if cfg.Kafka.Enabled() {
		producer, err := events.NewProducer(&cfg.Kafka, log)
		if err != nil {
			log.WithError(err).Warn("⚠️  Kafka unavailable, location events disabled")
		} else {
			defer producer.Close()
			feed.Subscribe(producer)
			log.WithField("topic", cfg.Kafka.LocationsTopic).Info("✅ Publishing location events")
		}
	}
	stopFeed := feed.Start(ctx)

	a := &app{
		store:        store,
		tokens:       session.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		fleet:        fleet,
		assembler:    detail.NewAssembler(fleet, detail.StaticAuxiliary{}, cfg.Providers.FetchDelay),
		hub:          hub,
		authRequired: cfg.Auth.Required,
		log:          log,
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      a.router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.WithFields(map[string]interface{}{
			"addr":          srv.Addr,
			"auth_required": cfg.Auth.Required,
			"storage":       cfg.Session.Storage,
		}).Info("🌐 Server listening")
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("🛑 Shutdown signal received")
	case err := <-serveErr:
		if err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("❌ Server failed")
		}
	}

	// Stop producing updates before the consumers go away
	stopFeed()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("⚠️  Graceful shutdown incomplete")
	}

	stopHub()
	log.Info("👋 Server stopped")
}

// openStorage returns the durable session storage selected by config and a
// function releasing its connection
func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (session.Storage, func(), error) {
	switch cfg.Session.Storage {
	case config.StorageRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
		}
		log.WithField("addr", cfg.Redis.Addr).Info("✅ Redis session storage connected")
		return session.NewRedisStorage(client, cfg.Redis.KeyPrefix), func() { client.Close() }, nil

	case config.StoragePostgres:
		db, err := database.Connect(cfg.Database.URL, log)
		if err != nil {
			return nil, nil, err
		}
		if err := database.Migrate(db); err != nil {
			db.Close()
			return nil, nil, err
		}
		log.Info("✅ Database migrations completed")
		return session.NewPostgresStorage(db), func() { db.Close() }, nil

	default:
		log.Warn("⚠️  Using in-memory session storage, sessions end with the process")
		return session.NewMemoryStorage(), func() {}, nil
	}
}
