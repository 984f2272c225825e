package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fadilmartias/career-coach/internal/app"
	"github.com/fadilmartias/career-coach/internal/config"
	"github.com/fadilmartias/career-coach/internal/logger"
	"github.com/fadilmartias/career-coach/internal/model"
	"github.com/fadilmartias/career-coach/internal/repository"
	"github.com/fadilmartias/career-coach/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()
	zlog, err := logger.New(appConfig.Env)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zlog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db := ConnectDB(zlog)
	advisor := NewAdvisor(ctx, zlog)
	sessions := NewSessionStorage(ctx, db, zlog)
	defer sessions.Close()

	server := app.New(app.Deps{
		DB:        db,
		Advisor:   advisor,
		Sessions:  sessions,
		Log:       zlog,
		App:       appConfig,
		Session:   config.LoadSessionConfig(),
		AccessLog: true,
	})

	// Monitor goroutine count
	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				zlog.Debug("runtime stats", "goroutines", runtime.NumGoroutine())
			}
		}
	}()

	go func() {
		<-ctx.Done()
		zlog.Info("shutting down")
		if err := server.ShutdownWithTimeout(10 * time.Second); err != nil {
			zlog.Error("shutdown failed", "error", err)
		}
	}()

	zlog.Info("server running", "port", appConfig.Port, "env", appConfig.Env)
	if err := server.Listen(appConfig.Port); err != nil {
		zlog.Fatal("listen failed", "error", err)
	}
}

func ConnectDB(zlog *logger.Logger) *gorm.DB {
	dsn := config.LoadDBConfig().DSN()
	if dsn == "" {
		zlog.Fatal("database is not configured, set DATABASE_URL or DB_HOST/DB_NAME")
	}
	appConfig := config.LoadAppConfig()

	gormConfig := &gorm.Config{}
	if appConfig.IsProduction() {
		gormConfig.Logger = gormlogger.Default.LogMode(gormlogger.Warn)
	}
	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		zlog.Fatal("could not connect to database", "error", err)
	}
	pgDB, err := db.DB()
	if err != nil {
		zlog.Fatal("could not get database instance", "error", err)
	}
	if !appConfig.IsProduction() {
		pgDB.SetMaxIdleConns(5)
		pgDB.SetMaxOpenConns(10)
		pgDB.SetConnMaxLifetime(30 * time.Minute)
	} else {
		pgDB.SetMaxIdleConns(20)
		pgDB.SetMaxOpenConns(200)
		pgDB.SetConnMaxLifetime(time.Hour)
	}

	if err := db.AutoMigrate(model.All()...); err != nil {
		zlog.Fatal("migration failed", "error", err)
	}
	return db
}

// NewAdvisor builds the configured AI provider. A missing key is fatal.
func NewAdvisor(ctx context.Context, zlog *logger.Logger) service.Advisor {
	gemini := config.LoadGeminiConfig()
	switch provider := config.LoadAdvisorConfig().Provider; provider {
	case config.ProviderGemini:
		if gemini.APIKey == "" {
			zlog.Fatal("GEMINI_API_KEY is not set")
		}
		svc, err := service.NewGeminiService(ctx, gemini, zlog)
		if err != nil {
			zlog.Fatal("init gemini", "error", err)
		}
		return svc
	case config.ProviderOpenRouter:
		svc, err := service.NewOpenRouterService(config.LoadOpenRouterConfig(), gemini.RequestTimeout, gemini.MaxRetries, zlog)
		if err != nil {
			zlog.Fatal("init openrouter", "error", err)
		}
		return svc
	default:
		zlog.Fatal("unknown AI_PROVIDER", "provider", provider)
		return nil
	}
}

// NewSessionStorage uses redis when REDIS_ADDR is set and the sessions
// table otherwise. The table is swept for expired rows every 10 minutes.
func NewSessionStorage(ctx context.Context, db *gorm.DB, zlog *logger.Logger) fiber.Storage {
	cfg := config.LoadSessionConfig()
	if cfg.RedisAddr != "" {
		store, err := repository.NewRedisSessionStorage(ctx, cfg)
		if err != nil {
			zlog.Fatal("connect redis", "addr", cfg.RedisAddr, "error", err)
		}
		zlog.Info("sessions stored in redis", "addr", cfg.RedisAddr)
		return store
	}

	store := repository.NewSessionStorage(db)
	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := store.DeleteExpired(ctx)
				if err != nil && !errors.Is(err, context.Canceled) {
					zlog.Warn("session sweep failed", "error", err)
					continue
				}
				if n > 0 {
					zlog.Debug("expired sessions removed", "count", n)
				}
			}
		}
	}()
	return store
}
