package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/alert"
	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/api"
	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/appointment"
	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/chat"
	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/config"
	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/db"
	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/objstore"
	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/record"
	redisclient "github.com/PrakritiSharma17/kerala-digital-health-55780/internal/redis"
	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/store"
	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/user"
)

const version = "0.1.0"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("api-server starting up")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	log.Printf("running in env=%s http_port=%s", cfg.Env, cfg.HTTPPort)

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect Postgres
	pgCtx, cancelPg := context.WithTimeout(rootCtx, 10*time.Second)
	pgPool, err := db.ConnectPostgres(pgCtx, cfg.PostgresDSN)
	cancelPg()
	if err != nil {
		log.Fatalf("postgres connection error: %v", err)
	}
	defer pgPool.Close()
	log.Println("connected to Postgres")

	// Connect Redis
	rdb, err := redisclient.NewRedisClient(cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword)
	if err != nil {
		log.Fatalf("redis connection error: %v", err)
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Printf("error closing redis: %v", err)
		}
	}()
	log.Println("connected to Redis")

	// Object storage for record files
	s3Client, err := objstore.NewS3Client(rootCtx)
	if err != nil {
		log.Fatalf("s3 client error: %v", err)
	}
	files := objstore.NewS3Store(s3Client, cfg.RecordBucket)

	st := store.NewRedisStore(rdb)

	users := user.NewService(user.NewPgRepository(pgPool), st, cfg.JWTSecret)
	appointments := appointment.NewService(st)
	records := record.NewService(record.NewPgRepository(pgPool), files)
	alerts := alert.NewService(st, cfg.AlertDisplayMax)
	chatCtrl := chat.NewController(st, cfg.ReplyDelayMin, cfg.ReplyDelayMax)

	router := api.NewRouter(api.RouterConfig{
		Users:          users,
		Appointments:   appointments,
		Records:        records,
		Alerts:         alerts,
		Chat:           chatCtrl,
		PgPool:         pgPool,
		Redis:          rdb,
		Env:            cfg.Env,
		Version:        version,
		JWTSecret:      cfg.JWTSecret,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server error: %v", err)
		}
	}()

	<-rootCtx.Done()

	log.Println("shutting down api-server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
