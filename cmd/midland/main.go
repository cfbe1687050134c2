package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/sofienekhiari/midlandproject/internal/analytics"
	"github.com/sofienekhiari/midlandproject/internal/contact"
	"github.com/sofienekhiari/midlandproject/internal/content"
	"github.com/sofienekhiari/midlandproject/internal/database"
	"github.com/sofienekhiari/midlandproject/internal/email"
	"github.com/sofienekhiari/midlandproject/internal/event"
	"github.com/sofienekhiari/midlandproject/internal/geoip"
	"github.com/sofienekhiari/midlandproject/internal/metrics"
	"github.com/sofienekhiari/midlandproject/internal/notify"
	"github.com/sofienekhiari/midlandproject/internal/server"
	"github.com/sofienekhiari/midlandproject/internal/site"
	slackpkg "github.com/sofienekhiari/midlandproject/internal/slack"
	"github.com/sofienekhiari/midlandproject/internal/storage"
	"github.com/sofienekhiari/midlandproject/internal/video"
	"github.com/sofienekhiari/midlandproject/internal/webhook"
	"github.com/sofienekhiari/midlandproject/web"
)

func main() {
	// A .env file is a development convenience; in production everything
	// comes from real environment variables.
	_ = godotenv.Load()

	port := getEnv("PORT", "8080")
	baseURL := getEnv("BASE_URL", "http://localhost:8080")

	siteCfg, err := site.Load(getEnv("SITE_CONFIG", "site.yaml"))
	if err != nil {
		log.Fatalf("site config failed to load: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var db *database.DB
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err = database.Connect(ctx, databaseURL)
		if err != nil {
			log.Fatalf("database connection failed: %v", err)
		}
		defer db.Close()

		if err := db.Migrate(databaseURL); err != nil {
			log.Fatalf("database migration failed: %v", err)
		}
		log.Println("database migrations applied, page view analytics enabled")
	} else {
		log.Println("DATABASE_URL not set, page view analytics disabled")
	}

	registry := metrics.New(prometheus.DefaultRegisterer)

	// Content documents come from exactly one source: an S3 bucket when
	// one is configured, otherwise a remote base URL, otherwise a local
	// directory.
	var src content.Source
	var publisher *content.PublishHandler
	switch {
	case os.Getenv("S3_BUCKET") != "":
		store, err := storage.New(ctx, storage.Config{
			Endpoint:  getEnv("S3_ENDPOINT", "http://localhost:3900"),
			Bucket:    os.Getenv("S3_BUCKET"),
			AccessKey: os.Getenv("S3_ACCESS_KEY"),
			SecretKey: os.Getenv("S3_SECRET_KEY"),
			Region:    getEnv("S3_REGION", "eu-central-1"),
		})
		if err != nil {
			log.Fatalf("storage initialization failed: %v", err)
		}
		if err := store.EnsureBucket(ctx); err != nil {
			log.Fatalf("storage bucket check failed: %v", err)
		}
		src = content.NewS3Source(store)
		publisher = content.NewPublishHandler(store, event.ValidateFeed)
		log.Printf("content source: s3 bucket %s", os.Getenv("S3_BUCKET"))
	case os.Getenv("CONTENT_BASE_URL") != "":
		src = content.NewHTTPSource(os.Getenv("CONTENT_BASE_URL"))
		log.Printf("content source: %s", os.Getenv("CONTENT_BASE_URL"))
	default:
		dir := getEnv("CONTENT_DIR", "content")
		src = content.NewDirSource(dir)
		log.Printf("content source: directory %s", dir)
	}
	instrumented := content.Instrument(src, registry)

	events := event.NewHandler(instrumented)
	videos := video.NewHandler(instrumented)

	geo, err := geoip.New(os.Getenv("GEOIP_DB_PATH"))
	if err != nil {
		log.Fatalf("geoip initialization failed: %v", err)
	}
	defer func() { _ = geo.Close() }()

	var notifiers []contact.Notifier
	if os.Getenv("LISTMONK_URL") != "" {
		notifiers = append(notifiers, email.New(email.Config{
			BaseURL:    os.Getenv("LISTMONK_URL"),
			Username:   getEnv("LISTMONK_USER", "admin"),
			Password:   os.Getenv("LISTMONK_PASSWORD"),
			TemplateID: int(getEnvInt64("LISTMONK_TEMPLATE_ID", 0)),
			Recipient:  siteCfg.Contact.Recipient,
		}))
		log.Println("contact notifications: email enabled")
	}
	if url := os.Getenv("SLACK_WEBHOOK_URL"); url != "" {
		notifiers = append(notifiers, slackpkg.New(url))
		log.Println("contact notifications: slack enabled")
	}
	if url := os.Getenv("CONTACT_WEBHOOK_URL"); url != "" {
		notifiers = append(notifiers, webhook.New(url, os.Getenv("CONTACT_WEBHOOK_SECRET")))
		log.Println("contact notifications: webhook enabled")
	}
	var notifier contact.Notifier
	switch len(notifiers) {
	case 0:
		log.Println("contact notifications: none configured, messages are logged only")
	case 1:
		notifier = notifiers[0]
	default:
		notifier = notify.NewMulti(notifiers...)
	}

	var staticFS fs.FS
	if sub, err := fs.Sub(web.StaticFS, "static"); err == nil {
		staticFS = sub
	} else {
		log.Println("no embedded static assets found")
	}

	var dbtx database.DBTX
	var pinger server.Pinger
	if db != nil {
		dbtx = db.Pool
		pinger = db
	}

	srv := server.New(server.Config{
		Site:              siteCfg,
		DB:                dbtx,
		Pinger:            pinger,
		Events:            events,
		Videos:            videos,
		Publisher:         publisher,
		Notifier:          notifier,
		Geo:               geo,
		Metrics:           registry,
		StaticFS:          staticFS,
		JWTSecret:         os.Getenv("JWT_SECRET"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		BaseURL:           baseURL,
		EnableDocs:        getEnv("API_DOCS_ENABLED", "false") == "true",
	})

	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	if db != nil {
		retention := time.Duration(getEnvInt64("VIEW_RETENTION_DAYS", 365)) * 24 * time.Hour
		analytics.StartPruneLoop(workerCtx, db.Pool, retention, 12*time.Hour)
	}

	if apiKey := os.Getenv("YOUTUBE_API_KEY"); apiKey != "" {
		yt, err := youtube.NewService(context.Background(), option.WithAPIKey(apiKey))
		if err != nil {
			log.Fatalf("youtube client initialization failed: %v", err)
		}
		interval := time.Duration(getEnvInt64("TITLE_REFRESH_MINUTES", 60)) * time.Minute
		videos.StartTitleWorker(workerCtx, yt, interval)
		log.Println("youtube title worker enabled")
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("midland listening on :%s", port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-shutdownCh
	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("shutdown failed: %v", err)
	}
	log.Println("shutdown complete")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
