package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	firebase "firebase.google.com/go/v4"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"google.golang.org/api/option"

	"github.com/myokyal/loopify/config"
	"github.com/myokyal/loopify/internal/handlers"
	"github.com/myokyal/loopify/internal/storage"
	"github.com/myokyal/loopify/internal/store"
	"github.com/myokyal/loopify/internal/token"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("loopify-server %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", buildDate)
		os.Exit(0)
	}

	cfg := config.Load()

	ctx := context.Background()
	st, uploader := initBackends(ctx, cfg)

	tokens := token.New(adminSigningKey(cfg), cfg.Admin.Issuer)
	h := handlers.New(st, uploader, tokens, cfg.Admin.Key,
		time.Duration(cfg.Admin.TokenTTLMinute)*time.Minute)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// Health check.
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Return submission. /return is kept for deployments that mount the
	// API without the /api prefix.
	r.Post("/api/return", h.ProcessReturn)
	r.Post("/return", h.ProcessReturn)

	// Catalog and admin API.
	r.Route("/api", func(r chi.Router) {
		r.Get("/items", h.ListItems)
		r.Get("/dropoffs", h.ListDropoffs)
		r.Get("/reward", h.QuoteReward)

		r.Post("/admin/token", h.AdminToken)
		r.Group(func(r chi.Router) {
			r.Use(handlers.AdminMiddleware(tokens))
			r.Get("/admin/returns", h.AdminListReturns)
			r.Get("/admin/returns/{id}", h.AdminGetReturn)
		})
	})

	// Built frontend with SPA fallback for client-side routes.
	r.NotFound(handlers.SPAHandler(cfg.Server.StaticDir).ServeHTTP)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	log.Printf("Loopify server starting on %s (env: %s)", addr, cfg.Server.Env)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped")
}

// initBackends constructs the return store and photo uploader. Missing
// credentials are fatal except in development, where in-memory backends
// keep the app usable without a Firebase project. Invalid credentials
// are always fatal.
func initBackends(ctx context.Context, cfg *config.Config) (store.Store, storage.Uploader) {
	var opts []option.ClientOption
	switch {
	case cfg.Firebase.HasCredentialsFile():
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	case cfg.Firebase.HasEnvCredentials():
		creds, err := cfg.Firebase.CredentialsJSON()
		if err != nil {
			log.Fatalf("Failed to assemble Firebase credentials: %v", err)
		}
		opts = append(opts, option.WithCredentialsJSON(creds))
	default:
		if cfg.Server.Env != "development" {
			log.Fatalf("Firebase credentials are required: provide %s or the FIREBASE_* environment variables", cfg.Firebase.CredentialsPath)
		}
		log.Println("WARNING: no Firebase credentials, using in-memory backends (development only)")
		return store.NewMemory(), storage.NewMemory()
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     cfg.Firebase.ProjectID,
		StorageBucket: cfg.Firebase.StorageBucket,
	}, opts...)
	if err != nil {
		log.Fatalf("Firebase initialization failed: %v", err)
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		log.Fatalf("Firestore initialization failed: %v", err)
	}

	storClient, err := app.Storage(ctx)
	if err != nil {
		log.Fatalf("Storage initialization failed: %v", err)
	}
	bucket, err := storClient.DefaultBucket()
	if err != nil {
		log.Fatalf("Storage bucket unavailable: %v", err)
	}

	log.Println("Firebase initialized")
	return store.NewFirestore(fsClient), storage.NewGCS(bucket, cfg.Firebase.StorageBucket)
}

// adminSigningKey returns the configured signing key, falling back to the
// admin key itself so small deployments need only one secret.
func adminSigningKey(cfg *config.Config) string {
	if cfg.Admin.SigningKey != "" {
		return cfg.Admin.SigningKey
	}
	return cfg.Admin.Key
}
