// practiced is the local practice daemon: the same REST surface as the
// hosted platform, backed by sqlite (or postgres) and a bundled
// astrophysics question bank.
package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	api "github.com/astrolearn/astrolearn-client/internal/api/http"
	auth "github.com/astrolearn/astrolearn-client/internal/auth/middleware"
	"github.com/astrolearn/astrolearn-client/internal/config"
	"github.com/astrolearn/astrolearn-client/internal/db"
	"github.com/astrolearn/astrolearn-client/internal/lesson"
	syncx "github.com/astrolearn/astrolearn-client/internal/sync"
)

func main() {
	cfg := config.FromEnv()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	store := lesson.NewSQLStore(dbh, syncx.NewEventRepo(dbh))

	if err := lesson.SeedDemo(ctx, store); err != nil {
		log.Fatalf("seed question bank: %v", err)
	}

	authSvc := auth.NewAuthService(cfg.AuthSecret)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Mount("/api/v1", api.Routes(store, authSvc, cfg.QuestionsPerLesson))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (db=%s)", cfg.HTTPAddr, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
