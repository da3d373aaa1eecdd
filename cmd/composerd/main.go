package main

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	api "github.com/examforge/booklet/internal/api/http"
	"github.com/examforge/booklet/internal/assets"
	"github.com/examforge/booklet/internal/auth"
	"github.com/examforge/booklet/internal/compose"
	"github.com/examforge/booklet/internal/config"
)

func main() {
	cfg := config.FromEnv()

	var fetcher assets.Fetcher
	switch {
	case cfg.AssetDir != "":
		f, err := assets.NewFSFetcher(cfg.AssetDir)
		if err != nil {
			log.Fatalf("asset dir: %v", err)
		}
		fetcher = f
	case cfg.AssetBaseURL != "":
		f := assets.NewHTTPFetcher(cfg.AssetBaseURL)
		f.Client = &http.Client{Timeout: cfg.FetchTimeout}
		fetcher = f
	}
	assembler := compose.New(fetcher)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(2 * time.Minute))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length", "X-Build-ID", "X-Page-Count"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/api/themes", api.ThemesHandler())

	r.Group(func(pr chi.Router) {
		if cfg.AuthEnabled {
			pr.Use(auth.JWTMiddleware(auth.NewAuthService(cfg.AuthSecret)))
		}
		pr.Post("/api/booklets", api.ComposeHandler(assembler))
	})

	log.Printf("booklet composer listening on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatal(err)
	}
}
