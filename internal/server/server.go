// Package server exposes the news API over HTTP: four JSON endpoints
// behind an open-CORS chi router.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"newsdigest/internal/domain"
	"newsdigest/internal/service"
)

// NewsAPI is the service surface the handlers consume.
type NewsAPI interface {
	News(ctx context.Context, q service.NewsQuery) (*domain.Result, error)
	Search(ctx context.Context, q string, limit int) (*domain.Result, error)
	Stats(ctx context.Context) (domain.NewsStats, error)
	Audio(ctx context.Context) ([]domain.Track, error)
}

type Server struct {
	news   NewsAPI
	logger *slog.Logger
	router chi.Router
}

func New(news NewsAPI, logger *slog.Logger) *Server {
	s := &Server{
		news:   news,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         86400,
	}))

	r.Get("/news", s.handleNews)
	r.Get("/search", s.handleSearch)
	r.Get("/news-stats", s.handleStats)
	r.Get("/audio", s.handleAudio)

	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
