package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dh-kim/ocr-ledger/internal/export"
	"github.com/dh-kim/ocr-ledger/internal/pipeline"
	"github.com/dh-kim/ocr-ledger/internal/repository"
)

// Server exposes the pipeline and the draft store over HTTP.
type Server struct {
	logger   *slog.Logger
	pipeline *pipeline.Pipeline
	drafts   *repository.DraftStore
	ledger   repository.Ledger // optional; nil disables ledger writes
	exporter *export.Service
}

func New(logger *slog.Logger, p *pipeline.Pipeline, drafts *repository.DraftStore, ledger repository.Ledger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		logger:   logger,
		pipeline: p,
		drafts:   drafts,
		ledger:   ledger,
		exporter: export.NewService(logger),
	}
}

// Routes builds the HTTP router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/receipts/process", s.handleProcess)
		r.Get("/drafts", s.handleListDrafts)
		r.Get("/drafts/export", s.handleExportDrafts)
		r.Get("/drafts/{id}", s.handleGetDraft)
		r.Get("/categories", s.handleListCategories)
	})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return r
}
