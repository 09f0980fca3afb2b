package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/dh-kim/ocr-ledger/internal/common"
	"github.com/dh-kim/ocr-ledger/internal/ocr"
	"github.com/dh-kim/ocr-ledger/internal/pipeline"
	"github.com/dh-kim/ocr-ledger/internal/repository"
	"github.com/dh-kim/ocr-ledger/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	collaborator := ocr.NewTesseractAdapter(ocr.Config{
		Tesseract:   cfg.OCR.Tesseract,
		Lang:        cfg.OCR.Lang,
		TessdataDir: cfg.OCR.TessdataDir,
	}, logger)

	p, err := pipeline.NewPipeline(logger, pipeline.Config{Strategy: cfg.Pipeline.Strategy}, collaborator)
	if err != nil {
		logger.Error("building pipeline", "error", err)
		os.Exit(1)
	}

	drafts, err := repository.OpenDraftStore(cfg.Pipeline.DraftStorePath)
	if err != nil {
		logger.Error("opening draft store", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := drafts.Close(); err != nil {
			logger.Error("closing draft store", "error", err)
		}
	}()

	// Ledger backend: Postgres when DB_URL is set, local sqlite otherwise.
	var ledger repository.Ledger
	if cfg.Database.DSN != "" {
		pool, err := repository.Open(ctx, repository.Config{
			DSN:              cfg.Database.DSN,
			MaxConns:         cfg.Database.MaxConns,
			MinConns:         cfg.Database.MinConns,
			MaxConnLifetime:  cfg.Database.MaxConnLifetime,
			MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
			DialTimeout:      cfg.Database.DialTimeout,
			StatementTimeout: cfg.Database.StatementTimeout,
		}, logger)
		if err != nil {
			logger.Error("opening database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		if err := repository.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
			logger.Error("database health check failed", "error", err)
			os.Exit(1)
		}
		ledger = repository.NewPGLedger(pool, logger)
	} else {
		lite, err := repository.OpenSQLiteLedger(cfg.Database.SQLitePath, logger)
		if err != nil {
			logger.Error("opening sqlite ledger", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := lite.Close(); err != nil {
				logger.Error("closing sqlite ledger", "error", err)
			}
		}()
		ledger = lite
	}

	srv := server.New(logger, p, drafts, ledger)
	httpServer := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: srv.Routes(),
	}

	go func() {
		logger.Info("http server listening", "addr", cfg.Server.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
}
