package main

import (
	"log/slog"
	"os"

	"github.com/dh-kim/ocr-ledger/internal/common"
	"github.com/dh-kim/ocr-ledger/internal/export"
	"github.com/dh-kim/ocr-ledger/internal/repository"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "exportxlsx <output.xlsx>")
		os.Exit(2)
	}
	outPath := os.Args[1]

	cfg := common.LoadConfig()
	store, err := repository.OpenDraftStore(cfg.Pipeline.DraftStorePath)
	if err != nil {
		logger.Error("opening draft store", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("closing draft store", "error", err)
		}
	}()

	drafts, err := store.List()
	if err != nil {
		logger.Error("listing drafts", "error", err)
		os.Exit(1)
	}

	data, err := export.NewService(logger).ExportDraftsXLSX(drafts)
	if err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		logger.Error("writing workbook", "path", outPath, "error", err)
		os.Exit(1)
	}
	logger.Info("workbook written", "path", outPath, "drafts", len(drafts))
}
