package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dh-kim/ocr-ledger/internal/common"
	"github.com/dh-kim/ocr-ledger/internal/ocr"
	"github.com/dh-kim/ocr-ledger/internal/pipeline"
	"github.com/dh-kim/ocr-ledger/internal/repository"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "runpipeline <receipt-image | ocr-result.json>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg := common.LoadConfig()

	// A .json argument is a stored vision-service response; anything else
	// goes through local tesseract.
	var collaborator ocr.Collaborator
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		collaborator = ocr.NewJSONFileAdapter(logger)
	} else {
		collaborator = ocr.NewTesseractAdapter(ocr.Config{
			Tesseract:   cfg.OCR.Tesseract,
			Lang:        cfg.OCR.Lang,
			TessdataDir: cfg.OCR.TessdataDir,
		}, logger)
	}

	p, err := pipeline.NewPipeline(logger, pipeline.Config{Strategy: cfg.Pipeline.Strategy}, collaborator)
	if err != nil {
		logger.Error("building pipeline", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	d := p.Run(ctx, path)

	if cfg.Pipeline.DraftStorePath != "" {
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
		if err := store.Put(d); err != nil {
			logger.Error("storing draft", "draft_id", d.ID, "error", err)
			os.Exit(1)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		logger.Error("encoding draft", "error", err)
		os.Exit(1)
	}
}
