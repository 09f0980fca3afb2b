package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Config holds the local tesseract adapter settings.
type Config struct {
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	Lang        string // default "kor+eng"
	TessdataDir string

	PSM int // e.g., 6 is good for uniform block of text
	OEM int // 1 = LSTM; leave 0 to use default
}

// TesseractAdapter is a local OCR collaborator producing a flat text blob.
// It has no layout information, so the pipeline falls back to line splitting.
type TesseractAdapter struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewTesseractAdapter(cfg Config, logger *slog.Logger) *TesseractAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Lang == "" {
		cfg.Lang = "kor+eng"
	}
	return &TesseractAdapter{cfg: cfg, runner: execRunner{logger: logger}, logger: logger}
}

func (a *TesseractAdapter) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()

	args := []string{path, "stdout", "-l", a.cfg.Lang}
	if a.cfg.PSM > 0 {
		args = append(args, "--psm", fmt.Sprintf("%d", a.cfg.PSM))
	}
	if a.cfg.OEM > 0 {
		args = append(args, "--oem", fmt.Sprintf("%d", a.cfg.OEM))
	}
	if a.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", a.cfg.TessdataDir)
	}

	out, errb, err := a.runner.Run(ctx, a.cfg.Tesseract, args...)
	if err != nil {
		return Result{}, fmt.Errorf("tesseract: %w (%s)", err, truncate(string(errb), 512))
	}

	txt := string(out)
	a.logger.Debug("ocr.tesseract.ok",
		"path", path,
		"bytes", len(txt),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return Result{
		Adapter:    "tesseract",
		ImageName:  path,
		FullText:   txt,
		Confidence: heuristicConfidence(txt),
	}, nil
}
