package ocr

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// ResultFromJSON decodes a stored vision-service response after checking it
// against the collaborator schema. Unknown keys are ignored.
func ResultFromJSON(data []byte) (Result, error) {
	if err := ValidateAgainstSchema(BuildResultSchema(), data); err != nil {
		return Result{}, fmt.Errorf("ocr result: %w", err)
	}
	var res Result
	if err := json.Unmarshal(data, &res); err != nil {
		return Result{}, fmt.Errorf("ocr result: decode: %w", err)
	}
	return res, nil
}

// JSONFileAdapter reads a vision-service response that was saved next to the
// image (or is the "image path" itself). Useful when the network OCR call
// runs elsewhere and only its output is handed to the pipeline.
type JSONFileAdapter struct {
	logger *slog.Logger
}

func NewJSONFileAdapter(logger *slog.Logger) *JSONFileAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &JSONFileAdapter{logger: logger}
}

func (a *JSONFileAdapter) Extract(_ context.Context, path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read ocr result: %w", err)
	}
	res, err := ResultFromJSON(data)
	if err != nil {
		return Result{}, err
	}
	if res.ImageName == "" {
		res.ImageName = path
	}
	a.logger.Debug("ocr.json.ok", "path", path, "lines", len(res.Lines), "text_bytes", len(res.FullText))
	return res, nil
}
