package ocr

import "context"

// Line is one layout-grouped text line from a layout-aware OCR backend.
// Grouping by vertical proximity happens in the backend, not here.
type Line struct {
	Text string `json:"text"`
}

// Result is the collaborator contract consumed by the pipeline: either a
// flat text blob, or pre-grouped lines, or both. Minimal adapters fill only
// FullText; layout-aware ones (Google Vision) fill Lines.
type Result struct {
	Adapter    string  `json:"adapter,omitempty"`
	ImageName  string  `json:"image_name,omitempty"`
	FullText   string  `json:"full_text,omitempty"`
	Lines      []Line  `json:"lines,omitempty"`
	Confidence float32 `json:"confidence,omitempty"`
}

// Collaborator turns an image reference into raw OCR output.
// Failures surface as errors; the pipeline converts them into an error
// draft at its own boundary.
type Collaborator interface {
	Extract(ctx context.Context, imagePath string) (Result, error)
}
