package ocr

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildResultSchema returns the JSON-Schema for the OCR collaborator result.
// A document must carry full_text, lines, or both.
func BuildResultSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"adapter":    map[string]any{"type": "string"},
			"image_name": map[string]any{"type": "string"},
			"full_text":  map[string]any{"type": "string"},
			"lines": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []string{"text"},
					"properties": map[string]any{
						"text": map[string]any{"type": "string"},
					},
				},
			},
			"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		},
		"anyOf": []any{
			map[string]any{"required": []string{"full_text"}},
			map[string]any{"required": []string{"lines"}},
		},
	}
}

// ValidateAgainstSchema validates "data" against "schemaMap".
func ValidateAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
