package locale

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// JSONParser implements the Parser interface for JSON files
type JSONParser struct{}

// NewJSONParser creates a new JSONParser instance
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse parses JSON content and returns locale data keyed by code
func (p *JSONParser) Parse(ctx context.Context, content []byte) (map[string]Data, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrResolveCancelled, err)
	}

	var data map[string]Data
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("%w: no locales found in JSON content", ErrFailedToParseJSON)
	}

	return data, nil
}

// SupportsFileExtension checks if the parser supports the given file extension
func (p *JSONParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "json")
}
