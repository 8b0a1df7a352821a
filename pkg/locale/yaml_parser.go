package locale

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

// NewYAMLParser creates a new YAMLParser instance
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse parses YAML content and returns locale data keyed by code
func (p *YAMLParser) Parse(ctx context.Context, content []byte) (map[string]Data, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrResolveCancelled, err)
	}

	var data map[string]Data
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("%w: no locales found in YAML content", ErrFailedToParseYAML)
	}

	return data, nil
}

// SupportsFileExtension checks if the parser supports the given file extension
func (p *YAMLParser) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}
