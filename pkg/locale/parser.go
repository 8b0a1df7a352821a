package locale

import (
	"context"
	"strings"
)

// Parser decodes locale files. The result is keyed by locale code.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]Data, error)

	// SupportsFileExtension checks if the parser supports a given file extension.
	// The extension may or may not include a leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension, or nil if none fits.
func NewParserForFile(filename string) Parser {
	ext := getFileExtension(filename)
	if ext == "" {
		return nil
	}
	for _, p := range []Parser{NewYAMLParser(), NewJSONParser()} {
		if p.SupportsFileExtension(ext) {
			return p
		}
	}
	return nil
}

// getFileExtension extracts the extension from a filename
func getFileExtension(filename string) string {
	if idx := strings.LastIndex(filename, "."); idx != -1 {
		return filename[idx+1:]
	}
	return ""
}
