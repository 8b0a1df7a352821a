package locale

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"
)

// Resolver loads locale data by code.
// Implementations return an error wrapping ErrLocaleNotFound when they have no data for the code.
type Resolver interface {
	Resolve(ctx context.Context, code string) (Data, error)
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(ctx context.Context, code string) (Data, error)

// Resolve implements the Resolver interface
func (f ResolverFunc) Resolve(ctx context.Context, code string) (Data, error) {
	return f(ctx, code)
}

// Lister is implemented by resolvers that can enumerate the codes they serve.
type Lister interface {
	Codes(ctx context.Context) ([]string, error)
}

// MapResolver is a simple resolver that uses an in-memory map as the locale source
type MapResolver struct {
	Data map[string]Data
}

// Resolve implements the Resolver interface
func (r *MapResolver) Resolve(ctx context.Context, code string) (Data, error) {
	if err := ctx.Err(); err != nil {
		return Data{}, errors.Join(ErrResolveCancelled, err)
	}

	candidates, err := Candidates(code)
	if err != nil {
		return Data{}, err
	}

	for _, c := range candidates {
		if d, ok := lookup(r.Data, c); ok {
			if err := d.Validate(); err != nil {
				return Data{}, fmt.Errorf("locale %q: %w", c, err)
			}
			return d.Clone(), nil
		}
	}

	return Data{}, fmt.Errorf("%w: %q", ErrLocaleNotFound, code)
}

// Codes implements the Lister interface
func (r *MapResolver) Codes(_ context.Context) ([]string, error) {
	codes := make([]string, 0, len(r.Data))
	for code := range r.Data {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes, nil
}

// fileExtensions lists the extensions probed for a code, in order.
var fileExtensions = []string{"yaml", "yml", "json"}

// FSResolver loads locale files named after their code (pl.yaml, pt-BR.json) from a filesystem.
type FSResolver struct {
	fsys fs.FS
	dir  string
}

// NewDirectoryResolver creates a resolver reading locale files from a directory on disk.
// Returns nil if path is empty.
func NewDirectoryResolver(path string) *FSResolver {
	if path == "" {
		return nil
	}
	return &FSResolver{fsys: os.DirFS(path), dir: "."}
}

// NewEmbeddedFsResolver creates a resolver reading locale files from dir inside fsys,
// typically an embed.FS. Returns nil if fsys is nil or dir is empty.
func NewEmbeddedFsResolver(fsys fs.FS, dir string) *FSResolver {
	if fsys == nil || dir == "" {
		return nil
	}
	return &FSResolver{fsys: fsys, dir: dir}
}

// Resolve implements the Resolver interface
func (r *FSResolver) Resolve(ctx context.Context, code string) (Data, error) {
	if r == nil {
		return Data{}, fmt.Errorf("%w: %q", ErrLocaleNotFound, code)
	}

	candidates, err := Candidates(code)
	if err != nil {
		return Data{}, err
	}

	for _, c := range candidates {
		for _, ext := range fileExtensions {
			if err := ctx.Err(); err != nil {
				return Data{}, errors.Join(ErrResolveCancelled, err)
			}

			name := path.Join(r.dir, c+"."+ext)
			content, err := fs.ReadFile(r.fsys, name)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				return Data{}, errors.Join(ErrFailedToReadFile, err)
			}

			return r.parseFile(ctx, name, c, content)
		}
	}

	return Data{}, fmt.Errorf("%w: %q", ErrLocaleNotFound, code)
}

// parseFile decodes a single locale file and extracts the entry for code
func (r *FSResolver) parseFile(ctx context.Context, name, code string, content []byte) (Data, error) {
	if len(content) == 0 {
		return Data{}, fmt.Errorf("%w: locale file '%s' is empty", ErrInvalidData, name)
	}

	parser := NewParserForFile(name)
	if parser == nil {
		return Data{}, fmt.Errorf("%w: %s", ErrUnsupportedExtension, name)
	}

	parsed, err := parser.Parse(ctx, content)
	if err != nil {
		return Data{}, fmt.Errorf("locale file '%s': %w", name, err)
	}

	d, ok := lookup(parsed, code)
	if !ok {
		return Data{}, fmt.Errorf("%w: locale file '%s' has no entry for %q", ErrLocaleNotFound, name, code)
	}

	if err := d.Validate(); err != nil {
		return Data{}, fmt.Errorf("locale file '%s': %w", name, err)
	}

	return d, nil
}

// Codes implements the Lister interface
func (r *FSResolver) Codes(ctx context.Context) ([]string, error) {
	if r == nil {
		return nil, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrResolveCancelled, err)
	}

	entries, err := fs.ReadDir(r.fsys, r.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	var codes []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := getFileExtension(name)
		if ext == "" || !slices.Contains(fileExtensions, strings.ToLower(ext)) {
			continue
		}
		code := strings.TrimSuffix(name, "."+ext)
		if !slices.Contains(codes, code) {
			codes = append(codes, code)
		}
	}
	slices.Sort(codes)
	return codes, nil
}

// ChainResolver tries each resolver in order and returns the first match.
// A resolver reporting ErrLocaleNotFound passes to the next one; any other error stops the chain.
type ChainResolver []Resolver

// Resolve implements the Resolver interface
func (c ChainResolver) Resolve(ctx context.Context, code string) (Data, error) {
	for _, r := range c {
		if r == nil {
			continue
		}
		d, err := r.Resolve(ctx, code)
		if err == nil {
			return d, nil
		}
		if !errors.Is(err, ErrLocaleNotFound) {
			return Data{}, err
		}
	}
	return Data{}, fmt.Errorf("%w: %q", ErrLocaleNotFound, code)
}

// Codes implements the Lister interface, merging codes from every listing member.
func (c ChainResolver) Codes(ctx context.Context) ([]string, error) {
	var codes []string
	for _, r := range c {
		l, ok := r.(Lister)
		if !ok {
			continue
		}
		cs, err := l.Codes(ctx)
		if err != nil {
			return nil, err
		}
		for _, code := range cs {
			if !slices.Contains(codes, code) {
				codes = append(codes, code)
			}
		}
	}
	slices.Sort(codes)
	return codes, nil
}
