package i18n

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"
)

//go:embed translations/*.yaml
var defaultCatalogues embed.FS

// TranslationAdapter loads translations keyed by language.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations from memory.
type MapAdapter struct {
	Data map[string]map[string]any
}

// Load implements TranslationAdapter.
func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FileAdapter reads a single YAML catalogue from disk.
type FileAdapter struct {
	path string
}

// NewFileAdapter returns an adapter for the catalogue at path.
func NewFileAdapter(path string) *FileAdapter {
	return &FileAdapter{path: path}
}

// Load implements TranslationAdapter.
func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: file %q is empty", ErrInvalidCatalogue, a.path)
	}
	return ParseYAML(content)
}

// FSAdapter reads every .yaml and .yml file in a directory of fsys and
// merges them. Files are read in name order; later files win.
type FSAdapter struct {
	fsys fs.FS
	dir  string
}

// NewFSAdapter returns an adapter for the catalogues in dir.
func NewFSAdapter(fsys fs.FS, dir string) *FSAdapter {
	return &FSAdapter{fsys: fsys, dir: dir}
}

// Defaults returns an adapter for the embedded catalogues.
func Defaults() *FSAdapter {
	return NewFSAdapter(defaultCatalogues, "translations")
}

// Load implements TranslationAdapter.
func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		ext := strings.ToLower(path.Ext(e.Name()))
		if !e.IsDir() && (ext == ".yaml" || ext == ".yml") {
			names = append(names, e.Name())
		}
	}
	slices.Sort(names)

	result := make(map[string]map[string]any)
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		content, err := fs.ReadFile(a.fsys, path.Join(a.dir, name))
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		catalogue, err := ParseYAML(content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		mergeCatalogues(result, catalogue)
	}
	return result, nil
}

// MultiAdapter loads every adapter in order and merges the results, so later
// adapters override individual keys of earlier ones.
type MultiAdapter []TranslationAdapter

// Load implements TranslationAdapter.
func (m MultiAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any)
	for _, a := range m {
		if a == nil {
			return nil, ErrNilAdapter
		}
		loaded, err := a.Load(ctx)
		if err != nil {
			return nil, err
		}
		catalogue, err := normalizeCatalogue(loaded)
		if err != nil {
			return nil, err
		}
		mergeCatalogues(result, catalogue)
	}
	return result, nil
}
