package res

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// ResourceType represents the type of resource
type ResourceType int

const (
	// ResourceTypeUnknown is an unknown resource type
	ResourceTypeUnknown ResourceType = iota
	// ResourceTypeYAML is a YAML document (templates, variable bags, contract data)
	ResourceTypeYAML
	// ResourceTypeJSON is a JSON document
	ResourceTypeJSON
	// ResourceTypeImage is a raster or SVG image (letterhead logos)
	ResourceTypeImage
	// ResourceTypeOther is any other resource
	ResourceTypeOther
)

// ErrNotFound is returned when a resource cannot be located.
var ErrNotFound = errors.New("resource not found")

// Resource represents a loaded resource
type Resource struct {
	Path string
	Type ResourceType
	Data []byte
}

// Loader handles loading local resources
type Loader struct {
	// Base path for resolving relative names
	BasePath string

	// Resource cache
	cache     map[string]*Resource
	cacheLock sync.RWMutex

	// Resource search paths
	searchPaths []string
}

// NewLoader creates a new resource loader
func NewLoader(basePath string) *Loader {
	return &Loader{
		BasePath:    basePath,
		cache:       make(map[string]*Resource),
		searchPaths: []string{},
	}
}

// AddSearchPath adds a directory to search for local resources
func (l *Loader) AddSearchPath(path string) {
	l.searchPaths = append(l.searchPaths, path)
}

// SearchPaths returns the configured search paths in precedence order.
func (l *Loader) SearchPaths() []string {
	return append([]string(nil), l.searchPaths...)
}

// Load loads a resource from a file path
func (l *Loader) Load(name string) (*Resource, error) {
	l.cacheLock.RLock()
	if res, ok := l.cache[name]; ok {
		l.cacheLock.RUnlock()
		return res, nil
	}
	l.cacheLock.RUnlock()

	res, err := l.loadLocal(l.resolvePath(name))
	if err != nil {
		return nil, err
	}

	l.cacheLock.Lock()
	l.cache[name] = res
	l.cacheLock.Unlock()

	return res, nil
}

// List returns the files in dir whose extension is one of exts, sorted by
// name. A missing directory yields an empty list.
func (l *Loader) List(dir string, exts ...string) ([]string, error) {
	entries, err := os.ReadDir(l.resolvePath(dir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		for _, want := range exts {
			if ext == want {
				files = append(files, filepath.Join(l.resolvePath(dir), entry.Name()))
				break
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

// resolvePath resolves a path relative to the base path
func (l *Loader) resolvePath(name string) string {
	if filepath.IsAbs(name) || l.BasePath == "" {
		return name
	}
	return filepath.Join(l.BasePath, name)
}

// loadLocal loads a resource from a local file
func (l *Loader) loadLocal(path string) (*Resource, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return l.loadFromSearchPaths(path)
		}
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &Resource{
		Path: path,
		Type: determineResourceType(path),
		Data: data,
	}, nil
}

// loadFromSearchPaths tries to load a resource from the search paths
func (l *Loader) loadFromSearchPaths(filename string) (*Resource, error) {
	baseFilename := filepath.Base(filename)

	for _, searchPath := range l.searchPaths {
		path := filepath.Join(searchPath, baseFilename)

		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		return &Resource{
			Path: path,
			Type: determineResourceType(path),
			Data: data,
		}, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, filename)
}

// determineResourceType determines the type of a resource from its extension
func determineResourceType(path string) ResourceType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ResourceTypeYAML
	case ".json":
		return ResourceTypeJSON
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp", ".svg":
		return ResourceTypeImage
	case "":
		return ResourceTypeUnknown
	}
	return ResourceTypeOther
}

// GetReader returns a reader for a resource
func (r *Resource) GetReader() *bytes.Reader {
	return bytes.NewReader(r.Data)
}

// GetString returns the resource data as a string
func (r *Resource) GetString() string {
	return string(r.Data)
}
