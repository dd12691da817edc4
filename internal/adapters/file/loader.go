// Package file implements ports.DefinitionLoader over a directory of
// YAML machine definitions, one machine per file.
package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/automatalab/automata/pkg/domain"
)

// Loader reads *.yaml / *.yml definitions from a directory. Files are
// parsed and compiled on demand; compiled definitions are cached since
// they are immutable. One Loader may be shared across goroutines (the
// HTTP server does), so the cache is guarded.
type Loader struct {
	dir string

	mu    sync.RWMutex
	cache map[string]*domain.Definition
}

// NewLoader creates a loader rooted at dir.
func NewLoader(dir string) (*Loader, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("definitions directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("definitions path %s is not a directory", dir)
	}
	return &Loader{
		dir:   dir,
		cache: make(map[string]*domain.Definition),
	}, nil
}

// Get loads, compiles and returns the definition stored as <name>.yaml
// (or <name>.yml).
func (l *Loader) Get(name string) (*domain.Definition, error) {
	l.mu.RLock()
	def, ok := l.cache[name]
	l.mu.RUnlock()
	if ok {
		return def, nil
	}

	path, err := l.resolve(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definition %s: %w", name, err)
	}

	var loaded domain.Definition
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("parse definition %s: %w", name, err)
	}
	if loaded.Name == "" {
		loaded.Name = name
	}
	if err := loaded.Compile(); err != nil {
		return nil, fmt.Errorf("compile definition %s: %w", name, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	// Another goroutine may have loaded the same file meanwhile; keep the
	// cached copy so all callers share one immutable definition.
	if def, ok := l.cache[name]; ok {
		return def, nil
	}
	l.cache[name] = &loaded
	return &loaded, nil
}

// List returns the machine names found in the directory, sorted.
func (l *Loader) List() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("scan definitions directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())))
	}
	sort.Strings(names)
	return names, nil
}

func (l *Loader) resolve(name string) (string, error) {
	for _, ext := range []string{".yaml", ".yml"} {
		path := filepath.Join(l.dir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s", domain.ErrNotFound, name)
}
