// Package registry provides a global registry for platform backends.
// Backends register themselves in init() functions, allowing the CLI to
// discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sdlbase/internal/config"
	"github.com/vovakirdan/sdlbase/internal/platform"
)

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	ID    string
	Title string
}

// Factory creates a new, uninitialized platform system for the given
// configuration.
type Factory func(cfg config.Config, logger *log.Logger) platform.System

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a backend factory to the registry.
// Typically called from a backend's init() function.
// Panics if a backend with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", id))
	}

	factories[id] = f
	titles[id] = title
}

// List returns information about all registered backends, sorted by ID.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(factories))
	for id := range factories {
		result = append(result, BackendInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a backend by its ID.
// Returns an error if the ID is not registered.
func Create(id string, cfg config.Config, logger *log.Logger) (platform.System, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown backend %q", id)
	}

	return f(cfg, logger), nil
}

// Exists checks if a backend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
