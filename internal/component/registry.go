// internal/component/registry.go
//
// Component registry (cycle-free).
//
// Each concrete component lives under components/<name> and calls
// component.Register() in an init() function.  The router calls Init() on
// components that implement Initializer, then lets each one add its routes
// to the shared chi.Router.

package component

import (
	"sort"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/yanizio/frontdoor/internal/config"
)

// Initializer is optional.  If a Component implements it, the router
// calls Init(cfg) once before Routes.
type Initializer interface {
	Init(cfg *config.Config) error
}

// Component contract.  Routes adds page and API endpoints to r, e.g.
//
//	r.Get("/{locale}/login", getLogin)
//	r.Route("/api/slug", func(api chi.Router) { ... })
//
// Components share one router, so paths must not collide.
type Component interface {
	Name() string
	Routes(r chi.Router)
}

var (
	mu       sync.RWMutex
	registry = map[string]Component{}
)

// Register is invoked from component init() functions.  A later
// registration under the same name replaces the earlier one.
func Register(c Component) {
	mu.Lock()
	registry[c.Name()] = c
	mu.Unlock()
}

// All returns every registered component sorted by name, so mount order
// is stable between runs.
func All() []Component {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Component, 0, len(registry))
	for _, c := range registry {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}
