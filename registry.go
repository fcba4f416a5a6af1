package hxui

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pthm/hxui/internal/slogx"
)

// ErrorHandler writes the response for a failed component request.
type ErrorHandler func(http.ResponseWriter, *http.Request, error)

// attacher is implemented by *Component[P] and promoted to the components
// embedding it.
type attacher interface {
	attach(reg *Registry)
}

// Registry manages component registration and routing.
type Registry struct {
	mu         sync.RWMutex
	mux        *http.ServeMux
	encoder    *Encoder
	components map[string]HXComponent
	prom       *prometheus.Registry
	metrics    *metrics

	// OnError is called when a component request fails.
	OnError ErrorHandler
}

// NewRegistry creates a component registry keying props encoding with
// encryptionKey.
func NewRegistry(encryptionKey []byte) *Registry {
	enc, err := NewEncoder(encryptionKey)
	if err != nil {
		panic(fmt.Sprintf("hxui: failed to create encoder: %v", err))
	}

	prom := prometheus.NewRegistry()

	return &Registry{
		mux:        http.NewServeMux(),
		encoder:    enc,
		components: make(map[string]HXComponent),
		prom:       prom,
		metrics:    newMetrics(prom),
		OnError:    DefaultErrorHandler,
	}
}

// DefaultErrorHandler maps sentinel errors to status codes and logs
// everything else.
func DefaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case IsNotFound(err):
		http.Error(w, "Not found", http.StatusNotFound)
	case IsDecodingError(err):
		http.Error(w, "Bad request", http.StatusBadRequest)
	default:
		slog.ErrorContext(r.Context(), "component request failed", slogx.Error(err))
		http.Error(w, "Internal error", http.StatusInternalServerError)
	}
}

// Components returns the number of registered components.
func (reg *Registry) Components() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.components)
}

// Encoder returns the registry's props encoder.
func (reg *Registry) Encoder() *Encoder {
	return reg.encoder
}

// Add registers components. Each must embed *hxui.Component[P] and have
// called Bind. Panics on prefix collisions.
func (reg *Registry) Add(components ...HXComponent) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	for _, comp := range components {
		prefix := comp.HXPrefix()
		if _, exists := reg.components[prefix]; exists {
			panic(fmt.Sprintf("hxui: prefix collision for %q", prefix))
		}

		if a, ok := comp.(attacher); ok {
			a.attach(reg)
		}

		reg.components[prefix] = comp
		reg.mux.HandleFunc(prefix+"/", comp.HXServeHTTP)
	}
}

// Handler returns the HTTP handler for component routes. Mount it at "/_c/".
//
// Mutating requests must carry HX-Request: true. Browsers do not send that
// header cross-origin without a CORS preflight, which makes it a CSRF guard.
func (reg *Registry) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead && !IsHTMX(r) {
			http.Error(w, "Forbidden: HTMX request required", http.StatusForbidden)
			return
		}

		reg.mux.ServeHTTP(w, r)
	})
}

// MetricsHandler exposes the registry's action metrics in the Prometheus
// text format.
func (reg *Registry) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(reg.prom, promhttp.HandlerOpts{})
}

// Gatherer returns the Prometheus registry holding the action metrics, for
// callers merging them into their own endpoint.
func (reg *Registry) Gatherer() prometheus.Gatherer {
	return reg.prom
}
