package hxui

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
)

// Hydrater is implemented by components to complete props decoded from a
// request before any handler runs.
//
// Props only carry what must survive a round trip through the browser (ids,
// flags). Hydrate fills in everything else: defaults, looked-up records,
// configuration owned by the component instance.
//
//	func (c *Form) Hydrate(ctx context.Context, props *Props) error {
//	    if props.ID == "" {
//	        props.ID = c.Name()
//	    }
//	    return nil
//	}
type Hydrater[P any] interface {
	Hydrate(ctx context.Context, props *P) error
}

// Renderer is implemented by components to produce templ output.
// Called for GET requests and after action handlers that return OK.
//
// Render should be pure: it reads props and produces HTML without side
// effects.
type Renderer[P any] interface {
	Render(ctx context.Context, props P) templ.Component
}

// Lifecycle is what a component must implement to be bound to its embedded
// *Component[P].
type Lifecycle[P any] interface {
	Hydrater[P]
	Renderer[P]
}

// Handler is the signature of an action handler.
type Handler[P any] func(ctx context.Context, props P, r *http.Request) Result[P]

// HXComponent is implemented by every *Component[P] and, through embedding,
// by user components. The registry mounts it under HXPrefix.
type HXComponent interface {
	HXPrefix() string
	HXServeHTTP(w http.ResponseWriter, r *http.Request)
}
