// Package hxui provides server-rendered UI building blocks for Go, built on
// Templ templates and HTMX.
//
// The module has three layers:
//
//   - package hxui (this package): the component runtime. Components embed
//     *Component[P], register named actions, and are served by a Registry.
//   - package element: stateless renderers (Button, Container, Input).
//   - package form: a validating form with a reset capability, plus its
//     HTMX binding as a component.
//
// # Components
//
// Components embed *Component[P] where P is the props type. Props travel
// through the browser with every request, so they hold only what must
// survive the round trip; anything else is restored by Hydrate.
//
//	type Form struct {
//	    *hxui.Component[Props]
//	}
//
// The lifecycle is formalized through two interfaces:
//   - Hydrater[P]: Hydrate(ctx, *P) completes decoded props
//   - Renderer[P]: Render(ctx, P) produces the templ.Component output
//
// Bind attaches them to the embedded *Component[P]. Hydrate runs before every
// handler; Render runs after handlers returning OK.
//
// # Actions
//
// Actions are registered with semantic names:
//
//	c.Action("submit", c.handleSubmit)
//	c.Action("preview", c.handlePreview).Method(http.MethodGet)
//
// Wire returns the HTMX attributes that invoke an action:
//
//	<form { c.Wire("submit", props)... } hx-target="this" hx-swap="outerHTML">
//
// # Security model
//
// Props are msgpack-encoded and either signed with HMAC (default, visible
// but tamper-proof) or encrypted with AES-GCM (Sensitive). Mutating requests
// require the HX-Request: true header that HTMX sends.
//
// # Communication
//
// Handlers return a Result[P] that may carry HX-Trigger events and flash
// toasts:
//
//	return hxui.OK(props).Trigger("form:saved", map[string]any{"id": props.ID})
//
// # Registration
//
//	reg := hxui.NewRegistry(secret)
//	reg.Add(signup, contact)
//	mux.Handle("/_c/", reg.Handler())
package hxui
