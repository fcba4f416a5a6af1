package hxui

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/pkg/errors"

	"github.com/pthm/hxui/internal/slogx"
)

// PropsParam is the request parameter carrying encoded props. Form fields
// posted to a component must use other names.
const PropsParam = "p"

type actionDef[P any] struct {
	name    string
	method  string
	handler Handler[P]
}

// Component[P] is the base type embedded by user components.
// P is the Props type for this component.
//
// Components embed *Component[P] to gain action registration, URL building
// and request dispatch:
//
//	type Form struct {
//	    *hxui.Component[Props]
//	    onSave SaveFunc
//	}
//
//	func NewForm(onSave SaveFunc) *Form {
//	    c := &Form{
//	        Component: hxui.New[Props]("form"),
//	        onSave:    onSave,
//	    }
//	    c.Bind(c)
//	    c.Action("submit", c.handleSubmit)
//	    return c
//	}
//
// Each component instance receives a deterministic URL prefix based on its
// name and the source location of the New call.
type Component[P any] struct {
	name      string
	prefix    string
	sensitive bool
	actions   map[string]*actionDef[P]
	lifecycle Lifecycle[P]

	// Set by the registry.
	encoder *Encoder
	onError ErrorHandler
	metrics *metrics
}

// New creates a new component with the given name.
//
// By default, props are signed (visible in URLs but tamper-proof via HMAC).
// Call Sensitive to encrypt them instead.
func New[P any](name string) *Component[P] {
	return &Component[P]{
		name:    name,
		prefix:  "/_c/" + name + "-" + componentHash(name, 1),
		actions: make(map[string]*actionDef[P]),
	}
}

// Sensitive enables AES-GCM encryption of props.
func (c *Component[P]) Sensitive() *Component[P] {
	c.sensitive = true
	return c
}

func (c *Component[P]) Name() string { return c.name }

// Prefix returns the URL prefix all actions of this component are mounted under.
func (c *Component[P]) Prefix() string { return c.prefix }

func (c *Component[P]) IsSensitive() bool { return c.sensitive }

// Bind attaches the hydrate/render lifecycle of the embedding component.
// It must be called once, from the component constructor.
func (c *Component[P]) Bind(l Lifecycle[P]) {
	c.lifecycle = l
}

// Action registers a named action handler with the default POST method.
//
//	c.Action("submit", c.handleSubmit)
//	c.Action("preview", c.handlePreview).Method(http.MethodGet)
//
// Hydrate runs before the handler; Render runs after it when the handler
// returns OK.
func (c *Component[P]) Action(name string, handler Handler[P]) *ActionBuilder {
	def := &actionDef[P]{
		name:    name,
		method:  http.MethodPost,
		handler: handler,
	}
	c.actions[name] = def
	return &ActionBuilder{method: &def.method}
}

// HasAction reports whether an action is registered under name.
func (c *Component[P]) HasAction(name string) bool {
	_, ok := c.actions[name]
	return ok
}

// Wire returns the HTMX attributes invoking action with props. The empty
// action is the default render (GET).
//
//	<button { c.Wire("clear", props)... }>Reset</button>
func (c *Component[P]) Wire(action string, props P) templ.Attributes {
	method := http.MethodGet
	if def, ok := c.actions[action]; ok {
		method = def.method
	}
	path, encoded := c.buildActionURL(action, props)
	return WireAttrs(path, method, encoded)
}

// URL returns the GET URL of action with props encoded in the query string.
func (c *Component[P]) URL(action string, props P) string {
	path, encoded := c.buildActionURL(action, props)
	if encoded == "" {
		return path
	}
	return path + "?" + PropsParam + "=" + encoded
}

func (c *Component[P]) buildActionURL(action string, props P) (string, string) {
	path := c.prefix + "/" + action

	if c.encoder == nil {
		return path, ""
	}

	encoded, err := c.encoder.Encode(props, c.sensitive)
	if err != nil {
		slog.Error("could not encode component props",
			slog.String("component", c.name),
			slog.String("action", action),
			slogx.Error(err),
		)
		return path, ""
	}

	return path, encoded
}

// HXPrefix implements HXComponent.
func (c *Component[P]) HXPrefix() string { return c.prefix }

// HXServeHTTP decodes props, hydrates them, routes to the action handler and
// writes its Result.
func (c *Component[P]) HXServeHTTP(w http.ResponseWriter, r *http.Request) {
	action := strings.Trim(strings.TrimPrefix(r.URL.Path, c.prefix), "/")

	ctx := slogx.WithAttrs(r.Context(),
		slog.String("component", c.name),
		slog.String("action", action),
	)
	r = r.WithContext(ctx)

	if c.lifecycle == nil {
		c.fail(w, r, errors.Errorf("hxui: component %q has no bound lifecycle", c.name))
		return
	}

	var props P
	if encoded := readPropsParam(r); encoded != "" {
		if c.encoder == nil {
			c.fail(w, r, errors.Errorf("hxui: component %q is not registered", c.name))
			return
		}
		if err := c.encoder.Decode(encoded, c.sensitive, &props); err != nil {
			c.fail(w, r, wrapEncodingError(err))
			return
		}
	}

	if err := c.lifecycle.Hydrate(ctx, &props); err != nil {
		c.fail(w, r, fmt.Errorf("%w: %v", ErrHydrationFailed, err))
		return
	}

	if action == "" {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			c.fail(w, r, fmt.Errorf("%w: %s %s", ErrUnknownAction, r.Method, r.URL.Path))
			return
		}
		c.writeResult(w, r, OK(props))
		return
	}

	def, ok := c.actions[action]
	if !ok || def.method != r.Method {
		c.fail(w, r, fmt.Errorf("%w: %s %s", ErrUnknownAction, r.Method, r.URL.Path))
		return
	}

	slog.DebugContext(ctx, "dispatching component action")

	start := time.Now()
	result := def.handler(ctx, props, r)
	c.metrics.observe(c.name, action, result.outcome(), time.Since(start))

	c.writeResult(w, r, result)
}

func (c *Component[P]) writeResult(w http.ResponseWriter, r *http.Request, result Result[P]) {
	if err := result.GetErr(); err != nil {
		c.fail(w, r, err)
		return
	}

	header := w.Header()
	for k, v := range result.GetHeaders() {
		header.Set(k, v)
	}

	if trigger := BuildTriggerHeader(result.GetCallback(), result.GetTrigger(), result.GetTriggerData()); trigger != "" {
		header.Set("HX-Trigger", trigger)
	}
	if after := result.GetTriggerAfterSettle(); after != "" {
		header.Set("HX-Trigger-After-Settle", after)
	}

	status := result.GetStatus()
	if status == 0 {
		status = http.StatusOK
	}

	if redirect := result.GetRedirect(); redirect != "" {
		header.Set("HX-Redirect", redirect)
		w.WriteHeader(status)
		return
	}

	if result.ShouldSkip() {
		return
	}

	// Render fully before writing so a render error can still become an
	// error response.
	var buf bytes.Buffer
	if err := c.lifecycle.Render(r.Context(), result.GetProps()).Render(r.Context(), &buf); err != nil {
		c.fail(w, r, errors.Wrap(err, "could not render component"))
		return
	}
	buf.WriteString(RenderFlashesOOB(result.GetFlashes()))

	header.Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if r.Method != http.MethodHead {
		_, _ = w.Write(buf.Bytes())
	}
}

func (c *Component[P]) fail(w http.ResponseWriter, r *http.Request, err error) {
	onError := c.onError
	if onError == nil {
		onError = DefaultErrorHandler
	}
	onError(w, r, err)
}

// attach wires registry-owned dependencies into the component.
func (c *Component[P]) attach(reg *Registry) {
	c.encoder = reg.encoder
	c.metrics = reg.metrics
	c.onError = func(w http.ResponseWriter, r *http.Request, err error) {
		reg.OnError(w, r, err)
	}
}

// readPropsParam reads props from the query string (GET) or from the body
// (hx-vals on mutating requests).
func readPropsParam(r *http.Request) string {
	if v := r.URL.Query().Get(PropsParam); v != "" {
		return v
	}
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return ""
	}
	return r.PostFormValue(PropsParam)
}

// componentHash generates a deterministic hash from the component name and
// the source location of the caller skip frames up.
func componentHash(name string, skip int) string {
	input := name
	if _, file, line, ok := runtime.Caller(skip + 1); ok {
		input = fmt.Sprintf("%s:%d:%s", filepath.Base(file), line, name)
	}
	h := sha256.Sum256([]byte(input))
	return hex.EncodeToString(h[:4])
}
