package hxui

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
)

// TestResult holds the outcome of rendering a component or executing one of
// its actions.
type TestResult struct {
	HTML            string
	StatusCode      int
	Headers         http.Header
	TriggeredEvents []string
	Flashes         []Flash
	RedirectURL     string
}

// TestRender runs Hydrate and Render without HTTP mechanics.
//
//	result, err := hxui.TestRender(ctx, form, form.Props{ID: "signup"})
//	if !result.HTMLContains(`<form id="signup"`) { ... }
func TestRender[P any](ctx context.Context, comp Lifecycle[P], props P) (*TestResult, error) {
	if err := comp.Hydrate(ctx, &props); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := comp.Render(ctx, props).Render(ctx, &buf); err != nil {
		return nil, err
	}

	return &TestResult{
		HTML:       buf.String(),
		StatusCode: http.StatusOK,
		Headers:    make(http.Header),
	}, nil
}

// TestGet executes a GET against comp.
func TestGet(comp HXComponent, target string) *TestResult {
	return NewTestRequest(http.MethodGet, target).Execute(comp)
}

// TestPost executes an HTMX POST against comp. Values are sent in the order
// given, which is the order the component sees them in r.PostForm.
//
//	result := hxui.TestPost(form, form.URL("submit", props), url.Values{"name": {"Alice"}})
func TestPost(comp HXComponent, target string, values url.Values) *TestResult {
	return NewTestRequest(http.MethodPost, target).WithValues(values).Execute(comp)
}

// TestRequestBuilder builds a request for TestRequestBuilder.Execute.
type TestRequestBuilder struct {
	method  string
	target  string
	values  url.Values
	headers http.Header
	ctx     context.Context
	htmx    bool
}

// NewTestRequest creates a request builder. Requests carry HX-Request: true
// unless WithoutHTMX is called.
func NewTestRequest(method, target string) *TestRequestBuilder {
	return &TestRequestBuilder{
		method:  method,
		target:  target,
		values:  url.Values{},
		headers: make(http.Header),
		ctx:     context.Background(),
		htmx:    true,
	}
}

func (b *TestRequestBuilder) WithValue(key, value string) *TestRequestBuilder {
	b.values.Add(key, value)
	return b
}

func (b *TestRequestBuilder) WithValues(values url.Values) *TestRequestBuilder {
	for k, vs := range values {
		for _, v := range vs {
			b.values.Add(k, v)
		}
	}
	return b
}

func (b *TestRequestBuilder) WithHeader(key, value string) *TestRequestBuilder {
	b.headers.Set(key, value)
	return b
}

func (b *TestRequestBuilder) WithContext(ctx context.Context) *TestRequestBuilder {
	b.ctx = ctx
	return b
}

// WithoutHTMX drops the HX-Request header, simulating a plain browser request.
func (b *TestRequestBuilder) WithoutHTMX() *TestRequestBuilder {
	b.htmx = false
	return b
}

// Request returns the built *http.Request.
func (b *TestRequestBuilder) Request() *http.Request {
	target := b.target
	var body *strings.Reader
	if b.method == http.MethodGet || b.method == http.MethodHead {
		if len(b.values) > 0 {
			sep := "?"
			if strings.Contains(target, "?") {
				sep = "&"
			}
			target += sep + b.values.Encode()
		}
		body = strings.NewReader("")
	} else {
		body = strings.NewReader(b.values.Encode())
	}

	req := httptest.NewRequest(b.method, target, body).WithContext(b.ctx)
	if body.Len() > 0 {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if b.htmx {
		req.Header.Set("HX-Request", "true")
	}
	for k, vs := range b.headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	return req
}

// Execute serves the request with comp and records the response.
func (b *TestRequestBuilder) Execute(comp HXComponent) *TestResult {
	return record(comp.HXServeHTTP, b.Request())
}

// ExecuteHandler serves the request with h, typically Registry.Handler().
func (b *TestRequestBuilder) ExecuteHandler(h http.Handler) *TestResult {
	return record(h.ServeHTTP, b.Request())
}

func record(serve http.HandlerFunc, req *http.Request) *TestResult {
	rec := httptest.NewRecorder()
	serve(rec, req)

	result := &TestResult{
		HTML:        rec.Body.String(),
		StatusCode:  rec.Code,
		Headers:     rec.Header(),
		RedirectURL: rec.Header().Get("HX-Redirect"),
		Flashes:     parseFlashesFromHTML(rec.Body.String()),
	}
	if trigger := rec.Header().Get("HX-Trigger"); trigger != "" {
		result.TriggeredEvents = parseTriggerHeader(trigger)
	}
	return result
}

func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

func (r *TestResult) HTMLContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !strings.Contains(r.HTML, s) {
			return false
		}
	}
	return true
}

func (r *TestResult) HasEvent(event string) bool {
	for _, e := range r.TriggeredEvents {
		if e == event {
			return true
		}
	}
	return false
}

func (r *TestResult) HasFlash(level, message string) bool {
	for _, f := range r.Flashes {
		if f.Level == level && f.Message == message {
			return true
		}
	}
	return false
}

func (r *TestResult) IsOK() bool {
	return r.StatusCode == http.StatusOK
}

// parseTriggerHeader extracts event names from an HX-Trigger value, which is
// either a comma-separated list or a JSON object keyed by event name.
func parseTriggerHeader(trigger string) []string {
	trigger = strings.TrimSpace(trigger)
	if trigger == "" {
		return nil
	}

	if strings.HasPrefix(trigger, "{") {
		var payload map[string]json.RawMessage
		if err := json.Unmarshal([]byte(trigger), &payload); err != nil {
			return nil
		}
		events := make([]string, 0, len(payload))
		for name := range payload {
			events = append(events, name)
		}
		return events
	}

	var events []string
	for _, p := range strings.Split(trigger, ",") {
		if p = strings.TrimSpace(p); p != "" {
			events = append(events, p)
		}
	}
	return events
}

// parseFlashesFromHTML extracts toasts rendered by RenderFlashesOOB.
func parseFlashesFromHTML(html string) []Flash {
	const prefix = `<div class="toast toast-`

	var flashes []Flash
	rest := html
	for {
		start := strings.Index(rest, prefix)
		if start == -1 {
			return flashes
		}
		rest = rest[start+len(prefix):]

		level, after, ok := strings.Cut(rest, `"`)
		if !ok {
			return flashes
		}
		_, after, ok = strings.Cut(after, ">")
		if !ok {
			return flashes
		}
		message, after, ok := strings.Cut(after, "</div>")
		if !ok {
			return flashes
		}

		flashes = append(flashes, Flash{Level: level, Message: message})
		rest = after
	}
}
