package hxui

import (
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"
)

// ActionBuilder configures a registered action.
//
//	c.Action("submit", handler)  // POST by default
//	c.Action("preview", handler).Method(http.MethodGet)
type ActionBuilder struct {
	method *string
}

// Method overrides the default POST method of an action.
func (ab *ActionBuilder) Method(m string) *ActionBuilder {
	*ab.method = m
	return ab
}

// WireAttrs builds the minimal HTMX attributes for a component action.
//
// GET actions get hx-get with props in the query string. Mutating methods get
// hx-post (etc.) with props in hx-vals, so the props travel in the body next
// to the form fields. Everything else (hx-target, hx-swap, hx-trigger) is
// the caller's business.
func WireAttrs(path, method, encoded string) templ.Attributes {
	attrs := templ.Attributes{}

	switch method {
	case http.MethodGet, "":
		url := path
		if encoded != "" {
			url = path + "?" + PropsParam + "=" + encoded
		}
		attrs["hx-get"] = url
		return attrs
	case http.MethodPost:
		attrs["hx-post"] = path
	case http.MethodPut:
		attrs["hx-put"] = path
	case http.MethodPatch:
		attrs["hx-patch"] = path
	case http.MethodDelete:
		attrs["hx-delete"] = path
	}

	if encoded != "" {
		data, _ := json.Marshal(map[string]string{PropsParam: encoded})
		attrs["hx-vals"] = string(data)
	}

	return attrs
}
