package hxui

import (
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"
)

// Render writes a templ component to the HTTP response. Use it for pages;
// component actions are rendered by the framework.
func Render(w http.ResponseWriter, r *http.Request, component templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(r.Context(), w)
}

// IsHTMX returns true if the request originated from HTMX.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// IsBoosted returns true if the request is a boosted navigation (hx-boost).
func IsBoosted(r *http.Request) bool {
	return r.Header.Get("HX-Boosted") == "true"
}

// CurrentURL returns the browser URL from the HX-Current-URL header.
func CurrentURL(r *http.Request) string {
	return r.Header.Get("HX-Current-URL")
}

// TriggerName returns the name attribute of the element that triggered the
// request, e.g. which submit button was pressed.
func TriggerName(r *http.Request) string {
	return r.Header.Get("HX-Trigger-Name")
}

// TriggerID returns the id attribute of the element that triggered the request.
func TriggerID(r *http.Request) string {
	return r.Header.Get("HX-Trigger")
}

// TargetID returns the id attribute of the hx-target element.
func TargetID(r *http.Request) string {
	return r.Header.Get("HX-Target")
}

// BuildTriggerHeader builds an HX-Trigger header value.
//
//	nil, "form:saved", nil              -> form:saved
//	nil, "form:saved", {"id": "signup"} -> {"form:saved":{"id":"signup"}}
//	cb, "form:saved", nil               -> {"form:saved":true,"hxui:callback":{...}}
func BuildTriggerHeader(cb *Callback, trigger string, data map[string]any) string {
	if cb == nil && trigger == "" {
		return ""
	}
	if cb == nil && data == nil {
		return trigger
	}

	merged := make(map[string]any, 2)
	if trigger != "" {
		if data != nil {
			merged[trigger] = data
		} else {
			merged[trigger] = true
		}
	}
	if cb != nil {
		merged[CallbackEvent] = cb.detail()
	}

	payload, err := json.Marshal(merged)
	if err != nil {
		return trigger
	}
	return string(payload)
}
