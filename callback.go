package hxui

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
)

// CallbackEvent is the HX-Trigger event carrying a Callback.
const CallbackEvent = "hxui:callback"

// Callback is a reference to another component's action, carried in props so
// a handler can ask the browser to refresh that component once it succeeds.
// The URL holds the target's encoded props, so it inherits the target's
// signed or encrypted mode.
//
//	type Props struct {
//	    OnSaved hxui.Callback `msgpack:"cb,omitempty"`
//	}
//
//	return hxui.OK(props).Callback(props.OnSaved)
type Callback struct {
	URL    string `msgpack:"u"`
	Method string `msgpack:"m,omitempty"`
	Target string `msgpack:"t,omitempty"`
	Swap   string `msgpack:"s,omitempty"`
}

// IsZero reports whether the callback is unset.
func (cb Callback) IsZero() bool {
	return cb.URL == ""
}

// WithTarget sets the selector receiving the callback response.
func (cb Callback) WithTarget(selector string) Callback {
	cb.Target = selector
	return cb
}

// WithSwap sets how the callback response is swapped into its target.
func (cb Callback) WithSwap(mode SwapMode) Callback {
	cb.Swap = mode.String()
	return cb
}

// detail is the event detail read by CallbackScript.
func (cb Callback) detail() map[string]any {
	method := cb.Method
	if method == "" {
		method = http.MethodGet
	}
	data := map[string]any{"url": cb.URL, "method": method}
	if cb.Target != "" {
		data["target"] = cb.Target
	}
	if cb.Swap != "" {
		data["swap"] = cb.Swap
	}
	return data
}

// Callback returns a Callback invoking action with props. Props travel in the
// query string whatever the action's method.
func (c *Component[P]) Callback(action string, props P) Callback {
	method := http.MethodGet
	if def, ok := c.actions[action]; ok {
		method = def.method
	}
	return Callback{URL: c.URL(action, props), Method: method}
}

const callbackScript = `<script>document.body.addEventListener("` + CallbackEvent + `",function(e){` +
	`var d=e.detail;htmx.ajax(d.method||"GET",d.url,{target:d.target||"body",swap:d.swap||"innerHTML"});});</script>`

// CallbackScript renders the listener that performs callbacks. Place it once
// at the end of the page body, after htmx is loaded.
func CallbackScript() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, callbackScript)
		return err
	})
}
