package hxui

// Result[P] is returned from action handlers to control rendering and side
// effects.
//
//	// Success, re-render with updated props
//	return hxui.OK(props)
//
//	// Success with a toast and an event for other components
//	return hxui.OK(props).Flash(hxui.FlashSuccess, "Saved").Trigger("form:saved")
//
//	// Failure handed to the registry's OnError
//	return hxui.Err(props, err)
//
//	// Client-side navigation via HX-Redirect
//	return hxui.Redirect[Props]("/done")
type Result[P any] struct {
	props              P
	err                error
	redirect           string
	flashes            []Flash
	trigger            string
	triggerData        map[string]any
	triggerAfterSettle string
	callback           *Callback
	headers            map[string]string
	status             int
	skip               bool
}

// OK creates a success result rendered with props.
func OK[P any](props P) Result[P] {
	return Result[P]{props: props}
}

// Err creates a result whose error is passed to the registry's OnError.
// Domain outcomes a user can fix (such as validation) are not errors: render
// them with OK.
func Err[P any](props P, err error) Result[P] {
	return Result[P]{props: props, err: err}
}

// Skip indicates the handler wrote its own response body.
func Skip[P any]() Result[P] {
	return Result[P]{skip: true}
}

// Redirect navigates the browser via the HX-Redirect header.
func Redirect[P any](url string) Result[P] {
	return Result[P]{redirect: url}
}

// Flash appends a toast notification rendered as an out-of-band swap.
func (r Result[P]) Flash(level, message string) Result[P] {
	r.flashes = append(r.flashes, Flash{Level: level, Message: message})
	return r
}

// Trigger emits an event via the HX-Trigger header. With data, the event
// detail carries it.
//
//	return hxui.OK(props).Trigger("form:saved", map[string]any{"id": props.ID})
func (r Result[P]) Trigger(event string, data ...map[string]any) Result[P] {
	r.trigger = event
	if len(data) > 0 {
		r.triggerData = data[0]
	}
	return r
}

// Callback asks the browser to invoke cb once the response is processed. A
// zero cb is ignored, so optional callbacks from props can be passed as is.
//
//	return hxui.OK(props).Callback(props.OnSaved)
func (r Result[P]) Callback(cb Callback) Result[P] {
	if cb.IsZero() {
		return r
	}
	r.callback = &cb
	return r
}

// TriggerAfterSettle emits an event once the swap has settled.
func (r Result[P]) TriggerAfterSettle(event string) Result[P] {
	r.triggerAfterSettle = event
	return r
}

// PushURL updates the browser URL via HX-Push-Url.
func (r Result[P]) PushURL(url string) Result[P] {
	return r.Header("HX-Push-Url", url)
}

// Header sets a response header.
func (r Result[P]) Header(key, value string) Result[P] {
	if r.headers == nil {
		r.headers = make(map[string]string)
	}
	r.headers[key] = value
	return r
}

// Status sets the HTTP status code. HTMX does not swap 4xx/5xx responses by
// default, so keep 200 for anything that should replace the target.
func (r Result[P]) Status(code int) Result[P] {
	r.status = code
	return r
}

func (r Result[P]) GetProps() P { return r.props }
func (r Result[P]) GetErr() error { return r.err }
func (r Result[P]) GetRedirect() string { return r.redirect }
func (r Result[P]) GetFlashes() []Flash { return r.flashes }
func (r Result[P]) GetTrigger() string { return r.trigger }
func (r Result[P]) GetTriggerData() map[string]any { return r.triggerData }
func (r Result[P]) GetTriggerAfterSettle() string { return r.triggerAfterSettle }
func (r Result[P]) GetCallback() *Callback { return r.callback }
func (r Result[P]) GetHeaders() map[string]string { return r.headers }
func (r Result[P]) ShouldSkip() bool { return r.skip }

// GetStatus returns the status code; 0 means the default 200.
func (r Result[P]) GetStatus() int { return r.status }

// outcome classifies the result for metrics.
func (r Result[P]) outcome() string {
	switch {
	case r.err != nil:
		return "error"
	case r.redirect != "":
		return "redirect"
	case r.skip:
		return "skip"
	}
	return "ok"
}
