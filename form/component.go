package form

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/pkg/errors"
	"github.com/rs/xid"

	"github.com/pthm/hxui"
	"github.com/pthm/hxui/element"
)

// Actions of a form Component.
const (
	ActionSubmit = "submit"
	ActionClear  = "clear"
)

// Events triggered by a form Component. Their detail is {"id": <form id>}.
const (
	EventSaved   = "form:saved"
	EventCleared = "form:cleared"
)

// Props identify a rendered form. State is rebuilt on every request and is
// never sent to the browser.
type Props struct {
	ID string `msgpack:"id"`
	// OnSaved, when set, is invoked by the browser after a successful save.
	OnSaved hxui.Callback `msgpack:"cb,omitempty"`
	State   State         `msgpack:"-"`
}

// NewProps returns props with a fresh form id.
func NewProps() Props {
	return Props{ID: "form-" + xid.New().String()}
}

type Options struct {
	// Attrs are extra attributes of the <form> element.
	Attrs       templ.Attributes
	SubmitLabel string
	// SavedMessage, when set, is flashed after a successful save.
	SavedMessage string
	Sensitive    bool
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Attrs:       templ.Attributes{},
		SubmitLabel: "Save",
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithAttrs(attrs templ.Attributes) OptionFunc {
	return func(opts *Options) {
		opts.Attrs = attrs
	}
}

func WithSubmitLabel(label string) OptionFunc {
	return func(opts *Options) {
		opts.SubmitLabel = label
	}
}

func WithSavedMessage(msg string) OptionFunc {
	return func(opts *Options) {
		opts.SavedMessage = msg
	}
}

// WithSensitive encrypts the form props instead of only signing them.
func WithSensitive(sensitive bool) OptionFunc {
	return func(opts *Options) {
		opts.Sensitive = sensitive
	}
}

// Component serves a Form over HTMX. The form posts to its submit action
// and swaps itself with the response. Each request works on its own Form, so
// requests never share state.
type Component struct {
	*hxui.Component[Props]

	fields []element.InputProps
	onSave SaveFunc
	opts   *Options
}

// NewComponent creates a form component rendering fields in order. onSave
// receives the values of every valid submission.
//
// It panics when a field is named hxui.PropsParam, since the field value and
// the form props would share one request parameter.
func NewComponent(name string, fields []element.InputProps, onSave SaveFunc, funcs ...OptionFunc) *Component {
	for _, f := range fields {
		if f.Name() == hxui.PropsParam {
			panic(fmt.Sprintf("form: field %q of %q uses the reserved name %q", f.ID, name, hxui.PropsParam))
		}
	}

	opts := NewOptions(funcs...)

	c := &Component{
		Component: hxui.New[Props](name),
		fields:    fields,
		onSave:    onSave,
		opts:      opts,
	}
	if opts.Sensitive {
		c.Sensitive()
	}

	c.Bind(c)
	c.Action(ActionSubmit, c.handleSubmit)
	c.Action(ActionClear, c.handleClear)

	return c
}

// Names returns the field names in document order.
func (c *Component) Names() []string {
	names := make([]string, len(c.fields))
	for i, f := range c.fields {
		names[i] = f.Name()
	}
	return names
}

func (c *Component) Hydrate(ctx context.Context, props *Props) error {
	if props.ID == "" {
		props.ID = c.Name()
	}
	if len(props.State.Entries) != len(c.fields) {
		props.State = New(c.Names(), nil).State()
	}
	return nil
}

func (c *Component) Render(ctx context.Context, props Props) templ.Component {
	attrs := element.MergeAttrs(
		c.opts.Attrs,
		c.Wire(ActionSubmit, props),
		templ.Attributes{
			"id":        props.ID,
			"hx-target": "this",
			"hx-swap":   hxui.SwapOuter.String(),
		},
	)

	fields := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for i, field := range c.fields {
			input := field
			input.ID = props.ID + "-" + field.ID
			input.Attrs = element.MergeAttrs(
				templ.Attributes{"type": "text"},
				field.Attrs,
				templ.Attributes{"name": field.Name(), "value": valueAt(props.State, i)},
			)
			if err := element.Input(input).Render(ctx, w); err != nil {
				return errors.Wrapf(err, "could not render field %q", field.Name())
			}
		}

		submit := element.Button(element.ButtonAttrs{Attrs: templ.Attributes{"type": "submit"}})
		label := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			_, err := io.WriteString(w, templ.EscapeString(c.opts.SubmitLabel))
			return err
		})
		return submit.Render(templ.WithChildren(ctx, label), w)
	})

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return View(attrs, props.State.Errors).Render(templ.WithChildren(ctx, fields), w)
	})
}

// ClearAttrs returns the attributes that make any element reset the form
// rendered with props, e.g. a button outside of it.
func (c *Component) ClearAttrs(props Props) templ.Attributes {
	return element.MergeAttrs(
		c.Wire(ActionClear, props),
		templ.Attributes{
			"hx-target": "#" + props.ID,
			"hx-swap":   hxui.SwapOuter.String(),
		},
	)
}

func (c *Component) handleSubmit(ctx context.Context, props Props, r *http.Request) hxui.Result[Props] {
	if err := r.ParseForm(); err != nil {
		return hxui.Err(props, errors.Wrap(err, "could not parse form"))
	}

	f := New(c.Names(), c.onSave)

	seen := make(map[string]bool, len(c.fields))
	for _, name := range c.Names() {
		if seen[name] {
			continue
		}
		seen[name] = true
		f.Set(name, r.PostForm[name]...)
	}

	saved := f.Submit(ctx)
	props.State = f.State()

	if !saved {
		return hxui.OK(props)
	}

	result := hxui.OK(props).
		Trigger(EventSaved, map[string]any{"id": props.ID}).
		Callback(props.OnSaved)
	if c.opts.SavedMessage != "" {
		result = result.Flash(hxui.FlashSuccess, c.opts.SavedMessage)
	}
	return result
}

func (c *Component) handleClear(ctx context.Context, props Props, r *http.Request) hxui.Result[Props] {
	f := New(c.Names(), nil)
	f.Handle().Clear()
	props.State = f.State()

	return hxui.OK(props).Trigger(EventCleared, map[string]any{"id": props.ID})
}

func valueAt(state State, i int) string {
	if i < len(state.Entries) {
		return state.Entries[i].Value
	}
	return ""
}

var _ hxui.Lifecycle[Props] = &Component{}
