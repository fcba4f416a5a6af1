package element

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// InputRef is a handle on a rendered input, filled in when the Input that
// holds it renders. Owners use it to address the field afterwards, for
// instance as an hx-target or to move focus to it.
type InputRef struct {
	id string
}

// ID returns the id of the bound input, or "" before it is rendered.
func (r *InputRef) ID() string { return r.id }

// Bound reports whether an Input has rendered with this ref.
func (r *InputRef) Bound() bool { return r.id != "" }

// Selector returns a CSS selector for the bound input.
func (r *InputRef) Selector() string {
	if r.id == "" {
		return ""
	}
	return "#" + r.id
}

// FocusAttrs returns attributes that, placed on an htmx-driven element, move
// focus to the bound input once the swap settles.
func (r *InputRef) FocusAttrs() templ.Attributes {
	if r.id == "" {
		return templ.Attributes{}
	}
	return templ.Attributes{
		"hx-on::after-settle": "document.getElementById('" + r.id + "')?.focus()",
	}
}

// InputProps configures an Input. ID and Label are required.
type InputProps struct {
	ID    string
	Label string
	// Attrs are standard <input> attributes (type, name, value, ...).
	// An "id" key is ignored in favor of ID.
	Attrs templ.Attributes
	Ref   *InputRef
}

// Name returns the name the field submits under: the "name" attribute, or
// the ID when there is none.
func (p InputProps) Name() string {
	if name, ok := p.Attrs["name"].(string); ok && name != "" {
		return name
	}
	return p.ID
}

// Input renders <p><label for=ID>Label</label><input id=ID ...></p>.
func Input(props InputProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if props.ID == "" {
			return ErrMissingID
		}
		if props.Label == "" {
			return ErrMissingLabel
		}

		if props.Ref != nil {
			props.Ref.id = props.ID
		}

		if _, err := io.WriteString(w, `<p><label for="`+templ.EscapeString(props.ID)+`">`+templ.EscapeString(props.Label)+`</label><input id="`+templ.EscapeString(props.ID)+`"`); err != nil {
			return err
		}
		if err := renderAttrs(ctx, w, without(props.Attrs, "id")); err != nil {
			return err
		}
		_, err := io.WriteString(w, `></p>`)
		return err
	})
}
