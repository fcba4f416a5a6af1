package element

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// renderAttrs writes attrs with templ's attribute renderer. SafeURL values
// are written as plain strings since they are already sanitized.
func renderAttrs(ctx context.Context, w io.Writer, attrs templ.Attributes) error {
	out := make(templ.Attributes, len(attrs))
	for k, v := range attrs {
		if u, ok := v.(templ.SafeURL); ok {
			v = string(u)
		}
		out[k] = v
	}
	return templ.RenderAttributes(ctx, w, out)
}

// without returns a copy of attrs lacking key.
func without(attrs templ.Attributes, key string) templ.Attributes {
	out := make(templ.Attributes, len(attrs))
	for k, v := range attrs {
		if k != key {
			out[k] = v
		}
	}
	return out
}

// MergeAttrs returns the union of sets, later sets winning on conflicting
// keys. The inputs are not modified.
func MergeAttrs(sets ...templ.Attributes) templ.Attributes {
	n := 0
	for _, set := range sets {
		n += len(set)
	}
	out := make(templ.Attributes, n)
	for _, set := range sets {
		for k, v := range set {
			out[k] = v
		}
	}
	return out
}

// renderChildren renders the templ children carried by ctx.
func renderChildren(ctx context.Context, w io.Writer) error {
	return templ.GetChildren(ctx).Render(templ.ClearChildren(ctx), w)
}
