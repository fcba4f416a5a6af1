package element

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ButtonClass is the class every Button carries unless the caller sets one.
const ButtonClass = "button"

// ButtonProps is either ButtonAttrs or AnchorAttrs.
type ButtonProps interface {
	buttonProps()
}

// ButtonAttrs renders a <button>. It has no link target; an "href" key in
// Attrs is ignored.
type ButtonAttrs struct {
	Attrs templ.Attributes
}

// AnchorAttrs renders an <a>. Href is sanitized with templ.URL.
type AnchorAttrs struct {
	Href  string
	Attrs templ.Attributes
}

func (ButtonAttrs) buttonProps() {}
func (AnchorAttrs) buttonProps() {}

// ButtonPropsFrom picks the variant from attrs: the presence of an "href"
// key selects the anchor, its absence the button.
func ButtonPropsFrom(attrs templ.Attributes) ButtonProps {
	href, ok := attrs["href"]
	if !ok {
		return ButtonAttrs{Attrs: attrs}
	}

	rest := make(templ.Attributes, len(attrs)-1)
	for k, v := range attrs {
		if k != "href" {
			rest[k] = v
		}
	}

	var target string
	switch v := href.(type) {
	case nil:
	case string:
		target = v
	case templ.SafeURL:
		target = string(v)
	default:
		target = fmt.Sprint(v)
	}

	return AnchorAttrs{Href: target, Attrs: rest}
}

// IsAnchor reports whether props renders a link.
func IsAnchor(props ButtonProps) bool {
	_, ok := props.(AnchorAttrs)
	return ok
}

// Button renders props as <button class="button"> or <a class="button">
// around its children. A caller-supplied class replaces the default one.
func Button(props ButtonProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		switch p := props.(type) {
		case AnchorAttrs:
			attrs := MergeAttrs(templ.Attributes{"class": ButtonClass}, p.Attrs)
			attrs["href"] = string(templ.URL(p.Href))
			return writeElement(ctx, w, "a", attrs)
		case ButtonAttrs:
			attrs := MergeAttrs(templ.Attributes{"class": ButtonClass}, p.Attrs)
			delete(attrs, "href")
			return writeElement(ctx, w, "button", attrs)
		default:
			return writeElement(ctx, w, "button", templ.Attributes{"class": ButtonClass})
		}
	})
}

// AsButton adapts Button to an ElementFunc so a Container can render as a
// button or anchor.
func AsButton(attrs templ.Attributes) templ.Component {
	return Button(ButtonPropsFrom(attrs))
}

var _ ElementFunc = AsButton
