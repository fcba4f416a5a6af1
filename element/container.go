package element

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ElementFunc builds a component from attributes. Children are taken from the
// render context.
type ElementFunc func(attrs templ.Attributes) templ.Component

// DefaultTag is what a Container renders when As is nil.
const DefaultTag = "div"

// ContainerProps configures a Container.
type ContainerProps struct {
	// As is the element or component to render. Defaults to Tag(DefaultTag).
	As    ElementFunc
	Attrs templ.Attributes
}

// Container renders props.As with props.Attrs and the children it is given.
//
//	element.Container(element.ContainerProps{As: element.Tag("section")})
//	element.Container(element.ContainerProps{As: element.AsButton})
func Container(props ContainerProps) templ.Component {
	as := props.As
	if as == nil {
		as = Tag(DefaultTag)
	}
	return as(props.Attrs)
}

// voidElements never have children or a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// Tag renders a plain HTML element. An invalid name fails at render time
// with ErrInvalidTag.
func Tag(name string) ElementFunc {
	return func(attrs templ.Attributes) templ.Component {
		return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			if !validTagName(name) {
				return ErrInvalidTag
			}
			return writeElement(ctx, w, name, attrs)
		})
	}
}

func validTagName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && (r >= '0' && r <= '9' || r == '-'):
		default:
			return false
		}
	}
	return true
}

// writeElement writes <name attrs>children</name>, or only the start tag for
// void elements.
func writeElement(ctx context.Context, w io.Writer, name string, attrs templ.Attributes) error {
	if _, err := io.WriteString(w, "<"+name); err != nil {
		return err
	}
	if err := renderAttrs(ctx, w, attrs); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	if voidElements[name] {
		return nil
	}
	if err := renderChildren(ctx, w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</"+name+">")
	return err
}
