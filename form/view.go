package form

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/pthm/hxui/element"
)

// ErrorListClass is the class of the rendered error list.
const ErrorListClass = "form-errors"

// View renders a <form> with attrs around its children, preceded by the
// error list when errs is not empty.
//
//	ctx = templ.WithChildren(ctx, fields)
//	err := form.View(attrs, state.Errors).Render(ctx, w)
func View(attrs templ.Attributes, errs []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)

		body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			if err := ErrorList(errs).Render(ctx, w); err != nil {
				return err
			}
			return children.Render(ctx, w)
		})

		container := element.Container(element.ContainerProps{
			As:    element.Tag("form"),
			Attrs: attrs,
		})
		return container.Render(templ.WithChildren(ctx, body), w)
	})
}

// ErrorList renders errs as an unordered list, or nothing at all when there
// are none.
func ErrorList(errs []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(errs) == 0 {
			return nil
		}

		if _, err := io.WriteString(w, `<ul class="`+ErrorListClass+`" style="color: red; margin-bottom: 1rem;">`); err != nil {
			return err
		}
		for _, msg := range errs {
			if _, err := io.WriteString(w, "<li>"+templ.EscapeString(msg)+"</li>"); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</ul>")
		return err
	})
}
