// Package demo is the showcase application served by `hxui serve`: a page
// composing the element building blocks and a signup form whose reset
// button lives outside of it.
package demo

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/pthm/hxui"
	"github.com/pthm/hxui/element"
	"github.com/pthm/hxui/form"
	"github.com/pthm/hxui/internal/slogx"
)

const htmxScript = "https://unpkg.com/htmx.org@2.0.4"

type App struct {
	store       *Store
	signup      *form.Component
	submissions *submissions
}

// New creates the demo application and registers its components.
func New(reg *hxui.Registry, store *Store, sensitive bool) *App {
	fields := []element.InputProps{
		{ID: "name", Label: "Your Name", Attrs: templ.Attributes{"type": "text"}},
		{ID: "age", Label: "Your Age", Attrs: templ.Attributes{"type": "number"}},
	}

	app := &App{
		store: store,
		signup: form.NewComponent("signup", fields, store.Save,
			form.WithSubmitLabel("Sign up"),
			form.WithSavedMessage("Thanks, you are signed up"),
			form.WithSensitive(sensitive),
		),
		submissions: newSubmissions(store),
	}

	reg.Add(app.signup, app.submissions)

	return app
}

// ServeHTTP renders the page.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := hxui.Render(w, r, a.Page(form.NewProps())); err != nil {
		slog.ErrorContext(r.Context(), "could not render page", slogx.Error(err))
	}
}

// Page renders the full document with the signup form identified by props.
func (a *App) Page(props form.Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>hxui</title>`+
			`<script src="`+htmxScript+`"></script></head><body>`); err != nil {
			return err
		}
		if err := hxui.ToastContainer().Render(ctx, w); err != nil {
			return err
		}

		body := element.Container(element.ContainerProps{As: element.Tag("main")})
		if err := body.Render(templ.WithChildren(ctx, a.showcase(props)), w); err != nil {
			return err
		}

		if err := hxui.CallbackScript().Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

func (a *App) showcase(props form.Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		list := submissionsProps{Limit: 10}
		if props.OnSaved.IsZero() {
			props.OnSaved = a.submissions.refresh(list)
		}
		if err := a.signup.Hydrate(ctx, &props); err != nil {
			return err
		}

		parts := []templ.Component{
			element.Input(element.InputProps{ID: "name", Label: "Your Name", Attrs: templ.Attributes{"type": "text"}}),
			element.Input(element.InputProps{ID: "age", Label: "Your Age", Attrs: templ.Attributes{"type": "number"}}),
			paragraph(withText(element.Button(element.ButtonAttrs{}), "A Button")),
			paragraph(withText(element.Button(element.AnchorAttrs{Href: "https://google.com"}), "An Anchor")),
			element.Container(element.ContainerProps{As: element.AsButton}),
			templ.Raw(`<h2>Sign up</h2>`),
			a.signup.Render(ctx, props),
			paragraph(withText(
				element.Button(element.ButtonAttrs{Attrs: element.MergeAttrs(
					templ.Attributes{"type": "button"},
					a.signup.ClearAttrs(props),
				)}),
				"Reset form",
			)),
			a.submissions.Render(ctx, list),
		}

		for _, part := range parts {
			if err := part.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

func paragraph(child templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return element.Tag("p")(nil).Render(templ.WithChildren(ctx, child), w)
	})
}

func withText(c templ.Component, text string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return c.Render(templ.WithChildren(ctx, templ.Raw(templ.EscapeString(text))), w)
	})
}
