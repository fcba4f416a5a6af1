package demo

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/pthm/hxui"
)

type submissionsProps struct {
	Limit int `msgpack:"n,omitempty"`
}

const submissionsID = "submissions"

// submissions lists saved entries. Forms refresh it through the callback
// returned by refresh.
type submissions struct {
	*hxui.Component[submissionsProps]
	store *Store
}

func newSubmissions(store *Store) *submissions {
	c := &submissions{
		Component: hxui.New[submissionsProps]("submissions"),
		store:     store,
	}
	c.Bind(c)
	return c
}

// refresh returns the callback re-rendering the list in place.
func (c *submissions) refresh(props submissionsProps) hxui.Callback {
	return c.Callback("", props).
		WithTarget("#" + submissionsID).
		WithSwap(hxui.SwapOuter)
}

func (c *submissions) Hydrate(ctx context.Context, props *submissionsProps) error {
	if props.Limit <= 0 {
		props.Limit = 10
	}
	return nil
}

func (c *submissions) Render(ctx context.Context, props submissionsProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		list := c.store.List()
		if len(list) > props.Limit {
			list = list[:props.Limit]
		}

		var sb strings.Builder
		sb.WriteString(`<section id="` + submissionsID + `"><h2>Submissions</h2>`)

		if len(list) == 0 {
			sb.WriteString(`<p>Nothing saved yet.</p>`)
		} else {
			sb.WriteString(`<ul>`)
			for _, sub := range list {
				sb.WriteString(`<li>`)
				for i, k := range sub.Keys() {
					if i > 0 {
						sb.WriteString(", ")
					}
					sb.WriteString(templ.EscapeString(k + ": " + sub.Values[k]))
				}
				sb.WriteString(`</li>`)
			}
			sb.WriteString(`</ul>`)
		}
		sb.WriteString(`</section>`)

		_, err := io.WriteString(w, sb.String())
		return err
	})
}
