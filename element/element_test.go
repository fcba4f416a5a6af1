package element

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func render(t *testing.T, c templ.Component, children templ.Component) string {
	t.Helper()
	ctx := context.Background()
	if children != nil {
		ctx = templ.WithChildren(ctx, children)
	}
	var sb strings.Builder
	if err := c.Render(ctx, &sb); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return sb.String()
}

func TestButtonPropsFrom(t *testing.T) {
	tests := []struct {
		name   string
		attrs  templ.Attributes
		anchor bool
	}{
		{"no attributes", nil, false},
		{"button attributes", templ.Attributes{"type": "submit"}, false},
		{"href present", templ.Attributes{"href": "https://example.com"}, true},
		{"empty href still selects anchor", templ.Attributes{"href": ""}, true},
		{"safe url href", templ.Attributes{"href": templ.SafeURL("/docs")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := ButtonPropsFrom(tt.attrs)
			if got := IsAnchor(props); got != tt.anchor {
				t.Errorf("IsAnchor() = %v, want %v", got, tt.anchor)
			}
			if a, ok := props.(AnchorAttrs); ok {
				if _, has := a.Attrs["href"]; has {
					t.Error("AnchorAttrs.Attrs should not repeat href")
				}
			}
		})
	}
}

func TestButtonRendersButton(t *testing.T) {
	html := render(t, Button(ButtonPropsFrom(templ.Attributes{"type": "button", "disabled": true})), text("A Button"))

	want := `<button class="button" disabled type="button">A Button</button>`
	if html != want {
		t.Errorf("Button() = %q, want %q", html, want)
	}
}

func TestButtonRendersAnchor(t *testing.T) {
	html := render(t, Button(ButtonPropsFrom(templ.Attributes{"href": "https://google.com"})), text("An Anchor"))

	want := `<a class="button" href="https://google.com">An Anchor</a>`
	if html != want {
		t.Errorf("Button() = %q, want %q", html, want)
	}
}

func TestButtonSanitizesHref(t *testing.T) {
	html := render(t, Button(AnchorAttrs{Href: "javascript:alert(1)"}), nil)

	if strings.Contains(html, "javascript:") {
		t.Errorf("unsafe href was rendered: %s", html)
	}
}

func TestButtonIgnoresHrefOnButtonVariant(t *testing.T) {
	html := render(t, Button(ButtonAttrs{Attrs: templ.Attributes{"href": "/x"}}), nil)

	if html != `<button class="button"></button>` {
		t.Errorf("Button() = %q", html)
	}
}

func TestButtonCallerClassOverrides(t *testing.T) {
	html := render(t, Button(ButtonAttrs{Attrs: templ.Attributes{"class": "danger"}}), nil)

	if !strings.Contains(html, `class="danger"`) || strings.Contains(html, `class="button"`) {
		t.Errorf("Button() = %q, want caller class only", html)
	}
}

func TestButtonEscapesAttributes(t *testing.T) {
	html := render(t, Button(ButtonAttrs{Attrs: templ.Attributes{"title": `"><script>`}}), nil)

	if strings.Contains(html, "<script>") {
		t.Errorf("attribute value not escaped: %s", html)
	}
}

func TestContainerDefaultsToDiv(t *testing.T) {
	html := render(t, Container(ContainerProps{Attrs: templ.Attributes{"class": "wrap"}}), text("content"))

	if html != `<div class="wrap">content</div>` {
		t.Errorf("Container() = %q", html)
	}
}

func TestContainerCustomTag(t *testing.T) {
	html := render(t, Container(ContainerProps{As: Tag("section"), Attrs: templ.Attributes{"aria-label": "main"}}), text("x"))

	if html != `<section aria-label="main">x</section>` {
		t.Errorf("Container() = %q", html)
	}
}

func TestContainerAsButton(t *testing.T) {
	html := render(t, Container(ContainerProps{As: AsButton, Attrs: templ.Attributes{"href": "/home"}}), text("Home"))

	if html != `<a class="button" href="/home">Home</a>` {
		t.Errorf("Container(AsButton) = %q", html)
	}
}

func TestContainerVoidTag(t *testing.T) {
	html := render(t, Container(ContainerProps{As: Tag("hr")}), text("ignored"))

	if html != `<hr>` {
		t.Errorf("Container(hr) = %q", html)
	}
}

func TestTagRejectsInvalidNames(t *testing.T) {
	for _, name := range []string{"", "div onclick", "1p", "<script"} {
		err := Tag(name)(nil).Render(context.Background(), io.Discard)
		if !errors.Is(err, ErrInvalidTag) {
			t.Errorf("Tag(%q) error = %v, want ErrInvalidTag", name, err)
		}
	}
}

func TestInput(t *testing.T) {
	ref := &InputRef{}
	if ref.Bound() {
		t.Fatal("ref should not be bound before render")
	}

	html := render(t, Input(InputProps{
		ID:    "name",
		Label: "Your Name",
		Attrs: templ.Attributes{"type": "text", "id": "ignored"},
		Ref:   ref,
	}), nil)

	want := `<p><label for="name">Your Name</label><input id="name" type="text"></p>`
	if html != want {
		t.Errorf("Input() = %q, want %q", html, want)
	}

	if ref.ID() != "name" || ref.Selector() != "#name" {
		t.Errorf("ref = (%q, %q), want (name, #name)", ref.ID(), ref.Selector())
	}
	if _, ok := ref.FocusAttrs()["hx-on::after-settle"]; !ok {
		t.Error("FocusAttrs() missing hx-on::after-settle")
	}
}

func TestInputRequiresIDAndLabel(t *testing.T) {
	if err := Input(InputProps{Label: "x"}).Render(context.Background(), io.Discard); !errors.Is(err, ErrMissingID) {
		t.Errorf("error = %v, want ErrMissingID", err)
	}
	if err := Input(InputProps{ID: "x"}).Render(context.Background(), io.Discard); !errors.Is(err, ErrMissingLabel) {
		t.Errorf("error = %v, want ErrMissingLabel", err)
	}
}

func TestInputPropsName(t *testing.T) {
	if got := (InputProps{ID: "age"}).Name(); got != "age" {
		t.Errorf("Name() = %q, want age", got)
	}
	if got := (InputProps{ID: "age", Attrs: templ.Attributes{"name": "years"}}).Name(); got != "years" {
		t.Errorf("Name() = %q, want years", got)
	}
}

func TestMergeAttrs(t *testing.T) {
	base := templ.Attributes{"class": "a", "id": "x"}
	over := templ.Attributes{"class": "b"}

	got := MergeAttrs(base, over, nil)
	if got["class"] != "b" || got["id"] != "x" {
		t.Errorf("MergeAttrs() = %v", got)
	}
	if base["class"] != "a" {
		t.Error("MergeAttrs() modified its input")
	}
}

func TestSafeURLAttributesAreRendered(t *testing.T) {
	html := render(t, Tag("a")(templ.Attributes{"href": templ.SafeURL("/docs"), "hidden": false}), text("Docs"))

	if html != `<a href="/docs">Docs</a>` {
		t.Errorf("Tag(a) = %q", html)
	}
}

func TestInputAttrsAreNotModified(t *testing.T) {
	attrs := templ.Attributes{"id": "other", "name": "email"}
	html := render(t, Input(InputProps{ID: "email", Label: "Email", Attrs: attrs}), nil)

	if strings.Contains(html, `"other"`) {
		t.Errorf("Input() rendered the overridden id: %s", html)
	}
	if attrs["id"] != "other" {
		t.Error("Input() modified the caller's attributes")
	}
}
