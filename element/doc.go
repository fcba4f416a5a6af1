// Package element provides stateless templ renderers: a button that becomes
// an anchor when given a link target, a wrapper that renders any element,
// and a text input paired with its label.
//
// Renderers forward caller attributes and render the templ children found in
// the context, so in a .templ file they compose like plain markup:
//
//	@element.Button(element.ButtonPropsFrom(templ.Attributes{"href": "/docs"})) {
//	    Read the docs
//	}
package element
