package hxui

// SwapMode is an hx-swap strategy.
//
// See https://htmx.org/attributes/hx-swap/.
type SwapMode string

const (
	// SwapOuter replaces the entire target element. Components re-rendering
	// themselves in place use this.
	SwapOuter SwapMode = "outerHTML"

	// SwapInner replaces only the target's contents.
	SwapInner SwapMode = "innerHTML"

	SwapBeforeEnd   SwapMode = "beforeend"
	SwapAfterBegin  SwapMode = "afterbegin"
	SwapBeforeBegin SwapMode = "beforebegin"
	SwapAfterEnd    SwapMode = "afterend"
	SwapDelete      SwapMode = "delete"

	// SwapNone discards the response; useful for actions whose only effect
	// is an HX-Trigger event.
	SwapNone SwapMode = "none"
)

func (m SwapMode) String() string { return string(m) }
