package htmlconverter

import (
	"context"

	"golang.org/x/net/html"

	"github.com/rgonek/html-delta-converter/delta"
)

// CustomBlockInput describes an element claimed by a custom block.
type CustomBlockInput struct {
	// Node is the matched element. The converter is fully responsible for
	// any of its children; the engine does not traverse them.
	Node *html.Node
	// Attributes is a copy of the inline formatting active at the match
	// point. Mutating it has no effect on the surrounding conversion.
	Attributes delta.AttributeSet
	SourcePath string
}

// CustomBlockOutput contains the operations a custom block produced. They
// are appended verbatim, bypassing coalescing.
type CustomBlockOutput struct {
	Ops []delta.Op
}

// CustomBlock intercepts elements before built-in handling. Registered
// blocks are consulted in order; the first whose Match returns true wins
// and built-in handling for that element is skipped entirely. A Convert
// error fails the whole conversion.
type CustomBlock interface {
	Match(node *html.Node) bool
	Convert(ctx context.Context, in CustomBlockInput) (CustomBlockOutput, error)
}
