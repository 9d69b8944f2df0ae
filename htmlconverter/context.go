package htmlconverter

import "github.com/rgonek/html-delta-converter/delta"

// traversalContext carries the formatting state inherited down the tree.
// It is passed by value and its attribute maps are copied on merge, so a
// subtree can never leak formatting into a sibling subtree.
type traversalContext struct {
	// attrs is the inline formatting active at this point of the walk.
	attrs delta.AttributeSet
	// listAttrs is the block attribute set of the enclosing list item
	// (list type + indent), applied to every block-closing newline emitted
	// inside that item.
	listAttrs        delta.AttributeSet
	listDepth        int
	insideCodeBlock  bool
	insideBlockquote bool
	depth            int
}

// inherit returns a child context with partial merged into a copy of the
// current inline attributes; partial's keys win on collision.
func (tc traversalContext) inherit(partial delta.AttributeSet) traversalContext {
	if len(partial) == 0 {
		return tc
	}
	tc.attrs = tc.attrs.Merge(partial)
	return tc
}

// blockAttrs resolves the attribute set for a block-closing newline: the
// element's own block attributes on top of the enclosing list item and
// blockquote scope.
func (tc traversalContext) blockAttrs(own delta.AttributeSet) delta.AttributeSet {
	attrs := delta.AttributeSet{}
	for key, value := range tc.listAttrs {
		attrs[key] = value
	}
	if tc.insideBlockquote {
		attrs[delta.KeyBlockquote] = true
	}
	for key, value := range own {
		attrs[key] = value
	}
	if len(attrs) == 0 {
		return nil
	}
	return attrs
}
