package delta

import "strings"

// Builder accumulates delta operations in document order, coalescing
// adjacent plain-text inserts that carry equal attributes.
type Builder struct {
	ops []Op
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Append adds a text insert, concatenating into the previous op when both
// are plain text with structurally equal attributes. Empty text is dropped.
func (b *Builder) Append(text string, attrs AttributeSet) {
	if text == "" {
		return
	}
	if len(b.ops) > 0 {
		last := &b.ops[len(b.ops)-1]
		if lastText, ok := last.Insert.(string); ok && last.Attributes.Equal(attrs) {
			last.Insert = lastText + text
			return
		}
	}
	b.ops = append(b.ops, Op{Insert: text, Attributes: attrs.Clone()})
}

// AppendNewline adds a structural newline carrying block attributes. It is
// never coalesced with neighboring text.
func (b *Builder) AppendNewline(attrs AttributeSet) {
	b.ops = append(b.ops, Op{Insert: "\n", Attributes: attrs.Clone()})
}

// AppendEmbed adds an embed insert.
func (b *Builder) AppendEmbed(embed Embed, attrs AttributeSet) {
	if len(embed) == 0 {
		return
	}
	b.ops = append(b.ops, Op{Insert: embed, Attributes: attrs.Clone()})
}

// AppendOp adds a pre-built operation verbatim, bypassing coalescing.
// Ops with an empty insert are dropped.
func (b *Builder) AppendOp(op Op) {
	if text, ok := op.Insert.(string); ok && text == "" {
		return
	}
	if op.Insert == nil {
		return
	}
	b.ops = append(b.ops, op)
}

// Len returns the number of accumulated operations.
func (b *Builder) Len() int {
	return len(b.ops)
}

// LineOpen reports whether the current line still has unterminated content:
// the last op is an embed or a text insert not ending in a newline.
func (b *Builder) LineOpen() bool {
	if len(b.ops) == 0 {
		return false
	}
	last := b.ops[len(b.ops)-1]
	if last.IsEmbed() {
		return true
	}
	return !strings.HasSuffix(last.Text(), "\n")
}

// TrimTrailingNewline removes one trailing newline from the last op when
// it is an unattributed text insert longer than the newline itself, so
// source text ending in "\n" does not double up with the structural block
// newline that follows. Structural newlines themselves are never touched.
func (b *Builder) TrimTrailingNewline() {
	if len(b.ops) == 0 {
		return
	}
	last := &b.ops[len(b.ops)-1]
	text, ok := last.Insert.(string)
	if !ok || len(last.Attributes) > 0 || len(text) < 2 || !strings.HasSuffix(text, "\n") {
		return
	}
	last.Insert = strings.TrimSuffix(text, "\n")
}

// Ops returns the accumulated operations, guaranteeing that non-empty
// output ends with a newline insert.
func (b *Builder) Ops() []Op {
	if len(b.ops) == 0 {
		return nil
	}
	if b.LineOpen() {
		b.AppendNewline(nil)
	}
	return b.ops
}
