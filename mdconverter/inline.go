package mdconverter

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"

	"github.com/rgonek/html-delta-converter/delta"
)

func (s *state) convertInlineChildren(parent ast.Node, attrs delta.AttributeSet) error {
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		if err := s.convertInlineNode(child, attrs); err != nil {
			return err
		}
	}
	return nil
}

func (s *state) convertInlineNode(node ast.Node, attrs delta.AttributeSet) error {
	switch typed := node.(type) {
	case *ast.Text:
		s.ops.Append(string(typed.Value(s.source)), attrs)
		if typed.HardLineBreak() {
			s.ops.Append("\n", attrs)
		} else if typed.SoftLineBreak() {
			s.ops.Append(" ", attrs)
		}
		return nil

	case *ast.String:
		s.ops.Append(string(typed.Value), attrs)
		return nil

	case *ast.Emphasis:
		key := delta.KeyItalic
		if typed.Level >= 2 {
			key = delta.KeyBold
		}
		return s.convertInlineChildren(typed, attrs.Merge(delta.AttributeSet{key: true}))

	case *extast.Strikethrough:
		return s.convertInlineChildren(typed, attrs.Merge(delta.AttributeSet{delta.KeyStrike: true}))

	case *ast.CodeSpan:
		// no inline-code key in the delta attribute set; keep the text
		return s.convertInlineChildren(typed, attrs)

	case *ast.Link:
		href := strings.TrimSpace(string(typed.Destination))
		if href == "" {
			s.addWarning(delta.WarningMissingAttribute, "Link", "link without destination treated as plain text")
			return s.convertInlineChildren(typed, attrs)
		}
		return s.convertInlineChildren(typed, attrs.Merge(delta.AttributeSet{delta.KeyLink: href}))

	case *ast.AutoLink:
		url := string(typed.URL(s.source))
		s.ops.Append(string(typed.Label(s.source)), attrs.Merge(delta.AttributeSet{delta.KeyLink: url}))
		return nil

	case *ast.Image:
		src := strings.TrimSpace(string(typed.Destination))
		if src == "" {
			s.addWarning(delta.WarningMissingAttribute, "Image", "image without destination skipped")
			return nil
		}
		var opAttrs delta.AttributeSet
		if alt := strings.TrimSpace(string(typed.Text(s.source))); alt != "" {
			opAttrs = delta.AttributeSet{"alt": alt}
		}
		s.ops.AppendEmbed(delta.Embed{"image": src}, opAttrs)
		return nil

	case *ast.RawHTML:
		s.addWarning(delta.WarningDroppedFeature, "RawHTML", "inline raw HTML dropped")
		return nil

	default:
		if node.HasChildren() {
			return s.convertInlineChildren(node, attrs)
		}
		kind := node.Kind().String()
		s.addWarning(delta.WarningUnknownTag, kind, "unsupported markdown inline node: "+kind)
		return nil
	}
}
