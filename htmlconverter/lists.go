package htmlconverter

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/rgonek/html-delta-converter/delta"
)

// convertList walks a list container. Depth increments per container; the
// items themselves carry the list type and indent on their closing
// newlines. Ordered numbering is implicit in contiguous same-attribute
// newline runs, so no numeric state survives a container.
func (s *state) convertList(n *html.Node, tc traversalContext) error {
	listType := delta.ListBullet
	if tagName(n) == "ol" {
		listType = delta.ListOrdered
	}
	tc.listDepth++

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.TextNode && strings.TrimSpace(child.Data) == "" {
			continue
		}
		if child.Type == html.ElementNode {
			switch tagName(child) {
			case "li":
				if err := s.convertListItem(child, tc, listType); err != nil {
					return err
				}
				continue
			case "ul", "ol":
				// list nested directly in a list, no wrapping item
				if err := s.convertList(child, tc); err != nil {
					return err
				}
				continue
			}
		}
		if err := s.convertNode(child, tc); err != nil {
			return err
		}
	}
	return nil
}

func (s *state) convertListItem(n *html.Node, tc traversalContext, listType string) error {
	styleAttrs, dropped := parseStyleString(attr(n, "style"))
	s.warnDroppedStyles("li", dropped)
	styleInline, styleBlock := splitStyleAttrs(styleAttrs)

	own := delta.AttributeSet{delta.KeyList: listType}
	if tc.listDepth > 1 {
		own[delta.KeyIndent] = tc.listDepth - 1
	}
	itemAttrs := tc.blockAttrs(own.Merge(resolveBlockAttrs(n, styleBlock)))

	childTC := tc.inherit(styleInline)
	childTC.listAttrs = itemAttrs

	start := s.ops.Len()
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode {
			if t := tagName(child); t == "ul" || t == "ol" {
				// close the item's own line before descending into the
				// nested list
				if s.ops.LineOpen() {
					s.ops.AppendNewline(itemAttrs)
				}
				if err := s.convertList(child, childTC); err != nil {
					return err
				}
				continue
			}
		}
		if err := s.convertNode(child, childTC); err != nil {
			return err
		}
	}

	// an open line, or a fully empty item, still needs its terminator
	if s.ops.LineOpen() || s.ops.Len() == start {
		s.ops.AppendNewline(itemAttrs)
	}
	return nil
}

// convertStrayListItem handles an li outside any list container; it
// degrades to a top-level bullet item.
func (s *state) convertStrayListItem(n *html.Node, tc traversalContext) error {
	tc.listDepth++
	return s.convertListItem(n, tc, delta.ListBullet)
}
