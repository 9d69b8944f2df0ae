package htmlconverter

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/rgonek/html-delta-converter/delta"
)

type elementHandler func(*state, *html.Node, traversalContext) error

// builtinHandlers is the per-tag dispatch table consulted after the custom
// block registry.
var builtinHandlers map[string]elementHandler

func init() {
	builtinHandlers = map[string]elementHandler{
		"html": (*state).convertTransparent,
		"body": (*state).convertTransparent,

		"p":  (*state).convertParagraph,
		"h1": (*state).convertHeading,
		"h2": (*state).convertHeading,
		"h3": (*state).convertHeading,
		"h4": (*state).convertHeading,
		"h5": (*state).convertHeading,
		"h6": (*state).convertHeading,

		"blockquote": (*state).convertBlockquote,
		"pre":        (*state).convertPre,
		"div":        (*state).convertContainer,
		"section":    (*state).convertContainer,
		"article":    (*state).convertContainer,

		"ul": (*state).convertList,
		"ol": (*state).convertList,
		"li": (*state).convertStrayListItem,

		"a":  (*state).convertAnchor,
		"br": (*state).convertLineBreak,
		"hr": (*state).convertRule,

		"img":    (*state).convertImage,
		"video":  (*state).convertVideo,
		"iframe": (*state).convertVideo,

		"b":      (*state).convertInline,
		"strong": (*state).convertInline,
		"i":      (*state).convertInline,
		"em":     (*state).convertInline,
		"u":      (*state).convertInline,
		"ins":    (*state).convertInline,
		"s":      (*state).convertInline,
		"strike": (*state).convertInline,
		"del":    (*state).convertInline,
		"sup":    (*state).convertInline,
		"sub":    (*state).convertInline,
		"span":   (*state).convertInline,
		"font":   (*state).convertInline,
		"mark":   (*state).convertInline,

		// inline code has no counterpart in the attribute set; the tag is a
		// plain container
		"code": (*state).convertTransparent,

		"script":   (*state).convertSkip,
		"style":    (*state).convertSkip,
		"head":     (*state).convertSkip,
		"title":    (*state).convertSkip,
		"template": (*state).convertSkip,
	}
}

var whitespaceRunRe = regexp.MustCompile(`[ \t\r\n\f]+`)

func (s *state) convertNode(n *html.Node, tc traversalContext) error {
	switch n.Type {
	case html.TextNode:
		s.convertText(n, tc)
		return nil
	case html.ElementNode:
		return s.convertElement(n, tc)
	case html.DocumentNode:
		return s.convertChildren(n, tc)
	default:
		// comments, doctype
		return nil
	}
}

func (s *state) convertChildren(n *html.Node, tc traversalContext) error {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if err := s.convertNode(child, tc); err != nil {
			return err
		}
	}
	return nil
}

func (s *state) convertElement(n *html.Node, tc traversalContext) error {
	if err := s.checkContext(); err != nil {
		return err
	}

	tag := tagName(n)

	// html/body wrappers added by the parser do not count toward depth
	if tag != "html" && tag != "body" {
		tc.depth++
	}
	if s.config.MaxDepth > 0 && tc.depth > s.config.MaxDepth {
		s.addWarning(
			delta.WarningDroppedFeature,
			tag,
			fmt.Sprintf("nesting deeper than maxDepth %d; subtree dropped", s.config.MaxDepth),
		)
		return nil
	}

	// Code content is verbatim plain text; formatting and structure inside
	// a code block contribute nothing.
	if tc.insideCodeBlock {
		if tag == "br" {
			s.ops.Append("\n", nil)
			return nil
		}
		return s.convertChildren(n, tc)
	}

	for _, block := range s.config.CustomBlocks {
		if !block.Match(n) {
			continue
		}
		output, err := block.Convert(s.ctx, CustomBlockInput{
			Node:       n,
			Attributes: tc.attrs.Clone(),
			SourcePath: s.options.SourcePath,
		})
		if err != nil {
			return fmt.Errorf("custom block converter for <%s> failed: %w", tag, err)
		}
		for _, op := range output.Ops {
			s.ops.AppendOp(op)
		}
		return nil
	}

	if handler, ok := builtinHandlers[tag]; ok {
		return handler(s, n, tc)
	}

	switch s.config.UnknownTags {
	case UnknownError:
		return fmt.Errorf("unknown tag <%s>", tag)
	case UnknownSkip:
		s.warnUnknownTag(tag, "unknown tag skipped")
		return nil
	default:
		s.warnUnknownTag(tag, "unknown tag treated as transparent container")
		return s.convertChildren(n, tc)
	}
}

func (s *state) convertText(n *html.Node, tc traversalContext) {
	text := n.Data

	if tc.insideCodeBlock {
		s.ops.Append(text, nil)
		return
	}

	if s.config.Whitespace == WhitespaceCollapse {
		if strings.TrimSpace(text) == "" {
			// inter-tag whitespace only matters inside an open line
			if s.ops.LineOpen() {
				s.ops.Append(" ", tc.attrs)
			}
			return
		}
		text = whitespaceRunRe.ReplaceAllString(text, " ")
		if !s.ops.LineOpen() {
			text = strings.TrimLeft(text, " ")
		}
	}

	s.ops.Append(text, tc.attrs)
}

func (s *state) convertTransparent(n *html.Node, tc traversalContext) error {
	return s.convertChildren(n, tc)
}

func (s *state) convertSkip(*html.Node, traversalContext) error {
	return nil
}

func (s *state) convertInline(n *html.Node, tc traversalContext) error {
	tag := tagName(n)
	partial := resolveInlineTag(tag, n)

	styleAttrs, dropped := parseStyleString(attr(n, "style"))
	s.warnDroppedStyles(tag, dropped)
	styleInline, _ := splitStyleAttrs(styleAttrs)

	return s.convertChildren(n, tc.inherit(partial.Merge(styleInline)))
}

func (s *state) convertAnchor(n *html.Node, tc traversalContext) error {
	href := strings.TrimSpace(attr(n, "href"))

	output, handled, err := s.applyLinkHook("a", LinkParseInput{
		SourcePath: s.options.SourcePath,
		Href:       href,
		Title:      strings.TrimSpace(attr(n, "title")),
	})
	if err != nil {
		return err
	}
	if handled {
		href = output.Href
	}

	styleAttrs, dropped := parseStyleString(attr(n, "style"))
	s.warnDroppedStyles("a", dropped)
	styleInline, _ := splitStyleAttrs(styleAttrs)

	if href == "" {
		s.addWarning(delta.WarningMissingAttribute, "a", "anchor without href treated as plain span")
		return s.convertChildren(n, tc.inherit(styleInline))
	}

	return s.convertChildren(n, tc.inherit(styleInline.Merge(delta.AttributeSet{delta.KeyLink: href})))
}

func (s *state) convertLineBreak(_ *html.Node, tc traversalContext) error {
	// soft break: current inline attributes, coalescing path
	s.ops.Append("\n", tc.attrs)
	return nil
}

func (s *state) convertRule(*html.Node, traversalContext) error {
	s.addWarning(delta.WarningDroppedFeature, "hr", "horizontal rule has no delta representation")
	return nil
}

func (s *state) warnUnknownTag(tag, message string) {
	if s.unknownSeen[tag] {
		return
	}
	s.unknownSeen[tag] = true
	s.addWarning(delta.WarningUnknownTag, tag, message)
}

func (s *state) warnDroppedStyles(tag string, dropped []string) {
	for _, declaration := range dropped {
		s.addWarning(
			delta.WarningInvalidStyle,
			tag,
			fmt.Sprintf("style declaration %q dropped", declaration),
		)
	}
}

func tagName(n *html.Node) string {
	if n.DataAtom != 0 {
		return n.DataAtom.String()
	}
	return strings.ToLower(n.Data)
}
