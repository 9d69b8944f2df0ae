package htmlconverter

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/rgonek/html-delta-converter/delta"
)

func (s *state) convertParagraph(n *html.Node, tc traversalContext) error {
	return s.convertBlock(n, tc, nil)
}

func (s *state) convertHeading(n *html.Node, tc traversalContext) error {
	return s.convertBlock(n, tc, delta.AttributeSet{delta.KeyHeader: headingLevels[tagName(n)]})
}

// convertBlock converts the element's children with inherited inline style,
// then terminates the block with exactly one newline op carrying its block
// attributes.
func (s *state) convertBlock(n *html.Node, tc traversalContext, own delta.AttributeSet) error {
	tag := tagName(n)
	styleAttrs, dropped := parseStyleString(attr(n, "style"))
	s.warnDroppedStyles(tag, dropped)
	styleInline, styleBlock := splitStyleAttrs(styleAttrs)

	if err := s.convertChildren(n, tc.inherit(styleInline)); err != nil {
		return err
	}

	s.ops.AppendNewline(tc.blockAttrs(own.Merge(resolveBlockAttrs(n, styleBlock))))
	return nil
}

// convertContainer handles div-like wrappers: block-level, but a closing
// newline is emitted only when the line is still open, so a wrapper around
// block children adds no blank line.
func (s *state) convertContainer(n *html.Node, tc traversalContext) error {
	tag := tagName(n)
	styleAttrs, dropped := parseStyleString(attr(n, "style"))
	s.warnDroppedStyles(tag, dropped)
	styleInline, styleBlock := splitStyleAttrs(styleAttrs)

	if err := s.convertChildren(n, tc.inherit(styleInline)); err != nil {
		return err
	}

	if s.ops.LineOpen() {
		s.ops.AppendNewline(tc.blockAttrs(resolveBlockAttrs(n, styleBlock)))
	}
	return nil
}

func (s *state) convertBlockquote(n *html.Node, tc traversalContext) error {
	styleAttrs, dropped := parseStyleString(attr(n, "style"))
	s.warnDroppedStyles("blockquote", dropped)
	styleInline, styleBlock := splitStyleAttrs(styleAttrs)

	tc.insideBlockquote = true
	if err := s.convertChildren(n, tc.inherit(styleInline)); err != nil {
		return err
	}

	// block children inside the quote close their own lines with the
	// blockquote attribute; a remaining open line is bare inline content
	if s.ops.LineOpen() {
		s.ops.AppendNewline(tc.blockAttrs(resolveBlockAttrs(n, styleBlock)))
	}
	return nil
}

func (s *state) convertPre(n *html.Node, tc traversalContext) error {
	var codeValue any = true
	if language := s.codeLanguage(n); language != "" {
		codeValue = language
	}

	tc.insideCodeBlock = true
	if err := s.convertChildren(n, tc); err != nil {
		return err
	}

	// source text usually ends in a newline; the structural newline below
	// is the line terminator
	s.ops.TrimTrailingNewline()
	s.ops.AppendNewline(tc.blockAttrs(delta.AttributeSet{delta.KeyCodeBlock: codeValue}))
	return nil
}

const languageClassPrefix = "language-"

func (s *state) codeLanguage(n *html.Node) string {
	if s.config.LanguageDetection != LanguageFromClass {
		return ""
	}

	language := languageFromClasses(classes(n))
	if language == "" {
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if child.Type == html.ElementNode && tagName(child) == "code" {
				language = languageFromClasses(classes(child))
				break
			}
		}
	}
	if language == "" {
		return ""
	}

	if mapped, ok := s.config.LanguageMap[language]; ok {
		return mapped
	}
	return language
}

func languageFromClasses(classNames []string) string {
	for _, name := range classNames {
		if strings.HasPrefix(name, languageClassPrefix) {
			return strings.TrimPrefix(name, languageClassPrefix)
		}
	}
	return ""
}
