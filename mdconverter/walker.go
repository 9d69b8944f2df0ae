package mdconverter

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"

	"github.com/rgonek/html-delta-converter/delta"
)

func (s *state) convertBlockChildren(parent ast.Node, bc blockContext) error {
	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		if err := s.convertBlockNode(child, bc); err != nil {
			return err
		}
	}
	return nil
}

func (s *state) convertBlockNode(node ast.Node, bc blockContext) error {
	switch typed := node.(type) {
	case *ast.Paragraph:
		return s.convertParagraphNode(typed, bc)
	case *ast.TextBlock:
		return s.convertParagraphNode(typed, bc)
	case *ast.Heading:
		return s.convertHeadingNode(typed, bc)
	case *ast.Blockquote:
		bc.insideBlockquote = true
		return s.convertBlockChildren(typed, bc)
	case *ast.FencedCodeBlock:
		return s.convertCodeBlockNode(typed, string(typed.Language(s.source)), bc)
	case *ast.CodeBlock:
		return s.convertCodeBlockNode(typed, "", bc)
	case *ast.List:
		return s.convertListNode(typed, bc)
	case *ast.ThematicBreak:
		s.addWarning(delta.WarningDroppedFeature, "ThematicBreak", "thematic break has no delta representation")
		return nil
	case *ast.HTMLBlock:
		s.addWarning(delta.WarningDroppedFeature, "HTMLBlock", "raw HTML block dropped")
		return nil
	case *extast.Table:
		s.addWarning(delta.WarningDroppedFeature, "Table", "table has no delta representation")
		return nil
	default:
		kind := node.Kind().String()
		s.addWarning(delta.WarningUnknownTag, kind, "unsupported markdown block node: "+kind)
		if node.Type() == ast.TypeBlock && node.HasChildren() {
			return s.convertBlockChildren(node, bc)
		}
		return nil
	}
}

func (s *state) convertParagraphNode(node ast.Node, bc blockContext) error {
	if err := s.convertInlineChildren(node, nil); err != nil {
		return err
	}
	s.ops.AppendNewline(bc.blockAttrs(nil))
	return nil
}

func (s *state) convertHeadingNode(node *ast.Heading, bc blockContext) error {
	level := node.Level + s.config.HeadingOffset
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}

	if err := s.convertInlineChildren(node, nil); err != nil {
		return err
	}
	s.ops.AppendNewline(bc.blockAttrs(delta.AttributeSet{delta.KeyHeader: level}))
	return nil
}

func (s *state) convertCodeBlockNode(node ast.Node, language string, bc blockContext) error {
	var sb strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		sb.Write(segment.Value(s.source))
	}

	text := strings.TrimSuffix(sb.String(), "\n")
	if text != "" {
		s.ops.Append(text, nil)
	}

	var codeValue any = true
	if language = strings.TrimSpace(language); language != "" {
		if mapped, ok := s.config.LanguageMap[language]; ok {
			language = mapped
		}
		codeValue = language
	}
	s.ops.AppendNewline(bc.blockAttrs(delta.AttributeSet{delta.KeyCodeBlock: codeValue}))
	return nil
}

func (s *state) convertListNode(list *ast.List, bc blockContext) error {
	listType := delta.ListBullet
	if list.IsOrdered() {
		listType = delta.ListOrdered
	}
	bc.listDepth++

	for child := list.FirstChild(); child != nil; child = child.NextSibling() {
		item, ok := child.(*ast.ListItem)
		if !ok {
			continue
		}
		if err := s.convertListItemNode(item, bc, listType); err != nil {
			return err
		}
	}
	return nil
}

func (s *state) convertListItemNode(item *ast.ListItem, bc blockContext, listType string) error {
	own := delta.AttributeSet{delta.KeyList: listType}
	if bc.listDepth > 1 {
		own[delta.KeyIndent] = bc.listDepth - 1
	}
	itemAttrs := bc.blockAttrs(own)

	childBC := bc
	childBC.listAttrs = itemAttrs

	start := s.ops.Len()
	for child := item.FirstChild(); child != nil; child = child.NextSibling() {
		if err := s.convertBlockNode(child, childBC); err != nil {
			return err
		}
	}

	// empty items still need their line terminator
	if s.ops.LineOpen() || s.ops.Len() == start {
		s.ops.AppendNewline(itemAttrs)
	}
	return nil
}
