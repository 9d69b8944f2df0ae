package htmlconverter

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/rgonek/html-delta-converter/delta"
)

// inlineTagAttrs maps formatting tags to the partial attribute set they
// contribute to enclosed text.
var inlineTagAttrs = map[string]delta.AttributeSet{
	"b":      {delta.KeyBold: true},
	"strong": {delta.KeyBold: true},
	"i":      {delta.KeyItalic: true},
	"em":     {delta.KeyItalic: true},
	"u":      {delta.KeyUnderline: true},
	"ins":    {delta.KeyUnderline: true},
	"s":      {delta.KeyStrike: true},
	"strike": {delta.KeyStrike: true},
	"del":    {delta.KeyStrike: true},
	"sup":    {delta.KeyScript: delta.ScriptSuper},
	"sub":    {delta.KeyScript: delta.ScriptSub},
	"span":   nil,
	"font":   nil,
	"mark":   nil,
}

var headingLevels = map[string]int{
	"h1": 1, "h2": 2, "h3": 3, "h4": 4, "h5": 5, "h6": 6,
}

var alignValues = map[string]bool{
	"left": true, "center": true, "right": true, "justify": true,
}

var leadingNumberRe = regexp.MustCompile(`^-?[0-9]+(?:\.[0-9]+)?`)

// resolveInlineTag returns the fixed attribute contribution of a
// formatting tag, plus legacy presentation attributes on font elements.
// The returned set is a fresh copy.
func resolveInlineTag(tag string, node *html.Node) delta.AttributeSet {
	attrs := inlineTagAttrs[tag].Clone()

	if tag == "font" {
		if color := strings.TrimSpace(attr(node, "color")); color != "" {
			attrs = attrs.Merge(delta.AttributeSet{delta.KeyColor: color})
		}
		if face := strings.TrimSpace(attr(node, "face")); face != "" {
			attrs = attrs.Merge(delta.AttributeSet{delta.KeyFont: face})
		}
	}

	return attrs
}

// parseStyleString maps an inline CSS declaration list to a partial
// attribute set. Unrecognized properties are ignored; declarations whose
// value cannot be interpreted are returned in dropped.
func parseStyleString(style string) (attrs delta.AttributeSet, dropped []string) {
	for _, declaration := range strings.Split(style, ";") {
		property, value, ok := strings.Cut(declaration, ":")
		if !ok {
			if strings.TrimSpace(declaration) != "" {
				dropped = append(dropped, strings.TrimSpace(declaration))
			}
			continue
		}

		property = strings.ToLower(strings.TrimSpace(property))
		value = strings.TrimSpace(value)
		if value == "" {
			dropped = append(dropped, property)
			continue
		}

		switch property {
		case "text-align":
			aligned := strings.ToLower(value)
			if !alignValues[aligned] {
				dropped = append(dropped, declaration)
				continue
			}
			attrs = setAttr(attrs, delta.KeyAlign, aligned)
		case "color":
			attrs = setAttr(attrs, delta.KeyColor, value)
		case "background-color":
			attrs = setAttr(attrs, delta.KeyBackground, value)
		case "font-family":
			attrs = setAttr(attrs, delta.KeyFont, strings.Trim(value, `'"`))
		case "font-size":
			number, ok := parseLeadingNumber(value)
			if !ok {
				dropped = append(dropped, declaration)
				continue
			}
			attrs = setAttr(attrs, delta.KeySize, number)
		case "line-height":
			number, ok := parseLeadingNumber(value)
			if !ok {
				dropped = append(dropped, declaration)
				continue
			}
			attrs = setAttr(attrs, delta.KeyLineHeight, number)
		}
	}

	return attrs, dropped
}

// splitStyleAttrs separates block-scoped style attributes (align,
// lineHeight) from the inline ones inherited by child text.
func splitStyleAttrs(attrs delta.AttributeSet) (inline, block delta.AttributeSet) {
	for key, value := range attrs {
		switch key {
		case delta.KeyAlign, delta.KeyLineHeight:
			block = setAttr(block, key, value)
		default:
			inline = setAttr(inline, key, value)
		}
	}
	return inline, block
}

// resolveBlockAttrs reads block attributes carried directly on the element
// (legacy align attribute) merged with the block part of its style.
func resolveBlockAttrs(node *html.Node, styleBlock delta.AttributeSet) delta.AttributeSet {
	block := styleBlock
	if aligned := strings.ToLower(strings.TrimSpace(attr(node, "align"))); alignValues[aligned] {
		if _, ok := block[delta.KeyAlign]; !ok {
			block = setAttr(block, delta.KeyAlign, aligned)
		}
	}
	return block
}

func parseLeadingNumber(value string) (float64, bool) {
	match := leadingNumberRe.FindString(strings.TrimSpace(value))
	if match == "" {
		return 0, false
	}
	number, err := strconv.ParseFloat(match, 64)
	if err != nil || number < 0 {
		return 0, false
	}
	return number, true
}

func setAttr(attrs delta.AttributeSet, key string, value any) delta.AttributeSet {
	if attrs == nil {
		attrs = delta.AttributeSet{}
	}
	attrs[key] = value
	return attrs
}

// attr returns the value of the named attribute, or "" when absent.
func attr(node *html.Node, name string) string {
	for _, a := range node.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val
		}
	}
	return ""
}

// classes splits the element's class attribute on whitespace.
func classes(node *html.Node) []string {
	return strings.Fields(attr(node, "class"))
}
