package htmlconverter

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/rgonek/html-delta-converter/delta"
)

// convertImage emits an atomic image embed. Embeds bypass the attribute
// context; only their own alt/width ride along as op attributes.
func (s *state) convertImage(n *html.Node, tc traversalContext) error {
	src := strings.TrimSpace(attr(n, "src"))
	alt := strings.TrimSpace(attr(n, "alt"))

	output, handled, err := s.applyMediaHook("img", MediaParseInput{
		SourcePath: s.options.SourcePath,
		Tag:        "img",
		Src:        src,
		Alt:        alt,
	})
	if err != nil {
		return err
	}
	if handled {
		src = output.Src
		if output.Alt != "" {
			alt = output.Alt
		}
	}

	if src == "" {
		s.addWarning(delta.WarningMissingAttribute, "img", "image without src skipped")
		return nil
	}

	var attrs delta.AttributeSet
	if alt != "" {
		attrs = setAttr(attrs, "alt", alt)
	}
	if width := strings.TrimSpace(attr(n, "width")); width != "" {
		attrs = setAttr(attrs, "width", width)
	}

	s.ops.AppendEmbed(delta.Embed{"image": src}, attrs)
	return nil
}

// convertVideo emits a video embed for video and iframe elements, reading
// the source from the src attribute or a nested source element.
func (s *state) convertVideo(n *html.Node, tc traversalContext) error {
	tag := tagName(n)
	src := strings.TrimSpace(attr(n, "src"))
	if src == "" {
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if child.Type == html.ElementNode && tagName(child) == "source" {
				src = strings.TrimSpace(attr(child, "src"))
				if src != "" {
					break
				}
			}
		}
	}

	output, handled, err := s.applyMediaHook(tag, MediaParseInput{
		SourcePath: s.options.SourcePath,
		Tag:        tag,
		Src:        src,
	})
	if err != nil {
		return err
	}
	if handled {
		src = output.Src
	}

	if src == "" {
		s.addWarning(delta.WarningMissingAttribute, tag, "media without src skipped")
		return nil
	}

	s.ops.AppendEmbed(delta.Embed{"video": src}, nil)
	return nil
}
