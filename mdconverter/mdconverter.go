package mdconverter

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/rgonek/html-delta-converter/delta"
)

// Converter converts GFM markdown to delta operation sequences.
type Converter struct {
	config Config
	parser goldmark.Markdown
}

// Result holds the output of a markdown conversion.
type Result struct {
	Ops      []delta.Op      `json:"ops"`
	Warnings []delta.Warning `json:"warnings,omitempty"`
}

type state struct {
	config   Config
	source   []byte
	ops      *delta.Builder
	warnings []delta.Warning
}

// New creates a new Converter with the given config.
func New(config Config) (*Converter, error) {
	cfg := config.clone()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Converter{
		config: cfg,
		parser: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		),
	}, nil
}

// Convert takes a markdown document and returns the delta operation
// sequence.
func (c *Converter) Convert(markdown string) (Result, error) {
	s := &state{
		config: c.config,
		source: []byte(markdown),
		ops:    delta.NewBuilder(),
	}

	root := c.parser.Parser().Parse(text.NewReader(s.source))
	if err := s.convertBlockChildren(root, blockContext{}); err != nil {
		return Result{}, err
	}

	return Result{
		Ops:      s.ops.Ops(),
		Warnings: s.warnings,
	}, nil
}

func (s *state) addWarning(warnType delta.WarningType, tag, message string) {
	s.warnings = append(s.warnings, delta.Warning{
		Type:    warnType,
		Tag:     tag,
		Message: message,
	})
}

// blockContext carries the block scope inherited down the markdown tree,
// mirroring the traversal context of the HTML front-end.
type blockContext struct {
	listAttrs        delta.AttributeSet
	listDepth        int
	insideBlockquote bool
}

func (bc blockContext) blockAttrs(own delta.AttributeSet) delta.AttributeSet {
	attrs := delta.AttributeSet{}
	for key, value := range bc.listAttrs {
		attrs[key] = value
	}
	if bc.insideBlockquote {
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
