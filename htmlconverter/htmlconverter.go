package htmlconverter

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/rgonek/html-delta-converter/delta"
)

// Converter converts parsed HTML trees to delta operation sequences. It is
// safe for concurrent use; every conversion owns its own state.
type Converter struct {
	config Config
}

type state struct {
	config      Config
	ctx         context.Context
	options     ConvertOptions
	ops         *delta.Builder
	warnings    []delta.Warning
	unknownSeen map[string]bool
}

// New creates a new Converter with the given config.
func New(config Config) (*Converter, error) {
	cfg := config.applyDefaults().clone()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Converter{config: cfg}, nil
}

// Convert parses raw HTML and returns the delta operation sequence.
func (c *Converter) Convert(input string) (Result, error) {
	return c.ConvertContext(context.Background(), input, ConvertOptions{})
}

// ConvertContext is Convert with cancellation and per-call options.
func (c *Converter) ConvertContext(ctx context.Context, input string, options ConvertOptions) (Result, error) {
	root, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return Result{}, fmt.Errorf("failed to parse HTML: %w", err)
	}

	return c.ConvertNode(ctx, root, options)
}

// ConvertNode converts an already-parsed tree. The node may be a full
// document, a fragment container, or a single element.
func (c *Converter) ConvertNode(ctx context.Context, root *html.Node, options ConvertOptions) (Result, error) {
	if root == nil {
		return Result{}, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	s := &state{
		config:      c.config,
		ctx:         ctx,
		options:     options,
		ops:         delta.NewBuilder(),
		unknownSeen: make(map[string]bool),
	}

	if err := s.convertNode(root, traversalContext{}); err != nil {
		return Result{}, err
	}

	return Result{
		Ops:      s.ops.Ops(),
		Warnings: s.warnings,
	}, nil
}

func (s *state) checkContext() error {
	select {
	case <-s.ctx.Done():
		return s.ctx.Err()
	default:
		return nil
	}
}

func (s *state) addWarning(warnType delta.WarningType, tag, message string) {
	s.warnings = append(s.warnings, delta.Warning{
		Type:    warnType,
		Tag:     tag,
		Message: message,
	})
}
