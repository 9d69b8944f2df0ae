package htmlconverter

import (
	"context"
	"errors"
)

// ErrUnresolved indicates that a link or media reference could not be
// resolved by a hook.
var ErrUnresolved = errors.New("reference could not be resolved")

// ResolutionMode controls how unresolved hook results are handled.
type ResolutionMode string

const (
	ResolutionBestEffort ResolutionMode = "best-effort"
	ResolutionStrict     ResolutionMode = "strict"
)

// ConvertOptions carries optional per-conversion context.
type ConvertOptions struct {
	SourcePath string
}

// LinkParseHook can rewrite anchor destinations during conversion.
type LinkParseHook func(ctx context.Context, in LinkParseInput) (LinkParseOutput, error)

// MediaParseHook can map media element sources during conversion.
type MediaParseHook func(ctx context.Context, in MediaParseInput) (MediaParseOutput, error)

// LinkParseInput describes an anchor element being converted.
type LinkParseInput struct {
	SourcePath string
	Href       string
	Title      string
}

// LinkParseOutput contains hook-provided link overrides.
type LinkParseOutput struct {
	Href    string
	Handled bool
}

// MediaParseInput describes a media element being converted.
type MediaParseInput struct {
	SourcePath string
	Tag        string
	Src        string
	Alt        string
}

// MediaParseOutput contains hook-provided media overrides.
type MediaParseOutput struct {
	Src     string
	Alt     string
	Handled bool
}
