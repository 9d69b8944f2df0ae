package htmlconverter

import (
	"fmt"
	"strings"
)

// UnknownTagMode controls how elements outside the built-in tag table are
// handled.
type UnknownTagMode string

const (
	// UnknownTransparent visits children and ignores the element's own
	// attributes.
	UnknownTransparent UnknownTagMode = "transparent"
	// UnknownSkip drops the element and its subtree.
	UnknownSkip UnknownTagMode = "skip"
	// UnknownError fails the conversion on the first unknown tag.
	UnknownError UnknownTagMode = "error"
)

// WhitespaceMode controls text-node whitespace handling outside code blocks.
type WhitespaceMode string

const (
	WhitespaceCollapse WhitespaceMode = "collapse"
	WhitespacePreserve WhitespaceMode = "preserve"
)

// LanguageDetection controls how code-block languages are recovered.
type LanguageDetection string

const (
	// LanguageFromClass reads "language-*" class names on pre/code elements.
	LanguageFromClass LanguageDetection = "class"
	LanguageNone      LanguageDetection = "none"
)

// Config configures HTML to delta conversion behavior.
type Config struct {
	UnknownTags       UnknownTagMode    `json:"unknownTags,omitempty"`
	Whitespace        WhitespaceMode    `json:"whitespace,omitempty"`
	LanguageDetection LanguageDetection `json:"languageDetection,omitempty"`
	LanguageMap       map[string]string `json:"languageMap,omitempty"`
	ResolutionMode    ResolutionMode    `json:"resolutionMode,omitempty"`
	MaxDepth          int               `json:"maxDepth,omitempty"`

	CustomBlocks []CustomBlock  `json:"-"`
	LinkHook     LinkParseHook  `json:"-"`
	MediaHook    MediaParseHook `json:"-"`
}

func (c Config) applyDefaults() Config {
	if c.UnknownTags == "" {
		c.UnknownTags = UnknownTransparent
	}
	if c.Whitespace == "" {
		c.Whitespace = WhitespaceCollapse
	}
	if c.LanguageDetection == "" {
		c.LanguageDetection = LanguageFromClass
	}
	if c.ResolutionMode == "" {
		c.ResolutionMode = ResolutionBestEffort
	}
	return c
}

func (c Config) clone() Config {
	cloned := c
	cloned.LanguageMap = cloneStringMap(c.LanguageMap)
	if c.CustomBlocks != nil {
		cloned.CustomBlocks = make([]CustomBlock, len(c.CustomBlocks))
		copy(cloned.CustomBlocks, c.CustomBlocks)
	}
	return cloned
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	if c.UnknownTags != UnknownTransparent &&
		c.UnknownTags != UnknownSkip &&
		c.UnknownTags != UnknownError {
		return fmt.Errorf("invalid unknownTags %q", c.UnknownTags)
	}

	if c.Whitespace != WhitespaceCollapse && c.Whitespace != WhitespacePreserve {
		return fmt.Errorf("invalid whitespace %q", c.Whitespace)
	}

	if c.LanguageDetection != LanguageFromClass && c.LanguageDetection != LanguageNone {
		return fmt.Errorf("invalid languageDetection %q", c.LanguageDetection)
	}

	if c.ResolutionMode != ResolutionBestEffort && c.ResolutionMode != ResolutionStrict {
		return fmt.Errorf("invalid resolutionMode %q", c.ResolutionMode)
	}

	if c.MaxDepth < 0 {
		return fmt.Errorf("maxDepth must be >= 0, got %d", c.MaxDepth)
	}

	for from, to := range c.LanguageMap {
		if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
			return fmt.Errorf("languageMap keys and values must be non-empty")
		}
	}

	for idx, block := range c.CustomBlocks {
		if block == nil {
			return fmt.Errorf("customBlocks[%d] is nil", idx)
		}
	}

	return nil
}

func cloneStringMap(src map[string]string) map[string]string {
	if src == nil {
		return nil
	}

	dst := make(map[string]string, len(src))
	for key, value := range src {
		dst[key] = value
	}

	return dst
}
