package mdconverter

import (
	"fmt"
	"strings"
)

// Config configures markdown to delta conversion behavior.
type Config struct {
	// HeadingOffset shifts heading levels; the result is clamped to 1-6.
	HeadingOffset int `json:"headingOffset,omitempty"`
	// LanguageMap rewrites code fence info strings before they become
	// codeBlock attribute values.
	LanguageMap map[string]string `json:"languageMap,omitempty"`
}

func (c Config) clone() Config {
	cloned := c
	cloned.LanguageMap = cloneStringMap(c.LanguageMap)
	return cloned
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	if c.HeadingOffset < -5 || c.HeadingOffset > 5 {
		return fmt.Errorf("headingOffset must be between -5 and 5, got %d", c.HeadingOffset)
	}

	for from, to := range c.LanguageMap {
		if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
			return fmt.Errorf("languageMap keys and values must be non-empty")
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
