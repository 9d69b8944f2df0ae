package htmlconverter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgonek/html-delta-converter/delta"
)

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}.applyDefaults()

	assert.Equal(t, UnknownTransparent, cfg.UnknownTags)
	assert.Equal(t, WhitespaceCollapse, cfg.Whitespace)
	assert.Equal(t, LanguageFromClass, cfg.LanguageDetection)
	assert.Equal(t, ResolutionBestEffort, cfg.ResolutionMode)
	assert.Zero(t, cfg.MaxDepth)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "bad unknown tag mode",
			mutate:  func(c *Config) { c.UnknownTags = "ignore" },
			wantErr: "unknownTags",
		},
		{
			name:    "bad whitespace mode",
			mutate:  func(c *Config) { c.Whitespace = "trim" },
			wantErr: "whitespace",
		},
		{
			name:    "bad language detection",
			mutate:  func(c *Config) { c.LanguageDetection = "shebang" },
			wantErr: "languageDetection",
		},
		{
			name:    "bad resolution mode",
			mutate:  func(c *Config) { c.ResolutionMode = "lenient" },
			wantErr: "resolutionMode",
		},
		{
			name:    "negative max depth",
			mutate:  func(c *Config) { c.MaxDepth = -1 },
			wantErr: "maxDepth",
		},
		{
			name:    "empty language map key",
			mutate:  func(c *Config) { c.LanguageMap = map[string]string{" ": "go"} },
			wantErr: "languageMap",
		},
		{
			name:    "nil custom block",
			mutate:  func(c *Config) { c.CustomBlocks = []CustomBlock{nil} },
			wantErr: "customBlocks[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{}.applyDefaults()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config{UnknownTags: "ignore"})
	require.Error(t, err)
}

func TestConfigCloneIsolatesCallerMaps(t *testing.T) {
	languages := map[string]string{"golang": "go"}
	conv := newTestConverter(t, Config{LanguageMap: languages})

	languages["golang"] = "mutated"

	result, err := conv.Convert(`<pre class="language-golang">x</pre>`)
	require.NoError(t, err)
	require.Len(t, result.Ops, 2)
	assert.Equal(t, "go", result.Ops[1].Attributes[delta.KeyCodeBlock])
}
