package mdconverter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgonek/html-delta-converter/delta"
)

func newTestConverter(t *testing.T, cfg Config) *Converter {
	t.Helper()
	conv, err := New(cfg)
	require.NoError(t, err)
	return conv
}

func convertOps(t *testing.T, conv *Converter, input string) []delta.Op {
	t.Helper()
	result, err := conv.Convert(input)
	require.NoError(t, err)
	return result.Ops
}

func TestConvertEmptyDocument(t *testing.T) {
	conv := newTestConverter(t, Config{})

	result, err := conv.Convert("")
	require.NoError(t, err)

	assert.Empty(t, result.Ops)
	assert.Empty(t, result.Warnings)
}

func TestConvertParagraph(t *testing.T) {
	conv := newTestConverter(t, Config{})

	ops := convertOps(t, conv, "Hello **world**!")

	assert.Equal(t, []delta.Op{
		{Insert: "Hello "},
		{Insert: "world", Attributes: delta.AttributeSet{delta.KeyBold: true}},
		{Insert: "!"},
		{Insert: "\n"},
	}, ops)
}

func TestConvertEmphasisVariants(t *testing.T) {
	conv := newTestConverter(t, Config{})

	ops := convertOps(t, conv, "*i* **b** ***bi*** ~~s~~")

	assert.Equal(t, []delta.Op{
		{Insert: "i", Attributes: delta.AttributeSet{delta.KeyItalic: true}},
		{Insert: " "},
		{Insert: "b", Attributes: delta.AttributeSet{delta.KeyBold: true}},
		{Insert: " "},
		{Insert: "bi", Attributes: delta.AttributeSet{delta.KeyItalic: true, delta.KeyBold: true}},
		{Insert: " "},
		{Insert: "s", Attributes: delta.AttributeSet{delta.KeyStrike: true}},
		{Insert: "\n"},
	}, ops)
}

func TestConvertHeading(t *testing.T) {
	conv := newTestConverter(t, Config{})

	ops := convertOps(t, conv, "## Section")

	assert.Equal(t, []delta.Op{
		{Insert: "Section"},
		{Insert: "\n", Attributes: delta.AttributeSet{delta.KeyHeader: 2}},
	}, ops)
}

func TestHeadingOffset(t *testing.T) {
	conv := newTestConverter(t, Config{HeadingOffset: 1})

	ops := convertOps(t, conv, "# Title")

	assert.Equal(t, delta.AttributeSet{delta.KeyHeader: 2}, ops[1].Attributes)
}

func TestHeadingOffsetClamped(t *testing.T) {
	conv := newTestConverter(t, Config{HeadingOffset: 4})

	ops := convertOps(t, conv, "#### Deep")

	assert.Equal(t, delta.AttributeSet{delta.KeyHeader: 6}, ops[1].Attributes)
}

func TestConvertBulletList(t *testing.T) {
	conv := newTestConverter(t, Config{})

	ops := convertOps(t, conv, "- first\n- second")

	bullet := delta.AttributeSet{delta.KeyList: delta.ListBullet}
	assert.Equal(t, []delta.Op{
		{Insert: "first"},
		{Insert: "\n", Attributes: bullet},
		{Insert: "second"},
		{Insert: "\n", Attributes: bullet},
	}, ops)
}

func TestConvertOrderedList(t *testing.T) {
	conv := newTestConverter(t, Config{})

	ops := convertOps(t, conv, "1. one\n2. two")

	ordered := delta.AttributeSet{delta.KeyList: delta.ListOrdered}
	assert.Equal(t, []delta.Op{
		{Insert: "one"},
		{Insert: "\n", Attributes: ordered},
		{Insert: "two"},
		{Insert: "\n", Attributes: ordered},
	}, ops)
}

func TestConvertNestedList(t *testing.T) {
	conv := newTestConverter(t, Config{})

	ops := convertOps(t, conv, "- outer\n  - inner")

	assert.Equal(t, []delta.Op{
		{Insert: "outer"},
		{Insert: "\n", Attributes: delta.AttributeSet{delta.KeyList: delta.ListBullet}},
		{Insert: "inner"},
		{Insert: "\n", Attributes: delta.AttributeSet{delta.KeyList: delta.ListBullet, delta.KeyIndent: 1}},
	}, ops)
}

func TestConvertBlockquote(t *testing.T) {
	conv := newTestConverter(t, Config{})

	ops := convertOps(t, conv, "> quoted text")

	assert.Equal(t, []delta.Op{
		{Insert: "quoted text"},
		{Insert: "\n", Attributes: delta.AttributeSet{delta.KeyBlockquote: true}},
	}, ops)
}

func TestConvertFencedCodeBlock(t *testing.T) {
	conv := newTestConverter(t, Config{})

	ops := convertOps(t, conv, "```go\nfmt.Println(1)\nfmt.Println(2)\n```")

	assert.Equal(t, []delta.Op{
		{Insert: "fmt.Println(1)\nfmt.Println(2)"},
		{Insert: "\n", Attributes: delta.AttributeSet{delta.KeyCodeBlock: "go"}},
	}, ops)
}

func TestConvertCodeBlockWithoutLanguage(t *testing.T) {
	conv := newTestConverter(t, Config{})

	ops := convertOps(t, conv, "```\nplain\n```")

	assert.Equal(t, delta.AttributeSet{delta.KeyCodeBlock: true}, ops[1].Attributes)
}

func TestCodeBlockLanguageMap(t *testing.T) {
	conv := newTestConverter(t, Config{LanguageMap: map[string]string{"golang": "go"}})

	ops := convertOps(t, conv, "```golang\nx := 1\n```")

	assert.Equal(t, delta.AttributeSet{delta.KeyCodeBlock: "go"}, ops[1].Attributes)
}

func TestConvertInlineCodeIsPlainText(t *testing.T) {
	conv := newTestConverter(t, Config{})

	ops := convertOps(t, conv, "run `go test` now")

	assert.Equal(t, []delta.Op{
		{Insert: "run go test now"},
		{Insert: "\n"},
	}, ops)
}

func TestConvertLink(t *testing.T) {
	conv := newTestConverter(t, Config{})

	ops := convertOps(t, conv, "[docs](https://example.com/docs)")

	assert.Equal(t, []delta.Op{
		{Insert: "docs", Attributes: delta.AttributeSet{delta.KeyLink: "https://example.com/docs"}},
		{Insert: "\n"},
	}, ops)
}

func TestConvertLinkWithoutDestination(t *testing.T) {
	conv := newTestConverter(t, Config{})

	result, err := conv.Convert("[docs]()")
	require.NoError(t, err)

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, delta.WarningMissingAttribute, result.Warnings[0].Type)
	assert.Equal(t, []delta.Op{{Insert: "docs"}, {Insert: "\n"}}, result.Ops)
}

func TestConvertImage(t *testing.T) {
	conv := newTestConverter(t, Config{})

	ops := convertOps(t, conv, "![diagram](pic.png)")

	assert.Equal(t, []delta.Op{
		{Insert: delta.Embed{"image": "pic.png"}, Attributes: delta.AttributeSet{"alt": "diagram"}},
		{Insert: "\n"},
	}, ops)
}

func TestConvertHardAndSoftBreaks(t *testing.T) {
	conv := newTestConverter(t, Config{})

	ops := convertOps(t, conv, "hard  \nbreak\nsoft")

	assert.Equal(t, []delta.Op{
		{Insert: "hard\nbreak soft"},
		{Insert: "\n"},
	}, ops)
}

func TestThematicBreakDropped(t *testing.T) {
	conv := newTestConverter(t, Config{})

	result, err := conv.Convert("a\n\n---\n\nb")
	require.NoError(t, err)

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, delta.WarningDroppedFeature, result.Warnings[0].Type)
	assert.Equal(t, []delta.Op{
		{Insert: "a"},
		{Insert: "\n"},
		{Insert: "b"},
		{Insert: "\n"},
	}, result.Ops)
}

func TestTableDropped(t *testing.T) {
	conv := newTestConverter(t, Config{})

	result, err := conv.Convert("| a | b |\n| - | - |\n| 1 | 2 |")
	require.NoError(t, err)

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, delta.WarningDroppedFeature, result.Warnings[0].Type)
	assert.Equal(t, "Table", result.Warnings[0].Tag)
	assert.Empty(t, result.Ops)
}

func TestConfigValidate(t *testing.T) {
	_, err := New(Config{HeadingOffset: 6})
	require.Error(t, err)

	_, err = New(Config{LanguageMap: map[string]string{"": "go"}})
	require.Error(t, err)

	_, err = New(Config{HeadingOffset: -5})
	require.NoError(t, err)
}
