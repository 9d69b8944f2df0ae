package delta

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeEmptyPartialIsIdentity(t *testing.T) {
	base := AttributeSet{KeyBold: true, KeyColor: "#336699"}

	assert.True(t, base.Merge(nil).Equal(base))
	assert.True(t, base.Merge(AttributeSet{}).Equal(base))
}

func TestMergeChildWinsOnCollision(t *testing.T) {
	base := AttributeSet{KeyColor: "#111111", KeyBold: true}

	merged := base.Merge(AttributeSet{KeyColor: "#222222"})

	assert.Equal(t, "#222222", merged[KeyColor])
	assert.Equal(t, true, merged[KeyBold])
	// the original is untouched
	assert.Equal(t, "#111111", base[KeyColor])
}

func TestMergeDoesNotAliasEitherInput(t *testing.T) {
	base := AttributeSet{KeyBold: true}
	partial := AttributeSet{KeyItalic: true}

	merged := base.Merge(partial)
	merged[KeyStrike] = true

	assert.NotContains(t, base, KeyStrike)
	assert.NotContains(t, partial, KeyStrike)
}

func TestCloneEmptyIsNil(t *testing.T) {
	assert.Nil(t, AttributeSet(nil).Clone())
	assert.Nil(t, AttributeSet{}.Clone())
}

func TestEqual(t *testing.T) {
	assert.True(t, AttributeSet(nil).Equal(AttributeSet{}))
	assert.True(t, AttributeSet{KeyBold: true}.Equal(AttributeSet{KeyBold: true}))
	assert.False(t, AttributeSet{KeyBold: true}.Equal(AttributeSet{KeyItalic: true}))
	assert.False(t, AttributeSet{KeyHeader: 1}.Equal(AttributeSet{KeyHeader: 2}))
	assert.False(t, AttributeSet{KeyBold: true}.Equal(nil))
}

func TestOpJSONShape(t *testing.T) {
	plain, err := json.Marshal(Op{Insert: "hello"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"insert":"hello"}`, string(plain))

	styled, err := json.Marshal(Op{Insert: "hi", Attributes: AttributeSet{KeyBold: true}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"insert":"hi","attributes":{"bold":true}}`, string(styled))

	embed, err := json.Marshal(Op{Insert: Embed{"image": "https://example.com/a.png"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"insert":{"image":"https://example.com/a.png"}}`, string(embed))
}

func TestOpText(t *testing.T) {
	assert.Equal(t, "x", Op{Insert: "x"}.Text())
	assert.Equal(t, "", Op{Insert: Embed{"image": "u"}}.Text())
	assert.True(t, Op{Insert: Embed{"image": "u"}}.IsEmbed())
	assert.False(t, Op{Insert: "x"}.IsEmbed())
}
