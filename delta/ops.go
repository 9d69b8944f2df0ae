package delta

// AttributeSet maps formatting keys to their values. Absent keys mean
// "inherit/unset"; explicit false is never stored.
type AttributeSet map[string]any

// Recognized attribute keys.
const (
	KeyBold       = "bold"
	KeyItalic     = "italic"
	KeyUnderline  = "underline"
	KeyStrike     = "strike"
	KeyScript     = "script"
	KeyLink       = "link"
	KeyColor      = "color"
	KeyBackground = "background"
	KeyFont       = "font"
	KeySize       = "size"
	KeyLineHeight = "lineHeight"
	KeyAlign      = "align"
	KeyHeader     = "header"
	KeyList       = "list"
	KeyIndent     = "indent"
	KeyBlockquote = "blockquote"
	KeyCodeBlock  = "codeBlock"
)

// Values for the script attribute.
const (
	ScriptSuper = "super"
	ScriptSub   = "sub"
)

// Values for the list attribute.
const (
	ListOrdered = "ordered"
	ListBullet  = "bullet"
)

// Embed is a non-text insert payload, e.g. {"image": "https://..."}.
type Embed map[string]any

// Op is a single delta operation: a text or embed insert with optional
// formatting attributes.
type Op struct {
	Insert     any          `json:"insert"`
	Attributes AttributeSet `json:"attributes,omitempty"`
}

// Text returns the op's insert as a string, or "" if the insert is an embed.
func (o Op) Text() string {
	text, _ := o.Insert.(string)
	return text
}

// IsEmbed reports whether the op inserts an embed object.
func (o Op) IsEmbed() bool {
	_, ok := o.Insert.(Embed)
	return ok
}

// Clone returns a copy of the set; mutations of the copy never reach the
// original. Empty sets clone to nil so ops never carry an empty map.
func (a AttributeSet) Clone() AttributeSet {
	if len(a) == 0 {
		return nil
	}
	cloned := make(AttributeSet, len(a))
	for key, value := range a {
		cloned[key] = value
	}
	return cloned
}

// Merge returns a copy of the set with partial merged in, partial's keys
// winning on collision. Merging an empty partial returns an equal set.
func (a AttributeSet) Merge(partial AttributeSet) AttributeSet {
	if len(partial) == 0 {
		return a.Clone()
	}
	merged := make(AttributeSet, len(a)+len(partial))
	for key, value := range a {
		merged[key] = value
	}
	for key, value := range partial {
		merged[key] = value
	}
	return merged
}

// Equal reports structural equality of two attribute sets. Empty and nil
// sets compare equal.
func (a AttributeSet) Equal(other AttributeSet) bool {
	if len(a) != len(other) {
		return false
	}
	for key, value := range a {
		otherValue, ok := other[key]
		if !ok || value != otherValue {
			return false
		}
	}
	return true
}
