package render

import "strings"

// Entity replacements for text content. Every escapable character is
// ASCII, so multibyte runes pass through byte for byte.
var textEntities = [256]string{
	'&':  "&amp;",
	'<':  "&lt;",
	'>':  "&gt;",
	'"':  "&quot;",
	'\'': "&#39;",
}

// Entity replacements inside attribute values. Quotes delimit the value
// and raw whitespace would not survive a reparse, so both are encoded
// on top of the text entities.
var attrEntities = [256]string{
	'&':  "&amp;",
	'<':  "&lt;",
	'>':  "&gt;",
	'"':  "&quot;",
	'\'': "&#39;",
	'\n': "&#10;",
	'\r': "&#13;",
	'\t': "&#9;",
}

// escapeHTML encodes text content so it reparses as the same character
// data.
func escapeHTML(s string) string {
	return escapeWith(s, &textEntities)
}

// escapeAttr encodes a double-quoted attribute value.
func escapeAttr(s string) string {
	return escapeWith(s, &attrEntities)
}

// escapeWith rewrites s through an entity table. Strings with nothing
// to escape, the common case, are returned without allocating.
func escapeWith(s string, entities *[256]string) string {
	first := -1
	for i := 0; i < len(s); i++ {
		if entities[s[i]] != "" {
			first = i
			break
		}
	}
	if first < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)
	b.WriteString(s[:first])
	for i := first; i < len(s); i++ {
		if ent := entities[s[i]]; ent != "" {
			b.WriteString(ent)
		} else {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
