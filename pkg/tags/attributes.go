package tags

import (
	"strconv"

	"github.com/treefold-dev/treefold/pkg/dom"
)

// Typed helpers for common attributes. Names that collide with a tag
// constructor get an Attr suffix (StyleAttr, TitleAttr), matching the
// catalog convention.

func ID(id string) dom.KeyValue {
	return dom.KV("id", id)
}
func Class(class string) dom.KeyValue {
	return dom.KV("class", class)
}
func StyleAttr(style string) dom.KeyValue {
	return dom.KV("style", style)
}
func TitleAttr(title string) dom.KeyValue {
	return dom.KV("title", title)
}
func Href(href string) dom.KeyValue {
	return dom.KV("href", href)
}
func Src(src string) dom.KeyValue {
	return dom.KV("src", src)
}
func Alt(alt string) dom.KeyValue {
	return dom.KV("alt", alt)
}
func Type(t string) dom.KeyValue {
	return dom.KV("type", t)
}
func ValueAttr(v string) dom.KeyValue {
	return dom.KV("value", v)
}
func NameAttr(name string) dom.KeyValue {
	return dom.KV("name", name)
}
func Placeholder(p string) dom.KeyValue {
	return dom.KV("placeholder", p)
}
func Rel(rel string) dom.KeyValue {
	return dom.KV("rel", rel)
}
func Target(t string) dom.KeyValue {
	return dom.KV("target", t)
}
func Width(w int) dom.KeyValue {
	return dom.KV("width", strconv.Itoa(w))
}
func Height(h int) dom.KeyValue {
	return dom.KV("height", strconv.Itoa(h))
}
func Lang(lang string) dom.KeyValue {
	return dom.KV("lang", lang)
}
func Charset(cs string) dom.KeyValue {
	return dom.KV("charset", cs)
}
func For(id string) dom.KeyValue {
	return dom.KV("for", id)
}
func Action(url string) dom.KeyValue {
	return dom.KV("action", url)
}
func Method(m string) dom.KeyValue {
	return dom.KV("method", m)
}
func Data(key, value string) dom.KeyValue {
	return dom.KV("data-"+key, value)
}
func Role(role string) dom.KeyValue {
	return dom.KV("role", role)
}
func TabIndex(index int) dom.KeyValue {
	return dom.KV("tabindex", strconv.Itoa(index))
}
func AriaLabel(label string) dom.KeyValue {
	return dom.KV("aria-label", label)
}
func AriaHidden(hidden bool) dom.KeyValue {
	return dom.KV("aria-hidden", strconv.FormatBool(hidden))
}
func AriaExpanded(expanded bool) dom.KeyValue {
	return dom.KV("aria-expanded", strconv.FormatBool(expanded))
}
