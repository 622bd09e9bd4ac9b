package hbuild

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
)

// fragments renders the element and, recursively, all child elements into
// dest, one markup fragment per entry. Joining the fragments yields the
// rendered HTML. Attributes are emitted double-quoted in the order they
// were set; neither text nor attribute values are escaped. A void element
// ends with " />" and never emits content, children or a closing tag.
func (e *Element) fragments(dest []string) []string {
	if e.tagName != "" {
		dest = append(dest, "<"+e.tagName)
		for _, attr := range e.attributes {
			dest = append(dest, ` `+attr.Name+`="`+attr.Value+`"`)
		}
		if e.isVoid {
			return append(dest, " />")
		}
		dest = append(dest, ">")
	}
	if e.content != "" {
		dest = append(dest, e.content)
	}
	for _, ch := range e.children.asSlice() {
		dest = ch.fragments(dest)
	}
	if e.tagName != "" {
		dest = append(dest, "</"+e.tagName+">")
	}
	return dest
}

// Render renders the element's subtree to a string of HTML.
func (e *Element) Render() string {
	return strings.Join(e.fragments(nil), "")
}

// InnerHTML returns the rendered HTML of the element's children, without
// the element's own markup.
func (e *Element) InnerHTML() string {
	var dest []string
	for _, ch := range e.children.asSlice() {
		dest = ch.fragments(dest)
	}
	return strings.Join(dest, "")
}

// SetInnerHTML removes the current children of the element, deregistering
// their ids, then parses the supplied HTML and inserts the result as new
// children. It fails with ErrVoidElement on void elements and with a
// parse error on malformed input (children removed up to that point stay
// removed).
func (e *Element) SetInnerHTML(markup string) error {
	if e.isVoid {
		return fmt.Errorf("%w: <%s>", ErrVoidElement, e.tagName)
	}
	for _, ch := range e.children.asSlice() {
		e.RemoveChild(ch)
	}
	return ParseFragment(markup, e)
}
