package tags

import (
	"github.com/npillmayer/hbuild"
)

// --- Text content elements -------------------------------------------------

// Blockquote adds a blockquote element for an extended quotation.
func Blockquote(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "blockquote", opt)
}

// Dd adds a dd element, the description part of a description list entry.
func Dd(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "dd", opt)
}

// Div adds a div element, the generic content container.
func Div(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "div", opt)
}

// Dl adds a dl element, a description list.
func Dl(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "dl", opt)
}

// Dt adds a dt element, the term part of a description list entry.
func Dt(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "dt", opt)
}

// Figcaption adds a caption for its parent figure.
func Figcaption(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "figcaption", opt)
}

// Figure adds a figure element for self-contained content.
func Figure(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "figure", opt)
}

// Hr adds a thematic break between paragraph-level elements.
func Hr(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "hr", opt)
}

// Li adds a list item, optionally with text content.
func Li(parent *hbuild.Element, text string, opt Opts) (*hbuild.Element, error) {
	return textElement(parent, "li", text, opt)
}

// Menu adds a menu element, semantically an unordered list of commands.
func Menu(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "menu", opt)
}

// Ol adds an ordered list.
func Ol(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "ol", opt)
}

// P adds a paragraph, optionally with text content.
func P(parent *hbuild.Element, text string, opt Opts) (*hbuild.Element, error) {
	return textElement(parent, "p", text, opt)
}

// Pre adds a pre element for preformatted text, optionally with text
// content.
func Pre(parent *hbuild.Element, text string, opt Opts) (*hbuild.Element, error) {
	return textElement(parent, "pre", text, opt)
}

// Ul adds an unordered list.
func Ul(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "ul", opt)
}
