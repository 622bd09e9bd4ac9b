package tags

import (
	"github.com/npillmayer/hbuild"
)

// --- Inline text semantics -------------------------------------------------

// A adds an anchor element. href becomes the link target, text the link
// text; either may be empty.
func A(parent *hbuild.Element, href string, text string, opt Opts) (*hbuild.Element, error) {
	return textElement(parent, "a", text, opt, attrIf(nil, "href", href)...)
}

// Abbr adds an abbreviation element.
func Abbr(parent *hbuild.Element, text string, opt Opts) (*hbuild.Element, error) {
	return textElement(parent, "abbr", text, opt)
}

// B adds a b element, bringing attention to its content.
func B(parent *hbuild.Element, text string, opt Opts) (*hbuild.Element, error) {
	return textElement(parent, "b", text, opt)
}

// Bdi adds a bdi element, isolating bidirectional text.
func Bdi(parent *hbuild.Element, text string, opt Opts) (*hbuild.Element, error) {
	return textElement(parent, "bdi", text, opt)
}

// Bdo adds a bdo element, overriding text directionality. dir is "ltr" or
// "rtl".
func Bdo(parent *hbuild.Element, text string, dir string, opt Opts) (*hbuild.Element, error) {
	return textElement(parent, "bdo", text, opt, attrIf(nil, "dir", dir)...)
}

// Br adds a line break.
func Br(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "br", opt)
}

// Cite adds a cite element, marking the title of a cited work.
func Cite(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "cite", opt)
}

// Code adds a code element for a short fragment of computer code.
func Code(parent *hbuild.Element, text string, opt Opts) (*hbuild.Element, error) {
	return textElement(parent, "code", text, opt)
}

// Data adds a data element linking content to a machine-readable value.
func Data(parent *hbuild.Element, value string, text string, opt Opts) (*hbuild.Element, error) {
	return textElement(parent, "data", text, opt, attrIf(nil, "value", value)...)
}

// Dfn adds a dfn element, the defining instance of a term.
func Dfn(parent *hbuild.Element, text string, opt Opts) (*hbuild.Element, error) {
	return textElement(parent, "dfn", text, opt)
}

// Em adds an em element for stress emphasis.
func Em(parent *hbuild.Element, text string, opt Opts) (*hbuild.Element, error) {
	return textElement(parent, "em", text, opt)
}

// I adds an i element for text set off from the normal prose.
func I(parent *hbuild.Element, text string, opt Opts) (*hbuild.Element, error) {
	return textElement(parent, "i", text, opt)
}

// Kbd adds a kbd element for keyboard input.
func Kbd(parent *hbuild.Element, text string, opt Opts) (*hbuild.Element, error) {
	return textElement(parent, "kbd", text, opt)
}

// Mark adds a mark element for highlighted text.
func Mark(parent *hbuild.Element, text string, opt Opts) (*hbuild.Element, error) {
	return textElement(parent, "mark", text, opt)
}

// Q adds a q element for a short inline quotation.
func Q(parent *hbuild.Element, text string, opt Opts) (*hbuild.Element, error) {
	return textElement(parent, "q", text, opt)
}

// Rp adds an rp element, fallback parentheses for ruby annotations.
func Rp(parent *hbuild.Element, text string, opt Opts) (*hbuild.Element, error) {
	return textElement(parent, "rp", text, opt)
}

// Rt adds an rt element, the text of a ruby annotation.
func Rt(parent *hbuild.Element, text string, opt Opts) (*hbuild.Element, error) {
	return textElement(parent, "rt", text, opt)
}

// Ruby adds a ruby annotation container.
func Ruby(parent *hbuild.Element, text string, opt Opts) (*hbuild.Element, error) {
	return textElement(parent, "ruby", text, opt)
}

// S adds an s element for content that is no longer accurate.
func S(parent *hbuild.Element, text string, opt Opts) (*hbuild.Element, error) {
	return textElement(parent, "s", text, opt)
}

// Samp adds a samp element for sample program output.
func Samp(parent *hbuild.Element, text string, opt Opts) (*hbuild.Element, error) {
	return textElement(parent, "samp", text, opt)
}

// Small adds a small element for side comments and fine print.
func Small(parent *hbuild.Element, text string, opt Opts) (*hbuild.Element, error) {
	return textElement(parent, "small", text, opt)
}

// Span adds a span element, the generic inline container.
func Span(parent *hbuild.Element, text string, opt Opts) (*hbuild.Element, error) {
	return textElement(parent, "span", text, opt)
}

// Strong adds a strong element for content of high importance.
func Strong(parent *hbuild.Element, text string, opt Opts) (*hbuild.Element, error) {
	return textElement(parent, "strong", text, opt)
}

// Sub adds a subscript element.
func Sub(parent *hbuild.Element, text string, opt Opts) (*hbuild.Element, error) {
	return textElement(parent, "sub", text, opt)
}

// Sup adds a superscript element.
func Sup(parent *hbuild.Element, text string, opt Opts) (*hbuild.Element, error) {
	return textElement(parent, "sup", text, opt)
}

// Time adds a time element with an optional machine-readable datetime
// attribute.
func Time(parent *hbuild.Element, datetime string, text string, opt Opts) (*hbuild.Element, error) {
	return textElement(parent, "time", text, opt, attrIf(nil, "datetime", datetime)...)
}

// U adds a u element for unarticulated annotations.
func U(parent *hbuild.Element, text string, opt Opts) (*hbuild.Element, error) {
	return textElement(parent, "u", text, opt)
}

// Var adds a var element for the name of a variable.
func Var(parent *hbuild.Element, text string, opt Opts) (*hbuild.Element, error) {
	return textElement(parent, "var", text, opt)
}

// Wbr adds a word break opportunity.
func Wbr(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "wbr", opt)
}

// --- Demarcating edits -----------------------------------------------------

// Del adds a del element for a removed range of text.
func Del(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "del", opt)
}

// Ins adds an ins element for an added range of text.
func Ins(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "ins", opt)
}
