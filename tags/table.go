package tags

import (
	"github.com/npillmayer/hbuild"
)

// --- Table content elements ------------------------------------------------

// Caption adds a table caption, optionally with text content.
func Caption(parent *hbuild.Element, text string, opt Opts) (*hbuild.Element, error) {
	return textElement(parent, "caption", text, opt)
}

// Col adds a col element, one column within a colgroup.
func Col(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "col", opt)
}

// Colgroup adds a group of table columns.
func Colgroup(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "colgroup", opt)
}

// Table adds a table element.
func Table(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "table", opt)
}

// Tbody adds the body row group of a table.
func Tbody(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "tbody", opt)
}

// Td adds a data cell, optionally with text content.
func Td(parent *hbuild.Element, text string, opt Opts) (*hbuild.Element, error) {
	return textElement(parent, "td", text, opt)
}

// Tfoot adds the footer row group of a table.
func Tfoot(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "tfoot", opt)
}

// Th adds a header cell, optionally with text content.
func Th(parent *hbuild.Element, text string, opt Opts) (*hbuild.Element, error) {
	return textElement(parent, "th", text, opt)
}

// Thead adds the header row group of a table.
func Thead(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "thead", opt)
}

// Tr adds a table row.
func Tr(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "tr", opt)
}
