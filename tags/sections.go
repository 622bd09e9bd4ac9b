package tags

import (
	"github.com/npillmayer/hbuild"
)

// --- Content sectioning elements -------------------------------------------

// Address adds an address element, containing contact information.
func Address(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "address", opt)
}

// Article adds an article element, a self-contained composition.
func Article(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "article", opt)
}

// Aside adds an aside element for indirectly related content.
func Aside(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "aside", opt)
}

// Footer adds a footer for the nearest ancestor section.
func Footer(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "footer", opt)
}

// Header adds a header element for introductory content.
func Header(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "header", opt)
}

// H1 adds a level 1 section heading.
func H1(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "h1", opt)
}

// H2 adds a level 2 section heading.
func H2(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "h2", opt)
}

// H3 adds a level 3 section heading.
func H3(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "h3", opt)
}

// H4 adds a level 4 section heading.
func H4(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "h4", opt)
}

// H5 adds a level 5 section heading.
func H5(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "h5", opt)
}

// H6 adds a level 6 section heading.
func H6(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "h6", opt)
}

// Hgroup adds an hgroup element, grouping a heading with related content.
func Hgroup(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "hgroup", opt)
}

// Main adds a main element for the dominant content of the body.
func Main(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "main", opt)
}

// Nav adds a nav element for navigation links.
func Nav(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "nav", opt)
}

// Section adds a generic standalone section.
func Section(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "section", opt)
}

// Search adds a search element, containing form controls for searching.
func Search(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "search", opt)
}
