package tags

import (
	"github.com/npillmayer/hbuild"
)

// --- Main root and document metadata elements ------------------------------

// HTML adds the html root element as a child of parent.
func HTML(parent *hbuild.Element) (*hbuild.Element, error) {
	return hbuild.New("html", hbuild.WithParent(parent))
}

// Base adds a base element, specifying the base URL for all relative URLs
// in the document.
func Base(parent *hbuild.Element, href string, target string) (*hbuild.Element, error) {
	attrs := attrIf(nil, "href", href)
	attrs = attrIf(attrs, "target", target)
	return element(parent, "base", Opts{}, attrs...)
}

// Head adds a head element, containing metadata about the document.
func Head(parent *hbuild.Element) (*hbuild.Element, error) {
	return hbuild.New("head", hbuild.WithParent(parent))
}

// Link adds a link element, specifying a link to an external resource
// (CSS, favicon, and the like).
func Link(parent *hbuild.Element, href string, rel string) (*hbuild.Element, error) {
	attrs := attrIf(nil, "href", href)
	attrs = attrIf(attrs, "rel", rel)
	return element(parent, "link", Opts{}, attrs...)
}

// Meta adds a meta element for miscellaneous additional metadata.
func Meta(parent *hbuild.Element, name string, content string) (*hbuild.Element, error) {
	attrs := attrIf(nil, "name", name)
	attrs = attrIf(attrs, "content", content)
	return element(parent, "meta", Opts{}, attrs...)
}

// Style adds a style element for inline style information.
func Style(parent *hbuild.Element) (*hbuild.Element, error) {
	return hbuild.New("style", hbuild.WithParent(parent))
}

// Title adds a title element with the document's title as text content.
func Title(parent *hbuild.Element, title string) (*hbuild.Element, error) {
	e, err := hbuild.New("title", hbuild.WithParent(parent))
	if err != nil {
		return nil, err
	}
	if _, err := e.Text(title); err != nil {
		return nil, err
	}
	return e, nil
}

// --- Sectioning root -------------------------------------------------------

// Body adds a body element, containing the content of the document.
func Body(parent *hbuild.Element, attrs ...hbuild.Attr) (*hbuild.Element, error) {
	return element(parent, "body", Opts{}, attrs...)
}
