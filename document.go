package hbuild

// StandardDoctype is the short HTML5 document type declaration.
const StandardDoctype = "<!DOCTYPE html>"

// Text creates a text node and adds it as a child of the element. A text
// node is simply a node with content, but no tag, attributes or children.
// The text is not escaped.
func (e *Element) Text(text string) (*Element, error) {
	return New("", WithContent(text), Void(), WithParent(e))
}

// Comment adds an HTML comment as a child of the element. The comment
// string is wrapped in comment delimiters; it is neither parsed nor
// escaped.
func (e *Element) Comment(comment string) (*Element, error) {
	return New("", WithContent("<!-- "+comment+" -->"), Void(), WithParent(e))
}

// Raw adds an unescaped text string as a child of the element, exactly as
// given. Doctype declarations and other markup that should bypass the
// builder go through here.
func (e *Element) Raw(text string) (*Element, error) {
	return New("", WithContent(text), Void(), WithParent(e))
}

// Doctype adds the standard HTML5 doctype declaration as a child of the
// element.
func (e *Element) Doctype() (*Element, error) {
	return e.Raw(StandardDoctype)
}

// MakeRoot creates a root element holding an id cache. Usually this is a
// whole page, but it could be a fragment, e.g. for HTMX-style partials;
// pass an empty tag name for a bare container.
func MakeRoot(tagName string) *Element {
	root, _ := New(tagName, WithIDCache()) // cannot fail: no attributes, no parent
	return root
}

// MakeDocument creates a basic HTML document: a tagless, cache-holding
// container with a doctype declaration, an html element, a head (with a
// title element if title is non-empty), and an empty body.
func MakeDocument(title string) (*Element, error) {
	document := MakeRoot("")
	if _, err := document.Doctype(); err != nil {
		return nil, err
	}
	root, err := New("html", WithParent(document))
	if err != nil {
		return nil, err
	}
	head, err := New("head", WithParent(root))
	if err != nil {
		return nil, err
	}
	if title != "" {
		titleElement, err := New("title", WithParent(head))
		if err != nil {
			return nil, err
		}
		if _, err := titleElement.Text(title); err != nil {
			return nil, err
		}
	}
	if _, err := New("body", WithParent(root)); err != nil {
		return nil, err
	}
	return document, nil
}
