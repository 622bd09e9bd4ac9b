package hbuild

import "fmt"

// SetAttribute creates or overwrites an attribute of the element.
//
// Setting "id" updates the id cache of the applicable root: an existing id
// value is deregistered first, then the new value is registered. If the new
// value is already taken elsewhere in the tree, SetAttribute returns
// ErrDuplicateID. The attribute is written to the element even then, and
// the old id stays deregistered; the element and the cache disagree until
// the caller resolves the collision.
func (e *Element) SetAttribute(name string, value string) error {
	var regErr error
	if name == "id" {
		if old, ok := e.Attribute("id"); ok {
			e.removeID(old)
		}
		regErr = e.registerID(value, e)
	}
	for i := range e.attributes {
		if e.attributes[i].Name == name {
			e.attributes[i].Value = value
			return regErr
		}
	}
	e.attributes = append(e.attributes, Attr{Name: name, Value: value})
	return regErr
}

// RemoveAttribute removes an attribute from the element if it exists.
// Removing "id" deregisters the value from the applicable cache root.
func (e *Element) RemoveAttribute(name string) {
	for i := range e.attributes {
		if e.attributes[i].Name == name {
			value := e.attributes[i].Value
			e.attributes = append(e.attributes[:i], e.attributes[i+1:]...)
			if name == "id" && value != "" {
				e.removeID(value)
			}
			return
		}
	}
}

// Attribute returns the value of an attribute, if it exists.
func (e *Element) Attribute(name string) (string, bool) {
	for _, attr := range e.attributes {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Attributes returns a copy of the element's attributes, in the order they
// were set.
func (e *Element) Attributes() []Attr {
	if len(e.attributes) == 0 {
		return nil
	}
	attrs := make([]Attr, len(e.attributes))
	copy(attrs, e.attributes)
	return attrs
}

// HasAttributes checks for the existence of attributes.
func (e *Element) HasAttributes() bool {
	return len(e.attributes) > 0
}

// ID returns the id of the element, or "" if it has none.
func (e *Element) ID() string {
	id, _ := e.Attribute("id")
	return id
}

// SetID sets the id of the element (see SetAttribute).
func (e *Element) SetID(id string) error {
	return e.SetAttribute("id", id)
}

// --- Id cache --------------------------------------------------------------

// registerID records an association of an id value with an element. If the
// receiver holds the cache itself, it is updated directly, otherwise the
// call is delegated to the cache root, if there is one. Without a cache
// root above it an element is untracked, and nothing guarantees that ids
// are unique (until the subtree is inserted below a cache root).
func (e *Element) registerID(id string, element *Element) error {
	if e.idcache != nil {
		if _, ok := e.idcache[id]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateID, id)
		}
		e.idcache[id] = element
		tracer().Debugf("id cache: registered %q for <%s>", id, element.tagName)
		return nil
	}
	if e.root != nil {
		return e.root.registerID(id, element)
	}
	return nil
}

// removeID drops an id value from the cache of the applicable root, if any.
func (e *Element) removeID(id string) {
	if e.idcache != nil {
		delete(e.idcache, id)
		tracer().Debugf("id cache: removed %q", id)
		return
	}
	if e.root != nil {
		e.root.removeID(id)
	}
}
