package hbuild

// ElementByID returns the element with the given id from this element's
// subtree (the element itself included), or nil if there is none. On a
// cache root this is a single map lookup; anywhere else the subtree is
// searched depth-first, returning the first match.
func (e *Element) ElementByID(id string) *Element {
	if e.idcache != nil {
		return e.idcache[id]
	}
	// find recursively (the slower way)
	if e.ID() == id && id != "" {
		return e
	}
	for _, ch := range e.children.asSlice() {
		if found := ch.ElementByID(id); found != nil {
			return found
		}
	}
	return nil
}

// ElementsByTagName returns all elements of this element's subtree with the
// given tag name, in document order (depth-first, the element itself
// first). Tag names are kept lowercase in the tree, so tagName must be
// lowercase to match anything.
func (e *Element) ElementsByTagName(tagName string) []*Element {
	var result []*Element
	if e.tagName == tagName {
		result = append(result, e)
	}
	for _, ch := range e.children.asSlice() {
		result = append(result, ch.ElementsByTagName(tagName)...)
	}
	return result
}

// ElementByTagName returns the first element of this element's subtree with
// the given (lowercase) tag name, in document order, or nil if there is
// none.
func (e *Element) ElementByTagName(tagName string) *Element {
	if e.tagName == tagName {
		return e
	}
	for _, ch := range e.children.asSlice() {
		if found := ch.ElementByTagName(tagName); found != nil {
			return found
		}
	}
	return nil
}
