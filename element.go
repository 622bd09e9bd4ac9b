package hbuild

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrVoidElement is thrown when content or children are appended to a void
// element.
var ErrVoidElement = errors.New("content not permitted on void elements")

// ErrDuplicateID is thrown when an id value is registered a second time with
// the same cache root.
var ErrDuplicateID = errors.New("duplicate id")

// ErrChildNotFound is thrown by RemoveChild if the argument is not a direct
// child of the receiver.
var ErrChildNotFound = errors.New("child does not exist in this parent element")

// In HTML5 these elements cannot have children and must not have a
// closing tag.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// Attr is a single name/value attribute pair of an element.
type Attr struct {
	Name  string
	Value string
}

// Element is one node of an HTML document tree. It has a tag, optionally
// attributes, optionally children. An element with an empty tag emits no
// surrounding markup of its own, only its content and children; text
// nodes, comments and doctype declarations are modelled this way.
type Element struct {
	tagName    string
	content    string
	attributes []Attr
	children   childrenSlice // mutex-protected slice of children nodes
	parent     *Element
	root       *Element            // nearest ancestor (or self) holding an id cache
	idcache    map[string]*Element // non-nil only on a designated cache root
	isVoid     bool
}

// config collects the constructor arguments assembled by options.
type config struct {
	id         string
	class      string
	content    string
	attributes []Attr
	parent     *Element
	isVoid     bool
	idcache    bool
}

// Option is a type to help initializing elements at creation time.
type Option func(*config)

// WithID sets the id attribute of a new element.
func WithID(id string) Option {
	return func(cfg *config) {
		cfg.id = id
	}
}

// WithClass sets the class attribute of a new element.
func WithClass(classname string) Option {
	return func(cfg *config) {
		cfg.class = classname
	}
}

// WithAttributes adds attributes to a new element, in the given order.
func WithAttributes(attrs ...Attr) Option {
	return func(cfg *config) {
		cfg.attributes = append(cfg.attributes, attrs...)
	}
}

// WithContent sets a literal string which will be rendered verbatim as the
// element's first content, before any children. Used for text nodes,
// comments and doctype declarations.
func WithContent(content string) Option {
	return func(cfg *config) {
		cfg.content = content
	}
}

// WithParent appends the new element to a parent during construction.
func WithParent(parent *Element) Option {
	return func(cfg *config) {
		cfg.parent = parent
	}
}

// Void marks the new element as a void element, regardless of its tag.
// Void elements render self-closing and reject children.
func Void() Option {
	return func(cfg *config) {
		cfg.isVoid = true
	}
}

// WithIDCache designates the new element as a cache root: it will own the
// id-to-element index for its entire subtree. Id uniqueness is only
// enforced below a cache root.
func WithIDCache() Option {
	return func(cfg *config) {
		cfg.idcache = true
	}
}

// New creates an element. The tag name is lowercased; an empty tag creates
// a pseudo-element which renders only content and children. Options are
// applied in a fixed order: attributes first, then id, then class, and
// finally the attachment to a parent, no matter in which order they are
// given.
//
// New fails if an id collides with an id already registered with the
// applicable cache root, or if the requested parent is a void element.
// The element has been created, and possibly attached, even then; see
// SetAttribute and AppendChild for the exact state left behind.
func New(tagName string, opts ...Option) (*Element, error) {
	cfg := config{}
	for _, option := range opts {
		option(&cfg)
	}
	e := &Element{tagName: strings.ToLower(tagName)}
	e.isVoid = cfg.isVoid || voidElements[e.tagName]
	e.content = cfg.content
	if cfg.idcache {
		e.idcache = make(map[string]*Element)
		e.root = e
	}
	for _, attr := range cfg.attributes {
		if err := e.SetAttribute(attr.Name, attr.Value); err != nil {
			return e, err
		}
	}
	if cfg.id != "" {
		if err := e.SetAttribute("id", cfg.id); err != nil {
			return e, err
		}
	}
	if cfg.class != "" {
		if err := e.SetAttribute("class", cfg.class); err != nil {
			return e, err
		}
	}
	if cfg.parent != nil {
		if _, err := cfg.parent.AppendChild(e); err != nil {
			return e, err
		}
	}
	return e, nil
}

// TagName returns the (lowercase) tag of the element. It is empty for text
// nodes, comments and other pseudo-elements.
func (e *Element) TagName() string {
	return e.tagName
}

// Content returns the literal content of the element, or "" if it has none.
func (e *Element) Content() string {
	return e.content
}

// IsVoid returns true if the element may not have children and renders
// self-closing.
func (e *Element) IsVoid() bool {
	return e.isVoid
}

// Parent returns the parent element, or nil for a detached element or the
// root of a tree.
func (e *Element) Parent() *Element {
	return e.parent
}

// Root returns the element holding the id cache for the tree this element
// lives in, or nil if the element belongs to a detached, uncached subtree.
func (e *Element) Root() *Element {
	return e.root
}

func (e *Element) String() string {
	return e.Render()
}

// --- Tree mutation ---------------------------------------------------------

// AppendChild appends a child element and takes ownership of it: the
// child's subtree is re-rooted onto this element's cache root (if any) and
// every id found in the subtree is registered there. AppendChild returns
// the child to allow for storing children created in-place as arguments.
//
// AppendChild fails with ErrVoidElement if the receiver is void, and with
// ErrDuplicateID if an id of the inserted subtree is already registered.
// In the latter case the child remains appended, and ids registered before
// the collision was detected stay registered; callers needing atomicity
// must pre-validate.
func (e *Element) AppendChild(child *Element) (*Element, error) {
	if e.isVoid {
		return nil, fmt.Errorf("%w: <%s>", ErrVoidElement, e.tagName)
	}
	e.children.append(child, e)
	if err := e.adoptSubtree(child); err != nil {
		return child, err
	}
	return child, nil
}

// RemoveChild removes the given element from the receiver's list of
// children. Every id in the removed subtree is deregistered from the old
// cache root and the subtree becomes detached (no parent, no root).
// RemoveChild returns the removed child.
//
// RemoveChild fails with ErrChildNotFound if child is not a direct child
// of the receiver.
func (e *Element) RemoveChild(child *Element) (*Element, error) {
	if e.children.indexOf(child) < 0 {
		return nil, ErrChildNotFound
	}
	e.releaseSubtree(child)
	e.children.detach(child)
	return child, nil
}

// Remove detaches the element from its parent, deregistering the subtree
// below it. Calling Remove on a parentless element does nothing.
func (e *Element) Remove() {
	if e.parent != nil {
		e.parent.RemoveChild(e) // cannot fail: e is a child of its parent
	}
}

// adoptSubtree re-roots child and all of its descendants onto e's cache
// root and registers their ids there. A cache owned by the child itself is
// dropped: a subtree hands over its index when it is inserted somewhere.
// Registrations performed before a collision is detected are not undone.
func (e *Element) adoptSubtree(child *Element) error {
	child.root = e.root
	child.idcache = nil
	if id, ok := child.Attribute("id"); ok {
		if err := e.registerID(id, child); err != nil {
			return err
		}
	}
	for _, ch := range child.children.asSlice() {
		if err := e.adoptSubtree(ch); err != nil {
			return err
		}
	}
	return nil
}

// releaseSubtree deregisters every id of child's subtree from the cache
// root still reachable through e, then clears the subtree's root links.
func (e *Element) releaseSubtree(child *Element) {
	if id, ok := child.Attribute("id"); ok {
		e.removeID(id)
	}
	for _, ch := range child.children.asSlice() {
		e.releaseSubtree(ch)
	}
	child.root = nil
}

// --- Child access ----------------------------------------------------------

// ChildCount returns the number of children of the element.
func (e *Element) ChildCount() int {
	return e.children.length()
}

// Child returns the n-th child of the element.
func (e *Element) Child(n int) (*Element, bool) {
	if n < 0 || n >= e.children.length() {
		return nil, false
	}
	ch := e.children.child(n)
	return ch, ch != nil
}

// Children returns a slice with all children of the element, in order.
func (e *Element) Children() []*Element {
	return e.children.asSlice()
}

// IndexOfChild returns the position of ch within the children of the
// element, or -1 if ch is not a direct child.
func (e *Element) IndexOfChild(ch *Element) int {
	return e.children.indexOf(ch)
}

// --- Concurrency-safe slices of children ------------------------------------

type childrenSlice struct {
	sync.RWMutex
	slice []*Element
}

func (chs *childrenSlice) length() int {
	chs.RLock()
	defer chs.RUnlock()
	return len(chs.slice)
}

func (chs *childrenSlice) append(child *Element, parent *Element) {
	if child == nil {
		return
	}
	chs.Lock()
	defer chs.Unlock()
	chs.slice = append(chs.slice, child)
	child.parent = parent
}

func (chs *childrenSlice) indexOf(node *Element) int {
	chs.RLock()
	defer chs.RUnlock()
	for i, ch := range chs.slice {
		if ch == node {
			return i
		}
	}
	return -1
}

func (chs *childrenSlice) detach(node *Element) {
	chs.Lock()
	defer chs.Unlock()
	for i, ch := range chs.slice {
		if ch == node {
			chs.slice = append(chs.slice[:i], chs.slice[i+1:]...)
			node.parent = nil
			break
		}
	}
}

func (chs *childrenSlice) child(n int) *Element {
	chs.RLock()
	defer chs.RUnlock()
	if n < 0 || n >= len(chs.slice) {
		return nil
	}
	return chs.slice[n]
}

func (chs *childrenSlice) asSlice() []*Element {
	chs.RLock()
	defer chs.RUnlock()
	children := make([]*Element, len(chs.slice))
	copy(children, chs.slice)
	return children
}
