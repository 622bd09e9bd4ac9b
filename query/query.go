package query

// Selector based search over element trees.
//
// ___________________________________________________________________________
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

import (
	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/hbuild"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// All returns every element within scope (scope included) matching the
// given CSS selector, in depth-first pre-order. Selector groups separated
// by commas are supported. A selector which cascadia cannot parse results
// in an error.
func All(scope *hbuild.Element, selector string) ([]*hbuild.Element, error) {
	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		tracer().Errorf("cannot parse selector %q: %v", selector, err)
		return nil, err
	}
	m := newMirror(scope)
	var hits []*hbuild.Element
	for _, n := range cascadia.QueryAll(m.root, sel) {
		if e := m.backlink[n]; e != nil {
			hits = append(hits, e)
		}
	}
	tracer().Debugf("selector %q matched %d element(s)", selector, len(hits))
	return hits, nil
}

// First returns the first element within scope matching the given CSS
// selector, in depth-first pre-order, or nil if no element matches.
func First(scope *hbuild.Element, selector string) (*hbuild.Element, error) {
	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		tracer().Errorf("cannot parse selector %q: %v", selector, err)
		return nil, err
	}
	m := newMirror(scope)
	if n := cascadia.Query(m.root, sel); n != nil {
		return m.backlink[n], nil
	}
	return nil, nil
}

// --- Mirroring --------------------------------------------------------------

// mirror is a transient html.Node shadow of an element subtree, with a
// map leading from shadow nodes back to their elements.
type mirror struct {
	root     *html.Node
	backlink map[*html.Node]*hbuild.Element
}

func newMirror(scope *hbuild.Element) *mirror {
	m := &mirror{backlink: make(map[*html.Node]*hbuild.Element)}
	if scope == nil {
		m.root = &html.Node{Type: html.DocumentNode}
		return m
	}
	if scope.TagName() == "" {
		// tagless scope, e.g. a fragment root: mirror the children below
		// a synthetic document node
		m.root = &html.Node{Type: html.DocumentNode}
		m.appendContent(m.root, scope)
		for _, ch := range scope.Children() {
			m.mirrorElement(m.root, ch)
		}
		return m
	}
	m.root = &html.Node{Type: html.DocumentNode}
	m.mirrorElement(m.root, scope)
	return m
}

// mirrorElement shadows e below parent. Tagless elements do not produce a
// shadow node of their own; their content and children are attached to
// parent instead.
func (m *mirror) mirrorElement(parent *html.Node, e *hbuild.Element) {
	if e.TagName() == "" {
		m.appendContent(parent, e)
		for _, ch := range e.Children() {
			m.mirrorElement(parent, ch)
		}
		return
	}
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Lookup([]byte(e.TagName())),
		Data:     e.TagName(),
	}
	for _, attr := range e.Attributes() {
		n.Attr = append(n.Attr, html.Attribute{Key: attr.Name, Val: attr.Value})
	}
	parent.AppendChild(n)
	m.backlink[n] = e
	m.appendContent(n, e)
	for _, ch := range e.Children() {
		m.mirrorElement(n, ch)
	}
}

func (m *mirror) appendContent(parent *html.Node, e *hbuild.Element) {
	if c := e.Content(); c != "" {
		parent.AppendChild(&html.Node{Type: html.TextNode, Data: c})
	}
}
