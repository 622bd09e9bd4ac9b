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
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ErrMismatchedTag is thrown by the parser when a closing tag does not
// match the currently open element.
var ErrMismatchedTag = errors.New("mismatched closing tag")

// ErrUnbalancedTree is thrown by the parser when the input ends with
// elements still open.
var ErrUnbalancedTree = errors.New("markup fragment is unbalanced")

// Parse parses an HTML fragment into a fresh, cache-holding container
// element (see MakeRoot) and returns it. The fragment must be balanced.
func Parse(markup string) (*Element, error) {
	root := MakeRoot("")
	if err := ParseFragment(markup, root); err != nil {
		return nil, err
	}
	return root, nil
}

// ParseFragment parses an HTML fragment and appends the resulting elements
// as children of parent. Elements carrying ids are registered with
// parent's cache root as they are inserted, so a duplicate id surfaces as
// ErrDuplicateID mid-parse.
//
// The fragment must be balanced: every non-void element needs a matching
// closing tag (ErrUnbalancedTree otherwise), and closing tags must match
// the innermost open element (ErrMismatchedTag otherwise). Void elements
// need no closing tag. Comments become comment children, a doctype
// declaration becomes a raw text child in canonical spelling.
func ParseFragment(markup string, parent *Element) error {
	p := fragmentParser{
		tokens: html.NewTokenizer(strings.NewReader(markup)),
		stack:  []*Element{parent},
	}
	return p.run()
}

// fragmentParser builds a tree from a token stream. It only ever uses the
// generic element constructor and the pseudo-node helpers, keeping a stack
// of open elements on the side.
type fragmentParser struct {
	tokens *html.Tokenizer
	stack  []*Element
}

func (p *fragmentParser) top() *Element {
	return p.stack[len(p.stack)-1]
}

func (p *fragmentParser) run() error {
	for {
		switch p.tokens.Next() {
		case html.ErrorToken:
			if err := p.tokens.Err(); err != io.EOF {
				return err
			}
			if len(p.stack) != 1 {
				return fmt.Errorf("%w: %d element(s) left open", ErrUnbalancedTree, len(p.stack)-1)
			}
			return nil
		case html.StartTagToken:
			if err := p.openTag(p.tokens.Token(), false); err != nil {
				return err
			}
		case html.SelfClosingTagToken:
			if err := p.openTag(p.tokens.Token(), true); err != nil {
				return err
			}
		case html.EndTagToken:
			if err := p.closeTag(p.tokens.Token()); err != nil {
				return err
			}
		case html.TextToken:
			if _, err := p.top().Text(string(p.tokens.Text())); err != nil {
				return err
			}
		case html.CommentToken:
			if _, err := p.top().Comment(string(p.tokens.Text())); err != nil {
				return err
			}
		case html.DoctypeToken:
			if _, err := p.top().Raw("<!DOCTYPE " + string(p.tokens.Text()) + ">"); err != nil {
				return err
			}
		}
	}
}

// openTag creates an element for a start tag under the innermost open
// element. Void elements, declared or self-closing, are complete
// immediately and are not pushed onto the stack.
func (p *fragmentParser) openTag(tok html.Token, selfClosing bool) error {
	attrs := make([]Attr, 0, len(tok.Attr))
	for _, a := range tok.Attr {
		attrs = append(attrs, Attr{Name: a.Key, Value: a.Val})
	}
	e, err := New(tok.Data, WithAttributes(attrs...), WithParent(p.top()))
	if err != nil {
		return err
	}
	tracer().Debugf("parser: open <%s>, %d attribute(s)", e.tagName, len(attrs))
	if !selfClosing && !e.isVoid {
		p.stack = append(p.stack, e)
	}
	return nil
}

func (p *fragmentParser) closeTag(tok html.Token) error {
	if len(p.stack) == 1 {
		return fmt.Errorf("%w: unexpected </%s>", ErrMismatchedTag, tok.Data)
	}
	e := p.top()
	p.stack = p.stack[:len(p.stack)-1]
	if e.tagName != tok.Data {
		return fmt.Errorf("%w: expected </%s>, received </%s>", ErrMismatchedTag, e.tagName, tok.Data)
	}
	tracer().Debugf("parser: close </%s>", tok.Data)
	return nil
}
