/*
Package hbuild provides programmatic construction of HTML documents.

Clients build an in-memory tree of elements through method calls instead of
string concatenation, and render the tree to HTML afterwards. The package
also parses existing HTML fragments into the same tree representation and
offers indexed lookup of elements by id.

Overview

Elements are created with a generic constructor and wired together with
AppendChild, or in one go by providing a parent option:

    page := hbuild.MakeRoot("div")
    list, _ := hbuild.New("ul", hbuild.WithID("items"), hbuild.WithParent(page))
    item, _ := hbuild.New("li", hbuild.WithParent(list))
    item.Text("first entry")
    fmt.Println(page.Render())

A root element may be designated to hold an id cache, which keeps lookup by
id O(1) for the whole tree below it and enforces uniqueness of id values.
Subtrees inserted into, or removed from, a cached tree are re-registered
and deregistered transparently.

Package tags layers one convenience constructor per HTML element name on
top of this core. Package query runs CSS selectors against built trees.

Escaping of text and attribute content is intentionally left to callers,
as is structural validity: the builder will happily produce any tree it is
asked for, including invalid HTML. Self-referential trees are not detected
and will cause rendering to never terminate.

All mutating operations on a tree assume a single writer. The children
lists themselves are guarded, but the id bookkeeping is not designed for
concurrent mutation of the same tree.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package hbuild

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'hbuild.dom'.
func tracer() tracing.Trace {
	return tracing.Select("hbuild.dom")
}
