/*
Package query matches CSS selectors against hbuild element trees.

Overview

There is not very much open source Go code around for CSS selector
matching, except the great work of
https://godoc.org/github.com/andybalholm/cascadia.
cascadia operates on nodes of the golang.org/x/net/html package, not on
hbuild elements. This package therefore mirrors a scope of the element
tree into a transient html.Node tree, lets cascadia do the matching, and
maps the hits back onto the originating elements.

Mirroring flattens tagless grouping nodes, i.e. children of a tagless
element count as children of the nearest tagged ancestor for combinators
like 'div > span'. This matches the flattened output of serialization.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package query

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'hbuild.query'.
func tracer() tracing.Trace {
	return tracing.Select("hbuild.query")
}
