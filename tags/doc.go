/*
Package tags offers one convenience constructor per HTML element name.

Every constructor creates an element of a fixed tag as a child of a given
parent, forwarding to the generic element constructor of package hbuild.
Most of them accept an Opts value for id, class and additional attributes;
constructors for elements with customary attributes (href on anchors, src
on media, action and method on forms, and so on) take those as leading
parameters and put them first into the attribute list. Constructors for
elements which typically hold a short run of text accept that text
directly and append it as a text child.

The set of constructors follows the element catalog at
https://developer.mozilla.org/en-US/docs/Web/HTML/Element.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tags
