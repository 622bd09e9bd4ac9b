package tags

import (
	"github.com/npillmayer/hbuild"
)

// --- Image, multimedia and embedded content --------------------------------

// Area adds an area element, one region of an image map. Typically carries
// shape, coords, href, target and/or alt attributes.
func Area(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "area", opt)
}

// Audio adds an audio element for embedded sound content.
func Audio(parent *hbuild.Element, src string, opt Opts) (*hbuild.Element, error) {
	return element(parent, "audio", opt, attrIf(nil, "src", src)...)
}

// Img adds an embedded image.
func Img(parent *hbuild.Element, src string, opt Opts) (*hbuild.Element, error) {
	return element(parent, "img", opt, attrIf(nil, "src", src)...)
}

// Map adds a map element defining an image map.
func Map(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "map", opt)
}

// Track adds a timed text track for a media element.
func Track(parent *hbuild.Element, src string, opt Opts) (*hbuild.Element, error) {
	return element(parent, "track", opt, attrIf(nil, "src", src)...)
}

// Video adds a video element for embedded video content.
func Video(parent *hbuild.Element, src string, opt Opts) (*hbuild.Element, error) {
	return element(parent, "video", opt, attrIf(nil, "src", src)...)
}

// Embed adds an embed element for external content handled by a plug-in.
func Embed(parent *hbuild.Element, typ string, src string, opt Opts) (*hbuild.Element, error) {
	attrs := attrIf(nil, "type", typ)
	attrs = attrIf(attrs, "src", src)
	return element(parent, "embed", opt, attrs...)
}

// Iframe adds a nested browsing context.
func Iframe(parent *hbuild.Element, src string, opt Opts) (*hbuild.Element, error) {
	return element(parent, "iframe", opt, attrIf(nil, "src", src)...)
}

// Object adds an object element for external content.
func Object(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "object", opt)
}

// Picture adds a picture element containing source alternatives for an
// image.
func Picture(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "picture", opt)
}

// Portal adds a portal element embedding a preview of another page.
func Portal(parent *hbuild.Element, src string, opt Opts) (*hbuild.Element, error) {
	return element(parent, "portal", opt, attrIf(nil, "src", src)...)
}

// Source adds a media source alternative for picture, audio or video.
func Source(parent *hbuild.Element, src string, opt Opts) (*hbuild.Element, error) {
	return element(parent, "source", opt, attrIf(nil, "src", src)...)
}

// SVG adds an svg container element.
func SVG(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "svg", opt)
}

// Math adds a MathML math container element.
func Math(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "math", opt)
}

// --- Scripting -------------------------------------------------------------

// Canvas adds a canvas element for scripted graphics.
func Canvas(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "canvas", opt)
}

// Noscript adds fallback content for browsers without scripting.
func Noscript(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "noscript", opt)
}

// Script adds a script element, optionally referencing an external source.
func Script(parent *hbuild.Element, src string, opt Opts) (*hbuild.Element, error) {
	return element(parent, "script", opt, attrIf(nil, "src", src)...)
}
