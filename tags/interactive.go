package tags

import (
	"github.com/npillmayer/hbuild"
)

// --- Interactive elements ---------------------------------------------------

// Details adds a disclosure widget, optionally with text content.
func Details(parent *hbuild.Element, text string, opt Opts) (*hbuild.Element, error) {
	return textElement(parent, "details", text, opt)
}

// Dialog adds a dialog box or other interactive sub-window.
func Dialog(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "dialog", opt)
}

// Summary adds the summary line of a details element, optionally with
// text content.
func Summary(parent *hbuild.Element, text string, opt Opts) (*hbuild.Element, error) {
	return textElement(parent, "summary", text, opt)
}

// --- Web components ---------------------------------------------------------

// Slot adds a slot element, a placeholder inside a web component.
func Slot(parent *hbuild.Element, text string, opt Opts) (*hbuild.Element, error) {
	return textElement(parent, "slot", text, opt)
}

// Template adds a template element holding content that is not rendered.
func Template(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "template", opt)
}
