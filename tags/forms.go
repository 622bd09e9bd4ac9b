package tags

import (
	"github.com/npillmayer/hbuild"
)

// --- Form elements ---------------------------------------------------------

// Button adds an interactive button, optionally with text content.
func Button(parent *hbuild.Element, text string, opt Opts) (*hbuild.Element, error) {
	return textElement(parent, "button", text, opt)
}

// Datalist adds a datalist element, a set of option elements representing
// permissible choices for other controls.
func Datalist(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "datalist", opt)
}

// Fieldset adds a fieldset element grouping several controls.
func Fieldset(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "fieldset", opt)
}

// Form adds a form element, a document section containing interactive
// controls for submitting information.
//
// action is the URL that processes the submitted data; method the HTTP
// method to submit with. An empty method defaults to "get".
func Form(parent *hbuild.Element, action string, method string, opt Opts) (*hbuild.Element, error) {
	if method == "" {
		method = "get"
	}
	attrs := attrIf(nil, "action", action)
	attrs = attrIf(attrs, "method", method)
	return element(parent, "form", opt, attrs...)
}

// Input adds an interactive form control.
//
// typ is the control type (text, checkbox, radio, submit, …); name is the
// control name submitted with the form data.
func Input(parent *hbuild.Element, typ string, name string, opt Opts) (*hbuild.Element, error) {
	attrs := attrIf(nil, "type", typ)
	attrs = attrIf(attrs, "name", name)
	return element(parent, "input", opt, attrs...)
}

// Label adds a caption for another form control. forID is the id of the
// labelled control (the "for" attribute); text the caption text.
func Label(parent *hbuild.Element, forID string, text string, opt Opts) (*hbuild.Element, error) {
	return textElement(parent, "label", text, opt, attrIf(nil, "for", forID)...)
}

// Legend adds a caption for its parent fieldset, optionally with text
// content.
func Legend(parent *hbuild.Element, text string, opt Opts) (*hbuild.Element, error) {
	return textElement(parent, "legend", text, opt)
}

// Meter adds a meter element representing a scalar value within a range.
func Meter(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "meter", opt)
}

// Optgroup adds a group of option elements within a select.
func Optgroup(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "optgroup", opt)
}

// Option adds an option within a select, optgroup or datalist. value is
// the content submitted with the form; text the visible label.
func Option(parent *hbuild.Element, value string, text string, opt Opts) (*hbuild.Element, error) {
	return textElement(parent, "option", text, opt, attrIf(nil, "value", value)...)
}

// Output adds a container element into which results can be injected.
func Output(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "output", opt)
}

// Progress adds an indicator showing the completion progress of a task.
func Progress(parent *hbuild.Element, opt Opts) (*hbuild.Element, error) {
	return element(parent, "progress", opt)
}

// Select adds a control providing a menu of options; child option
// elements must be added separately. name is the control name submitted
// with the form data.
func Select(parent *hbuild.Element, name string, text string, opt Opts) (*hbuild.Element, error) {
	return textElement(parent, "select", text, opt, attrIf(nil, "name", name)...)
}

// Textarea adds a multi-line plain-text editing control. name is the
// control name submitted with the form data.
func Textarea(parent *hbuild.Element, name string, text string, opt Opts) (*hbuild.Element, error) {
	return textElement(parent, "textarea", text, opt, attrIf(nil, "name", name)...)
}
