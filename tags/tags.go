package tags

import (
	"github.com/npillmayer/hbuild"
)

// Opts collects the optional parts shared by most element constructors:
// an id, a class string, and any number of additional attributes. The
// zero value is a valid "no options" argument.
type Opts struct {
	ID    string
	Class string
	Attrs []hbuild.Attr
}

// element forwards to the generic constructor. Tag-specific attributes
// handed in by the caller come first, then the attributes from opt, then
// id and class; this mirrors the order in which they end up in the output.
func element(parent *hbuild.Element, tagName string, opt Opts, attrs ...hbuild.Attr) (*hbuild.Element, error) {
	attrs = append(attrs, opt.Attrs...)
	options := make([]hbuild.Option, 0, 4)
	if len(attrs) > 0 {
		options = append(options, hbuild.WithAttributes(attrs...))
	}
	if opt.ID != "" {
		options = append(options, hbuild.WithID(opt.ID))
	}
	if opt.Class != "" {
		options = append(options, hbuild.WithClass(opt.Class))
	}
	options = append(options, hbuild.WithParent(parent))
	return hbuild.New(tagName, options...)
}

// textElement is element plus an optional text child.
func textElement(parent *hbuild.Element, tagName string, text string, opt Opts, attrs ...hbuild.Attr) (*hbuild.Element, error) {
	e, err := element(parent, tagName, opt, attrs...)
	if err != nil {
		return nil, err
	}
	if text != "" {
		if _, err := e.Text(text); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// attrIf appends an attribute only when its value is set.
func attrIf(attrs []hbuild.Attr, name string, value string) []hbuild.Attr {
	if value == "" {
		return attrs
	}
	return append(attrs, hbuild.Attr{Name: name, Value: value})
}
