package l5x

import (
	"encoding/xml"
	"strings"
)

// Element is one node of the parsed document. The whole file is unmarshalled
// into a generic tree and queried by path, so no struct mirrors the L5X schema.
type Element struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Content  string     `xml:",chardata"`
	Children []*Element `xml:",any"`
}

// Attribute is a detached name/value pair copied out of an Element.
type Attribute struct {
	Name  string
	Value string
}

// Name returns the local (namespace stripped) element name.
func (e *Element) Name() string {
	if e == nil {
		return ""
	}
	return e.XMLName.Local
}

// Attr returns the value of the named attribute and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	if e == nil {
		return "", false
	}
	for _, a := range e.Attrs {
		if a.Name.Local == name && !isNamespaceDecl(a.Name) {
			return a.Value, true
		}
	}
	return "", false
}

// AttrOr returns the named attribute, or def when it is absent.
func (e *Element) AttrOr(name, def string) string {
	if v, ok := e.Attr(name); ok {
		return v
	}
	return def
}

// BoolAttr reads an L5X boolean ("true"/"false"). Absent or unparsable
// values yield def.
func (e *Element) BoolAttr(name string, def bool) bool {
	v, ok := e.Attr(name)
	if !ok {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1":
		return true
	case "false", "0":
		return false
	}
	return def
}

// Attributes returns a copy of the element attributes in document order.
// Namespace declarations are not attributes and are left out.
func (e *Element) Attributes() []Attribute {
	if e == nil {
		return nil
	}
	out := make([]Attribute, 0, len(e.Attrs))
	for _, a := range e.Attrs {
		if isNamespaceDecl(a.Name) {
			continue
		}
		out = append(out, Attribute{Name: a.Name.Local, Value: a.Value})
	}
	return out
}

// Text returns the element character data verbatim (CDATA included).
func (e *Element) Text() string {
	if e == nil {
		return ""
	}
	return e.Content
}

func isNamespaceDecl(n xml.Name) bool {
	return n.Space == "xmlns" || (n.Space == "" && n.Local == "xmlns")
}
