// Package l5x loads Logix Designer L5X exports and answers path queries
// against them, transparently qualifying every path segment with the
// namespace declared on the root element.
package l5x

import (
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// RootElement is the local name every L5X document root must carry.
const RootElement = "RSLogix5000Content"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Document is a parsed and validated L5X file. It is read-only once built.
type Document struct {
	path string
	root *Element
	ns   string
}

// Load reads and parses the L5X file at path from fs.
func Load(fs afero.Fs, path string) (*Document, error) {
	raw, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &Error{Kind: KindNotFound, Path: path, Err: err}
		}
		return nil, errors.Wrapf(err, "cannot read %s", path)
	}
	return parse(path, raw)
}

// Parse reads a whole L5X document from r.
func Parse(r io.Reader) (*Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read document")
	}
	return parse("", raw)
}

func parse(path string, raw []byte) (*Document, error) {
	dec := xml.NewDecoder(bytes.NewReader(bytes.TrimPrefix(raw, utf8BOM)))

	var root Element
	if err := dec.Decode(&root); err != nil {
		return nil, &Error{Kind: KindParse, Path: path, Err: err}
	}
	if err := checkTrailer(dec); err != nil {
		return nil, &Error{Kind: KindParse, Path: path, Err: err}
	}

	if root.XMLName.Local != RootElement {
		return nil, &Error{
			Kind:     KindInvalidFormat,
			Path:     path,
			Found:    root.XMLName.Local,
			Expected: RootElement,
		}
	}

	return &Document{path: path, root: &root, ns: root.XMLName.Space}, nil
}

// checkTrailer rejects anything but whitespace, comments and processing
// instructions after the document element.
func checkTrailer(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return errors.Errorf("junk after document element: <%s>", t.Name.Local)
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return errors.New("junk after document element: character data")
			}
		}
	}
}

// Path is the file the document was loaded from, empty for Parse.
func (d *Document) Path() string { return d.path }

// Root returns the validated root element.
func (d *Document) Root() *Element { return d.root }

// Namespace returns the namespace URI declared on the root, or "".
func (d *Document) Namespace() string { return d.ns }

// Find returns the first element matching the slash separated child path
// below ctx (the root when ctx is nil), or nil.
func (d *Document) Find(ctx *Element, path string) *Element {
	if found := d.FindAll(ctx, path); len(found) > 0 {
		return found[0]
	}
	return nil
}

// FindAll returns every element matching the slash separated child path
// below ctx (the root when ctx is nil) in document order. Each segment
// matches direct children only.
func (d *Document) FindAll(ctx *Element, path string) []*Element {
	if ctx == nil {
		ctx = d.root
	}
	current := []*Element{ctx}
	for _, segment := range strings.Split(path, "/") {
		var next []*Element
		for _, e := range current {
			for _, c := range e.Children {
				if d.matches(c, segment) {
					next = append(next, c)
				}
			}
		}
		if len(next) == 0 {
			return nil
		}
		current = next
	}
	return current
}

func (d *Document) matches(e *Element, local string) bool {
	return e.XMLName.Local == local && e.XMLName.Space == d.ns
}

// Description returns the trimmed text of the element's Description child
// with line breaks flattened to spaces, or "" when there is none.
func (d *Document) Description(e *Element) string {
	if e == nil {
		return ""
	}
	desc := d.Find(e, "Description")
	if desc == nil {
		return ""
	}
	return strings.ReplaceAll(strings.TrimSpace(desc.Text()), "\n", " ")
}
