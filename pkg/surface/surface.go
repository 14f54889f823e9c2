package surface

import (
	"io"
	"strings"

	"github.com/beevik/etree"
)

// SVGNamespace is the namespace URI for SVG elements.
const SVGNamespace = "http://www.w3.org/2000/svg"

// Document is a tree of elements plus the event listeners bound to them.
// A Document is not safe for concurrent use.
type Document struct {
	doc       *etree.Document
	listeners map[*etree.Element][]binding
}

// Element is a handle onto one element of a Document.
type Element struct {
	doc *Document
	el  *etree.Element
}

// NewDocument creates a document whose root element has the given tag.
func NewDocument(rootTag string) *Document {
	doc := etree.NewDocument()
	doc.SetRoot(etree.NewElement(rootTag))
	return newDocument(doc)
}

// Parse reads an XML (typically SVG) document.
func Parse(data []byte) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}
	if doc.Root() == nil {
		doc.SetRoot(etree.NewElement("svg"))
	}
	return newDocument(doc), nil
}

func newDocument(doc *etree.Document) *Document {
	return &Document{
		doc:       doc,
		listeners: make(map[*etree.Element][]binding),
	}
}

func (d *Document) wrap(el *etree.Element) *Element {
	if el == nil {
		return nil
	}
	return &Element{doc: d, el: el}
}

// Root returns the document's root element.
func (d *Document) Root() *Element {
	return d.wrap(d.doc.Root())
}

// GetElementByID returns the first element in document order whose id
// attribute equals id, or nil.
func (d *Document) GetElementByID(id string) *Element {
	var found *etree.Element
	walk(d.doc.Root(), func(el *etree.Element) bool {
		if el.SelectAttrValue("id", "") == id {
			found = el
			return false
		}
		return true
	})
	return d.wrap(found)
}

// WriteTo serializes the document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	return d.doc.WriteTo(w)
}

// Bytes serializes the document.
func (d *Document) Bytes() ([]byte, error) {
	return d.doc.WriteToBytes()
}

// Document returns the document the element belongs to.
func (e *Element) Document() *Document { return e.doc }

// Tag returns the element's local tag name.
func (e *Element) Tag() string { return e.el.Tag }

// ID returns the element's id attribute.
func (e *Element) ID() string { return e.Attr("id") }

// Same reports whether e and other refer to the same element.
func (e *Element) Same(other *Element) bool {
	return other != nil && e.el == other.el
}

// Attr returns the value of the named attribute, or "" when absent.
func (e *Element) Attr(key string) string {
	return e.el.SelectAttrValue(key, "")
}

// HasAttr reports whether the named attribute is present.
func (e *Element) HasAttr(key string) bool {
	return e.el.SelectAttr(key) != nil
}

// SetAttr sets an attribute and returns e for chaining.
func (e *Element) SetAttr(key, value string) *Element {
	e.el.CreateAttr(key, value)
	return e
}

// RemoveAttr removes an attribute if present.
func (e *Element) RemoveAttr(key string) *Element {
	e.el.RemoveAttr(key)
	return e
}

// Append creates a new child element with the given tag.
func (e *Element) Append(tag string) *Element {
	return e.doc.wrap(e.el.CreateElement(tag))
}

// AppendCopy appends a deep copy of src, which may belong to another
// document. Listeners bound to src are not copied.
func (e *Element) AppendCopy(src *Element) *Element {
	c := src.el.Copy()
	e.el.AddChild(c)
	return e.doc.wrap(c)
}

// Remove detaches e from its parent and drops listeners bound within it.
func (e *Element) Remove() {
	walk(e.el, func(el *etree.Element) bool {
		delete(e.doc.listeners, el)
		return true
	})
	if p := e.el.Parent(); p != nil {
		p.RemoveChild(e.el)
	}
}

// Parent returns the parent element, or nil for the root.
func (e *Element) Parent() *Element {
	p := e.el.Parent()
	if p == nil || p.Tag == "" {
		return nil
	}
	return e.doc.wrap(p)
}

// Children returns the element's child elements.
func (e *Element) Children() []*Element {
	kids := e.el.ChildElements()
	out := make([]*Element, len(kids))
	for i, k := range kids {
		out[i] = e.doc.wrap(k)
	}
	return out
}

// Text returns the character data directly inside e.
func (e *Element) Text() string {
	return e.el.Text()
}

// SetText replaces the character data directly inside e.
func (e *Element) SetText(text string) *Element {
	e.el.SetText(text)
	return e
}

// TextContent returns the concatenated character data of e and its descendants.
func (e *Element) TextContent() string {
	var b strings.Builder
	textContent(e.el, &b)
	return b.String()
}

func textContent(el *etree.Element, b *strings.Builder) {
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			b.WriteString(t.Data)
		case *etree.Element:
			textContent(t, b)
		}
	}
}

// Query returns the first element matching an etree path expression
// (for example "./g" or ".//text"). An invalid path matches nothing.
func (e *Element) Query(path string) *Element {
	p, err := etree.CompilePath(path)
	if err != nil {
		return nil
	}
	return e.doc.wrap(e.el.FindElementPath(p))
}

// QueryAll returns every element matching an etree path expression.
func (e *Element) QueryAll(path string) []*Element {
	p, err := etree.CompilePath(path)
	if err != nil {
		return nil
	}
	found := e.el.FindElementsPath(p)
	out := make([]*Element, len(found))
	for i, f := range found {
		out[i] = e.doc.wrap(f)
	}
	return out
}

// Find returns descendants of e in document order that match tag and class.
// An empty tag or class matches any.
func (e *Element) Find(tag, class string) []*Element {
	var out []*Element
	for _, c := range e.el.ChildElements() {
		walk(c, func(el *etree.Element) bool {
			if (tag == "" || el.Tag == tag) && (class == "" || hasClass(el, class)) {
				out = append(out, e.doc.wrap(el))
			}
			return true
		})
	}
	return out
}

// First returns the first descendant in document order whose tag is one of tags.
func (e *Element) First(tags ...string) *Element {
	var found *etree.Element
	for _, c := range e.el.ChildElements() {
		walk(c, func(el *etree.Element) bool {
			for _, t := range tags {
				if el.Tag == t {
					found = el
					return false
				}
			}
			return true
		})
		if found != nil {
			break
		}
	}
	return e.doc.wrap(found)
}

// HasClass reports whether the class attribute contains name.
func (e *Element) HasClass(name string) bool {
	return hasClass(e.el, name)
}

// AddClass adds name to the class attribute if missing.
func (e *Element) AddClass(name string) *Element {
	if hasClass(e.el, name) {
		return e
	}
	if cls := e.Attr("class"); cls != "" {
		return e.SetAttr("class", cls+" "+name)
	}
	return e.SetAttr("class", name)
}

func hasClass(el *etree.Element, name string) bool {
	for _, c := range strings.Fields(el.SelectAttrValue("class", "")) {
		if c == name {
			return true
		}
	}
	return false
}

// Bytes serializes e and its descendants.
func (e *Element) Bytes() ([]byte, error) {
	doc := etree.NewDocument()
	doc.SetRoot(e.el.Copy())
	return doc.WriteToBytes()
}

// walk visits el and its descendants in document order until fn returns false.
func walk(el *etree.Element, fn func(*etree.Element) bool) bool {
	if el == nil {
		return true
	}
	if !fn(el) {
		return false
	}
	for _, c := range el.ChildElements() {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}
