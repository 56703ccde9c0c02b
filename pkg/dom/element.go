package dom

import "strings"

// Attribute is one serialized element attribute.
type Attribute struct {
	Name  string
	Value string
}

// reflectedBooleans are boolean properties whose value is mirrored into the
// attribute of the same name. checked, selected and value are live state and
// are not reflected.
var reflectedBooleans = map[string]bool{
	"async":      true,
	"autofocus":  true,
	"autoplay":   true,
	"controls":   true,
	"default":    true,
	"defer":      true,
	"disabled":   true,
	"hidden":     true,
	"loop":       true,
	"multiple":   true,
	"novalidate": true,
	"open":       true,
	"readonly":   true,
	"required":   true,
	"reversed":   true,
}

// Element is an element node.
type Element struct {
	tag      string
	ns       string
	parent   *Element
	children []Node
	attrs    []Attribute
	props    map[string]any
}

func (e *Element) NodeType() NodeType   { return ElementNode }
func (e *Element) ParentNode() *Element { return e.parent }
func (e *Element) setParent(p *Element) { e.parent = p }
func (e *Element) ReplaceWith(n Node)   { replaceWith(e, n) }
func (e *Element) Remove()              { remove(e) }

// TagName returns the element's local name.
func (e *Element) TagName() string { return e.tag }

// NamespaceURI returns the element's namespace.
func (e *Element) NamespaceURI() string { return e.ns }

// TextContent concatenates the text of all descendant text nodes.
func (e *Element) TextContent() string {
	var b strings.Builder
	for _, c := range e.children {
		b.WriteString(c.TextContent())
	}
	return b.String()
}

// ChildNodes returns the element's children. The slice must not be modified.
func (e *Element) ChildNodes() []Node { return e.children }

// FirstChild returns the first child, or nil.
func (e *Element) FirstChild() Node {
	if len(e.children) == 0 {
		return nil
	}
	return e.children[0]
}

// AppendChild appends n, detaching it from any previous parent first.
func (e *Element) AppendChild(n Node) Node {
	remove(n)
	n.setParent(e)
	e.children = append(e.children, n)
	return n
}

// RemoveChild removes n if it is a child of e.
func (e *Element) RemoveChild(n Node) {
	for i, c := range e.children {
		if c == n {
			e.children = append(e.children[:i], e.children[i+1:]...)
			n.setParent(nil)
			return
		}
	}
}

// ReplaceChild puts n at the position of old.
func (e *Element) ReplaceChild(n, old Node) {
	idx := e.indexOf(old)
	if idx < 0 {
		return
	}
	if p := n.ParentNode(); p != nil {
		p.RemoveChild(n)
		// removal from e itself can shift old's position
		idx = e.indexOf(old)
	}
	e.children[idx] = n
	n.setParent(e)
	old.setParent(nil)
}

func (e *Element) indexOf(n Node) int {
	for i, c := range e.children {
		if c == n {
			return i
		}
	}
	return -1
}

// Attributes returns a copy of the element's attributes in insertion order.
func (e *Element) Attributes() []Attribute {
	out := make([]Attribute, len(e.attrs))
	copy(out, e.attrs)
	return out
}

// GetAttribute returns the attribute value and whether it is present.
func (e *Element) GetAttribute(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// HasAttribute reports whether the attribute is present.
func (e *Element) HasAttribute(name string) bool {
	_, ok := e.GetAttribute(name)
	return ok
}

// SetAttribute sets or replaces an attribute, keeping its original position.
func (e *Element) SetAttribute(name, value string) {
	if e.ns == HTMLNamespace {
		name = strings.ToLower(name)
	}
	for i, a := range e.attrs {
		if a.Name == name {
			e.attrs[i].Value = value
			return
		}
	}
	e.attrs = append(e.attrs, Attribute{Name: name, Value: value})
}

// RemoveAttribute removes an attribute if present.
func (e *Element) RemoveAttribute(name string) {
	for i, a := range e.attrs {
		if a.Name == name {
			e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
			return
		}
	}
}

// Property returns an object property. Unset "value" falls back to the
// value attribute and unset reflected booleans report attribute presence.
func (e *Element) Property(name string) any {
	if v, ok := e.props[name]; ok {
		return v
	}
	switch {
	case name == "value":
		v, _ := e.GetAttribute("value")
		return v
	case reflectedBooleans[name]:
		return e.HasAttribute(name)
	}
	return nil
}

// SetProperty assigns an object property. Reflected boolean properties also
// add or remove their attribute.
func (e *Element) SetProperty(name string, value any) {
	if reflectedBooleans[name] {
		on := truthy(value)
		if on {
			e.SetAttribute(name, "")
		} else {
			e.RemoveAttribute(name)
		}
		value = on
	}
	if e.props == nil {
		e.props = make(map[string]any)
	}
	e.props[name] = value
}

// ClassList returns the live token list backed by the class attribute.
func (e *Element) ClassList() *TokenList {
	return &TokenList{el: e, attr: "class"}
}

// Style returns the live declaration block backed by the style attribute.
func (e *Element) Style() *Style {
	return &Style{el: e}
}

// GetElementsByTagName returns descendants with the given tag in tree order.
func (e *Element) GetElementsByTagName(tag string) []*Element {
	var out []*Element
	var walk func(*Element)
	walk = func(el *Element) {
		for _, c := range el.children {
			if ce, ok := c.(*Element); ok {
				if ce.tag == tag {
					out = append(out, ce)
				}
				walk(ce)
			}
		}
	}
	walk(e)
	return out
}

// QuerySelector returns the first descendant with the given tag, or nil.
// Only bare tag selectors are supported.
func (e *Element) QuerySelector(tag string) *Element {
	if found := e.GetElementsByTagName(tag); len(found) > 0 {
		return found[0]
	}
	return nil
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	case int64:
		return x != 0
	case float64:
		return x != 0
	default:
		return true
	}
}
