package dom

import "strings"

// Namespaces understood by CreateElementNS.
const (
	HTMLNamespace = "http://www.w3.org/1999/xhtml"
	SVGNamespace  = "http://www.w3.org/2000/svg"
)

// NodeType is the node type discriminator.
type NodeType uint8

const (
	ElementNode NodeType = 1
	TextNode    NodeType = 3
)

// String returns the string representation of the NodeType.
func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	default:
		return "Unknown"
	}
}

// Node is an element or a text node.
type Node interface {
	NodeType() NodeType
	ParentNode() *Element
	TextContent() string
	// ReplaceWith puts n where the receiver currently sits in its parent.
	// It is a no-op when the receiver is detached.
	ReplaceWith(n Node)
	// Remove detaches the receiver from its parent.
	Remove()

	setParent(p *Element)
}

// Document creates nodes.
type Document struct{}

// NewDocument returns a new Document.
func NewDocument() *Document {
	return &Document{}
}

// CreateElement creates an HTML element.
func (d *Document) CreateElement(tag string) *Element {
	return d.CreateElementNS(HTMLNamespace, tag)
}

// CreateElementNS creates an element in the given namespace.
func (d *Document) CreateElementNS(ns, tag string) *Element {
	if ns == "" {
		ns = HTMLNamespace
	}
	if ns == HTMLNamespace {
		tag = strings.ToLower(tag)
	}
	return &Element{tag: tag, ns: ns}
}

// CreateTextNode creates a text node.
func (d *Document) CreateTextNode(data string) *Text {
	return &Text{data: data}
}

// Text is a text node.
type Text struct {
	parent *Element
	data   string
}

func (t *Text) NodeType() NodeType   { return TextNode }
func (t *Text) ParentNode() *Element { return t.parent }
func (t *Text) TextContent() string  { return t.data }
func (t *Text) setParent(p *Element) { t.parent = p }
func (t *Text) Data() string         { return t.data }
func (t *Text) SetData(data string)  { t.data = data }
func (t *Text) ReplaceWith(n Node)   { replaceWith(t, n) }
func (t *Text) Remove()              { remove(t) }

func replaceWith(old, n Node) {
	p := old.ParentNode()
	if p == nil || old == n {
		return
	}
	p.ReplaceChild(n, old)
}

func remove(n Node) {
	if p := n.ParentNode(); p != nil {
		p.RemoveChild(n)
	}
}
