package spec

import (
	"github.com/vango-dev/viewspec/pkg/dom"
	"github.com/vango-dev/viewspec/pkg/scope"
	"github.com/vango-dev/viewspec/pkg/stream"
)

// Kind is the node type discriminator.
type Kind uint8

const (
	KindText      Kind = iota // Plain text leaf
	KindElement               // <div>, <svg>, etc.
	KindComponent             // Component function call
	KindStream                // Stream of nodes
	KindRealized              // Already built dom.Node
	KindInvalid               // Tag was neither a string nor a component
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindElement:
		return "Element"
	case KindComponent:
		return "Component"
	case KindStream:
		return "Stream"
	case KindRealized:
		return "Realized"
	case KindInvalid:
		return "Invalid"
	default:
		return "Unknown"
	}
}

// Node is the declarative description of one DOM node. Nodes are immutable
// once built and may be rendered any number of times.
type Node struct {
	Kind     Kind
	Tag      string                   // KindElement
	Comp     ComponentFunc            // KindComponent
	Attrs    Attrs                    // KindElement, KindComponent
	Children []*Node                  // KindElement, KindComponent
	Text     string                   // KindText
	Stream   stream.Observable[*Node] // KindStream
	Realized dom.Node                 // KindRealized
	Invalid  any                      // KindInvalid: the rejected tag value
	Dev      *DevSource               // Set when built in DebugMode
}

// Props is what a component function receives.
type Props struct {
	Attrs    Attrs
	Children []*Node
}

// Get returns the last value set for name, or nil.
func (p Props) Get(name string) any {
	v, _ := p.Attrs.Get(name)
	return v
}

// String returns the attribute as a string, or "" if absent or not a string.
func (p Props) String(name string) string {
	s, _ := p.Get(name).(string)
	return s
}

// ComponentFunc renders a component. It receives the renderer's context
// stack so it can read and bind context values during its call.
type ComponentFunc func(st *scope.Stack, props Props) *Node

// DevSource records where a node was built.
type DevSource struct {
	File string
	Line int
	// Func is the fully qualified name of the function that built the node.
	Func string
}

// Text creates a text leaf.
func Text(content string) *Node {
	return &Node{Kind: KindText, Text: content, Dev: caller(1)}
}

// Realize wraps an already built dom node.
func Realize(n dom.Node) *Node {
	return &Node{Kind: KindRealized, Realized: n, Dev: caller(1)}
}

// Stream creates a stream node.
func Stream(src stream.Observable[*Node]) *Node {
	return &Node{Kind: KindStream, Stream: src, Dev: caller(1)}
}

// StreamOf creates a stream node from a stream of any child value (string,
// number, *Node, dom node, ...). Each value is coerced the way a child
// argument of H is; a value that flattens to several nodes is grouped under
// one wrapper element.
func StreamOf[T any](src stream.Observable[T]) *Node {
	return &Node{
		Kind:   KindStream,
		Stream: stream.Map(src, func(v T) *Node { return Coerce(v) }),
		Dev:    caller(1),
	}
}

// Component creates a component node.
func Component(fn ComponentFunc, attrs Attrs, children ...any) *Node {
	return &Node{
		Kind:     KindComponent,
		Comp:     fn,
		Attrs:    attrs,
		Children: Flatten(children...),
		Dev:      caller(1),
	}
}
