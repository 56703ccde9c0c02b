package spec

import (
	"fmt"
	"runtime"

	"github.com/vango-dev/viewspec/pkg/dom"
	"github.com/vango-dev/viewspec/pkg/scope"
	"github.com/vango-dev/viewspec/pkg/stream"
)

// DebugMode makes factories record the caller on every node they build.
// Set it once at startup; it is read without synchronization.
var DebugMode = false

// ObservableTag is the wrapper element used for stream placeholders and for
// stream values that need a container.
const ObservableTag = "jsx-view-observable"

// EmptyTag is the element rendered for an empty stream value.
const EmptyTag = "jsx-view-empty"

func caller(skip int) *DevSource {
	if !DebugMode {
		return nil
	}
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return nil
	}
	src := &DevSource{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		src.Func = fn.Name()
	}
	return src
}

// H builds a node from a tag and attributes, the way a JSX call does.
// tag is an element name or a component function; anything else yields a
// KindInvalid node that fails when rendered.
func H(tag any, attrs Attrs, children ...any) *Node {
	return build(tag, attrs, children, 2)
}

func build(tag any, attrs Attrs, children []any, skip int) *Node {
	dev := caller(skip)
	switch t := tag.(type) {
	case string:
		return &Node{Kind: KindElement, Tag: t, Attrs: attrs, Children: Flatten(children...), Dev: dev}
	case ComponentFunc:
		if t == nil {
			break
		}
		return &Node{Kind: KindComponent, Comp: t, Attrs: attrs, Children: Flatten(children...), Dev: dev}
	case func(*scope.Stack, Props) *Node:
		if t == nil {
			break
		}
		return &Node{Kind: KindComponent, Comp: t, Attrs: attrs, Children: Flatten(children...), Dev: dev}
	}
	return &Node{Kind: KindInvalid, Invalid: tag, Attrs: attrs, Dev: dev}
}

// El creates an element from mixed arguments: Attr and Attrs values set
// attributes, everything else is a child.
func El(tag string, args ...any) *Node {
	return element(tag, args, 2)
}

func element(tag string, args []any, skip int) *Node {
	var attrs Attrs
	children := make([]any, 0, len(args))
	for _, arg := range args {
		switch v := arg.(type) {
		case Attr:
			if !v.IsEmpty() {
				attrs = attrs.Set(v.Name, v.Value)
			}
		case Attrs:
			for _, a := range v {
				if !a.IsEmpty() {
					attrs = attrs.Set(a.Name, a.Value)
				}
			}
		default:
			children = append(children, arg)
		}
	}
	return build(tag, attrs, children, skip+1)
}

// Flatten turns child arguments into a flat list of nodes.
func Flatten(children ...any) []*Node {
	out := make([]*Node, 0, len(children))
	for _, c := range children {
		out = appendChild(out, c)
	}
	return out
}

func appendChild(out []*Node, c any) []*Node {
	switch v := c.(type) {
	case nil:
		return out
	case bool:
		if !v {
			return out
		}
		return append(out, &Node{Kind: KindText, Text: "true"})
	case *Node:
		if v == nil {
			return out
		}
		return append(out, v)
	case []*Node:
		for _, n := range v {
			out = appendChild(out, n)
		}
		return out
	case []any:
		for _, n := range v {
			out = appendChild(out, n)
		}
		return out
	case []string:
		for _, s := range v {
			out = append(out, &Node{Kind: KindText, Text: s})
		}
		return out
	case string:
		return append(out, &Node{Kind: KindText, Text: v})
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return append(out, &Node{Kind: KindText, Text: fmt.Sprint(v)})
	case dom.Node:
		return append(out, &Node{Kind: KindRealized, Realized: v})
	case stream.Observable[*Node]:
		return append(out, &Node{Kind: KindStream, Stream: v})
	case ComponentFunc:
		return append(out, &Node{Kind: KindComponent, Comp: v})
	case func(*scope.Stack, Props) *Node:
		return append(out, &Node{Kind: KindComponent, Comp: v})
	case stream.Untyped:
		return append(out, &Node{Kind: KindStream, Stream: untypedChildren{v}})
	case fmt.Stringer:
		return append(out, &Node{Kind: KindText, Text: v.String()})
	default:
		return append(out, &Node{Kind: KindText, Text: fmt.Sprint(v)})
	}
}

// Coerce turns one child value into a single node. nil and false give a nil
// node; values that flatten to several nodes are grouped under an
// ObservableTag element.
func Coerce(v any) *Node {
	nodes := appendChild(nil, v)
	switch len(nodes) {
	case 0:
		return nil
	case 1:
		return nodes[0]
	default:
		return &Node{Kind: KindElement, Tag: ObservableTag, Children: nodes}
	}
}

// untypedChildren adapts a stream of arbitrary child values.
type untypedChildren struct{ src stream.Untyped }

func (u untypedChildren) Subscribe(next func(*Node) error, complete func()) (func(), error) {
	return u.src.SubscribeAny(func(v any) error { return next(Coerce(v)) }, complete)
}
