// Package spec provides the structure model handed to the render engine.
//
// A Node describes one DOM node before rendering. Its Kind is fixed when the
// node is constructed, so the engine dispatches on an explicit tag instead of
// probing the shape of a value:
//
//   - KindText: a text leaf (a nil *Node is the empty leaf)
//   - KindElement: an intrinsic element with attributes and children
//   - KindComponent: a component function with attributes and children
//   - KindStream: a stream of further nodes
//   - KindRealized: an already built dom.Node, passed through
//   - KindInvalid: a construction error kept for the engine to report
//
// # Construction
//
// H is the general factory, the equivalent of a JSX call:
//
//	spec.H("div", spec.Attrs{spec.Class("card")},
//	    spec.H("h1", nil, "Title"),
//	    count, // a stream.Observable[*spec.Node]
//	)
//
// El and the element helpers take Attr values and children mixed in one
// argument list:
//
//	spec.Div(spec.ID("main"), spec.H1("Title"), spec.P("Content"))
//
// Children are flattened: nested slices are spliced, strings and numbers
// become text leaves, nil and false are dropped, dom nodes are wrapped as
// realized nodes and streams become stream nodes.
//
// When DebugMode is set, factories record the caller's file and line on the
// node for dev inspection hooks and error locations.
package spec
