// Package render materializes spec structure trees into live dom nodes and
// keeps them synchronized with the streams they reference.
//
// # Rendering
//
//	r := render.New(render.WithLogger(logger))
//	sub := dispose.New()
//	el, err := r.Render(sub, spec.H("div", nil, "hello"))
//	...
//	sub.Unsubscribe() // releases every subscription made while rendering
//
// Render walks the tree depth first. Attributes are applied before children
// are rendered; children render left to right and are appended as soon as
// they are built.
//
// # Streams
//
// A stream node renders its first value in place (or a placeholder element
// until one arrives). Every later value is rendered under a fresh child of
// the disposal handle, swapped into the position of the previous node, and
// only then is the previous value's handle released. Emissions are applied
// synchronously on the emitting goroutine; render errors are returned to the
// emitter.
//
// A stream cannot be the root of a Render call.
//
// # Components
//
// A component function runs inside a new context frame chained to the frame
// it was rendered under. It may read and add context values while its body
// runs; its returned tree is then rendered with read-only access using the
// same disposal handle.
//
// # Attributes
//
// class, $class and tags compose class tokens from literal and streamed
// sources, each streamed source tracking only its own tokens. style and
// $style patch individual style properties. Event handlers (on*), boolean
// properties and value are assigned as element properties; everything else
// is an attribute. ref runs after children are attached.
package render
