// Package scope implements context handles and the context stack that makes
// them visible to components during their synchronous render call.
//
// A Context is an identity token with a default value. Components read the
// nearest bound value with Use and bind new values for their own subtree
// with Add:
//
//	var Theme = scope.CreateContext("light")
//
//	func Page(st *scope.Stack, props spec.Props) *spec.Node {
//	    scope.Add(st, Theme, "dark")
//	    return spec.H(Button, nil)
//	}
//
//	func Button(st *scope.Stack, props spec.Props) *spec.Node {
//	    theme := scope.MustUse(st, Theme)
//	    return spec.H("button", spec.Attrs{spec.Class("btn-" + theme)})
//	}
//
// # Frames
//
// Every component call pushes one Frame chained to the frame it was rendered
// under, so bindings never leak to siblings and nothing is copied per level.
// Lookups scan the current frame newest binding first, then each ancestor,
// then the stack's root defaults, then the handle default.
//
// # Access
//
// The stack tracks what the running code may do. Reads and writes are
// allowed while a component function body runs; only reads are allowed while
// its subtree renders and while ref callbacks run; nothing is allowed outside
// a render call. Violations return *AccessError.
//
// A Stack is owned by one renderer and is not safe for concurrent use.
package scope
