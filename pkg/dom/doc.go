// Package dom is the live node model the render engine materializes into.
//
// It mirrors the parts of the browser DOM the engine relies on:
//
//   - Elements with ordered attributes, namespaces and parent links
//   - Object properties that are distinct from serialized attributes
//     (event handlers, boolean state, form control values)
//   - Class token lists and CSS style declarations that stay in sync with
//     the class and style attributes
//   - In-place replacement (ReplaceWith) for streamed subtrees
//
// Nodes are not safe for concurrent use; a tree belongs to the goroutine
// that renders and updates it.
//
// OuterHTML serializes a node for inspection and tests.
package dom
