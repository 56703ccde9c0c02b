package render

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/vango-dev/viewspec/pkg/dispose"
	"github.com/vango-dev/viewspec/pkg/dom"
	"github.com/vango-dev/viewspec/pkg/spec"
	"github.com/vango-dev/viewspec/pkg/stream"
)

// booleanProps are HTML boolean properties, as in <input disabled>.
var booleanProps = map[string]bool{
	"async":      true,
	"autofocus":  true,
	"autoplay":   true,
	"checked":    true,
	"controls":   true,
	"default":    true,
	"defer":      true,
	"disabled":   true,
	"draggable":  true,
	"hidden":     true,
	"loop":       true,
	"multiple":   true,
	"novalidate": true,
	"open":       true,
	"readonly":   true,
	"required":   true,
	"reversed":   true,
	"scoped":     true,
	"selected":   true,
	"spellcheck": true,
	"wrap":       true,
}

// isDirectAssign reports whether name is assigned as an element property
// instead of an attribute. Event handlers take functions and "value" must
// be a property for form controls to see the change.
func isDirectAssign(name string) bool {
	return strings.HasPrefix(name, "on") || booleanProps[name] || name == "value"
}

// applyAttrs applies attrs to el in order and returns the ref, if any.
// Refs are run by the caller once the children exist.
func (r *Renderer) applyAttrs(sub *dispose.Handle, el *dom.Element, attrs spec.Attrs) (any, error) {
	var (
		ref         any
		classesDone bool
	)
	for _, a := range attrs {
		name, val := a.Name, a.Value
		if name == "is" || val == nil {
			continue
		}
		switch name {
		case "class", "$class", "tags":
			if classesDone {
				continue
			}
			classesDone = true
			if err := r.bindClasses(sub, el, attrs); err != nil {
				return nil, err
			}
			continue
		case "ref":
			// Sink refs are usually subjects, which are streams too.
			ref = val
			continue
		}

		if src, ok := stream.IsObservable(val); ok {
			if err := r.bindStreamAttr(sub, el, attrs, name, src); err != nil {
				return nil, err
			}
			continue
		}

		switch {
		case isDirectAssign(name):
			el.SetProperty(name, val)
		case name == "style":
			if err := r.assignStyle(sub, el, val); err != nil {
				return nil, err
			}
		case name == "$style":
			if err := r.assignDynStyle(sub, el, val); err != nil {
				return nil, err
			}
		default:
			el.SetAttribute(name, stringify(val))
		}
	}
	return ref, nil
}

func (r *Renderer) bindStreamAttr(sub *dispose.Handle, el *dom.Element, attrs spec.Attrs, name string, src stream.Untyped) error {
	switch {
	case name == "$style":
		if style, ok := attrs.Get("style"); ok {
			if _, streamed := stream.IsObservable(style); streamed {
				return r.fail(structuralError("V020", ErrStyleConflict, nil), &spec.Node{Kind: spec.KindElement, Tag: el.TagName(), Attrs: attrs})
			}
		}
		return subscribeAny(sub, src, func(v any) error {
			return r.patchStyle(el, v)
		})
	case isDirectAssign(name):
		return subscribeAny(sub, src, func(v any) error {
			if !equal(el.Property(name), v) {
				el.SetProperty(name, v)
			}
			return nil
		})
	default:
		return subscribeAny(sub, src, func(v any) error {
			if v == nil {
				el.RemoveAttribute(name)
			} else {
				el.SetAttribute(name, stringify(v))
			}
			return nil
		})
	}
}

// subscribeAny subscribes next to src for as long as sub is open.
func subscribeAny(sub *dispose.Handle, src stream.Untyped, next func(any) error) error {
	unsub, err := src.SubscribeAny(next, nil)
	if unsub != nil {
		sub.Add(unsub)
	}
	return err
}

// equal compares two property values without panicking on func or map
// values, which are never considered equal.
func equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	switch ta.Kind() {
	case reflect.Interface, reflect.Array, reflect.Struct:
		return reflect.DeepEqual(a, b)
	}
	return a == b
}

func stringify(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(v)
}

// truthy follows the usual scripting notion of truth: nil, false, zero
// numbers and "" are false.
func truthy(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case int:
		return v != 0
	case int64:
		return v != 0
	case float64:
		return v != 0
	}
	return true
}
