package render

import (
	"sort"
	"strings"

	"github.com/vango-dev/viewspec/pkg/dispose"
	"github.com/vango-dev/viewspec/pkg/dom"
	"github.com/vango-dev/viewspec/pkg/spec"
	"github.com/vango-dev/viewspec/pkg/stream"
)

// assignStyle applies a literal style value: a whole style string, or a
// property map whose values may be streams.
func (r *Renderer) assignStyle(sub *dispose.Handle, el *dom.Element, val any) error {
	switch v := val.(type) {
	case string:
		if v == "" {
			el.RemoveAttribute("style")
		} else {
			el.SetAttribute("style", v)
		}
		return nil
	case spec.Style:
		return r.assignStyleMap(sub, el, v)
	case map[string]any:
		return r.assignStyleMap(sub, el, v)
	case map[string]string:
		for _, name := range sortedKeys(v) {
			setStyleProperty(el, name, v[name])
		}
		return nil
	}
	err := structuralError("V021", ErrStyleType, nil).WithDetailf("found %T", val)
	return r.fail(err, &spec.Node{Kind: spec.KindElement, Tag: el.TagName()})
}

func (r *Renderer) assignStyleMap(sub *dispose.Handle, el *dom.Element, style map[string]any) error {
	for _, name := range sortedKeys(style) {
		name, val := name, style[name]
		if src, ok := stream.IsObservable(val); ok {
			err := subscribeAny(sub, src, func(v any) error {
				setStyleProperty(el, name, v)
				return nil
			})
			if err != nil {
				return err
			}
			continue
		}
		setStyleProperty(el, name, val)
	}
	return nil
}

// assignDynStyle applies a literal $style map. Streamed properties are
// bound one by one like in a style map.
func (r *Renderer) assignDynStyle(sub *dispose.Handle, el *dom.Element, val any) error {
	switch v := val.(type) {
	case spec.Style:
		return r.assignStyleMap(sub, el, v)
	case map[string]any:
		return r.assignStyleMap(sub, el, v)
	}
	return r.patchStyle(el, val)
}

// patchStyle assigns every property named in a $style value. Properties
// the value does not name are left alone.
func (r *Renderer) patchStyle(el *dom.Element, val any) error {
	var style map[string]any
	switch v := val.(type) {
	case nil:
		return nil
	case spec.Style:
		style = v
	case map[string]any:
		style = v
	case map[string]string:
		for _, name := range sortedKeys(v) {
			setStyleProperty(el, name, v[name])
		}
		return nil
	default:
		err := structuralError("V021", ErrStyleType, nil).WithDetailf("$style expects a property map, found %T", val)
		return r.fail(err, &spec.Node{Kind: spec.KindElement, Tag: el.TagName()})
	}
	for _, name := range sortedKeys(style) {
		setStyleProperty(el, name, style[name])
	}
	return nil
}

// setStyleProperty sets one property. nil and "" clear it.
func setStyleProperty(el *dom.Element, name string, val any) {
	value := ""
	if val != nil {
		value = stringify(val)
	}
	if strings.HasPrefix(name, "--") {
		el.Style().SetProperty(name, value)
		return
	}
	el.Style().Set(name, value)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
