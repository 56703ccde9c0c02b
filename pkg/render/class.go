package render

import (
	"strings"

	"github.com/vango-dev/viewspec/pkg/dispose"
	"github.com/vango-dev/viewspec/pkg/dom"
	"github.com/vango-dev/viewspec/pkg/spec"
	"github.com/vango-dev/viewspec/pkg/stream"
)

// bindClasses applies class, $class and tags together. Each source owns the
// tokens it added; a stream source removes its previous tokens before adding
// the new ones, so sources compose without clearing each other.
//
// Membership is plain set semantics: when two sources name the same token,
// whichever wrote last decides, and a source that turns a token off does not
// give it back to a static source that also named it.
func (r *Renderer) bindClasses(sub *dispose.Handle, el *dom.Element, attrs spec.Attrs) error {
	var sources []any
	if v, ok := attrs.Get("class"); ok && v != nil {
		sources = append(sources, v)
	}
	if v, ok := attrs.Get("$class"); ok && v != nil {
		if list, ok := v.([]any); ok {
			sources = append(sources, list...)
		} else {
			sources = append(sources, v)
		}
	}
	if v, ok := attrs.Get("tags"); ok && v != nil {
		if src, ok := stream.IsObservable(v); ok {
			sources = append(sources, tagClassStream{src})
			err := subscribeAny(sub, src, func(v any) error {
				el.SetAttribute("data-tags", strings.Join(toStrings(v), ","))
				return nil
			})
			if err != nil {
				return err
			}
		} else {
			tags := toStrings(v)
			sources = append(sources, tagClasses(tags))
			el.SetAttribute("data-tags", strings.Join(tags, ","))
		}
	}

	for _, src := range sources {
		if err := bindClassSource(sub, el, src); err != nil {
			return err
		}
	}
	return nil
}

func bindClassSource(sub *dispose.Handle, el *dom.Element, src any) error {
	if s, ok := stream.IsObservable(src); ok {
		var prev []string
		return subscribeAny(sub, s, func(v any) error {
			el.ClassList().Remove(prev...)
			prev = classTokens(v)
			el.ClassList().Add(prev...)
			return nil
		})
	}

	switch v := src.(type) {
	case spec.ClassMap:
		return bindClassMap(sub, el, v)
	case map[string]any:
		return bindClassMap(sub, el, v)
	case []any:
		for _, item := range v {
			if err := bindClassSource(sub, el, item); err != nil {
				return err
			}
		}
		return nil
	}
	el.ClassList().Add(classTokens(src)...)
	return nil
}

// bindClassMap adds truthy keys and toggles stream-valued keys on every
// change of their value.
func bindClassMap(sub *dispose.Handle, el *dom.Element, classes map[string]any) error {
	var add []string
	for _, name := range sortedKeys(classes) {
		name, val := name, classes[name]
		src, ok := stream.IsObservable(val)
		if !ok {
			if truthy(val) {
				add = append(add, name)
			}
			continue
		}
		var (
			last bool
			seen bool
		)
		err := subscribeAny(sub, src, func(v any) error {
			on := truthy(v)
			if seen && on == last {
				return nil
			}
			seen, last = true, on
			el.ClassList().Toggle(name, on)
			return nil
		})
		if err != nil {
			return err
		}
	}
	el.ClassList().Add(add...)
	return nil
}

// classTokens flattens one class value into tokens.
func classTokens(v any) []string {
	switch v := v.(type) {
	case nil:
		return nil
	case bool:
		return nil
	case string:
		return strings.Fields(v)
	case []string:
		var out []string
		for _, s := range v {
			out = append(out, strings.Fields(s)...)
		}
		return out
	case []any:
		var out []string
		for _, item := range v {
			out = append(out, classTokens(item)...)
		}
		return out
	case spec.ClassMap:
		return truthyKeys(v)
	case map[string]any:
		return truthyKeys(v)
	case map[string]bool:
		var out []string
		for _, k := range sortedKeys(v) {
			if v[k] {
				out = append(out, k)
			}
		}
		return out
	}
	return strings.Fields(stringify(v))
}

func truthyKeys(m map[string]any) []string {
	var out []string
	for _, k := range sortedKeys(m) {
		if truthy(m[k]) {
			out = append(out, k)
		}
	}
	return out
}

func toStrings(v any) []string {
	switch v := v.(type) {
	case nil:
		return nil
	case []string:
		return v
	case string:
		return []string{v}
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, stringify(item))
		}
		return out
	}
	return []string{stringify(v)}
}

func tagClasses(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag != "" {
			out = append(out, "tag-"+tag)
		}
	}
	return out
}

// tagClassStream maps a stream of tag lists to their classes.
type tagClassStream struct{ src stream.Untyped }

func (t tagClassStream) SubscribeAny(next func(any) error, complete func()) (func(), error) {
	return t.src.SubscribeAny(func(v any) error {
		return next(tagClasses(toStrings(v)))
	}, complete)
}
