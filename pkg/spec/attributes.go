package spec

import "fmt"

// Attr is a single attribute. Value is a literal (string, number, bool,
// event handler, nil) or a stream of literals.
type Attr struct {
	Name  string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Name == ""
}

// Attrs is an ordered attribute list. Attributes are applied in slice order.
type Attrs []Attr

// Get returns the value of the last attribute named name.
func (a Attrs) Get(name string) (any, bool) {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i].Name == name {
			return a[i].Value, true
		}
	}
	return nil, false
}

// Has reports whether name is present with a non-nil value.
func (a Attrs) Has(name string) bool {
	v, ok := a.Get(name)
	return ok && v != nil
}

// Set replaces the value of name in place, or appends it.
func (a Attrs) Set(name string, value any) Attrs {
	for i := range a {
		if a[i].Name == name {
			a[i].Value = value
			return a
		}
	}
	return append(a, Attr{Name: name, Value: value})
}

// Style maps CSS property names (camelCase or kebab-case, or custom
// "--name") to a string value or a stream of strings.
type Style map[string]any

// ClassMap maps class names to a truthy literal or a stream of bool.
type ClassMap map[string]any

// A creates an arbitrary attribute.
func A(name string, value any) Attr { return Attr{Name: name, Value: value} }

// Identity attributes

// ID sets the id attribute.
func ID(id any) Attr { return A("id", id) }

// Class sets the literal class attribute.
func Class(classes any) Attr { return A("class", classes) }

// DynClass sets the composable $class attribute: a string, []string,
// ClassMap, []any of those, or a stream of any of them.
func DynClass(sources ...any) Attr {
	if len(sources) == 1 {
		return A("$class", sources[0])
	}
	return A("$class", sources)
}

// Tags adds tag-<name> classes and a data-tags attribute.
func Tags(tags any) Attr { return A("tags", tags) }

// StyleAttr sets the style attribute: a string, a Style or a stream of strings.
func StyleAttr(style any) Attr { return A("style", style) }

// DynStyle sets $style: a Style or a stream of Style patches.
func DynStyle(style any) Attr { return A("$style", style) }

// Is renders the element as a different tag.
func Is(tag string) Attr { return A("is", tag) }

// Ref sets the ref callback or sink, run once the element's children are
// attached.
func Ref(ref any) Attr { return A("ref", ref) }

// Data creates a data-* attribute.
func Data(key string, value any) Attr { return A("data-"+key, value) }

// Role sets the role attribute.
func Role(role string) Attr { return A("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label any) Attr { return A("aria-label", label) }

// TitleAttr sets the title attribute.
func TitleAttr(title any) Attr { return A("title", title) }

// Link attributes

// Href sets the href attribute.
func Href(url any) Attr { return A("href", url) }

// Target sets the target attribute.
func Target(target string) Attr { return A("target", target) }

// Form attributes

// Name sets the name attribute.
func Name(name string) Attr { return A("name", name) }

// Value sets the value property. Streams keep form controls in sync.
func Value(value any) Attr { return A("value", value) }

// Type sets the type attribute.
func Type(t string) Attr { return A("type", t) }

// Placeholder sets the placeholder attribute.
func Placeholder(text any) Attr { return A("placeholder", text) }

// For sets the for attribute (for labels).
func For(id string) Attr { return A("for", id) }

// Boolean properties

// Disabled sets the disabled property.
func Disabled(v any) Attr { return A("disabled", v) }

// Checked sets the checked property.
func Checked(v any) Attr { return A("checked", v) }

// Hidden sets the hidden property.
func Hidden(v any) Attr { return A("hidden", v) }

// Readonly sets the readonly property.
func Readonly(v any) Attr { return A("readonly", v) }

// Required sets the required property.
func Required(v any) Attr { return A("required", v) }

// Selected sets the selected property.
func Selected(v any) Attr { return A("selected", v) }

// Autofocus sets the autofocus property.
func Autofocus(v any) Attr { return A("autofocus", v) }

// Event handlers

// On sets the on<event> handler property.
func On(event string, handler any) Attr { return A("on"+event, handler) }

// OnClick sets the onclick handler.
func OnClick(handler any) Attr { return On("click", handler) }

// OnInput sets the oninput handler.
func OnInput(handler any) Attr { return On("input", handler) }

// OnChange sets the onchange handler.
func OnChange(handler any) Attr { return On("change", handler) }

// OnSubmit sets the onsubmit handler.
func OnSubmit(handler any) Attr { return On("submit", handler) }

// OnKeyDown sets the onkeydown handler.
func OnKeyDown(handler any) Attr { return On("keydown", handler) }

// Conditional attributes

// AttrIf returns a when condition is true, an empty Attr otherwise.
func AttrIf(condition bool, a Attr) Attr {
	if condition {
		return a
	}
	return Attr{}
}

// Key sets a key attribute, converted to a string.
func Key(key any) Attr {
	return A("key", fmt.Sprintf("%v", key))
}
