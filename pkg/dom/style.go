package dom

import (
	"strings"
	"unicode"
)

type declaration struct {
	name  string
	value string
}

// Style is a live view over the element's style attribute, like the
// browser's CSSStyleDeclaration. Reading never rewrites the attribute, so a
// literal style string is serialized exactly as it was set until a property
// is changed.
type Style struct {
	el *Element
}

func (s *Style) decls() []declaration {
	raw, _ := s.el.GetAttribute("style")
	return parseDeclarations(raw)
}

func (s *Style) write(decls []declaration) {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.name+": "+d.value+";")
	}
	s.el.SetAttribute("style", strings.Join(parts, " "))
}

// Get returns a property by CSS or camelCase name, or "".
func (s *Style) Get(name string) string {
	return s.GetPropertyValue(cssName(name))
}

// Set assigns a property using its camelCase or CSS name. An empty value
// removes the property.
func (s *Style) Set(name, value string) {
	s.SetProperty(cssName(name), value)
}

// GetPropertyValue returns a property by its exact CSS name, or "".
func (s *Style) GetPropertyValue(name string) string {
	for _, d := range s.decls() {
		if d.name == name {
			return d.value
		}
	}
	return ""
}

// SetProperty assigns a property by its exact CSS name, including custom
// properties ("--accent"). An empty value removes the property.
func (s *Style) SetProperty(name, value string) {
	if value == "" {
		s.RemoveProperty(name)
		return
	}
	decls := s.decls()
	for i, d := range decls {
		if d.name == name {
			if d.value == value {
				return
			}
			decls[i].value = value
			s.write(decls)
			return
		}
	}
	s.write(append(decls, declaration{name: name, value: value}))
}

// RemoveProperty removes a property by its exact CSS name.
func (s *Style) RemoveProperty(name string) {
	decls := s.decls()
	for i, d := range decls {
		if d.name == name {
			s.write(append(decls[:i], decls[i+1:]...))
			return
		}
	}
}

// Len returns the number of declared properties.
func (s *Style) Len() int {
	return len(s.decls())
}

// CSSText returns the style attribute text.
func (s *Style) CSSText() string {
	raw, _ := s.el.GetAttribute("style")
	return raw
}

func parseDeclarations(raw string) []declaration {
	var out []declaration
	for _, part := range strings.Split(raw, ";") {
		name, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if name == "" || value == "" {
			continue
		}
		if !strings.HasPrefix(name, "--") {
			name = strings.ToLower(name)
		}
		replaced := false
		for i := range out {
			if out[i].name == name {
				out[i].value = value
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, declaration{name: name, value: value})
		}
	}
	return out
}

// cssName converts camelCase property names ("backgroundColor") to CSS
// names ("background-color"). Custom properties pass through unchanged.
func cssName(name string) string {
	if strings.HasPrefix(name, "--") {
		return name
	}
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
